package resindex

import (
	"sync"

	"github.com/stackb/resname/pkg/resname"
)

type memoResult struct {
	id int
	ok bool
}

// MemoIndex implements resname.ResourceIndex, memoizing the answers of the
// next index, misses included.  It is safe for concurrent use provided the
// next index is.
type MemoIndex struct {
	next  resname.ResourceIndex
	mu    sync.RWMutex
	cache map[resname.Name]memoResult
}

func NewMemoIndex(next resname.ResourceIndex) *MemoIndex {
	return &MemoIndex{
		next:  next,
		cache: make(map[resname.Name]memoResult),
	}
}

// ResourceID implements the resname.ResourceIndex interface.
func (ix *MemoIndex) ResourceID(name resname.Name) (int, bool) {
	ix.mu.RLock()
	result, ok := ix.cache[name]
	ix.mu.RUnlock()
	if ok {
		return result.id, result.ok
	}

	id, found := ix.next.ResourceID(name)

	ix.mu.Lock()
	ix.cache[name] = memoResult{id: id, ok: found}
	ix.mu.Unlock()

	return id, found
}

// Reset forgets all memoized answers.
func (ix *MemoIndex) Reset() {
	ix.mu.Lock()
	ix.cache = make(map[resname.Name]memoResult)
	ix.mu.Unlock()
}
