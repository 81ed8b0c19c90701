package resindex

import (
	"sync"

	"github.com/stackb/resname/pkg/resname"
)

// MapIndex implements resname.ResourceIndex using a map.  It accepts any
// name, including those TrieIndex and BoltIndex reject because their
// fully-qualified form is ambiguous.  It is safe for concurrent use.
type MapIndex struct {
	mu  sync.RWMutex
	ids map[resname.Name]int
}

// NewMapIndex constructs a new, empty MapIndex.
func NewMapIndex() *MapIndex {
	return &MapIndex{
		ids: make(map[resname.Name]int),
	}
}

// ResourceID implements the resname.ResourceIndex interface.
func (ix *MapIndex) ResourceID(name resname.Name) (int, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	id, ok := ix.ids[name]
	return id, ok
}

// Put implements the Putter interface.
func (ix *MapIndex) Put(name resname.Name, id int) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if existing, ok := ix.ids[name]; ok && existing != id {
		return &DuplicateNameError{Name: name, Existing: existing, ID: id}
	}
	ix.ids[name] = id
	return nil
}

// Len returns the number of registered names.
func (ix *MapIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.ids)
}

// Entries implements the Lister interface.
func (ix *MapIndex) Entries() []Entry {
	ix.mu.RLock()
	entries := make([]Entry, 0, len(ix.ids))
	for name, id := range ix.ids {
		entries = append(entries, Entry{Name: name, ID: id})
	}
	ix.mu.RUnlock()
	sortEntries(entries)
	return entries
}
