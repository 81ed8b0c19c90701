package resindex

import (
	"strings"
	"sync"

	"github.com/dghubble/trie"

	"github.com/stackb/resname/pkg/resname"
)

// group is stored at the "namespace" and "namespace:type" nodes of the trie
// and holds the keys of the entries below it.  Entry keys always contain
// both separators, so they never land on a group node.
type group map[string]bool

// TrieIndex implements resname.ResourceIndex using a trie keyed by
// fully-qualified name.  Listing everything under a namespace or a namespace
// and type only visits the entries below it.  Unlike MapIndex it only
// accepts names their fully-qualified form identifies (see resname.Parse).
// It is safe for concurrent use.
type TrieIndex struct {
	mu    sync.RWMutex
	names *trie.PathTrie
}

// NewTrieIndex constructs a new, empty TrieIndex.
func NewTrieIndex() *TrieIndex {
	return &TrieIndex{
		names: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: nameSegmenter,
		}),
	}
}

// ResourceID implements the resname.ResourceIndex interface.
func (ix *TrieIndex) ResourceID(name resname.Name) (int, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if e, ok := ix.names.Get(name.FullyQualifiedName()).(Entry); ok && e.Name.Equal(name) {
		return e.ID, true
	}
	return 0, false
}

// Put implements the Putter interface.
func (ix *TrieIndex) Put(name resname.Name, id int) error {
	if err := checkCanonical(name); err != nil {
		return err
	}
	key := name.FullyQualifiedName()
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if e, ok := ix.names.Get(key).(Entry); ok {
		if e.ID != id {
			return &DuplicateNameError{Name: name, Existing: e.ID, ID: id}
		}
		return nil
	}
	ix.names.Put(key, Entry{Name: name, ID: id})
	for _, g := range groupKeys(name) {
		members, ok := ix.names.Get(g).(group)
		if !ok {
			members = make(group)
			ix.names.Put(g, members)
		}
		members[key] = true
	}
	return nil
}

// Delete removes the name from the index and reports whether it was present.
func (ix *TrieIndex) Delete(name resname.Name) bool {
	key := name.FullyQualifiedName()
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if e, ok := ix.names.Get(key).(Entry); !ok || !e.Name.Equal(name) {
		return false
	}
	ix.names.Delete(key)
	for _, g := range groupKeys(name) {
		if members, ok := ix.names.Get(g).(group); ok {
			delete(members, key)
			if len(members) == 0 {
				ix.names.Delete(g)
			}
		}
	}
	return true
}

// Entries implements the Lister interface.
func (ix *TrieIndex) Entries() []Entry {
	return ix.Names("")
}

// Names returns the entries whose fully-qualified name starts with the
// given prefix, sorted by name.  The prefixes "namespace:" and
// "namespace:type/" are answered from their group; any other prefix scans
// the whole index.
func (ix *TrieIndex) Names(prefix string) (entries []Entry) {
	ix.mu.RLock()
	defer func() {
		ix.mu.RUnlock()
		sortEntries(entries)
	}()

	if g, ok := groupOfPrefix(prefix); ok {
		members, _ := ix.names.Get(g).(group)
		for key := range members {
			entries = append(entries, ix.names.Get(key).(Entry))
		}
		return
	}

	ix.names.Walk(func(key string, value interface{}) error {
		if e, ok := value.(Entry); ok && strings.HasPrefix(key, prefix) {
			entries = append(entries, e)
		}
		return nil
	})
	return
}

// groupKeys returns the group nodes a name belongs to.
func groupKeys(name resname.Name) []string {
	return []string{name.Namespace(), name.Namespace() + ":" + name.Type()}
}

// groupOfPrefix maps "namespace:" and "namespace:type/" to their group key.
func groupOfPrefix(prefix string) (string, bool) {
	colon := strings.IndexByte(prefix, ':')
	if colon < 0 {
		return "", false
	}
	rest := prefix[colon+1:]
	if rest == "" {
		return prefix[:colon], true
	}
	if slash := strings.IndexByte(rest, '/'); slash > 0 && slash == len(rest)-1 {
		return prefix[:len(prefix)-1], true
	}
	return "", false
}

// nameSegmenter segments fully-qualified names at the namespace and type
// separators.  For example, "app:layout/main" -> ("app", 3), (":layout", 10),
// ("/main", -1) in successive calls.  Slashes inside the entry do not start
// new segments.  It does not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	if path[start] == '/' {
		return path[start:], -1
	}
	end := strings.IndexAny(path[start+1:], ":/") // next separator after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
