package resindex

import (
	"github.com/stackb/resname/pkg/resname"
)

// ChainIndex implements resname.ResourceIndex over a chain of indexes.  The
// first index that knows a name wins.
type ChainIndex struct {
	chain []resname.ResourceIndex
}

func NewChainIndex(chain ...resname.ResourceIndex) *ChainIndex {
	return &ChainIndex{
		chain: chain,
	}
}

// ResourceID implements the resname.ResourceIndex interface.
func (ix *ChainIndex) ResourceID(name resname.Name) (int, bool) {
	for _, next := range ix.chain {
		if id, ok := next.ResourceID(name); ok {
			return id, true
		}
	}
	return 0, false
}

// Entries implements the Lister interface.  Entries of indexes that do not
// implement Lister are not included; names known to more than one index are
// reported once, from the first.
func (ix *ChainIndex) Entries() []Entry {
	seen := make(map[resname.Name]bool)
	var entries []Entry
	for _, next := range ix.chain {
		lister, ok := next.(Lister)
		if !ok {
			continue
		}
		for _, entry := range lister.Entries() {
			if seen[entry.Name] {
				continue
			}
			seen[entry.Name] = true
			entries = append(entries, entry)
		}
	}
	sortEntries(entries)
	return entries
}
