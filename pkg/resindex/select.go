package resindex

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Select returns the entries of the lister whose fully-qualified name
// matches the doublestar pattern.  '/' separates the type from the entry, so
// "app:layout/*" selects every layout of app and "*:string/title_*" selects
// titles of every namespace.
func Select(lister Lister, pattern string) ([]Entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	var selected []Entry
	for _, entry := range lister.Entries() {
		if ok, _ := doublestar.Match(pattern, entry.Name.FullyQualifiedName()); ok {
			selected = append(selected, entry)
		}
	}
	return selected, nil
}

// ByID returns the names of the lister keyed by identifier.
func ByID(lister Lister) map[int]Entry {
	entries := lister.Entries()
	byID := make(map[int]Entry, len(entries))
	for _, entry := range entries {
		if _, ok := byID[entry.ID]; !ok {
			byID[entry.ID] = entry
		}
	}
	return byID
}
