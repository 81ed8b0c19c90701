// Package resindex provides implementations of resname.ResourceIndex and the
// file formats used to persist them.
package resindex

import (
	"fmt"
	"sort"

	"github.com/stackb/resname/pkg/resname"
)

// Entry associates a resource name with its numeric identifier.
type Entry struct {
	Name resname.Name
	ID   int
}

// String implements fmt.Stringer
func (e Entry) String() string {
	return fmt.Sprintf("%s=%#08x", e.Name, e.ID)
}

// Putter is an index that can register names.
type Putter interface {
	// Put registers the id for the name.  Registering the same name twice with
	// a different id is an error.
	Put(name resname.Name, id int) error
}

// Lister is an index that can enumerate its entries.
type Lister interface {
	// Entries returns all entries sorted by fully-qualified name.
	Entries() []Entry
}

// DuplicateNameError is returned by Put when a name is already registered
// with a different id.
type DuplicateNameError struct {
	Name     resname.Name
	Existing int
	ID       int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: already registered as %#08x (got %#08x)", e.Name, e.Existing, e.ID)
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name.FullyQualifiedName() < entries[j].Name.FullyQualifiedName()
	})
}

// checkCanonical rejects names that their fully-qualified form does not
// identify, such as a namespace containing ':' or a type containing '/'.
// Indexes keyed by fully-qualified name cannot hold them.
func checkCanonical(name resname.Name) error {
	fqn := name.FullyQualifiedName()
	if parsed, err := resname.Parse(fqn); err != nil || !parsed.Equal(name) {
		return &resname.MalformedReferenceError{Text: fqn, Reason: "not identified by its fully-qualified name"}
	}
	return nil
}
