package resname

import "strings"

// NullReference is the reference that explicitly names no resource.
const NullReference = "@null"

// ResourceIndex maps names to numeric resource identifiers.
type ResourceIndex interface {
	// ResourceID returns the identifier registered for the name.  If the
	// name is not registered `(0, false)` is returned.
	ResourceID(name Name) (int, bool)
}

var referenceDecorations = strings.NewReplacer("@", "", "+", "")

// ResolveID qualifies a resource reference such as "@+id/foo",
// "@android:string/ok" or "string/title" against the context namespace and
// looks it up in the index.  Empty, "@null" and unqualifiable references,
// and names the index does not know, yield `(0, false, nil)`.  An error is
// returned only when the qualified reference is malformed.
//
// An empty context namespace means there is none, so "@+id/foo" resolved
// with "" is unqualifiable rather than a lookup of ":id/foo".  Resources of
// the empty namespace are reached by naming it, as in "@+id/:foo".
func ResolveID(index ResourceIndex, ref, contextNamespace string) (int, bool, error) {
	id, ok, _, err := resolveID(index, ref, contextNamespace)
	return id, ok, err
}

type unresolvedReason string

const (
	reasonNone        unresolvedReason = ""
	reasonNull        unresolvedReason = "null"
	reasonUnqualified unresolvedReason = "unqualified"
	reasonNotFound    unresolvedReason = "not_found"
)

// QualifyReference returns the canonical name a resource reference refers
// to, without looking it up.  Empty, "@null" and unqualifiable references
// yield `(Name{}, false, nil)`.
func QualifyReference(ref, contextNamespace string) (Name, bool, error) {
	name, _, err := qualifyReference(ref, contextNamespace)
	if err != nil || !name.IsZero() {
		return name, err == nil, err
	}
	return Name{}, false, nil
}

func qualifyReference(ref, contextNamespace string) (Name, unresolvedReason, error) {
	if ref == "" || ref == NullReference {
		return Name{}, reasonNull, nil
	}
	qualified, ok := QualifyString(ref, contextNamespace, "")
	if !ok {
		return Name{}, reasonUnqualified, nil
	}
	name, err := Parse(referenceDecorations.Replace(qualified))
	if err != nil {
		return Name{}, reasonNone, err
	}
	return name, reasonNone, nil
}

func resolveID(index ResourceIndex, ref, contextNamespace string) (int, bool, unresolvedReason, error) {
	name, reason, err := qualifyReference(ref, contextNamespace)
	if err != nil {
		return 0, false, reasonNone, err
	}
	if reason != reasonNone {
		return 0, false, reason, nil
	}
	id, ok := index.ResourceID(name)
	if !ok {
		return 0, false, reasonNotFound, nil
	}
	return id, true, reasonNone, nil
}
