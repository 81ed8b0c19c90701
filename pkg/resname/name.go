// Package resname parses, qualifies and resolves android resource names of
// the form "namespace:type/entry".
package resname

import (
	"fmt"
	"hash/maphash"
	"regexp"
	"strings"
)

const namespaceURIPrefix = "http://schemas.android.com/apk/res/"

// reservedNamespace is the xml namespace declaration prefix.  Text such as
// "xmlns:android" is never a resource reference.
const reservedNamespace = "xmlns"

var fullyQualifiedPattern = regexp.MustCompile(`^([^:]*):([^/]+)/(.+)$`)

var hashSeed = maphash.MakeSeed()

// Name is the canonical (namespace, type, entry) triple that names a
// resource.  The zero value is not a valid name.  Name values are immutable
// and comparable, so they can be used directly as map keys.
type Name struct {
	namespace string
	typ       string
	entry     string
	hash      uint64
}

// New constructs a Name from its parts.  The entry is trimmed and any '.' in
// it is replaced by '_'.  The namespace and type are stored as given.
func New(namespace, typ, entry string) Name {
	return newName(namespace, typ, strings.TrimSpace(normalizeEntry(entry)))
}

// Parse parses the fully-qualified form "namespace:type/entry".  The
// namespace may be empty; the type and entry may not.  The entry may itself
// contain '/'.
func Parse(text string) (Name, error) {
	match := fullyQualifiedPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return Name{}, &MalformedReferenceError{Text: text, Reason: "not fully qualified"}
	}
	if match[1] == reservedNamespace {
		return Name{}, &MalformedReferenceError{Text: text, Reason: "unexpected xmlns namespace"}
	}
	return newName(match[1], match[2], normalizeEntry(match[3])), nil
}

// MustParse is like Parse but panics if the text is malformed.  It is
// intended for names known at compile time.
func MustParse(text string) Name {
	name, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return name
}

func newName(namespace, typ, entry string) Name {
	n := Name{namespace: namespace, typ: typ, entry: entry}
	n.hash = n.computeHash()
	return n
}

func normalizeEntry(entry string) string {
	if strings.IndexByte(entry, '.') == -1 {
		return entry
	}
	return strings.ReplaceAll(entry, ".", "_")
}

func (n Name) computeHash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(n.namespace)
	h.WriteByte(0)
	h.WriteString(n.typ)
	h.WriteByte(0)
	h.WriteString(n.entry)
	return h.Sum64()
}

// Namespace returns the package that owns the resource.
func (n Name) Namespace() string {
	return n.namespace
}

// Type returns the resource type, such as "string" or "layout".
func (n Name) Type() string {
	return n.typ
}

// Entry returns the leaf name of the resource.
func (n Name) Entry() string {
	return n.entry
}

// Hash returns the structural hash of the name, computed at construction.
// Hashes are stable for the lifetime of the process only.
func (n Name) Hash() uint64 {
	return n.hash
}

// IsZero reports whether n is the zero Name.
func (n Name) IsZero() bool {
	return n == Name{}
}

// Equal reports whether both names have the same namespace, type and entry.
func (n Name) Equal(other Name) bool {
	if n.hash != other.hash {
		return false
	}
	return n.namespace == other.namespace && n.typ == other.typ && n.entry == other.entry
}

// FullyQualifiedName formats the name as "namespace:type/entry".
func (n Name) FullyQualifiedName() string {
	return n.namespace + ":" + n.typ + "/" + n.entry
}

// String implements fmt.Stringer
func (n Name) String() string {
	return n.FullyQualifiedName()
}

// GoString implements fmt.GoStringer
func (n Name) GoString() string {
	return fmt.Sprintf("resname.Name{%s}", n.FullyQualifiedName())
}

// NamespaceURI returns the xml namespace uri that declares the namespace of
// the name.
func (n Name) NamespaceURI() string {
	return namespaceURIPrefix + n.namespace
}

// WithNamespace returns a name with the same type and entry in the given
// namespace.
func (n Name) WithNamespace(namespace string) Name {
	if namespace == n.namespace {
		return n
	}
	return New(namespace, n.typ, n.entry)
}

// CheckType returns a *TypeMismatchError if the name is not of the expected
// type.
func (n Name) CheckType(expected string) error {
	if n.typ != expected {
		return &TypeMismatchError{Name: n.FullyQualifiedName(), Expected: expected, Actual: n.typ}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.FullyQualifiedName()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal Name: %w", err)
	}
	*n = parsed
	return nil
}
