package resname

import "strings"

// Qualify fills in the parts of a possibly partial reference that the text
// does not provide from the given defaults.  An empty default means there is
// no default.  The accepted forms are:
//
//	entry
//	type/entry
//	namespace:entry
//	namespace:type/entry
//	type/namespace:entry
//
// Qualify returns false if the namespace or the type is neither in the text
// nor in the defaults.
func Qualify(ref, defaultNamespace, defaultType string) (Name, bool) {
	colon := strings.IndexByte(ref, ':')
	slash := strings.IndexByte(ref, '/')

	var namespace, typ string
	var hasNamespace, hasType bool
	entry := ref

	// An absent separator has index -1, which sorts before every real
	// position.  Each branch below therefore implies at least one separator.
	if colon > slash {
		if slash > 0 {
			typ, hasType = ref[:slash], true
		}
		namespace, hasNamespace = ref[slash+1:colon], true
		entry = ref[colon+1:]
	} else if slash > colon {
		if colon > 0 {
			namespace, hasNamespace = ref[:colon], true
		}
		typ, hasType = ref[colon+1:slash], true
		entry = ref[slash+1:]
	}

	if !hasType {
		if defaultType == "" {
			return Name{}, false
		}
		typ = defaultType
	}
	if !hasNamespace {
		if defaultNamespace == "" {
			return Name{}, false
		}
		namespace = defaultNamespace
	}

	return New(namespace, typ, entry), true
}

// QualifyWith is like Qualify, taking the default namespace and type from an
// existing name.
func QualifyWith(ref string, defaults Name) (Name, bool) {
	return Qualify(ref, defaults.namespace, defaults.typ)
}

// QualifyString is like Qualify but returns the fully-qualified text.
func QualifyString(ref, defaultNamespace, defaultType string) (string, bool) {
	name, ok := Qualify(ref, defaultNamespace, defaultType)
	if !ok {
		return "", false
	}
	return name.FullyQualifiedName(), true
}
