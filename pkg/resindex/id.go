package resindex

// DefaultPackageID is the package id assigned to application resources.
const DefaultPackageID = 0x7f

// MakeID packs a package id, a type id and an entry index into a resource
// identifier laid out as 0xPPTTEEEE.
func MakeID(pkg, typ uint8, entry uint16) int {
	return int(pkg)<<24 | int(typ)<<16 | int(entry)
}

// PackageID returns the package byte of a resource identifier.
func PackageID(id int) uint8 {
	return uint8(id >> 24)
}

// TypeID returns the type byte of a resource identifier.
func TypeID(id int) uint8 {
	return uint8(id >> 16)
}

// EntryID returns the entry index of a resource identifier.
func EntryID(id int) uint16 {
	return uint16(id)
}
