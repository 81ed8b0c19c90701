package resname

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// PathUtil extracts the parts of a resource file path that name the
// resource.
type PathUtil interface {
	// ParentDirName returns the name of the directory containing the file,
	// such as "layout-land" for "res/layout-land/main.xml".  It fails if the
	// path has no parent directory.
	ParentDirName(p string) (string, error)
	// BaseNameWithoutExt returns the file name up to its first '.', such as
	// "button" for "res/drawable/button.9.png".
	BaseNameWithoutExt(p string) (string, error)
}

// OSPaths implements PathUtil for paths using the host separator.
type OSPaths struct{}

// ParentDirName implements part of the PathUtil interface.
func (OSPaths) ParentDirName(p string) (string, error) {
	return parentDirName(p, filepath.Dir(filepath.Clean(p)), filepath.Base, string(filepath.Separator))
}

// BaseNameWithoutExt implements part of the PathUtil interface.
func (OSPaths) BaseNameWithoutExt(p string) (string, error) {
	return baseNameWithoutExt(p, filepath.Base(p))
}

// SlashPaths implements PathUtil for forward-slash paths, such as those of
// an io/fs.FS.
type SlashPaths struct{}

// ParentDirName implements part of the PathUtil interface.
func (SlashPaths) ParentDirName(p string) (string, error) {
	return parentDirName(p, path.Dir(path.Clean(p)), path.Base, "/")
}

// BaseNameWithoutExt implements part of the PathUtil interface.
func (SlashPaths) BaseNameWithoutExt(p string) (string, error) {
	return baseNameWithoutExt(p, path.Base(p))
}

func parentDirName(p, dir string, base func(string) string, sep string) (string, error) {
	if dir == "." || dir == sep {
		return "", fmt.Errorf("%q has no parent directory", p)
	}
	return base(dir), nil
}

func baseNameWithoutExt(p, base string) (string, error) {
	if base == "." || base == "/" || base == string(filepath.Separator) {
		return "", fmt.Errorf("%q has no file name", p)
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i], nil
	}
	return base, nil
}

// FromFilePath derives a name from the path of a file-based resource.  The
// type is taken from the parent directory with any qualifiers removed and the
// entry is the file name without extension, so "res/layout-land/main.xml"
// becomes "namespace:layout/main".
func FromFilePath(namespace, p string) (Name, error) {
	return FromFilePathWith(OSPaths{}, namespace, p)
}

// FromFilePathWith is like FromFilePath using the given path utility.
func FromFilePathWith(paths PathUtil, namespace, p string) (Name, error) {
	dir, err := paths.ParentDirName(p)
	if err != nil {
		return Name{}, err
	}
	entry, err := paths.BaseNameWithoutExt(p)
	if err != nil {
		return Name{}, err
	}
	typ, _, _ := strings.Cut(dir, "-")
	return New(namespace, typ, entry), nil
}
