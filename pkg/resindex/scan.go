package resindex

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/stackb/resname/pkg/resname"
)

// valuesType is the directory type whose files declare many resources each.
// Their names live inside the xml and are not derived from the path.
const valuesType = "values"

type ScanOption func(*scanner) *scanner

// WithPackageID sets the package byte of the assigned identifiers.
func WithPackageID(id uint8) ScanOption {
	return func(s *scanner) *scanner {
		s.packageID = id
		return s
	}
}

// WithInclude restricts the scan to files matching one of the doublestar
// patterns, relative to the scanned root.
func WithInclude(patterns ...string) ScanOption {
	return func(s *scanner) *scanner {
		s.includes = append(s.includes, patterns...)
		return s
	}
}

// WithExclude skips files matching any of the doublestar patterns, relative
// to the scanned root.
func WithExclude(patterns ...string) ScanOption {
	return func(s *scanner) *scanner {
		s.excludes = append(s.excludes, patterns...)
		return s
	}
}

// WithScanLogger sets the logger used to report skipped and folded files.
func WithScanLogger(logger zerolog.Logger) ScanOption {
	return func(s *scanner) *scanner {
		s.logger = logger
		return s
	}
}

var defaultScanOptions = []ScanOption{
	WithPackageID(DefaultPackageID),
}

type scanner struct {
	packageID uint8
	includes  []string
	excludes  []string
	logger    zerolog.Logger
}

// Scan derives the file-based resources of a res directory.  Each file
// directly under a type directory names one resource; qualifier variants of
// the same file ("layout/main.xml", "layout-land/main.xml") fold into one
// name.  Types are numbered from 1 in sorted order and entries from 0 in
// sorted order within their type.
func Scan(fsys fs.FS, namespace string, options ...ScanOption) (*IndexSpec, error) {
	s := &scanner{logger: zerolog.Nop()}
	for _, opt := range append(defaultScanOptions, options...) {
		s = opt(s)
	}
	for _, pattern := range append(append([]string{}, s.includes...), s.excludes...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	files, err := doublestar.Glob(fsys, "*/*", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}
	sort.Strings(files)

	byType := make(map[string]map[string]bool)
	seen := make(map[resname.Name]bool)
	seenInDir := make(map[string]bool)

	for _, file := range files {
		if !s.wanted(file) {
			continue
		}
		name, err := resname.FromFilePathWith(resname.SlashPaths{}, namespace, file)
		if err != nil {
			return nil, err
		}
		dirKey := path.Dir(file) + "\x00" + name.Entry()
		if seenInDir[dirKey] {
			s.logger.Warn().Str("file", file).Str("name", name.String()).Msg("duplicate resource in directory")
			continue
		}
		seenInDir[dirKey] = true
		if seen[name] {
			s.logger.Debug().Str("file", file).Str("name", name.String()).Msg("folding qualifier variant")
			continue
		}
		seen[name] = true

		entries, ok := byType[name.Type()]
		if !ok {
			entries = make(map[string]bool)
			byType[name.Type()] = entries
		}
		entries[name.Entry()] = true
	}

	return s.assign(namespace, byType)
}

func (s *scanner) wanted(file string) bool {
	dir, base := path.Split(file)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(dir, ".") {
		s.logger.Debug().Str("file", file).Msg("skipping hidden file")
		return false
	}
	if typ, _, _ := strings.Cut(strings.TrimSuffix(dir, "/"), "-"); typ == valuesType {
		s.logger.Debug().Str("file", file).Msg("skipping values file")
		return false
	}
	if len(s.includes) > 0 && !matchAny(s.includes, file) {
		s.logger.Debug().Str("file", file).Msg("not included")
		return false
	}
	if matchAny(s.excludes, file) {
		s.logger.Debug().Str("file", file).Msg("excluded")
		return false
	}
	return true
}

func (s *scanner) assign(namespace string, byType map[string]map[string]bool) (*IndexSpec, error) {
	types := make([]string, 0, len(byType))
	for typ := range byType {
		types = append(types, typ)
	}
	sort.Strings(types)
	if len(types) > math.MaxUint8 {
		return nil, fmt.Errorf("too many resource types: %d", len(types))
	}

	spec := &IndexSpec{}
	for i, typ := range types {
		names := make([]string, 0, len(byType[typ]))
		for name := range byType[typ] {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) > math.MaxUint16+1 {
			return nil, fmt.Errorf("too many %s resources: %d", typ, len(names))
		}
		for j, name := range names {
			spec.Entries = append(spec.Entries, &EntrySpec{
				Namespace: namespace,
				Type:      typ,
				Name:      name,
				ID:        MakeID(s.packageID, uint8(i+1), uint16(j)),
			})
		}
	}
	return spec, nil
}

func matchAny(patterns []string, file string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, file); ok {
			return true
		}
	}
	return false
}
