package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/rs/zerolog"

	"github.com/stackb/resname/pkg/logger"
	"github.com/stackb/resname/pkg/procutil"
	"github.com/stackb/resname/pkg/resindex"
)

var (
	outputFile string
	verbose    bool
)

func main() {
	fs := flag.NewFlagSet("mergeindex", flag.ContinueOnError)
	fs.StringVar(&outputFile, "output_file", "", "the output file to write (.json, .yaml, .yml, .pb or .db)")
	fs.BoolVar(&verbose, "verbose", procutil.LookupBoolEnv(procutil.RESNAME_VERBOSE, false), "log every merged file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	log := logger.New("mergeindex", os.Stderr, verbose)

	if outputFile == "" {
		log.Fatal().Msg("-output_file is required")
	}
	if len(fs.Args()) == 0 {
		log.Fatal().Strs("args", os.Args).Msg("positional args should be a non-empty list of index files to merge")
	}
	spec, err := merge(log, fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("merge failed")
	}
	if err := resindex.WriteIndexSpec(outputFile, spec); err != nil {
		log.Fatal().Err(err).Msg("write failed")
	}
}

// merge combines the index files in order.  A name registered again with a
// different id keeps its first id; an id claimed by more than one name is
// reported but kept.
func merge(log zerolog.Logger, filenames []string) (*resindex.IndexSpec, error) {
	index := resindex.NewMapIndex()

	// namesByID is used to check if more than one name claims a given id.
	namesByID := make(map[int][]string)

	for _, filename := range filenames {
		spec, err := resindex.ReadIndexSpec(filename)
		if err != nil {
			return nil, err
		}
		for i, e := range spec.Entries {
			if e == nil || e.Type == "" || e.Name == "" {
				return nil, fmt.Errorf("%s: entry %d: type and name are required", filename, i)
			}
			name := e.ResName()
			var dup *resindex.DuplicateNameError
			if err := index.Put(name, e.ID); errors.As(err, &dup) {
				log.Warn().Str("file", filename).Err(err).Msg("keeping first id")
				continue
			} else if err != nil {
				return nil, err
			}
			if !slices.Contains(namesByID[e.ID], name.String()) {
				namesByID[e.ID] = append(namesByID[e.ID], name.String())
			}
		}
		log.Debug().Str("file", filename).Int("entries", len(spec.Entries)).Msg("merged index file")
	}

	ids := make([]int, 0, len(namesByID))
	for id := range namesByID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if names := namesByID[id]; len(names) > 1 {
			log.Warn().Str("id", fmt.Sprintf("%#08x", id)).Strs("names", names).Msg("id is claimed by more than one name")
		}
	}

	return resindex.SpecFromEntries(index.Entries()), nil
}
