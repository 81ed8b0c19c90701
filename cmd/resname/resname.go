package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/stackb/resname/pkg/collections"
	"github.com/stackb/resname/pkg/logger"
	"github.com/stackb/resname/pkg/procutil"
	"github.com/stackb/resname/pkg/resindex"
	"github.com/stackb/resname/pkg/resname"
)

type config struct {
	namespace     string
	defaultType   string
	indexFiles    collections.StringSlice
	boltFile      string
	selectPattern string
	byID          bool
	verbose       bool
}

func main() {
	conf := config{}
	fs := flag.NewFlagSet("resname", flag.ContinueOnError)

	fs.StringVar(&conf.namespace, "namespace", procutil.LookupEnv(procutil.RESNAME_NAMESPACE, ""), "the namespace references are resolved against")
	fs.StringVar(&conf.defaultType, "type", "", "the type of references that do not name one")
	fs.Var(&conf.indexFiles, "index_file", "an index file to consult (.json, .yaml, .yml or .pb); repeatable")
	fs.StringVar(&conf.boltFile, "bolt_file", "", "a bolt index database consulted after the index files")
	fs.StringVar(&conf.selectPattern, "select", "", "print the indexed entries whose name matches the pattern")
	fs.BoolVar(&conf.byID, "by_id", false, "treat arguments as resource identifiers and print their names")
	fs.BoolVar(&conf.verbose, "verbose", procutil.LookupBoolEnv(procutil.RESNAME_VERBOSE, false), "log unresolved references")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := logger.New("resname", os.Stderr, conf.verbose)
	if err := run(os.Stdout, log, &conf, fs.Args()); err != nil {
		log.Fatal().Err(err).Msg("resname failed")
	}
}

func run(w io.Writer, log zerolog.Logger, conf *config, args []string) error {
	index, closeIndex, err := openIndex(log, conf)
	if err != nil {
		return err
	}
	defer closeIndex()

	switch {
	case conf.selectPattern != "":
		return selectEntries(w, index, conf.selectPattern)
	case conf.byID:
		return describeIDs(w, index, args)
	}

	resolver := resname.NewResolver(resindex.NewMemoIndex(index), conf.namespace, resname.WithLogger(log))
	for _, ref := range args {
		if err := describe(w, log, resolver, conf.defaultType, ref); err != nil {
			return err
		}
	}
	return nil
}

// openIndex chains the index files in flag order, then the bolt database.
func openIndex(log zerolog.Logger, conf *config) (*resindex.ChainIndex, func() error, error) {
	var chain []resname.ResourceIndex
	for _, filename := range conf.indexFiles {
		spec, err := resindex.ReadIndexSpec(filename)
		if err != nil {
			return nil, nil, err
		}
		ix := resindex.NewTrieIndex()
		if err := spec.Load(ix); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", filename, err)
		}
		log.Debug().Str("file", filename).Int("entries", len(spec.Entries)).Msg("loaded index file")
		chain = append(chain, ix)
	}

	closer := func() error { return nil }
	if conf.boltFile != "" {
		db, err := resindex.OpenBoltIndex(conf.boltFile, resindex.WithReadOnly(), resindex.WithBoltLogger(log))
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, db)
		closer = db.Close
	}

	return resindex.NewChainIndex(chain...), closer, nil
}

func describe(w io.Writer, log zerolog.Logger, resolver *resname.Resolver, defaultType, ref string) error {
	name, ok, err := resolver.ResolveName(ref)
	if err != nil {
		return err
	}

	id := "-"
	switch {
	case ok:
		if v, found, err := resolver.ResolveID(ref); err != nil {
			return err
		} else if found {
			id = formatID(v)
		}
	case defaultType != "" && ref != "" && ref != resname.NullReference:
		qualified, qok := resolver.Qualify(ref, defaultType)
		if !qok {
			break
		}
		// decorations are stripped as for references that name a type
		if name, ok, err = resolver.ResolveName(qualified.FullyQualifiedName()); err != nil {
			return err
		} else if !ok {
			break
		}
		if v, found, err := resolver.ResolveID(name.FullyQualifiedName()); err != nil {
			return err
		} else if found {
			id = formatID(v)
		}
	}

	fqn := "-"
	if ok {
		fqn = name.FullyQualifiedName()
	} else {
		log.Debug().Str("ref", ref).Msg("unqualifiable reference")
	}
	_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", ref, fqn, id)
	return err
}

func selectEntries(w io.Writer, index resindex.Lister, pattern string) error {
	entries, err := resindex.Select(index, pattern)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Name.FullyQualifiedName(), formatID(e.ID)); err != nil {
			return err
		}
	}
	return nil
}

func describeIDs(w io.Writer, index resindex.Lister, args []string) error {
	byID := resindex.ByID(index)
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid resource id %q: %w", arg, err)
		}
		fqn := "-"
		if e, ok := byID[int(v)]; ok {
			fqn = e.Name.FullyQualifiedName()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", formatID(int(v)), fqn); err != nil {
			return err
		}
	}
	return nil
}

func formatID(id int) string {
	return fmt.Sprintf("0x%08x", uint32(id))
}
