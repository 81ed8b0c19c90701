package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/stackb/resname/pkg/collections"
	"github.com/stackb/resname/pkg/logger"
	"github.com/stackb/resname/pkg/procutil"
	"github.com/stackb/resname/pkg/resindex"
)

type config struct {
	resDir     string
	namespace  string
	packageID  string
	includes   collections.StringSlice
	excludes   collections.StringSlice
	outputFile string
	verbose    bool
}

func main() {
	conf := config{}
	fs := flag.NewFlagSet("resindexer", flag.ContinueOnError)

	fs.StringVar(&conf.resDir, "res_dir", "", "the res directory to scan")
	fs.StringVar(&conf.namespace, "namespace", procutil.LookupEnv(procutil.RESNAME_NAMESPACE, ""), "the namespace that owns the resources")
	fs.StringVar(&conf.packageID, "package_id", "0x7f", "the package byte of the assigned identifiers")
	fs.Var(&conf.includes, "include", "only index files matching the pattern; repeatable")
	fs.Var(&conf.excludes, "exclude", "skip files matching the pattern; repeatable")
	fs.StringVar(&conf.outputFile, "output_file", "", "the index file to write (.json, .yaml, .yml, .pb or .db)")
	fs.BoolVar(&conf.verbose, "verbose", procutil.LookupBoolEnv(procutil.RESNAME_VERBOSE, false), "log skipped and folded files")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := logger.New("resindexer", os.Stderr, conf.verbose)
	if err := run(log, &conf); err != nil {
		log.Fatal().Err(err).Msg("resindexer failed")
	}
}

func run(log zerolog.Logger, conf *config) error {
	if conf.resDir == "" {
		return fmt.Errorf("-res_dir is required")
	}
	if conf.outputFile == "" {
		return fmt.Errorf("-output_file is required")
	}
	packageID, err := strconv.ParseUint(conf.packageID, 0, 8)
	if err != nil {
		return fmt.Errorf("invalid -package_id %q: %w", conf.packageID, err)
	}
	if info, err := os.Stat(conf.resDir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", conf.resDir)
	}

	spec, err := resindex.Scan(os.DirFS(conf.resDir), conf.namespace,
		resindex.WithPackageID(uint8(packageID)),
		resindex.WithInclude(conf.includes...),
		resindex.WithExclude(conf.excludes...),
		resindex.WithScanLogger(log),
	)
	if err != nil {
		return fmt.Errorf("scan %s: %w", conf.resDir, err)
	}
	log.Info().
		Str("res_dir", conf.resDir).
		Str("namespace", conf.namespace).
		Int("entries", len(spec.Entries)).
		Msg("scanned resources")

	return resindex.WriteIndexSpec(conf.outputFile, spec)
}
