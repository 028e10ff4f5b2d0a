// Command cenum scans Go packages for cenum declaration blocks and writes
// the generated enum sources next to their declaring files. It is meant to
// be driven by go:generate:
//
//	//go:generate go run github.com/pablor21/cenum/cmd/cenum -pkg .
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pablor21/cenum"
	"github.com/pablor21/cenum/config"
	"github.com/pablor21/cenum/logger"
	"github.com/pablor21/cenum/utils"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a yaml or json config file")
		suffix     = flag.String("suffix", "", `output file suffix (default "_cenum.go")`)
		dryRun     = flag.Bool("dry-run", false, "render everything but write nothing")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	var patterns multiFlag
	flag.Var(&patterns, "pkg", "package, directory or glob pattern to scan (repeatable)")
	flag.Parse()

	cfg := config.NewDefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfigFromFile(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}
	if scan := append([]string(patterns), flag.Args()...); len(scan) > 0 {
		cfg.Scanning.Packages = scan
	}
	if *suffix != "" {
		cfg.Output.Suffix = *suffix
	}
	if *dryRun {
		cfg.Output.DryRun = true
	}
	if *verbose {
		cfg.LogLevel = utils.Ptr(logger.LevelDebug)
	}

	res, err := cenum.ProcessWithConfig(cfg)
	if err != nil {
		fail(err)
	}

	if !cfg.Output.DryRun {
		if err := cenum.WriteFiles(res); err != nil {
			fail(err)
		}
	}

	log := logger.New(cfg.Level())
	for _, f := range res.Files {
		log.Info("generated", "file", f.Path)
	}
	if len(res.Files) == 0 {
		log.Warn("no cenum declarations found", "patterns", cfg.Scanning.Packages)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "cenum:", err)
	os.Exit(1)
}

type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
