// Package cenum generates C-style enums for Go: defined integer types
// whose named constants behave like enum variants while every other value
// of the underlying kind stays valid, comparable, matchable and printable.
//
// Declarations live in comment blocks marked "cenum:" (see the syntax
// package); Process scans the configured packages and renders one
// generated file next to each declaring source file.
package cenum

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pablor21/cenum/config"
	"github.com/pablor21/cenum/gen"
	"github.com/pablor21/cenum/logger"
	"github.com/pablor21/cenum/parser"
	"github.com/pablor21/cenum/syntax"
	"github.com/pablor21/cenum/types"
	"github.com/pablor21/cenum/utils"
)

// Process generates enums with the default configuration.
func Process() (*types.Result, error) {
	return ProcessWithConfig(config.NewDefaultConfig())
}

// ProcessWithConfig generates enums with the provided configuration.
func ProcessWithConfig(cfg *config.Config) (*types.Result, error) {
	ctx := &types.ProcessContext{
		Config:     cfg,
		Logger:     logger.New(cfg.Level()),
		ModulePath: detectModulePath(),
	}
	return ProcessWithContext(ctx)
}

// ProcessWithContext scans the configured packages, parses and resolves
// every declaration block, and renders the generated sources. All failing
// declaration sites are reported together, each with its file position.
func ProcessWithContext(ctx *types.ProcessContext) (*types.Result, error) {
	p := parser.NewParser()
	if err := p.ParsePackages(ctx.Config.Scanning.Packages); err != nil {
		return nil, err
	}

	blocks := p.ExtractBlocks()
	ctx.Logger.Debug("scan finished", "files", len(p.Files()), "blocks", len(blocks))

	res := types.NewResult()
	perFile := make(map[string][]*types.EnumInfo)
	var fileOrder []string
	var errs []error

	for _, block := range blocks {
		decls, err := syntax.Parse(block.Source)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, decl := range decls {
			info, err := types.Resolve(decl)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			info.Package = block.Package
			info.SourceFile = block.File
			res.Enums = append(res.Enums, info)
			if _, seen := perFile[block.File]; !seen {
				fileOrder = append(fileOrder, block.File)
			}
			perFile[block.File] = append(perFile[block.File], info)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	suffix := ctx.Config.Output.Suffix
	if suffix == "" {
		suffix = "_cenum.go"
	}
	for _, file := range fileOrder {
		enums := perFile[file]
		out := strings.TrimSuffix(file, ".go") + suffix
		src, err := gen.File(out, enums[0].Package, ctx.Config.Output.Header, enums)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res.Files = append(res.Files, &types.GeneratedFile{
			Path:    out,
			Package: enums[0].Package,
			Source:  src,
		})
		ctx.Logger.Debug("rendered", "file", out, "enums", len(enums))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

// WriteFiles persists every generated file of a run.
func WriteFiles(res *types.Result) error {
	for _, f := range res.Files {
		if err := utils.EnsureDir(filepath.Dir(f.Path)); err != nil {
			return fmt.Errorf("create output directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(f.Path, f.Source, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

// detectModulePath reads the module path from the nearest go.mod.
func detectModulePath() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		content, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			for _, line := range strings.Split(string(content), "\n") {
				if after, ok := strings.CutPrefix(strings.TrimSpace(line), "module "); ok {
					return strings.TrimSpace(after)
				}
			}
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
