// Package parser scans Go source files for cenum declaration blocks.
//
// A declaration block is a comment group whose first line starts with the
// "cenum:" marker; the rest of the group is declaration text in the syntax
// package's grammar. Positions are preserved per line so every diagnostic
// points at the real file location.
package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pablor21/cenum/syntax"
	"github.com/pablor21/cenum/utils"
)

// Marker opens a declaration block inside a comment group.
const Marker = "cenum:"

// DeclBlock is one extracted declaration block, still unparsed.
type DeclBlock struct {
	File    string // declaring source file
	Package string // declaring package name
	Source  *syntax.Source
}

// Parser scans Go source files and extracts declaration blocks.
type Parser struct {
	fset    *token.FileSet
	sources []*sourceFile
}

type sourceFile struct {
	path string
	pkg  string
	file *ast.File
	fset *token.FileSet
}

func NewParser() *Parser {
	return &Parser{fset: token.NewFileSet()}
}

// ParsePackages loads the given patterns. Import-path patterns (including
// ./... forms resolvable from the working directory) go through
// go/packages; directories, files and globs are parsed directly so the
// scanner also works on sources outside any module.
func (p *Parser) ParsePackages(patterns []string) error {
	include, exclude := utils.SplitPatterns(patterns)
	if len(include) == 0 {
		return fmt.Errorf("no scan patterns given")
	}

	if utils.AllImportPaths(patterns) {
		pkgs, err := utils.LoadPackages(include...)
		if err != nil {
			return fmt.Errorf("failed to load packages: %w", err)
		}
		for _, pkg := range pkgs {
			for _, file := range pkg.Syntax {
				// Syntax aligns with CompiledGoFiles, not GoFiles, so take
				// the path from the AST itself.
				path := pkg.Fset.Position(file.Pos()).Filename
				p.sources = append(p.sources, &sourceFile{
					path: path,
					pkg:  pkg.Name,
					file: file,
					fset: pkg.Fset,
				})
			}
		}
		return p.applyExcludes(exclude)
	}

	for _, pattern := range include {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			if err := p.parseDir(pattern); err != nil {
				return err
			}
			continue
		}
		matches, err := utils.ExpandGlobs(pattern)
		if err != nil {
			return fmt.Errorf("glob pattern error: %w", err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if err := p.parseDir(match); err != nil {
					return err
				}
			} else if strings.HasSuffix(match, ".go") {
				if err := p.parseFile(match); err != nil {
					return err
				}
			}
		}
	}
	return p.applyExcludes(exclude)
}

func (p *Parser) applyExcludes(exclude []string) error {
	if len(exclude) == 0 {
		return nil
	}
	drop := make(map[string]struct{})
	for _, pattern := range exclude {
		matches, err := utils.ExpandGlobs(pattern)
		if err != nil {
			return fmt.Errorf("exclude glob pattern error: %w", err)
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err == nil {
				drop[abs] = struct{}{}
			}
			drop[m] = struct{}{}
		}
	}
	kept := p.sources[:0]
	for _, sf := range p.sources {
		if _, ok := drop[sf.path]; ok {
			continue
		}
		if abs, err := filepath.Abs(sf.path); err == nil {
			if _, ok := drop[abs]; ok {
				continue
			}
		}
		kept = append(kept, sf)
	}
	p.sources = kept
	return nil
}

func (p *Parser) parseDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if err := p.parseFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseFile(path string) error {
	file, err := goparser.ParseFile(p.fset, path, nil, goparser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	p.sources = append(p.sources, &sourceFile{
		path: path,
		pkg:  file.Name.Name,
		file: file,
		fset: p.fset,
	})
	return nil
}

// Files returns the paths of every scanned source file.
func (p *Parser) Files() []string {
	paths := make([]string, 0, len(p.sources))
	for _, sf := range p.sources {
		paths = append(paths, sf.path)
	}
	return paths
}

// ExtractBlocks returns every declaration block found, ordered by file.
func (p *Parser) ExtractBlocks() []*DeclBlock {
	var blocks []*DeclBlock
	for _, sf := range p.sources {
		for _, group := range sf.file.Comments {
			src := blockSource(sf, group)
			if src == nil {
				continue
			}
			blocks = append(blocks, &DeclBlock{
				File:    sf.path,
				Package: sf.pkg,
				Source:  src,
			})
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].File < blocks[j].File })
	return blocks
}

// blockSource turns a marked comment group into declaration source lines
// with original file positions, or nil when the group carries no marker.
func blockSource(sf *sourceFile, group *ast.CommentGroup) *syntax.Source {
	if len(group.List) == 0 {
		return nil
	}
	first := group.List[0]
	var lines []syntax.SourceLine

	if strings.HasPrefix(first.Text, "//") {
		rest := first.Text[2:]
		idx := strings.Index(rest, Marker)
		if idx < 0 || strings.TrimSpace(rest[:idx]) != "" {
			return nil
		}
		pos := sf.fset.Position(first.Pos())
		lines = append(lines, syntax.SourceLine{
			Text: rest[idx+len(Marker):],
			Line: pos.Line,
			Col:  pos.Column + 2 + idx + len(Marker),
		})
		for _, c := range group.List[1:] {
			if !strings.HasPrefix(c.Text, "//") {
				break
			}
			cpos := sf.fset.Position(c.Pos())
			lines = append(lines, syntax.SourceLine{
				Text: c.Text[2:],
				Line: cpos.Line,
				Col:  cpos.Column + 2,
			})
		}
	} else {
		body := strings.TrimSuffix(strings.TrimPrefix(first.Text, "/*"), "*/")
		idx := strings.Index(body, Marker)
		head, _, _ := strings.Cut(body, "\n")
		if idx < 0 || idx >= len(head) || strings.TrimSpace(body[:idx]) != "" {
			return nil
		}
		pos := sf.fset.Position(first.Pos())
		for i, text := range strings.Split(body, "\n") {
			if i == 0 {
				lines = append(lines, syntax.SourceLine{
					Text: text[idx+len(Marker):],
					Line: pos.Line,
					Col:  pos.Column + 2 + idx + len(Marker),
				})
				continue
			}
			lines = append(lines, syntax.SourceLine{
				Text: text,
				Line: pos.Line + i,
				Col:  1,
			})
		}
	}

	return &syntax.Source{Filename: sf.path, Lines: lines}
}
