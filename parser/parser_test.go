package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pablor21/cenum/syntax"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func scan(t *testing.T, patterns ...string) *Parser {
	t.Helper()
	p := NewParser()
	if err := p.ParsePackages(patterns); err != nil {
		t.Fatalf("ParsePackages(%v) error = %v", patterns, err)
	}
	return p
}

func TestExtractBlocksBlockComment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "palette.go", `// Package palette is scanner test input.
package palette

/*cenum:
derive(text)
// Color is a palette slot.
enum Color : uint8 {
	Red,
	Green = 5,
}
*/
`)

	blocks := scan(t, dir).ExtractBlocks()
	if len(blocks) != 1 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Package != "palette" {
		t.Errorf("Package = %q, want palette", b.Package)
	}
	if filepath.Base(b.File) != "palette.go" {
		t.Errorf("File = %q, want palette.go", b.File)
	}

	decls, err := syntax.Parse(b.Source)
	if err != nil {
		t.Fatalf("Parse(block) error = %v", err)
	}
	if len(decls) != 1 || decls[0].Name != "Color" {
		t.Fatalf("parsed %+v, want one Color declaration", decls)
	}
	decl := decls[0]
	if len(decl.Doc) != 1 || decl.Doc[0] != "Color is a palette slot." {
		t.Errorf("Doc = %q, want the doc line", decl.Doc)
	}

	// Positions must point into the original file, not the block.
	green := decl.Entries[1]
	if green.Pos.Line != 9 || green.Pos.Column != 2 {
		t.Errorf("Green declared at %d:%d, want 9:2", green.Pos.Line, green.Pos.Column)
	}
	if green.Pos.Filename != b.File {
		t.Errorf("Green declared in %q, want %q", green.Pos.Filename, b.File)
	}
}

func TestExtractBlocksLineComment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "status.go", `package web

//cenum: derive(json)
// enum Status : uint16 {
// 	OK = 200,
// 	NotFound = 404,
// }
`)

	blocks := scan(t, dir).ExtractBlocks()
	if len(blocks) != 1 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 1", len(blocks))
	}

	decls, err := syntax.Parse(blocks[0].Source)
	if err != nil {
		t.Fatalf("Parse(block) error = %v", err)
	}
	decl := decls[0]
	if decl.Name != "Status" || len(decl.Entries) != 2 {
		t.Fatalf("parsed %+v, want Status with 2 entries", decl)
	}
	if got := decl.Derives; len(got) != 1 || got[0] != "json" {
		t.Errorf("Derives = %v, want [json]", got)
	}
	ok := decl.Entries[0]
	if ok.Pos.Line != 5 || ok.Pos.Column != 5 {
		t.Errorf("OK declared at %d:%d, want 5:5", ok.Pos.Line, ok.Pos.Column)
	}
}

func TestExtractBlocksIgnoresUnmarkedComments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.go", `// Package plain mentions cenum: in prose only.
package plain

//go:generate echo nothing

/* a block comment without any marker */

// This comment talks about cenum: syntax but does not open with it.
var x = 1
`)

	if blocks := scan(t, dir).ExtractBlocks(); len(blocks) != 0 {
		t.Errorf("ExtractBlocks() returned %d blocks, want none", len(blocks))
	}
}

func TestExtractBlocksMultipleFilesOrdered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.go", "package p\n\n//cenum: enum B : int8 { X }\n")
	writeFile(t, dir, "a.go", "package p\n\n//cenum: enum A : int8 { Y }\n")

	blocks := scan(t, dir).ExtractBlocks()
	if len(blocks) != 2 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 2", len(blocks))
	}
	if filepath.Base(blocks[0].File) != "a.go" || filepath.Base(blocks[1].File) != "b.go" {
		t.Errorf("blocks ordered %q, %q; want a.go, b.go", blocks[0].File, blocks[1].File)
	}
}

func TestParsePackagesExcludePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.go", "package p\n\n//cenum: enum Keep : int8 { K }\n")
	skip := writeFile(t, dir, "skip.go", "package p\n\n//cenum: enum Skip : int8 { S }\n")

	blocks := scan(t, dir, "!"+skip).ExtractBlocks()
	if len(blocks) != 1 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 1", len(blocks))
	}
	if filepath.Base(blocks[0].File) != "keep.go" {
		t.Errorf("kept %q, want keep.go", blocks[0].File)
	}
}

func TestParsePackagesImportPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/scanme\n\ngo 1.21\n")
	writeFile(t, dir, "colors.go", "package scanme\n\n//cenum: enum Color : uint8 { Red }\n")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	blocks := scan(t, "./...").ExtractBlocks()
	if len(blocks) != 1 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Package != "scanme" {
		t.Errorf("Package = %q, want scanme", b.Package)
	}
	// The block must be attributed to the real declaring file.
	if filepath.Base(b.File) != "colors.go" {
		t.Errorf("File = %q, want colors.go", b.File)
	}
	if b.Source.Filename != b.File {
		t.Errorf("Source.Filename = %q, want %q", b.Source.Filename, b.File)
	}
}

func TestParsePackagesGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.go", "package p\n\n//cenum: enum One : int8 { A }\n")
	writeFile(t, dir, "two.txt", "not go source")

	p := scan(t, filepath.Join(dir, "*.go"))
	if files := p.Files(); len(files) != 1 || filepath.Base(files[0]) != "one.go" {
		t.Errorf("Files() = %v, want one.go only", files)
	}
}

func TestParsePackagesNoPatterns(t *testing.T) {
	p := NewParser()
	if err := p.ParsePackages(nil); err == nil {
		t.Error("ParsePackages(nil) succeeded, want error")
	}
}
