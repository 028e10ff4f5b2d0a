package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pablor21/cenum/syntax"
	"github.com/pablor21/cenum/types"
)

func resolve(t *testing.T, text string) []*types.EnumInfo {
	t.Helper()
	s := &syntax.Source{Filename: "decl.go"}
	for i, line := range strings.Split(text, "\n") {
		s.Lines = append(s.Lines, syntax.SourceLine{Text: line, Line: i + 1, Col: 1})
	}
	decls, err := syntax.Parse(s)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var enums []*types.EnumInfo
	for _, decl := range decls {
		info, err := types.Resolve(decl)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		enums = append(enums, info)
	}
	return enums
}

func TestFileGolden(t *testing.T) {
	enums := resolve(t, `
// Color is the painting palette.
pub enum Color : uint8 {
	Red,
	Green,
	Blue = 5,
	Indigo,
}`)

	got, err := File("palette/color_cenum.go", "palette", "", enums)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	want, err := os.ReadFile(filepath.Join("testdata", "color.go.golden"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("generated source mismatch (-want +got):\n%s", diff)
	}
}

func TestFileDeriveSections(t *testing.T) {
	enums := resolve(t, "derive(text, json, yaml) enum Mode : int16 { Off, On }")
	got, err := File("mode_cenum.go", "modes", "", enums)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	src := string(got)
	for _, want := range []string{
		"func parseMode(s string) (Mode, error)",
		"func (v Mode) MarshalText() ([]byte, error)",
		"func (v *Mode) UnmarshalText(text []byte) error",
		"func (v Mode) MarshalJSON() ([]byte, error)",
		"func (v *Mode) UnmarshalJSON(data []byte) error",
		"func (v *Mode) UnmarshalYAML(node *yaml.Node) error",
		`"gopkg.in/yaml.v3"`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source is missing %q", want)
		}
	}
}

func TestFileAliasedValues(t *testing.T) {
	enums := resolve(t, "derive(text) enum Errno : int16 { EAgain = 11, EWouldBlock = 11 }")
	got, err := File("errno_cenum.go", "errnos", "", enums)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	src := string(got)
	if !strings.Contains(src, "EWouldBlock Errno = 11") {
		t.Error("alias constant not declared")
	}
	// Go rejects duplicate case values, so the alias must not reappear in
	// the value switches; only its name is parseable.
	if strings.Contains(src, "case EWouldBlock") {
		t.Error("alias value used as a switch case")
	}
	if !strings.Contains(src, `case "EWouldBlock":`) {
		t.Error("alias name not accepted by the parse helper")
	}
}

func TestFileEntryDocsForwarded(t *testing.T) {
	enums := resolve(t, `
enum Color : uint8 {
	// Out of band.
	Blue = 5,
}`)
	got, err := File("color_cenum.go", "palette", "", enums)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if !strings.Contains(string(got), "// Out of band.") {
		t.Error("entry doc comment not forwarded")
	}
}

func TestFileCustomHeader(t *testing.T) {
	enums := resolve(t, "enum E : int8 { A }")
	got, err := File("e_cenum.go", "p", "// Code generated by tooling; DO NOT EDIT.", enums)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if !strings.HasPrefix(string(got), "// Code generated by tooling; DO NOT EDIT.\n") {
		t.Errorf("custom header not used:\n%s", got)
	}
}

func TestFileEmptyEnum(t *testing.T) {
	enums := resolve(t, "enum Opaque : uint64 { }")
	got, err := File("opaque_cenum.go", "p", "", enums)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	src := string(got)
	if !strings.Contains(src, "type Opaque uint64") {
		t.Error("type not declared")
	}
	if strings.Contains(src, "const (") {
		t.Error("const block emitted for an empty enum")
	}
	if !strings.Contains(src, "return false") {
		t.Error("Known() should report false for every value")
	}
}
