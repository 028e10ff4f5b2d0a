package cenum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pablor21/cenum/config"
)

func TestProcessEndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "colors.go")
	if err := os.WriteFile(src, []byte(`package palette

/*cenum:
derive(text)
// Color is a palette slot.
pub enum Color : uint8 {
	Red,
	Green = 5,
	Blue,
}
*/
`), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	cfg := config.NewDefaultConfig()
	cfg.Scanning.Packages = []string{dir}

	res, err := ProcessWithConfig(cfg)
	if err != nil {
		t.Fatalf("ProcessWithConfig() error = %v", err)
	}
	if len(res.Enums) != 1 || len(res.Files) != 1 {
		t.Fatalf("got %d enums, %d files; want 1 and 1", len(res.Enums), len(res.Files))
	}

	info := res.EnumByName("Color")
	if info == nil {
		t.Fatal("EnumByName(Color) = nil")
	}
	if info.Package != "palette" || info.SourceFile != src {
		t.Errorf("enum attributed to %s in %q", info.Package, info.SourceFile)
	}
	if got := info.Values[2].Value.U; got != 6 {
		t.Errorf("Blue = %d, want 6", got)
	}

	f := res.Files[0]
	if f.Path != filepath.Join(dir, "colors_cenum.go") {
		t.Errorf("output path = %q", f.Path)
	}
	rendered := string(f.Source)
	for _, want := range []string{
		"package palette",
		"type Color uint8",
		"Green Color = 5",
		"func ColorFromRaw(v uint8) Color",
		"func (v *Color) UnmarshalText(text []byte) error",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("generated source is missing %q", want)
		}
	}

	if err := WriteFiles(res); err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	written, err := os.ReadFile(f.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(written) != rendered {
		t.Error("written file differs from rendered source")
	}
}

func TestProcessCustomSuffixAndHeader(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mode.go")
	if err := os.WriteFile(src, []byte("package m\n\n//cenum: enum Mode : int8 { Off, On }\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	cfg := config.NewDefaultConfig()
	cfg.Scanning.Packages = []string{dir}
	cfg.Output.Suffix = "_enums.go"
	cfg.Output.Header = "// Code generated by tooling; DO NOT EDIT."

	res, err := ProcessWithConfig(cfg)
	if err != nil {
		t.Fatalf("ProcessWithConfig() error = %v", err)
	}
	f := res.Files[0]
	if f.Path != filepath.Join(dir, "mode_enums.go") {
		t.Errorf("output path = %q, want the custom suffix", f.Path)
	}
	if !strings.HasPrefix(string(f.Source), cfg.Output.Header+"\n") {
		t.Error("custom header not applied")
	}
}

func TestProcessReportsAllFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad1.go"), []byte("package m\n\n//cenum: enum E : int8 { A, B, A }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad2.go"), []byte("package m\n\n//cenum: enum F : int8 { X = 999 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewDefaultConfig()
	cfg.Scanning.Packages = []string{dir}

	_, err := ProcessWithConfig(cfg)
	if err == nil {
		t.Fatal("ProcessWithConfig() succeeded, want both declaration errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, `duplicate entry name "A"`) {
		t.Errorf("error %q does not name the duplicate", msg)
	}
	if !strings.Contains(msg, "overflows int8") {
		t.Errorf("error %q does not name the overflow", msg)
	}
	if !strings.Contains(msg, "bad1.go") || !strings.Contains(msg, "bad2.go") {
		t.Errorf("error %q does not point at both files", msg)
	}
}

// The committed generated files in this repository are the tool's own
// output; regenerating them must be a no-op.
func TestProcessMatchesCommittedOutput(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Scanning.Packages = []string{"./logger", "./gen/enumtest"}
	cfg.Output.DryRun = true

	res, err := ProcessWithConfig(cfg)
	if err != nil {
		t.Fatalf("ProcessWithConfig() error = %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("rendered %d files, want 2", len(res.Files))
	}
	for _, f := range res.Files {
		committed, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		if diff := cmp.Diff(string(committed), string(f.Source)); diff != "" {
			t.Errorf("%s is out of date (-committed +rendered):\n%s", f.Path, diff)
		}
	}
}
