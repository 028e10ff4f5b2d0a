// Package gen emits the Go source for resolved enum declarations.
//
// For every declaring source file the emitter produces one generated file
// holding, per enum: the defined integer type, the named constants, total
// raw conversions in both directions, matching and rendering support, and
// the derives the declaration asked for.
package gen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/pablor21/cenum/types"
)

// DefaultHeader is the marker line Go tooling recognizes on generated files.
const DefaultHeader = "// Code generated by cenum. DO NOT EDIT."

var tmpl = template.Must(template.New("enum").Parse(enumTemplate))

// File renders the generated source for every enum declared in one input
// file. path is the intended output path (used for import resolution while
// formatting); pkg is the declaring package name.
func File(path, pkg, header string, enums []*types.EnumInfo) ([]byte, error) {
	if header == "" {
		header = DefaultHeader
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n", header, pkg)
	writeImports(&buf, enums)

	// The template opens every section with a newline, so enums chain
	// directly after the import block.
	for _, e := range enums {
		if err := tmpl.Execute(&buf, newEnumData(e)); err != nil {
			return nil, fmt.Errorf("render enum %s: %w", e.Name, err)
		}
	}

	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source for %s: %w", path, err)
	}
	return src, nil
}

func writeImports(buf *bytes.Buffer, enums []*types.EnumInfo) {
	std := map[string]bool{"strconv": true}
	yaml := false
	for _, e := range enums {
		if needsParse(e) {
			std["fmt"] = true
			std["strings"] = true
		}
		if e.HasDerive("json") {
			std["encoding/json"] = true
		}
		if e.HasDerive("yaml") {
			yaml = true
		}
	}

	paths := make([]string, 0, len(std))
	for p := range std {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	buf.WriteString("\nimport (\n")
	for _, p := range paths {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	if yaml {
		buf.WriteString("\n\t\"gopkg.in/yaml.v3\"\n")
	}
	buf.WriteString(")\n")
}

func needsParse(e *types.EnumInfo) bool {
	return e.HasDerive("text") || e.HasDerive("json") || e.HasDerive("yaml")
}

// enumData is the fully precomputed template input for one enum; the
// template itself only prints.
type enumData struct {
	Name string
	Kind string
	Doc  []string

	Values    []valueData
	CaseNames []string // first name per distinct value, aliases skipped
	CaseList  string
	AllNames  []string // every name, aliases included

	FromRaw    string
	ParseFunc  string
	FormatExpr string
	ParseCall  string

	HasText    bool
	HasJSON    bool
	HasYAML    bool
	NeedsParse bool
}

type valueData struct {
	Name    string
	Literal string
	Doc     []string
}

func newEnumData(e *types.EnumInfo) *enumData {
	d := &enumData{
		Name:       e.Name,
		Kind:       e.Kind.String(),
		Doc:        e.Doc,
		FromRaw:    e.Name + "FromRaw",
		ParseFunc:  "parse" + exported(e.Name),
		HasText:    e.HasDerive("text"),
		HasJSON:    e.HasDerive("json"),
		HasYAML:    e.HasDerive("yaml"),
		NeedsParse: needsParse(e),
	}
	if len(d.Doc) == 0 {
		d.Doc = []string{fmt.Sprintf("%s is an open enum backed by %s; values outside the named set remain valid.", e.Name, d.Kind)}
	}

	for _, v := range e.Values {
		d.Values = append(d.Values, valueData{
			Name:    v.Name,
			Literal: v.Value.Format(e.Kind),
			Doc:     v.Doc,
		})
		d.AllNames = append(d.AllNames, v.Name)
		if !v.IsAlias() {
			d.CaseNames = append(d.CaseNames, v.Name)
		}
	}
	d.CaseList = strings.Join(d.CaseNames, ", ")

	if e.Kind.Signed() {
		d.FormatExpr = "strconv.FormatInt(int64(v), 10)"
		d.ParseCall = fmt.Sprintf("strconv.ParseInt(num, 0, %d)", e.Kind.Bits())
	} else {
		d.FormatExpr = "strconv.FormatUint(uint64(v), 10)"
		d.ParseCall = fmt.Sprintf("strconv.ParseUint(num, 0, %d)", e.Kind.Bits())
	}

	return d
}

// exported upper-cases the first rune so the parse helper reads naturally
// for unexported enum names too (parseFoo, not parsefoo).
func exported(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
