// Package syntax defines the cenum declaration language and its parser.
//
// A declaration names an integer-backed type together with a list of named
// constants, in the shape of a C enum:
//
//	derive(text)
//	pub enum Signal : int32 {
//		SIGHUP = 1,
//		SIGINT,
//	}
//
// Entries without an explicit value continue counting from the previous
// entry, starting at 0. Any value of the underlying kind remains valid for
// the generated type; the named entries are just distinguished values.
package syntax

import "go/token"

// Decl is a single parsed enum declaration.
type Decl struct {
	Doc     []string // doc lines forwarded verbatim onto the generated type
	Derives []string // requested extra capabilities (text, json, yaml)
	Pub     bool     // "pub" marker was present (informational; Go visibility follows the name)
	Name    string
	Kind    Kind
	Entries []Entry
	Pos     token.Position
}

// Entry is one named constant of a declaration.
type Entry struct {
	Doc      []string // doc lines forwarded verbatim onto the generated constant
	Name     string
	Explicit bool  // an "= literal" was written
	Value    Value // meaningful only when Explicit
	Pos      token.Position
}

// Derives supported by the generator. Anything else is rejected at parse
// time so a typo does not silently drop a capability.
var validDerives = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// HasDerive reports whether the declaration requested the named capability.
func (d *Decl) HasDerive(name string) bool {
	for _, der := range d.Derives {
		if der == name {
			return true
		}
	}
	return false
}

// Source is a declaration block extracted from a Go comment group, with the
// original file positions preserved per line so diagnostics point at the
// real source location.
type Source struct {
	Filename string
	Lines    []SourceLine
}

// SourceLine is one line of declaration text and the position of its first
// character in the original file.
type SourceLine struct {
	Text string
	Line int // 1-based line in the original file
	Col  int // 1-based column of Text[0] in the original file
}
