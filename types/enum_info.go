// Package types holds the resolved enum model produced from parsed
// declarations, plus the processing context and result types.
package types

import (
	"go/token"

	"github.com/pablor21/cenum/syntax"
)

// EnumValue is a resolved named constant of an enum.
type EnumValue struct {
	Name     string
	Doc      []string // forwarded verbatim
	Value    syntax.Value
	Explicit bool   // value came from an "=" literal
	AliasOf  string // first entry with the same value, when this one repeats it
	Position token.Position
}

// IsAlias reports whether the value repeats an earlier entry's value.
// Aliases are legal; they matter to the emitter because Go rejects
// duplicate case and map-key constants.
func (v *EnumValue) IsAlias() bool { return v.AliasOf != "" }

// EnumInfo is a fully resolved enum declaration: every entry has its final
// value assigned by the C numbering rule.
type EnumInfo struct {
	Name       string
	Doc        []string
	Kind       syntax.Kind
	Derives    []string
	Pub        bool
	Values     []*EnumValue
	Package    string // declaring package name
	SourceFile string // file holding the declaration block
	Position   token.Position
}

// HasDerive reports whether the enum requested the named capability.
func (e *EnumInfo) HasDerive(name string) bool {
	for _, d := range e.Derives {
		if d == name {
			return true
		}
	}
	return false
}

// Resolve assigns a value to every entry of a parsed declaration and
// validates entry names.
//
// Numbering follows C: the first entry without an explicit value is 0,
// every other implicit entry is the previous entry's value plus one, and an
// explicit literal is taken verbatim (resetting the counter for what
// follows). Duplicate values across entries are allowed and recorded as
// aliases; duplicate names are an error naming both occurrences.
func Resolve(decl *syntax.Decl) (*EnumInfo, error) {
	info := &EnumInfo{
		Name:     decl.Name,
		Doc:      decl.Doc,
		Kind:     decl.Kind,
		Derives:  decl.Derives,
		Pub:      decl.Pub,
		Position: decl.Pos,
	}

	seen := make(map[string]token.Position, len(decl.Entries))
	firstByValue := make(map[syntax.Value]string, len(decl.Entries))
	var prev syntax.Value
	for i, entry := range decl.Entries {
		if firstPos, dup := seen[entry.Name]; dup {
			return nil, syntax.Errorf(entry.Pos, "duplicate entry name %q (first declared at %s)", entry.Name, firstPos)
		}
		seen[entry.Name] = entry.Pos

		value := entry.Value
		if !entry.Explicit {
			if i == 0 {
				value = syntax.Zero(decl.Kind)
			} else {
				next, ok := prev.Succ(decl.Kind)
				if !ok {
					return nil, syntax.Errorf(entry.Pos, "implicit value for %q overflows %s (previous entry holds %s)",
						entry.Name, decl.Kind, prev.Format(decl.Kind))
				}
				value = next
			}
		}
		prev = value

		ev := &EnumValue{
			Name:     entry.Name,
			Doc:      entry.Doc,
			Value:    value,
			Explicit: entry.Explicit,
			Position: entry.Pos,
		}
		if first, dup := firstByValue[value]; dup {
			ev.AliasOf = first
		} else {
			firstByValue[value] = entry.Name
		}
		info.Values = append(info.Values, ev)
	}

	return info, nil
}
