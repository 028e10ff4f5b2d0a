package syntax

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the underlying fixed-width integer kind of an enum declaration.
type Kind int

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// kindTokens maps accepted declaration tokens to kinds. byte and rune are
// the usual Go aliases.
var kindTokens = map[string]Kind{
	"int8":   Int8,
	"int16":  Int16,
	"int32":  Int32,
	"int64":  Int64,
	"uint8":  Uint8,
	"uint16": Uint16,
	"uint32": Uint32,
	"uint64": Uint64,
	"byte":   Uint8,
	"rune":   Int32,
}

// KindFromToken resolves a declaration token to a Kind.
func KindFromToken(tok string) (Kind, bool) {
	k, ok := kindTokens[tok]
	return k, ok
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	}
	return "int"
}

// Signed reports whether the kind is a signed integer type.
func (k Kind) Signed() bool {
	return k == Int8 || k == Int16 || k == Int32 || k == Int64
}

// Bits returns the width of the kind.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	}
	return 64
}

// Value is an integer representable in some Kind. Signed kinds populate I
// and leave U zero; unsigned kinds populate U and leave I zero, so values
// are comparable with == within one declaration.
type Value struct {
	I int64
	U uint64
}

// ParseValue parses an integer literal in the domain of k. Decimal, hex,
// octal and binary forms are accepted, with an optional leading sign for
// signed kinds. Errors are strconv range/syntax errors.
func ParseValue(lit string, k Kind) (Value, error) {
	if k.Signed() {
		i, err := strconv.ParseInt(lit, 0, k.Bits())
		if err != nil {
			return Value{}, err
		}
		return Value{I: i}, nil
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(lit, "+"), 0, k.Bits())
	if err != nil {
		return Value{}, err
	}
	return Value{U: u}, nil
}

// Zero returns the first implicit value of a declaration.
func Zero(Kind) Value { return Value{} }

// Succ returns v+1 in the domain of k, or ok=false when the increment is
// not representable.
func (v Value) Succ(k Kind) (Value, bool) {
	if k.Signed() {
		max := int64(1)<<(k.Bits()-1) - 1
		if v.I >= max {
			return Value{}, false
		}
		return Value{I: v.I + 1}, true
	}
	var max uint64 = math.MaxUint64
	if k.Bits() < 64 {
		max = 1<<k.Bits() - 1
	}
	if v.U >= max {
		return Value{}, false
	}
	return Value{U: v.U + 1}, true
}

// Format renders the value as a Go integer literal.
func (v Value) Format(k Kind) string {
	if k.Signed() {
		return strconv.FormatInt(v.I, 10)
	}
	return strconv.FormatUint(v.U, 10)
}
