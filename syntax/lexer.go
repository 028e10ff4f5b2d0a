package syntax

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokInt
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokColon
	tokComma
	tokAssign
	tokDoc
)

func (k tokKind) String() string {
	switch k {
	case tokEOF:
		return "end of declaration"
	case tokIdent:
		return "identifier"
	case tokInt:
		return "integer literal"
	case tokLBrace:
		return `"{"`
	case tokRBrace:
		return `"}"`
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokColon:
		return `":"`
	case tokComma:
		return `","`
	case tokAssign:
		return `"="`
	case tokDoc:
		return "doc comment"
	}
	return "token"
}

type tok struct {
	kind tokKind
	text string
	pos  token.Position
}

// lex tokenizes a declaration block. Lines beginning with "//" become doc
// tokens carrying the text verbatim (marker stripped); everything else is
// scanned as identifiers, integer literals and punctuation.
func lex(src *Source) ([]tok, error) {
	var toks []tok

	for _, ln := range src.Lines {
		text := ln.Text
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "//") {
			doc := strings.TrimPrefix(strings.TrimPrefix(trimmed, "//"), " ")
			toks = append(toks, tok{
				kind: tokDoc,
				text: doc,
				pos:  pos(src, ln, strings.Index(text, "//")),
			})
			continue
		}

		i := 0
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])

			switch {
			case r == ' ' || r == '\t':
				i += size

			case isIdentStart(r):
				start := i
				for i < len(text) {
					r, size := utf8.DecodeRuneInString(text[i:])
					if !isIdentPart(r) {
						break
					}
					i += size
				}
				toks = append(toks, tok{kind: tokIdent, text: text[start:i], pos: pos(src, ln, start)})

			case r >= '0' && r <= '9' || (r == '-' || r == '+') && startsNumber(text[i+size:]):
				start := i
				i += size
				for i < len(text) && isNumberPart(rune(text[i])) {
					i++
				}
				toks = append(toks, tok{kind: tokInt, text: text[start:i], pos: pos(src, ln, start)})

			default:
				var kind tokKind
				switch r {
				case '{':
					kind = tokLBrace
				case '}':
					kind = tokRBrace
				case '(':
					kind = tokLParen
				case ')':
					kind = tokRParen
				case ':':
					kind = tokColon
				case ',':
					kind = tokComma
				case '=':
					kind = tokAssign
				default:
					return nil, Errorf(pos(src, ln, i), "unexpected character %q in enum declaration", r)
				}
				toks = append(toks, tok{kind: kind, text: string(r), pos: pos(src, ln, i)})
				i += size
			}
		}
	}

	var end token.Position
	if n := len(src.Lines); n > 0 {
		last := src.Lines[n-1]
		end = pos(src, last, len(last.Text))
	} else {
		end = token.Position{Filename: src.Filename}
	}
	toks = append(toks, tok{kind: tokEOF, pos: end})
	return toks, nil
}

// pos maps a byte offset within a block line back to the original file.
func pos(src *Source, ln SourceLine, offset int) token.Position {
	return token.Position{
		Filename: src.Filename,
		Line:     ln.Line,
		Column:   ln.Col + offset,
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// startsNumber reports whether rest begins with a digit, so that a sign is
// only consumed as part of a literal.
func startsNumber(rest string) bool {
	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
}

// isNumberPart accepts the body of decimal, hex, octal and binary literals;
// strconv validates the final form.
func isNumberPart(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F':
		return true
	case r == 'x' || r == 'X' || r == 'o' || r == 'O' || r == '_':
		return true
	}
	return false
}
