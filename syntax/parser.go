package syntax

import (
	"errors"
	"strconv"
)

// Parse parses every declaration in a block. A block may hold several
// declarations back to back; all of them are returned, or the first error
// encountered, positioned at the offending token.
func Parse(src *Source) ([]*Decl, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	var decls []*Decl
	for !p.at(tokEOF) {
		decl, err := p.decl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	if len(decls) == 0 {
		return nil, Errorf(p.peek().pos, "declaration block holds no enum declaration")
	}
	return decls, nil
}

type parser struct {
	toks []tok
	idx  int
}

func (p *parser) peek() tok { return p.toks[p.idx] }

func (p *parser) next() tok {
	t := p.toks[p.idx]
	if t.kind != tokEOF {
		p.idx++
	}
	return t
}

func (p *parser) at(kind tokKind) bool { return p.peek().kind == kind }

func (p *parser) expect(kind tokKind) (tok, error) {
	t := p.next()
	if t.kind != kind {
		return t, Errorf(t.pos, "expected %s, found %s", kind, describe(t))
	}
	return t, nil
}

// docs collects consecutive doc lines preceding a declaration or entry.
func (p *parser) docs() []string {
	var doc []string
	for p.at(tokDoc) {
		doc = append(doc, p.next().text)
	}
	return doc
}

// decl parses: doc* derive? "pub"? "enum" Name ":" Kind "{" entry* "}".
func (p *parser) decl() (*Decl, error) {
	decl := &Decl{Doc: p.docs()}

	head, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	decl.Pos = head.pos

	if head.text == "derive" {
		if decl.Derives, err = p.deriveList(); err != nil {
			return nil, err
		}
		// Doc lines may sit on either side of the derive list.
		decl.Doc = append(decl.Doc, p.docs()...)
		if head, err = p.expect(tokIdent); err != nil {
			return nil, err
		}
	}

	if head.text == "pub" {
		decl.Pub = true
		if head, err = p.expect(tokIdent); err != nil {
			return nil, err
		}
	}

	if head.text != "enum" {
		return nil, Errorf(head.pos, `expected "enum", found %q`, head.text)
	}

	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	decl.Name = name.text

	if _, err := p.expect(tokColon); err != nil {
		return nil, err
	}
	kindTok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	kind, ok := KindFromToken(kindTok.text)
	if !ok {
		return nil, Errorf(kindTok.pos, "%q is not a supported integer kind (want int8..int64, uint8..uint64, byte or rune)", kindTok.text)
	}
	decl.Kind = kind

	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	for !p.at(tokRBrace) {
		entry, err := p.entry(decl.Kind)
		if err != nil {
			return nil, err
		}
		decl.Entries = append(decl.Entries, *entry)

		// Entries are comma separated; the comma after the last entry
		// may be omitted.
		if p.at(tokComma) {
			p.next()
		} else if !p.at(tokRBrace) {
			t := p.peek()
			return nil, Errorf(t.pos, `expected "," or "}" after entry, found %s`, describe(t))
		}
	}
	p.next() // consume "}"

	return decl, nil
}

// deriveList parses "(" ident ("," ident)* ")" after the derive keyword.
func (p *parser) deriveList() ([]string, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var derives []string
	for {
		t, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if !validDerives[t.text] {
			return nil, Errorf(t.pos, "unknown derive %q (supported: json, text, yaml)", t.text)
		}
		derives = append(derives, t.text)

		sep := p.next()
		switch sep.kind {
		case tokComma:
			continue
		case tokRParen:
			return derives, nil
		default:
			return nil, Errorf(sep.pos, `expected "," or ")" in derive list, found %s`, describe(sep))
		}
	}
}

// entry parses: doc* Name ("=" IntLit)?. Explicit literals are validated
// against the declared kind immediately so overflow points at the literal.
func (p *parser) entry(kind Kind) (*Entry, error) {
	entry := &Entry{Doc: p.docs()}

	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	entry.Name = name.text
	entry.Pos = name.pos

	if p.at(tokAssign) {
		p.next()
		lit, err := p.expect(tokInt)
		if err != nil {
			return nil, err
		}
		value, err := ParseValue(lit.text, kind)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
				return nil, Errorf(lit.pos, "value %s overflows %s", lit.text, kind)
			}
			return nil, Errorf(lit.pos, "invalid integer literal %q for kind %s", lit.text, kind)
		}
		entry.Explicit = true
		entry.Value = value
	}

	return entry, nil
}

func describe(t tok) string {
	if t.kind == tokIdent || t.kind == tokInt {
		return strconv.Quote(t.text)
	}
	if t.kind == tokDoc {
		return "doc comment " + strconv.Quote("// "+truncate(t.text))
	}
	return t.kind.String()
}

func truncate(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
