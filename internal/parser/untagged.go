package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/schema"
)

// parseUntaggedUnion parses `'untagged' 'union' Name '{' Newline
// UntaggedVal* '}'`. A body with zero values is rejected, surfaced as an
// Expect error (see DESIGN.md).
func (p *Parser) parseUntaggedUnion() error {
	p.tz.Next() // 'untagged'
	if err := p.skipSpaces(); err != nil {
		return err
	}
	word, loc, err := p.expectNameOrSymbol()
	if err != nil {
		return err
	}
	if word != "union" {
		return &schema.ParseError{
			Kind:     schema.ErrExpect,
			Location: loc,
			Expected: []string{"union"},
			Actual:   word,
		}
	}

	if err := p.skipSpaces(); err != nil {
		return err
	}
	name, err := p.expectDefinitionName()
	if err != nil {
		return err
	}

	p.currentName = name.Value
	p.pendingIndex = len(p.definitions)
	defer func() { p.currentName = "" }()

	if err := p.skipSpaces(); err != nil {
		return err
	}
	if _, _, err := p.tz.Expect(token.KindLeftBrace); err != nil {
		return asParseError(err)
	}
	if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
		return asParseError(err)
	}

	var values []schema.TypeReference
	for {
		if err := p.skipBlankLines(); err != nil {
			return err
		}
		kind, ok, err := p.peekKind()
		if err != nil {
			return err
		}
		if !ok || kind == token.KindRightBrace {
			break
		}

		if err := p.expectIndent(); err != nil {
			return err
		}
		ref, err := p.parseRef()
		if err != nil {
			return err
		}
		if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
			return asParseError(err)
		}
		values = append(values, ref)
	}

	closeTok, closeLoc, err := p.tz.Expect(token.KindRightBrace)
	if err != nil {
		return asParseError(err)
	}
	if len(values) == 0 {
		return &schema.ParseError{
			Kind:     schema.ErrExpect,
			Location: closeLoc,
			Expected: []string{"untagged union value"},
			Actual:   closeTok.Kind.String(),
		}
	}

	patchLooseRefs(values, name.Value, p.pendingIndex)

	return p.register(&schema.UntaggedUnion{Name: name, Values: values})
}
