package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/schema"
)

// parseEnum parses `'enum' Name '{' Newline EnumField* '}'`. A body with
// zero fields is rejected, surfaced as an Expect error since there is no
// dedicated empty-body error variant (see DESIGN.md).
func (p *Parser) parseEnum() error {
	p.tz.Next() // 'enum'
	if err := p.skipSpaces(); err != nil {
		return err
	}
	name, err := p.expectDefinitionName()
	if err != nil {
		return err
	}

	if err := p.skipSpaces(); err != nil {
		return err
	}
	if _, _, err := p.tz.Expect(token.KindLeftBrace); err != nil {
		return asParseError(err)
	}
	if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
		return asParseError(err)
	}

	var fields []schema.EnumField
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
		tag, _, err := p.expectNameOrSymbol()
		if err != nil {
			return err
		}
		if err := p.skipSpaces(); err != nil {
			return err
		}
		if _, _, err := p.tz.Expect(token.KindEquals); err != nil {
			return asParseError(err)
		}
		if err := p.skipSpaces(); err != nil {
			return err
		}
		valueTok, _, err := p.tz.ExpectOneOf(token.KindString, token.KindUnsignedInteger)
		if err != nil {
			return asParseError(err)
		}
		var value schema.EnumValue
		if valueTok.Kind == token.KindString {
			value = schema.StringEnumValue{Value: valueTok.Text}
		} else {
			value = schema.UnsignedEnumValue{Value: valueTok.Number}
		}
		if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
			return asParseError(err)
		}
		fields = append(fields, schema.EnumField{Tag: tag, Value: value})
	}

	closeTok, closeLoc, err := p.tz.Expect(token.KindRightBrace)
	if err != nil {
		return asParseError(err)
	}
	if len(fields) == 0 {
		return &schema.ParseError{
			Kind:     schema.ErrExpect,
			Location: closeLoc,
			Expected: []string{"enum field"},
			Actual:   closeTok.Kind.String(),
		}
	}

	return p.register(&schema.Enumeration{Name: name, Fields: fields})
}
