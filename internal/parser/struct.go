package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/schema"
)

// parseStruct parses `'struct' Name Generics? '{' Newline Field* '}'`.
func (p *Parser) parseStruct() error {
	p.tz.Next() // 'struct'
	if err := p.skipSpaces(); err != nil {
		return err
	}
	name, err := p.expectDefinitionName()
	if err != nil {
		return err
	}

	p.currentName = name.Value
	p.pendingIndex = len(p.definitions)
	defer func() { p.currentName = ""; p.openNames = nil }()

	if err := p.skipSpaces(); err != nil {
		return err
	}
	openNames, err := p.maybeParseGenerics()
	if err != nil {
		return err
	}
	p.openNames = openNames

	if err := p.skipSpaces(); err != nil {
		return err
	}
	if _, _, err := p.tz.Expect(token.KindLeftBrace); err != nil {
		return asParseError(err)
	}
	if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
		return asParseError(err)
	}

	var fields []schema.Field
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
		fieldName, _, err := p.tz.Expect(token.KindSymbol)
		if err != nil {
			return asParseError(err)
		}
		if _, _, err := p.tz.Expect(token.KindColon); err != nil {
			return asParseError(err)
		}
		if err := p.skipSpaces(); err != nil {
			return err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return err
		}
		if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
			return asParseError(err)
		}
		fields = append(fields, schema.Field{Name: fieldName.Text, Type: fieldType})
	}

	if _, _, err := p.tz.Expect(token.KindRightBrace); err != nil {
		return asParseError(err)
	}

	patchLooseFields(fields, name.Value, p.pendingIndex)

	var def schema.Definition
	if len(openNames) == 0 {
		def = &schema.PlainStructure{Name: name, Fields: fields}
	} else {
		def = &schema.GenericStructure{Name: name, OpenNames: openNames, Fields: fields}
	}
	return p.register(def)
}

// maybeParseGenerics parses an optional Generics production if the next
// token is '<'.
func (p *Parser) maybeParseGenerics() ([]string, error) {
	kind, ok, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	if !ok || kind != token.KindLeftAngle {
		return nil, nil
	}
	return p.parseGenerics()
}
