package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/schema"
)

// parseImport parses `'import' ident ('=' ident)? Newline`. Alias defaults
// to the imported module's own name when no explicit alias is given.
func (p *Parser) parseImport() error {
	p.tz.Next() // 'import'
	if err := p.skipSpaces(); err != nil {
		return err
	}
	nameText, nameLoc, err := p.expectNameOrSymbol()
	if err != nil {
		return err
	}
	name := schema.DefinitionName{Value: nameText, Location: nameLoc}
	alias := name

	if err := p.skipSpaces(); err != nil {
		return err
	}
	next, _, err := p.tz.Peek()
	if err != nil {
		return asParseError(err)
	}
	if next.Kind == token.KindEquals {
		p.tz.Next()
		if err := p.skipSpaces(); err != nil {
			return err
		}
		aliasText, aliasLoc, err := p.expectNameOrSymbol()
		if err != nil {
			return err
		}
		alias = schema.DefinitionName{Value: aliasText, Location: aliasLoc}
	}

	if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
		return asParseError(err)
	}

	if name.Value != p.moduleName {
		if _, ok := p.siblings[name.Value]; !ok {
			return &schema.ParseError{
				Kind:     schema.ErrUnknownModule,
				Location: name.Location,
				Name:     name.Value,
			}
		}
	}

	if err := p.register(&schema.Import{Name: name, Alias: alias}); err != nil {
		return err
	}
	p.imports[alias.Value] = name.Value
	return nil
}
