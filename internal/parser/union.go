package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/schema"
)

// rawConstructor is a (tag, Type) pair collected while parsing a union
// body, before the embedded/plain/generic split and before the Loose
// self-reference sweep.
type rawConstructor struct {
	tag string
	typ schema.Type
	loc schema.SourceLocation
}

// parseUnion parses `'union' ('(' Opt (',' Opt)* ')')? Name Generics? '{'
// Newline Ctor* '}'`.
func (p *Parser) parseUnion() error {
	p.tz.Next() // 'union'

	tagField := "type"
	embedded := false

	kind, ok, err := p.peekKind()
	if err != nil {
		return err
	}
	if ok && kind == token.KindLeftParen {
		tagField, embedded, err = p.parseUnionOptions()
		if err != nil {
			return err
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

	var raws []rawConstructor
	for {
		if err := p.skipBlankLines(); err != nil {
			return err
		}
		k, ok, err := p.peekKind()
		if err != nil {
			return err
		}
		if !ok || k == token.KindRightBrace {
			break
		}

		if err := p.expectIndent(); err != nil {
			return err
		}
		tag, tagLoc, err := p.expectNameOrSymbol()
		if err != nil {
			return err
		}

		var typ schema.Type
		next, _, err := p.tz.Peek()
		if err != nil {
			return asParseError(err)
		}
		if next.Kind == token.KindColon {
			p.tz.Next()
			if err := p.skipSpaces(); err != nil {
				return err
			}
			typ, err = p.parseType()
			if err != nil {
				return err
			}
		} else {
			typ = schema.EmptyType{}
		}
		if _, _, err := p.tz.Expect(token.KindNewline); err != nil {
			return asParseError(err)
		}
		raws = append(raws, rawConstructor{tag: tag, typ: typ, loc: tagLoc})
	}

	if _, _, err := p.tz.Expect(token.KindRightBrace); err != nil {
		return asParseError(err)
	}

	for i := range raws {
		raws[i].typ = patchLooseType(raws[i].typ, name.Value, p.pendingIndex)
	}

	var def schema.Definition
	switch {
	case embedded:
		ctors, err := p.buildEmbeddedConstructors(raws)
		if err != nil {
			return err
		}
		def = &schema.EmbeddedUnion{Name: name, TagField: tagField, Constructors: ctors}
	case len(openNames) == 0:
		def = &schema.PlainUnion{Name: name, TagField: tagField, Constructors: toConstructors(raws)}
	default:
		def = &schema.GenericUnion{Name: name, OpenNames: openNames, TagField: tagField, Constructors: toConstructors(raws)}
	}

	return p.register(def)
}

func toConstructors(raws []rawConstructor) []schema.Constructor {
	out := make([]schema.Constructor, len(raws))
	for i, r := range raws {
		out[i] = schema.Constructor{Tag: r.tag, Parameter: r.typ}
	}
	return out
}

// buildEmbeddedConstructors validates each raw constructor's parameter:
// nullary constructors carry a nil Parameter; non-nullary constructors must
// resolve to a plain record.
func (p *Parser) buildEmbeddedConstructors(raws []rawConstructor) ([]schema.EmbeddedConstructor, error) {
	out := make([]schema.EmbeddedConstructor, len(raws))
	for i, r := range raws {
		if _, ok := r.typ.(schema.EmptyType); ok {
			out[i] = schema.EmbeddedConstructor{Tag: r.tag}
			continue
		}
		record := p.resolvePlainStructure(r.typ)
		if record == nil {
			return nil, &schema.ParseError{Kind: schema.ErrInvalidPayload, Location: r.loc}
		}
		out[i] = schema.EmbeddedConstructor{Tag: r.tag, Parameter: record}
	}
	return out, nil
}

// resolvePlainStructure resolves typ (already Loose-patched) to a
// *schema.PlainStructure if it names one, or returns nil if it resolves to
// anything else — including a self-reference to the union currently being
// built, which can never be a plain record since it is a union.
func (p *Parser) resolvePlainStructure(typ schema.Type) *schema.PlainStructure {
	ref, ok := typ.(schema.ReferenceType)
	if !ok {
		return nil
	}
	switch r := ref.Reference.(type) {
	case schema.DefinitionReference:
		if r.Index >= len(p.definitions) {
			return nil
		}
		plain, _ := p.definitions[r.Index].(*schema.PlainStructure)
		return plain
	case schema.ImportedDefinitionReference:
		mod := p.siblings[r.Definition.Module]
		if mod == nil || r.Definition.Index >= len(mod.Definitions) {
			return nil
		}
		plain, _ := mod.Definitions[r.Definition.Index].(*schema.PlainStructure)
		return plain
	default:
		return nil
	}
}

// parseUnionOptions parses `'(' Opt (',' Opt)* ')'`. Called only once the
// caller has peeked a KindLeftParen.
func (p *Parser) parseUnionOptions() (tagField string, embedded bool, err error) {
	tagField = "type"
	if _, _, err = p.tz.Expect(token.KindLeftParen); err != nil {
		return "", false, asParseError(err)
	}
	for {
		if err = p.skipSpaces(); err != nil {
			return "", false, err
		}
		word, loc, err := p.expectNameOrSymbol()
		if err != nil {
			return "", false, err
		}
		switch word {
		case "tag":
			if err := p.skipSpaces(); err != nil {
				return "", false, err
			}
			if _, _, err := p.tz.Expect(token.KindEquals); err != nil {
				return "", false, asParseError(err)
			}
			if err := p.skipSpaces(); err != nil {
				return "", false, err
			}
			value, _, err := p.expectNameOrSymbol()
			if err != nil {
				return "", false, err
			}
			tagField = value
		case "embedded":
			embedded = true
		default:
			return "", false, &schema.ParseError{
				Kind:     schema.ErrExpect,
				Location: loc,
				Expected: []string{"tag", "embedded"},
				Actual:   word,
			}
		}

		if err := p.skipSpaces(); err != nil {
			return "", false, err
		}
		next, _, err := p.tz.Peek()
		if err != nil {
			return "", false, asParseError(err)
		}
		if next.Kind == token.KindComma {
			p.tz.Next()
			continue
		}
		break
	}
	if _, _, err = p.tz.Expect(token.KindRightParen); err != nil {
		return "", false, asParseError(err)
	}
	return tagField, embedded, nil
}
