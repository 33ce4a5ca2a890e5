package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/schema"
)

// parseType parses a Type: a string literal, a bare/applied reference, a
// bracketed slice or array of a reference, a pointer of a reference, or an
// optional of a reference or of a pointer. A reference may start with a
// lowercase import alias (`alias.Name`). Every Type ends at a terminating
// Newline, consumed by the caller.
func (p *Parser) parseType() (schema.Type, error) {
	tok, loc, err := p.tz.Peek()
	if err != nil {
		return nil, asParseError(err)
	}

	switch tok.Kind {
	case token.KindString:
		p.tz.Next()
		return schema.StringType{Literal: tok.Text}, nil

	case token.KindName, token.KindSymbol:
		ref, err := p.parseRef()
		if err != nil {
			return nil, err
		}
		return schema.ReferenceAsType(ref), nil

	case token.KindLeftBracket:
		p.tz.Next()
		next, _, err := p.tz.Peek()
		if err != nil {
			return nil, asParseError(err)
		}
		if next.Kind == token.KindRightBracket {
			p.tz.Next()
			ref, err := p.parseRef()
			if err != nil {
				return nil, err
			}
			return schema.SliceType{Element: schema.ReferenceAsType(ref)}, nil
		}
		sizeTok, _, err := p.tz.Expect(token.KindUnsignedInteger)
		if err != nil {
			return nil, asParseError(err)
		}
		if _, _, err := p.tz.Expect(token.KindRightBracket); err != nil {
			return nil, asParseError(err)
		}
		ref, err := p.parseRef()
		if err != nil {
			return nil, err
		}
		return schema.ArrayType{Size: sizeTok.Number, Element: schema.ReferenceAsType(ref)}, nil

	case token.KindAsterisk:
		p.tz.Next()
		ref, err := p.parseRef()
		if err != nil {
			return nil, err
		}
		return schema.PointerType{Inner: schema.ReferenceAsType(ref)}, nil

	case token.KindQuestionMark:
		p.tz.Next()
		next, _, err := p.tz.Peek()
		if err != nil {
			return nil, asParseError(err)
		}
		if next.Kind == token.KindAsterisk {
			inner, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return schema.OptionalType{Inner: inner}, nil
		}
		ref, err := p.parseRef()
		if err != nil {
			return nil, err
		}
		return schema.OptionalType{Inner: schema.ReferenceAsType(ref)}, nil

	default:
		return nil, &schema.ParseError{
			Kind:     schema.ErrExpect,
			Location: loc,
			Expected: []string{"String", "Name", "[", "*", "?"},
			Actual:   tok.Kind.String(),
		}
	}
}

// parseRef parses the `Ref` production: `Name ('.' Name)? ('<' Type (','
// Type)* '>')?`, resolving the bare or qualified name through the full
// resolution order and arity-checking any generic application. The head
// may also be a Symbol, since import aliases may be lowercase; a bare
// Symbol with no '.' after it resolves to nothing and is an UnknownReference.
func (p *Parser) parseRef() (schema.TypeReference, error) {
	nameTok, loc, err := p.tz.ExpectOneOf(token.KindName, token.KindSymbol)
	if err != nil {
		return nil, asParseError(err)
	}

	var base schema.TypeReference
	var baseLoc schema.SourceLocation

	next, _, err := p.tz.Peek()
	if err != nil && err != token.ErrEndOfInput {
		return nil, asParseError(err)
	}

	if err == nil && next.Kind == token.KindPeriod {
		p.tz.Next() // '.'
		memberTok, memberLoc, err := p.tz.Expect(token.KindName)
		if err != nil {
			return nil, asParseError(err)
		}
		base, err = p.resolveQualified(nameTok.Text, loc, memberTok.Text, memberLoc)
		if err != nil {
			return nil, err
		}
		baseLoc = loc
	} else {
		base, err = p.resolveBareName(nameTok.Text, loc)
		if err != nil {
			return nil, err
		}
		baseLoc = loc
	}

	applied, _, err := p.tz.Peek()
	if err != nil && err != token.ErrEndOfInput {
		return nil, asParseError(err)
	}
	if err == nil && applied.Kind == token.KindLeftAngle {
		p.tz.Next()
		var args []schema.Type
		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			sep, _, err := p.tz.Peek()
			if err != nil {
				return nil, asParseError(err)
			}
			if sep.Kind == token.KindComma {
				p.tz.Next()
				if err := p.skipSpaces(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if _, _, err := p.tz.Expect(token.KindRightAngle); err != nil {
			return nil, asParseError(err)
		}
		expected := p.openNameArityOf(base)
		if expected != len(args) {
			return nil, &schema.ParseError{
				Kind:          schema.ErrAppliedNameCount,
				Location:      baseLoc,
				ExpectedArity: expected,
				ActualArity:   len(args),
			}
		}
		return schema.AppliedNameReference{Reference: base, OpenNameArguments: args}, nil
	}

	return base, nil
}

// resolveBareName resolves an unqualified name: builtin, then open
// parameter in scope, then self-reference (producing a Loose placeholder),
// then a previously-accepted local definition, else an UnknownReference
// error at the name's location.
func (p *Parser) resolveBareName(name string, loc schema.SourceLocation) (schema.TypeReference, error) {
	if b, ok := schema.LookupBuiltin(name); ok {
		return schema.BuiltinReference{Builtin: b}, nil
	}
	for _, open := range p.openNames {
		if open == name {
			return schema.OpenReference{Name: name}, nil
		}
	}
	if name == p.currentName {
		return schema.LooseReference{Name: name, OpenNames: append([]string(nil), p.openNames...)}, nil
	}
	if idx, ok := p.definitionIndex[name]; ok {
		return schema.DefinitionReference{Name: name, Index: idx}, nil
	}
	return nil, &schema.ParseError{Kind: schema.ErrUnknownReference, Location: loc, Name: name}
}

// resolveQualified resolves a module-qualified `alias.Name` reference.
func (p *Parser) resolveQualified(alias string, aliasLoc schema.SourceLocation, member string, memberLoc schema.SourceLocation) (schema.TypeReference, error) {
	moduleName, ok := p.imports[alias]
	if !ok {
		return nil, &schema.ParseError{Kind: schema.ErrUnknownModule, Location: aliasLoc, Name: alias}
	}
	sibling, ok := p.siblings[moduleName]
	if !ok {
		return nil, &schema.ParseError{Kind: schema.ErrUnknownModule, Location: aliasLoc, Name: moduleName}
	}
	idx, ok := sibling.DefinitionIndex(member)
	if !ok {
		return nil, &schema.ParseError{Kind: schema.ErrUnknownReference, Location: memberLoc, Name: member}
	}
	return schema.ImportedDefinitionReference{
		ImportName: alias,
		Definition: schema.ExternalRef{Module: moduleName, Name: member, Index: idx},
	}, nil
}

// openNameArityOf returns how many type arguments ref's target expects.
// Called only with a ref that has already resolved successfully (parseRef
// returns the UnknownReference error before ever reaching here).
func (p *Parser) openNameArityOf(ref schema.TypeReference) int {
	switch r := ref.(type) {
	case schema.BuiltinReference:
		return 0
	case schema.OpenReference:
		return 0
	case schema.LooseReference:
		return len(r.OpenNames)
	case schema.DefinitionReference:
		return openNamesOf(p.definitions[r.Index])
	case schema.ImportedDefinitionReference:
		mod := p.siblings[r.Definition.Module]
		if mod == nil || r.Definition.Index >= len(mod.Definitions) {
			return 0
		}
		return openNamesOf(mod.Definitions[r.Definition.Index])
	default:
		return 0
	}
}

func openNamesOf(def schema.Definition) int {
	switch d := def.(type) {
	case *schema.GenericStructure:
		return len(d.OpenNames)
	case *schema.GenericUnion:
		return len(d.OpenNames)
	default:
		return 0
	}
}
