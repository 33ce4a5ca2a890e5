// Package parser implements the single-file definition parser: a
// recursive, look-ahead-of-one parser turning one source file's token
// stream into a schema.Module, resolving names inline as each definition
// closes.
package parser

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/internal/types"
	"github.com/GoNZooo/gotyno/schema"
)

// Parser owns a token cursor and the growing list of already-accepted
// definitions in the current file, used for local name lookup as each new
// definition closes.
type Parser struct {
	tz         *token.Tokenizer
	filename   string
	moduleName string

	definitions     []schema.Definition
	definitionIndex map[string]int
	imports         map[string]string

	// siblings holds already-resolved modules, keyed by module name,
	// supplied by the resolver for cross-module lookups.
	siblings map[string]*schema.Module

	// openNames is the open-name scope of the definition currently being
	// parsed, empty outside of one.
	openNames []string
	// currentName is the name of the definition currently being parsed,
	// used to detect self-recursive references. Empty between definitions.
	currentName  string
	pendingIndex int

	log types.Logger
}

// New returns a Parser over source, reporting positions under filename.
// siblings may be nil if no already-resolved modules are available (the
// common case when there are no cross-module references at all).
func New(filename string, source []byte, siblings map[string]*schema.Module, logger types.Logger) *Parser {
	return &Parser{
		tz:              token.New(filename, source, logger),
		filename:        filename,
		definitionIndex: make(map[string]int),
		imports:         make(map[string]string),
		siblings:        siblings,
		log:             logger,
	}
}

// ParseModule parses the entire source buffer into a schema.Module, or
// returns the first *schema.ParseError encountered.
func (p *Parser) ParseModule(moduleName string) (*schema.Module, error) {
	p.moduleName = moduleName
	for {
		done, err := p.parseTopLevelItem()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	p.log.Debug("parsed module", "name", moduleName, "definitions", len(p.definitions))
	return &schema.Module{
		Name:        moduleName,
		Filename:    p.filename,
		Imports:     p.imports,
		Definitions: p.definitions,
	}, nil
}

// parseTopLevelItem consumes whitespace/newlines, then dispatches on the
// next meaningful token. It reports done=true once the buffer is exhausted.
func (p *Parser) parseTopLevelItem() (done bool, err error) {
	for {
		tok, _, err := p.tz.Peek()
		if err == token.ErrEndOfInput {
			return true, nil
		}
		if err != nil {
			return false, asParseError(err)
		}
		if tok.Kind == token.KindSpace || tok.Kind == token.KindNewline {
			p.tz.Next()
			continue
		}
		break
	}

	tok, _, err := p.tz.Peek()
	if err != nil {
		return false, asParseError(err)
	}
	if tok.Kind != token.KindSymbol {
		// "Any other top-level token in whitespace position is ignored."
		p.tz.Next()
		return false, nil
	}

	switch tok.Text {
	case "struct":
		return false, p.parseStruct()
	case "union":
		return false, p.parseUnion()
	case "enum":
		return false, p.parseEnum()
	case "untagged":
		return false, p.parseUntaggedUnion()
	case "import":
		return false, p.parseImport()
	default:
		p.tz.Next()
		return false, nil
	}
}

// register inserts def into the module's definitions, returning a
// DuplicateDefinition error if its name collides with an existing one.
func (p *Parser) register(def schema.Definition) error {
	name := def.DefinitionName()
	if existingIdx, ok := p.definitionIndex[name.Value]; ok {
		return &schema.ParseError{
			Kind:     schema.ErrDuplicateDefinition,
			Location: name.Location,
			Name:     name.Value,
			Existing: p.definitions[existingIdx],
			New:      def,
		}
	}
	p.definitionIndex[name.Value] = len(p.definitions)
	p.definitions = append(p.definitions, def)
	return nil
}

// asParseError converts a lexical error into the parser-level
// *schema.ParseError shape; ExpectError and LexError both already carry
// everything needed.
func asParseError(err error) error {
	switch e := err.(type) {
	case *token.ExpectError:
		expected := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			expected[i] = k.String()
		}
		var actual string
		switch {
		case e.ActualText == "end of input":
			actual = "end of input"
		case e.ActualText != "":
			actual = e.Actual.String() + " " + e.ActualText
		default:
			actual = e.Actual.String()
		}
		return &schema.ParseError{
			Kind:     schema.ErrExpect,
			Location: e.Location,
			Expected: expected,
			Actual:   actual,
		}
	case *token.LexError:
		return &schema.ParseError{
			Kind:     schema.ErrExpect,
			Location: e.Location,
			Message:  e.Error(),
		}
	default:
		if err == token.ErrEndOfInput {
			return &schema.ParseError{Kind: schema.ErrExpect, Actual: "end of input"}
		}
		return err
	}
}

// expectDefinitionName expects a Name token and returns it as a
// schema.DefinitionName.
func (p *Parser) expectDefinitionName() (schema.DefinitionName, error) {
	tok, loc, err := p.tz.Expect(token.KindName)
	if err != nil {
		return schema.DefinitionName{}, asParseError(err)
	}
	return schema.DefinitionName{Value: tok.Text, Location: loc}, nil
}

// expectNameOrSymbol expects a Name or Symbol token (used for tags, which
// may be capitalized or lowercase) and returns its text and location.
func (p *Parser) expectNameOrSymbol() (string, schema.SourceLocation, error) {
	tok, loc, err := p.tz.ExpectOneOf(token.KindName, token.KindSymbol)
	if err != nil {
		return "", loc, asParseError(err)
	}
	return tok.Text, loc, nil
}

// skipSpaces consumes zero or more Space tokens. Used everywhere the
// grammar is whitespace-insensitive beyond requiring at least one space;
// the one place exact spacing is normative (four-space field/constructor
// indentation) uses expectIndent instead.
func (p *Parser) skipSpaces() error {
	for {
		tok, _, err := p.tz.Peek()
		if err != nil {
			if err == token.ErrEndOfInput {
				return nil
			}
			return asParseError(err)
		}
		if tok.Kind != token.KindSpace {
			return nil
		}
		p.tz.Next()
	}
}

// skipBlankLines consumes stray Newline tokens between body lines.
func (p *Parser) skipBlankLines() error {
	for {
		tok, _, err := p.tz.Peek()
		if err != nil {
			if err == token.ErrEndOfInput {
				return nil
			}
			return asParseError(err)
		}
		if tok.Kind != token.KindNewline {
			return nil
		}
		p.tz.Next()
	}
}

// expectIndent requires exactly four Space tokens, the normative field/
// constructor-line indentation.
func (p *Parser) expectIndent() error {
	if err := p.tz.SkipMany(token.KindSpace, 4); err != nil {
		return asParseError(err)
	}
	return nil
}

func (p *Parser) peekKind() (token.Kind, bool, error) {
	tok, _, err := p.tz.Peek()
	if err != nil {
		if err == token.ErrEndOfInput {
			return 0, false, nil
		}
		return 0, false, asParseError(err)
	}
	return tok.Kind, true, nil
}
