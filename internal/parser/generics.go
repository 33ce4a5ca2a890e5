package parser

import "github.com/GoNZooo/gotyno/internal/token"

// parseGenerics parses `'<' Name (',' Name)* '>'`, returning the open
// names in source order. Called only once the caller has peeked a
// KindLeftAngle.
func (p *Parser) parseGenerics() ([]string, error) {
	if _, _, err := p.tz.Expect(token.KindLeftAngle); err != nil {
		return nil, asParseError(err)
	}
	var names []string
	for {
		if err := p.skipSpaces(); err != nil {
			return nil, err
		}
		tok, _, err := p.tz.Expect(token.KindName)
		if err != nil {
			return nil, asParseError(err)
		}
		names = append(names, tok.Text)

		if err := p.skipSpaces(); err != nil {
			return nil, err
		}
		next, _, err := p.tz.Peek()
		if err != nil {
			return nil, asParseError(err)
		}
		if next.Kind == token.KindComma {
			p.tz.Next()
			continue
		}
		break
	}
	if _, _, err := p.tz.Expect(token.KindRightAngle); err != nil {
		return nil, asParseError(err)
	}
	return names, nil
}
