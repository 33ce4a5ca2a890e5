package token

import (
	"strconv"

	"github.com/GoNZooo/gotyno/internal/types"
	"github.com/GoNZooo/gotyno/schema"
)

// Tokenizer is a cursor over a source buffer. It is pure and stateless
// across calls except for this cursor: the same source bytes tokenized
// twice yield identical token sequences.
type Tokenizer struct {
	filename string
	src      []byte
	pos      int
	line     int
	column   int

	hasPeek  bool
	peekTok  Token
	peekLoc  schema.SourceLocation
	peekErr  error

	log types.Logger
}

// New returns a Tokenizer over source, reporting positions under filename.
func New(filename string, source []byte, logger types.Logger) *Tokenizer {
	return &Tokenizer{
		filename: filename,
		src:      source,
		pos:      0,
		line:     1,
		column:   1,
		log:      logger,
	}
}

func (t *Tokenizer) here() schema.SourceLocation {
	return schema.SourceLocation{Filename: t.filename, Line: t.line, Column: t.column}
}

func (t *Tokenizer) atEOF() bool { return t.pos >= len(t.src) }

func (t *Tokenizer) byteAt(offset int) (byte, bool) {
	i := t.pos + offset
	if i < 0 || i >= len(t.src) {
		return 0, false
	}
	return t.src[i], true
}

// advance consumes n bytes starting at the current position, updating
// line/column: line increments on '\n', column resets to 1 on '\n' and
// otherwise increases by the byte width consumed. advance assumes none of
// the consumed bytes
// (other than possibly the last) is '\n', since every caller consumes at
// most one '\n' per call (the tokenizer never batches a Newline token with
// other content).
func (t *Tokenizer) advance(n int) {
	for i := 0; i < n; i++ {
		b := t.src[t.pos]
		t.pos++
		if b == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
	}
}

// Peek returns the next token and its location without advancing the
// cursor. It never mutates position across repeated calls.
func (t *Tokenizer) Peek() (Token, schema.SourceLocation, error) {
	if !t.hasPeek {
		t.peekTok, t.peekLoc, t.peekErr = t.scan()
		t.hasPeek = true
	}
	return t.peekTok, t.peekLoc, t.peekErr
}

// Next advances the cursor by one token, returning ErrEndOfInput once the
// buffer is exhausted.
func (t *Tokenizer) Next() (Token, schema.SourceLocation, error) {
	if t.hasPeek {
		t.hasPeek = false
		if t.peekErr == nil {
			t.logToken(t.peekTok, t.peekLoc)
		}
		return t.peekTok, t.peekLoc, t.peekErr
	}
	tok, loc, err := t.scan()
	if err == nil {
		t.logToken(tok, loc)
	}
	return tok, loc, err
}

// Expect consumes the next token if its Kind matches kind; otherwise it
// returns an *ExpectError. The offending token is consumed as well (it is
// reported, not pushed back), matching the general policy that parsing
// stops at the first failure.
func (t *Tokenizer) Expect(kind Kind) (Token, schema.SourceLocation, error) {
	return t.ExpectOneOf(kind)
}

// ExpectOneOf consumes the next token if its Kind is one of kinds. Running
// out of input counts as a mismatch, reported the same way as any other
// wrong token (ActualText "end of input").
func (t *Tokenizer) ExpectOneOf(kinds ...Kind) (Token, schema.SourceLocation, error) {
	tok, loc, err := t.Next()
	if err == ErrEndOfInput {
		return Token{}, loc, &ExpectError{Expected: kinds, ActualText: "end of input", Location: loc}
	}
	if err != nil {
		return Token{}, loc, err
	}
	for _, k := range kinds {
		if tok.Kind == k {
			return tok, loc, nil
		}
	}
	return Token{}, loc, &ExpectError{
		Expected:   kinds,
		Actual:     tok.Kind,
		ActualText: tok.Text,
		Location:   loc,
	}
}

// SkipMany consumes exactly n tokens of kind in sequence, returning an
// *ExpectError on the first token that doesn't match.
func (t *Tokenizer) SkipMany(kind Kind, n int) error {
	for i := 0; i < n; i++ {
		if _, _, err := t.Expect(kind); err != nil {
			return err
		}
	}
	return nil
}

func isIdentByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scan produces the next token, or ErrEndOfInput, or a *LexError.
func (t *Tokenizer) scan() (Token, schema.SourceLocation, error) {
	// '\r' is treated as whitespace-equivalent and silently skipped (see
	// DESIGN.md); it emits no token and does not participate in column
	// accounting beyond its own single-byte width.
	for {
		b, ok := t.byteAt(0)
		if !ok || b != '\r' {
			break
		}
		t.advance(1)
	}

	if t.atEOF() {
		return Token{}, t.here(), ErrEndOfInput
	}

	loc := t.here()
	b, _ := t.byteAt(0)

	switch {
	case b == ' ':
		t.advance(1)
		return singleCharToken(KindSpace), loc, nil
	case b == '\n':
		t.advance(1)
		return singleCharToken(KindNewline), loc, nil
	case b == '\t':
		t.advance(1)
		return Token{}, loc, &LexError{Kind: LexUnknownCharacter, Location: loc, Detail: "tab"}
	case isPunctuation(b):
		t.advance(1)
		return singleCharToken(punctuationKinds[b]), loc, nil
	case b >= 'A' && b <= 'Z':
		return t.scanIdent(loc, KindName)
	case b >= 'a' && b <= 'z':
		return t.scanIdent(loc, KindSymbol)
	case b == '"':
		return t.scanString(loc)
	case isDigit(b):
		return t.scanNumber(loc)
	default:
		t.advance(1)
		return Token{}, loc, &LexError{Kind: LexUnknownCharacter, Location: loc, Detail: quoteByte(b)}
	}
}

// logToken emits a trace-level record for a successfully scanned token.
// Called by scan's caller sites that want tracing; kept separate so scan
// itself stays a plain value-returning function.
func (t *Tokenizer) logToken(tok Token, loc schema.SourceLocation) {
	if !t.log.TraceEnabled() {
		return
	}
	t.log.Trace("token", "kind", tok.Kind.String(), "location", loc.String())
}

func isPunctuation(b byte) bool {
	_, ok := punctuationKinds[b]
	return ok
}

func quoteByte(b byte) string {
	return "'" + string(rune(b)) + "'"
}

// scanIdent scans a run of identifier bytes (alphanumeric or underscore),
// stopping at the first byte that is neither. This implements identifier
// continuation positively rather than via a literal delimiter list; see
// DESIGN.md for why.
func (t *Tokenizer) scanIdent(loc schema.SourceLocation, kind Kind) (Token, schema.SourceLocation, error) {
	start := t.pos
	for {
		b, ok := t.byteAt(0)
		if !ok || !isIdentByte(b) {
			break
		}
		t.advance(1)
	}
	return Token{Kind: kind, Text: string(t.src[start:t.pos])}, loc, nil
}

// scanString scans a quoted string literal with no escape processing. The
// returned token's Text is the raw content between the quotes.
func (t *Tokenizer) scanString(loc schema.SourceLocation) (Token, schema.SourceLocation, error) {
	t.advance(1) // opening quote
	start := t.pos
	for {
		b, ok := t.byteAt(0)
		if !ok {
			return Token{}, loc, &LexError{Kind: LexUnterminatedString, Location: loc}
		}
		if b == '"' {
			text := string(t.src[start:t.pos])
			t.advance(1) // closing quote
			return Token{Kind: KindString, Text: text}, loc, nil
		}
		t.advance(1)
	}
}

// scanNumber scans a base-10 unsigned integer literal, stopping at the
// first non-digit byte.
func (t *Tokenizer) scanNumber(loc schema.SourceLocation) (Token, schema.SourceLocation, error) {
	start := t.pos
	for {
		b, ok := t.byteAt(0)
		if !ok || !isDigit(b) {
			break
		}
		t.advance(1)
	}
	text := string(t.src[start:t.pos])
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Token{}, loc, &LexError{Kind: LexIntegerOverflow, Location: loc, Detail: text}
	}
	return Token{Kind: KindUnsignedInteger, Number: n}, loc, nil
}
