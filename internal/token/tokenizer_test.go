package token_test

import (
	"testing"

	"github.com/GoNZooo/gotyno/internal/testutil"
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/internal/types"
)

func newTokenizer(source string) *token.Tokenizer {
	return token.New("test.gotyno", []byte(source), types.Logger{})
}

func collect(t *testing.T, source string) ([]token.Token, error) {
	t.Helper()
	tz := newTokenizer(source)
	var toks []token.Token
	for {
		tok, _, err := tz.Next()
		if err == token.ErrEndOfInput {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestPunctuationKinds(t *testing.T) {
	toks, err := collect(t, "{}[]<>()")
	testutil.NoError(t, err)
	want := []token.Kind{
		token.KindLeftBrace, token.KindRightBrace,
		token.KindLeftBracket, token.KindRightBracket,
		token.KindLeftAngle, token.KindRightAngle,
		token.KindLeftParen, token.KindRightParen,
	}
	testutil.Len(t, toks, len(want))
	for i, k := range want {
		testutil.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestNameVsSymbol(t *testing.T) {
	toks, err := collect(t, "Person name")
	testutil.NoError(t, err)
	testutil.Len(t, toks, 3)
	testutil.Equal(t, token.KindName, toks[0].Kind)
	testutil.Equal(t, "Person", toks[0].Text)
	testutil.Equal(t, token.KindSpace, toks[1].Kind)
	testutil.Equal(t, token.KindSymbol, toks[2].Kind)
	testutil.Equal(t, "name", toks[2].Text)
}

func TestIdentifierStopsAtParen(t *testing.T) {
	toks, err := collect(t, "union(tag")
	testutil.NoError(t, err)
	testutil.Len(t, toks, 3)
	testutil.Equal(t, "union", toks[0].Text)
	testutil.Equal(t, token.KindLeftParen, toks[1].Kind)
	testutil.Equal(t, "tag", toks[2].Text)
}

func TestStringLiteralNoEscapes(t *testing.T) {
	toks, err := collect(t, `"hello world"`)
	testutil.NoError(t, err)
	testutil.Len(t, toks, 1)
	testutil.Equal(t, token.KindString, toks[0].Kind)
	testutil.Equal(t, "hello world", toks[0].Text)
}

func TestUnterminatedString(t *testing.T) {
	_, err := collect(t, `"hello`)
	testutil.Error(t, err)
	lexErr, ok := err.(*token.LexError)
	testutil.True(t, ok, "expected *LexError, got %T", err)
	testutil.Equal(t, token.LexUnterminatedString, lexErr.Kind)
}

func TestUnsignedInteger(t *testing.T) {
	toks, err := collect(t, "12345")
	testutil.NoError(t, err)
	testutil.Len(t, toks, 1)
	testutil.Equal(t, token.KindUnsignedInteger, toks[0].Kind)
	testutil.Equal(t, uint64(12345), toks[0].Number)
}

func TestIntegerOverflow(t *testing.T) {
	_, err := collect(t, "99999999999999999999999999")
	testutil.Error(t, err)
	lexErr, ok := err.(*token.LexError)
	testutil.True(t, ok, "expected *LexError, got %T", err)
	testutil.Equal(t, token.LexIntegerOverflow, lexErr.Kind)
}

func TestTabIsLexError(t *testing.T) {
	_, err := collect(t, "\t")
	testutil.Error(t, err)
	lexErr, ok := err.(*token.LexError)
	testutil.True(t, ok, "expected *LexError, got %T", err)
	testutil.Equal(t, token.LexUnknownCharacter, lexErr.Kind)
}

func TestUnknownCharacter(t *testing.T) {
	_, err := collect(t, "@")
	testutil.Error(t, err)
	lexErr, ok := err.(*token.LexError)
	testutil.True(t, ok, "expected *LexError, got %T", err)
	testutil.Equal(t, token.LexUnknownCharacter, lexErr.Kind)
}

func TestCarriageReturnSkippedSilently(t *testing.T) {
	toksCR, err := collect(t, "a\r\nb")
	testutil.NoError(t, err)
	toksNoCR, err := collect(t, "a\nb")
	testutil.NoError(t, err)
	testutil.Equal(t, len(toksNoCR), len(toksCR))
	for i := range toksNoCR {
		testutil.Equal(t, toksNoCR[i].Kind, toksCR[i].Kind, "token %d", i)
	}
}

func TestLineColumnAccounting(t *testing.T) {
	tz := newTokenizer("ab\ncd")
	_, loc, err := tz.Next() // "ab"
	testutil.NoError(t, err)
	testutil.Equal(t, 1, loc.Line)
	testutil.Equal(t, 1, loc.Column)

	_, _, err = tz.Next() // newline
	testutil.NoError(t, err)

	_, loc, err = tz.Next() // "cd"
	testutil.NoError(t, err)
	testutil.Equal(t, 2, loc.Line)
	testutil.Equal(t, 1, loc.Column)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	tz := newTokenizer("abc")
	tok1, _, err := tz.Peek()
	testutil.NoError(t, err)
	tok2, _, err := tz.Peek()
	testutil.NoError(t, err)
	testutil.Equal(t, tok1.Text, tok2.Text)

	tok3, _, err := tz.Next()
	testutil.NoError(t, err)
	testutil.Equal(t, tok1.Text, tok3.Text)

	_, _, err = tz.Next()
	testutil.Error(t, err)
}

func TestExpectMismatchReportsEndOfInput(t *testing.T) {
	tz := newTokenizer("")
	_, _, err := tz.Expect(token.KindName)
	testutil.Error(t, err)
	expectErr, ok := err.(*token.ExpectError)
	testutil.True(t, ok, "expected *ExpectError, got %T", err)
	testutil.Equal(t, "end of input", expectErr.ActualText)
}

func TestTokenizingIsDeterministic(t *testing.T) {
	source := "struct Person {\n    name: String\n}\n"
	toks1, err := collect(t, source)
	testutil.NoError(t, err)
	toks2, err := collect(t, source)
	testutil.NoError(t, err)
	testutil.Len(t, toks2, len(toks1))
	for i := range toks1 {
		testutil.Equal(t, toks1[i].Kind, toks2[i].Kind, "token %d", i)
		testutil.Equal(t, toks1[i].Text, toks2[i].Text, "token %d", i)
	}
}
