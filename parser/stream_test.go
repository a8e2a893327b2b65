package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestScanTokenClasses(t *testing.T) {
	tokens := newScanner("fn f(a, b) { x = (+ 12 a_1) return x }").scanAll()

	assert.Equal(t, []string{"fn", "f", "(", "a", ",", "b", ")", "{", "x", "=", "(", "+", "12", "a_1", ")", "return", "x", "}", ""}, texts(tokens))
	assert.Equal(t, []Kind{
		Keyword, Ident, Punct, Ident, Punct, Ident, Punct, Punct,
		Ident, Punct, Punct, Ident, Number, Ident, Punct, Keyword, Ident, Punct, EOF,
	}, kinds(tokens))
}

func TestScanSymbolRuns(t *testing.T) {
	tokens := newScanner("(== ** <= != =)").scanAll()
	assert.Equal(t, []string{"(", "==", "**", "<=", "!=", "=", ")", ""}, texts(tokens))
	assert.Equal(t, []Kind{Punct, Ident, Ident, Ident, Ident, Punct, Punct, EOF}, kinds(tokens))
}

func TestScanKeywordPrefixIsIdent(t *testing.T) {
	tokens := newScanner("fnord returned").scanAll()
	assert.Equal(t, []Kind{Ident, Ident, EOF}, kinds(tokens))
}

func TestScanMixedWordIsIdent(t *testing.T) {
	tokens := newScanner("1st 42").scanAll()
	assert.Equal(t, []Kind{Ident, Number, EOF}, kinds(tokens))
}

func TestScanOffsetsAreBytes(t *testing.T) {
	tokens := newScanner("λ x").scanAll()
	require.Len(t, tokens, 3)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 2, tokens[0].End)
	assert.Equal(t, 3, tokens[1].Start)
	assert.Equal(t, 4, tokens[2].Start)
}

func TestScanOffsetsAfterInvalidUTF8(t *testing.T) {
	tokens := newScanner("\xff x \xfe\xfd(").scanAll()
	require.Len(t, tokens, 5)
	assert.Equal(t, []Kind{Ident, Ident, Ident, Punct, EOF}, kinds(tokens))
	assert.Equal(t, "\xff", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 1, tokens[0].End)
	assert.Equal(t, "x", tokens[1].Text)
	assert.Equal(t, 2, tokens[1].Start)
	assert.Equal(t, 3, tokens[1].End)
	assert.Equal(t, "\xfe\xfd", tokens[2].Text)
	assert.Equal(t, 4, tokens[2].Start)
	assert.Equal(t, 6, tokens[2].End)
	assert.Equal(t, 7, tokens[4].Start)
}

func TestScanNonASCIIDigitsAreIdent(t *testing.T) {
	tokens := newScanner("٣ 3٣ 33").scanAll()
	assert.Equal(t, []Kind{Ident, Ident, Number, EOF}, kinds(tokens))
	assert.Equal(t, []string{"٣", "3٣", "33", ""}, texts(tokens))
}

func TestScanComments(t *testing.T) {
	tokens := newScanner("a // b c\n// d\ne").scanAll()
	assert.Equal(t, []string{"a", "e", ""}, texts(tokens))
}

func TestStreamCursor(t *testing.T) {
	s := NewStream("fn main ( 1")

	assert.True(t, s.PeekKind(Keyword))
	_, ok := s.Take("main")
	assert.False(t, ok, "identifiers are not taken by text")

	mark := s.Save()
	_, ok = s.Take("fn")
	require.True(t, ok)
	name, ok := s.TakeKind(Ident)
	require.True(t, ok)
	assert.Equal(t, "main", name.Text)

	s.Restore(mark)
	assert.True(t, s.PeekText("fn"))

	s.Take("fn")
	s.TakeKind(Ident)
	s.Take("(")
	_, ok = s.TakeKind(Number)
	require.True(t, ok)
	assert.True(t, s.Done())

	// taking at the end never moves past EOF
	tok, ok := s.TakeKind(EOF)
	assert.True(t, ok)
	assert.Equal(t, EOF, tok.Kind)
	assert.True(t, s.Done())
}
