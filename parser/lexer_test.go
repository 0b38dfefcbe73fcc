package parser

import (
	"testing"

	"github.com/kralicky/schemac/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) ([]Token, *reporter.Handler) {
	t.Helper()
	h := reporter.NewHandler()
	lex := NewLexer(src, h)
	var toks []Token
	for {
		tok := lex.Current()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
		lex.Consume()
	}
	return toks, h
}

func TestLexerPunctuationGreedyMatch(t *testing.T) {
	toks, h := lexAll(t, "&& & == = <= < << >= > >> != ! || |")
	require.False(t, h.HasErrors())

	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{
		Amp2, Amp, Eq2, Eq, LtEq, LAngle, ShiftLeft, GtEq, RAngle, ShiftRight,
		NEq, Bang, Pipe2, Pipe, EOF,
	}, kinds)
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	toks, h := lexAll(t, "struct variant var opt null true false FooBar _leading")
	require.False(t, h.HasErrors())

	require.Len(t, toks, 10)
	assert.Equal(t, KwStruct, toks[0].Kind)
	assert.Equal(t, KwVariant, toks[1].Kind)
	assert.Equal(t, KwVar, toks[2].Kind)
	assert.Equal(t, KwOpt, toks[3].Kind)
	assert.Equal(t, KwNull, toks[4].Kind)
	assert.Equal(t, KwTrue, toks[5].Kind)
	assert.Equal(t, KwFalse, toks[6].Kind)
	assert.Equal(t, Ident, toks[7].Kind)
	assert.Equal(t, "FooBar", toks[7].Text)
	assert.Equal(t, Ident, toks[8].Kind)
	assert.Equal(t, "_leading", toks[8].Text)
}

func TestLexerIntegerAndRealLiterals(t *testing.T) {
	toks, h := lexAll(t, "42 3.14 0")
	require.False(t, h.HasErrors())

	require.Len(t, toks, 4)
	assert.Equal(t, Integer, toks[0].Kind)
	assert.EqualValues(t, 42, toks[0].IntValue)
	assert.Equal(t, Real, toks[1].Kind)
	assert.InDelta(t, 3.14, toks[1].RealValue, 0.0001)
	assert.Equal(t, Integer, toks[2].Kind)
	assert.EqualValues(t, 0, toks[2].IntValue)
}

func TestLexerStringLiteral(t *testing.T) {
	toks, h := lexAll(t, `"hello world" "with \"escape\""`)
	require.False(t, h.HasErrors())

	require.Len(t, toks, 3)
	assert.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Text)
	assert.Equal(t, StringLit, toks[1].Kind)
}

func TestLexerSkipsCommentsAndTracksLines(t *testing.T) {
	toks, h := lexAll(t, "foo // a comment\nbar /* block\ncomment */ baz")
	require.False(t, h.HasErrors())

	require.Len(t, toks, 4)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, "bar", toks[1].Text)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, "baz", toks[2].Text)
	assert.Equal(t, 3, toks[2].Line)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	h := reporter.NewHandler()
	lex := NewLexer("foo bar", h)

	peeked := lex.Peek()
	assert.Equal(t, "bar", peeked.Text)
	assert.Equal(t, "foo", lex.Current().Text)

	lex.Consume()
	assert.Equal(t, "bar", lex.Current().Text)
}

func TestLexerIntegerOverflowReportsDiagnostic(t *testing.T) {
	_, h := lexAll(t, "99999999999999999999999999999999")
	assert.True(t, h.HasErrors())
}
