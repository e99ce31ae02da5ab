package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks := tokenize("SELECT (a,b_1) FROM T WHERE a = 'v w';")

	var kinds []tokenKind
	var vals []string
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
		vals = append(vals, tok.val)
	}

	assert.Equal(t, []string{"SELECT", "(", "a", ",", "b_1", ")", "FROM", "T", "WHERE", "a", "=", "v w", ";", ""}, vals)
	assert.Equal(t, tokString, kinds[11])
	assert.Equal(t, tokEOF, kinds[len(kinds)-1])
}

func TestTokenSpans(t *testing.T) {
	src := "a  'x y'  42"
	toks := tokenize(src)
	require.Len(t, toks, 4)

	assert.Equal(t, "a", src[toks[0].pos:toks[0].end])
	assert.Equal(t, "'x y'", src[toks[1].pos:toks[1].end])
	assert.True(t, toks[1].closed)
	assert.True(t, toks[2].isDigits())
	assert.False(t, toks[0].isDigits())
}

func TestUnterminatedString(t *testing.T) {
	toks := tokenize("x = 'abc")
	require.Len(t, toks, 4)

	assert.Equal(t, tokString, toks[2].kind)
	assert.Equal(t, "abc", toks[2].val)
	assert.False(t, toks[2].closed)
}

func TestKeywordMatching(t *testing.T) {
	toks := tokenize("from FROM From")
	for _, tok := range toks[:3] {
		assert.True(t, tok.isKeyword("FROM"))
	}
	assert.False(t, toks[3].isKeyword("FROM"))
}

func TestNonASCIISymbol(t *testing.T) {
	toks := tokenize("é")
	require.Len(t, toks, 2)
	assert.Equal(t, tokSymbol, toks[0].kind)
	assert.Equal(t, "é", toks[0].val)
}
