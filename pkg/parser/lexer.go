package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokSymbol
)

// token is a lexeme with its byte span in the source line, so grammar rules
// can slice raw text (column defaults) back out of the input.
type token struct {
	kind tokenKind
	val  string
	pos  int
	end  int
	// closed is false for a string literal that ran to the end of input
	closed bool
}

func (t token) isDigits() bool {
	if t.kind != tokWord {
		return false
	}
	for i := 0; i < len(t.val); i++ {
		if t.val[i] < '0' || t.val[i] > '9' {
			return false
		}
	}
	return true
}

func (t token) isKeyword(kw string) bool {
	return t.kind == tokWord && strings.EqualFold(t.val, kw)
}

func (t token) isSymbol(sym string) bool {
	return t.kind == tokSymbol && t.val == sym
}

type lexer struct {
	s   string
	pos int
}

func newLexer(s string) *lexer {
	return &lexer{s: s}
}

func (lx *lexer) skipWhitespace() {
	for lx.pos < len(lx.s) {
		r, size := utf8.DecodeRuneInString(lx.s[lx.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		lx.pos += size
	}
}

// isWordByte matches the ASCII word class [A-Za-z0-9_]
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func (lx *lexer) next() token {
	lx.skipWhitespace()
	start := lx.pos
	if start >= len(lx.s) {
		return token{kind: tokEOF, pos: start, end: start}
	}

	c := lx.s[start]
	switch {
	case isWordByte(c):
		for lx.pos < len(lx.s) && isWordByte(lx.s[lx.pos]) {
			lx.pos++
		}
		return token{kind: tokWord, val: lx.s[start:lx.pos], pos: start, end: lx.pos}
	case c == '\'':
		lx.pos++
		closeAt := strings.IndexByte(lx.s[lx.pos:], '\'')
		if closeAt < 0 {
			val := lx.s[lx.pos:]
			lx.pos = len(lx.s)
			return token{kind: tokString, val: val, pos: start, end: lx.pos}
		}
		val := lx.s[lx.pos : lx.pos+closeAt]
		lx.pos += closeAt + 1
		return token{kind: tokString, val: val, pos: start, end: lx.pos, closed: true}
	default:
		_, size := utf8.DecodeRuneInString(lx.s[start:])
		lx.pos += size
		return token{kind: tokSymbol, val: lx.s[start:lx.pos], pos: start, end: lx.pos}
	}
}

// tokenize splits s into tokens; the final token is always tokEOF.
func tokenize(s string) []token {
	lx := newLexer(s)
	var toks []token
	for {
		tok := lx.next()
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks
		}
	}
}
