/*
File    : compilerfront/lexer/lexer_test.go
Table-driven tests in go-mix/lexer/lexer_test.go's style (tests :=
[]struct{...}{...} + t.Run), covering spec.md §8's lexer properties.
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/compilerfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := New("test.src", src).Tokenize()
	require.NoError(t, err)
	return toks
}

func TestNumericPrefixes(t *testing.T) {
	tests := []struct {
		src      string
		wantType token.Kind
		wantText string
		wantCol  int // 1-based column of the first byte of Lexeme in src
	}{
		{"0b1010", token.BINARY_LITERAL, "1010", 3},
		{"0o755", token.OCTAL_LITERAL, "755", 3},
		{"0xFF", token.HEX_LITERAL, "FF", 3},
		{"3.14", token.FLOAT_LITERAL, "3.14", 1},
		{"42", token.INT_LITERAL, "42", 1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := tokenize(t, tt.src)
			require.GreaterOrEqual(t, len(toks), 1)
			assert.Equal(t, tt.wantType, toks[0].Type)
			assert.Equal(t, tt.wantText, toks[0].Lexeme)
			assert.Equal(t, tt.wantCol, toks[0].Location.Column)

			// Lexeme round-trip property (spec.md §8): the substring of
			// src starting at the token's column must equal the lexeme.
			col := toks[0].Location.Column - 1
			require.LessOrEqual(t, col+len(tt.wantText), len(tt.src))
			assert.Equal(t, tt.wantText, tt.src[col:col+len(tt.wantText)])
		})
	}
}

func TestPrefixWithNoDigitsLeavesPrefixLetterForNextToken(t *testing.T) {
	// "0b" followed by a non-binary-digit must not silently consume the
	// prefix letter: "0" is emitted as INT_LITERAL, then "b2" as its own
	// IDENTIFIER, with no lexical error.
	toks := tokenize(t, "0b2 x")
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, token.INT_LITERAL, toks[0].Type)
	assert.Equal(t, "0", toks[0].Lexeme)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
	assert.Equal(t, "b2", toks[1].Lexeme)
	assert.Equal(t, token.IDENTIFIER, toks[2].Type)
	assert.Equal(t, "x", toks[2].Lexeme)
}

func TestFloatRequiresDigitAfterDot(t *testing.T) {
	// "1." with nothing following the dot should not promote to float;
	// the dot is left for the next token (e.g. member access).
	toks := tokenize(t, "1.x")
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, token.INT_LITERAL, toks[0].Type)
	assert.Equal(t, token.DOT, toks[1].Type)
	assert.Equal(t, token.IDENTIFIER, toks[2].Type)
}

func TestRangeOperatorNotConfusedWithFloat(t *testing.T) {
	toks := tokenize(t, "2...5")
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, token.INT_LITERAL, toks[0].Type)
	assert.Equal(t, "2", toks[0].Lexeme)
	assert.Equal(t, token.ELLIPSIS, toks[1].Type)
	assert.Equal(t, token.INT_LITERAL, toks[2].Type)
	assert.Equal(t, "5", toks[2].Lexeme)
}

func TestNewlineCountMatchesSource(t *testing.T) {
	src := "var x = 1\nvar y = 2\n\nvar z = 3\n"
	toks := tokenize(t, src)
	newlines := 0
	for _, tok := range toks {
		if tok.Type == token.NEWLINE {
			newlines++
		}
	}
	wantNewlines := 0
	for _, b := range []byte(src) {
		if b == '\n' {
			wantNewlines++
		}
	}
	assert.Equal(t, wantNewlines, newlines)
}

func TestNewlinesInsideCommentsAreNotCounted(t *testing.T) {
	src := "/* line one\nline two\nline three */\nvar x = 1\n"
	toks := tokenize(t, src)
	newlines := 0
	for _, tok := range toks {
		if tok.Type == token.NEWLINE {
			newlines++
		}
	}
	assert.Equal(t, 2, newlines)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize(t, "fn struct union enum myVar _")
	want := []token.Kind{token.FN, token.STRUCT, token.UNION, token.ENUM, token.IDENTIFIER, token.UNDERSCORE}
	require.Len(t, toks, len(want)+1) // +1 for EOF
	for i, k := range want {
		assert.Equal(t, k, toks[i].Type, "token %d", i)
	}
}

func TestOperatorTableTwoCharPriority(t *testing.T) {
	src := "== != <= >= << >> && || += -= *= /= %= &= ++ -- ** -> => ..."
	toks := tokenize(t, src)
	want := []token.Kind{
		token.EQUAL, token.NOT_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LSHIFT, token.RSHIFT, token.AND, token.OR,
		token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.AND_ASSIGN, token.PLUS_PLUS, token.MINUS_MINUS,
		token.STAR_STAR, token.ARROW, token.ARROW, token.ELLIPSIS,
	}
	require.Len(t, toks, len(want)+1)
	for i, k := range want {
		assert.Equal(t, k, toks[i].Type, "token %d (%s)", i, toks[i].Lexeme)
	}
}

func TestStringLiteralKeepsEscapesVerbatim(t *testing.T) {
	toks := tokenize(t, `"hello\nworld"`)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.STRING_LITERAL, toks[0].Type)
	assert.Equal(t, `hello\nworld`, toks[0].Lexeme)
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	_, err := New("test.src", `"unterminated`).Tokenize()
	require.Error(t, err)
}

func TestUnterminatedBlockCommentIsFatal(t *testing.T) {
	_, err := New("test.src", "/* never closed").Tokenize()
	require.Error(t, err)
}

func TestLexemeRecoversFromSourceBytes(t *testing.T) {
	src := "var count = 100"
	toks := tokenize(t, src)
	for _, tok := range toks {
		if tok.Type == token.EOF || tok.Type == token.NEWLINE {
			continue
		}
		assert.Contains(t, src, tok.Lexeme)
	}
}

func TestColumnTracksBytes(t *testing.T) {
	toks := tokenize(t, "ab cd")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, 1, toks[0].Location.Column)
	assert.Equal(t, 4, toks[1].Location.Column)
}

func TestUnknownBytesAreSkippedNotErrors(t *testing.T) {
	toks, err := New("test.src", "x @ y").Tokenize()
	require.NoError(t, err)
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.IDENTIFIER, token.EOF}, kinds)
}
