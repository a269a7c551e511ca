/*
File    : compilerfront/lexer/identifier.go
readIdentifier scans an identifier or keyword, grounded on
go-mix/lexer/lexer_utils.go's readIdentifier, classifying the result
via token.LookupIdent and collapsing the built-in type keywords to
token.TYPE per spec.md §6.1 ("Types collapse to one TYPE kind").
*/
package lexer

import "github.com/akashmaji946/compilerfront/token"

func (lex *Lexer) readIdentifier() token.Token {
	start := lex.loc()
	startPos := lex.Position

	lex.Advance() // consume the leading letter/underscore
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	lexeme := lex.Src[startPos:lex.Position]

	// A lone "_" is the wildcard/placeholder punctuation token, not an
	// identifier (spec.md §6.1 lists '_' among the punctuation kinds;
	// match's default-arm pattern relies on this).
	if lexeme == "_" {
		return token.New(token.UNDERSCORE, lexeme, start)
	}

	kind := token.LookupIdent(lexeme)
	if token.IsTypeKeyword(kind) {
		return token.New(token.TYPE, lexeme, start)
	}
	return token.New(kind, lexeme, start)
}
