/*
File    : compilerfront/lexer/literal_string.go
readString and readChar implement spec.md §4.1's string/char scanning:
both consume until the matching quote, rejecting EOF as a fatal error,
and keep escape sequences verbatim in the lexeme (the inner text, quotes
stripped) rather than decoding them - unlike go-mix/lexer/lexer_utils.go's
readStringLiteral/escapeChar, which decode escapes into actual bytes.
See spec.md §9 on this deliberate deviation.
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/compilerfront/token"
)

func (lex *Lexer) readString() (token.Token, error) {
	start := lex.loc()
	lex.Advance() // opening quote
	contentStart := lex.Position

	for lex.Current != '"' {
		if lex.Current == 0 {
			return token.Token{}, fmt.Errorf("[%s] LEXER ERROR: string literal not terminated - unexpected EOF", start)
		}
		if lex.Current == '\\' {
			lex.Advance()
			if lex.Current == 0 {
				return token.Token{}, fmt.Errorf("[%s] LEXER ERROR: string literal not terminated - unexpected EOF", start)
			}
			lex.Advance()
			continue
		}
		if lex.Current == '\n' {
			lex.advanceNewline()
			continue
		}
		lex.Advance()
	}

	lexeme := lex.Src[contentStart:lex.Position]
	lex.Advance() // closing quote
	return token.New(token.STRING_LITERAL, lexeme, start), nil
}

func (lex *Lexer) readChar() (token.Token, error) {
	start := lex.loc()
	lex.Advance() // opening quote
	contentStart := lex.Position

	if lex.Current == 0 {
		return token.Token{}, fmt.Errorf("[%s] LEXER ERROR: char literal not terminated - unexpected EOF", start)
	}
	if lex.Current == '\\' {
		lex.Advance()
		if lex.Current == 0 {
			return token.Token{}, fmt.Errorf("[%s] LEXER ERROR: char literal not terminated - unexpected EOF", start)
		}
	}
	lex.Advance() // the literal character (or the escaped character)

	if lex.Current != '\'' {
		return token.Token{}, fmt.Errorf("[%s] LEXER ERROR: char literal not terminated - expected closing quote", start)
	}

	lexeme := lex.Src[contentStart:lex.Position]
	lex.Advance() // closing quote
	return token.New(token.CHAR_LITERAL, lexeme, start), nil
}
