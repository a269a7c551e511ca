/*
File    : compilerfront/lexer/operators.go
readOperator dispatches the current byte into the operator/punctuation
table from spec.md §4.1, preferring two-character operators over their
one-character prefixes (==, !=, <=, >=, <<, >>, &&, ||, +=, -=, *=, /=,
%=, &=, ++, --, **, ->, =>, ...) before falling back to singletons.
Grounded on go-mix/lexer/lexer.go's per-character switch, extended with
the additional operators and the "->"/"=>"-to-ARROW collapse spec.md
§6.1 requires.
*/
package lexer

import "github.com/akashmaji946/compilerfront/token"

// readOperator consumes the current byte as an operator/punctuation
// token, reporting ok=false when the byte matched nothing (spec.md
// §4.1: "unknown bytes are silently skipped") - the byte is still
// consumed either way; the caller scans again for another token on !ok.
func (lex *Lexer) readOperator() (token.Token, bool) {
	start := lex.loc()
	c := lex.Current

	one := func(kind token.Kind, lexeme string) (token.Token, bool) {
		lex.Advance()
		return token.New(kind, lexeme, start), true
	}
	two := func(next byte, kind token.Kind, lexeme string) (token.Token, bool) {
		if lex.Peek() == next {
			lex.Advance()
			lex.Advance()
			return token.New(kind, lexeme, start), true
		}
		return token.Token{}, false
	}

	switch c {
	case '=':
		if t, ok := two('=', token.EQUAL, "=="); ok {
			return t, true
		}
		if t, ok := two('>', token.ARROW, "=>"); ok {
			return t, true
		}
		return one(token.ASSIGN, "=")
	case '!':
		if t, ok := two('=', token.NOT_EQUAL, "!="); ok {
			return t, true
		}
		return one(token.NOT, "!")
	case '<':
		if t, ok := two('=', token.LESS_EQUAL, "<="); ok {
			return t, true
		}
		if t, ok := two('<', token.LSHIFT, "<<"); ok {
			return t, true
		}
		return one(token.LESS, "<")
	case '>':
		if t, ok := two('=', token.GREATER_EQUAL, ">="); ok {
			return t, true
		}
		if t, ok := two('>', token.RSHIFT, ">>"); ok {
			return t, true
		}
		return one(token.GREATER, ">")
	case '+':
		if t, ok := two('=', token.PLUS_ASSIGN, "+="); ok {
			return t, true
		}
		if t, ok := two('+', token.PLUS_PLUS, "++"); ok {
			return t, true
		}
		return one(token.PLUS, "+")
	case '-':
		if t, ok := two('=', token.MINUS_ASSIGN, "-="); ok {
			return t, true
		}
		if t, ok := two('-', token.MINUS_MINUS, "--"); ok {
			return t, true
		}
		if t, ok := two('>', token.ARROW, "->"); ok {
			return t, true
		}
		return one(token.MINUS, "-")
	case '*':
		if t, ok := two('=', token.STAR_ASSIGN, "*="); ok {
			return t, true
		}
		if t, ok := two('*', token.STAR_STAR, "**"); ok {
			return t, true
		}
		return one(token.STAR, "*")
	case '/':
		if t, ok := two('=', token.SLASH_ASSIGN, "/="); ok {
			return t, true
		}
		return one(token.SLASH, "/")
	case '%':
		if t, ok := two('=', token.PERCENT_ASSIGN, "%="); ok {
			return t, true
		}
		return one(token.PERCENT, "%")
	case '&':
		if t, ok := two('&', token.AND, "&&"); ok {
			return t, true
		}
		if t, ok := two('=', token.AND_ASSIGN, "&="); ok {
			return t, true
		}
		return one(token.BITWISE_AND, "&")
	case '|':
		if t, ok := two('|', token.OR, "||"); ok {
			return t, true
		}
		return one(token.BITWISE_OR, "|")
	case '^':
		return one(token.BITWISE_XOR, "^")
	case '.':
		if lex.Peek() == '.' && lex.PeekAt(2) == '.' {
			lex.Advance()
			lex.Advance()
			lex.Advance()
			return token.New(token.ELLIPSIS, "...", start), true
		}
		return one(token.DOT, ".")
	case '(':
		return one(token.OPEN_PAREN, "(")
	case ')':
		return one(token.CLOSE_PAREN, ")")
	case '{':
		return one(token.OPEN_CURLY, "{")
	case '}':
		return one(token.CLOSE_CURLY, "}")
	case '[':
		return one(token.OPEN_BRACKET, "[")
	case ']':
		return one(token.CLOSE_BRACKET, "]")
	case ',':
		return one(token.COMMA, ",")
	case ';':
		return one(token.SEMICOLON, ";")
	case ':':
		return one(token.COLON, ":")
	case '_':
		return one(token.UNDERSCORE, "_")
	default:
		// Unknown bytes are silently skipped, a documented known
		// limitation per spec.md §4.1 rather than a lexical error.
		lex.Advance()
		return token.Token{}, false
	}
}
