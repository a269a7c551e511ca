/*
File    : compilerfront/lexer/number.go
readNumber scans integer and float literals, dispatching on the prefix
per spec.md §4.1: 0b/0B -> binary, 0o/0O -> octal, 0x/0X -> hex, else
decimal; a single '.' inside a run of decimal digits promotes the token
to FLOAT_LITERAL, but only when at least one digit follows the dot.
Grounded on go-mix/lexer/lexer_utils.go's readNumber, whose hex fast
path is generalized here to also cover binary and octal prefixes, and
whose "stop before range operator (...)" rule is kept verbatim.
*/
package lexer

import "github.com/akashmaji946/compilerfront/token"

func (lex *Lexer) readNumber() token.Token {
	start := lex.loc()
	startPos := lex.Position

	if lex.Current == '0' {
		switch lex.Peek() {
		case 'b', 'B':
			if t, ok := lex.readPrefixedLiteral(token.BINARY_LITERAL, isBinaryDigit); ok {
				return t
			}
		case 'o', 'O':
			if t, ok := lex.readPrefixedLiteral(token.OCTAL_LITERAL, isOctalDigit); ok {
				return t
			}
		case 'x', 'X':
			if t, ok := lex.readPrefixedLiteral(token.HEX_LITERAL, isHexDigit); ok {
				return t
			}
		}
	}

	lex.Advance() // first digit already confirmed by the caller

	isFloat := false
	for {
		if isDigit(lex.Current) {
			lex.Advance()
			continue
		}
		if lex.Current == '.' && !isFloat && isDigit(lex.Peek()) {
			isFloat = true
			lex.Advance()
			continue
		}
		break
	}

	lexeme := lex.Src[startPos:lex.Position]
	kind := token.INT_LITERAL
	if isFloat {
		kind = token.FLOAT_LITERAL
	}
	return token.New(kind, lexeme, start)
}

// readPrefixedLiteral scans a 0<prefix><digits> literal (binary, octal,
// or hex), returning only the digits after the prefix as the lexeme,
// with the token's Location pointing at the first digit rather than at
// the "0" (spec.md §8: "0b1010 -> BINARY_LITERAL \"1010\"", and the
// lexeme round-trip property, which names no exception for numeric
// literals). It looks two bytes ahead before consuming anything: if no
// digit follows the prefix, it reports ok=false without advancing the
// cursor at all, leaving "0" and the prefix letter untouched for
// readNumber's decimal fallback and the next NextToken call to lex in
// turn - so a malformed prefix like "0xzz" never silently drops a byte.
func (lex *Lexer) readPrefixedLiteral(kind token.Kind, digit func(byte) bool) (token.Token, bool) {
	if !digit(lex.PeekAt(2)) {
		return token.Token{}, false
	}
	lex.Advance() // '0'
	lex.Advance() // prefix letter
	digitsStart := lex.loc()
	startPos := lex.Position
	for digit(lex.Current) {
		lex.Advance()
	}
	return token.New(kind, lex.Src[startPos:lex.Position], digitsStart), true
}
