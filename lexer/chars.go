/*
File    : compilerfront/lexer/chars.go
Byte-classification helpers, grounded on go-mix/lexer/lexer_utils.go's
isDigitASCII/isHexDigitASCII/isWhitespace/isAlpha family, kept ASCII-only
since Unicode identifiers are an explicit non-goal (spec.md §1).
*/
package lexer

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}
