/*
File    : compilerfront/parser/stubs.go
parseVec and parseList mirror original_source's declared-but-empty
parse_vec/parse_list: the grammar reserves `vec` and list-literal syntax,
but neither production was ever filled in, and spec.md §9 says to leave
both as explicit stubs rather than invent semantics. CASE is lexed
(token.CASE) but, per the same section, never parsed into a statement;
parseStatement's default case tries to parse it as an expression, which
records a parse error and consumes nothing, so parseStatement returns
nil and the caller skips the token, same as for any other unhandled
keyword.
*/
package parser

import (
	"github.com/akashmaji946/compilerfront/ast"
)

// parseVec is not implemented: the `vec` keyword is reserved but this
// front end does not parse vector literals or declarations.
func (p *Parser) parseVec() ast.Expr {
	p.errorAtCurrent("vec literals are not implemented")
	return nil
}

// parseList is not implemented: list-literal syntax is reserved but
// unsupported, matching original_source's empty parse_list.
func (p *Parser) parseList() ast.Expr {
	p.errorAtCurrent("list literals are not implemented")
	return nil
}
