/*
File    : compilerfront/parser/expr.go
The eleven-level expression-precedence ladder from spec.md §4.3, lowest
to highest: assign, logical_or, logical_and, equality, comparison,
range, additive, multiplicative, unary, postfix, primary. Each level is
its own recursive method, grounded in shape on go-mix/parser's
per-level descent (parser_precedence.go's chained calls) but replacing
the teacher's generic binaryParseFunction/table dispatch, since this
grammar fixes exactly eleven levels including a dedicated range level
and an assignment level reached only by bounded lookahead rather than
normal recursive descent.
*/
package parser

import (
	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/diag"
	"github.com/akashmaji946/compilerfront/token"
)

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssign()
}

// assignOperators is the set of tokens that make IDENT <op> ... an
// assignment rather than a lower-precedence expression.
var assignOperators = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AND_ASSIGN: true,
}

// parseAssign implements level 1: right-associative, and only taken
// when the cursor sees IDENTIFIER followed by an assignment operator
// (spec.md §4.3's two-token lookahead). Otherwise it falls through to
// logical_or.
func (p *Parser) parseAssign() ast.Expr {
	if p.check(token.IDENTIFIER) && assignOperators[p.peekAt(1).Type] {
		name := p.advance()
		op := p.advance()
		value := p.parseAssign() // right-associative
		if sym := p.Symbols.Lookup(name.Lexeme); sym != nil {
			p.Symbols.AddReference(sym, name.Location.Line, true)
		} else {
			p.Diagnostics.Addf(diag.Error, "PARSER", name.Location,
				"undefined identifier %q", name.Lexeme)
		}
		return ast.NewAssign(name, op, value)
	}
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.check(token.OR) {
		op := p.advance()
		right := p.parseLogicalAnd()
		left = ast.NewBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.parseEquality()
		left = ast.NewBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.check(token.EQUAL) || p.check(token.NOT_EQUAL) {
		op := p.advance()
		right := p.parseComparison()
		left = ast.NewBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseRange()
	for p.check(token.LESS) || p.check(token.GREATER) || p.check(token.LESS_EQUAL) || p.check(token.GREATER_EQUAL) {
		op := p.advance()
		right := p.parseRange()
		left = ast.NewBinary(left, op, right)
	}
	return left
}

// parseRange implements level 6: `a...b...c` means start=a, end=b,
// step=c; chaining left-nests (spec.md §4.3).
func (p *Parser) parseRange() ast.Expr {
	left := p.parseAdditive()
	for p.check(token.ELLIPSIS) {
		p.advance()
		end := p.parseAdditive()
		var step ast.Expr
		if p.check(token.ELLIPSIS) {
			p.advance()
			step = p.parseAdditive()
		}
		left = ast.NewRange(left, end, nil, step)
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinary(left, op, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = ast.NewBinary(left, op, right)
	}
	return left
}

// parseUnary implements level 9: prefix `!` or `-`, right-recursive.
func (p *Parser) parseUnary() ast.Expr {
	if p.check(token.NOT) || p.check(token.MINUS) {
		op := p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(op, operand)
	}
	return p.parsePostfix()
}

// parsePostfix implements level 10: `[expr]` indexing and `(args)`
// calls, chained onto a primary.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.OPEN_BRACKET):
			p.advance()
			index := p.parseExpression()
			p.consume(token.CLOSE_BRACKET, "expected ']' after index expression")
			expr = ast.NewIndex(expr, index)
		case p.check(token.OPEN_PAREN):
			p.advance()
			args := p.parseArgList()
			p.consume(token.CLOSE_PAREN, "expected ')' after call arguments")
			expr = ast.NewFnCall(expr, args)
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	if p.check(token.CLOSE_PAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(token.COMMA) {
		args = append(args, p.parseExpression())
	}
	return args
}

// parsePrimary implements level 11: literal, identifier, or
// parenthesized expression. An identifier read here (not itself the
// callee of a call, which is handled the same way - spec.md §4.4 treats
// call callees as a read too) triggers a symbol-table lookup and
// read-reference recording, or an undefined-identifier diagnostic.
func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.check(token.INT_LITERAL), p.check(token.FLOAT_LITERAL),
		p.check(token.CHAR_LITERAL), p.check(token.BOOL_LITERAL),
		p.check(token.HEX_LITERAL), p.check(token.OCTAL_LITERAL),
		p.check(token.BINARY_LITERAL), p.check(token.STRING_LITERAL):
		return ast.NewLiteral(p.advance())
	case p.check(token.IDENTIFIER):
		name := p.advance()
		if sym := p.Symbols.Lookup(name.Lexeme); sym != nil {
			p.Symbols.AddReference(sym, name.Location.Line, false)
		} else {
			p.Diagnostics.Addf(diag.Error, "PARSER", name.Location,
				"undefined identifier %q", name.Lexeme)
		}
		return ast.NewIdentifier(name)
	case p.check(token.UNDERSCORE):
		return ast.NewIdentifier(p.advance())
	case p.check(token.OPEN_PAREN):
		p.advance()
		inner := p.parseExpression()
		p.consume(token.CLOSE_PAREN, "expected ')' after expression")
		return inner
	default:
		tok := p.peek()
		p.errorAtCurrent("expected expression")
		return ast.NewLiteral(tok)
	}
}
