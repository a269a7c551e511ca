/*
File    : compilerfront/parser/fn.go
Function declarations: `fn ident(paramList) [-> ReturnType] Block`
(spec.md §4.3). Grounded in shape on go-mix/parser/parser_functions.go's
parseFunctionAssignment, but the function symbol here is inserted into
the ENCLOSING scope before parameters are parsed, then a FUNCTION-flagged
scope is entered for the parameter list and body, matching spec.md's
ordering exactly (the teacher's interpreter binds functions as values in
Env instead, which this front end does not need).
*/
package parser

import (
	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/symtab"
	"github.com/akashmaji946/compilerfront/token"
)

func (p *Parser) parseFnDecl() ast.Stmt {
	kw := p.advance()
	identTok, ok := p.consume(token.IDENTIFIER, "expected function name after 'fn'")
	if !ok {
		return nil
	}
	ident := ast.NewIdentifier(identTok)

	fnSym := symtab.NewSymbol(ident.Name, symtab.SymFunction, symtab.TypeUnknown, kw.Location.Line)
	p.declareSymbol(fnSym)

	p.consume(token.OPEN_PAREN, "expected '(' after function name")
	p.Symbols.EnterScope()
	p.Symbols.Current().Flags |= symtab.FlagFunction
	defer p.Symbols.ExitScope()

	var params []*ast.Param
	if !p.check(token.CLOSE_PAREN) {
		params = append(params, p.parseParam())
		for p.match(token.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.consume(token.CLOSE_PAREN, "expected ')' after parameter list")

	fnSym.Func.ParamCount = len(params)
	fnSym.Func.IsDefined = true

	var returnType *token.Token
	if p.match(token.ARROW) {
		typTok, ok := p.consume(token.TYPE, "expected return type after '->'")
		if ok {
			returnType = &typTok
		}
	}

	// The body opens its own nested block scope distinct from the
	// parameter scope just entered (spec.md §4.3: "parses the body
	// (which itself opens a nested block scope)").
	body := p.parseBlock()
	return ast.NewFnDecl(ident, params, returnType, body)
}

// parseParam implements `ident : Type`, inserting a param symbol into
// the function's scope (already entered by the caller).
func (p *Parser) parseParam() *ast.Param {
	identTok, ok := p.consume(token.IDENTIFIER, "expected parameter name")
	if !ok {
		return ast.NewParam(ast.NewIdentifier(identTok), token.Token{})
	}
	ident := ast.NewIdentifier(identTok)
	p.consume(token.COLON, "expected ':' after parameter name")
	typTok, _ := p.consume(token.TYPE, "expected parameter type")

	sym := symtab.NewSymbol(ident.Name, symtab.SymParam, symtab.DataTypeFromKeyword(typTok.Lexeme), identTok.Location.Line)
	sym.Param.Position = len(p.Symbols.Current().Symbols)
	p.declareSymbol(sym)

	return ast.NewParam(ident, typTok)
}
