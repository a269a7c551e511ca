/*
File    : compilerfront/parser/stmt.go
Statement dispatch and the declaration/control-flow productions of
spec.md §4.3, grounded in shape on go-mix/parser/parser_statements.go
and parser_conditionals.go's per-keyword parse functions, rebuilt
against this grammar (var/let/fn/if/match/loop/struct/union/enum/return
plus expression-statement fallback) and wired into symtab.SymbolTable
instead of the teacher's Env map.
*/
package parser

import (
	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/diag"
	"github.com/akashmaji946/compilerfront/symtab"
	"github.com/akashmaji946/compilerfront/token"
)

// parseStatement dispatches on the current token per spec.md §4.3.
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.check(token.VAR):
		return p.parseVarDecl(false)
	case p.check(token.LET):
		return p.parseVarDecl(true)
	case p.check(token.FN):
		return p.parseFnDecl()
	case p.check(token.IF):
		return p.parseIf()
	case p.check(token.MATCH):
		return p.parseMatch()
	case p.check(token.LOOP):
		return p.parseLoop()
	case p.check(token.RETURN):
		return p.parseReturn()
	case p.check(token.STRUCT):
		return p.parseStruct()
	case p.check(token.UNION):
		return p.parseUnion()
	case p.check(token.ENUM):
		return p.parseEnum()
	default:
		start := p.cursor
		expr := p.parseExpression()
		if p.cursor == start {
			// Nothing was consumed (a token that cannot start an
			// expression); return nil so the caller synchronizes past it.
			return nil
		}
		return ast.NewExprStmt(expr)
	}
}

// declareSymbol checks for redeclaration in the current scope before
// inserting, per spec.md §4.4's redeclaration policy: on a hit it
// records a diagnostic and does NOT insert a duplicate.
func (p *Parser) declareSymbol(sym *symtab.Symbol) {
	if existing := p.Symbols.LookupCurrentScope(sym.Name); existing != nil {
		p.Diagnostics.Addf(diag.Error, "PARSER", token.SourceLocation{Line: sym.DeclarationLine},
			"redeclaration of %q (first declared at line %d)", sym.Name, existing.DeclarationLine)
		return
	}
	p.Symbols.Insert(sym)
}

// parseVarDecl implements `var ident [: Type] [= expr]` and, with
// isConst, the `let` form. If the token after ident is '[', control
// passes to the array-declaration form instead.
func (p *Parser) parseVarDecl(isConst bool) ast.Stmt {
	keyword := p.advance() // 'var' or 'let'
	identTok, ok := p.consume(token.IDENTIFIER, "expected identifier after 'var'/'let'")
	if !ok {
		return nil
	}
	ident := ast.NewIdentifier(identTok)

	if p.check(token.OPEN_BRACKET) {
		return p.parseArrayDecl(ident, isConst)
	}

	var declaredType *token.Token
	if p.match(token.COLON) {
		typTok, ok := p.consume(token.TYPE, "expected type after ':'")
		if ok {
			declaredType = &typTok
		}
	}

	var value ast.Expr
	if p.match(token.ASSIGN) {
		value = p.parseExpression()
	}

	kind := symtab.SymVariable
	if isConst {
		kind = symtab.SymConstant
	}
	dataType := symtab.TypeUnknown
	if declaredType != nil {
		dataType = symtab.DataTypeFromKeyword(declaredType.Lexeme)
	}
	sym := symtab.NewSymbol(ident.Name, kind, dataType, keyword.Location.Line)
	sym.Var.IsConstant = isConst
	p.declareSymbol(sym)

	return ast.NewVarDecl(ident, declaredType, value, isConst)
}

// parseArrayDecl implements `ident[Type:sizeExpr] = [elem, ...]`.
func (p *Parser) parseArrayDecl(ident *ast.Identifier, isConst bool) ast.Stmt {
	p.advance() // '['
	elemTypeTok, _ := p.consume(token.TYPE, "expected element type in array declaration")
	p.consume(token.COLON, "expected ':' after array element type")
	size := p.parseExpression()
	p.consume(token.CLOSE_BRACKET, "expected ']' after array size expression")

	var literals []ast.Expr
	hasLiterals := false
	if p.match(token.ASSIGN) {
		p.consume(token.OPEN_BRACKET, "expected '[' to start array literal")
		hasLiterals = true
		if !p.check(token.CLOSE_BRACKET) {
			literals = append(literals, p.parseExpression())
			for p.match(token.COMMA) {
				literals = append(literals, p.parseExpression())
			}
		}
		p.consume(token.CLOSE_BRACKET, "expected ']' to close array literal")
	}

	sym := symtab.NewSymbol(ident.Name, symtab.SymArray, symtab.TypeArray, ident.Location().Line)
	sym.Var.IsConstant = isConst
	p.declareSymbol(sym)

	return ast.NewArrayDecl(ident, elemTypeTok, size, literals, hasLiterals)
}

// parseReturn implements `return expr ;` (an empty return is permitted
// before a statement terminator).
func (p *Parser) parseReturn() ast.Stmt {
	kw := p.advance()
	if p.check(token.SEMICOLON) || p.check(token.NEWLINE) || p.check(token.CLOSE_CURLY) || p.isAtEnd() {
		p.match(token.SEMICOLON)
		return ast.NewReturn(kw.Location, nil)
	}
	value := p.parseExpression()
	p.match(token.SEMICOLON)
	return ast.NewReturn(kw.Location, value)
}

// parseBlock implements `{ stmt* }`, opening a new child scope on entry
// and closing it on exit (spec.md §4.3).
func (p *Parser) parseBlock() *ast.Block {
	open, _ := p.consume(token.OPEN_CURLY, "expected '{' to start block")
	p.Symbols.EnterScope()
	defer p.Symbols.ExitScope()

	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.check(token.CLOSE_CURLY) && !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize()
		}
		p.skipNewlines()
	}
	p.consume(token.CLOSE_CURLY, "expected '}' to close block")
	return ast.NewBlock(open.Location, stmts)
}

// parseIf implements `if expr Block (else (if ... | Block))?`.
func (p *Parser) parseIf() ast.Stmt {
	kw := p.advance()
	condition := p.parseExpression()
	then := p.parseBlock()

	var elseBranch ast.Node
	if p.match(token.ELSE) {
		if p.check(token.IF) {
			elseBranch = p.parseIf()
		} else {
			elseBranch = p.parseBlock()
		}
	}
	return ast.NewIf(kw.Location, condition, then, elseBranch)
}

// parseMatch implements `match expr { (pattern => stmt)* (_ => stmt)? }`.
func (p *Parser) parseMatch() ast.Stmt {
	kw := p.advance()
	scrutinee := p.parseExpression()
	p.consume(token.OPEN_CURLY, "expected '{' to start match body")
	p.skipNewlines()

	var cases []*ast.MatchCase
	var def *ast.MatchCase
	for !p.check(token.CLOSE_CURLY) && !p.isAtEnd() {
		loc := p.peek().Location
		if p.check(token.UNDERSCORE) {
			p.advance()
			p.consume(token.ARROW, "expected '=>' after match default pattern")
			body := p.parseStatement()
			def = ast.NewMatchCase(loc, nil, body)
		} else {
			pattern := p.parseExpression()
			p.consume(token.ARROW, "expected '=>' after match pattern")
			body := p.parseStatement()
			cases = append(cases, ast.NewMatchCase(loc, pattern, body))
		}
		if !p.match(token.COMMA) {
			p.skipNewlines()
		}
		p.skipNewlines()
	}
	p.consume(token.CLOSE_CURLY, "expected '}' to close match body")
	return ast.NewMatch(kw.Location, scrutinee, cases, def)
}

// parseLoop implements the three `loop` forms, distinguished by
// lookahead per spec.md §4.3: `{` -> unconditional; IDENTIFIER followed
// by `:` -> iterator form; otherwise condition form.
func (p *Parser) parseLoop() ast.Stmt {
	kw := p.advance()

	switch {
	case p.check(token.OPEN_CURLY):
		body := p.parseLoop_bodyWithLoopFlag()
		return ast.NewLoop(kw.Location, nil, body)

	case p.check(token.IDENTIFIER) && p.peekAt(1).Type == token.COLON:
		identTok := p.advance()
		p.advance() // ':'
		ident := ast.NewIdentifier(identTok)
		rangeExpr := p.parseRange()
		rng, ok := rangeExpr.(*ast.Range)
		if !ok {
			p.errorAtCurrent("expected range expression after 'loop ident :'")
		}
		p.Symbols.EnterScope()
		p.Symbols.Current().Flags |= symtab.FlagLoop
		sym := symtab.NewSymbol(ident.Name, symtab.SymVariable, symtab.TypeInt, kw.Location.Line)
		p.declareSymbol(sym)
		body := p.parseBlockNoScope()
		p.Symbols.ExitScope()
		return ast.NewForLoop(kw.Location, ast.NewLoopExpr(ident, rng), body)

	default:
		condition := p.parseExpression()
		body := p.parseLoop_bodyWithLoopFlag()
		return ast.NewLoop(kw.Location, condition, body)
	}
}

// parseLoop_bodyWithLoopFlag parses a loop's block body with the LOOP
// flag set on its scope, for the unconditional and condition forms
// (the iterator form sets it on its own enclosing scope instead, since
// that scope also owns the iteration variable).
func (p *Parser) parseLoop_bodyWithLoopFlag() *ast.Block {
	open, _ := p.consume(token.OPEN_CURLY, "expected '{' to start loop body")
	p.Symbols.EnterScope()
	p.Symbols.Current().Flags |= symtab.FlagLoop
	defer p.Symbols.ExitScope()

	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.check(token.CLOSE_CURLY) && !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize()
		}
		p.skipNewlines()
	}
	p.consume(token.CLOSE_CURLY, "expected '}' to close loop body")
	return ast.NewBlock(open.Location, stmts)
}

// parseBlockNoScope parses `{ stmt* }` without opening its own scope,
// used by the iterator loop form whose enclosing scope (already entered
// by parseLoop to hold the iteration variable) doubles as the body
// scope.
func (p *Parser) parseBlockNoScope() *ast.Block {
	open, _ := p.consume(token.OPEN_CURLY, "expected '{' to start loop body")
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.check(token.CLOSE_CURLY) && !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize()
		}
		p.skipNewlines()
	}
	p.consume(token.CLOSE_CURLY, "expected '}' to close loop body")
	return ast.NewBlock(open.Location, stmts)
}
