/*
File    : compilerfront/parser/parser.go
Package parser implements the recursive-descent parser of spec.md §4.3:
token-buffer cursor plus primitives, driving symtab.SymbolTable as a
side effect. Grounded on go-mix/parser/parser.go's state shape
(CurrToken/NextToken lookahead, Errors []string accumulation via
addError) but replaces its Pratt dispatch tables with one method per
fixed precedence level, since this grammar's ladder (with a dedicated
range level and assignment-lookahead) does not fit a generic
precedence-climbing table the way the teacher's C-style expression
grammar does.
*/
package parser

import (
	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/diag"
	"github.com/akashmaji946/compilerfront/symtab"
	"github.com/akashmaji946/compilerfront/token"
)

// Parser walks a fixed token buffer with a cursor, building the AST and
// driving symbol-table updates (spec.md §4.3's "(tokens, cursor, count,
// last_error)" state).
type Parser struct {
	tokens []token.Token
	cursor int
	count  int

	Diagnostics *diag.Bag
	Symbols     *symtab.SymbolTable

	lastError bool
}

// New creates a Parser over a complete token buffer (as produced by
// lexer.Lexer.Tokenize), with a fresh symbol table.
func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens:      tokens,
		count:       len(tokens),
		Diagnostics: &diag.Bag{},
		Symbols:     symtab.New(),
	}
}

// ---- Core primitives (spec.md §4.3) ----

// peek returns the current token without advancing.
func (p *Parser) peek() token.Token {
	if p.cursor >= p.count {
		return p.tokens[p.count-1] // EOF sentinel, always the last token
	}
	return p.tokens[p.cursor]
}

// peekAt looks n tokens ahead of the cursor, clamped to EOF.
func (p *Parser) peekAt(n int) token.Token {
	idx := p.cursor + n
	if idx >= p.count {
		return p.tokens[p.count-1]
	}
	return p.tokens[idx]
}

// previous returns the token just consumed by advance.
func (p *Parser) previous() token.Token {
	if p.cursor == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.cursor-1]
}

// advance returns the current token and moves the cursor forward,
// unless already at EOF.
func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.isAtEnd() {
		p.cursor++
	}
	return t
}

// isAtEnd holds when the cursor has reached the end of the buffer or
// the current token is EOF.
func (p *Parser) isAtEnd() bool {
	return p.cursor >= p.count || p.peek().Type == token.EOF
}

// check reports whether the current token has kind without consuming
// it.
func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Type == kind
}

// match consumes the current token and returns true if it has kind,
// otherwise leaves the cursor untouched and returns false.
func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// consume advances past the current token if it has kind; otherwise it
// records message as a parse error and returns the zero Token, per
// spec.md §4.3's "errors and returns nothing on mismatch".
func (p *Parser) consume(kind token.Kind, message string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAtCurrent(message)
	return token.Token{}, false
}

func (p *Parser) errorAtCurrent(message string) {
	p.lastError = true
	p.Diagnostics.Addf(diag.Error, "PARSER", p.peek().Location, "%s (got %s %q)", message, p.peek().Type, p.peek().Lexeme)
}

// skipNewlines discards NEWLINE tokens at the cursor, used between
// statements inside a block (spec.md §4.3: "Newlines between statements
// are consumed and discarded").
func (p *Parser) skipNewlines() {
	for p.check(token.NEWLINE) {
		p.advance()
	}
}

// synchronize advances past tokens until it finds a plausible statement
// boundary, used to recover from a parse error so the top-level loop
// does not spin forever on the same bad token (spec.md §7: "parse_program
// advances one token on null to avoid infinite loops").
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.NEWLINE || p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.VAR, token.LET, token.FN, token.IF, token.MATCH, token.LOOP,
			token.RETURN, token.STRUCT, token.UNION, token.ENUM, token.CLOSE_CURLY:
			return
		}
		p.advance()
	}
}

// Parse runs the parser to completion, producing the program root.
// Parsing never panics; local failures are recorded as diagnostics and
// the offending statement is skipped via synchronize.
func (p *Parser) Parse() *ast.Program {
	program := ast.NewProgram()
	p.skipNewlines()
	for !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			program.AddStmt(stmt)
		} else {
			p.synchronize()
		}
		p.skipNewlines()
	}
	return program
}

// HasErrors reports whether any diagnostic was recorded during parsing.
func (p *Parser) HasErrors() bool {
	return p.Diagnostics.HasErrors()
}
