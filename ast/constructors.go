/*
File    : compilerfront/ast/constructors.go
Constructors for each AST node, one per original_source/include/ast.h
ast_new_* or ast_* function, kept as small value-returning helpers in the
same spirit as go-mix/lexer/token.go's NewToken/NewTokenWithMetadata
pair: plain struct literals, no hidden side effects.
*/
package ast

import "github.com/akashmaji946/compilerfront/token"

func NewLiteral(t token.Token) *Literal {
	return &Literal{base: base{t.Location}, Value: t.Lexeme, Kind: t.Type}
}

func NewIdentifier(t token.Token) *Identifier {
	return &Identifier{base: base{t.Location}, Name: t.Lexeme}
}

func NewUnary(op token.Token, operand Expr) *Unary {
	return &Unary{base: base{op.Location}, Operator: op, Operand: operand}
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{base: base{left.Location()}, Left: left, Operator: op, Right: right}
}

func NewAssign(name token.Token, op token.Token, value Expr) *Assign {
	return &Assign{base: base{name.Location}, Target: name, Operator: op, Value: value}
}

func NewIndex(base_ Expr, index Expr) *Index {
	return &Index{base: base{base_.Location()}, Base: base_, Index: index}
}

func NewFnCall(callee Expr, args []Expr) *FnCall {
	return &FnCall{base: base{callee.Location()}, Callee: callee, Args: args}
}

// NewRange builds a Range node. incEnd is accepted to mirror the
// original ast_new_range(start, end, inc_end, step) signature but is
// intentionally discarded - see spec.md §9 on the dangling inc_end
// field in the source this was distilled from.
func NewRange(start, end Expr, incEnd Expr, step Expr) *Range {
	_ = incEnd
	return &Range{base: base{start.Location()}, Start: start, End: end, Step: step}
}

func NewVarDecl(ident *Identifier, declaredType *token.Token, value Expr, isConst bool) *VarDecl {
	return &VarDecl{base: base{ident.Location()}, Ident: ident, DeclaredType: declaredType, Value: value, Const: isConst}
}

func NewArrayDecl(ident *Identifier, elemType token.Token, size Expr, literals []Expr, hasLiterals bool) *ArrayDecl {
	return &ArrayDecl{base: base{ident.Location()}, Ident: ident, ElementType: elemType, Size: size, Literals: literals, HasLiterals: hasLiterals}
}

func NewParam(ident *Identifier, typ token.Token) *Param {
	return &Param{base: base{ident.Location()}, Ident: ident, Type: typ}
}

func NewFnDecl(ident *Identifier, params []*Param, returnType *token.Token, body *Block) *FnDecl {
	return &FnDecl{base: base{ident.Location()}, Ident: ident, Params: params, ReturnType: returnType, Body: body}
}

func NewBlock(loc token.SourceLocation, statements []Stmt) *Block {
	return &Block{base: base{loc}, Statements: statements}
}

func NewReturn(loc token.SourceLocation, value Expr) *Return {
	return &Return{base: base{loc}, Value: value}
}

func NewIf(loc token.SourceLocation, condition Expr, then *Block, elseBranch Node) *If {
	return &If{base: base{loc}, Condition: condition, Then: then, Else: elseBranch}
}

func NewMatchCase(loc token.SourceLocation, pattern Expr, body Stmt) *MatchCase {
	return &MatchCase{base: base{loc}, Pattern: pattern, Body: body}
}

func NewMatch(loc token.SourceLocation, scrutinee Expr, cases []*MatchCase, def *MatchCase) *Match {
	return &Match{base: base{loc}, Scrutinee: scrutinee, Cases: cases, Default: def}
}

func NewForLoop(loc token.SourceLocation, iterationExpr Expr, body *Block) *ForLoop {
	return &ForLoop{base: base{loc}, IterationExpr: iterationExpr, Body: body}
}

func NewLoopExpr(ident *Identifier, rng *Range) *LoopExpr {
	return &LoopExpr{base: base{ident.Location()}, Ident: ident, Range: rng}
}

func NewLoop(loc token.SourceLocation, condition Expr, body *Block) *Loop {
	return &Loop{base: base{loc}, Condition: condition, Body: body}
}

func NewField(ident *Identifier, typ token.Token) *Field {
	return &Field{base: base{ident.Location()}, Ident: ident, Type: typ}
}

func NewEnum(name *Identifier, variants []*Identifier) *Enum {
	return &Enum{base: base{name.Location()}, Name: name, Variants: variants}
}

func NewStruct(name *Identifier, fields []*Field) *Struct {
	return &Struct{base: base{name.Location()}, Name: name, Fields: fields}
}

func NewUnion(name *Identifier, fields []*Field) *Union {
	return &Union{base: base{name.Location()}, Name: name, Fields: fields}
}

func NewExprStmt(x Expr) *ExprStmt {
	return &ExprStmt{base: base{x.Location()}, X: x}
}

func NewProgram() *Program {
	return &Program{}
}

// AddStmt appends stmt to the program's statement list, mirroring the
// original's add_stmt(ASTNode* program, ASTNode* stmt).
func (p *Program) AddStmt(stmt Stmt) {
	p.Statements = append(p.Statements, stmt)
}
