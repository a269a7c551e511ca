package ast

import (
	"testing"

	"github.com/akashmaji946/compilerfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(line, col int) token.SourceLocation {
	return token.SourceLocation{Filename: "t.src", Line: line, Column: col}
}

func tok(kind token.Kind, lexeme string, line, col int) token.Token {
	return token.New(kind, lexeme, loc(line, col))
}

func TestLiteralAndIdentifierCarryTokenLocation(t *testing.T) {
	lit := NewLiteral(tok(token.INT, "42", 1, 3))
	assert.Equal(t, "42", lit.Value)
	assert.Equal(t, token.INT, lit.Kind)
	assert.Equal(t, loc(1, 3), lit.Location())

	id := NewIdentifier(tok(token.IDENTIFIER, "x", 2, 1))
	assert.Equal(t, "x", id.Name)
	assert.Equal(t, loc(2, 1), id.Location())
}

func TestBinaryLocationComesFromLeftOperand(t *testing.T) {
	left := NewLiteral(tok(token.INT, "1", 5, 1))
	right := NewLiteral(tok(token.INT, "2", 5, 5))
	op := tok(token.PLUS, "+", 5, 3)

	bin := NewBinary(left, op, right)
	assert.Same(t, left, bin.Left)
	assert.Same(t, right, bin.Right)
	assert.Equal(t, left.Location(), bin.Location())
}

func TestRangeDiscardsIncEnd(t *testing.T) {
	start := NewLiteral(tok(token.INT, "1", 1, 1))
	end := NewLiteral(tok(token.INT, "5", 1, 5))
	incEnd := NewLiteral(tok(token.BOOL_LITERAL, "true", 1, 8))

	r := NewRange(start, end, incEnd, nil)
	assert.Same(t, start, r.Start)
	assert.Same(t, end, r.End)
	assert.Nil(t, r.Step)
}

func TestProgramAddStmtAppendsInOrder(t *testing.T) {
	p := NewProgram()
	require.Empty(t, p.Statements)

	first := NewExprStmt(NewLiteral(tok(token.INT, "1", 1, 1)))
	second := NewExprStmt(NewLiteral(tok(token.INT, "2", 2, 1)))
	p.AddStmt(first)
	p.AddStmt(second)

	require.Len(t, p.Statements, 2)
	assert.Same(t, first, p.Statements[0])
	assert.Same(t, second, p.Statements[1])
}

func TestVarDeclCarriesConstFlagAndOptionalValue(t *testing.T) {
	ident := NewIdentifier(tok(token.IDENTIFIER, "n", 1, 1))
	value := NewLiteral(tok(token.INT, "0", 1, 7))

	decl := NewVarDecl(ident, nil, value, true)
	assert.True(t, decl.Const)
	assert.Same(t, value, decl.Value)
	assert.Nil(t, decl.DeclaredType)
	assert.Equal(t, ident.Location(), decl.Location())
}

func TestFnDeclHoldsParamsAndBody(t *testing.T) {
	ident := NewIdentifier(tok(token.IDENTIFIER, "add", 1, 4))
	p1 := NewParam(NewIdentifier(tok(token.IDENTIFIER, "a", 1, 8)), tok(token.TYPE, "int", 1, 9))
	p2 := NewParam(NewIdentifier(tok(token.IDENTIFIER, "b", 1, 14)), tok(token.TYPE, "int", 1, 15))
	body := NewBlock(loc(1, 20), nil)

	fn := NewFnDecl(ident, []*Param{p1, p2}, nil, body)
	assert.Len(t, fn.Params, 2)
	assert.Same(t, body, fn.Body)
	assert.Same(t, ident, fn.Ident)
}

func TestStructAndUnionShareFieldShape(t *testing.T) {
	name := NewIdentifier(tok(token.IDENTIFIER, "Point", 1, 1))
	fx := NewField(NewIdentifier(tok(token.IDENTIFIER, "x", 1, 10)), tok(token.TYPE, "int", 1, 12))
	fy := NewField(NewIdentifier(tok(token.IDENTIFIER, "y", 1, 16)), tok(token.TYPE, "int", 1, 18))

	st := NewStruct(name, []*Field{fx, fy})
	assert.Len(t, st.Fields, 2)

	un := NewUnion(name, []*Field{fx})
	assert.Len(t, un.Fields, 1)
}

func TestEnumVariants(t *testing.T) {
	name := NewIdentifier(tok(token.IDENTIFIER, "Color", 1, 1))
	red := NewIdentifier(tok(token.IDENTIFIER, "Red", 1, 10))
	green := NewIdentifier(tok(token.IDENTIFIER, "Green", 1, 15))

	e := NewEnum(name, []*Identifier{red, green})
	assert.Len(t, e.Variants, 2)
	assert.Equal(t, "Red", e.Variants[0].Name)
}

func TestMatchCarriesCasesAndOptionalDefault(t *testing.T) {
	scrutinee := NewIdentifier(tok(token.IDENTIFIER, "x", 1, 7))
	pattern := NewLiteral(tok(token.INT, "1", 2, 3))
	body := NewExprStmt(NewLiteral(tok(token.INT, "1", 2, 8)))
	c := NewMatchCase(loc(2, 3), pattern, body)
	def := NewMatchCase(loc(3, 3), nil, body)

	m := NewMatch(loc(1, 1), scrutinee, []*MatchCase{c}, def)
	assert.Len(t, m.Cases, 1)
	assert.Same(t, def, m.Default)
}

func TestLoopExprLocationComesFromIdentifier(t *testing.T) {
	ident := NewIdentifier(tok(token.IDENTIFIER, "i", 4, 6))
	start := NewLiteral(tok(token.INT, "0", 4, 11))
	end := NewLiteral(tok(token.INT, "10", 4, 15))
	rng := NewRange(start, end, nil, nil)

	le := NewLoopExpr(ident, rng)
	assert.Equal(t, ident.Location(), le.Location())
	assert.Same(t, rng, le.Range)
}
