package diag

import (
	"testing"

	"github.com/akashmaji946/compilerfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueBagIsReadyToUse(t *testing.T) {
	var b Bag
	assert.False(t, b.HasErrors())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Items())
}

func TestAddAppendsInOrder(t *testing.T) {
	var b Bag
	loc1 := token.SourceLocation{Filename: "a.src", Line: 1, Column: 1}
	loc2 := token.SourceLocation{Filename: "a.src", Line: 2, Column: 5}

	b.Add(Diagnostic{Severity: Error, Location: loc1, Stage: "PARSER", Message: "first"})
	b.Add(Diagnostic{Severity: Fatal, Location: loc2, Stage: "LEXER", Message: "second"})

	require.Equal(t, 2, b.Len())
	assert.True(t, b.HasErrors())
	assert.Equal(t, "first", b.Items()[0].Message)
	assert.Equal(t, "second", b.Items()[1].Message)
	assert.Equal(t, Fatal, b.Items()[1].Severity)
}

func TestAddfFormatsMessage(t *testing.T) {
	var b Bag
	loc := token.SourceLocation{Filename: "a.src", Line: 3, Column: 7}

	b.Addf(Error, "PARSER", loc, "expected %s, got %s", "IDENTIFIER", "NUMBER")

	require.Equal(t, 1, b.Len())
	assert.Equal(t, "expected IDENTIFIER, got NUMBER", b.Items()[0].Message)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "FATAL", Fatal.String())
	assert.Equal(t, "ERROR", Error.String())
}

func TestDiagnosticStringIncludesStageAndMessage(t *testing.T) {
	loc := token.SourceLocation{Filename: "a.src", Line: 4, Column: 2}
	d := Diagnostic{Severity: Error, Location: loc, Stage: "SEMANTIC", Message: "undefined identifier x"}

	out := d.String()
	assert.Contains(t, out, "SEMANTIC")
	assert.Contains(t, out, "undefined identifier x")
}
