package semantics

import (
	"testing"

	"github.com/akashmaji946/compilerfront/lexer"
	"github.com/akashmaji946/compilerfront/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAcceptsAWellFormedProgram(t *testing.T) {
	toks, err := lexer.New("test.src", "fn add(a: int, b: int) -> int { return a + b }\n").Tokenize()
	require.NoError(t, err)
	p := parser.New(toks)
	program := p.Parse()
	require.False(t, p.HasErrors())

	err = Analyze(program, p.Symbols)
	assert.NoError(t, err)
}

func TestAnalyzeRejectsNilRoot(t *testing.T) {
	err := Analyze(nil, nil)
	assert.Error(t, err)
}
