/*
File    : compilerfront/semantics/semantics.go
Package semantics is the entry boundary to the later compiler stages
(type checking, code generation) named in spec.md §6.4: "the
semantic-analysis collaborator receives the AST root and the symbol
table by reference." It is grounded on
original_source/include/analysis.h's start_analysis(ASTNode* prog) -
the production repo's dispatch table (check_types, array_analyse,
function_analyse, if_analyse, match_analyse, loop_analyse, expr_analyse,
decl_analyse) is reproduced here as an unimplemented per-node-kind
switch, since type-checking and code generation are explicitly out of
scope (spec.md §1: "the repo contains only stubs").
*/
package semantics

import (
	"fmt"

	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/symtab"
)

// Analyze checks that root and table are non-nil and that the symbol
// table has returned to the global scope (depth 0), then walks root
// through the per-node-kind dispatch. It does not verify scope
// reachability, symbol back-links, declaration locations or reference
// order, and it performs no type checking.
func Analyze(root ast.Node, table *symtab.SymbolTable) error {
	if root == nil {
		return fmt.Errorf("semantics: nil AST root")
	}
	if table == nil {
		return fmt.Errorf("semantics: nil symbol table")
	}
	if table.Depth() != 0 {
		return fmt.Errorf("semantics: symbol table did not return to global scope (depth=%d)", table.Depth())
	}
	return analyseNode(root)
}

// analyseNode mirrors analysis.h's analyse_node dispatch. Every branch
// is presently a no-op placeholder; type inference, array bounds
// checking, and control-flow validation belong to a later pass this
// front end only hands off to.
func analyseNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Statements {
			if err := analyseNode(stmt); err != nil {
				return err
			}
		}
	case *ast.FnDecl:
		return functionAnalyse(n)
	case *ast.ArrayDecl:
		return arrayAnalyse(n)
	case *ast.If:
		return ifAnalyse(n)
	case *ast.Match:
		return matchAnalyse(n)
	case *ast.Loop:
		return loopAnalyse(n)
	case *ast.ForLoop:
		return loopAnalyse(n)
	case *ast.VarDecl:
		return declAnalyse(n)
	case *ast.Block:
		for _, stmt := range n.Statements {
			if err := analyseNode(stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkTypes is the reserved entry point for a future type-checking
// pass; unimplemented.
func checkTypes(ast.Node) error { return nil }

func arrayAnalyse(*ast.ArrayDecl) error { return nil }

func functionAnalyse(*ast.FnDecl) error { return nil }

func ifAnalyse(*ast.If) error { return nil }

func matchAnalyse(*ast.Match) error { return nil }

func loopAnalyse(ast.Node) error { return nil }

func declAnalyse(*ast.VarDecl) error { return nil }

func exprAnalyse(ast.Expr) error { return nil }
