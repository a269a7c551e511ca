/*
File    : compilerfront/cmd/compiler/cmd/compile.go
The default `compiler <filename>` surface (spec.md §6.2): filename is
joined with the literal prefix "test/" (original_source/main.c's
strcpy(path, "test/"); strcat(path, filename) convention), lexed,
parsed, and (unless --dump-ast is given) reported as a pass/fail
summary plus the symbol table. Color choices are grounded on
go-mix/main/main.go's redColor/yellowColor/cyanColor palette;
--dump-ast is grounded on CWBudde-go-dws/cmd/dwscript/cmd/parse.go's
flag of the same name and its recursive dumpASTNode printer.
*/
package cmd

import (
	"fmt"

	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/lexer"
	"github.com/akashmaji946/compilerfront/parser"
	"github.com/akashmaji946/compilerfront/semantics"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	dumpAST bool

	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
)

func init() {
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = runCompile
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST instead of a pass/fail summary")
}

func runCompile(cmd *cobra.Command, args []string) error {
	path := "test/" + args[0]

	lex, err := lexer.NewFromFile(path)
	if err != nil {
		errColor.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		return err
	}

	tokens, err := lex.Tokenize()
	if err != nil {
		errColor.Fprintf(cmd.ErrOrStderr(), "lexical error: %v\n", err)
		return err
	}

	p := parser.New(tokens)
	program := p.Parse()

	if p.HasErrors() {
		errColor.Fprintln(cmd.ErrOrStderr(), "parsing failed:")
		for _, d := range p.Diagnostics.Items() {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", d)
		}
		return fmt.Errorf("parsing failed with %d diagnostic(s)", p.Diagnostics.Len())
	}

	if err := semantics.Analyze(program, p.Symbols); err != nil {
		errColor.Fprintf(cmd.ErrOrStderr(), "semantic analysis failed: %v\n", err)
		return err
	}

	if dumpAST {
		infoColor.Fprintln(cmd.OutOrStdout(), "Abstract Syntax Tree:")
		dumpNode(cmd, program, 0)
		return nil
	}

	okColor.Fprintln(cmd.OutOrStdout(), "Parsing successful")
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), p.Symbols.String())
	return nil
}

func dumpNode(cmd *cobra.Command, node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	out := cmd.OutOrStdout()

	switch n := node.(type) {
	case *ast.Program:
		fmt.Fprintf(out, "%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(cmd, s, indent+1)
		}
	case *ast.VarDecl:
		fmt.Fprintf(out, "%sVarDecl %s (const=%v)\n", pad, n.Ident.Name, n.Const)
		if n.Value != nil {
			dumpNode(cmd, n.Value, indent+1)
		}
	case *ast.ArrayDecl:
		fmt.Fprintf(out, "%sArrayDecl %s\n", pad, n.Ident.Name)
	case *ast.FnDecl:
		fmt.Fprintf(out, "%sFnDecl %s (%d params)\n", pad, n.Ident.Name, len(n.Params))
		dumpNode(cmd, n.Body, indent+1)
	case *ast.Return:
		fmt.Fprintf(out, "%sReturn\n", pad)
		if n.Value != nil {
			dumpNode(cmd, n.Value, indent+1)
		}
	case *ast.Block:
		fmt.Fprintf(out, "%sBlock (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(cmd, s, indent+1)
		}
	case *ast.If:
		fmt.Fprintf(out, "%sIf\n", pad)
		dumpNode(cmd, n.Condition, indent+1)
		dumpNode(cmd, n.Then, indent+1)
		if n.Else != nil {
			dumpNode(cmd, n.Else, indent+1)
		}
	case *ast.Match:
		fmt.Fprintf(out, "%sMatch (%d cases)\n", pad, len(n.Cases))
		dumpNode(cmd, n.Scrutinee, indent+1)
	case *ast.ForLoop:
		fmt.Fprintf(out, "%sForLoop\n", pad)
		dumpNode(cmd, n.Body, indent+1)
	case *ast.Loop:
		fmt.Fprintf(out, "%sLoop\n", pad)
		dumpNode(cmd, n.Body, indent+1)
	case *ast.Struct:
		fmt.Fprintf(out, "%sStruct %s (%d fields)\n", pad, n.Name.Name, len(n.Fields))
	case *ast.Union:
		fmt.Fprintf(out, "%sUnion %s (%d fields)\n", pad, n.Name.Name, len(n.Fields))
	case *ast.Enum:
		fmt.Fprintf(out, "%sEnum %s (%d variants)\n", pad, n.Name.Name, len(n.Variants))
	case *ast.ExprStmt:
		fmt.Fprintf(out, "%sExprStmt\n", pad)
		dumpNode(cmd, n.X, indent+1)
	case *ast.Binary:
		fmt.Fprintf(out, "%sBinary (%s)\n", pad, n.Operator.Lexeme)
		dumpNode(cmd, n.Left, indent+1)
		dumpNode(cmd, n.Right, indent+1)
	case *ast.Unary:
		fmt.Fprintf(out, "%sUnary (%s)\n", pad, n.Operator.Lexeme)
		dumpNode(cmd, n.Operand, indent+1)
	case *ast.Assign:
		fmt.Fprintf(out, "%sAssign %s %s\n", pad, n.Target.Lexeme, n.Operator.Lexeme)
		dumpNode(cmd, n.Value, indent+1)
	case *ast.Index:
		fmt.Fprintf(out, "%sIndex\n", pad)
		dumpNode(cmd, n.Base, indent+1)
		dumpNode(cmd, n.Index, indent+1)
	case *ast.FnCall:
		fmt.Fprintf(out, "%sFnCall (%d args)\n", pad, len(n.Args))
		dumpNode(cmd, n.Callee, indent+1)
	case *ast.Identifier:
		fmt.Fprintf(out, "%sIdentifier: %s\n", pad, n.Name)
	case *ast.Literal:
		fmt.Fprintf(out, "%sLiteral(%s): %s\n", pad, n.Kind, n.Value)
	default:
		fmt.Fprintf(out, "%s%T\n", pad, node)
	}
}
