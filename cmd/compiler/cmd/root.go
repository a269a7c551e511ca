/*
File    : compilerfront/cmd/compiler/cmd/root.go
Root cobra command, grounded on CWBudde-go-dws/cmd/dwscript/cmd/root.go's
rootCmd + Execute() shape.
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compiler",
	Short: "Front end for a small statically-typed imperative language",
	Long: `compiler lexes, parses, and scope-resolves a source file into an
AST and symbol table, reporting diagnostics along the way.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
