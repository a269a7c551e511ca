/*
File    : compilerfront/cmd/compiler/main.go
Entry point for the `compiler` CLI (spec.md §6.2): `compiler <filename>`,
the file path joined with the literal prefix "test/" before opening,
exit code 0 on a successful parse and non-zero on a fatal lexer error or
missing argument - the same convention original_source/main.c's
strcpy(path, "test/"); strcat(path, filename) establishes. Grounded on
CWBudde-go-dws's cmd/dwscript layout (a cobra root command delegating to
Execute, a dedicated subcommand file per concern).
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/compilerfront/cmd/compiler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
