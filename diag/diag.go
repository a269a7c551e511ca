/*
File    : compilerfront/diag/diag.go
Package diag collects and formats the diagnostics produced while
lexing and parsing, following the teacher's "accumulate, never panic"
error discipline (go-mix/parser/parser.go's Errors []string + addError)
but keeping severity and source location structured instead of bare
strings, so the CLI driver can color and filter them.
*/
package diag

import (
	"fmt"

	"github.com/akashmaji946/compilerfront/token"
)

// Severity classifies a diagnostic per spec.md §7.
type Severity int

const (
	// Fatal aborts the compilation (lexical fatal errors, resource
	// exhaustion). Reserved for the lexer's run-to-completion failure.
	Fatal Severity = iota
	// Error is a recorded, non-aborting problem (parse errors,
	// redeclaration, undefined identifier).
	Error
)

func (s Severity) String() string {
	if s == Fatal {
		return "FATAL"
	}
	return "ERROR"
}

// Diagnostic is one reported problem with its source location.
type Diagnostic struct {
	Severity Severity
	Location token.SourceLocation
	Stage    string // "LEXER", "PARSER", "SEMANTIC"
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Location, d.Stage, d.Message)
}

// Bag is an ordered collection of diagnostics. The zero value is ready
// to use.
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Addf records a diagnostic built from a stage, location and
// printf-style message, mirroring the teacher's
// fmt.Sprintf("[%d:%d] PARSER ERROR: ...") message shape.
func (b *Bag) Addf(severity Severity, stage string, loc token.SourceLocation, format string, args ...any) {
	b.Add(Diagnostic{
		Severity: severity,
		Location: loc,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (b *Bag) HasErrors() bool {
	return len(b.items) > 0
}

func (b *Bag) Items() []Diagnostic {
	return b.items
}

func (b *Bag) Len() int {
	return len(b.items)
}
