/*
File    : compilerfront/lexer/lexer.go
Package lexer implements the hand-written scanner of spec.md §4.1. It
is grounded on go-mix/lexer/lexer.go's scanning loop (current-byte
switch, Peek/Advance primitives, IgnoreWhitespacesAndComments) and
go-mix/lexer/lexer_utils.go's literal readers, generalized per the
spec: NEWLINE becomes a real emitted token, numeric literals gain
binary/octal prefixes alongside the teacher's existing hex fast path,
and string/char escapes are kept verbatim in the lexeme rather than
decoded (spec.md §4.1, §9).
*/
package lexer

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/compilerfront/token"
)

// Lexer scans a source buffer into a token stream. It owns the buffer
// once loaded and exposes no operation beyond "run to completion,
// appending into the token buffer" (spec.md §4.1) via Tokenize; NextToken
// is exposed too for callers (tests, tooling) that want one token at a
// time.
type Lexer struct {
	Filename string
	Src      string
	Current  byte
	Position int
	Length   int
	Line     int
	Column   int
}

// New creates a Lexer over src, attributing tokens to filename in
// diagnostics and locations.
func New(filename, src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Filename: filename,
		Src:      src,
		Current:  current,
		Position: 0,
		Length:   len(src),
		Line:     1,
		Column:   1,
	}
}

// NewFromFile reads filename, strips a leading UTF-8 BOM if present
// (spec.md §6.3), and returns a ready-to-scan Lexer.
func NewFromFile(filename string) (*Lexer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("lexer: could not read %s: %w", filename, err)
	}
	data = stripBOM(data)
	return New(filename, string(data)), nil
}

func stripBOM(data []byte) []byte {
	const bom = "\xef\xbb\xbf"
	if strings.HasPrefix(string(data), bom) {
		return data[len(bom):]
	}
	return data
}

func (lex *Lexer) loc() token.SourceLocation {
	return token.SourceLocation{Filename: lex.Filename, Line: lex.Line, Column: lex.Column}
}

func (lex *Lexer) tok(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme, lex.loc())
}

// Peek looks ahead to the next byte without consuming it, returning 0
// at end of source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.Length {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// PeekAt looks ahead n bytes past the current position.
func (lex *Lexer) PeekAt(n int) byte {
	if lex.Position+n >= lex.Length {
		return 0
	}
	return lex.Src[lex.Position+n]
}

// Advance moves to the next byte, tracking line/column. Column
// increments on every byte; callers that consume a newline byte
// directly (rather than through NextToken's loop) must use
// advanceNewline instead so Line/Column stay in sync.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.Length {
		lex.Current = 0
		lex.Position = lex.Length
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

func (lex *Lexer) advanceNewline() {
	lex.Position++
	if lex.Position >= lex.Length {
		lex.Current = 0
		lex.Position = lex.Length
	} else {
		lex.Current = lex.Src[lex.Position]
	}
	lex.Line++
	lex.Column = 1
}

// NextToken returns the next token, skipping comments and non-newline
// whitespace first. NEWLINE is a real token: every '\n' byte outside a
// comment produces exactly one NEWLINE (spec.md §8).
func (lex *Lexer) NextToken() (token.Token, error) {
	for {
		switch {
		case lex.Current == '\n':
			t := lex.tok(token.NEWLINE, "\n")
			lex.advanceNewline()
			return t, nil
		case isSpace(lex.Current):
			lex.Advance()
			continue
		case lex.Current == '/' && lex.Peek() == '/':
			lex.skipLineComment()
			continue
		case lex.Current == '/' && lex.Peek() == '*':
			if err := lex.skipBlockComment(); err != nil {
				return token.Token{}, err
			}
			continue
		}
		break
	}

	start := lex.loc()

	switch lex.Current {
	case 0:
		return token.New(token.EOF, "", start), nil
	case '"':
		return lex.readString()
	case '\'':
		return lex.readChar()
	}

	if isDigit(lex.Current) {
		return lex.readNumber(), nil
	}
	if isAlpha(lex.Current) || lex.Current == '_' {
		return lex.readIdentifier(), nil
	}

	if t, ok := lex.readOperator(); ok {
		return t, nil
	}
	// The unrecognized byte has been skipped; scan again from the next one.
	return lex.NextToken()
}

// Tokenize scans the whole source to completion, appending each token
// (including the trailing EOF) into the returned buffer. This is the
// lexer's sole externally meaningful operation per spec.md §4.1.
func (lex *Lexer) Tokenize() ([]token.Token, error) {
	tokens := make([]token.Token, 0, lex.Length/4+1)
	for {
		t, err := lex.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, t)
		if t.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (lex *Lexer) skipLineComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

func (lex *Lexer) skipBlockComment() error {
	start := lex.loc()
	lex.Advance()
	lex.Advance()
	for lex.Current != 0 {
		if lex.Current == '*' && lex.Peek() == '/' {
			lex.Advance()
			lex.Advance()
			return nil
		}
		if lex.Current == '\n' {
			lex.advanceNewline()
			continue
		}
		lex.Advance()
	}
	return fmt.Errorf("[%s] LEXER ERROR: unclosed block comment starting here", start)
}
