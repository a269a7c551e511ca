/*
File    : compilerfront/parser/types.go
Aggregate type declarations (spec.md §4.3): struct and union share the
shape `kw Name { field (, field)* }` with field = `ident : Type`; enum
is `enum Name { ident (, ident)* }` with trailing-comma tolerance.
Grounded in shape on go-mix/parser's struct/enum parse functions
(parser_structs.go, enum_parser.go), rebuilt against this grammar's
single field/variant shape rather than the teacher's method-bearing
struct definitions.
*/
package parser

import (
	"github.com/akashmaji946/compilerfront/ast"
	"github.com/akashmaji946/compilerfront/symtab"
	"github.com/akashmaji946/compilerfront/token"
)

func (p *Parser) parseStruct() ast.Stmt {
	p.advance() // 'struct'
	nameTok, ok := p.consume(token.IDENTIFIER, "expected struct name")
	if !ok {
		return nil
	}
	name := ast.NewIdentifier(nameTok)
	sym := symtab.NewSymbol(name.Name, symtab.SymStruct, symtab.TypeStruct, nameTok.Location.Line)
	p.declareSymbol(sym)

	fields := p.parseFieldList()
	return ast.NewStruct(name, fields)
}

func (p *Parser) parseUnion() ast.Stmt {
	p.advance() // 'union'
	nameTok, ok := p.consume(token.IDENTIFIER, "expected union name")
	if !ok {
		return nil
	}
	name := ast.NewIdentifier(nameTok)
	sym := symtab.NewSymbol(name.Name, symtab.SymStruct, symtab.TypeStruct, nameTok.Location.Line)
	p.declareSymbol(sym)

	fields := p.parseFieldList()
	return ast.NewUnion(name, fields)
}

// parseFieldList implements `{ field (, field)* }` shared by struct and
// union, where field = `ident : Type`.
func (p *Parser) parseFieldList() []*ast.Field {
	p.consume(token.OPEN_CURLY, "expected '{' to start field list")
	p.skipNewlines()

	var fields []*ast.Field
	for !p.check(token.CLOSE_CURLY) && !p.isAtEnd() {
		identTok, ok := p.consume(token.IDENTIFIER, "expected field name")
		if !ok {
			p.synchronize()
			continue
		}
		p.consume(token.COLON, "expected ':' after field name")
		typTok, _ := p.consume(token.TYPE, "expected field type")
		fields = append(fields, ast.NewField(ast.NewIdentifier(identTok), typTok))

		if !p.match(token.COMMA) {
			p.skipNewlines()
		}
		p.skipNewlines()
	}
	p.consume(token.CLOSE_CURLY, "expected '}' to close field list")
	return fields
}

// parseEnum implements `enum Name { ident (, ident)* }` with
// trailing-comma tolerance.
func (p *Parser) parseEnum() ast.Stmt {
	p.advance() // 'enum'
	nameTok, ok := p.consume(token.IDENTIFIER, "expected enum name")
	if !ok {
		return nil
	}
	name := ast.NewIdentifier(nameTok)
	sym := symtab.NewSymbol(name.Name, symtab.SymEnum, symtab.TypeEnum, nameTok.Location.Line)
	p.declareSymbol(sym)

	p.consume(token.OPEN_CURLY, "expected '{' to start enum body")
	p.skipNewlines()

	var variants []*ast.Identifier
	for !p.check(token.CLOSE_CURLY) && !p.isAtEnd() {
		identTok, ok := p.consume(token.IDENTIFIER, "expected enum variant name")
		if !ok {
			p.synchronize()
			continue
		}
		variants = append(variants, ast.NewIdentifier(identTok))
		if !p.match(token.COMMA) {
			p.skipNewlines()
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.consume(token.CLOSE_CURLY, "expected '}' to close enum body")
	return ast.NewEnum(name, variants)
}
