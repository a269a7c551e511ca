/*
File    : compilerfront/symtab/symbol.go
Package symtab implements the lexical scope stack and symbol table
driven by the parser (spec.md §3.4-3.6, §4.4). It is grounded on
go-mix/scope/scope.go's parent-link-plus-lazy-map idiom, but the
payload changes from the teacher's runtime values (objects.GoMixObject,
for its tree-walking evaluator) to compile-time declarations: this
table tracks *where* and *how* a name was declared, not what it
currently holds.
*/
package symtab

// Kind classifies what a Symbol names (symtab.h's symbol_t).
type Kind int

const (
	SymFile Kind = iota
	SymFunction
	SymConstant
	SymVariable
	SymParam
	SymArray
	SymStruct
	SymEnum
	SymLabel
)

func (k Kind) String() string {
	switch k {
	case SymFile:
		return "file"
	case SymFunction:
		return "function"
	case SymConstant:
		return "constant"
	case SymVariable:
		return "variable"
	case SymParam:
		return "param"
	case SymArray:
		return "array"
	case SymStruct:
		return "struct"
	case SymEnum:
		return "enum"
	case SymLabel:
		return "label"
	default:
		return "unknown"
	}
}

// DataType classifies the declared/inferred type of a Symbol
// (symtab.h's datatype_t). Type inference is a later pass; the parser
// always inserts TypeUnknown unless a declared-type token was present,
// per spec.md §4.3.
type DataType int

const (
	TypeVoid DataType = iota
	TypeInt
	TypeFloat
	TypeDouble
	TypeChar
	TypeBool
	TypeString
	TypeArray
	TypePointer
	TypeStruct
	TypeEnum
	TypeUnknown
)

func (t DataType) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeChar:
		return "char"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypePointer:
		return "pointer"
	case TypeStruct:
		return "struct"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// DataTypeFromKeyword maps a lexed built-in type keyword's lexeme to a
// DataType. Unrecognized lexemes (user type names - struct/enum names)
// resolve to TypeUnknown; the parser does not attempt forward
// resolution of user-defined type names during this pass.
func DataTypeFromKeyword(lexeme string) DataType {
	switch lexeme {
	case "void":
		return TypeVoid
	case "int", "byte", "short", "long":
		return TypeInt
	case "float":
		return TypeFloat
	case "double":
		return TypeDouble
	case "char":
		return TypeChar
	case "str":
		return TypeString
	case "bool":
		return TypeBool
	default:
		return TypeUnknown
	}
}

// Reference is one recorded use of a Symbol (symtab.h's reference_t):
// the source line and whether the use is a write (assignment target)
// or a read.
type Reference struct {
	Line    int
	IsWrite bool
}

// VarInfo is the kind-discriminated extra payload for SymVariable and
// SymConstant symbols (symtab.h's varSym).
type VarInfo struct {
	InitialValue string // textual initializer, if any; "" when absent
	Size         int
	IsConstant   bool
}

// ArrayInfo is the extra payload for SymArray symbols (arraySym).
type ArrayInfo struct {
	Dimensions int
	Size       int
}

// FuncInfo is the extra payload for SymFunction symbols (funcSym).
type FuncInfo struct {
	Params     []*Symbol
	ParamCount int
	IsDefined  bool
}

// ParamInfo is the extra payload for SymParam symbols (paramSym).
type ParamInfo struct {
	Position    int
	StackOffset int
}

// LabelInfo is the extra payload for SymLabel symbols (lbSym).
type LabelInfo struct {
	TargetLine int
	UsedLine   int
}

// Symbol is one named binding in a Scope (spec.md §3.4).
type Symbol struct {
	Name           string
	SymbolKind     Kind
	DataType       DataType
	DeclarationLine int
	Level          int
	Scope          *Scope
	References     []Reference

	Var   VarInfo
	Array ArrayInfo
	Func  FuncInfo
	Param ParamInfo
	Label LabelInfo
}

// NewSymbol creates a Symbol with the given name, kind, declared (or
// TypeUnknown) data type, and declaration line. Scope and Level are set
// by SymbolTable.Insert.
func NewSymbol(name string, kind Kind, dataType DataType, line int) *Symbol {
	return &Symbol{
		Name:            name,
		SymbolKind:      kind,
		DataType:        dataType,
		DeclarationLine: line,
	}
}

// AddReference appends a reference record, growing the slice the way
// Go slices always do - no manual doubling helper is needed here,
// unlike the C original's grow_array, which exists only because C
// lacks a growable-slice primitive.
func (s *Symbol) AddReference(line int, isWrite bool) {
	s.References = append(s.References, Reference{Line: line, IsWrite: isWrite})
}
