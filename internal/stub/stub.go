// Package stub defines the syntax tree of a Python type-stub module.
//
// Only the restricted subset that appears in stub files is modeled. Every
// other construct the parser meets is kept as an Unsupported node so that
// consumers can report it with its position instead of guessing.
package stub

// Node is implemented by every syntax tree node.
type Node interface {
	// Line is the 1-based source line the node starts on.
	Line() int
}

// Stmt is a top-level or class-body statement.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression appearing in a type annotation.
type Expr interface {
	Node
	expr()
}

// Pos records where a node starts.
type Pos struct {
	Row int
}

func (p Pos) Line() int { return p.Row }

// Module is a parsed stub file.
type Module struct {
	Body []Stmt
}

// ParamKind distinguishes parameters the way Python's call protocol does.
type ParamKind int

const (
	Positional ParamKind = iota
	PositionalOnly
	KeywordOnly
	VarPositional
	VarKeyword
)

// Param is one formal parameter of a function definition.
type Param struct {
	Name string
	Kind ParamKind
}

// FunctionDef is a `def` or `async def` header. The body is not kept.
type FunctionDef struct {
	Pos
	Name       string
	Decorators []string // dotted decorator names, e.g. "overload", "typing.overload"
	Params     []Param
	Returns    Expr // nil when the return type is not annotated
}

// ClassDef is a class header with its body. Base classes are not kept.
type ClassDef struct {
	Pos
	Name string
	Body []Stmt
}

// AnnAssign is an annotated declaration such as `x: int` or `x: int = 0`.
type AnnAssign struct {
	Pos
	Target     Expr
	Annotation Expr
}

// Assign is a plain assignment such as `__all__ = [...]`.
type Assign struct{ Pos }

// Import is `import a.b`.
type Import struct{ Pos }

// ImportFrom is `from a import b`.
type ImportFrom struct{ Pos }

// If is a conditional block, typically a `sys.version_info` guard.
type If struct{ Pos }

// ExprStmt is a bare expression statement such as a docstring or `...`.
type ExprStmt struct{ Pos }

// UnsupportedStmt is any statement outside the stub subset.
type UnsupportedStmt struct {
	Pos
	Kind string
}

func (*FunctionDef) stmt()     {}
func (*ClassDef) stmt()        {}
func (*AnnAssign) stmt()       {}
func (*Assign) stmt()          {}
func (*Import) stmt()          {}
func (*ImportFrom) stmt()      {}
func (*If) stmt()              {}
func (*ExprStmt) stmt()        {}
func (*UnsupportedStmt) stmt() {}

// Name is an identifier reference.
type Name struct {
	Pos
	ID string
}

// Subscript is a generic application such as `Dict[str, int]`. A subscript
// with several comma-separated arguments carries them as a *Tuple slice.
type Subscript struct {
	Pos
	Value Expr
	Slice Expr
}

// BinOp joins two type references with an operator, e.g. `int | None`.
// The operator itself carries no meaning for type resolution.
type BinOp struct {
	Pos
	Left  Expr
	Right Expr
}

// Constant is a literal. Value holds the constant's text as Python would
// print it: "None", "True", "16" for 0x10, the unquoted string content,
// "Ellipsis".
type Constant struct {
	Pos
	Value string
}

// Tuple is a parenthesized or bare tuple literal.
type Tuple struct {
	Pos
	Elts []Expr
}

// List is a list literal, e.g. the argument list of `Callable[[int], str]`.
type List struct {
	Pos
	Elts []Expr
}

// UnsupportedExpr is any expression outside the annotation subset.
type UnsupportedExpr struct {
	Pos
	Kind string
}

func (*Name) expr()            {}
func (*Subscript) expr()       {}
func (*BinOp) expr()           {}
func (*Constant) expr()        {}
func (*Tuple) expr()           {}
func (*List) expr()            {}
func (*UnsupportedExpr) expr() {}

// None returns the constant `None` at the given line.
func None(line int) *Constant {
	return &Constant{Pos: Pos{Row: line}, Value: "None"}
}
