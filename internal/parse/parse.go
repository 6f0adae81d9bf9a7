// Package parse turns Python stub source into a stub.Module using tree-sitter.
package parse

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/typeshed2spec/internal/lang"
	"github.com/phobologic/typeshed2spec/internal/stub"
)

// ErrSyntax is returned when the source is not syntactically valid Python.
var ErrSyntax = errors.New("syntax error")

// Stub parses source and lowers it into the stub syntax tree.
// The parser must be created for lang.Python and is not safe for concurrent use.
func Stub(ctx context.Context, parser *sitter.Parser, source []byte) (*stub.Module, error) {
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrap(err, "parsing")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.Wrapf(ErrSyntax, "line %d", firstErrorLine(root))
	}

	l := &lowerer{source: source}
	return &stub.Module{Body: l.block(root)}, nil
}

// firstErrorLine returns the line of the first ERROR or MISSING node.
func firstErrorLine(node *sitter.Node) int {
	if node.IsError() || node.IsMissing() {
		return lang.Line(node)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstErrorLine(child)
		}
	}
	return lang.Line(node)
}

type lowerer struct {
	source []byte
}

func (l *lowerer) text(node *sitter.Node) string {
	return lang.NodeText(node, l.source)
}

func pos(node *sitter.Node) stub.Pos {
	return stub.Pos{Row: lang.Line(node)}
}

// block lowers the statements of a module or class body.
func (l *lowerer) block(node *sitter.Node) []stub.Stmt {
	var body []stub.Stmt
	for _, child := range lang.NamedChildren(node) {
		body = append(body, l.stmt(child, nil))
	}
	return body
}

func (l *lowerer) stmt(node *sitter.Node, decorators []string) stub.Stmt {
	p := pos(node)
	switch node.Type() {
	case "function_definition":
		return l.function(node, decorators)
	case "class_definition":
		return l.class(node)
	case "decorated_definition":
		var decs []string
		for _, child := range lang.NamedChildren(node) {
			if child.Type() == "decorator" {
				decs = append(decs, l.decorator(child))
			}
		}
		def := node.ChildByFieldName("definition")
		if def == nil {
			return &stub.UnsupportedStmt{Pos: p, Kind: node.Type()}
		}
		return l.stmt(def, decs)
	case "expression_statement":
		return l.expressionStatement(node)
	case "import_statement":
		return &stub.Import{Pos: p}
	case "import_from_statement", "future_import_statement":
		return &stub.ImportFrom{Pos: p}
	case "if_statement":
		return &stub.If{Pos: p}
	default:
		return &stub.UnsupportedStmt{Pos: p, Kind: node.Type()}
	}
}

func (l *lowerer) expressionStatement(node *sitter.Node) stub.Stmt {
	p := pos(node)
	children := lang.NamedChildren(node)
	if len(children) != 1 {
		return &stub.ExprStmt{Pos: p}
	}
	inner := children[0]
	switch inner.Type() {
	case "assignment":
		annotation := inner.ChildByFieldName("type")
		if annotation == nil {
			return &stub.Assign{Pos: p}
		}
		target := inner.ChildByFieldName("left")
		if target == nil {
			return &stub.UnsupportedStmt{Pos: p, Kind: inner.Type()}
		}
		return &stub.AnnAssign{
			Pos:        p,
			Target:     l.expr(target),
			Annotation: l.expr(annotation),
		}
	case "augmented_assignment":
		return &stub.UnsupportedStmt{Pos: p, Kind: inner.Type()}
	default:
		return &stub.ExprStmt{Pos: p}
	}
}

// decorator returns the dotted name of a decorator; for a call such as
// @deprecated("...") it is the name of the callee.
func (l *lowerer) decorator(node *sitter.Node) string {
	children := lang.NamedChildren(node)
	if len(children) == 0 {
		return ""
	}
	expr := children[0]
	if expr.Type() == "call" {
		if fn := expr.ChildByFieldName("function"); fn != nil {
			expr = fn
		}
	}
	return strings.Join(strings.Fields(l.text(expr)), "")
}

func (l *lowerer) function(node *sitter.Node, decorators []string) stub.Stmt {
	fn := &stub.FunctionDef{
		Pos:        pos(node),
		Decorators: decorators,
	}
	if name := node.ChildByFieldName("name"); name != nil {
		fn.Name = l.text(name)
	}
	if params := node.ChildByFieldName("parameters"); params != nil {
		fn.Params = l.parameters(params)
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		fn.Returns = l.expr(ret)
	}
	return fn
}

// class lowers a class header and body. Class decorators and bases carry no
// type information and are dropped.
func (l *lowerer) class(node *sitter.Node) stub.Stmt {
	cls := &stub.ClassDef{Pos: pos(node)}
	if name := node.ChildByFieldName("name"); name != nil {
		cls.Name = l.text(name)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		cls.Body = l.block(body)
	}
	return cls
}

// parameters lowers a parameter list. Parameters before a `/` are
// positional-only; parameters after a bare `*` or a `*args` are keyword-only.
// Separators are matched both as named nodes and as bare tokens, depending
// on the grammar version.
func (l *lowerer) parameters(node *sitter.Node) []stub.Param {
	var params []stub.Param
	kind := stub.Positional
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			params = append(params, stub.Param{Name: l.text(child), Kind: kind})
		case "typed_parameter":
			inner := lang.NamedChildren(child)
			if len(inner) == 0 {
				continue
			}
			switch inner[0].Type() {
			case "list_splat_pattern":
				params = append(params, stub.Param{Name: l.splatName(inner[0]), Kind: stub.VarPositional})
				kind = stub.KeywordOnly
			case "dictionary_splat_pattern":
				params = append(params, stub.Param{Name: l.splatName(inner[0]), Kind: stub.VarKeyword})
			default:
				params = append(params, stub.Param{Name: l.text(inner[0]), Kind: kind})
			}
		case "default_parameter", "typed_default_parameter":
			if name := child.ChildByFieldName("name"); name != nil {
				params = append(params, stub.Param{Name: l.text(name), Kind: kind})
			}
		case "list_splat_pattern":
			params = append(params, stub.Param{Name: l.splatName(child), Kind: stub.VarPositional})
			kind = stub.KeywordOnly
		case "dictionary_splat_pattern":
			params = append(params, stub.Param{Name: l.splatName(child), Kind: stub.VarKeyword})
		case "keyword_separator", "*":
			kind = stub.KeywordOnly
		case "positional_separator", "/":
			for j := range params {
				if params[j].Kind == stub.Positional {
					params[j].Kind = stub.PositionalOnly
				}
			}
		}
	}
	return params
}

func (l *lowerer) splatName(node *sitter.Node) string {
	return strings.TrimLeft(l.text(node), "*")
}

// expr lowers an annotation expression. Both the plain expression forms and
// the dedicated type forms of newer grammar versions (generic_type,
// union_type) are accepted.
func (l *lowerer) expr(node *sitter.Node) stub.Expr {
	p := pos(node)
	switch node.Type() {
	case "type", "parenthesized_expression":
		children := lang.NamedChildren(node)
		if len(children) != 1 {
			return &stub.UnsupportedExpr{Pos: p, Kind: node.Type()}
		}
		return l.expr(children[0])
	case "identifier":
		return &stub.Name{Pos: p, ID: l.text(node)}
	case "subscript":
		children := lang.NamedChildren(node)
		if len(children) < 2 {
			return &stub.UnsupportedExpr{Pos: p, Kind: node.Type()}
		}
		return &stub.Subscript{Pos: p, Value: l.expr(children[0]), Slice: l.slice(node, children[1:])}
	case "generic_type":
		children := lang.NamedChildren(node)
		if len(children) != 2 || children[1].Type() != "type_parameter" {
			return &stub.UnsupportedExpr{Pos: p, Kind: node.Type()}
		}
		return &stub.Subscript{Pos: p, Value: l.expr(children[0]), Slice: l.slice(node, lang.NamedChildren(children[1]))}
	case "binary_operator":
		left, right := node.ChildByFieldName("left"), node.ChildByFieldName("right")
		if left == nil || right == nil {
			return &stub.UnsupportedExpr{Pos: p, Kind: node.Type()}
		}
		return &stub.BinOp{Pos: p, Left: l.expr(left), Right: l.expr(right)}
	case "union_type":
		children := lang.NamedChildren(node)
		if len(children) != 2 {
			return &stub.UnsupportedExpr{Pos: p, Kind: node.Type()}
		}
		return &stub.BinOp{Pos: p, Left: l.expr(children[0]), Right: l.expr(children[1])}
	case "tuple":
		return &stub.Tuple{Pos: p, Elts: l.exprs(lang.NamedChildren(node))}
	case "list":
		return &stub.List{Pos: p, Elts: l.exprs(lang.NamedChildren(node))}
	case "none":
		return stub.None(p.Row)
	case "true":
		return &stub.Constant{Pos: p, Value: "True"}
	case "false":
		return &stub.Constant{Pos: p, Value: "False"}
	case "integer", "float":
		return &stub.Constant{Pos: p, Value: numberValue(l.text(node))}
	case "ellipsis":
		return &stub.Constant{Pos: p, Value: "Ellipsis"}
	case "string":
		return &stub.Constant{Pos: p, Value: lang.StringValue(l.text(node))}
	case "concatenated_string":
		var b strings.Builder
		for _, part := range lang.NamedChildren(node) {
			b.WriteString(lang.StringValue(l.text(part)))
		}
		return &stub.Constant{Pos: p, Value: b.String()}
	case "member_type":
		return &stub.UnsupportedExpr{Pos: p, Kind: "attribute"}
	default:
		return &stub.UnsupportedExpr{Pos: p, Kind: node.Type()}
	}
}

// slice lowers subscript arguments. Several comma-separated arguments become
// one tuple, matching how Python itself represents `X[a, b]`.
func (l *lowerer) slice(node *sitter.Node, args []*sitter.Node) stub.Expr {
	if len(args) == 1 {
		return l.expr(args[0])
	}
	return &stub.Tuple{Pos: pos(node), Elts: l.exprs(args)}
}

func (l *lowerer) exprs(nodes []*sitter.Node) []stub.Expr {
	out := make([]stub.Expr, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, l.expr(n))
	}
	return out
}
