package convert

import (
	"github.com/cockroachdb/errors"

	"github.com/phobologic/typeshed2spec/internal/stub"
)

// ErrUnsupported marks a syntax node outside the stub subset the converter
// understands. Conversion of the whole file stops at the first one.
var ErrUnsupported = errors.New("unsupported stub construct")

const supportedHint = "stubs may only contain function and class headers, annotated names, " +
	"assignments, imports and conditionals; annotations may only use names, constants, " +
	"subscripts, tuples, lists and binary operators"

func unsupported(where, kind string, line int) error {
	err := errors.Wrapf(ErrUnsupported, "%s %q at line %d", where, kind, line)
	return errors.WithHint(err, supportedHint)
}

func unsupportedExpr(where string, e stub.Expr) error {
	return unsupported(where, exprKind(e), e.Line())
}

func exprKind(e stub.Expr) string {
	switch e := e.(type) {
	case *stub.Name:
		return "name"
	case *stub.Subscript:
		return "subscript"
	case *stub.BinOp:
		return "binary operator"
	case *stub.Constant:
		return "constant"
	case *stub.Tuple:
		return "tuple"
	case *stub.List:
		return "list"
	case *stub.UnsupportedExpr:
		return e.Kind
	default:
		return "unknown"
	}
}
