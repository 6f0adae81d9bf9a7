package convert

import (
	"strconv"

	"github.com/phobologic/typeshed2spec/internal/stub"
	"github.com/phobologic/typeshed2spec/internal/summary"
)

// typeDescriptor resolves the descriptor of an annotation without
// decomposing it: a subscript resolves to its base, and a binary operator
// joins both sides with a space.
func typeDescriptor(e stub.Expr) (string, error) {
	switch e := e.(type) {
	case *stub.Name:
		return Descriptor(e.ID), nil
	case *stub.Constant:
		return Descriptor(e.Value), nil
	case *stub.Subscript:
		return typeDescriptor(e.Value)
	case *stub.BinOp:
		left, err := typeDescriptor(e.Left)
		if err != nil {
			return "", err
		}
		right, err := typeDescriptor(e.Right)
		if err != nil {
			return "", err
		}
		return left + " " + right, nil
	default:
		return "", unsupportedExpr("expression", e)
	}
}

// expr translates an annotation into instructions appended to method and
// returns the name of the object it constructs. If owner is not empty, that
// object is also stored as field index of owner.
func (c *converter) expr(method *summary.Element, e stub.Expr, owner string, index int) (string, error) {
	name := c.names.Next()

	switch e := e.(type) {
	case *stub.Tuple:
		summary.New(method, name, Descriptor("tuple"))
		if err := c.elements(method, e.Elts, name); err != nil {
			return "", err
		}
	case *stub.List:
		summary.New(method, name, Descriptor("list"))
		if err := c.elements(method, e.Elts, name); err != nil {
			return "", err
		}
	case *stub.Subscript:
		desc, err := typeDescriptor(e.Value)
		if err != nil {
			return "", err
		}
		summary.New(method, name, desc)
		switch args := e.Slice.(type) {
		case *stub.Tuple:
			err = c.elements(method, args.Elts, name)
		case *stub.List:
			err = c.elements(method, args.Elts, name)
		default:
			_, err = c.expr(method, args, name, 0)
		}
		if err != nil {
			return "", err
		}
	default:
		desc, err := typeDescriptor(e)
		if err != nil {
			return "", err
		}
		summary.New(method, name, desc)
	}

	if owner != "" {
		summary.PutField(method, owner, strconv.Itoa(index), name)
	}
	return name, nil
}

func (c *converter) elements(method *summary.Element, elts []stub.Expr, owner string) error {
	for i, elt := range elts {
		if _, err := c.expr(method, elt, owner, i); err != nil {
			return err
		}
	}
	return nil
}
