package convert

import (
	"strconv"
	"strings"

	"github.com/phobologic/typeshed2spec/internal/stub"
	"github.com/phobologic/typeshed2spec/internal/summary"
)

const doDescriptor = "()LRoot;"

// declaration emits the instructions registering one statement as a field
// of ctx.ref. Statements carrying no encodable type information are skipped.
func (c *converter) declaration(ctx *convContext, s stub.Stmt) error {
	switch s := s.(type) {
	case *stub.FunctionDef:
		return c.function(ctx, s)
	case *stub.ClassDef:
		return c.class(ctx, s)
	case *stub.AnnAssign:
		return c.variable(ctx, s)
	case *stub.Assign, *stub.Import, *stub.ImportFrom, *stub.If, *stub.ExprStmt:
		return nil
	case *stub.UnsupportedStmt:
		return unsupported("statement", s.Kind, s.Line())
	default:
		return unsupported("statement", "unknown", s.Line())
	}
}

func isOverload(decorators []string) bool {
	for _, d := range decorators {
		if d == "overload" || strings.HasSuffix(d, ".overload") {
			return true
		}
	}
	return false
}

// paramNames lists the parameters a caller may pass by name, in declared
// order: regular positional parameters, then keyword-only ones.
// Positional-only parameters, *args and **kwargs are not included.
func paramNames(params []stub.Param) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Kind == stub.Positional || p.Kind == stub.KeywordOnly {
			names = append(names, p.Name)
		}
	}
	return names
}

func (c *converter) function(ctx *convContext, fn *stub.FunctionDef) error {
	if isOverload(fn.Decorators) {
		c.log.Debugw("dropping overload", "name", fn.Name, "line", fn.Line())
		return nil
	}
	sym, ok := ctx.scope.declare(fn.Name, &c.names)
	if !ok {
		c.log.Debugw("dropping redefinition", "name", fn.Name, "line", fn.Line())
		return nil
	}

	summary.New(ctx.body, sym, "L"+ctx.funcs.name+"/"+fn.Name)
	summary.PutField(ctx.body, ctx.ref, fn.Name, sym)

	names := paramNames(fn.Params)
	class := ctx.funcs.elem.Add(summary.TagClass, "name", fn.Name, "allocatable", "true")
	do := class.Add(summary.TagMethod,
		"name", "do",
		"descriptor", doDescriptor,
		"num_args", strconv.Itoa(len(names)),
		"param_names", strings.Join(names, " "),
		"static", "true",
	)

	returns := fn.Returns
	if returns == nil {
		returns = stub.None(fn.Line())
	}
	result, err := c.expr(do, returns, "", 0)
	if err != nil {
		return err
	}
	summary.Return(do, result)
	return nil
}

// class emits the class as a field and builds its body in the class
// package. Members become fields of one instance; bases are ignored.
func (c *converter) class(ctx *convContext, cls *stub.ClassDef) error {
	sym, ok := ctx.scope.declare(cls.Name, &c.names)
	if !ok {
		c.log.Debugw("dropping redefinition", "name", cls.Name, "line", cls.Line())
		return nil
	}

	classType := "L" + ctx.classes.name + "/" + cls.Name
	summary.New(ctx.body, sym, classType)
	summary.PutField(ctx.body, ctx.ref, cls.Name, sym)

	methodsName := c.pkg + "/" + cls.Name
	methods := pkgRef{
		elem: c.loader.Add(summary.TagPackage, "name", methodsName),
		name: methodsName,
	}

	entry := ctx.classes.elem.Add(summary.TagClass, "name", cls.Name, "allocatable", "true")
	do := entry.Add(summary.TagMethod, "name", "do", "descriptor", doDescriptor, "static", "true")
	self := declaredName(cls.Name)
	summary.New(do, self, classType)

	inner := &convContext{
		body:    do,
		ref:     self,
		funcs:   methods,
		classes: ctx.classes,
		scope:   newScope(self),
	}
	for _, member := range cls.Body {
		if err := c.declaration(inner, member); err != nil {
			return err
		}
	}

	summary.Return(do, self)
	return nil
}

// variable emits an annotated name as a field holding an object of the
// annotation's descriptor.
func (c *converter) variable(ctx *convContext, v *stub.AnnAssign) error {
	target, ok := v.Target.(*stub.Name)
	if !ok {
		return unsupportedExpr("annotation target", v.Target)
	}
	desc, err := typeDescriptor(v.Annotation)
	if err != nil {
		return err
	}

	sym, ok := ctx.scope.declare(target.ID, &c.names)
	if !ok {
		c.log.Debugw("dropping redefinition", "name", target.ID, "line", v.Line())
		return nil
	}
	summary.New(ctx.body, sym, desc)
	summary.PutField(ctx.body, ctx.ref, target.ID, sym)
	return nil
}
