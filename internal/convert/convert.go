// Package convert translates a stub module into a summary-spec instruction
// tree. Each top-level function, class and annotated name becomes a field
// of a synthetic module object; each field points at a synthetic object
// whose shape encodes the declared types.
package convert

import (
	"go.uber.org/zap"

	"github.com/phobologic/typeshed2spec/internal/stub"
	"github.com/phobologic/typeshed2spec/internal/summary"
)

// Option configures a conversion.
type Option func(*converter)

// WithLogger sets the logger receiving debug records about dropped
// declarations.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *converter) {
		if l != nil {
			c.log = l
		}
	}
}

type converter struct {
	pkg    string
	names  Allocator
	loader *summary.Element
	log    *zap.SugaredLogger
}

// Convert translates mod, loaded as package pkg, into a summary-spec
// document. It fails with ErrUnsupported on the first construct outside the
// stub subset; no partial document is returned.
func Convert(mod *stub.Module, pkg string, opts ...Option) (*summary.Element, error) {
	root, loader := summary.NewDocument()
	c := &converter{
		pkg:    pkg,
		loader: loader,
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.module(mod); err != nil {
		return nil, err
	}
	return root, nil
}

func (c *converter) module(mod *stub.Module) error {
	class := c.loader.Add(summary.TagClass, "name", c.pkg, "allocatable", "true")
	imp := class.Add(summary.TagMethod,
		"name", "import",
		"static", "true",
		"descriptor", "()L"+c.pkg+";",
	)

	funcsName := c.pkg + "/function"
	classesName := c.pkg + "/class"
	ctx := &convContext{
		body:    imp,
		ref:     moduleObject,
		funcs:   pkgRef{elem: c.loader.Add(summary.TagPackage, "name", funcsName), name: funcsName},
		classes: pkgRef{elem: c.loader.Add(summary.TagPackage, "name", classesName), name: classesName},
		scope:   newScope(moduleObject),
	}

	summary.New(imp, moduleObject, "L"+c.pkg)
	for _, s := range mod.Body {
		if err := c.declaration(ctx, s); err != nil {
			return err
		}
	}
	summary.Return(imp, moduleObject)
	return nil
}
