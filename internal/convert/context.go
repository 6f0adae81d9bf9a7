package convert

import "github.com/phobologic/typeshed2spec/internal/summary"

// pkgRef is a package element together with its name.
type pkgRef struct {
	elem *summary.Element
	name string
}

// scope tracks what one method body has already declared.
type scope struct {
	fields  map[string]struct{}
	symbols map[string]struct{}
}

// newScope returns a scope whose body already constructs the given names.
func newScope(constructed ...string) *scope {
	s := &scope{
		fields:  make(map[string]struct{}),
		symbols: make(map[string]struct{}),
	}
	for _, name := range constructed {
		s.symbols[name] = struct{}{}
	}
	return s
}

// declare registers field and returns the symbolic name of the object that
// will be stored in it. It returns false if the field already exists, since
// an object cannot carry two fields of the same name. If the declared name
// is already a construction target in this body, a temporary is used.
func (s *scope) declare(field string, names *Allocator) (string, bool) {
	if _, dup := s.fields[field]; dup {
		return "", false
	}
	s.fields[field] = struct{}{}

	sym := declaredName(field)
	if _, taken := s.symbols[sym]; taken {
		sym = names.Next()
	}
	s.symbols[sym] = struct{}{}
	return sym, true
}

// convContext is the state threaded through declaration translation.
type convContext struct {
	body    *summary.Element // method receiving instructions
	ref     string           // object that declarations become fields of
	funcs   pkgRef           // package for function bodies
	classes pkgRef           // package for class bodies
	scope   *scope
}
