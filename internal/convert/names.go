package convert

import "strconv"

const (
	tempPrefix     = "_typeshed"
	declaredSuffix = "_typeshed_"
	moduleObject   = "obj" + declaredSuffix
)

// Allocator hands out temporary names for one conversion run. Names are
// _typeshed0, _typeshed1, ... and never repeat.
type Allocator struct {
	next int
}

// Next returns a fresh temporary name.
func (a *Allocator) Next() string {
	n := a.next
	a.next++
	return tempPrefix + strconv.Itoa(n)
}

// declaredName is the symbolic name of the object standing for a declaration.
func declaredName(name string) string {
	return name + declaredSuffix
}
