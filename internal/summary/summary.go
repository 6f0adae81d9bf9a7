// Package summary models summary-spec documents: the instruction tree a
// class loader reads to build synthetic classes.
package summary

// Element tags used in summary-spec documents.
const (
	TagSummarySpec = "summary-spec"
	TagClassLoader = "classloader"
	TagClass       = "class"
	TagPackage     = "package"
	TagMethod      = "method"
	TagNew         = "new"
	TagPutField    = "putfield"
	TagReturn      = "return"
)

// LoaderName is the fixed name of the document's single class loader.
const LoaderName = "PythonLoader"

// RootType is the type every synthetic field is declared with.
const RootType = "LRoot"

// Attr is a single attribute. Attributes keep the order they were added in.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the instruction tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// NewElement creates a detached element. attrs are name/value pairs.
func NewElement(tag string, attrs ...string) *Element {
	e := &Element{Tag: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Attrs = append(e.Attrs, Attr{Name: attrs[i], Value: attrs[i+1]})
	}
	return e
}

// Add appends a new child element and returns it.
func (e *Element) Add(tag string, attrs ...string) *Element {
	child := NewElement(tag, attrs...)
	e.Children = append(e.Children, child)
	return child
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the direct children with the given tag.
func (e *Element) Find(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FindNamed returns the first direct child with the given tag whose name
// attribute equals name, or nil.
func (e *Element) FindNamed(tag, name string) *Element {
	for _, c := range e.Children {
		if c.Tag != tag {
			continue
		}
		if v, ok := c.Attr("name"); ok && v == name {
			return c
		}
	}
	return nil
}

// NewDocument creates the summary-spec root and its class loader.
func NewDocument() (root, loader *Element) {
	root = NewElement(TagSummarySpec)
	loader = root.Add(TagClassLoader, "name", LoaderName)
	return root, loader
}

// New appends a "construct object" instruction binding def to a fresh
// instance of class.
func New(method *Element, def, class string) *Element {
	return method.Add(TagNew, "def", def, "class", class)
}

// PutField appends an "assign field" instruction storing value into field of ref.
func PutField(method *Element, ref, field, value string) *Element {
	return method.Add(TagPutField,
		"class", RootType,
		"field", field,
		"fieldType", RootType,
		"ref", ref,
		"value", value,
	)
}

// Return appends a "return value" instruction.
func Return(method *Element, value string) *Element {
	return method.Add(TagReturn, "value", value)
}
