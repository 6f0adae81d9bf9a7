package summary

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

const indentSpaces = 2

// Encode writes root as a summary-spec document: an XML declaration, a
// DOCTYPE naming the root tag, then the tree indented two spaces per level.
// Childless elements are self-closing and the document ends with a newline.
func Encode(w io.Writer, root *Element) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateDirective("DOCTYPE " + root.Tag)
	build(&doc.Element, root)
	doc.Indent(indentSpaces)

	_, err := doc.WriteTo(w)
	return err
}

// EncodeToString returns the encoded document.
func EncodeToString(root *Element) string {
	var b strings.Builder
	_ = Encode(&b, root)
	return b.String()
}

func build(parent *etree.Element, e *Element) {
	el := parent.CreateElement(e.Tag)
	for _, a := range e.Attrs {
		el.CreateAttr(a.Name, a.Value)
	}
	for _, c := range e.Children {
		build(el, c)
	}
}
