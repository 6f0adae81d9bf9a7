package lang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Python is the stub language. Both .pyi stubs and plain .py modules written
// in stub style are accepted.
var Python = &Language{
	Name:       "python",
	Extensions: []string{".pyi", ".py"},
	lang:       python.GetLanguage(),
}

func init() {
	Languages[Python.Name] = Python
}

// NamedChildren returns the named children of node, skipping comments, which
// tree-sitter attaches wherever they occur.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	n := int(node.NamedChildCount())
	out := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		child := node.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

// StringValue returns the content of a Python string literal without its
// prefix and quotes. Escape sequences are kept as written.
func StringValue(literal string) string {
	s := strings.TrimLeft(literal, "rRbBuUfF")
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if len(s) >= 2*len(q) && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}
