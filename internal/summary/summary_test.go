package summary

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDocument(t *testing.T) {
	t.Parallel()

	root, loader := NewDocument()
	class := loader.Add(TagClass, "name", "pkg", "allocatable", "true")
	method := class.Add(TagMethod, "name", "import", "static", "true", "descriptor", "()Lpkg;")
	New(method, "obj_typeshed_", "Lpkg")
	PutField(method, "obj_typeshed_", "y", "y_typeshed_")
	Return(method, "obj_typeshed_")
	loader.Add(TagPackage, "name", "pkg/function")

	want := `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE summary-spec>
<summary-spec>
  <classloader name="PythonLoader">
    <class name="pkg" allocatable="true">
      <method name="import" static="true" descriptor="()Lpkg;">
        <new def="obj_typeshed_" class="Lpkg"/>
        <putfield class="LRoot" field="y" fieldType="LRoot" ref="obj_typeshed_" value="y_typeshed_"/>
        <return value="obj_typeshed_"/>
      </method>
    </class>
    <package name="pkg/function"/>
  </classloader>
</summary-spec>
`
	assert.Equal(t, want, EncodeToString(root))
}

func TestEncodeEscapesAttributes(t *testing.T) {
	t.Parallel()

	e := NewElement(TagNew, "def", "a", "class", `L<x> & "y"`)
	got := EncodeToString(e)
	assert.Contains(t, got, `class="L&lt;x&gt; &amp; &quot;y&quot;"`)
}

func TestElementHelpers(t *testing.T) {
	t.Parallel()

	root, loader := NewDocument()
	assert.Equal(t, TagSummarySpec, root.Tag)
	name, ok := loader.Attr("name")
	require.True(t, ok)
	assert.Equal(t, LoaderName, name)

	loader.Add(TagPackage, "name", "a")
	b := loader.Add(TagPackage, "name", "b")
	loader.Add(TagClass, "name", "b")

	assert.Len(t, loader.Find(TagPackage), 2)
	assert.Same(t, b, loader.FindNamed(TagPackage, "b"))
	assert.Nil(t, loader.FindNamed(TagPackage, "c"))
	_, ok = b.Attr("missing")
	assert.False(t, ok)
}

// decode rebuilds an element tree from an encoded document.
func decode(t *testing.T, text string) *Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(text))
	require.NotNil(t, doc.Root())
	return fromEtree(doc.Root())
}

func fromEtree(el *etree.Element) *Element {
	e := &Element{Tag: el.Tag}
	for _, a := range el.Attr {
		e.Attrs = append(e.Attrs, Attr{Name: a.Key, Value: a.Value})
	}
	for _, c := range el.ChildElements() {
		e.Children = append(e.Children, fromEtree(c))
	}
	return e
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	root, loader := NewDocument()
	class := loader.Add(TagClass, "name", "pkg", "allocatable", "true")
	method := class.Add(TagMethod, "name", "import", "static", "true", "descriptor", "()Lpkg;")
	New(method, "obj_typeshed_", "Lpkg")
	New(method, "_typeshed0", "int LNone")
	New(method, "_typeshed1", `Lweird"<&>`)
	PutField(method, "obj_typeshed_", "0", "_typeshed0")
	Return(method, "obj_typeshed_")
	loader.Add(TagPackage, "name", "pkg/function")
	loader.Add(TagPackage, "name", "pkg/class")

	doc := EncodeToString(root)
	assert.True(t, strings.HasPrefix(doc, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE summary-spec>\n"))
	assert.True(t, strings.HasSuffix(doc, "</summary-spec>\n"))

	assert.Contains(t, doc, "<!DOCTYPE summary-spec>")
	assert.Equal(t, root, decode(t, doc))
	assert.Equal(t, doc, EncodeToString(decode(t, doc)))
}
