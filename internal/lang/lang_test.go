package lang

import (
	"context"
	"testing"
)

func TestForExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want string
	}{
		{".pyi", "python"},
		{".py", "python"},
		{".PYI", "python"},
		{".go", ""},
		{".rb", ""},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()
			got := ForExtension(tt.ext)
			if got != tt.want {
				t.Errorf("ForExtension(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestLanguagesRegistered(t *testing.T) {
	t.Parallel()

	py, ok := Languages["python"]
	if !ok {
		t.Fatal("python language not registered")
	}
	if py != Python {
		t.Error("registry entry is not the Python language")
	}
	if py.GetLanguage() == nil {
		t.Error("python language is nil")
	}
}

func TestNamedChildrenSkipsComments(t *testing.T) {
	t.Parallel()

	source := []byte("# header\nimport os\n# trailing\nx: int\n")
	tree, err := Python.NewParser().ParseCtx(context.Background(), nil, source)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer tree.Close()

	children := NamedChildren(tree.RootNode())
	if len(children) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(children))
	}
	if children[0].Type() != "import_statement" {
		t.Errorf("child 0 = %q", children[0].Type())
	}
	if got := NodeText(children[0], source); got != "import os" {
		t.Errorf("NodeText = %q", got)
	}
	if got := Line(children[1]); got != 4 {
		t.Errorf("Line = %d, want 4", got)
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{`"int"`, "int"},
		{`'Foo'`, "Foo"},
		{`"""doc"""`, "doc"},
		{`b"raw"`, "raw"},
		{`r'\d'`, `\d`},
		{`""`, ""},
	}
	for _, tt := range tests {
		tt := tt
		if got := StringValue(tt.in); got != tt.want {
			t.Errorf("StringValue(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
