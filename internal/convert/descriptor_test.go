package convert

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"bool", "Z"},
		{"int", "int"},
		{"float", "D"},
		{"str", "Lstring"},
		{"list", "Llist"},
		{"set", "Lset"},
		{"tuple", "Ltuple"},
		{"dict", "Ldict"},
		{"None", "LNone"},
		{"Any", "Lobject"},
		{"Foo", "LFoo"},
		{"Dict", "LDict"},
		{"bytes", "Lbytes"},
		{"Ellipsis", "LEllipsis"},
		{"True", "LTrue"},
		{"", "L"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Descriptor(tt.in))
		})
	}
}

func TestAllocator(t *testing.T) {
	t.Parallel()

	var a Allocator
	seen := make(map[string]bool)
	last := -1
	for i := 0; i < 1000; i++ {
		name := a.Next()
		assert.False(t, seen[name], "repeated %s", name)
		seen[name] = true

		require.True(t, strings.HasPrefix(name, tempPrefix), name)
		n, err := strconv.Atoi(strings.TrimPrefix(name, tempPrefix))
		require.NoError(t, err, name)
		assert.Greater(t, n, last, "suffixes increase strictly")
		last = n
	}
	assert.True(t, seen["_typeshed0"])
	assert.True(t, seen["_typeshed999"])

	var b Allocator
	assert.Equal(t, "_typeshed0", b.Next(), "allocators are independent")
	assert.Equal(t, "_typeshed1", b.Next())
}

func TestScopeDeclare(t *testing.T) {
	t.Parallel()

	var names Allocator
	s := newScope(moduleObject)

	sym, ok := s.declare("f", &names)
	assert.True(t, ok)
	assert.Equal(t, "f_typeshed_", sym)

	_, ok = s.declare("f", &names)
	assert.False(t, ok, "a field is declared once per scope")

	sym, ok = s.declare("obj", &names)
	assert.True(t, ok)
	assert.Equal(t, "_typeshed0", sym, "clashing declared name falls back to a temporary")
}
