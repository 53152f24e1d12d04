package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathAppendDoesNotAlias(t *testing.T) {
	base := make(Path[string], 1, 4)
	base[0] = "a"

	left := base.Append("b")
	right := base.Append("c")

	assert.Equal(t, p("a", "b"), left)
	assert.Equal(t, p("a", "c"), right)
	assert.Equal(t, p("a"), base)
}

func TestPathParent(t *testing.T) {
	tests := []struct {
		name   string
		path   Path[string]
		parent Path[string]
		ok     bool
	}{
		{"empty", nil, nil, false},
		{"root level", p("a"), nil, false},
		{"child", p("a", "b"), p("a"), true},
		{"grandchild", p("a", "b", "c"), p("a", "b"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, ok := tt.path.Parent()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.parent, parent)
		})
	}
}

func TestPathEqualAndDepth(t *testing.T) {
	assert.True(t, p("a", "b").Equal(p("a", "b")))
	assert.False(t, p("a", "b").Equal(p("a")))
	assert.False(t, p("a", "b").Equal(p("b", "a")))
	assert.True(t, Path[string](nil).Equal(Path[string]{}))

	assert.Equal(t, 0, p("a").Depth())
	assert.Equal(t, 2, p("a", "b", "c").Depth())
}

func TestPathHelpers(t *testing.T) {
	path := p("src", "main.go")

	leaf, ok := path.Leaf()
	assert.True(t, ok)
	assert.Equal(t, "main.go", leaf)

	_, ok = Path[string](nil).Leaf()
	assert.False(t, ok)

	assert.True(t, path.HasPrefix(p("src")))
	assert.True(t, path.HasPrefix(path))
	assert.False(t, path.HasPrefix(p("pkg")))
	assert.Equal(t, "src/main.go", path.String())

	clone := path.Clone()
	clone[0] = "changed"
	assert.Equal(t, "src", path[0])
}
