package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pstuifzand/tui-tree/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "outline.json")
	root := &model.Item{ID: "r", Text: "root", Color: "green"}
	root.AddChild(&model.Item{ID: "c", Text: "child"})

	store := NewJSONStore(path)
	require.NoError(t, store.Save(model.NewOutline(root)))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "green", loaded.Items[0].Color)
	require.Len(t, loaded.Items[0].Children, 1)
	assert.Same(t, loaded.Items[0], loaded.Items[0].Children[0].Parent)
}

func TestJSONStoreAssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.json")
	data := `{"items": [{"text": "a", "children": [{"text": "b"}]}, {"id": "x", "text": "c"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	outline, err := NewJSONStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "1", outline.Items[0].ID)
	assert.Equal(t, "2", outline.Items[0].Children[0].ID)
	assert.Equal(t, "x", outline.Items[1].ID)
}

func TestJSONStoreErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewJSONStore(filepath.Join(dir, "missing.json")).Load()
	assert.ErrorContains(t, err, "failed to read file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = NewJSONStore(bad).Load()
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestLoadOutlineByExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		path string
		want []string
	}{
		{write("a.json", `{"items": [{"text": "json"}]}`), []string{"json"}},
		{write("b.md", "# head\n- item\n"), []string{"head", "item"}},
		{write("c.txt", "top\n  nested\n"), []string{"top", "nested"}},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			outline, err := LoadOutline(tt.path)
			require.NoError(t, err)
			var texts []string
			for _, item := range outline.GetAllItems() {
				texts = append(texts, item.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}

	_, err := LoadOutline(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
