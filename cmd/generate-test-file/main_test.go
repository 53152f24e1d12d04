package main

import (
	"bytes"
	"path/filepath"
	"testing"

	import_parser "github.com/pstuifzand/tui-tree/internal/import"
	"github.com/pstuifzand/tui-tree/internal/model"
	"github.com/pstuifzand/tui-tree/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemDepth(items []*model.Item) int {
	deepest := 0
	for _, item := range items {
		if len(item.Children) > 0 {
			deepest = max(deepest, 1+itemDepth(item.Children))
		}
	}
	return deepest
}

func TestGenerateOutline(t *testing.T) {
	outline := generateOutline(200, 2)

	all := outline.GetAllItems()
	assert.Len(t, all, 200)
	assert.LessOrEqual(t, itemDepth(outline.Items), 2)

	ids := make(map[string]bool)
	for _, item := range all {
		require.NotEmpty(t, item.ID)
		assert.False(t, ids[item.ID], "duplicate id %s", item.ID)
		ids[item.ID] = true
	}
}

func TestWriteIndentedReimports(t *testing.T) {
	outline := generateOutline(50, 3)
	var buf bytes.Buffer
	require.NoError(t, writeIndented(&buf, outline.Items))

	imported, err := import_parser.ImportFile(buf.String(), import_parser.FormatIndentedText)
	require.NoError(t, err)

	assert.Len(t, imported.GetAllItems(), 50)
	assert.Equal(t, itemDepth(outline.Items), itemDepth(imported.Items))
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "big.json")
	require.NoError(t, save(generateOutline(20, 1), path))

	loaded, err := storage.NewJSONStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, loaded.GetAllItems(), 20)

	_, err = loaded.BuildTree()
	assert.NoError(t, err)
}
