package import_parser

import (
	"strings"
	"testing"

	"github.com/pstuifzand/tui-tree/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outlineString renders items as two-space indented text.
func outlineString(items []*model.Item) string {
	var b strings.Builder
	var walk func([]*model.Item, int)
	walk = func(level []*model.Item, depth int) {
		for _, item := range level {
			b.WriteString(strings.Repeat("  ", depth) + item.Text + "\n")
			walk(item.Children, depth+1)
		}
	}
	walk(items, 0)
	return b.String()
}

func TestIndentedText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two space indent",
			input: "a\n  b\n    c\n  d\ne\n",
			want:  "a\n  b\n    c\n  d\ne\n",
		},
		{
			name:  "four space indent and blank lines",
			input: "a\n\n    b\n        c\n    d\n",
			want:  "a\n  b\n    c\n  d\n",
		},
		{
			name:  "tabs",
			input: "a\n\tb\n\t\tc\n",
			want:  "a\n  b\n    c\n",
		},
		{
			name:  "outdent past several levels",
			input: "a\n  b\n    c\n      d\n  e\n",
			want:  "a\n  b\n    c\n      d\n  e\n",
		},
		{
			name:  "starts indented",
			input: "    a\nb\n",
			want:  "a\nb\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := (&IndentedTextParser{}).Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, outlineString(items))
		})
	}
}

func TestMarkdown(t *testing.T) {
	input := `# Project
Intro text
## Tasks
- [ ] write code
  - tests
- [x] review
1. first
## Notes
` + "```" + `
# not a heading
` + "```" + `
* point
#hashtag
`
	items, err := (&MarkdownParser{}).Parse(input)
	require.NoError(t, err)

	want := `Project
  Intro text
  Tasks
    write code
      tests
    review
    first
  Notes
    point
      #hashtag
`
	assert.Equal(t, want, outlineString(items))
}

func TestMarkdownSetsParents(t *testing.T) {
	items, err := (&MarkdownParser{}).Parse("# A\n- b\n")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Same(t, items[0], items[0].Children[0].Parent)
}

func TestImportFile(t *testing.T) {
	outline, err := ImportFile("a\n  b\n  c\n", FormatIndentedText)
	require.NoError(t, err)

	var ids []string
	for _, item := range outline.GetAllItems() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)

	_, err = ImportFile("x", ImportFormat("yaml"))
	assert.ErrorContains(t, err, "unsupported import format")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatMarkdown, DetectFormat("notes.md"))
	assert.Equal(t, FormatMarkdown, DetectFormat("README.MARKDOWN"))
	assert.Equal(t, FormatIndentedText, DetectFormat("list.txt"))
	assert.Equal(t, FormatIndentedText, DetectFormat("Makefile"))
}
