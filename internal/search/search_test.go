package search

import (
	"testing"

	"github.com/pstuifzand/tui-tree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, id, text string, children ...*tree.Node[string]) *tree.Node[string] {
	t.Helper()
	n, err := tree.New(id, tree.NewText(text), children)
	require.NoError(t, err)
	return n
}

// sample:
//
//	Groceries
//	  Apples
//	  Bread
//	Projects
//	  Tree widget
//	    Viewport math
//	  Garden
func sample(t *testing.T) *Index {
	return NewIndex([]*tree.Node[string]{
		node(t, "1", "Groceries",
			node(t, "2", "Apples"),
			node(t, "3", "Bread"),
		),
		node(t, "4", "Projects",
			node(t, "5", "Tree widget",
				node(t, "6", "Viewport math"),
			),
			node(t, "7", "Garden"),
		),
	})
}

func texts(entries []*Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

func TestIndexCollectsHiddenNodesInOrder(t *testing.T) {
	ix := sample(t)
	all := ix.Filter(NewNotExpr(NewTextExpr("\x00")))

	assert.Equal(t, 7, ix.Len())
	assert.Equal(t, []string{"Groceries", "Apples", "Bread", "Projects", "Tree widget", "Viewport math", "Garden"}, texts(all))
	assert.Equal(t, tree.Path[string]{"4", "5", "6"}, all[5].Path)
	assert.Equal(t, 2, all[5].Depth())
	assert.Equal(t, "Tree widget", all[5].Parent.Text)
	assert.Nil(t, all[0].Parent)
}

func TestIndexJoinsMultilineContent(t *testing.T) {
	ix := NewIndex([]*tree.Node[string]{tree.NewLeaf("m", tree.NewText("first\nsecond"))})
	got, err := ix.Find(`"first second"`)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFind(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"bread", []string{"Bread"}},
		{"ap", []string{"Apples"}},
		{"~vwpm", []string{"Viewport math"}},
		{"/^[A-G]/", []string{"Groceries", "Apples", "Bread", "Garden"}},
		{"e -r", []string{"Apples"}},
		{"bread | garden", []string{"Bread", "Garden"}},
		{"d:0", []string{"Groceries", "Projects"}},
		{"depth:>=2", []string{"Viewport math"}},
		{"c:0 p:projects", []string{"Garden"}},
		{"children:>0", []string{"Groceries", "Projects", "Tree widget"}},
		{"a:projects", []string{"Tree widget", "Viewport math", "Garden"}},
		{"(apples | bread) + -b", []string{"Apples"}},
		{`"tree w"`, []string{"Tree widget"}},
		{"zzz", nil},
		{"   ", nil},
	}
	ix := sample(t)
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := ix.Find(tt.query)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestFindErrors(t *testing.T) {
	ix := sample(t)
	for _, query := range []string{"(apples", "apples)", "d:x", "d:", "/[/", "~", "-"} {
		t.Run(query, func(t *testing.T) {
			_, err := ix.Find(query)
			assert.Error(t, err)
		})
	}
}

func TestTokenizer(t *testing.T) {
	tokens := NewTokenizer(`a "b c" ~d /e\/f/ d:>1 -g|(h)`).AllTokens()

	types := make([]TokenType, len(tokens))
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
		values[i] = tok.Value
	}
	assert.Equal(t, []TokenType{
		TokenText, TokenText, TokenFuzzy, TokenRegex, TokenFilter,
		TokenNot, TokenText, TokenOr, TokenLParen, TokenText, TokenRParen, TokenEOF,
	}, types)
	assert.Equal(t, []string{"a", "b c", "d", "e/f", "d:>1", "-", "g", "|", "(", "h", ")", ""}, values)
}

func TestExprString(t *testing.T) {
	expr, err := ParseQuery("a | -b d:>=2")
	require.NoError(t, err)
	assert.Equal(t, `(text("a") OR (NOT text("b") AND depth>=2))`, expr.String())
}

func TestLookup(t *testing.T) {
	ix := NewIndex([]*tree.Node[string]{
		node(t, "a/b", "slash"),
		node(t, "a", "parent", node(t, "b", "child")),
	})

	e, ok := ix.Lookup(tree.Path[string]{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "child", e.Text)
	assert.Equal(t, 2, e.Order)

	e, ok = ix.Lookup(tree.Path[string]{"a/b"})
	require.True(t, ok)
	assert.Equal(t, "slash", e.Text)

	_, ok = ix.Lookup(tree.Path[string]{"missing"})
	assert.False(t, ok)
}
