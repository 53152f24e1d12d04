package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

// BuildTree converts the outline to tree nodes keyed by item ID. Items with a
// Color are drawn in that color. Duplicate sibling IDs fail with
// tree.ErrDuplicateIdentifier.
func (o *Outline) BuildTree() ([]*tree.Node[string], error) {
	roots, err := buildNodes(o.Items)
	if err != nil {
		return nil, err
	}
	// Root-level duplicates are only caught by the widget constructor.
	if _, err := tree.NewTree(roots); err != nil {
		return nil, err
	}
	return roots, nil
}

func buildNodes(items []*Item) ([]*tree.Node[string], error) {
	nodes := make([]*tree.Node[string], 0, len(items))
	for _, item := range items {
		children, err := buildNodes(item.Children)
		if err != nil {
			return nil, err
		}
		node, err := tree.New(item.ID, content(item), children)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Text, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func content(item *Item) tree.Content {
	if item.Color == "" {
		return tree.NewText(item.Text)
	}
	color := tcell.GetColor(item.Color)
	if color == tcell.ColorDefault {
		return tree.NewText(item.Text)
	}
	return tree.NewStyledText(item.Text, tcell.StyleDefault.Foreground(color))
}
