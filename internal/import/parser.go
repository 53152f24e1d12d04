package import_parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pstuifzand/tui-tree/internal/model"
)

// ImportFormat represents different file formats that can be imported
type ImportFormat string

const (
	FormatMarkdown     ImportFormat = "markdown"
	FormatIndentedText ImportFormat = "indented"
)

// Parser interface for different import formats
type Parser interface {
	Parse(content string) ([]*model.Item, error)
	Name() string
}

// ImportFile parses content and returns an outline with IDs assigned.
func ImportFile(content string, format ImportFormat) (*model.Outline, error) {
	var parser Parser

	switch format {
	case FormatMarkdown:
		parser = &MarkdownParser{}
	case FormatIndentedText:
		parser = &IndentedTextParser{}
	default:
		return nil, fmt.Errorf("unsupported import format: %s", format)
	}

	items, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse error (%s): %w", parser.Name(), err)
	}

	outline := model.NewOutline(items...)
	outline.AssignIDs()
	return outline, nil
}

// DetectFormat picks the format from the file extension. Anything that is
// not markdown is read as indented text.
func DetectFormat(filename string) ImportFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatIndentedText
	}
}

// builder attaches items by nesting level. Levels may jump deeper by more
// than one; such items become children of the last item.
type builder struct {
	roots []*model.Item
	stack []levelItem
}

type levelItem struct {
	level int
	item  *model.Item
}

func (b *builder) add(level int, item *model.Item) {
	for len(b.stack) > 0 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	if len(b.stack) == 0 {
		b.roots = append(b.roots, item)
	} else {
		b.stack[len(b.stack)-1].item.AddChild(item)
	}
	b.stack = append(b.stack, levelItem{level: level, item: item})
}

// last returns the most recently added item, if any.
func (b *builder) last() *model.Item {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1].item
}

// indentWidth counts leading blanks with a tab as two columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 2
		default:
			return width
		}
	}
	return width
}
