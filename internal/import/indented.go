package import_parser

import (
	"bufio"
	"strings"

	"github.com/pstuifzand/tui-tree/internal/model"
)

// IndentedTextParser imports plain text where deeper indentation means a
// child of the line above. Any indent width works, it only has to be
// consistent between siblings.
type IndentedTextParser struct{}

func (p *IndentedTextParser) Name() string {
	return "Indented Text"
}

// Parse converts indented text to outline items
func (p *IndentedTextParser) Parse(content string) ([]*model.Item, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	var b builder

	for scanner.Scan() {
		line := scanner.Text()
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		b.add(indentWidth(line), model.NewItem(text))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.roots, nil
}
