package import_parser

import (
	"bufio"
	"strings"

	"github.com/pstuifzand/tui-tree/internal/model"
)

// MarkdownParser imports headings and bullet lists. Headings nest by their
// level, list items nest below the closest heading by indentation, and
// other text lines become children of the item before them.
type MarkdownParser struct{}

func (p *MarkdownParser) Name() string {
	return "Markdown"
}

// headings use levels 0..5, list items start above them
const listBase = 100

// Parse converts markdown content to outline items
func (p *MarkdownParser) Parse(content string) ([]*model.Item, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	var b builder
	inFence := false

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if trimmed == "" || inFence {
			continue
		}

		if level, text, ok := parseHeader(trimmed); ok {
			b.add(level, model.NewItem(text))
			continue
		}

		if text, ok := parseListItem(trimmed); ok {
			b.add(listBase+indentWidth(line), model.NewItem(text))
			continue
		}

		if parent := b.last(); parent != nil {
			parent.AddChild(model.NewItem(trimmed))
		} else {
			b.add(listBase, model.NewItem(trimmed))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.roots, nil
}

// parseHeader returns the 0-based level and text of an ATX heading.
func parseHeader(line string) (level int, text string, ok bool) {
	hashes := len(line) - len(strings.TrimLeft(line, "#"))
	if hashes == 0 || hashes > 6 {
		return 0, "", false
	}
	rest := line[hashes:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	text = strings.TrimSpace(rest)
	return hashes - 1, text, text != ""
}

// parseListItem strips a "- ", "* ", "+ " or "1. " marker and an optional
// task box.
func parseListItem(line string) (string, bool) {
	var rest string
	switch {
	case len(line) > 1 && strings.ContainsRune("-*+", rune(line[0])) && line[1] == ' ':
		rest = line[2:]
	default:
		digits := len(line) - len(strings.TrimLeft(line, "0123456789"))
		if digits == 0 || !strings.HasPrefix(line[digits:], ". ") {
			return "", false
		}
		rest = line[digits+2:]
	}
	rest = strings.TrimSpace(rest)
	for _, box := range []string{"[ ] ", "[x] ", "[X] "} {
		rest = strings.TrimPrefix(rest, box)
	}
	return rest, rest != ""
}
