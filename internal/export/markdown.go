package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pstuifzand/tui-tree/internal/tree"
)

// WriteMarkdown writes rows as a nested markdown bullet list, two spaces per
// depth level. Only the given rows are written, so closed branches stay
// folded away. Extra content lines are continued under their bullet.
func WriteMarkdown[K comparable](w io.Writer, rows []tree.Flattened[K]) error {
	bw := bufio.NewWriter(w)

	for _, row := range rows {
		content := row.Node.Content()
		if content == nil {
			continue
		}
		lines := content.Lines()
		if len(lines) == 0 || strings.TrimSpace(strings.Join(lines, "")) == "" {
			continue
		}

		indent := strings.Repeat("  ", row.Depth())
		fmt.Fprintf(bw, "%s- %s\n", indent, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(bw, "%s  %s\n", indent, line)
		}
	}

	return bw.Flush()
}

// ExportToMarkdown writes rows to filePath as markdown.
func ExportToMarkdown[K comparable](rows []tree.Flattened[K], filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create markdown file: %w", err)
	}

	if err := WriteMarkdown(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write markdown file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}
	return nil
}
