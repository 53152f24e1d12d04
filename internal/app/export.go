package app

import (
	"fmt"
	"io"
	"log"

	"github.com/pstuifzand/tui-tree/internal/export"
	"github.com/pstuifzand/tui-tree/internal/search"
	"github.com/pstuifzand/tui-tree/internal/storage"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

// Export writes the rows of the outline at filePath that the viewer would
// show on start to outPath as markdown. Only root rows are visible unless
// expandAll is set.
func Export(filePath, outPath string, expandAll bool) error {
	outline, err := storage.LoadOutline(filePath)
	if err != nil {
		return fmt.Errorf("failed to load outline: %w", err)
	}
	roots, err := outline.BuildTree()
	if err != nil {
		return fmt.Errorf("invalid outline: %w", err)
	}

	state := tree.NewState[string]()
	if expandAll {
		state.OpenAll(roots)
	}
	rows := state.Flatten(roots)
	if err := export.ExportToMarkdown(rows, outPath); err != nil {
		return err
	}
	log.Printf("Exported %d rows of %s to %s", len(rows), filePath, outPath)
	return nil
}

// Find prints the nodes of the outline at filePath that match query to w.
// Hidden nodes are searched too.
func Find(w io.Writer, filePath, query string, format search.OutputFormat, fields []string) error {
	outline, err := storage.LoadOutline(filePath)
	if err != nil {
		return fmt.Errorf("failed to load outline: %w", err)
	}
	roots, err := outline.BuildTree()
	if err != nil {
		return fmt.Errorf("invalid outline: %w", err)
	}

	found, err := search.NewIndex(roots).Find(query)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	log.Printf("Find %q in %s: %d matches", query, filePath, len(found))

	out, err := search.FormatResults(found, format, fields)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
