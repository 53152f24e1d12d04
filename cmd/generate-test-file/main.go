// Command generate-test-file writes a large outline for trying out scrolling
// and search. Files ending in .json are written as outline JSON, anything
// else as two-space indented text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pstuifzand/tui-tree/internal/model"
	"github.com/pstuifzand/tui-tree/internal/storage"
)

func main() {
	numNodes := flag.Int("nodes", 1000, "Number of nodes to generate")
	output := flag.String("output", "large_test.txt", "Output file path (.json for outline JSON)")
	depth := flag.Int("depth", 3, "Maximum nesting depth")
	flag.Parse()

	if *numNodes < 1 {
		fmt.Fprintf(os.Stderr, "nodes must be at least 1\n")
		os.Exit(1)
	}
	if *depth < 0 {
		fmt.Fprintf(os.Stderr, "depth must not be negative\n")
		os.Exit(1)
	}

	outline := generateOutline(*numNodes, *depth)

	if err := save(outline, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated outline with %d nodes\n", len(outline.GetAllItems()))
	fmt.Printf("Saved to: %s\n", *output)
	if info, err := os.Stat(*output); err == nil {
		fmt.Printf("File size: %.2f MB\n", float64(info.Size())/(1024*1024))
	}
}

func save(outline *model.Outline, output string) error {
	if strings.EqualFold(filepath.Ext(output), ".json") {
		return storage.NewJSONStore(output).Save(outline)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeIndented(f, outline.Items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeIndented writes one item per line, indented two spaces per level.
func writeIndented(w io.Writer, items []*model.Item) error {
	bw := bufio.NewWriter(w)
	var walk func(items []*model.Item, depth int)
	walk = func(items []*model.Item, depth int) {
		for _, item := range items {
			fmt.Fprintf(bw, "%s%s\n", strings.Repeat("  ", depth), item.Text)
			walk(item.Children, depth+1)
		}
	}
	walk(items, 0)
	return bw.Flush()
}

func generateOutline(totalNodes int, maxDepth int) *model.Outline {
	outline := model.NewOutline()

	// Create a balanced tree structure
	remaining := totalNodes
	for remaining > 0 {
		outline.Items = append(outline.Items, generateItemRecursive(&remaining, 0, maxDepth))
	}

	outline.AssignIDs()
	return outline
}

func generateItemRecursive(remaining *int, currentDepth int, maxDepth int) *model.Item {
	if *remaining <= 0 {
		return nil
	}

	item := model.NewItem(generateUniqueText(*remaining))
	*remaining--

	// Add children if we haven't reached max depth and still have nodes left
	if currentDepth < maxDepth && *remaining > 0 {
		numChildren := getChildCount(*remaining, maxDepth-currentDepth)
		for i := 0; i < numChildren && *remaining > 0; i++ {
			item.AddChild(generateItemRecursive(remaining, currentDepth+1, maxDepth))
		}
	}

	return item
}

func getChildCount(remaining int, depthLeft int) int {
	// Distribute nodes across children based on remaining nodes
	if depthLeft == 1 {
		// Leaf level: create fewer children
		if remaining > 10 {
			return 5
		}
		return remaining / 2
	}
	// Internal levels: create 2-3 children
	if remaining > 50 {
		return 3
	}
	return 2
}

func generateUniqueText(index int) string {
	// Generate unique, descriptive text for each node
	categories := []string{
		"Task", "Note", "Idea", "Bug", "Feature", "Enhancement",
		"Documentation", "Refactor", "Test", "Optimization",
		"Research", "Design", "Implementation", "Review",
	}

	category := categories[index%len(categories)]
	return fmt.Sprintf("%s #%d - %s", category, index,
		generateDescription(index))
}

func generateDescription(index int) string {
	descriptions := []string{
		"Core functionality",
		"User interface",
		"Performance improvement",
		"Bug fix",
		"New capability",
		"API integration",
		"Data validation",
		"Error handling",
		"Caching layer",
		"Database schema",
		"Authentication",
		"Configuration",
		"Logging system",
		"Monitoring",
		"Security audit",
	}

	return descriptions[index%len(descriptions)]
}
