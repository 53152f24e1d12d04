package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	import_parser "github.com/pstuifzand/tui-tree/internal/import"
	"github.com/pstuifzand/tui-tree/internal/model"
)

// JSONStore handles JSON outline files of the form {"items": [...]}
type JSONStore struct {
	FilePath string
}

// NewJSONStore creates a new JSON store for the given file path
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{FilePath: filePath}
}

// Load reads the outline, restores parent pointers and assigns IDs to items
// that have none.
func (s *JSONStore) Load() (*model.Outline, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var outline model.Outline
	if err := json.Unmarshal(data, &outline); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	outline.RestoreParents()
	outline.AssignIDs()

	return &outline, nil
}

// Save saves an outline to a JSON file
func (s *JSONStore) Save(outline *model.Outline) error {
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadOutline reads any supported file: .json through JSONStore, everything
// else through the import parsers.
func LoadOutline(path string) (*model.Outline, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path).Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return import_parser.ImportFile(string(data), import_parser.DetectFormat(path))
}
