package search

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat specifies how search results should be formatted
type OutputFormat int

const (
	OutputFormatText OutputFormat = iota
	OutputFormatFields
	OutputFormatJSON
	OutputFormatJSONL
)

var defaultFields = []string{"id", "text", "depth", "path"}

// FormatResults formats entries for printing. Text output is one breadcrumb
// per line ("Parent > Child"); the other formats honour fields, or a default
// set when fields is empty.
func FormatResults(entries []*Entry, format OutputFormat, fields []string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	if len(fields) == 0 {
		fields = defaultFields
	}

	switch format {
	case OutputFormatFields:
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, formatFields(e, fields))
		}
		return strings.Join(lines, "\n"), nil
	case OutputFormatJSON:
		objs := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			objs = append(objs, entryObject(e, fields))
		}
		data, err := json.MarshalIndent(objs, "", "  ")
		return string(data), err
	case OutputFormatJSONL:
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			data, err := json.Marshal(entryObject(e, fields))
			if err != nil {
				return "", err
			}
			lines = append(lines, string(data))
		}
		return strings.Join(lines, "\n"), nil
	default:
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, breadcrumb(e))
		}
		return strings.Join(lines, "\n"), nil
	}
}

// formatFields formats a single entry as tab-separated fields
func formatFields(e *Entry, fields []string) string {
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		switch field {
		case "path":
			values = append(values, breadcrumb(e))
		default:
			values = append(values, fmt.Sprint(fieldValue(e, field)))
		}
	}
	return strings.Join(values, "\t")
}

func entryObject(e *Entry, fields []string) map[string]any {
	obj := make(map[string]any, len(fields))
	for _, field := range fields {
		obj[field] = fieldValue(e, field)
	}
	return obj
}

func fieldValue(e *Entry, field string) any {
	switch field {
	case "id":
		id, _ := e.Path.Leaf()
		return id
	case "text":
		return e.Text
	case "depth":
		return e.Depth()
	case "children":
		return e.Children
	case "parent_id":
		if e.Parent == nil {
			return ""
		}
		id, _ := e.Parent.Path.Leaf()
		return id
	case "path":
		var parts []map[string]string
		for cur := e; cur != nil; cur = cur.Parent {
			id, _ := cur.Path.Leaf()
			parts = append([]map[string]string{{"id": id, "text": cur.Text}}, parts...)
		}
		return parts
	default:
		return ""
	}
}

func breadcrumb(e *Entry) string {
	var texts []string
	for cur := e; cur != nil; cur = cur.Parent {
		texts = append([]string{cur.Text}, texts...)
	}
	return strings.Join(texts, " > ")
}

// ParseFormatFlag parses the format flag and returns the corresponding OutputFormat
func ParseFormatFlag(flagValue string) (OutputFormat, error) {
	switch strings.ToLower(flagValue) {
	case "", "text":
		return OutputFormatText, nil
	case "fields":
		return OutputFormatFields, nil
	case "json":
		return OutputFormatJSON, nil
	case "jsonl":
		return OutputFormatJSONL, nil
	default:
		return OutputFormatText, fmt.Errorf("invalid format: %s (valid options: text, fields, json, jsonl)", flagValue)
	}
}

// ParseFieldsFlag parses the -fields flag into a list of field names
func ParseFieldsFlag(flagValue string) []string {
	var fields []string
	for _, field := range strings.Split(flagValue, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}
