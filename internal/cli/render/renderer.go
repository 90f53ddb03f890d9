package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Renderer[T any] interface {
	Render(result T) error
}

// Format selects how results are printed
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: table, json, yaml)", s)
	}
}

// WriteJSON prints v as indented JSON
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML prints v as YAML using the same field names as its JSON form
func WriteYAML(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

// WriteStructured prints v as JSON or YAML. It returns false for the table
// format so the caller can fall back to its own renderer.
func WriteStructured(out io.Writer, format Format, v any) (bool, error) {
	switch format {
	case FormatJSON:
		return true, WriteJSON(out, v)
	case FormatYAML:
		return true, WriteYAML(out, v)
	default:
		return false, nil
	}
}
