// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportJSON writes entries to w as indented JSON.
func ExportJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding JSON export: %w", err)
	}
	return nil
}

// ExportYAML writes entries to w as a YAML document.
func ExportYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding YAML export: %w", err)
	}
	return nil
}
