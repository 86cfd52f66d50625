package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Report is the serialized outcome of a sterility scan.
type Report struct {
	Root         string      `json:"root"`
	FilesScanned int         `json:"files_scanned"`
	Violations   []Violation `json:"violations"`
	Sterile      bool        `json:"sterile"`
}

// WriteJSON writes the report to path, creating parent directories.
func (r *Report) WriteJSON(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sterility report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sterility report: %w", err)
	}
	return nil
}
