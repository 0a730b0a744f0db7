package workspace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads and parses a workspace document from disk.
func Load(path string) (*Workspace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workspace: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a workspace document from r. A document that is not valid
// JSON is the only fatal input condition; missing collections decode to
// empty slices and are handled downstream.
func Parse(r io.Reader) (*Workspace, error) {
	var ws Workspace
	if err := json.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}
	return &ws, nil
}
