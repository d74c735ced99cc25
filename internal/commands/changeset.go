package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"planner-backend/internal/delta"

	"gopkg.in/yaml.v3"
)

// loadChangeSet reads a change-set file. YAML is converted through its JSON
// form so the same field names apply to both formats.
func loadChangeSet(path string) (*delta.ChangeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read change-set: %w", err)
	}
	return decodeChangeSet(data, filepath.Ext(path))
}

func decodeChangeSet(data []byte, ext string) (*delta.ChangeSet, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML change-set: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML change-set: %w", err)
		}
		data = converted
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported change-set format %q (want .yaml, .yml or .json)", ext)
	}

	var cs delta.ChangeSet
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cs); err != nil {
		return nil, fmt.Errorf("invalid change-set: %w", err)
	}
	return &cs, nil
}
