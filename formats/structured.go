package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/assetstore/assetstore"
)

// YAML renders the snapshot as a YAML document
var YAML = &ReportFormat{
	Name:      "yaml",
	Extension: ".yaml",
	Render: func(snap assetstore.Snapshot) ([]byte, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return buf.Bytes(), nil
	},
}

// JSON renders the snapshot as indented JSON
var JSON = &ReportFormat{
	Name:      "json",
	Extension: ".json",
	Render: func(snap assetstore.Snapshot) ([]byte, error) {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json report: %w", err)
		}
		return append(data, '\n'), nil
	},
}

func init() {
	mustRegister(YAML)
	mustRegister(JSON)
}
