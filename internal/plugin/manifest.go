package plugin

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the conventional manifest file name.
const ManifestFileName = "plugsmith.yaml"

// LoadManifest reads and parses a plugin manifest file.
func LoadManifest(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var opts Options
	if err := dec.Decode(&opts); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &opts, nil
}

// SaveManifest writes the options back out as a manifest file.
func SaveManifest(path string, opts *Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
