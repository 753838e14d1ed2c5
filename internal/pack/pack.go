// Package pack loads voice pack manifests. A voice pack is a clips directory
// with an optional pack.yaml describing the recording set and overriding
// default clip filenames, so alternative voices or dialects can ship their
// own file layout.
package pack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banglasoft/shomoy/internal/clip"
)

// ManifestName is the manifest filename looked up inside a clips directory.
const ManifestName = "pack.yaml"

// Manifest describes a voice pack.
type Manifest struct {
	Name     string            `yaml:"name"`
	Language string            `yaml:"language"`
	Voice    string            `yaml:"voice"`
	Clips    map[string]string `yaml:"clips"` // clip ID -> filename override
}

// Load reads the manifest from dir. Returns (nil, nil) when the directory has
// no manifest; a present but unparsable manifest is an error.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}

	return &m, nil
}

// Overrides returns the manifest's filename overrides keyed by clip ID,
// dropping entries for clip IDs the announcer does not know.
func (m *Manifest) Overrides() (map[clip.ID]string, []string) {
	overrides := make(map[clip.ID]string, len(m.Clips))
	var unknown []string

	for name, filename := range m.Clips {
		id := clip.ID(name)
		if _, ok := clip.DefaultFilenames[id]; !ok {
			unknown = append(unknown, name)
			continue
		}
		if filename != "" {
			overrides[id] = filename
		}
	}

	return overrides, unknown
}
