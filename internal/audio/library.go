// Package audio resolves announcement clips to audio files and plays them
// through an in-process speaker or an external command-line player.
package audio

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/banglasoft/shomoy/internal/clip"
	"github.com/banglasoft/shomoy/internal/pack"
)

// Library resolves clip IDs to audio files inside a clips directory.
// The default filename table can be overridden per clip by a voice pack
// manifest located in the directory.
type Library struct {
	dir   string
	names map[clip.ID]string
}

// NewLibrary opens the clips directory, creating it if absent, and applies
// any voice pack manifest found there.
func NewLibrary(dir string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dir = expandPath(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create clips directory %s: %w", dir, err)
	}

	names := maps.Clone(clip.DefaultFilenames)

	manifest, err := pack.Load(dir)
	if err != nil {
		logger.Warn("ignoring invalid voice pack manifest", "dir", dir, "error", err)
	} else if manifest != nil {
		overrides, unknown := manifest.Overrides()
		for _, name := range unknown {
			logger.Warn("voice pack names unknown clip", "clip", name)
		}
		maps.Copy(names, overrides)
		logger.Debug("loaded voice pack", "name", manifest.Name, "overrides", len(overrides))
	}

	return &Library{dir: dir, names: names}, nil
}

// Dir returns the absolute clips directory.
func (l *Library) Dir() string {
	return l.dir
}

// Path resolves a clip ID to its file path. The second return value is
// false for unknown clip IDs.
func (l *Library) Path(id clip.ID) (string, bool) {
	name, ok := l.names[id]
	if !ok {
		return "", false
	}
	return filepath.Join(l.dir, name), true
}

// Missing returns the filenames of required clips that have no backing file,
// in the stable order of clip.Required. An empty result means the preflight
// check passes.
func (l *Library) Missing() []string {
	var missing []string
	for _, id := range clip.Required() {
		path, ok := l.Path(id)
		if !ok {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, filepath.Base(path))
		}
	}
	return missing
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
