package audio

import (
	"context"
	"log/slog"
	"os"

	"github.com/banglasoft/shomoy/internal/clip"
)

// Sequencer plays ordered clip sequences through a backend. Each clip plays
// to completion before the next starts.
type Sequencer struct {
	lib     *Library
	backend Backend
	logger  *slog.Logger
}

// Result records the outcome of one announcement.
type Result struct {
	Played  []clip.ID
	Skipped []clip.ID
}

// NewSequencer creates a sequencer playing clips from lib through backend.
func NewSequencer(lib *Library, backend Backend, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer{lib: lib, backend: backend, logger: logger}
}

// PlaySequence plays each clip in order. A missing file or playback failure
// is logged and skipped; the rest of the sequence continues. Cancellation is
// observed between clips, never mid-clip.
func (s *Sequencer) PlaySequence(ctx context.Context, ids []clip.ID) Result {
	var res Result

	for _, id := range ids {
		if ctx.Err() != nil {
			return res
		}

		path, ok := s.lib.Path(id)
		if !ok {
			s.logger.Warn("unknown clip", "clip", id)
			res.Skipped = append(res.Skipped, id)
			continue
		}

		if _, err := os.Stat(path); err != nil {
			s.logger.Warn("audio file not found", "clip", id, "path", path)
			res.Skipped = append(res.Skipped, id)
			continue
		}

		if err := s.backend.Play(path); err != nil {
			s.logger.Warn("failed to play clip", "clip", id, "error", err)
			res.Skipped = append(res.Skipped, id)
			continue
		}

		res.Played = append(res.Played, id)
	}

	return res
}
