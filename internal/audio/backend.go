package audio

import (
	"errors"
	"log/slog"

	"github.com/banglasoft/shomoy/internal/config"
)

// ErrNoBackend indicates that no playback mechanism is available.
var ErrNoBackend = errors.New("no audio backend available")

// Backend plays a single audio file. Play blocks until the clip has finished,
// so a sequence of calls plays clips back-to-back.
type Backend interface {
	Play(path string) error
	Close() error
}

// Detect selects a playback backend according to the configuration.
// In auto mode the in-process speaker is preferred; if the audio device
// cannot be opened, the external command players are probed instead.
// Returns ErrNoBackend (possibly wrapped) when nothing can play audio.
func Detect(cfg *config.AudioConfig, logger *slog.Logger) (Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case config.BackendSpeaker:
		return NewSpeaker(cfg.Volume, logger)

	case config.BackendCommand:
		return NewCommandPlayer(cfg.PlayerCommand, logger)

	default: // auto
		sp, err := NewSpeaker(cfg.Volume, logger)
		if err == nil {
			return sp, nil
		}
		logger.Warn("speaker unavailable, probing command players", "error", err)

		cp, cmdErr := NewCommandPlayer(cfg.PlayerCommand, logger)
		if cmdErr != nil {
			return nil, ErrNoBackend
		}
		return cp, nil
	}
}
