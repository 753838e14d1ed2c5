package audio

import (
	"fmt"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
)

// commandPlayers are the external players probed in order when no override
// is configured. Each entry's flags make the player run quietly and exit
// when the clip ends.
var commandPlayers = [][]string{
	{"aplay", "-q"},
	{"paplay"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// CommandPlayer plays audio files by invoking an external command-line
// player synchronously.
type CommandPlayer struct {
	bin    string
	args   []string
	logger *slog.Logger
}

// NewCommandPlayer finds an external audio player on PATH. When command is
// non-empty it is used verbatim (first field is the binary, the rest are
// flags); otherwise the known players are probed in order.
// Returns ErrNoBackend when no player is found.
func NewCommandPlayer(command string, logger *slog.Logger) (*CommandPlayer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	candidates := commandPlayers
	if command != "" {
		fields := strings.Fields(command)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty player command")
		}
		candidates = [][]string{fields}
	}

	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate[0])
		if err != nil {
			continue
		}
		logger.Debug("using command player", "player", path)
		return &CommandPlayer{
			bin:    path,
			args:   candidate[1:],
			logger: logger,
		}, nil
	}

	return nil, fmt.Errorf("%w: none of the known players found on PATH", ErrNoBackend)
}

// Play runs the player on the given file and waits for it to exit.
func (p *CommandPlayer) Play(path string) error {
	args := append(slices.Clone(p.args), path)
	if err := exec.Command(p.bin, args...).Run(); err != nil {
		return fmt.Errorf("%s failed: %w", p.bin, err)
	}
	return nil
}

// Close is a no-op; the player spawns a fresh process per clip.
func (p *CommandPlayer) Close() error {
	return nil
}

// String returns the resolved player binary, for logging.
func (p *CommandPlayer) String() string {
	return p.bin
}
