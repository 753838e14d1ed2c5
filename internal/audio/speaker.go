package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// speakerSampleRate is the fixed output rate; clips recorded at other rates
// are resampled on playback.
const speakerSampleRate = beep.SampleRate(44100)

// Speaker plays audio files in-process through the system audio device.
// Decoded clips are cached so repeated announcements don't re-read disk.
type Speaker struct {
	logger *slog.Logger
	volume float64 // 0.0 to 1.0

	cacheMu sync.RWMutex
	cache   map[string]*beep.Buffer
}

// NewSpeaker opens the audio device. volume is a percentage (0-100).
func NewSpeaker(volume int, logger *slog.Logger) (*Speaker, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bufferSize := speakerSampleRate.N(time.Millisecond * 100)
	if err := speaker.Init(speakerSampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	logger.Debug("speaker initialized", "sample_rate", speakerSampleRate)

	return &Speaker{
		logger: logger,
		volume: float64(volume) / 100.0,
		cache:  make(map[string]*beep.Buffer),
	}, nil
}

// Play plays a sound file and blocks until it has finished.
// Supports WAV, OGG, and MP3 formats.
func (s *Speaker) Play(path string) error {
	s.cacheMu.RLock()
	buffer, ok := s.cache[path]
	s.cacheMu.RUnlock()

	if !ok {
		var err error
		buffer, err = s.loadSound(path)
		if err != nil {
			return err
		}

		s.cacheMu.Lock()
		s.cache[path] = buffer
		s.cacheMu.Unlock()
	}

	return s.playBuffer(buffer)
}

// loadSound loads and decodes a sound file into a buffer.
func (s *Speaker) loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	return buffer, nil
}

// playBuffer plays a buffered sound to completion.
func (s *Speaker) playBuffer(buffer *beep.Buffer) error {
	var streamer beep.Streamer = buffer.Streamer(0, buffer.Len())

	if buffer.Format().SampleRate != speakerSampleRate {
		streamer = beep.Resample(4, buffer.Format().SampleRate, speakerSampleRate, streamer)
	}

	if s.volume < 1.0 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   volumeGain(s.volume),
			Silent:   s.volume == 0,
		}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}

// Invalidate removes a path from the decode cache, forcing a reload on the
// next play. Called by the clip watcher when a file changes on disk.
func (s *Speaker) Invalidate(path string) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	delete(s.cache, path)
}

// Close stops playback and releases the audio device.
func (s *Speaker) Close() error {
	speaker.Close()

	s.cacheMu.Lock()
	s.cache = make(map[string]*beep.Buffer)
	s.cacheMu.Unlock()

	s.logger.Debug("speaker closed")
	return nil
}

// volumeGain converts a linear volume (0-1) to the exponent the Volume
// effect expects (base 2, so 0.5 is one power quieter).
func volumeGain(volume float64) float64 {
	if volume <= 0 {
		return -10
	}
	return math.Log2(volume)
}
