// Package scheduler drives time announcements on clock-aligned boundaries.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// AnnounceFunc performs one announcement for the given instant.
type AnnounceFunc func(ctx context.Context, now time.Time)

// defaultChunk bounds how long a sleep can run before cancellation is
// rechecked.
const defaultChunk = 10 * time.Second

// Scheduler sleeps until each announcement boundary and invokes the
// announce callback. It runs on a single goroutine; cancellation is
// observed between sleep chunks, never mid-sleep for longer than one chunk.
type Scheduler struct {
	interval time.Duration
	announce AnnounceFunc
	logger   *slog.Logger

	// injectable for tests
	now   func() time.Time
	chunk time.Duration
}

// New creates a scheduler announcing every intervalMinutes (15, 30 or 60).
func New(intervalMinutes int, announce AnnounceFunc, logger *slog.Logger) (*Scheduler, error) {
	switch intervalMinutes {
	case 15, 30, 60:
	default:
		return nil, fmt.Errorf("invalid interval %d: must be 15, 30 or 60", intervalMinutes)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		interval: time.Duration(intervalMinutes) * time.Minute,
		announce: announce,
		logger:   logger,
		now:      time.Now,
		chunk:    defaultChunk,
	}, nil
}

// Run announces once immediately, then on every clock-aligned boundary until
// ctx is cancelled. Cancellation is a clean shutdown, not an error.
func (s *Scheduler) Run(ctx context.Context) error {
	s.announce(ctx, s.now())

	for {
		next := NextBoundary(s.now(), s.interval)
		s.logger.Debug("sleeping until next announcement", "at", next.Format("15:04"))

		if !s.sleepUntil(ctx, next) {
			s.logger.Info("scheduler stopped")
			return nil
		}

		s.announce(ctx, s.now())
	}
}

// NextBoundary returns the next multiple of interval past the top of the
// hour after now. An instant exactly on a boundary yields the following one.
func NextBoundary(now time.Time, interval time.Duration) time.Time {
	mins := int(interval / time.Minute)
	next := (now.Minute()/mins + 1) * mins

	top := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	return top.Add(time.Duration(next) * time.Minute)
}

// sleepUntil sleeps in bounded chunks so cancellation is observed within one
// chunk's latency. Reports whether the boundary was reached.
func (s *Scheduler) sleepUntil(ctx context.Context, t time.Time) bool {
	for {
		remaining := t.Sub(s.now())
		if remaining <= 0 {
			return true
		}

		timer := time.NewTimer(min(remaining, s.chunk))
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}
