package clip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 9, hour, minute, 0, 0, time.Local)
}

func TestSlotAtRounding(t *testing.T) {
	tests := []struct {
		minute int
		want   int
	}{
		{0, 0},
		{7, 0},
		{8, 15},
		{22, 15},
		{23, 30},
		{37, 30},
		{38, 45},
		{52, 45},
	}

	for _, tt := range tests {
		slot := SlotAt(at(10, tt.minute))
		assert.Equal(t, tt.want, slot.Minute, "minute %d", tt.minute)
		assert.Equal(t, 10, slot.Hour24, "minute %d must not advance the hour", tt.minute)
	}
}

func TestSlotAtRollover(t *testing.T) {
	tests := []struct {
		name       string
		hour       int
		minute     int
		wantHour24 int
		wantHour12 int
	}{
		{"plain rollover", 10, 53, 11, 11},
		{"last minute of hour", 10, 59, 11, 11},
		{"midnight wrap", 23, 55, 0, 12},
		{"noon wrap", 11, 55, 12, 12},
		{"twelve to one", 12, 55, 13, 1},
		{"midnight itself", 0, 55, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := SlotAt(at(tt.hour, tt.minute))
			assert.Equal(t, 0, slot.Minute)
			assert.Equal(t, tt.wantHour24, slot.Hour24)
			assert.Equal(t, tt.wantHour12, slot.Hour12)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		hour int
		min  int
		want []ID
	}{
		{
			"on the hour, no minute clip",
			7, 5,
			[]ID{Intro, "period_morning", "hour_7"},
		},
		{
			"quarter past",
			7, 10,
			[]ID{Intro, "period_morning", "hour_7", "minute_15"},
		},
		{
			"quarter to next hour",
			14, 40,
			[]ID{Intro, "period_noon", "hour_2", "minute_45"},
		},
		{
			"rollover across midnight picks night twelve",
			23, 55,
			[]ID{Intro, "period_night", "hour_12"},
		},
		{
			"rollover into noon picks the new period",
			11, 55,
			[]ID{Intro, "period_noon", "hour_12"},
		},
		{
			"half past dusk",
			18, 25,
			[]ID{Intro, "period_dusk", "hour_6", "minute_30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(at(tt.hour, tt.min)))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	instant := at(16, 42)
	first := Resolve(instant)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Resolve(instant))
	}
}

func TestResolveSequenceLength(t *testing.T) {
	for minute := 0; minute < 60; minute++ {
		seq := Resolve(at(9, minute))
		slot := SlotAt(at(9, minute))
		if slot.Minute == 0 {
			assert.Len(t, seq, 3, "minute %d", minute)
		} else {
			assert.Len(t, seq, 4, "minute %d", minute)
			assert.Equal(t, MinuteClip(slot.Minute), seq[3], "minute %d", minute)
		}
	}
}
