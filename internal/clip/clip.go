// Package clip defines the vocabulary of audio clips used for spoken time
// announcements and the mapping from wall-clock time to clip sequences.
package clip

import "fmt"

// ID identifies a single pre-recorded audio clip.
type ID string

// Intro is the opening phrase played before every announcement
// ("ekhon somoy" - "the time is now").
const Intro ID = "intro"

// Period is a named segment of the 24-hour day.
type Period string

// The six periods of the day, in chronological order starting at dawn.
const (
	PeriodDawn    Period = "dawn"    // bhor
	PeriodMorning Period = "morning" // sokal
	PeriodNoon    Period = "noon"    // dupur
	PeriodEvening Period = "evening" // bikal
	PeriodDusk    Period = "dusk"    // shondha
	PeriodNight   Period = "night"   // rat
)

// Periods lists all periods in chronological order.
var Periods = []Period{
	PeriodDawn, PeriodMorning, PeriodNoon,
	PeriodEvening, PeriodDusk, PeriodNight,
}

// periodByHour maps each 24-hour value to its period of day.
// Every hour appears exactly once.
var periodByHour = [24]Period{
	0: PeriodNight, 1: PeriodNight, 2: PeriodNight, 3: PeriodNight,
	4: PeriodDawn, 5: PeriodDawn,
	6: PeriodMorning, 7: PeriodMorning, 8: PeriodMorning,
	9: PeriodMorning, 10: PeriodMorning, 11: PeriodMorning,
	12: PeriodNoon, 13: PeriodNoon, 14: PeriodNoon, 15: PeriodNoon,
	16: PeriodEvening, 17: PeriodEvening,
	18: PeriodDusk, 19: PeriodDusk,
	20: PeriodNight, 21: PeriodNight, 22: PeriodNight, 23: PeriodNight,
}

// PeriodForHour returns the period of day for a 24-hour value.
func PeriodForHour(hour int) Period {
	return periodByHour[((hour%24)+24)%24]
}

// Clip returns the clip ID naming this period.
func (p Period) Clip() ID {
	return ID("period_" + string(p))
}

// HourClip returns the clip ID for a 12-hour value (1-12).
func HourClip(hour12 int) ID {
	return ID(fmt.Sprintf("hour_%d", hour12))
}

// MinuteClip returns the clip ID for a rounded minute (15, 30 or 45).
func MinuteClip(minute int) ID {
	return ID(fmt.Sprintf("minute_%d", minute))
}

// DefaultFilenames maps each clip ID to its default audio asset filename.
// A voice pack manifest in the clips directory may override individual
// entries.
var DefaultFilenames = map[ID]string{
	Intro: "ekhon_somoy.wav",

	// Hours (the "ta" suffix is part of the recording)
	"hour_1":  "ekta.wav",
	"hour_2":  "duita.wav",
	"hour_3":  "tinta.wav",
	"hour_4":  "charta.wav",
	"hour_5":  "panchta.wav",
	"hour_6":  "choyta.wav",
	"hour_7":  "shatta.wav",
	"hour_8":  "atta.wav",
	"hour_9":  "noyta.wav",
	"hour_10": "doshta.wav",
	"hour_11": "egarota.wav",
	"hour_12": "barota.wav",

	// Minutes
	"minute_15": "poner_minute.wav",
	"minute_30": "trish_minute.wav",
	"minute_45": "poytallish_minute.wav",

	// Periods of day
	"period_dawn":    "bhor.wav",
	"period_morning": "sokal.wav",
	"period_noon":    "dupur.wav",
	"period_evening": "bikal.wav",
	"period_dusk":    "shondha.wav",
	"period_night":   "rat.wav",
}

// Required returns every clip ID an announcement can reference, in a stable
// order. The preflight check verifies all of these resolve to existing files.
func Required() []ID {
	ids := make([]ID, 0, len(DefaultFilenames))
	ids = append(ids, Intro)
	for h := 1; h <= 12; h++ {
		ids = append(ids, HourClip(h))
	}
	for _, m := range []int{15, 30, 45} {
		ids = append(ids, MinuteClip(m))
	}
	for _, p := range Periods {
		ids = append(ids, p.Clip())
	}
	return ids
}
