package clip

import "time"

// Slot is a wall-clock instant bucketed to announcement granularity.
type Slot struct {
	Hour24 int // 0-23, after minute rollover
	Hour12 int // 1-12, after minute rollover
	Minute int // 0, 15, 30 or 45
}

// SlotAt buckets t into an announcement slot. The minute is rounded to the
// nearest quarter hour: minutes 53-59 round forward to the next hour's zero
// mark, advancing both hour values. The 12-hour value wraps 12 to 1 and the
// 24-hour value wraps 23 to 0.
func SlotAt(t time.Time) Slot {
	hour24 := t.Hour()
	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}

	var minute int
	switch m := t.Minute(); {
	case m < 8:
		minute = 0
	case m < 23:
		minute = 15
	case m < 38:
		minute = 30
	case m < 53:
		minute = 45
	default:
		minute = 0
		hour12 = hour12%12 + 1
		hour24 = (hour24 + 1) % 24
	}

	return Slot{Hour24: hour24, Hour12: hour12, Minute: minute}
}

// Resolve returns the ordered clip sequence announcing t:
// intro, period of day, hour, and a minute clip when the rounded minute is
// not on the hour. The period lookup uses the hour after rollover, so 23:55
// announces as night, twelve o'clock.
func Resolve(t time.Time) []ID {
	slot := SlotAt(t)

	ids := []ID{
		Intro,
		PeriodForHour(slot.Hour24).Clip(),
		HourClip(slot.Hour12),
	}
	if slot.Minute != 0 {
		ids = append(ids, MinuteClip(slot.Minute))
	}
	return ids
}
