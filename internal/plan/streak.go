package plan

import "time"

// ReadToday reports whether the most recent completion timestamp falls on
// the same calendar date as now, in now's location.
func ReadToday(timestamps []time.Time, now time.Time) bool {
	if len(timestamps) == 0 {
		return false
	}
	return sameDay(timestamps[len(timestamps)-1], now)
}

// CurrentStreak counts consecutive calendar days with a recorded completion,
// ending today or yesterday. A gap before today breaks the streak to zero.
func CurrentStreak(timestamps []time.Time, now time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	last := timestamps[len(timestamps)-1].In(now.Location())
	switch daysBetween(last, now) {
	case 0, 1:
	default:
		return 0
	}

	streak := 1
	for i := len(timestamps) - 2; i >= 0; i-- {
		gap := daysBetween(timestamps[i].In(now.Location()), timestamps[i+1].In(now.Location()))
		if gap != 1 {
			break
		}
		streak++
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysBetween(earlier, later time.Time) int {
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()
	start := time.Date(ey, em, ed, 0, 0, 0, 0, later.Location())
	end := time.Date(ly, lm, ld, 0, 0, 0, 0, later.Location())
	return int(end.Sub(start).Hours() / 24)
}
