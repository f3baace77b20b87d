package habits

import "time"

const dayLayout = "2006-01-02"

// StartOfDay normalizes t to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentStreak returns the number of consecutive calendar days with at
// least one completion, counting backward from today. The walk starts
// at today itself: a day without a completion immediately ends the
// count, so a missing today means streak 0 even if yesterday is there.
// Completions on the same calendar day count once.
func CurrentStreak(completions []time.Time, today time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		days[c.Format(dayLayout)] = struct{}{}
	}

	streak := 0
	for day := StartOfDay(today); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day.Format(dayLayout)]; !ok {
			break
		}
		streak++
	}

	return streak
}
