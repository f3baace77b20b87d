package stats

import "time"

// StartOfWeek returns the Monday midnight of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// time.Weekday: Sunday = 0, Monday = 1, ..., Saturday = 6
	daysBack := int(day.Weekday()) - 1
	if daysBack < 0 {
		daysBack = 6
	}
	return day.AddDate(0, 0, -daysBack)
}

// EndOfDay normalizes t to the last nanosecond of its calendar day.
func EndOfDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// CurrentWeekWindow returns the [Monday, Sunday end-of-day] window of
// the week containing now.
func CurrentWeekWindow(now time.Time) (from, to time.Time) {
	from = StartOfWeek(now)
	to = EndOfDay(from.AddDate(0, 0, 6))
	return from, to
}

// LastNWeeks returns the week starts of the n weeks ending with the
// week containing now, oldest first.
func LastNWeeks(now time.Time, n int) (startWeek, endWeek time.Time) {
	endWeek = StartOfWeek(now)
	startWeek = endWeek.AddDate(0, 0, -7*(n-1))
	return startWeek, endWeek
}
