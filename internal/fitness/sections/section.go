package sections

import "time"

// Section is a named grouping of workouts (e.g. a muscle group) with a
// weekly target set count. A section with Archived set to false and a
// WeekStart within a given week acts as that week's instance; the same
// shape doubles as a reusable library template. The two are told apart
// only by whether WeekStart falls into the queried range.
type Section struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	TargetSets int       `json:"targetSets"`
	WeekStart  time.Time `json:"weekStart"`
	Archived   bool      `json:"archived"`
	UserID     int       `json:"userId"`
}
