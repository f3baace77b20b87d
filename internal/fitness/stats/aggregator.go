package stats

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/2beens/traintrack/internal/fitness/sections"
	"github.com/2beens/traintrack/internal/fitness/workouts"
)

// SectionProgress pairs the completed set count of a section within a
// week window against its weekly target.
type SectionProgress struct {
	SectionID     int        `json:"sectionId"`
	Name          string     `json:"name"`
	TargetSets    int        `json:"targetSets"`
	CompletedSets int        `json:"completedSets"`
	Percentage    int        `json:"percentage"`
	LastWorkout   *time.Time `json:"lastWorkout,omitempty"`
}

// TrendEntry is a single week in the trend series. It marshals flat:
// the per-exercise sums appear as top level keys next to week and total.
type TrendEntry struct {
	Week      string
	WeekStart time.Time
	Total     int
	Exercises map[string]int
}

func (e TrendEntry) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(e.Exercises)+2)
	for k, v := range e.Exercises {
		flat[k] = v
	}
	flat["week"] = e.Week
	flat["total"] = e.Total
	return json.Marshal(flat)
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ExerciseKey derives the trend series key for an exercise name:
// lower-cased, whitespace runs collapsed to a single underscore.
func ExerciseKey(name string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// SectionProgressForWindow computes the per-section progress view over
// the given [from, to] window (to is normalized to end of day).
//
// A section participates if its week start falls within the window, or
// if it has at least one workout within the window. CompletedSets sums
// the sets of the section's workouts inside the window; LastWorkout is
// the newest workout of the section regardless of the window.
func SectionProgressForWindow(
	allSections []sections.Section,
	allWorkouts []workouts.Workout,
	from, to time.Time,
) []SectionProgress {
	to = EndOfDay(to)

	inWindow := func(t time.Time) bool {
		return !t.Before(from) && !t.After(to)
	}

	section2completed := make(map[int]int)
	section2last := make(map[int]time.Time)
	section2hasWindowed := make(map[int]bool)
	for _, w := range allWorkouts {
		if inWindow(w.CreatedAt) {
			section2completed[w.SectionID] += w.Sets
			section2hasWindowed[w.SectionID] = true
		}
		if w.CreatedAt.After(section2last[w.SectionID]) {
			section2last[w.SectionID] = w.CreatedAt
		}
	}

	progress := make([]SectionProgress, 0, len(allSections))
	for _, s := range allSections {
		if !inWindow(s.WeekStart) && !section2hasWindowed[s.ID] {
			continue
		}

		completed := section2completed[s.ID]
		percentage := 0
		if s.TargetSets > 0 {
			percentage = int(math.Round(float64(completed) / float64(s.TargetSets) * 100))
		}

		p := SectionProgress{
			SectionID:     s.ID,
			Name:          s.Name,
			TargetSets:    s.TargetSets,
			CompletedSets: completed,
			Percentage:    percentage,
		}
		if last, ok := section2last[s.ID]; ok {
			p.LastWorkout = &last
		}
		progress = append(progress, p)
	}

	return progress
}

// WeeklyTrend produces one entry per week from startWeek through
// endWeek inclusive, in chronological order. Weeks with no workouts
// still get a zero-total entry. Per-exercise keys are computed for each
// week independently; workouts with an empty exercise name count only
// towards the week total.
func WeeklyTrend(allWorkouts []workouts.Workout, startWeek, endWeek time.Time) []TrendEntry {
	startWeek = StartOfWeek(startWeek)
	endWeek = StartOfWeek(endWeek)

	var series []TrendEntry
	for weekStart := startWeek; !weekStart.After(endWeek); weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := EndOfDay(weekStart.AddDate(0, 0, 6))

		entry := TrendEntry{
			Week:      "Week of " + weekStart.Format("Jan 2"),
			WeekStart: weekStart,
			Exercises: make(map[string]int),
		}
		for _, w := range allWorkouts {
			if w.CreatedAt.Before(weekStart) || w.CreatedAt.After(weekEnd) {
				continue
			}
			entry.Total += w.Sets
			if key := ExerciseKey(w.Exercise); key != "" {
				entry.Exercises[key] += w.Sets
			}
		}
		series = append(series, entry)
	}

	return series
}
