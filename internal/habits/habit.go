package habits

import "time"

// Frequency can be one of:
//   - daily
//   - weekly
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

type Habit struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int       `json:"userId"`
}

// Completion marks a habit as done for a calendar day. The day is
// normalized to start of day on write; two completions differing only
// in time of day are the same event.
type Completion struct {
	ID      int       `json:"id"`
	HabitID int       `json:"habitId"`
	Day     time.Time `json:"day"`
	UserID  int       `json:"userId"`
}

// CompletionDays extracts the days of the given completions, keeping
// their order.
func CompletionDays(completions []Completion) []time.Time {
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		days = append(days, c.Day)
	}
	return days
}
