package workouts

import "time"

// WeightUnit can be one of:
//   - kg
//   - lbs
type WeightUnit string

const (
	WeightUnitKilos  WeightUnit = "kg"
	WeightUnitPounds WeightUnit = "lbs"
)

func (wu WeightUnit) IsValid() bool {
	switch wu {
	case WeightUnitKilos, WeightUnitPounds:
		return true
	default:
		return false
	}
}

type Workout struct {
	ID        int        `json:"id"`
	SectionID int        `json:"sectionId"`
	Exercise  string     `json:"exercise"`
	Sets      int        `json:"sets"`
	Reps      int        `json:"reps"`
	Weight    float64    `json:"weight"`
	Unit      WeightUnit `json:"unit"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"createdAt"`
	UserID    int        `json:"userId"`
}
