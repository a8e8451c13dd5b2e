package tiebreaker

import "fmt"

// Prediction is a user's guess at the combined final score of a designated
// tie-break game. One row per (user, schedule).
type Prediction struct {
	UserID         string
	ScheduleID     int64
	PredictedTotal int
}

func (p Prediction) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("prediction user id is required")
	}
	if p.ScheduleID <= 0 {
		return fmt.Errorf("prediction schedule id must be positive")
	}
	if p.PredictedTotal < 0 {
		return fmt.Errorf("prediction total cannot be negative")
	}

	return nil
}
