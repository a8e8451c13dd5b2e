package schedule

import (
	"fmt"
	"time"
)

// Game is a scheduled matchup between two teams for a week of a season.
// Kickoff is the source of truth for lock timing; final scores feed the
// tie-breaker actual totals once the tie-break flag is set.
type Game struct {
	ID           int64
	Week         int
	Year         int
	HomeTeamID   int64
	AwayTeamID   int64
	Kickoff      time.Time
	HomeScore    *int
	AwayScore    *int
	TieBreakGame bool
}

// ActualTotal is the combined final score, treating unset scores as zero.
func (g Game) ActualTotal() int {
	total := 0
	if g.HomeScore != nil {
		total += *g.HomeScore
	}
	if g.AwayScore != nil {
		total += *g.AwayScore
	}
	return total
}

func (g Game) Validate() error {
	if g.Week < 1 || g.Week > 18 {
		return fmt.Errorf("game week must be within 1-18")
	}
	if g.Year <= 0 {
		return fmt.Errorf("game year is required")
	}
	if g.HomeTeamID <= 0 || g.AwayTeamID <= 0 {
		return fmt.Errorf("game requires both team ids")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("game teams must differ")
	}
	if g.Kickoff.IsZero() {
		return fmt.Errorf("game kickoff is required")
	}

	return nil
}

// TeamLockStatus is the derived lock state of one team for a week. It is
// recomputed per call and never persisted. A bye team carries ScheduleID 0.
type TeamLockStatus struct {
	TeamID     int64
	Locked     bool
	OpponentID int64
	ScheduleID int64
}
