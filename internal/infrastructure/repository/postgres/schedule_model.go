package postgres

import (
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
)

type scheduleTableModel struct {
	ID           int64     `db:"id"`
	Week         int       `db:"week"`
	Year         int       `db:"year"`
	HomeTeamID   int64     `db:"home_team_id"`
	AwayTeamID   int64     `db:"away_team_id"`
	Kickoff      time.Time `db:"kickoff"`
	HomeScore    *int      `db:"home_score"`
	AwayScore    *int      `db:"away_score"`
	TieBreakGame bool      `db:"tie_break_game"`
}

type scheduleInsertModel struct {
	Week         int       `db:"week"`
	Year         int       `db:"year"`
	HomeTeamID   int64     `db:"home_team_id"`
	AwayTeamID   int64     `db:"away_team_id"`
	Kickoff      time.Time `db:"kickoff"`
	TieBreakGame bool      `db:"tie_break_game"`
}

func scheduleFromRow(row scheduleTableModel) schedule.Game {
	return schedule.Game{
		ID:           row.ID,
		Week:         row.Week,
		Year:         row.Year,
		HomeTeamID:   row.HomeTeamID,
		AwayTeamID:   row.AwayTeamID,
		Kickoff:      row.Kickoff,
		HomeScore:    row.HomeScore,
		AwayScore:    row.AwayScore,
		TieBreakGame: row.TieBreakGame,
	}
}
