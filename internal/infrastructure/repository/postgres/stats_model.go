package postgres

import "github.com/gridironpool/gridiron-pool/internal/domain/stats"

type weeklyStatTableModel struct {
	PlayerID int64 `db:"player_id"`
	Week     int   `db:"week"`
	Year     int   `db:"year"`

	PassingYards      int `db:"passing_yards"`
	PassingTouchdowns int `db:"passing_touchdowns"`
	Interceptions     int `db:"interceptions"`

	RushingYards      int `db:"rushing_yards"`
	RushingTouchdowns int `db:"rushing_touchdowns"`
	Fumbles           int `db:"fumbles"`

	ReceivingYards      int `db:"receiving_yards"`
	ReceivingTouchdowns int `db:"receiving_touchdowns"`

	FieldGoalsUnder40 int `db:"field_goals_under_40"`
	FieldGoals40to49  int `db:"field_goals_40_49"`
	FieldGoals50Plus  int `db:"field_goals_50_plus"`
	ExtraPoints       int `db:"extra_points"`

	Sacks                  int `db:"sacks"`
	DefensiveInterceptions int `db:"defensive_interceptions"`
	FumblesRecovered       int `db:"fumbles_recovered"`
	DefensiveTouchdowns    int `db:"defensive_touchdowns"`
	PointsAllowed          int `db:"points_allowed"`

	TotalPoints float64 `db:"total_points"`
}

func weeklyStatFromRow(row weeklyStatTableModel) stats.WeeklyStat {
	return stats.WeeklyStat{
		PlayerID:               row.PlayerID,
		Week:                   row.Week,
		Year:                   row.Year,
		PassingYards:           row.PassingYards,
		PassingTouchdowns:      row.PassingTouchdowns,
		Interceptions:          row.Interceptions,
		RushingYards:           row.RushingYards,
		RushingTouchdowns:      row.RushingTouchdowns,
		Fumbles:                row.Fumbles,
		ReceivingYards:         row.ReceivingYards,
		ReceivingTouchdowns:    row.ReceivingTouchdowns,
		FieldGoalsUnder40:      row.FieldGoalsUnder40,
		FieldGoals40to49:       row.FieldGoals40to49,
		FieldGoals50Plus:       row.FieldGoals50Plus,
		ExtraPoints:            row.ExtraPoints,
		Sacks:                  row.Sacks,
		DefensiveInterceptions: row.DefensiveInterceptions,
		FumblesRecovered:       row.FumblesRecovered,
		DefensiveTouchdowns:    row.DefensiveTouchdowns,
		PointsAllowed:          row.PointsAllowed,
		TotalPoints:            row.TotalPoints,
	}
}
