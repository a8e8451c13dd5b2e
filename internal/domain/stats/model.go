package stats

// WeeklyStat holds one player's counters for a single week of a season.
// Rows are created and updated by the external stats sync; this service
// only reads them. TotalPoints is precomputed by the sync.
type WeeklyStat struct {
	PlayerID int64
	Week     int
	Year     int

	PassingYards      int
	PassingTouchdowns int
	Interceptions     int

	RushingYards      int
	RushingTouchdowns int
	Fumbles           int

	ReceivingYards      int
	ReceivingTouchdowns int

	FieldGoalsUnder40 int
	FieldGoals40to49  int
	FieldGoals50Plus  int
	ExtraPoints       int

	Sacks                  int
	DefensiveInterceptions int
	FumblesRecovered       int
	DefensiveTouchdowns    int
	PointsAllowed          int

	TotalPoints float64
}
