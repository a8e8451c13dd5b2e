package prize

import "context"

// Repository describes prize bookkeeping persistence needs.
type Repository interface {
	ListPots(ctx context.Context) ([]Pot, error)
	ListWinners(ctx context.Context, year int) ([]WeeklyWinner, error)
	// UpsertWinner replaces the holder of (year, week, place).
	UpsertWinner(ctx context.Context, item WeeklyWinner) error
	ListYearEndResults(ctx context.Context, year int) ([]YearEndResult, error)
	// UpsertYearEndResult replaces the row for (year, game type, user).
	UpsertYearEndResult(ctx context.Context, item YearEndResult) error
}
