package stats

import "context"

// Repository describes weekly stat persistence needs from use cases.
type Repository interface {
	ListByWeek(ctx context.Context, week, year int) ([]WeeklyStat, error)
	ListByYear(ctx context.Context, year int) ([]WeeklyStat, error)
	ListByPlayerAndYear(ctx context.Context, playerID int64, year int) ([]WeeklyStat, error)
}
