package tiebreaker

import "context"

// Repository describes tie-breaker prediction persistence needs.
type Repository interface {
	ListBySchedules(ctx context.Context, scheduleIDs []int64) ([]Prediction, error)
	ListByUserAndSchedules(ctx context.Context, userID string, scheduleIDs []int64) ([]Prediction, error)
	Upsert(ctx context.Context, item Prediction) error
}
