package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// ListActive returns players with a sync timestamp and a team assignment.
	ListActive(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	ListByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
}
