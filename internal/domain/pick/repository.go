package pick

import (
	"context"

	"github.com/gridironpool/gridiron-pool/internal/domain/player"
)

// Repository describes pick persistence needs from use cases.
type Repository interface {
	ListByWeek(ctx context.Context, week, year int, gameType GameType) ([]Pick, error)
	ListByUserAndWeek(ctx context.Context, userID string, week, year int, gameType GameType) ([]Pick, error)
	ListByYear(ctx context.Context, year int, gameType GameType) ([]Pick, error)
	Get(ctx context.Context, userID string, week, year int, gameType GameType, position player.Position) (Pick, bool, error)
	Insert(ctx context.Context, item Pick) error
	InsertBatch(ctx context.Context, items []Pick) error
	Delete(ctx context.Context, pickID int64) error
	DeleteByUserPosition(ctx context.Context, userID string, year int, gameType GameType, position player.Position) error
}
