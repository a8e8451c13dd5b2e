package schedule

import "context"

// Repository describes schedule persistence needs from use cases.
type Repository interface {
	ListByWeek(ctx context.Context, week, year int) ([]Game, error)
	ListTieBreakGames(ctx context.Context, week, year int) ([]Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	Insert(ctx context.Context, game Game) (int64, error)
	Update(ctx context.Context, game Game) error
	Delete(ctx context.Context, gameID int64) error
	SetTieBreak(ctx context.Context, gameID int64, tieBreak bool) error
	UpdateScores(ctx context.Context, gameID int64, homeScore, awayScore *int) error
}
