package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	Get(ctx context.Context, year int) (Season, bool, error)
	Create(ctx context.Context, item Season, weeks []Week) error
	ListWeeks(ctx context.Context, year int) ([]Week, error)
}
