package alert

import "context"

// Repository describes alert banner persistence needs.
type Repository interface {
	Get(ctx context.Context) (Alert, bool, error)
	// Save inserts the singleton row when absent, otherwise overwrites it.
	Save(ctx context.Context, item Alert) error
}
