package user

import "context"

// Repository describes user profile persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	// ListEligible returns paid users, additionally requiring the survival
	// flag when requireSurvival is set.
	ListEligible(ctx context.Context, requireSurvival bool) ([]User, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Update(ctx context.Context, item User) error
	SetFlags(ctx context.Context, userID string, paid, survival bool) error
	UserNameTaken(ctx context.Context, userName, excludeUserID string) (bool, error)
	EmailTaken(ctx context.Context, email, excludeUserID string) (bool, error)
}
