package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

// UserService serves member profiles.
type UserService struct {
	userRepo user.Repository
}

func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Profile(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Profile")
	defer span.End()

	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u, ok, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("load user: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return u, nil
}

func (s *UserService) ByEmail(ctx context.Context, email string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ByEmail")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	u, ok, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("load user by email: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: no user for email", ErrNotFound)
	}
	return u, nil
}

// UpdateProfile changes the member-editable fields. User name and email
// must stay unique across the league.
func (s *UserService) UpdateProfile(ctx context.Context, userID, userName, teamName, email string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.UpdateProfile")
	defer span.End()

	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	userName = strings.TrimSpace(userName)
	teamName = strings.TrimSpace(teamName)
	email = strings.TrimSpace(email)
	if userName == "" {
		return user.User{}, fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	u, ok, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("load user: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if taken, err := s.userRepo.UserNameTaken(ctx, userName, userID); err != nil {
		return user.User{}, fmt.Errorf("check user name: %w", err)
	} else if taken {
		return user.User{}, fmt.Errorf("%w: user name %q is taken", ErrInvalidInput, userName)
	}
	if taken, err := s.userRepo.EmailTaken(ctx, email, userID); err != nil {
		return user.User{}, fmt.Errorf("check email: %w", err)
	} else if taken {
		return user.User{}, fmt.Errorf("%w: email is already registered", ErrInvalidInput)
	}

	u.UserName = userName
	u.TeamName = teamName
	u.Email = email
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
