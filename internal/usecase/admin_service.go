package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/season"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

// seasonWeekCount covers the 18 playing weeks plus the post-season
// settlement week.
const seasonWeekCount = 19

// AdminService carries the commissioner operations: season setup,
// schedule maintenance, winner bookkeeping, user flags, and site banners.
type AdminService struct {
	seasonRepo   season.Repository
	scheduleRepo schedule.Repository
	prizeRepo    prize.Repository
	userRepo     user.Repository
	alertRepo    alert.Repository
}

func NewAdminService(
	seasonRepo season.Repository,
	scheduleRepo schedule.Repository,
	prizeRepo prize.Repository,
	userRepo user.Repository,
	alertRepo alert.Repository,
) *AdminService {
	return &AdminService{
		seasonRepo:   seasonRepo,
		scheduleRepo: scheduleRepo,
		prizeRepo:    prizeRepo,
		userRepo:     userRepo,
		alertRepo:    alertRepo,
	}
}

// CreateSeason opens a new year: one season row plus a week row for every
// week, each starting seven days after the previous one.
func (s *AdminService) CreateSeason(ctx context.Context, year int, startDate time.Time) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateSeason")
	defer span.End()

	if year <= 0 {
		return fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if startDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if _, ok, err := s.seasonRepo.Get(ctx, year); err != nil {
		return fmt.Errorf("load season: %w", err)
	} else if ok {
		return fmt.Errorf("%w: season %d already exists", ErrInvalidInput, year)
	}

	weeks := make([]season.Week, 0, seasonWeekCount)
	for i := 0; i < seasonWeekCount; i++ {
		weeks = append(weeks, season.Week{
			Year:      year,
			Week:      i + 1,
			StartDate: startDate.AddDate(0, 0, i*7),
		})
	}

	if err := s.seasonRepo.Create(ctx, season.Season{Year: year, StartDate: startDate}, weeks); err != nil {
		return fmt.Errorf("create season: %w", err)
	}
	return nil
}

func (s *AdminService) AddGame(ctx context.Context, game schedule.Game) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.AddGame")
	defer span.End()

	if err := game.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.scheduleRepo.Insert(ctx, game)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	return id, nil
}

func (s *AdminService) UpdateGame(ctx context.Context, game schedule.Game) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpdateGame")
	defer span.End()

	if game.ID <= 0 {
		return fmt.Errorf("%w: schedule id is required", ErrInvalidInput)
	}
	if err := game.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, ok, err := s.scheduleRepo.GetByID(ctx, game.ID); err != nil {
		return fmt.Errorf("load game: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: schedule %d", ErrNotFound, game.ID)
	}

	if err := s.scheduleRepo.Update(ctx, game); err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

func (s *AdminService) DeleteGame(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DeleteGame")
	defer span.End()

	if _, ok, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("load game: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: schedule %d", ErrNotFound, id)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// ToggleTieBreak flips whether a game counts toward weekly tie-breaking.
func (s *AdminService) ToggleTieBreak(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ToggleTieBreak")
	defer span.End()

	game, ok, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: schedule %d", ErrNotFound, id)
	}

	if err := s.scheduleRepo.SetTieBreak(ctx, id, !game.TieBreakGame); err != nil {
		return fmt.Errorf("toggle tie-break flag: %w", err)
	}
	return nil
}

// UpdateFinalScores persists new scores for a game. When neither side
// changed, the write is skipped.
func (s *AdminService) UpdateFinalScores(ctx context.Context, id int64, homeScore, awayScore *int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpdateFinalScores")
	defer span.End()

	game, ok, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: schedule %d", ErrNotFound, id)
	}

	newHome := game.HomeScore
	newAway := game.AwayScore
	changed := false
	if homeScore != nil && !sameScore(game.HomeScore, homeScore) {
		newHome = homeScore
		changed = true
	}
	if awayScore != nil && !sameScore(game.AwayScore, awayScore) {
		newAway = awayScore
		changed = true
	}
	if !changed {
		return nil
	}

	if err := s.scheduleRepo.UpdateScores(ctx, id, newHome, newAway); err != nil {
		return fmt.Errorf("update scores: %w", err)
	}
	return nil
}

func (s *AdminService) UpsertWeeklyWinner(ctx context.Context, winner prize.WeeklyWinner) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpsertWeeklyWinner")
	defer span.End()

	if err := winner.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.prizeRepo.UpsertWinner(ctx, winner); err != nil {
		return fmt.Errorf("save weekly winner: %w", err)
	}
	return nil
}

func (s *AdminService) UpsertYearEndResult(ctx context.Context, result prize.YearEndResult) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpsertYearEndResult")
	defer span.End()

	if err := result.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.prizeRepo.UpsertYearEndResult(ctx, result); err != nil {
		return fmt.Errorf("save year-end result: %w", err)
	}
	return nil
}

func (s *AdminService) SetUserFlags(ctx context.Context, userID string, paid, survival bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SetUserFlags")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if _, ok, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("load user: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if err := s.userRepo.SetFlags(ctx, userID, paid, survival); err != nil {
		return fmt.Errorf("update user flags: %w", err)
	}
	return nil
}

// Alerts returns the site banner pair, empty strings when none was ever
// saved.
func (s *AdminService) Alerts(ctx context.Context) (alert.Alert, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Alerts")
	defer span.End()

	banner, _, err := s.alertRepo.Get(ctx)
	if err != nil {
		return alert.Alert{}, fmt.Errorf("load alerts: %w", err)
	}
	return banner, nil
}

func (s *AdminService) SaveAlerts(ctx context.Context, banner alert.Alert) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SaveAlerts")
	defer span.End()

	if err := s.alertRepo.Save(ctx, banner); err != nil {
		return fmt.Errorf("save alerts: %w", err)
	}
	return nil
}

func sameScore(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
