package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/season"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

func newAdminService(scheduleRepo *stubScheduleRepository, seasonRepo *stubSeasonRepository, prizeRepo *stubPrizeRepository, userRepo *stubUserRepository, alertRepo *stubAlertRepository) *AdminService {
	if scheduleRepo == nil {
		scheduleRepo = &stubScheduleRepository{}
	}
	if seasonRepo == nil {
		seasonRepo = &stubSeasonRepository{}
	}
	if prizeRepo == nil {
		prizeRepo = &stubPrizeRepository{}
	}
	if userRepo == nil {
		userRepo = &stubUserRepository{}
	}
	if alertRepo == nil {
		alertRepo = &stubAlertRepository{}
	}
	return NewAdminService(seasonRepo, scheduleRepo, prizeRepo, userRepo, alertRepo)
}

func TestAdminService_CreateSeason_BuildsNineteenWeeks(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubSeasonRepository{}
	service := newAdminService(nil, seasonRepo, nil, nil, nil)

	start := time.Date(2025, time.September, 4, 0, 0, 0, 0, time.UTC)
	if err := service.CreateSeason(context.Background(), 2025, start); err != nil {
		t.Fatalf("CreateSeason error: %v", err)
	}

	if len(seasonRepo.createdWeeks) != 19 {
		t.Fatalf("expected 19 weeks, got %d", len(seasonRepo.createdWeeks))
	}
	for i, w := range seasonRepo.createdWeeks {
		if w.Week != i+1 {
			t.Fatalf("expected week %d at index %d, got %d", i+1, i, w.Week)
		}
		want := start.AddDate(0, 0, i*7)
		if !w.StartDate.Equal(want) {
			t.Fatalf("week %d start: expected %v, got %v", w.Week, want, w.StartDate)
		}
	}
}

func TestAdminService_CreateSeason_RejectsDuplicateYear(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubSeasonRepository{
		seasons: map[int]season.Season{2025: {Year: 2025}},
	}
	service := newAdminService(nil, seasonRepo, nil, nil, nil)

	err := service.CreateSeason(context.Background(), 2025, time.Date(2025, time.September, 4, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdminService_ToggleTieBreak_FlipsFlag(t *testing.T) {
	t.Parallel()

	scheduleRepo := &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 5, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 2, Kickoff: time.Now(), TieBreakGame: true},
		},
	}
	service := newAdminService(scheduleRepo, nil, nil, nil, nil)

	if err := service.ToggleTieBreak(context.Background(), 5); err != nil {
		t.Fatalf("ToggleTieBreak error: %v", err)
	}
	if got := scheduleRepo.tieBreaks[5]; got {
		t.Fatalf("expected flag flipped to false, got %v", got)
	}

	if err := service.ToggleTieBreak(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown game, got %v", err)
	}
}

func TestAdminService_UpdateFinalScores_SkipsUnchanged(t *testing.T) {
	t.Parallel()

	home := 21
	away := 14
	scheduleRepo := &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 5, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 2, Kickoff: time.Now(), HomeScore: &home, AwayScore: &away},
		},
	}
	service := newAdminService(scheduleRepo, nil, nil, nil, nil)

	sameHome := 21
	sameAway := 14
	if err := service.UpdateFinalScores(context.Background(), 5, &sameHome, &sameAway); err != nil {
		t.Fatalf("UpdateFinalScores error: %v", err)
	}
	if scheduleRepo.scoreSaves != 0 {
		t.Fatalf("expected no write for unchanged scores, got %d", scheduleRepo.scoreSaves)
	}

	newAway := 17
	if err := service.UpdateFinalScores(context.Background(), 5, &sameHome, &newAway); err != nil {
		t.Fatalf("UpdateFinalScores error: %v", err)
	}
	if scheduleRepo.scoreSaves != 1 {
		t.Fatalf("expected one write, got %d", scheduleRepo.scoreSaves)
	}
	if got := scheduleRepo.games[0]; got.AwayScore == nil || *got.AwayScore != 17 || got.HomeScore == nil || *got.HomeScore != 21 {
		t.Fatalf("unexpected stored scores: %+v", got)
	}
}

func TestAdminService_UpsertWeeklyWinner_Validates(t *testing.T) {
	t.Parallel()

	prizeRepo := &stubPrizeRepository{}
	service := newAdminService(nil, nil, prizeRepo, nil, nil)

	err := service.UpsertWeeklyWinner(context.Background(), prize.WeeklyWinner{Year: 2025, Week: 1, Place: 5, UserID: "u1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for place 5, got %v", err)
	}

	if err := service.UpsertWeeklyWinner(context.Background(), prize.WeeklyWinner{Year: 2025, Week: 1, Place: 1, UserID: "u1"}); err != nil {
		t.Fatalf("UpsertWeeklyWinner error: %v", err)
	}
	if len(prizeRepo.winners) != 1 {
		t.Fatalf("expected 1 winner stored, got %d", len(prizeRepo.winners))
	}
}

func TestAdminService_SetUserFlags(t *testing.T) {
	t.Parallel()

	userRepo := &stubUserRepository{users: []user.User{{ID: "u1", UserName: "al"}}}
	service := newAdminService(nil, nil, nil, userRepo, nil)

	if err := service.SetUserFlags(context.Background(), "u1", true, false); err != nil {
		t.Fatalf("SetUserFlags error: %v", err)
	}
	if got := userRepo.flagSets["u1"]; got != [2]bool{true, false} {
		t.Fatalf("unexpected flags: %v", got)
	}

	if err := service.SetUserFlags(context.Background(), "ghost", true, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminService_Alerts_DefaultsToEmpty(t *testing.T) {
	t.Parallel()

	alertRepo := &stubAlertRepository{}
	service := newAdminService(nil, nil, nil, nil, alertRepo)

	banner, err := service.Alerts(context.Background())
	if err != nil {
		t.Fatalf("Alerts error: %v", err)
	}
	if banner.HomeMessage != "" || banner.RosterMessage != "" {
		t.Fatalf("expected empty banner, got %+v", banner)
	}

	if err := service.SaveAlerts(context.Background(), alert.Alert{HomeMessage: "hi", RosterMessage: "yo"}); err != nil {
		t.Fatalf("SaveAlerts error: %v", err)
	}
	if len(alertRepo.saved) != 1 || alertRepo.saved[0].HomeMessage != "hi" {
		t.Fatalf("unexpected saved banner: %+v", alertRepo.saved)
	}
}
