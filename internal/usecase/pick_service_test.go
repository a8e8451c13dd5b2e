package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
)

func pickFixture(clock time.Time) (*stubPickRepository, *stubPlayerRepository, *LockService) {
	updated := touched(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	playerRepo := &stubPlayerRepository{
		players: []player.Player{
			{ID: 1, FullName: "Aaron Field", Position: player.PositionQuarterback, TeamID: 1, LastUpdated: updated},
			{ID: 2, FullName: "Zed Smith", Position: player.PositionQuarterback, TeamID: 2, LastUpdated: updated},
			{ID: 3, FullName: "Ben Carter", Position: player.PositionQuarterback, TeamID: 3, LastUpdated: updated},
		},
	}
	earlyKickoff := time.Date(2025, time.January, 12, 12, 0, 0, 0, time.UTC)
	lateKickoff := earlyKickoff.Add(8 * time.Hour)
	scheduleRepo := &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 10, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 4, Kickoff: earlyKickoff},
			{ID: 11, Week: 1, Year: 2025, HomeTeamID: 2, AwayTeamID: 3, Kickoff: lateKickoff},
		},
	}
	teamRepo := &stubTeamRepository{
		teams: []team.Team{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
	}
	lock := NewLockService(scheduleRepo, teamRepo)
	lock.SetClock(centralClock(clock))
	pickRepo := &stubPickRepository{}
	return pickRepo, playerRepo, lock
}

func TestPickService_SavePick_InsertsWhenSlotEmpty(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "u1", 1, 1, 2025, pick.GameTypeWeekly); !ok {
		t.Fatal("expected save to succeed")
	}
	if len(pickRepo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(pickRepo.inserted))
	}
	got := pickRepo.inserted[0]
	if got.PlayerID != 1 || got.Position != player.PositionQuarterback || got.GameType != pick.GameTypeWeekly {
		t.Fatalf("unexpected inserted pick: %+v", got)
	}
}

func TestPickService_SavePick_LockedTargetIsSilentNoop(t *testing.T) {
	t.Parallel()

	// Early game is underway, so team 1 is locked.
	clock := time.Date(2025, time.January, 12, 14, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "u1", 1, 1, 2025, pick.GameTypeWeekly); !ok {
		t.Fatal("expected locked-target save to still report success")
	}
	if len(pickRepo.inserted) != 0 {
		t.Fatalf("expected no insert, got %d", len(pickRepo.inserted))
	}
}

func TestPickService_SavePick_ReplacesUnlockedExisting(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	pickRepo.picks = []pick.Pick{
		{ID: 50, UserID: "u1", PlayerID: 2, Position: player.PositionQuarterback, Week: 1, Year: 2025, GameType: pick.GameTypeWeekly},
	}
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "u1", 3, 1, 2025, pick.GameTypeWeekly); !ok {
		t.Fatal("expected save to succeed")
	}
	if len(pickRepo.deletedIDs) != 1 || pickRepo.deletedIDs[0] != 50 {
		t.Fatalf("expected existing pick 50 deleted, got %v", pickRepo.deletedIDs)
	}
	if len(pickRepo.inserted) != 1 || pickRepo.inserted[0].PlayerID != 3 {
		t.Fatalf("expected replacement insert, got %+v", pickRepo.inserted)
	}
}

func TestPickService_SavePick_KeepsLockedExisting(t *testing.T) {
	t.Parallel()

	// Early game underway locks team 1, the existing pick. The late game
	// teams are still open.
	clock := time.Date(2025, time.January, 12, 14, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	pickRepo.picks = []pick.Pick{
		{ID: 50, UserID: "u1", PlayerID: 1, Position: player.PositionQuarterback, Week: 1, Year: 2025, GameType: pick.GameTypeWeekly},
	}
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "u1", 2, 1, 2025, pick.GameTypeWeekly); !ok {
		t.Fatal("expected save to report success")
	}
	if len(pickRepo.deletedIDs) != 0 || len(pickRepo.inserted) != 0 {
		t.Fatalf("expected locked existing pick kept, deleted=%v inserted=%v", pickRepo.deletedIDs, pickRepo.inserted)
	}
}

func TestPickService_SavePick_SurvivorFillsAllWeeks(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "u1", 1, 1, 2025, pick.GameTypeSurvivor); !ok {
		t.Fatal("expected survivor save to succeed")
	}
	if len(pickRepo.inserted) != 18 {
		t.Fatalf("expected 18 survivor rows, got %d", len(pickRepo.inserted))
	}
	weeks := make(map[int]struct{}, len(pickRepo.inserted))
	for _, p := range pickRepo.inserted {
		if p.PlayerID != 1 || p.GameType != pick.GameTypeSurvivor {
			t.Fatalf("unexpected survivor row: %+v", p)
		}
		weeks[p.Week] = struct{}{}
	}
	if len(weeks) != 18 {
		t.Fatalf("expected all 18 distinct weeks, got %d", len(weeks))
	}
}

func TestPickService_SavePick_SurvivorRejectedAfterWeekOne(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "u1", 1, 2, 2025, pick.GameTypeSurvivor); !ok {
		t.Fatal("expected week-two survivor save to report success as a no-op")
	}
	if len(pickRepo.inserted) != 0 {
		t.Fatalf("expected no rows, got %d", len(pickRepo.inserted))
	}
}

func TestPickService_SavePick_InvalidInputReturnsFalse(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, time.January, 12, 10, 0, 0, 0, time.UTC)
	pickRepo, playerRepo, lock := pickFixture(clock)
	service := NewPickService(pickRepo, playerRepo, lock, nil)

	if ok := service.SavePick(context.Background(), "", 1, 1, 2025, pick.GameTypeWeekly); ok {
		t.Fatal("expected missing user id to fail")
	}
	if ok := service.SavePick(context.Background(), "u1", 1, 19, 2025, pick.GameTypeWeekly); ok {
		t.Fatal("expected week 19 to fail")
	}
	if ok := service.SavePick(context.Background(), "u1", 1, 1, 2025, pick.GameTypeTotalPoints); ok {
		t.Fatal("expected total-points mode to fail")
	}
	if len(pickRepo.inserted) != 0 {
		t.Fatalf("expected no inserts, got %d", len(pickRepo.inserted))
	}
}
