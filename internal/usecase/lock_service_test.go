package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
)

// January dates keep the central offset at a fixed -6h.
func centralClock(central time.Time) func() time.Time {
	return func() time.Time { return central.Add(6 * time.Hour) }
}

func TestLockService_TeamLockStatuses_BothSidesShareDecision(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.January, 12, 12, 0, 0, 0, time.UTC)
	scheduleRepo := &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 10, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 2, Kickoff: kickoff},
		},
	}
	teamRepo := &stubTeamRepository{
		teams: []team.Team{{ID: 1, Code: "GB"}, {ID: 2, Code: "CHI"}},
	}

	service := NewLockService(scheduleRepo, teamRepo)
	service.SetClock(centralClock(kickoff.Add(-time.Hour)))

	got, err := service.TeamLockStatuses(context.Background(), 1, 2025)
	if err != nil {
		t.Fatalf("TeamLockStatuses error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	byTeam := make(map[int64]schedule.TeamLockStatus, len(got))
	for _, status := range got {
		byTeam[status.TeamID] = status
	}
	home := byTeam[1]
	away := byTeam[2]
	if home.Locked || away.Locked {
		t.Fatalf("expected both sides unlocked an hour out: home=%+v away=%+v", home, away)
	}
	if home.OpponentID != 2 || away.OpponentID != 1 {
		t.Fatalf("opponents not swapped: home=%+v away=%+v", home, away)
	}
	if home.ScheduleID != 10 || away.ScheduleID != 10 {
		t.Fatalf("schedule id not carried: home=%+v away=%+v", home, away)
	}
}

func TestLockService_TeamLockStatuses_LocksInsideLeadTime(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.January, 12, 12, 0, 0, 0, time.UTC)
	scheduleRepo := &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 10, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 2, Kickoff: kickoff},
		},
	}
	teamRepo := &stubTeamRepository{
		teams: []team.Team{{ID: 1, Code: "GB"}, {ID: 2, Code: "CHI"}},
	}

	service := NewLockService(scheduleRepo, teamRepo)
	service.SetClock(centralClock(kickoff.Add(-4 * time.Minute)))

	got, err := service.TeamLockStatuses(context.Background(), 1, 2025)
	if err != nil {
		t.Fatalf("TeamLockStatuses error: %v", err)
	}
	for _, status := range got {
		if !status.Locked {
			t.Fatalf("expected team %d locked four minutes before kickoff", status.TeamID)
		}
	}
}

func TestLockService_TeamLockStatuses_ByeTeamsAlwaysLocked(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.January, 12, 12, 0, 0, 0, time.UTC)
	scheduleRepo := &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 10, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 2, Kickoff: kickoff},
		},
	}
	teamRepo := &stubTeamRepository{
		teams: []team.Team{{ID: 1}, {ID: 2}, {ID: 3, Code: "DET"}},
	}

	service := NewLockService(scheduleRepo, teamRepo)
	service.SetClock(centralClock(kickoff.Add(-24 * time.Hour)))

	got, err := service.TeamLockStatuses(context.Background(), 1, 2025)
	if err != nil {
		t.Fatalf("TeamLockStatuses error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	var bye schedule.TeamLockStatus
	for _, status := range got {
		if status.TeamID == 3 {
			bye = status
		}
	}
	if !bye.Locked {
		t.Fatalf("expected bye team locked, got %+v", bye)
	}
	if bye.ScheduleID != 0 || bye.OpponentID != 0 {
		t.Fatalf("expected empty matchup for bye team, got %+v", bye)
	}
}

func TestLockService_TeamLockStatuses_RejectsBadWeek(t *testing.T) {
	t.Parallel()

	service := NewLockService(&stubScheduleRepository{}, &stubTeamRepository{})

	if _, err := service.TeamLockStatuses(context.Background(), 0, 2025); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for week 0, got %v", err)
	}
	if _, err := service.TeamLockStatuses(context.Background(), 19, 2025); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for week 19, got %v", err)
	}
}
