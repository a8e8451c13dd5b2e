package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/season"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
	"github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

type myTeamFixture struct {
	userRepo       *stubUserRepository
	pickRepo       *stubPickRepository
	playerRepo     *stubPlayerRepository
	statsRepo      *stubStatsRepository
	scheduleRepo   *stubScheduleRepository
	tiebreakerRepo *stubTiebreakerRepository
	teamRepo       *stubTeamRepository
	seasonRepo     *stubSeasonRepository
	alertRepo      *stubAlertRepository
	lock           *LockService
}

func newMyTeamFixture(clock time.Time) *myTeamFixture {
	updated := touched(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	f := &myTeamFixture{
		userRepo: &stubUserRepository{
			users: []user.User{
				{ID: "u1", UserName: "al", TeamName: "Cheeseheads", Paid: true, Survival: true},
				{ID: "broke", UserName: "bo"},
			},
		},
		pickRepo: &stubPickRepository{},
		playerRepo: &stubPlayerRepository{
			players: []player.Player{
				{ID: 1, FullName: "Aaron Field", Position: player.PositionQuarterback, TeamID: 1, LastUpdated: updated},
			},
		},
		statsRepo:      &stubStatsRepository{},
		tiebreakerRepo: &stubTiebreakerRepository{},
		teamRepo: &stubTeamRepository{
			teams: []team.Team{{ID: 1, Code: "GB"}, {ID: 2, Code: "CHI"}},
		},
		seasonRepo: &stubSeasonRepository{
			weeks: []season.Week{
				{Year: 2025, Week: 1, StartDate: time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)},
				{Year: 2025, Week: 2, StartDate: time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC)},
			},
		},
		alertRepo: &stubAlertRepository{
			banner: alert.Alert{RosterMessage: "pay up"},
			exists: true,
		},
	}
	f.scheduleRepo = &stubScheduleRepository{
		games: []schedule.Game{
			{ID: 10, Week: 1, Year: 2025, HomeTeamID: 1, AwayTeamID: 2, Kickoff: time.Date(2025, time.January, 12, 12, 0, 0, 0, time.UTC), TieBreakGame: true},
		},
	}
	f.lock = NewLockService(f.scheduleRepo, f.teamRepo)
	f.lock.SetClock(centralClock(clock))
	return f
}

func (f *myTeamFixture) service() *MyTeamService {
	return NewMyTeamService(
		f.userRepo,
		f.pickRepo,
		f.playerRepo,
		f.statsRepo,
		f.scheduleRepo,
		f.tiebreakerRepo,
		f.teamRepo,
		f.seasonRepo,
		f.alertRepo,
		f.lock,
	)
}

func TestMyTeamService_MyTeam_RequiresPaidUser(t *testing.T) {
	t.Parallel()

	f := newMyTeamFixture(time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC))

	if _, err := f.service().MyTeam(context.Background(), "broke", 1, 2025); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMyTeamService_MyTeam_CountsRemainingPicks(t *testing.T) {
	t.Parallel()

	f := newMyTeamFixture(time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC))
	f.pickRepo.picks = []pick.Pick{
		{ID: 1, UserID: "u1", PlayerID: 1, Position: player.PositionQuarterback, Week: 1, Year: 2025, GameType: pick.GameTypeWeekly},
	}

	view, err := f.service().MyTeam(context.Background(), "u1", 1, 2025)
	if err != nil {
		t.Fatalf("MyTeam error: %v", err)
	}
	if view.WeeklyPicksLeft != 5 {
		t.Fatalf("expected 5 weekly picks left, got %d", view.WeeklyPicksLeft)
	}
	if view.SurvivorPicksLeft != 6 {
		t.Fatalf("expected 6 survivor picks left, got %d", view.SurvivorPicksLeft)
	}
	if view.Weekly[player.PositionQuarterback].FullName != "Aaron Field" {
		t.Fatalf("unexpected quarterback slot: %+v", view.Weekly[player.PositionQuarterback])
	}
	if view.Weekly[player.PositionKicker].FullName != "None" {
		t.Fatalf("expected placeholder kicker, got %+v", view.Weekly[player.PositionKicker])
	}
	if view.AlertMessage != "pay up" {
		t.Fatalf("expected roster banner, got %q", view.AlertMessage)
	}
	if view.CurrentWeek != 1 {
		t.Fatalf("expected current week 1, got %d", view.CurrentWeek)
	}
}

func TestMyTeamService_MyTeam_PastWeeksAreFrozen(t *testing.T) {
	t.Parallel()

	// Week two has started, so the week-one roster is in the past.
	f := newMyTeamFixture(time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC))
	f.pickRepo.picks = []pick.Pick{
		{ID: 1, UserID: "u1", PlayerID: 1, Position: player.PositionQuarterback, Week: 1, Year: 2025, GameType: pick.GameTypeWeekly},
	}

	view, err := f.service().MyTeam(context.Background(), "u1", 1, 2025)
	if err != nil {
		t.Fatalf("MyTeam error: %v", err)
	}
	if view.CurrentWeek != 2 {
		t.Fatalf("expected current week 2, got %d", view.CurrentWeek)
	}
	if !view.Weekly[player.PositionQuarterback].Locked {
		t.Fatal("expected past-week pick locked")
	}
}

func TestMyTeamService_MyTeam_SurvivorLockedOutsideWeekOne(t *testing.T) {
	t.Parallel()

	f := newMyTeamFixture(time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC))
	f.scheduleRepo.games = append(f.scheduleRepo.games, schedule.Game{
		ID: 11, Week: 2, Year: 2025, HomeTeamID: 1, AwayTeamID: 2,
		Kickoff: time.Date(2025, time.January, 19, 12, 0, 0, 0, time.UTC),
	})
	f.pickRepo.picks = []pick.Pick{
		{ID: 2, UserID: "u1", PlayerID: 1, Position: player.PositionQuarterback, Week: 2, Year: 2025, GameType: pick.GameTypeSurvivor},
	}

	view, err := f.service().MyTeam(context.Background(), "u1", 2, 2025)
	if err != nil {
		t.Fatalf("MyTeam error: %v", err)
	}
	if !view.Survivor[player.PositionQuarterback].Locked {
		t.Fatal("expected survivor pick locked after week one")
	}
}

func TestMyTeamService_MyTeam_TieBreakLabelsAndPredictions(t *testing.T) {
	t.Parallel()

	f := newMyTeamFixture(time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC))
	f.tiebreakerRepo.rows = []tiebreaker.Prediction{
		{UserID: "u1", ScheduleID: 10, PredictedTotal: 44},
	}

	view, err := f.service().MyTeam(context.Background(), "u1", 1, 2025)
	if err != nil {
		t.Fatalf("MyTeam error: %v", err)
	}
	if len(view.TieBreakGames) != 1 {
		t.Fatalf("expected 1 tie-break game, got %d", len(view.TieBreakGames))
	}
	game := view.TieBreakGames[0]
	if game.Label != "CHI@GB" {
		t.Fatalf("expected label CHI@GB, got %q", game.Label)
	}
	if game.ScoreLocked {
		t.Fatal("expected prediction still open before kickoff")
	}
	if game.PredictedTotal == nil || *game.PredictedTotal != 44 {
		t.Fatalf("expected predicted total 44, got %+v", game.PredictedTotal)
	}
}

func TestMyTeamService_SaveTieBreakers_RejectsStartedGames(t *testing.T) {
	t.Parallel()

	// Clock past the week-one kickoff.
	f := newMyTeamFixture(time.Date(2025, time.January, 12, 13, 0, 0, 0, time.UTC))

	err := f.service().SaveTieBreakers(context.Background(), "u1", []tiebreaker.Prediction{
		{ScheduleID: 10, PredictedTotal: 40},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for started game, got %v", err)
	}
	if len(f.tiebreakerRepo.upserted) != 0 {
		t.Fatalf("expected no upserts, got %d", len(f.tiebreakerRepo.upserted))
	}
}

func TestMyTeamService_SaveTieBreakers_UpsertsForUser(t *testing.T) {
	t.Parallel()

	f := newMyTeamFixture(time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC))

	err := f.service().SaveTieBreakers(context.Background(), "u1", []tiebreaker.Prediction{
		{ScheduleID: 10, PredictedTotal: 40},
	})
	if err != nil {
		t.Fatalf("SaveTieBreakers error: %v", err)
	}
	if len(f.tiebreakerRepo.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(f.tiebreakerRepo.upserted))
	}
	if f.tiebreakerRepo.upserted[0].UserID != "u1" {
		t.Fatalf("expected user id stamped on entry, got %+v", f.tiebreakerRepo.upserted[0])
	}
}
