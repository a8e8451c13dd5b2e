package usecase

import (
	"context"
	"fmt"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/season"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
	"github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

// MyTeamService builds the signed-in user's roster page: both game modes,
// per-slot season stats, tie-break predictions, and the roster banner.
type MyTeamService struct {
	userRepo       user.Repository
	pickRepo       pick.Repository
	playerRepo     player.Repository
	statsRepo      stats.Repository
	scheduleRepo   schedule.Repository
	tiebreakerRepo tiebreaker.Repository
	teamRepo       team.Repository
	seasonRepo     season.Repository
	alertRepo      alert.Repository
	lock           *LockService
}

func NewMyTeamService(
	userRepo user.Repository,
	pickRepo pick.Repository,
	playerRepo player.Repository,
	statsRepo stats.Repository,
	scheduleRepo schedule.Repository,
	tiebreakerRepo tiebreaker.Repository,
	teamRepo team.Repository,
	seasonRepo season.Repository,
	alertRepo alert.Repository,
	lock *LockService,
) *MyTeamService {
	return &MyTeamService{
		userRepo:       userRepo,
		pickRepo:       pickRepo,
		playerRepo:     playerRepo,
		statsRepo:      statsRepo,
		scheduleRepo:   scheduleRepo,
		tiebreakerRepo: tiebreakerRepo,
		teamRepo:       teamRepo,
		seasonRepo:     seasonRepo,
		alertRepo:      alertRepo,
		lock:           lock,
	}
}

// MyTeamTieBreak is one designated game on the roster page. Label reads
// "AWAY@HOME" using team short codes. Predictions close at kickoff, with
// no early lead time.
type MyTeamTieBreak struct {
	ScheduleID     int64
	Label          string
	ActualTotal    int
	ScoreLocked    bool
	PredictedTotal *int
}

type MyTeamView struct {
	Weekly            map[player.Position]PositionDetail
	Survivor          map[player.Position]PositionDetail
	SelectedWeek      int
	CurrentWeek       int
	WeeklyPicksLeft   int
	SurvivorPicksLeft int
	SurvivorEligible  bool
	TieBreakGames     []MyTeamTieBreak
	AlertMessage      string
}

func (s *MyTeamService) MyTeam(ctx context.Context, userID string, week, year int) (MyTeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MyTeamService.MyTeam")
	defer span.End()

	if userID == "" {
		return MyTeamView{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if week < pick.FirstWeek || week > pick.LastWeek {
		return MyTeamView{}, fmt.Errorf("%w: week must be within %d-%d", ErrInvalidInput, pick.FirstWeek, pick.LastWeek)
	}
	if year <= 0 {
		return MyTeamView{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	u, ok, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return MyTeamView{}, fmt.Errorf("load user: %w", err)
	}
	if !ok {
		return MyTeamView{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if !u.Paid {
		return MyTeamView{}, fmt.Errorf("%w: league entry unpaid", ErrUnauthorized)
	}

	currentWeek, err := s.CurrentWeek(ctx, year)
	if err != nil {
		return MyTeamView{}, err
	}

	locks, err := s.lock.TeamLockStatuses(ctx, week, year)
	if err != nil {
		return MyTeamView{}, err
	}
	lockByTeam := make(map[int64]schedule.TeamLockStatus, len(locks))
	for _, l := range locks {
		lockByTeam[l.TeamID] = l
	}

	yearStats, err := s.statsRepo.ListByYear(ctx, year)
	if err != nil {
		return MyTeamView{}, fmt.Errorf("list stats for year: %w", err)
	}
	statsByPlayer := make(map[int64][]stats.WeeklyStat)
	pointsByPlayerWeek := make(map[playerWeekKey]float64, len(yearStats))
	for _, st := range yearStats {
		statsByPlayer[st.PlayerID] = append(statsByPlayer[st.PlayerID], st)
		pointsByPlayerWeek[playerWeekKey{playerID: st.PlayerID, week: st.Week}] = st.TotalPoints
	}

	weekly, weeklyCount, err := s.resolveSlots(ctx, userID, week, year, pick.GameTypeWeekly, lockByTeam, statsByPlayer, pointsByPlayerWeek)
	if err != nil {
		return MyTeamView{}, err
	}
	survivor, survivorCount, err := s.resolveSlots(ctx, userID, week, year, pick.GameTypeSurvivor, lockByTeam, statsByPlayer, pointsByPlayerWeek)
	if err != nil {
		return MyTeamView{}, err
	}

	// Past weeks are frozen regardless of kickoff times. Survivor rosters
	// only stay editable during week one.
	for pos, detail := range weekly {
		if week < currentWeek {
			detail.Locked = true
		}
		weekly[pos] = detail
	}
	for pos, detail := range survivor {
		if week != pick.FirstWeek {
			detail.Locked = true
		}
		survivor[pos] = detail
	}

	tieBreaks, err := s.loadUserTieBreaks(ctx, userID, week, year)
	if err != nil {
		return MyTeamView{}, err
	}

	banner, _, err := s.alertRepo.Get(ctx)
	if err != nil {
		return MyTeamView{}, fmt.Errorf("load alerts: %w", err)
	}

	return MyTeamView{
		Weekly:            weekly,
		Survivor:          survivor,
		SelectedWeek:      week,
		CurrentWeek:       currentWeek,
		WeeklyPicksLeft:   picksLeft(weeklyCount),
		SurvivorPicksLeft: picksLeft(survivorCount),
		SurvivorEligible:  u.Survival,
		TieBreakGames:     tieBreaks,
		AlertMessage:      banner.RosterMessage,
	}, nil
}

// SaveTieBreakers upserts the user's predicted totals. Entries for games
// already underway are rejected as a whole.
func (s *MyTeamService) SaveTieBreakers(ctx context.Context, userID string, entries []tiebreaker.Prediction) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MyTeamService.SaveTieBreakers")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(entries) == 0 {
		return nil
	}

	now := s.lock.CentralNow()
	for _, entry := range entries {
		if entry.PredictedTotal < 0 {
			return fmt.Errorf("%w: predicted total must not be negative", ErrInvalidInput)
		}
		game, ok, err := s.scheduleRepo.GetByID(ctx, entry.ScheduleID)
		if err != nil {
			return fmt.Errorf("load tie-break game: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: schedule %d", ErrNotFound, entry.ScheduleID)
		}
		if !now.Before(game.Kickoff) {
			return fmt.Errorf("%w: game %d has started", ErrInvalidInput, entry.ScheduleID)
		}
	}

	for _, entry := range entries {
		entry.UserID = userID
		if err := s.tiebreakerRepo.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("save tie-breaker: %w", err)
		}
	}
	return nil
}

// CurrentWeek finds the latest season week whose start date has passed,
// defaulting to week one before the season opens.
func (s *MyTeamService) CurrentWeek(ctx context.Context, year int) (int, error) {
	weeks, err := s.seasonRepo.ListWeeks(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("list season weeks: %w", err)
	}

	now := s.lock.CentralNow()
	current := pick.FirstWeek
	for _, w := range weeks {
		if w.Week < pick.FirstWeek || w.Week > pick.LastWeek {
			continue
		}
		if !now.Before(w.StartDate) && w.Week > current {
			current = w.Week
		}
	}
	return current, nil
}

func (s *MyTeamService) resolveSlots(
	ctx context.Context,
	userID string,
	week, year int,
	gameType pick.GameType,
	lockByTeam map[int64]schedule.TeamLockStatus,
	statsByPlayer map[int64][]stats.WeeklyStat,
	pointsByPlayerWeek map[playerWeekKey]float64,
) (map[player.Position]PositionDetail, int, error) {
	picks, err := s.pickRepo.ListByUserAndWeek(ctx, userID, week, year, gameType)
	if err != nil {
		return nil, 0, fmt.Errorf("list user picks: %w", err)
	}

	playerIDs := make([]int64, 0, len(picks))
	for _, p := range picks {
		playerIDs = append(playerIDs, p.PlayerID)
	}
	players, err := s.playerRepo.ListByIDs(ctx, playerIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("list picked players: %w", err)
	}
	playersByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	details := make([]PositionDetail, 0, len(picks))
	for _, p := range picks {
		picked, ok := playersByID[p.PlayerID]
		if !ok {
			continue
		}
		lockStatus := lockByTeam[picked.TeamID]
		details = append(details, PositionDetail{
			PlayerID:   picked.ID,
			FullName:   picked.FullName,
			FirstName:  picked.FirstName,
			LastName:   picked.LastName,
			Position:   p.Position,
			TeamID:     picked.TeamID,
			Locked:     lockStatus.Locked,
			OpponentID: lockStatus.OpponentID,
			ScheduleID: lockStatus.ScheduleID,
			Points:     pointsByPlayerWeek[playerWeekKey{playerID: picked.ID, week: week}],
			WeekStats:  statsByPlayer[picked.ID],
		})
	}

	slots := make(map[player.Position]PositionDetail, rosterSize)
	for _, position := range rosterPositions {
		slots[position] = resolvePosition(details, position)
	}
	return slots, len(details), nil
}

func (s *MyTeamService) loadUserTieBreaks(ctx context.Context, userID string, week, year int) ([]MyTeamTieBreak, error) {
	games, err := s.scheduleRepo.ListTieBreakGames(ctx, week, year)
	if err != nil {
		return nil, fmt.Errorf("list tie-break games: %w", err)
	}
	if len(games) > 2 {
		games = games[:2]
	}
	if len(games) == 0 {
		return nil, nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	codeByTeam := make(map[int64]string, len(teams))
	for _, t := range teams {
		codeByTeam[t.ID] = t.Code
	}

	scheduleIDs := make([]int64, 0, len(games))
	for _, game := range games {
		scheduleIDs = append(scheduleIDs, game.ID)
	}
	predictions, err := s.tiebreakerRepo.ListByUserAndSchedules(ctx, userID, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("list tie-breaker predictions: %w", err)
	}
	predicted := make(map[int64]int, len(predictions))
	for _, p := range predictions {
		predicted[p.ScheduleID] = p.PredictedTotal
	}

	now := s.lock.CentralNow()
	out := make([]MyTeamTieBreak, 0, len(games))
	for _, game := range games {
		entry := MyTeamTieBreak{
			ScheduleID:  game.ID,
			Label:       fmt.Sprintf("%s@%s", codeByTeam[game.AwayTeamID], codeByTeam[game.HomeTeamID]),
			ActualTotal: game.ActualTotal(),
			ScoreLocked: !now.Before(game.Kickoff),
		}
		if total, ok := predicted[game.ID]; ok {
			v := total
			entry.PredictedTotal = &v
		}
		out = append(out, entry)
	}
	return out, nil
}

func picksLeft(count int) int {
	left := rosterSize - count
	if left < 0 {
		return 0
	}
	return left
}
