package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	"github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

// ScoreboardService assembles the league-wide weekly picks view: one row
// per eligible user with resolved roster slots, points, and tie-breaker
// distances.
type ScoreboardService struct {
	userRepo       user.Repository
	pickRepo       pick.Repository
	playerRepo     player.Repository
	statsRepo      stats.Repository
	scheduleRepo   schedule.Repository
	tiebreakerRepo tiebreaker.Repository
	lock           *LockService
}

func NewScoreboardService(
	userRepo user.Repository,
	pickRepo pick.Repository,
	playerRepo player.Repository,
	statsRepo stats.Repository,
	scheduleRepo schedule.Repository,
	tiebreakerRepo tiebreaker.Repository,
	lock *LockService,
) *ScoreboardService {
	return &ScoreboardService{
		userRepo:       userRepo,
		pickRepo:       pickRepo,
		playerRepo:     playerRepo,
		statsRepo:      statsRepo,
		scheduleRepo:   scheduleRepo,
		tiebreakerRepo: tiebreakerRepo,
		lock:           lock,
	}
}

// TieBreakGameResult is one designated tie-break game with its combined
// actual score. Unset final scores count as zero.
type TieBreakGameResult struct {
	ScheduleID  int64
	HomeTeamID  int64
	AwayTeamID  int64
	ActualTotal int
}

// UserWeeklyPicks is one scoreboard row. Name fields on unlocked slots
// are blanked so opponents cannot scout picks before kickoff.
type UserWeeklyPicks struct {
	UserID            string
	TeamName          string
	Quarterback       PositionDetail
	RunningBack       PositionDetail
	WideReceiver      PositionDetail
	TightEnd          PositionDetail
	Kicker            PositionDetail
	Defense           PositionDetail
	PlayerTotalPoints float64
	TieBreaker1Diff   int
	TieBreaker2Diff   int
	TotalDiff         int
}

type WeeklyPicksView struct {
	Week          int
	Year          int
	GameType      pick.GameType
	TieBreakGames []TieBreakGameResult
	Rows          []UserWeeklyPicks
}

func (s *ScoreboardService) WeeklyPicks(ctx context.Context, week, year int, gameType pick.GameType) (WeeklyPicksView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.WeeklyPicks")
	defer span.End()

	if week < pick.FirstWeek || week > pick.LastWeek {
		return WeeklyPicksView{}, fmt.Errorf("%w: week must be within %d-%d", ErrInvalidInput, pick.FirstWeek, pick.LastWeek)
	}
	if year <= 0 {
		return WeeklyPicksView{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if !gameType.Valid() {
		return WeeklyPicksView{}, fmt.Errorf("%w: invalid game type %d", ErrInvalidInput, gameType)
	}

	users, err := s.userRepo.ListEligible(ctx, gameType == pick.GameTypeSurvivor)
	if err != nil {
		return WeeklyPicksView{}, fmt.Errorf("list eligible users: %w", err)
	}

	picks, err := s.pickRepo.ListByWeek(ctx, week, year, gameType)
	if err != nil {
		return WeeklyPicksView{}, fmt.Errorf("list picks for week: %w", err)
	}
	picksByUser := make(map[string][]pick.Pick, len(users))
	playerIDSet := make(map[int64]struct{}, len(picks))
	for _, p := range picks {
		picksByUser[p.UserID] = append(picksByUser[p.UserID], p)
		playerIDSet[p.PlayerID] = struct{}{}
	}

	playerIDs := make([]int64, 0, len(playerIDSet))
	for id := range playerIDSet {
		playerIDs = append(playerIDs, id)
	}
	players, err := s.playerRepo.ListByIDs(ctx, playerIDs)
	if err != nil {
		return WeeklyPicksView{}, fmt.Errorf("list picked players: %w", err)
	}
	playersByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	weekStats, err := s.statsRepo.ListByWeek(ctx, week, year)
	if err != nil {
		return WeeklyPicksView{}, fmt.Errorf("list stats for week: %w", err)
	}
	pointsByPlayer := make(map[int64]float64, len(weekStats))
	for _, st := range weekStats {
		pointsByPlayer[st.PlayerID] = st.TotalPoints
	}

	locks, err := s.lock.TeamLockStatuses(ctx, week, year)
	if err != nil {
		return WeeklyPicksView{}, err
	}
	lockByTeam := make(map[int64]schedule.TeamLockStatus, len(locks))
	for _, l := range locks {
		lockByTeam[l.TeamID] = l
	}

	tieBreakGames, predictions, err := s.loadTieBreakers(ctx, week, year)
	if err != nil {
		return WeeklyPicksView{}, err
	}

	rows := make([]UserWeeklyPicks, 0, len(users))
	for _, u := range users {
		details := buildPositionDetails(picksByUser[u.ID], playersByID, pointsByPlayer, lockByTeam)
		row := UserWeeklyPicks{
			UserID:       u.ID,
			TeamName:     u.DisplayName(),
			Quarterback:  concealUnlocked(resolvePosition(details, player.PositionQuarterback)),
			RunningBack:  concealUnlocked(resolvePosition(details, player.PositionRunningBack)),
			WideReceiver: concealUnlocked(resolvePosition(details, player.PositionWideReceiver)),
			TightEnd:     concealUnlocked(resolvePosition(details, player.PositionTightEnd)),
			Kicker:       concealUnlocked(resolvePosition(details, player.PositionKicker)),
			Defense:      concealUnlocked(resolvePosition(details, player.PositionDefense)),
		}
		row.PlayerTotalPoints = row.Quarterback.Points +
			row.RunningBack.Points +
			row.WideReceiver.Points +
			row.TightEnd.Points +
			row.Kicker.Points +
			row.Defense.Points

		for i, game := range tieBreakGames {
			diff := game.ActualTotal
			if predicted, ok := predictions[predictionKey{userID: u.ID, scheduleID: game.ScheduleID}]; ok {
				diff = absInt(predicted - game.ActualTotal)
			}
			switch i {
			case 0:
				row.TieBreaker1Diff = diff
			case 1:
				row.TieBreaker2Diff = diff
			}
		}
		row.TotalDiff = row.TieBreaker1Diff + row.TieBreaker2Diff

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PlayerTotalPoints != rows[j].PlayerTotalPoints {
			return rows[i].PlayerTotalPoints > rows[j].PlayerTotalPoints
		}
		return rows[i].TotalDiff < rows[j].TotalDiff
	})

	return WeeklyPicksView{
		Week:          week,
		Year:          year,
		GameType:      gameType,
		TieBreakGames: tieBreakGames,
		Rows:          rows,
	}, nil
}

type predictionKey struct {
	userID     string
	scheduleID int64
}

// loadTieBreakers returns at most two designated games for the week plus
// every user's predicted totals for them.
func (s *ScoreboardService) loadTieBreakers(ctx context.Context, week, year int) ([]TieBreakGameResult, map[predictionKey]int, error) {
	games, err := s.scheduleRepo.ListTieBreakGames(ctx, week, year)
	if err != nil {
		return nil, nil, fmt.Errorf("list tie-break games: %w", err)
	}
	if len(games) > 2 {
		games = games[:2]
	}

	results := make([]TieBreakGameResult, 0, len(games))
	scheduleIDs := make([]int64, 0, len(games))
	for _, game := range games {
		results = append(results, TieBreakGameResult{
			ScheduleID:  game.ID,
			HomeTeamID:  game.HomeTeamID,
			AwayTeamID:  game.AwayTeamID,
			ActualTotal: game.ActualTotal(),
		})
		scheduleIDs = append(scheduleIDs, game.ID)
	}

	predictions := make(map[predictionKey]int)
	if len(scheduleIDs) > 0 {
		rows, err := s.tiebreakerRepo.ListBySchedules(ctx, scheduleIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("list tie-breaker predictions: %w", err)
		}
		for _, row := range rows {
			predictions[predictionKey{userID: row.UserID, scheduleID: row.ScheduleID}] = row.PredictedTotal
		}
	}

	return results, predictions, nil
}

func buildPositionDetails(
	picks []pick.Pick,
	playersByID map[int64]player.Player,
	pointsByPlayer map[int64]float64,
	lockByTeam map[int64]schedule.TeamLockStatus,
) []PositionDetail {
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
			Points:     pointsByPlayer[picked.ID],
		})
	}
	return details
}

// concealUnlocked blanks name fields until the slot locks so picks stay
// hidden from the rest of the league.
func concealUnlocked(detail PositionDetail) PositionDetail {
	if detail.Locked {
		return detail
	}
	detail.FullName = ""
	detail.FirstName = ""
	detail.LastName = ""
	return detail
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
