package usecase

import (
	"context"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/season"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
	"github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

type stubTeamRepository struct {
	teams []team.Team
	err   error
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	return s.teams, s.err
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	for _, t := range s.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, s.err
}

type stubPlayerRepository struct {
	players []player.Player
	err     error
}

func (s *stubPlayerRepository) ListActive(_ context.Context) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]player.Player, 0, len(s.players))
	for _, p := range s.players {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	if s.err != nil {
		return player.Player{}, false, s.err
	}
	for _, p := range s.players {
		if p.ID == playerID {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepository) ListByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[int64]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}
	out := make([]player.Player, 0, len(wanted))
	for _, p := range s.players {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubStatsRepository struct {
	rows []stats.WeeklyStat
	err  error
}

func (s *stubStatsRepository) ListByWeek(_ context.Context, week, year int) ([]stats.WeeklyStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]stats.WeeklyStat, 0, len(s.rows))
	for _, st := range s.rows {
		if st.Week == week && st.Year == year {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *stubStatsRepository) ListByYear(_ context.Context, year int) ([]stats.WeeklyStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]stats.WeeklyStat, 0, len(s.rows))
	for _, st := range s.rows {
		if st.Year == year {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *stubStatsRepository) ListByPlayerAndYear(_ context.Context, playerID int64, year int) ([]stats.WeeklyStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]stats.WeeklyStat, 0, len(s.rows))
	for _, st := range s.rows {
		if st.PlayerID == playerID && st.Year == year {
			out = append(out, st)
		}
	}
	return out, nil
}

type stubScheduleRepository struct {
	games      []schedule.Game
	nextID     int64
	inserted   []schedule.Game
	updated    []schedule.Game
	deleted    []int64
	tieBreaks  map[int64]bool
	scoreSaves int
	err        error
}

func (s *stubScheduleRepository) ListByWeek(_ context.Context, week, year int) ([]schedule.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]schedule.Game, 0, len(s.games))
	for _, g := range s.games {
		if g.Week == week && g.Year == year {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *stubScheduleRepository) ListTieBreakGames(_ context.Context, week, year int) ([]schedule.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]schedule.Game, 0, len(s.games))
	for _, g := range s.games {
		if g.Week == week && g.Year == year && g.TieBreakGame {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *stubScheduleRepository) GetByID(_ context.Context, gameID int64) (schedule.Game, bool, error) {
	if s.err != nil {
		return schedule.Game{}, false, s.err
	}
	for _, g := range s.games {
		if g.ID == gameID {
			return g, true, nil
		}
	}
	return schedule.Game{}, false, nil
}

func (s *stubScheduleRepository) Insert(_ context.Context, game schedule.Game) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.nextID++
	game.ID = s.nextID
	s.inserted = append(s.inserted, game)
	s.games = append(s.games, game)
	return game.ID, nil
}

func (s *stubScheduleRepository) Update(_ context.Context, game schedule.Game) error {
	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, game)
	for i := range s.games {
		if s.games[i].ID == game.ID {
			s.games[i] = game
		}
	}
	return nil
}

func (s *stubScheduleRepository) Delete(_ context.Context, gameID int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, gameID)
	kept := s.games[:0]
	for _, g := range s.games {
		if g.ID != gameID {
			kept = append(kept, g)
		}
	}
	s.games = kept
	return nil
}

func (s *stubScheduleRepository) SetTieBreak(_ context.Context, gameID int64, tieBreak bool) error {
	if s.err != nil {
		return s.err
	}
	if s.tieBreaks == nil {
		s.tieBreaks = make(map[int64]bool)
	}
	s.tieBreaks[gameID] = tieBreak
	for i := range s.games {
		if s.games[i].ID == gameID {
			s.games[i].TieBreakGame = tieBreak
		}
	}
	return nil
}

func (s *stubScheduleRepository) UpdateScores(_ context.Context, gameID int64, homeScore, awayScore *int) error {
	if s.err != nil {
		return s.err
	}
	s.scoreSaves++
	for i := range s.games {
		if s.games[i].ID == gameID {
			s.games[i].HomeScore = homeScore
			s.games[i].AwayScore = awayScore
		}
	}
	return nil
}

type stubPickRepository struct {
	picks           []pick.Pick
	nextID          int64
	inserted        []pick.Pick
	deletedIDs      []int64
	deletedBatchFor []string
	err             error
}

func (s *stubPickRepository) ListByWeek(_ context.Context, week, year int, gameType pick.GameType) ([]pick.Pick, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]pick.Pick, 0, len(s.picks))
	for _, p := range s.picks {
		if p.Week == week && p.Year == year && p.GameType == gameType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPickRepository) ListByUserAndWeek(_ context.Context, userID string, week, year int, gameType pick.GameType) ([]pick.Pick, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]pick.Pick, 0, len(s.picks))
	for _, p := range s.picks {
		if p.UserID == userID && p.Week == week && p.Year == year && p.GameType == gameType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPickRepository) ListByYear(_ context.Context, year int, gameType pick.GameType) ([]pick.Pick, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]pick.Pick, 0, len(s.picks))
	for _, p := range s.picks {
		if p.Year == year && p.GameType == gameType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPickRepository) Get(_ context.Context, userID string, week, year int, gameType pick.GameType, position player.Position) (pick.Pick, bool, error) {
	if s.err != nil {
		return pick.Pick{}, false, s.err
	}
	for _, p := range s.picks {
		if p.UserID == userID && p.Week == week && p.Year == year && p.GameType == gameType && p.Position == position {
			return p, true, nil
		}
	}
	return pick.Pick{}, false, nil
}

func (s *stubPickRepository) Insert(_ context.Context, item pick.Pick) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	item.ID = s.nextID
	s.inserted = append(s.inserted, item)
	s.picks = append(s.picks, item)
	return nil
}

func (s *stubPickRepository) InsertBatch(_ context.Context, items []pick.Pick) error {
	for _, item := range items {
		if err := s.Insert(context.Background(), item); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubPickRepository) Delete(_ context.Context, pickID int64) error {
	if s.err != nil {
		return s.err
	}
	s.deletedIDs = append(s.deletedIDs, pickID)
	kept := s.picks[:0]
	for _, p := range s.picks {
		if p.ID != pickID {
			kept = append(kept, p)
		}
	}
	s.picks = kept
	return nil
}

func (s *stubPickRepository) DeleteByUserPosition(_ context.Context, userID string, year int, gameType pick.GameType, position player.Position) error {
	if s.err != nil {
		return s.err
	}
	s.deletedBatchFor = append(s.deletedBatchFor, userID)
	kept := s.picks[:0]
	for _, p := range s.picks {
		if p.UserID == userID && p.Year == year && p.GameType == gameType && p.Position == position {
			continue
		}
		kept = append(kept, p)
	}
	s.picks = kept
	return nil
}

type stubUserRepository struct {
	users    []user.User
	updated  []user.User
	flagSets map[string][2]bool
	err      error
}

func (s *stubUserRepository) List(_ context.Context) ([]user.User, error) {
	return s.users, s.err
}

func (s *stubUserRepository) ListEligible(_ context.Context, requireSurvival bool) ([]user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		if !u.Paid {
			continue
		}
		if requireSurvival && !u.Survival {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	if s.err != nil {
		return user.User{}, false, s.err
	}
	for _, u := range s.users {
		if u.ID == userID {
			return u, true, nil
		}
	}
	return user.User{}, false, nil
}

func (s *stubUserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	if s.err != nil {
		return user.User{}, false, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return user.User{}, false, nil
}

func (s *stubUserRepository) Update(_ context.Context, item user.User) error {
	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, item)
	for i := range s.users {
		if s.users[i].ID == item.ID {
			s.users[i] = item
		}
	}
	return nil
}

func (s *stubUserRepository) SetFlags(_ context.Context, userID string, paid, survival bool) error {
	if s.err != nil {
		return s.err
	}
	if s.flagSets == nil {
		s.flagSets = make(map[string][2]bool)
	}
	s.flagSets[userID] = [2]bool{paid, survival}
	return nil
}

func (s *stubUserRepository) UserNameTaken(_ context.Context, userName, excludeUserID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, u := range s.users {
		if u.UserName == userName && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepository) EmailTaken(_ context.Context, email, excludeUserID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, u := range s.users {
		if u.Email == email && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

type stubTiebreakerRepository struct {
	rows     []tiebreaker.Prediction
	upserted []tiebreaker.Prediction
	err      error
}

func (s *stubTiebreakerRepository) ListBySchedules(_ context.Context, scheduleIDs []int64) ([]tiebreaker.Prediction, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[int64]struct{}, len(scheduleIDs))
	for _, id := range scheduleIDs {
		wanted[id] = struct{}{}
	}
	out := make([]tiebreaker.Prediction, 0, len(s.rows))
	for _, row := range s.rows {
		if _, ok := wanted[row.ScheduleID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubTiebreakerRepository) ListByUserAndSchedules(_ context.Context, userID string, scheduleIDs []int64) ([]tiebreaker.Prediction, error) {
	rows, err := s.ListBySchedules(context.Background(), scheduleIDs)
	if err != nil {
		return nil, err
	}
	out := rows[:0]
	for _, row := range rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubTiebreakerRepository) Upsert(_ context.Context, item tiebreaker.Prediction) error {
	if s.err != nil {
		return s.err
	}
	s.upserted = append(s.upserted, item)
	return nil
}

type stubPrizeRepository struct {
	pots     []prize.Pot
	winners  []prize.WeeklyWinner
	yearEnds []prize.YearEndResult
	err      error
}

func (s *stubPrizeRepository) ListPots(_ context.Context) ([]prize.Pot, error) {
	return s.pots, s.err
}

func (s *stubPrizeRepository) ListWinners(_ context.Context, year int) ([]prize.WeeklyWinner, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]prize.WeeklyWinner, 0, len(s.winners))
	for _, w := range s.winners {
		if w.Year == year {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *stubPrizeRepository) UpsertWinner(_ context.Context, item prize.WeeklyWinner) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.winners {
		if s.winners[i].Year == item.Year && s.winners[i].Week == item.Week && s.winners[i].Place == item.Place {
			s.winners[i] = item
			return nil
		}
	}
	s.winners = append(s.winners, item)
	return nil
}

func (s *stubPrizeRepository) ListYearEndResults(_ context.Context, year int) ([]prize.YearEndResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]prize.YearEndResult, 0, len(s.yearEnds))
	for _, r := range s.yearEnds {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubPrizeRepository) UpsertYearEndResult(_ context.Context, item prize.YearEndResult) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.yearEnds {
		if s.yearEnds[i].Year == item.Year && s.yearEnds[i].GameTypeID == item.GameTypeID && s.yearEnds[i].UserID == item.UserID {
			s.yearEnds[i] = item
			return nil
		}
	}
	s.yearEnds = append(s.yearEnds, item)
	return nil
}

type stubAlertRepository struct {
	banner alert.Alert
	exists bool
	saved  []alert.Alert
	err    error
}

func (s *stubAlertRepository) Get(_ context.Context) (alert.Alert, bool, error) {
	if s.err != nil {
		return alert.Alert{}, false, s.err
	}
	return s.banner, s.exists, nil
}

func (s *stubAlertRepository) Save(_ context.Context, item alert.Alert) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, item)
	s.banner = item
	s.exists = true
	return nil
}

type stubSeasonRepository struct {
	seasons      map[int]season.Season
	weeks        []season.Week
	createdWeeks []season.Week
	err          error
}

func (s *stubSeasonRepository) Get(_ context.Context, year int) (season.Season, bool, error) {
	if s.err != nil {
		return season.Season{}, false, s.err
	}
	item, ok := s.seasons[year]
	return item, ok, nil
}

func (s *stubSeasonRepository) Create(_ context.Context, item season.Season, weeks []season.Week) error {
	if s.err != nil {
		return s.err
	}
	if s.seasons == nil {
		s.seasons = make(map[int]season.Season)
	}
	s.seasons[item.Year] = item
	s.createdWeeks = append(s.createdWeeks, weeks...)
	s.weeks = append(s.weeks, weeks...)
	return nil
}

func (s *stubSeasonRepository) ListWeeks(_ context.Context, year int) ([]season.Week, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]season.Week, 0, len(s.weeks))
	for _, w := range s.weeks {
		if w.Year == year {
			out = append(out, w)
		}
	}
	return out, nil
}
