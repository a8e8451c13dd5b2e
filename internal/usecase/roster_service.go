package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
)

const defaultRosterPageSize = 25

// RosterSortKey selects the ordering of the roster listing. Keys map to
// explicit comparators; an unknown key leaves the repository order as-is.
type RosterSortKey string

const (
	RosterSortName     RosterSortKey = "name"
	RosterSortPosition RosterSortKey = "position"
	RosterSortTeam     RosterSortKey = "team"
	RosterSortPoints   RosterSortKey = "points"
	RosterSortOpponent RosterSortKey = "opponent"
)

var rosterComparators = map[RosterSortKey]func(a, b RosterPlayer) bool{
	RosterSortName: func(a, b RosterPlayer) bool {
		return strings.ToLower(a.Player.FullName) < strings.ToLower(b.Player.FullName)
	},
	RosterSortPosition: func(a, b RosterPlayer) bool {
		return a.Player.Position < b.Player.Position
	},
	RosterSortTeam: func(a, b RosterPlayer) bool {
		return a.TeamCode < b.TeamCode
	},
	RosterSortPoints: func(a, b RosterPlayer) bool {
		return a.SeasonTotal < b.SeasonTotal
	},
	RosterSortOpponent: func(a, b RosterPlayer) bool {
		return a.Opponent < b.Opponent
	},
}

// RosterQuery filters, sorts, and pages the player pool.
type RosterQuery struct {
	Position   string
	Name       string
	SortKey    RosterSortKey
	Descending bool
	Page       int
	PageSize   int
	Week       int
	Year       int
}

// RosterPlayer is one pool entry with its season production and current
// week matchup context.
type RosterPlayer struct {
	Player      player.Player
	TeamCode    string
	SeasonTotal float64
	WeekStats   []stats.WeeklyStat
	Locked      bool
	Opponent    string
}

type RosterPage struct {
	Players      []RosterPlayer
	TotalPlayers int
	Page         int
	PageSize     int
}

// RosterService serves the pickable player pool with filtering, season
// totals, lock context, sorting, and pagination.
type RosterService struct {
	playerRepo player.Repository
	statsRepo  stats.Repository
	teamRepo   team.Repository
	lock       *LockService
}

func NewRosterService(
	playerRepo player.Repository,
	statsRepo stats.Repository,
	teamRepo team.Repository,
	lock *LockService,
) *RosterService {
	return &RosterService{
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		teamRepo:   teamRepo,
		lock:       lock,
	}
}

func (s *RosterService) Players(ctx context.Context, query RosterQuery) (RosterPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Players")
	defer span.End()

	if query.Year <= 0 {
		return RosterPage{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if query.Week < 1 || query.Week > 18 {
		return RosterPage{}, fmt.Errorf("%w: week must be within 1-18", ErrInvalidInput)
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = defaultRosterPageSize
	}

	position := player.Position(strings.ToUpper(strings.TrimSpace(query.Position)))
	if position != "" {
		if _, ok := player.AllPositions[position]; !ok {
			return RosterPage{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, query.Position)
		}
	}
	nameFilter := strings.ToLower(strings.TrimSpace(query.Name))

	pool, err := s.playerRepo.ListActive(ctx)
	if err != nil {
		return RosterPage{}, fmt.Errorf("list active players: %w", err)
	}

	yearStats, err := s.statsRepo.ListByYear(ctx, query.Year)
	if err != nil {
		return RosterPage{}, fmt.Errorf("list stats for year: %w", err)
	}
	statsByPlayer := make(map[int64][]stats.WeeklyStat, len(pool))
	for _, st := range yearStats {
		statsByPlayer[st.PlayerID] = append(statsByPlayer[st.PlayerID], st)
	}

	locks, err := s.lock.TeamLockStatuses(ctx, query.Week, query.Year)
	if err != nil {
		return RosterPage{}, err
	}
	lockByTeam := make(map[int64]schedule.TeamLockStatus, len(locks))
	for _, l := range locks {
		lockByTeam[l.TeamID] = l
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return RosterPage{}, fmt.Errorf("list teams: %w", err)
	}
	codeByTeam := make(map[int64]string, len(teams))
	for _, t := range teams {
		codeByTeam[t.ID] = t.Code
	}

	filtered := make([]RosterPlayer, 0, len(pool))
	for _, p := range pool {
		if position != "" && p.Position != position {
			continue
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(p.FullName), nameFilter) {
			continue
		}

		weekStats := statsByPlayer[p.ID]
		seasonTotal := 0.0
		for _, st := range weekStats {
			seasonTotal += st.TotalPoints
		}

		lockStatus := lockByTeam[p.TeamID]
		opponent := "BYE"
		if lockStatus.OpponentID > 0 {
			opponent = codeByTeam[lockStatus.OpponentID]
		}

		filtered = append(filtered, RosterPlayer{
			Player:      p,
			TeamCode:    codeByTeam[p.TeamID],
			SeasonTotal: seasonTotal,
			WeekStats:   weekStats,
			Locked:      lockStatus.Locked,
			Opponent:    opponent,
		})
	}

	sortRoster(filtered, query.SortKey, query.Descending)

	total := len(filtered)
	start := (query.Page - 1) * query.PageSize
	if start > total {
		start = total
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	return RosterPage{
		Players:      filtered[start:end],
		TotalPlayers: total,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}, nil
}

func sortRoster(items []RosterPlayer, key RosterSortKey, descending bool) {
	less, ok := rosterComparators[key]
	if !ok {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
