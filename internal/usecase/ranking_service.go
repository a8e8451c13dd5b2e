package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

// RankingService computes season-to-date standings for a game mode.
type RankingService struct {
	userRepo  user.Repository
	pickRepo  pick.Repository
	statsRepo stats.Repository
}

func NewRankingService(userRepo user.Repository, pickRepo pick.Repository, statsRepo stats.Repository) *RankingService {
	return &RankingService{
		userRepo:  userRepo,
		pickRepo:  pickRepo,
		statsRepo: statsRepo,
	}
}

type UserRanking struct {
	Rank        int
	UserID      string
	TeamName    string
	TotalPoints float64
}

// SeasonRankings sums every eligible user's points across their picks for
// the year and ranks them descending. Equal totals share a rank; the next
// distinct total resumes at its ordinal position.
func (s *RankingService) SeasonRankings(ctx context.Context, year int, gameType pick.GameType) ([]UserRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.SeasonRankings")
	defer span.End()

	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if !gameType.Valid() {
		return nil, fmt.Errorf("%w: invalid game type %d", ErrInvalidInput, gameType)
	}

	users, err := s.userRepo.ListEligible(ctx, gameType == pick.GameTypeSurvivor)
	if err != nil {
		return nil, fmt.Errorf("list eligible users: %w", err)
	}

	picks, err := s.pickRepo.ListByYear(ctx, year, gameType)
	if err != nil {
		return nil, fmt.Errorf("list picks for year: %w", err)
	}
	picksByUser := make(map[string][]pick.Pick, len(users))
	for _, p := range picks {
		picksByUser[p.UserID] = append(picksByUser[p.UserID], p)
	}

	yearStats, err := s.statsRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list stats for year: %w", err)
	}
	pointsByPlayerWeek := make(map[playerWeekKey]float64, len(yearStats))
	for _, st := range yearStats {
		pointsByPlayerWeek[playerWeekKey{playerID: st.PlayerID, week: st.Week}] = st.TotalPoints
	}

	rankings := make([]UserRanking, 0, len(users))
	for _, u := range users {
		total := 0.0
		for _, p := range picksByUser[u.ID] {
			total += pointsByPlayerWeek[playerWeekKey{playerID: p.PlayerID, week: p.Week}]
		}
		rankings = append(rankings, UserRanking{
			UserID:      u.ID,
			TeamName:    u.DisplayName(),
			TotalPoints: total,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalPoints > rankings[j].TotalPoints
	})
	for i := range rankings {
		if i > 0 && rankings[i].TotalPoints == rankings[i-1].TotalPoints {
			rankings[i].Rank = rankings[i-1].Rank
			continue
		}
		rankings[i].Rank = i + 1
	}

	return rankings, nil
}

type playerWeekKey struct {
	playerID int64
	week     int
}
