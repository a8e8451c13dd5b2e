package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	"github.com/gridironpool/gridiron-pool/internal/domain/user"
)

// ResultsService renders the payout side of the league: weekly winners,
// season-final placements, and per-user earnings.
type ResultsService struct {
	prizeRepo prize.Repository
	userRepo  user.Repository
}

func NewResultsService(prizeRepo prize.Repository, userRepo user.Repository) *ResultsService {
	return &ResultsService{
		prizeRepo: prizeRepo,
		userRepo:  userRepo,
	}
}

// WinnerEntry is one placement with its payout resolved from the pot.
type WinnerEntry struct {
	Week       int
	Place      int
	UserID     string
	TeamName   string
	GameTypeID int
	Payout     int64
}

// UserEarnings sums a user's payouts for the year across weekly and
// year-end placements.
type UserEarnings struct {
	UserID   string
	TeamName string
	Total    int64
}

// WeeklyWinners lists placements for one week with payouts from the
// weekly pot. Week zero returns the whole season.
func (s *ResultsService) WeeklyWinners(ctx context.Context, year, week int) ([]WinnerEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.WeeklyWinners")
	defer span.End()

	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if week < 0 || week > pick.LastWeek {
		return nil, fmt.Errorf("%w: week must be within 0-%d", ErrInvalidInput, pick.LastWeek)
	}

	winners, err := s.prizeRepo.ListWinners(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list weekly winners: %w", err)
	}

	payouts, err := s.potPayouts(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.displayNames(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]WinnerEntry, 0, len(winners))
	for _, w := range winners {
		if week > 0 && w.Week != week {
			continue
		}
		entries = append(entries, WinnerEntry{
			Week:       w.Week,
			Place:      w.Place,
			UserID:     w.UserID,
			TeamName:   names[w.UserID],
			GameTypeID: int(pick.GameTypeWeekly),
			Payout:     payouts[potKey{gameTypeID: int(pick.GameTypeWeekly), place: w.Place}],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Week != entries[j].Week {
			return entries[i].Week < entries[j].Week
		}
		return entries[i].Place < entries[j].Place
	})
	return entries, nil
}

// YearEndResults lists season-final placements across all game types with
// payouts from their pots.
func (s *ResultsService) YearEndResults(ctx context.Context, year int) ([]WinnerEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.YearEndResults")
	defer span.End()

	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	results, err := s.prizeRepo.ListYearEndResults(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list year-end results: %w", err)
	}

	payouts, err := s.potPayouts(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.displayNames(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]WinnerEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, WinnerEntry{
			Place:      r.Place,
			UserID:     r.UserID,
			TeamName:   names[r.UserID],
			GameTypeID: r.GameTypeID,
			Payout:     payouts[potKey{gameTypeID: r.GameTypeID, place: r.Place}],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].GameTypeID != entries[j].GameTypeID {
			return entries[i].GameTypeID < entries[j].GameTypeID
		}
		return entries[i].Place < entries[j].Place
	})
	return entries, nil
}

// Earnings totals each user's payouts for the year. Users with no
// placement are omitted.
func (s *ResultsService) Earnings(ctx context.Context, year int) ([]UserEarnings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.Earnings")
	defer span.End()

	weekly, err := s.WeeklyWinners(ctx, year, 0)
	if err != nil {
		return nil, err
	}
	yearEnd, err := s.YearEndResults(ctx, year)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*UserEarnings)
	add := func(entry WinnerEntry) {
		e, ok := totals[entry.UserID]
		if !ok {
			e = &UserEarnings{UserID: entry.UserID, TeamName: entry.TeamName}
			totals[entry.UserID] = e
		}
		e.Total += entry.Payout
	}
	for _, entry := range weekly {
		add(entry)
	}
	for _, entry := range yearEnd {
		add(entry)
	}

	out := make([]UserEarnings, 0, len(totals))
	for _, e := range totals {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out, nil
}

type potKey struct {
	gameTypeID int
	place      int
}

func (s *ResultsService) potPayouts(ctx context.Context) (map[potKey]int64, error) {
	pots, err := s.prizeRepo.ListPots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prize pots: %w", err)
	}
	payouts := make(map[potKey]int64, len(pots))
	for _, pot := range pots {
		payouts[potKey{gameTypeID: pot.GameTypeID, place: pot.Place}] = pot.Amount
	}
	return payouts, nil
}

func (s *ResultsService) displayNames(ctx context.Context) (map[string]string, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}
	return names, nil
}
