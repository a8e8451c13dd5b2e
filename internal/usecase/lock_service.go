package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
)

// lockLeadTime freezes a slot shortly before kickoff so late swaps cannot
// race the opening snap.
const lockLeadTime = 5 * time.Minute

// LockService derives per-team lock status for a week. Nothing here is
// persisted; every call recomputes from the schedule and the clock.
type LockService struct {
	scheduleRepo schedule.Repository
	teamRepo     team.Repository
	now          func() time.Time
	central      *time.Location
}

func NewLockService(scheduleRepo schedule.Repository, teamRepo team.Repository) *LockService {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		loc = time.FixedZone("CST", -6*60*60)
	}

	return &LockService{
		scheduleRepo: scheduleRepo,
		teamRepo:     teamRepo,
		now:          time.Now,
		central:      loc,
	}
}

// TeamLockStatuses returns one record per team for the week. Both sides of
// a scheduled game share the same lock decision; bye teams are always
// locked with schedule id 0.
func (s *LockService) TeamLockStatuses(ctx context.Context, week, year int) ([]schedule.TeamLockStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LockService.TeamLockStatuses")
	defer span.End()

	if week < 1 || week > 18 {
		return nil, fmt.Errorf("%w: week must be within 1-18", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	games, err := s.scheduleRepo.ListByWeek(ctx, week, year)
	if err != nil {
		return nil, fmt.Errorf("list schedule for week: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	now := s.CentralNow()

	out := make([]schedule.TeamLockStatus, 0, len(teams))
	scheduled := make(map[int64]struct{}, len(games)*2)
	for _, game := range games {
		locked := !now.Before(game.Kickoff.Add(-lockLeadTime))
		out = append(out,
			schedule.TeamLockStatus{
				TeamID:     game.HomeTeamID,
				Locked:     locked,
				OpponentID: game.AwayTeamID,
				ScheduleID: game.ID,
			},
			schedule.TeamLockStatus{
				TeamID:     game.AwayTeamID,
				Locked:     locked,
				OpponentID: game.HomeTeamID,
				ScheduleID: game.ID,
			},
		)
		scheduled[game.HomeTeamID] = struct{}{}
		scheduled[game.AwayTeamID] = struct{}{}
	}

	for _, t := range teams {
		if _, ok := scheduled[t.ID]; ok {
			continue
		}
		out = append(out, schedule.TeamLockStatus{TeamID: t.ID, Locked: true})
	}

	return out, nil
}

// CentralNow shifts the clock to US Central Time with the league's fixed
// offset convention: -5h while daylight saving is active, -6h otherwise.
// Kickoff times in the schedule follow the same convention.
func (s *LockService) CentralNow() time.Time {
	now := s.now().UTC()
	offset := -6 * time.Hour
	if s.centralDST(now) {
		offset = -5 * time.Hour
	}
	return now.Add(offset)
}

func (s *LockService) centralDST(now time.Time) bool {
	_, seconds := now.In(s.central).Zone()
	return seconds == -5*60*60
}

// SetClock overrides the time source. Intended for tests.
func (s *LockService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
