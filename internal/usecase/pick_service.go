package usecase

import (
	"context"
	"fmt"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/platform/logging"
)

// PickService applies roster mutations. Saves against locked slots are
// dropped silently rather than rejected; the caller only learns whether
// the request was processed without an internal failure.
type PickService struct {
	pickRepo   pick.Repository
	playerRepo player.Repository
	lock       *LockService
	logger     *logging.Logger
}

func NewPickService(
	pickRepo pick.Repository,
	playerRepo player.Repository,
	lock *LockService,
	logger *logging.Logger,
) *PickService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PickService{
		pickRepo:   pickRepo,
		playerRepo: playerRepo,
		lock:       lock,
		logger:     logger,
	}
}

// SavePick places a player into the user's roster slot for the week. The
// slot comes from the player's own position. Returns false only when an
// internal failure prevented the save; a no-op against a locked team still
// reports true.
func (s *PickService) SavePick(ctx context.Context, userID string, playerID int64, week, year int, gameType pick.GameType) bool {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.SavePick")
	defer span.End()

	if userID == "" || playerID <= 0 || year <= 0 {
		s.logger.WarnContext(ctx, "pick save rejected", "user_id", userID, "player_id", playerID, "year", year)
		return false
	}
	if week < pick.FirstWeek || week > pick.LastWeek {
		s.logger.WarnContext(ctx, "pick save rejected", "week", week)
		return false
	}
	if !gameType.Valid() {
		s.logger.WarnContext(ctx, "pick save rejected", "game_type", int(gameType))
		return false
	}

	var err error
	switch gameType {
	case pick.GameTypeWeekly:
		err = s.saveWeeklyPick(ctx, userID, playerID, week, year)
	case pick.GameTypeSurvivor:
		err = s.saveSurvivorPick(ctx, userID, playerID, week, year)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "pick save failed",
			"error", err,
			"user_id", userID,
			"player_id", playerID,
			"week", week,
			"year", year,
			"game_type", int(gameType),
		)
		return false
	}
	return true
}

func (s *PickService) saveWeeklyPick(ctx context.Context, userID string, playerID int64, week, year int) error {
	target, lockByTeam, err := s.loadTarget(ctx, playerID, week, year)
	if err != nil || target == nil {
		return err
	}
	if teamLocked(lockByTeam, target.TeamID) {
		return nil
	}

	existing, found, err := s.pickRepo.Get(ctx, userID, week, year, pick.GameTypeWeekly, target.Position)
	if err != nil {
		return fmt.Errorf("load existing pick: %w", err)
	}
	if found {
		old, ok, err := s.playerRepo.GetByID(ctx, existing.PlayerID)
		if err != nil {
			return fmt.Errorf("load existing pick player: %w", err)
		}
		if ok && teamLocked(lockByTeam, old.TeamID) {
			return nil
		}
		if err := s.pickRepo.Delete(ctx, existing.ID); err != nil {
			return fmt.Errorf("delete existing pick: %w", err)
		}
	}

	return s.pickRepo.Insert(ctx, pick.Pick{
		UserID:   userID,
		PlayerID: playerID,
		Position: target.Position,
		Week:     week,
		Year:     year,
		GameType: pick.GameTypeWeekly,
	})
}

// saveSurvivorPick fills every week of the season with the same player.
// Survivor rosters are only open during week one.
func (s *PickService) saveSurvivorPick(ctx context.Context, userID string, playerID int64, week, year int) error {
	if week != pick.FirstWeek {
		return nil
	}

	target, lockByTeam, err := s.loadTarget(ctx, playerID, week, year)
	if err != nil || target == nil {
		return err
	}
	if teamLocked(lockByTeam, target.TeamID) {
		return nil
	}

	existing, found, err := s.pickRepo.Get(ctx, userID, week, year, pick.GameTypeSurvivor, target.Position)
	if err != nil {
		return fmt.Errorf("load existing pick: %w", err)
	}
	if found {
		old, ok, err := s.playerRepo.GetByID(ctx, existing.PlayerID)
		if err != nil {
			return fmt.Errorf("load existing pick player: %w", err)
		}
		if ok && teamLocked(lockByTeam, old.TeamID) {
			return nil
		}
	}

	if err := s.pickRepo.DeleteByUserPosition(ctx, userID, year, pick.GameTypeSurvivor, target.Position); err != nil {
		return fmt.Errorf("delete survivor picks: %w", err)
	}

	batch := make([]pick.Pick, 0, pick.LastWeek)
	for w := pick.FirstWeek; w <= pick.LastWeek; w++ {
		batch = append(batch, pick.Pick{
			UserID:   userID,
			PlayerID: playerID,
			Position: target.Position,
			Week:     w,
			Year:     year,
			GameType: pick.GameTypeSurvivor,
		})
	}
	return s.pickRepo.InsertBatch(ctx, batch)
}

// loadTarget fetches the picked player and the week's lock map. A nil
// player with a nil error means the target does not exist and the save
// should quietly stop.
func (s *PickService) loadTarget(ctx context.Context, playerID int64, week, year int) (*player.Player, map[int64]schedule.TeamLockStatus, error) {
	target, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load player: %w", err)
	}
	if !ok {
		return nil, nil, nil
	}

	locks, err := s.lock.TeamLockStatuses(ctx, week, year)
	if err != nil {
		return nil, nil, err
	}
	lockByTeam := make(map[int64]schedule.TeamLockStatus, len(locks))
	for _, l := range locks {
		lockByTeam[l.TeamID] = l
	}
	return &target, lockByTeam, nil
}

// teamLocked treats a team with no lock record as locked.
func teamLocked(lockByTeam map[int64]schedule.TeamLockStatus, teamID int64) bool {
	status, ok := lockByTeam[teamID]
	if !ok {
		return true
	}
	return status.Locked
}
