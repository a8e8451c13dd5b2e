package pick

import (
	"fmt"

	"github.com/gridironpool/gridiron-pool/internal/domain/player"
)

// GameType distinguishes the league's game modes. Total points exists
// only for prize pot bookkeeping and never owns picks.
type GameType int

const (
	GameTypeWeekly      GameType = 1
	GameTypeSurvivor    GameType = 2
	GameTypeTotalPoints GameType = 3
)

func (g GameType) Valid() bool {
	return g == GameTypeWeekly || g == GameTypeSurvivor
}

const (
	FirstWeek = 1
	LastWeek  = 18
)

// Pick is a user's selection of one player for one roster position in one
// week. Uniqueness per (user, week, year, game type, position) is enforced
// by the mutation flow, not the schema.
type Pick struct {
	ID       int64
	UserID   string
	PlayerID int64
	Position player.Position
	Week     int
	Year     int
	GameType GameType
}

func (p Pick) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("pick user id is required")
	}
	if p.PlayerID <= 0 {
		return fmt.Errorf("pick player id must be positive")
	}
	if _, ok := player.AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid pick position: %s", p.Position)
	}
	if p.Week < FirstWeek || p.Week > LastWeek {
		return fmt.Errorf("pick week must be within %d-%d", FirstWeek, LastWeek)
	}
	if p.Year <= 0 {
		return fmt.Errorf("pick year is required")
	}
	if !p.GameType.Valid() {
		return fmt.Errorf("invalid pick game type: %d", p.GameType)
	}

	return nil
}
