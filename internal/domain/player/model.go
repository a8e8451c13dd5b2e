package player

import (
	"fmt"
	"strings"
	"time"
)

// Position represents the roster slots a player can fill.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DEF"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// Player is a selectable NFL athlete in the league pool. Identity is
// immutable; team assignment and stats move with the external sync.
type Player struct {
	ID          int64
	FirstName   string
	LastName    string
	FullName    string
	Position    Position
	TeamID      int64
	PictureURL  string
	LastUpdated *time.Time
}

// Active reports whether the player is part of the pickable pool: the
// sync has touched the row and the player is on a roster.
func (p Player) Active() bool {
	return p.LastUpdated != nil && p.TeamID > 0
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("player full name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
