package usecase

import (
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
)

// rosterPositions is the fixed slot order of a weekly roster.
var rosterPositions = []player.Position{
	player.PositionQuarterback,
	player.PositionRunningBack,
	player.PositionWideReceiver,
	player.PositionTightEnd,
	player.PositionKicker,
	player.PositionDefense,
}

var rosterSize = len(rosterPositions)

// PositionDetail is one resolved roster slot: the picked player joined
// with lock state and that week's points.
type PositionDetail struct {
	PlayerID   int64
	FullName   string
	FirstName  string
	LastName   string
	Position   player.Position
	TeamID     int64
	Locked     bool
	OpponentID int64
	ScheduleID int64
	Points     float64
	WeekStats  []stats.WeeklyStat
}

// resolvePosition returns the first detail matching the position, or an
// unlocked placeholder when the slot is empty.
func resolvePosition(details []PositionDetail, position player.Position) PositionDetail {
	for _, d := range details {
		if d.Position == position {
			return d
		}
	}

	return PositionDetail{
		PlayerID:  0,
		FullName:  "None",
		FirstName: "None",
		Position:  position,
		Locked:    false,
	}
}
