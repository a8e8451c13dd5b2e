package postgres

import (
	"time"

	"github.com/gridironpool/gridiron-pool/internal/domain/player"
)

type playerTableModel struct {
	ID          int64      `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	FullName    string     `db:"full_name"`
	Position    string     `db:"position"`
	TeamID      int64      `db:"team_id"`
	PictureURL  string     `db:"picture_url"`
	LastUpdated *time.Time `db:"last_updated"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		FullName:    row.FullName,
		Position:    player.Position(row.Position),
		TeamID:      row.TeamID,
		PictureURL:  row.PictureURL,
		LastUpdated: row.LastUpdated,
	}
}
