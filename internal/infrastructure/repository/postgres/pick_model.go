package postgres

import (
	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
)

type pickTableModel struct {
	ID       int64  `db:"id"`
	UserID   string `db:"user_id"`
	PlayerID int64  `db:"player_id"`
	Position string `db:"position"`
	Week     int    `db:"week"`
	Year     int    `db:"year"`
	GameType int    `db:"game_type_id"`
}

type pickInsertModel struct {
	UserID   string `db:"user_id"`
	PlayerID int64  `db:"player_id"`
	Position string `db:"position"`
	Week     int    `db:"week"`
	Year     int    `db:"year"`
	GameType int    `db:"game_type_id"`
}

func pickFromRow(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:       row.ID,
		UserID:   row.UserID,
		PlayerID: row.PlayerID,
		Position: player.Position(row.Position),
		Week:     row.Week,
		Year:     row.Year,
		GameType: pick.GameType(row.GameType),
	}
}

func pickToInsertModel(item pick.Pick) pickInsertModel {
	return pickInsertModel{
		UserID:   item.UserID,
		PlayerID: item.PlayerID,
		Position: string(item.Position),
		Week:     item.Week,
		Year:     item.Year,
		GameType: int(item.GameType),
	}
}
