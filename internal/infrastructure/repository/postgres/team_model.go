package postgres

import "github.com/gridironpool/gridiron-pool/internal/domain/team"

type teamTableModel struct {
	ID   int64  `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
	City string `db:"city"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:   row.ID,
		Code: row.Code,
		Name: row.Name,
		City: row.City,
	}
}
