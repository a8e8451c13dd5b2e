package postgres

import "github.com/gridironpool/gridiron-pool/internal/domain/user"

type userTableModel struct {
	ID       string `db:"id"`
	UserName string `db:"user_name"`
	TeamName string `db:"team_name"`
	Email    string `db:"email"`
	Paid     bool   `db:"paid"`
	Survival bool   `db:"survival"`
	Admin    bool   `db:"admin"`
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:       row.ID,
		UserName: row.UserName,
		TeamName: row.TeamName,
		Email:    row.Email,
		Paid:     row.Paid,
		Survival: row.Survival,
		Admin:    row.Admin,
	}
}
