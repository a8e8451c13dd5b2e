package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type alertTableModel struct {
	ID            int64  `db:"id"`
	HomeMessage   string `db:"home_message"`
	RosterMessage string `db:"roster_message"`
}

// AlertRepository persists the singleton banner row.
type AlertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Get(ctx context.Context) (alert.Alert, bool, error) {
	query, args, err := qb.Select("*").
		From("alerts").
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return alert.Alert{}, false, fmt.Errorf("build get alerts query: %w", err)
	}

	var row alertTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return alert.Alert{}, false, nil
		}
		return alert.Alert{}, false, fmt.Errorf("get alerts: %w", err)
	}
	return alert.Alert{HomeMessage: row.HomeMessage, RosterMessage: row.RosterMessage}, true, nil
}

func (r *AlertRepository) Save(ctx context.Context, item alert.Alert) error {
	_, exists, err := r.Get(ctx)
	if err != nil {
		return err
	}

	if exists {
		query, args, err := qb.Update("alerts").
			Set("home_message", item.HomeMessage).
			Set("roster_message", item.RosterMessage).
			Where(qb.Expr("id = (SELECT min(id) FROM alerts)")).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update alerts query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update alerts: %w", err)
		}
		return nil
	}

	query, args, err := qb.InsertInto("alerts").
		Columns("home_message", "roster_message").
		Values(item.HomeMessage, item.RosterMessage).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert alerts query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}
	return nil
}
