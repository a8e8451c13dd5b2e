package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type tiebreakerTableModel struct {
	UserID         string `db:"user_id"`
	ScheduleID     int64  `db:"schedule_id"`
	PredictedTotal int    `db:"predicted_total"`
}

func tiebreakerFromRow(row tiebreakerTableModel) tiebreaker.Prediction {
	return tiebreaker.Prediction{
		UserID:         row.UserID,
		ScheduleID:     row.ScheduleID,
		PredictedTotal: row.PredictedTotal,
	}
}

type TiebreakerRepository struct {
	db *sqlx.DB
}

func NewTiebreakerRepository(db *sqlx.DB) *TiebreakerRepository {
	return &TiebreakerRepository{db: db}
}

func (r *TiebreakerRepository) ListBySchedules(ctx context.Context, scheduleIDs []int64) ([]tiebreaker.Prediction, error) {
	if len(scheduleIDs) == 0 {
		return nil, nil
	}

	query, _, err := tiebreakerBaseSelectBuilder().
		Where(qb.Expr("schedule_id = ANY($1)")).
		OrderBy("user_id", "schedule_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []tiebreakerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(scheduleIDs)); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]tiebreaker.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, tiebreakerFromRow(row))
	}
	return out, nil
}

func (r *TiebreakerRepository) ListByUserAndSchedules(ctx context.Context, userID string, scheduleIDs []int64) ([]tiebreaker.Prediction, error) {
	if len(scheduleIDs) == 0 {
		return nil, nil
	}

	query, args, err := tiebreakerBaseSelectBuilder().
		Where(
			qb.Eq("user_id", userID),
			qb.Expr("schedule_id = ANY(?)", pq.Array(scheduleIDs)),
		).
		OrderBy("schedule_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list user predictions query: %w", err)
	}

	var rows []tiebreakerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list user predictions: %w", err)
	}

	out := make([]tiebreaker.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, tiebreakerFromRow(row))
	}
	return out, nil
}

func (r *TiebreakerRepository) Upsert(ctx context.Context, item tiebreaker.Prediction) error {
	insertModel := tiebreakerTableModel{
		UserID:         item.UserID,
		ScheduleID:     item.ScheduleID,
		PredictedTotal: item.PredictedTotal,
	}

	query, args, err := qb.InsertModel("user_tie_breakers", insertModel, `ON CONFLICT (user_id, schedule_id)
DO UPDATE SET predicted_total = EXCLUDED.predicted_total`)
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func tiebreakerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("user_tie_breakers")
}
