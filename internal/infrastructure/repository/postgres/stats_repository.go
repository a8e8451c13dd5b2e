package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) ListByWeek(ctx context.Context, week, year int) ([]stats.WeeklyStat, error) {
	query, args, err := statsBaseSelectBuilder().
		Where(
			qb.Eq("week", week),
			qb.Eq("year", year),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by week query: %w", err)
	}
	return r.selectStats(ctx, query, args, "list stats by week")
}

func (r *StatsRepository) ListByYear(ctx context.Context, year int) ([]stats.WeeklyStat, error) {
	query, args, err := statsBaseSelectBuilder().
		Where(qb.Eq("year", year)).
		OrderBy("player_id", "week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by year query: %w", err)
	}
	return r.selectStats(ctx, query, args, "list stats by year")
}

func (r *StatsRepository) ListByPlayerAndYear(ctx context.Context, playerID int64, year int) ([]stats.WeeklyStat, error) {
	query, args, err := statsBaseSelectBuilder().
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("year", year),
		).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by player query: %w", err)
	}
	return r.selectStats(ctx, query, args, "list stats by player")
}

func (r *StatsRepository) selectStats(ctx context.Context, query string, args []any, op string) ([]stats.WeeklyStat, error) {
	var rows []weeklyStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]stats.WeeklyStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, weeklyStatFromRow(row))
	}
	return out, nil
}

func statsBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("weekly_stats")
}
