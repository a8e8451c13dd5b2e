package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) ListByWeek(ctx context.Context, week, year int, gameType pick.GameType) ([]pick.Pick, error) {
	query, args, err := pickBaseSelectBuilder().
		Where(
			qb.Eq("week", week),
			qb.Eq("year", year),
			qb.Eq("game_type_id", int(gameType)),
		).
		OrderBy("user_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by week query: %w", err)
	}
	return r.selectPicks(ctx, query, args, "list picks by week")
}

func (r *PickRepository) ListByUserAndWeek(ctx context.Context, userID string, week, year int, gameType pick.GameType) ([]pick.Pick, error) {
	query, args, err := pickBaseSelectBuilder().
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("week", week),
			qb.Eq("year", year),
			qb.Eq("game_type_id", int(gameType)),
		).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by user query: %w", err)
	}
	return r.selectPicks(ctx, query, args, "list picks by user")
}

func (r *PickRepository) ListByYear(ctx context.Context, year int, gameType pick.GameType) ([]pick.Pick, error) {
	query, args, err := pickBaseSelectBuilder().
		Where(
			qb.Eq("year", year),
			qb.Eq("game_type_id", int(gameType)),
		).
		OrderBy("user_id", "week", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by year query: %w", err)
	}
	return r.selectPicks(ctx, query, args, "list picks by year")
}

func (r *PickRepository) Get(ctx context.Context, userID string, week, year int, gameType pick.GameType, position player.Position) (pick.Pick, bool, error) {
	query, args, err := pickBaseSelectBuilder().
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("week", week),
			qb.Eq("year", year),
			qb.Eq("game_type_id", int(gameType)),
			qb.Eq("position", string(position)),
		).
		ToSQL()
	if err != nil {
		return pick.Pick{}, false, fmt.Errorf("build get pick query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pick.Pick{}, false, nil
		}
		return pick.Pick{}, false, fmt.Errorf("get pick: %w", err)
	}
	return pickFromRow(row), true, nil
}

func (r *PickRepository) Insert(ctx context.Context, item pick.Pick) error {
	query, args, err := qb.InsertModel("picks", pickToInsertModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert pick query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert pick: %w", err)
	}
	return nil
}

func (r *PickRepository) InsertBatch(ctx context.Context, items []pick.Pick) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin pick batch: %w", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		query, args, err := qb.InsertModel("picks", pickToInsertModel(item), "")
		if err != nil {
			return fmt.Errorf("build insert pick query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert pick batch row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit pick batch: %w", err)
	}
	return nil
}

func (r *PickRepository) Delete(ctx context.Context, pickID int64) error {
	query, args, err := qb.DeleteFrom("picks").
		Where(qb.Eq("id", pickID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete pick query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete pick: %w", err)
	}
	return nil
}

func (r *PickRepository) DeleteByUserPosition(ctx context.Context, userID string, year int, gameType pick.GameType, position player.Position) error {
	query, args, err := qb.DeleteFrom("picks").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("year", year),
			qb.Eq("game_type_id", int(gameType)),
			qb.Eq("position", string(position)),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete picks by position query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete picks by position: %w", err)
	}
	return nil
}

func (r *PickRepository) selectPicks(ctx context.Context, query string, args []any, op string) ([]pick.Pick, error) {
	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

func pickBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("picks")
}
