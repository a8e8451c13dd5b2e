package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListActive(ctx context.Context) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(
			qb.IsNotNull("last_updated"),
			qb.Expr("team_id > 0"),
		).
		OrderBy("full_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getByIDSingleParam(ctx, playerID)
		}
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) getByIDSingleParam(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, _, err := playerBaseSelectBuilder().
		Where(qb.Expr("id = ($1::bigint[])[1]")).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player single param fallback query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, pq.Array([]int64{playerID})); err != nil {
		if isUnnamedPreparedStatementMissing(err) {
			return r.getByIDLiteral(ctx, playerID)
		}
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player fallback: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) getByIDLiteral(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.Expr("id = " + strconv.FormatInt(playerID, 10))).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player literal fallback query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player literal fallback: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query, _, err := playerBaseSelectBuilder().
		Where(qb.Expr("id = ANY($1)")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(playerIDs)); err != nil {
		return nil, fmt.Errorf("list players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("players")
}
