package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type potTableModel struct {
	GameTypeID int   `db:"game_type_id"`
	Place      int   `db:"place"`
	Amount     int64 `db:"amount"`
}

type weeklyWinnerTableModel struct {
	ID     int64  `db:"id"`
	Year   int    `db:"year"`
	Week   int    `db:"week"`
	Place  int    `db:"place"`
	UserID string `db:"user_id"`
}

type yearEndResultTableModel struct {
	ID         int64  `db:"id"`
	Year       int    `db:"year"`
	GameTypeID int    `db:"game_type_id"`
	Place      int    `db:"place"`
	UserID     string `db:"user_id"`
}

type weeklyWinnerInsertModel struct {
	Year   int    `db:"year"`
	Week   int    `db:"week"`
	Place  int    `db:"place"`
	UserID string `db:"user_id"`
}

type yearEndResultInsertModel struct {
	Year       int    `db:"year"`
	GameTypeID int    `db:"game_type_id"`
	Place      int    `db:"place"`
	UserID     string `db:"user_id"`
}

type PrizeRepository struct {
	db *sqlx.DB
}

func NewPrizeRepository(db *sqlx.DB) *PrizeRepository {
	return &PrizeRepository{db: db}
}

func (r *PrizeRepository) ListPots(ctx context.Context) ([]prize.Pot, error) {
	query, args, err := qb.Select("*").
		From("prize_pots").
		OrderBy("game_type_id", "place").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pots query: %w", err)
	}

	var rows []potTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pots: %w", err)
	}

	out := make([]prize.Pot, 0, len(rows))
	for _, row := range rows {
		out = append(out, prize.Pot{GameTypeID: row.GameTypeID, Place: row.Place, Amount: row.Amount})
	}
	return out, nil
}

func (r *PrizeRepository) ListWinners(ctx context.Context, year int) ([]prize.WeeklyWinner, error) {
	query, args, err := qb.Select("*").
		From("weekly_winners").
		Where(qb.Eq("year", year)).
		OrderBy("week", "place").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list winners query: %w", err)
	}

	var rows []weeklyWinnerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list winners: %w", err)
	}

	out := make([]prize.WeeklyWinner, 0, len(rows))
	for _, row := range rows {
		out = append(out, prize.WeeklyWinner{
			ID:     row.ID,
			Year:   row.Year,
			Week:   row.Week,
			Place:  row.Place,
			UserID: row.UserID,
		})
	}
	return out, nil
}

func (r *PrizeRepository) UpsertWinner(ctx context.Context, item prize.WeeklyWinner) error {
	insertModel := weeklyWinnerInsertModel{
		Year:   item.Year,
		Week:   item.Week,
		Place:  item.Place,
		UserID: item.UserID,
	}

	query, args, err := qb.InsertModel("weekly_winners", insertModel, `ON CONFLICT (year, week, place)
DO UPDATE SET user_id = EXCLUDED.user_id`)
	if err != nil {
		return fmt.Errorf("build upsert winner query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert winner: %w", err)
	}
	return nil
}

func (r *PrizeRepository) ListYearEndResults(ctx context.Context, year int) ([]prize.YearEndResult, error) {
	query, args, err := qb.Select("*").
		From("year_end_results").
		Where(qb.Eq("year", year)).
		OrderBy("game_type_id", "place").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list year-end results query: %w", err)
	}

	var rows []yearEndResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list year-end results: %w", err)
	}

	out := make([]prize.YearEndResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, prize.YearEndResult{
			ID:         row.ID,
			Year:       row.Year,
			GameTypeID: row.GameTypeID,
			Place:      row.Place,
			UserID:     row.UserID,
		})
	}
	return out, nil
}

func (r *PrizeRepository) UpsertYearEndResult(ctx context.Context, item prize.YearEndResult) error {
	insertModel := yearEndResultInsertModel{
		Year:       item.Year,
		GameTypeID: item.GameTypeID,
		Place:      item.Place,
		UserID:     item.UserID,
	}

	query, args, err := qb.InsertModel("year_end_results", insertModel, `ON CONFLICT (year, game_type_id, user_id)
DO UPDATE SET place = EXCLUDED.place`)
	if err != nil {
		return fmt.Errorf("build upsert year-end result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert year-end result: %w", err)
	}
	return nil
}
