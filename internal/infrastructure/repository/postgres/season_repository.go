package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/season"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type seasonTableModel struct {
	Year      int       `db:"year"`
	StartDate time.Time `db:"start_date"`
}

type seasonWeekTableModel struct {
	Year      int       `db:"year"`
	Week      int       `db:"week"`
	StartDate time.Time `db:"start_date"`
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Get(ctx context.Context, year int) (season.Season, bool, error) {
	query, args, err := qb.Select("*").
		From("seasons").
		Where(qb.Eq("year", year)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}
	return season.Season{Year: row.Year, StartDate: row.StartDate}, true, nil
}

// Create writes the season and its week rows in one transaction.
func (r *SeasonRepository) Create(ctx context.Context, item season.Season, weeks []season.Week) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create season: %w", err)
	}
	defer tx.Rollback()

	query, args, err := qb.InsertInto("seasons").
		Columns("year", "start_date").
		Values(item.Year, item.StartDate).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert season: %w", err)
	}

	for _, w := range weeks {
		query, args, err := qb.InsertInto("season_weeks").
			Columns("year", "week", "start_date").
			Values(w.Year, w.Week, w.StartDate).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert season week query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert season week: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create season: %w", err)
	}
	return nil
}

func (r *SeasonRepository) ListWeeks(ctx context.Context, year int) ([]season.Week, error) {
	query, args, err := qb.Select("*").
		From("season_weeks").
		Where(qb.Eq("year", year)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season weeks query: %w", err)
	}

	var rows []seasonWeekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season weeks: %w", err)
	}

	out := make([]season.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Week{Year: row.Year, Week: row.Week, StartDate: row.StartDate})
	}
	return out, nil
}
