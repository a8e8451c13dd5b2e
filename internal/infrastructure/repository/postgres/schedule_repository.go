package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListByWeek(ctx context.Context, week, year int) ([]schedule.Game, error) {
	query, args, err := scheduleBaseSelectBuilder().
		Where(
			qb.Eq("week", week),
			qb.Eq("year", year),
		).
		OrderBy("kickoff", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games by week query: %w", err)
	}
	return r.selectGames(ctx, query, args, "list games by week")
}

func (r *ScheduleRepository) ListTieBreakGames(ctx context.Context, week, year int) ([]schedule.Game, error) {
	query, args, err := scheduleBaseSelectBuilder().
		Where(
			qb.Eq("week", week),
			qb.Eq("year", year),
			qb.Eq("tie_break_game", true),
		).
		OrderBy("kickoff", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tie-break games query: %w", err)
	}
	return r.selectGames(ctx, query, args, "list tie-break games")
}

func (r *ScheduleRepository) GetByID(ctx context.Context, gameID int64) (schedule.Game, bool, error) {
	query, args, err := scheduleBaseSelectBuilder().
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return schedule.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row scheduleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Game{}, false, nil
		}
		return schedule.Game{}, false, fmt.Errorf("get game: %w", err)
	}
	return scheduleFromRow(row), true, nil
}

func (r *ScheduleRepository) Insert(ctx context.Context, game schedule.Game) (int64, error) {
	insertModel := scheduleInsertModel{
		Week:         game.Week,
		Year:         game.Year,
		HomeTeamID:   game.HomeTeamID,
		AwayTeamID:   game.AwayTeamID,
		Kickoff:      game.Kickoff,
		TieBreakGame: game.TieBreakGame,
	}

	query, args, err := qb.InsertModel("team_schedules", insertModel, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert game query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	return id, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, game schedule.Game) error {
	query, args, err := qb.Update("team_schedules").
		Set("week", game.Week).
		Set("year", game.Year).
		Set("home_team_id", game.HomeTeamID).
		Set("away_team_id", game.AwayTeamID).
		Set("kickoff", game.Kickoff).
		Set("tie_break_game", game.TieBreakGame).
		Where(qb.Eq("id", game.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, gameID int64) error {
	query, args, err := qb.DeleteFrom("team_schedules").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) SetTieBreak(ctx context.Context, gameID int64, tieBreak bool) error {
	query, args, err := qb.Update("team_schedules").
		Set("tie_break_game", tieBreak).
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set tie-break query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set tie-break flag: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) UpdateScores(ctx context.Context, gameID int64, homeScore, awayScore *int) error {
	query, args, err := qb.Update("team_schedules").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update scores query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update scores: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) selectGames(ctx context.Context, query string, args []any, op string) ([]schedule.Game, error) {
	var rows []scheduleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleFromRow(row))
	}
	return out, nil
}

func scheduleBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("team_schedules")
}
