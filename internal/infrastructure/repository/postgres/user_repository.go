package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironpool/gridiron-pool/internal/domain/user"
	qb "github.com/gridironpool/gridiron-pool/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := userBaseSelectBuilder().
		OrderBy("user_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}
	return r.selectUsers(ctx, query, args, "list users")
}

func (r *UserRepository) ListEligible(ctx context.Context, requireSurvival bool) ([]user.User, error) {
	conditions := []qb.Condition{qb.Eq("paid", true)}
	if requireSurvival {
		conditions = append(conditions, qb.Eq("survival", true))
	}

	query, args, err := userBaseSelectBuilder().
		Where(conditions...).
		OrderBy("user_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list eligible users query: %w", err)
	}
	return r.selectUsers(ctx, query, args, "list eligible users")
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := userBaseSelectBuilder().
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}
	return r.getUser(ctx, query, args, "get user")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	query, args, err := userBaseSelectBuilder().
		Where(qb.Expr("lower(email) = lower(?)", email)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by email query: %w", err)
	}
	return r.getUser(ctx, query, args, "get user by email")
}

func (r *UserRepository) Update(ctx context.Context, item user.User) error {
	query, args, err := qb.Update("users").
		Set("user_name", item.UserName).
		Set("team_name", item.TeamName).
		Set("email", item.Email).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) SetFlags(ctx context.Context, userID string, paid, survival bool) error {
	query, args, err := qb.Update("users").
		Set("paid", paid).
		Set("survival", survival).
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set user flags query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set user flags: %w", err)
	}
	return nil
}

func (r *UserRepository) UserNameTaken(ctx context.Context, userName, excludeUserID string) (bool, error) {
	query, args, err := qb.Select("count(*)").
		From("users").
		Where(
			qb.Expr("lower(user_name) = lower(?)", userName),
			qb.Expr("id <> ?", excludeUserID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build user name taken query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check user name taken: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email, excludeUserID string) (bool, error) {
	query, args, err := qb.Select("count(*)").
		From("users").
		Where(
			qb.Expr("lower(email) = lower(?)", email),
			qb.Expr("id <> ?", excludeUserID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build email taken query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check email taken: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) getUser(ctx context.Context, query string, args []any, op string) (user.User, bool, error) {
	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return userFromRow(row), true, nil
}

func (r *UserRepository) selectUsers(ctx context.Context, query string, args []any, op string) ([]user.User, error) {
	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func userBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("users")
}
