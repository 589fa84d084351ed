package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO goal
				(user_id, title, category, target_value, current_value, unit, deadline, achieved, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		goal.UserID, goal.Title, goal.Category, goal.TargetValue, goal.CurrentValue,
		goal.Unit, goal.Deadline, goal.Achieved, goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("goal.id", id))

	goal.ID = id
	return &goal, nil
}

func (r *Repo) List(ctx context.Context, userID int, activeOnly bool) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Bool("active-only", activeOnly))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, category, target_value, current_value, unit, deadline, achieved, created_at, updated_at
			FROM goal
			WHERE user_id = $1
				AND ($2::boolean IS FALSE OR NOT achieved)
			ORDER BY created_at DESC;`,
		userID, activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2goals(rows)
}

func (r *Repo) ActiveCount(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.activecount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT COUNT(*) FROM goal WHERE user_id = $1 AND NOT achieved;`,
		userID,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get active goals count")
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", goal.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal
			SET title = $1, category = $2, target_value = $3, current_value = $4,
				unit = $5, deadline = $6, achieved = $7, updated_at = $8
			WHERE id = $9 AND user_id = $10;`,
		goal.Title, goal.Category, goal.TargetValue, goal.CurrentValue,
		goal.Unit, goal.Deadline, goal.Achieved, goal.UpdatedAt,
		goal.ID, goal.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM goal WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Title, &g.Category, &g.TargetValue, &g.CurrentValue,
			&g.Unit, &g.Deadline, &g.Achieved, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	if goals == nil {
		goals = make([]Goal, 0)
	}

	return goals, nil
}
