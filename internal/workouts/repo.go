package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPlanNotFound    = errors.New("workout plan not found")
	ErrSessionNotFound = errors.New("workout session not found")
)

type ListPlansParams struct {
	UserID     int
	ActiveOnly bool
}

type ListSessionsParams struct {
	UserID int
	PlanID int // 0 means all plans
	Limit  int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddPlan(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(plan.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_plan
				(user_id, name, description, difficulty, duration_weeks, exercises, is_active, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		plan.UserID, plan.Name, plan.Description, plan.Difficulty, plan.DurationWeeks,
		exercisesJson, plan.IsActive, plan.CreatedAt, plan.UpdatedAt,
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

	span.SetAttributes(attribute.Int("plan.id", id))

	plan.ID = id
	return &plan, nil
}

func (r *Repo) GetPlan(ctx context.Context, userID, id int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, difficulty, duration_weeks, exercises, is_active, created_at, updated_at
			FROM workout_plan WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}

	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}

	return &plans[0], nil
}

func (r *Repo) ListPlans(ctx context.Context, params ListPlansParams) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listplans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.Bool("active-only", params.ActiveOnly))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, difficulty, duration_weeks, exercises, is_active, created_at, updated_at
			FROM workout_plan
			WHERE user_id = $1
				AND ($2::boolean IS FALSE OR is_active)
			ORDER BY created_at DESC;`,
		params.UserID, params.ActiveOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2plans: %w", err)
	}
	return plans, nil
}

func (r *Repo) UpdatePlan(ctx context.Context, plan *Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", plan.ID))

	exercisesJson, err := json.Marshal(plan.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_plan
			SET name = $1, description = $2, difficulty = $3, duration_weeks = $4,
				exercises = $5, is_active = $6, updated_at = $7
			WHERE id = $8 AND user_id = $9;`,
		plan.Name, plan.Description, plan.Difficulty, plan.DurationWeeks,
		exercisesJson, plan.IsActive, plan.UpdatedAt,
		plan.ID, plan.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *Repo) DeletePlan(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_plan WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addsession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_session
				(user_id, plan_id, date, duration_minutes, notes, rating, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		session.UserID, session.PlanID, session.Date, session.DurationMinutes,
		session.Notes, session.Rating, session.CreatedAt,
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

	span.SetAttributes(attribute.Int("session.id", id))

	session.ID = id
	return &session, nil
}

func (r *Repo) ListSessions(ctx context.Context, params ListSessionsParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listsessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.Int("plan.id", params.PlanID))

	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, plan_id, date, duration_minutes, notes, rating, created_at
			FROM workout_session
			WHERE user_id = $1
				AND ($2::int = 0 OR plan_id = $2)
			ORDER BY date DESC
			LIMIT $3;`,
		params.UserID, params.PlanID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2sessions(rows)
}

// SessionsCountSince counts the sessions of a user since the given time,
// used for the stats overview.
func (r *Repo) SessionsCountSince(ctx context.Context, userID int, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionscountsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1 AND date >= $2;`,
		userID, since,
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

	return -1, errors.New("unexpected error, failed to get sessions count")
}

func (r *Repo) SessionsCount(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionscount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1;`,
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

	return -1, errors.New("unexpected error, failed to get sessions count")
}

func (r *Repo) DeleteSession(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deletesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]Plan, error) {
	var plans []Plan
	for rows.Next() {
		var p Plan
		var exercisesBytes []byte
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.Difficulty, &p.DurationWeeks,
			&exercisesBytes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &p.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for plan %d: %w", p.ID, err)
			}
		}
		if p.Exercises == nil {
			p.Exercises = make([]PlanExercise, 0)
		}

		plans = append(plans, p)
	}

	if plans == nil {
		plans = make([]Plan, 0)
	}

	return plans, nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.PlanID, &s.Date, &s.DurationMinutes,
			&s.Notes, &s.Rating, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if sessions == nil {
		sessions = make([]Session, 0)
	}

	return sessions, nil
}
