package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMealNotFound = errors.New("meal not found")

type ListParams struct {
	UserID   int
	MealType string
	From     *time.Time
	To       *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meal
				(user_id, name, meal_type, calories, protein_grams, carbs_grams, fat_grams, consumed_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		meal.UserID, meal.Name, meal.MealType, meal.Calories,
		meal.ProteinGrams, meal.CarbsGrams, meal.FatGrams,
		meal.ConsumedAt, meal.CreatedAt,
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

	span.SetAttributes(attribute.Int("meal.id", id))

	meal.ID = id
	return &meal, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.String("meal_type", params.MealType))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, meal_type, calories, protein_grams, carbs_grams, fat_grams, consumed_at, created_at
			FROM meal
			WHERE user_id = $1
				AND ($2::text = '' OR meal_type = $2)
				AND ($3::timestamp IS NULL OR consumed_at >= $3)
				AND ($4::timestamp IS NULL OR consumed_at <= $4)
			ORDER BY consumed_at DESC;`,
		params.UserID, params.MealType, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	meals, err := r.rows2meals(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2meals: %w", err)
	}
	return meals, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meal WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *Repo) rows2meals(rows pgx.Rows) ([]Meal, error) {
	var meals []Meal
	for rows.Next() {
		var m Meal
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.MealType, &m.Calories,
			&m.ProteinGrams, &m.CarbsGrams, &m.FatGrams,
			&m.ConsumedAt, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}

	if meals == nil {
		meals = make([]Meal, 0)
	}

	return meals, nil
}
