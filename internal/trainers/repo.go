package trainers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrClientLinkNotFound = errors.New("client link not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByUserID(ctx context.Context, userID int) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.getbyuserid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, bio, specialties, hourly_rate, rating, created_at
			FROM trainer WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	trainers, err := r.rows2trainers(rows)
	if err != nil {
		return nil, err
	}

	if len(trainers) != 1 {
		return nil, ErrTrainerNotFound
	}

	return &trainers[0], nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, bio, specialties, hourly_rate, rating, created_at
			FROM trainer WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	trainers, err := r.rows2trainers(rows)
	if err != nil {
		return nil, err
	}

	if len(trainers) != 1 {
		return nil, ErrTrainerNotFound
	}

	return &trainers[0], nil
}

func (r *Repo) List(ctx context.Context) (_ []Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, bio, specialties, hourly_rate, rating, created_at
			FROM trainer
			ORDER BY rating DESC, created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2trainers(rows)
}

// Upsert creates the trainer profile of a user, or updates it if one exists.
// The rating column stays repo-managed and is not written here.
func (r *Repo) Upsert(ctx context.Context, trainer Trainer) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", trainer.UserID))

	specialtiesJson, err := json.Marshal(trainer.Specialties)
	if err != nil {
		return nil, fmt.Errorf("marshal specialties: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO trainer (user_id, bio, specialties, hourly_rate, rating, created_at)
				VALUES ($1, $2, $3, $4, 0, $5)
			ON CONFLICT (user_id) DO UPDATE
				SET bio = EXCLUDED.bio,
					specialties = EXCLUDED.specialties,
					hourly_rate = EXCLUDED.hourly_rate
			RETURNING id, rating, created_at;`,
		trainer.UserID, trainer.Bio, specialtiesJson, trainer.HourlyRate, trainer.CreatedAt,
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

	if err := rows.Scan(&trainer.ID, &trainer.Rating, &trainer.CreatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("trainer.id", trainer.ID))

	return &trainer, nil
}

func (r *Repo) AddClientLink(ctx context.Context, link ClientLink) (_ *ClientLink, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.addclientlink")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", link.TrainerID))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO trainer_client (trainer_id, client_user_id, status, created_at)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (trainer_id, client_user_id) DO NOTHING;`,
		link.TrainerID, link.ClientUserID, link.Status, link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, errors.New("client link already exists")
	}

	return &link, nil
}

func (r *Repo) ListClientLinks(ctx context.Context, trainerID int) (_ []ClientLink, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.listclientlinks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT trainer_id, client_user_id, status, created_at
			FROM trainer_client
			WHERE trainer_id = $1
			ORDER BY created_at DESC;`,
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var links []ClientLink
	for rows.Next() {
		var l ClientLink
		if err := rows.Scan(&l.TrainerID, &l.ClientUserID, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	if links == nil {
		links = make([]ClientLink, 0)
	}

	return links, nil
}

func (r *Repo) UpdateClientLinkStatus(ctx context.Context, trainerID, clientUserID int, status string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.updateclientlinkstatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE trainer_client SET status = $1
			WHERE trainer_id = $2 AND client_user_id = $3;`,
		status, trainerID, clientUserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrClientLinkNotFound
	}

	return nil
}

func (r *Repo) rows2trainers(rows pgx.Rows) ([]Trainer, error) {
	var trainers []Trainer
	for rows.Next() {
		var t Trainer
		var specialtiesBytes []byte
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Bio, &specialtiesBytes, &t.HourlyRate, &t.Rating, &t.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(specialtiesBytes) > 0 {
			if err := json.Unmarshal(specialtiesBytes, &t.Specialties); err != nil {
				return nil, fmt.Errorf("unmarshal specialties for trainer %d: %w", t.ID, err)
			}
		}
		if t.Specialties == nil {
			t.Specialties = make([]string, 0)
		}

		trainers = append(trainers, t)
	}

	if trainers == nil {
		trainers = make([]Trainer, 0)
	}

	return trainers, nil
}
