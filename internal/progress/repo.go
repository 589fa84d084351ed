package progress

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
	ErrMetricNotFound = errors.New("progress metric not found")
	ErrPhotoNotFound  = errors.New("progress photo not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddMetric(ctx context.Context, metric Metric) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addmetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurementsJson, err := json.Marshal(metric.Measurements)
	if err != nil {
		return nil, fmt.Errorf("marshal measurements: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO progress_metric
				(user_id, weight_kilos, body_fat_percent, muscle_percent, measurements, recorded_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		metric.UserID, metric.WeightKilos, metric.BodyFatPercent, metric.MusclePercent,
		measurementsJson, metric.RecordedAt, metric.CreatedAt,
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

	span.SetAttributes(attribute.Int("metric.id", id))

	metric.ID = id
	return &metric, nil
}

func (r *Repo) ListMetrics(ctx context.Context, userID int) (_ []Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listmetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight_kilos, body_fat_percent, muscle_percent, measurements, recorded_at, created_at
			FROM progress_metric
			WHERE user_id = $1
			ORDER BY recorded_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2metrics(rows)
}

// LatestMetric returns the most recently recorded metric of a user,
// used for the stats overview.
func (r *Repo) LatestMetric(ctx context.Context, userID int) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.latestmetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight_kilos, body_fat_percent, muscle_percent, measurements, recorded_at, created_at
			FROM progress_metric
			WHERE user_id = $1
			ORDER BY recorded_at DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics, err := r.rows2metrics(rows)
	if err != nil {
		return nil, err
	}

	if len(metrics) != 1 {
		return nil, ErrMetricNotFound
	}

	return &metrics[0], nil
}

func (r *Repo) DeleteMetric(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deletemetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM progress_metric WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMetricNotFound
	}
	return nil
}

func (r *Repo) AddPhoto(ctx context.Context, photo Photo) (_ *Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addphoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO progress_photo (user_id, caption, taken_at, file_id, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		photo.UserID, photo.Caption, photo.TakenAt, photo.FileID, photo.CreatedAt,
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

	span.SetAttributes(attribute.Int("photo.id", id))

	photo.ID = id
	return &photo, nil
}

func (r *Repo) ListPhotos(ctx context.Context, userID int) (_ []Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listphotos")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, caption, taken_at, file_id, created_at
			FROM progress_photo
			WHERE user_id = $1
			ORDER BY taken_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2photos(rows)
}

func (r *Repo) GetPhoto(ctx context.Context, userID, id int) (_ *Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.getphoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, caption, taken_at, file_id, created_at
			FROM progress_photo
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	photos, err := r.rows2photos(rows)
	if err != nil {
		return nil, err
	}

	if len(photos) != 1 {
		return nil, ErrPhotoNotFound
	}

	return &photos[0], nil
}

func (r *Repo) DeletePhoto(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deletephoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM progress_photo WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *Repo) rows2metrics(rows pgx.Rows) ([]Metric, error) {
	var metrics []Metric
	for rows.Next() {
		var m Metric
		var measurementsBytes []byte
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.WeightKilos, &m.BodyFatPercent, &m.MusclePercent,
			&measurementsBytes, &m.RecordedAt, &m.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(measurementsBytes) > 0 {
			if err := json.Unmarshal(measurementsBytes, &m.Measurements); err != nil {
				return nil, fmt.Errorf("unmarshal measurements for metric %d: %w", m.ID, err)
			}
		}
		if m.Measurements == nil {
			m.Measurements = make(map[string]float64)
		}

		metrics = append(metrics, m)
	}

	if metrics == nil {
		metrics = make([]Metric, 0)
	}

	return metrics, nil
}

func (r *Repo) rows2photos(rows pgx.Rows) ([]Photo, error) {
	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.Caption, &p.TakenAt, &p.FileID, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	if photos == nil {
		photos = make([]Photo, 0)
	}

	return photos, nil
}
