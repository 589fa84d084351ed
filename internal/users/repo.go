package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users
				(username, email, password_hash, display_name, avatar_url, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		user.Username, user.Email, user.PasswordHash, user.DisplayName, user.AvatarURL, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
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

	span.SetAttributes(attribute.Int("user.id", id))

	user.ID = id
	return &user, nil
}

func (r *Repo) GetByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, email, password_hash, display_name, avatar_url, created_at
			FROM users WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.one(rows)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, email, password_hash, display_name, avatar_url, created_at
			FROM users WHERE username = $1;`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.one(rows)
}

// GetCredentials returns the user ID and stored password hash for a
// username. Satisfies the auth service credentials store.
func (r *Repo) GetCredentials(ctx context.Context, username string) (userID int, passwordHash string, err error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return 0, "", err
	}
	return user.ID, user.PasswordHash, nil
}

func (r *Repo) GetPreferences(ctx context.Context, userID int) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getpreferences")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, units, notifications, theme
			FROM user_preferences WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		// sensible defaults for users who never saved preferences
		return &Preferences{
			UserID: userID,
			Units:  "metric",
			Theme:  "light",
		}, nil
	}

	var prefs Preferences
	if err := rows.Scan(&prefs.UserID, &prefs.Units, &prefs.Notifications, &prefs.Theme); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &prefs, nil
}

func (r *Repo) UpdatePreferences(ctx context.Context, prefs Preferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatepreferences")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", prefs.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_preferences (user_id, units, notifications, theme)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO UPDATE
				SET units = $2, notifications = $3, theme = $4;`,
		prefs.UserID, prefs.Units, prefs.Notifications, prefs.Theme,
	)
	return err
}

func (r *Repo) one(rows pgx.Rows) (*User, error) {
	if err := rows.Err(); err != nil {
		return nil, err
	}

	users, err := r.rows2users(rows)
	if err != nil {
		return nil, err
	}

	if len(users) != 1 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

func (r *Repo) rows2users(rows pgx.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.DisplayName, &u.AvatarURL, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if users == nil {
		users = make([]User, 0)
	}

	return users, nil
}
