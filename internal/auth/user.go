package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type userAdder interface {
	Add(ctx context.Context, username, passwordHash string) (*User, error)
}

// CreateUser hashes the given password and stores a new user. There is
// no open registration, new accounts come from the adduser tool.
func CreateUser(ctx context.Context, repo userAdder, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password must not be empty")
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return repo.Add(ctx, username, passwordHash)
}

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Add(ctx context.Context, username, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	createdAt := time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO app_user (username, password_hash, created_at)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		username, passwordHash, createdAt,
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

	span.SetAttributes(attribute.Int("user.id", id))

	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(
		ctx,
		`SELECT id, username, password_hash, created_at FROM app_user WHERE username = $1;`,
		username,
	)
}

func (r *UsersRepo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return r.getOne(
		ctx,
		`SELECT id, username, password_hash, created_at FROM app_user WHERE id = $1;`,
		id,
	)
}

func (r *UsersRepo) getOne(ctx context.Context, query string, args ...interface{}) (*User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrUserNotFound
	}

	var u User
	if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
