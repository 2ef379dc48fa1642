package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
	"github.com/skuznetsov2019/gw-auth-service/internal/middlewares"
	"github.com/skuznetsov2019/gw-auth-service/internal/models"
)

// ErrUsernameTaken is returned by Save when the users table's unique
// constraint on username rejects the insert.
var ErrUsernameTaken = errors.New("username already taken")

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// UserReadRepository loads user rows from PostgreSQL.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when
// no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, username)

	logger.Log.Debugw("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// UserWriteRepository inserts user rows into PostgreSQL.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. The username unique constraint is
// authoritative for duplicates: a violation surfaces as
// ErrUsernameTaken regardless of any earlier existence check.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) error {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`

	_, err := r.ext(ctx).ExecContext(ctx, query, username, email, passwordHash)

	logger.Log.Debugw("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"email", email,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUsernameTaken
	}

	return err
}

func (r *UserWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}
