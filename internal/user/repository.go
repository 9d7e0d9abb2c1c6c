package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/rehistro/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound   = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: duplicate email")
	ErrNoRowReturned  = errors.New("user repository: no row returned")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

// Postgres SQLSTATE for unique constraint violations.
const codeUniqueViolation = "23505"

var _ UserRepository = &Repository{}

// Repository runs single round-trip queries against the users relation.
// Every method picks up the transaction from the context when one is open.
type Repository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
}

const queryUserCreate = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING id, email, password_hash, is_active
`

func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	executor := db.ExecutorFromContext(ctx, r.db)
	row := executor.QueryRowContext(ctx, queryUserCreate, params.Email, params.PasswordHash)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		if isUniqueViolation(err) {
			return u, fmt.Errorf("create user with email %s: %w", params.Email, ErrDuplicateEmail)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return u, fmt.Errorf("create user with email %s: %w", params.Email, ErrNoRowReturned)
		}
		return u, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const queryUserFindByEmail = `
SELECT id, email, password_hash, is_active FROM users
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	executor := db.ExecutorFromContext(ctx, r.db)
	row := executor.QueryRowContext(ctx, queryUserFindByEmail, email)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return &u, nil
}

const queryUserSetActive = `
UPDATE users
SET is_active = $2
WHERE id = $1 AND is_active <> $2
RETURNING id, email, password_hash, is_active
`

// SetUserActive flips the flag only when it actually changes. Zero rows
// means another transaction already applied the same transition, so a lost
// activation race reports ErrAlreadyActivated instead of double-flipping.
func (r *Repository) SetUserActive(ctx context.Context, userID int64, active bool) (User, error) {
	executor := db.ExecutorFromContext(ctx, r.db)
	row := executor.QueryRowContext(ctx, queryUserSetActive, userID, active)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, fmt.Errorf("set active for user with id %d: %w", userID, ErrAlreadyActivated)
		}
		return u, fmt.Errorf("%w: set active for user with id %d: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
