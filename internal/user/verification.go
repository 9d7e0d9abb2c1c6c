package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/rehistro/internal/platform/db"
)

var ErrVerificationNotFound = errors.New("verification repository: no valid verification found")

var _ VerificationRepository = &VerificationRepo{}

// VerificationRepo persists verification codes. Codes are write-once rows;
// freshness is evaluated by the store at query time, never cached.
type VerificationRepo struct {
	db *sql.DB
}

func NewVerificationRepo(conn *sql.DB) *VerificationRepo {
	return &VerificationRepo{db: conn}
}

const queryVerificationCreate = `
INSERT INTO user_verifications (user_id, code)
VALUES ($1, $2)
RETURNING id, user_id, code, created_at
`

func (r *VerificationRepo) CreateVerification(ctx context.Context, userID int64, code string) (Verification, error) {
	executor := db.ExecutorFromContext(ctx, r.db)
	row := executor.QueryRowContext(ctx, queryVerificationCreate, userID, code)

	var v Verification
	if err := row.Scan(&v.ID, &v.UserID, &v.Code, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, fmt.Errorf("create verification for user with id %d: %w", userID, ErrNoRowReturned)
		}
		return v, fmt.Errorf("%w: create verification for user with id %d: %v", ErrQueryFailed, userID, err)
	}
	return v, nil
}

const queryVerificationFindValid = `
SELECT id, user_id, code, created_at FROM user_verifications
WHERE user_id = $1
  AND code = $2
  AND created_at > NOW() - make_interval(secs => $3)
ORDER BY created_at DESC
LIMIT 1
`

// FindValidVerification returns the most recent code row matching the
// user and code that is still within the freshness window. Wrong code and
// expired code are indistinguishable: both come back as not found.
func (r *VerificationRepo) FindValidVerification(ctx context.Context, userID int64, code string, window time.Duration) (*Verification, error) {
	executor := db.ExecutorFromContext(ctx, r.db)
	row := executor.QueryRowContext(ctx, queryVerificationFindValid, userID, code, window.Seconds())

	var v Verification
	if err := row.Scan(&v.ID, &v.UserID, &v.Code, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVerificationNotFound
		}
		return nil, fmt.Errorf("%w: find valid verification for user with id %d: %v", ErrQueryFailed, userID, err)
	}
	return &v, nil
}
