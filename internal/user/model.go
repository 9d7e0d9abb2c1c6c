package user

import "time"

// User is the persisted account record. The password hash stays inside the
// user package; callers only ever see the public view.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
}

// PublicUser is the caller-facing view of an account.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

// Verification is one row of code history for a user. Rows are immutable
// and never purged; validity is re-derived from CreatedAt at query time.
type Verification struct {
	ID        int64
	UserID    int64
	Code      string
	CreatedAt time.Time
}
