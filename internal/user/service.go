package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/rehistro/internal/notify"
	"github.com/ferdiebergado/rehistro/internal/pkg/security"
	"github.com/ferdiebergado/rehistro/internal/platform/db"
	"github.com/ferdiebergado/rehistro/internal/platform/hash"
)

var (
	ErrAlreadyRegistered  = errors.New("user service: email already registered")
	ErrAlreadyActivated   = errors.New("user service: account already activated")
	ErrCodeInvalid        = errors.New("user service: verification code invalid or expired")
	ErrInvalidCredentials = errors.New("user service: invalid credentials")
	ErrNotActivated       = errors.New("user service: account not activated")
)

// UserRepository is the users relation as the service consumes it.
type UserRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) (User, error)
}

// VerificationRepository is the verification-codes relation as the service
// consumes it.
type VerificationRepository interface {
	CreateVerification(ctx context.Context, userID int64, code string) (Verification, error)
	FindValidVerification(ctx context.Context, userID int64, code string, window time.Duration) (*Verification, error)
}

type Providers struct {
	Hasher     hash.Hasher
	Dispatcher notify.Dispatcher
}

var _ UserService = &Service{}

// Service orchestrates the registration and activation state machine:
// Unregistered -> Registered(inactive) -> Activated, no transition
// reversible. Consistency comes from the store's transaction isolation
// plus the unique email constraint; the service holds no in-process locks.
type Service struct {
	users         UserRepository
	verifications VerificationRepository
	hasher        hash.Hasher
	dispatcher    notify.Dispatcher
	txMgr         db.TxManager
	codeTTL       time.Duration
}

func NewService(users UserRepository, verifications VerificationRepository, providers *Providers, txMgr db.TxManager, codeTTL time.Duration) *Service {
	return &Service{
		users:         users,
		verifications: verifications,
		hasher:        providers.Hasher,
		dispatcher:    providers.Dispatcher,
		txMgr:         txMgr,
		codeTTL:       codeTTL,
	}
}

type RegisterParams struct {
	Email    string
	Password string
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

// Register creates an inactive account and a fresh verification code in one
// transaction, then enqueues the verification email outside of it. A lost
// race on the unique email constraint reports ErrAlreadyRegistered, the
// same outcome as the in-transaction existence check.
func (s *Service) Register(ctx context.Context, params RegisterParams) (PublicUser, error) {
	var (
		created User
		code    string
	)

	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.users.FindUserByEmail(txCtx, params.Email)
		if err == nil {
			return ErrAlreadyRegistered
		}
		if !errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("find user by email: %w", err)
		}

		hashed, err := s.hasher.Hash(params.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		newUser, err := s.users.CreateUser(txCtx, CreateUserParams{Email: params.Email, PasswordHash: hashed})
		if err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				return ErrAlreadyRegistered
			}
			return fmt.Errorf("create user: %w", err)
		}

		code, err = security.GenerateCode()
		if err != nil {
			return fmt.Errorf("generate verification code: %w", err)
		}

		verification, err := s.verifications.CreateVerification(txCtx, newUser.ID, code)
		if err != nil {
			return fmt.Errorf("create verification: %w", err)
		}

		slog.Info("User registered.", "user_id", newUser.ID, "verification_id", verification.ID)
		created = newUser
		return nil
	})
	if err != nil {
		return PublicUser{}, err
	}

	// The account exists regardless of notification delivery; an enqueue
	// failure is logged and swallowed.
	if err := s.dispatcher.SendVerification(created.Email, code); err != nil {
		slog.Warn("failed to enqueue verification email", "user_id", created.ID, "reason", err)
	}

	return created.Public(), nil
}

// Activate flips the authenticated user to active if the submitted code is
// fresh and matches. The caller has already been resolved by the basic-auth
// gate; the password is not re-checked here.
func (s *Service) Activate(ctx context.Context, authUser PublicUser, code string) (PublicUser, error) {
	if authUser.IsActive {
		return PublicUser{}, ErrAlreadyActivated
	}

	var activated User
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		verification, err := s.verifications.FindValidVerification(txCtx, authUser.ID, code, s.codeTTL)
		if err != nil {
			if errors.Is(err, ErrVerificationNotFound) {
				return ErrCodeInvalid
			}
			return fmt.Errorf("find valid verification: %w", err)
		}

		// The store query already filters by freshness; re-check against
		// the service clock in case the rows arrive skewed.
		if time.Since(verification.CreatedAt) >= s.codeTTL {
			return ErrCodeInvalid
		}

		updated, err := s.users.SetUserActive(txCtx, authUser.ID, true)
		if err != nil {
			return fmt.Errorf("set user active: %w", err)
		}

		activated = updated
		return nil
	})
	if err != nil {
		return PublicUser{}, err
	}

	slog.Info("User activated.", "user_id", activated.ID)

	if err := s.dispatcher.SendConfirmation(activated.Email); err != nil {
		slog.Warn("failed to enqueue confirmation email", "user_id", activated.ID, "reason", err)
	}

	return activated.Public(), nil
}

// Authenticate resolves basic-auth credentials to an account. Unknown email
// and wrong password both report ErrInvalidCredentials; Authenticate does
// not care whether the account is active.
func (s *Service) Authenticate(ctx context.Context, email, password string) (PublicUser, error) {
	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return PublicUser{}, ErrInvalidCredentials
		}
		return PublicUser{}, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return PublicUser{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return PublicUser{}, ErrInvalidCredentials
	}

	return u.Public(), nil
}
