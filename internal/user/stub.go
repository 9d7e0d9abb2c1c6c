package user

import (
	"context"
	"errors"
	"time"
)

type StubService struct {
	RegisterFunc     func(ctx context.Context, params RegisterParams) (PublicUser, error)
	ActivateFunc     func(ctx context.Context, authUser PublicUser, code string) (PublicUser, error)
	AuthenticateFunc func(ctx context.Context, email, password string) (PublicUser, error)
}

var _ UserService = &StubService{}

func (s *StubService) Register(ctx context.Context, params RegisterParams) (PublicUser, error) {
	if s.RegisterFunc == nil {
		return PublicUser{}, errors.New("Register not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Activate(ctx context.Context, authUser PublicUser, code string) (PublicUser, error) {
	if s.ActivateFunc == nil {
		return PublicUser{}, errors.New("Activate not implemented by stub")
	}
	return s.ActivateFunc(ctx, authUser, code)
}

func (s *StubService) Authenticate(ctx context.Context, email, password string) (PublicUser, error) {
	if s.AuthenticateFunc == nil {
		return PublicUser{}, errors.New("Authenticate not implemented by stub")
	}
	return s.AuthenticateFunc(ctx, email, password)
}

type StubUserRepo struct {
	CreateUserFunc      func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*User, error)
	SetUserActiveFunc   func(ctx context.Context, userID int64, active bool) (User, error)
}

var _ UserRepository = &StubUserRepo{}

func (r *StubUserRepo) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if r.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser not implemented by stub")
	}
	return r.CreateUserFunc(ctx, params)
}

func (r *StubUserRepo) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail not implemented by stub")
	}
	return r.FindUserByEmailFunc(ctx, email)
}

func (r *StubUserRepo) SetUserActive(ctx context.Context, userID int64, active bool) (User, error) {
	if r.SetUserActiveFunc == nil {
		return User{}, errors.New("SetUserActive not implemented by stub")
	}
	return r.SetUserActiveFunc(ctx, userID, active)
}

type StubVerificationRepo struct {
	CreateVerificationFunc    func(ctx context.Context, userID int64, code string) (Verification, error)
	FindValidVerificationFunc func(ctx context.Context, userID int64, code string, window time.Duration) (*Verification, error)
}

var _ VerificationRepository = &StubVerificationRepo{}

func (r *StubVerificationRepo) CreateVerification(ctx context.Context, userID int64, code string) (Verification, error) {
	if r.CreateVerificationFunc == nil {
		return Verification{}, errors.New("CreateVerification not implemented by stub")
	}
	return r.CreateVerificationFunc(ctx, userID, code)
}

func (r *StubVerificationRepo) FindValidVerification(ctx context.Context, userID int64, code string, window time.Duration) (*Verification, error) {
	if r.FindValidVerificationFunc == nil {
		return nil, errors.New("FindValidVerification not implemented by stub")
	}
	return r.FindValidVerificationFunc(ctx, userID, code, window)
}
