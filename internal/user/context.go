package user

import (
	"context"
	"errors"
)

type ctxKey int

const userCtxKey ctxKey = iota

var errNoUserInContext = errors.New("no authenticated user in context")

func NewContextWithUser(baseCtx context.Context, u PublicUser) context.Context {
	return context.WithValue(baseCtx, userCtxKey, u)
}

// FromContext retrieves the user resolved by the basic-auth gate.
func FromContext(ctx context.Context) (PublicUser, error) {
	u, ok := ctx.Value(userCtxKey).(PublicUser)
	if !ok {
		return PublicUser{}, errNoUserInContext
	}
	return u, nil
}
