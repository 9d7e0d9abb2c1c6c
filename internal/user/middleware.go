package user

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/rehistro/internal/pkg/message"
	"github.com/ferdiebergado/rehistro/internal/pkg/web"
)

// RequireBasicAuth resolves HTTP Basic credentials (username-as-email) to a
// user and stores it in the request context. A missing header, an unknown
// email and a wrong password all produce the same undifferentiated 401.
// The gate does not check whether the account is active.
func RequireBasicAuth(svc UserService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
				web.Fail(w, http.StatusUnauthorized, errors.New("missing basic auth credentials"), message.InvalidCredentials, nil)
				return
			}

			authUser, err := svc.Authenticate(r.Context(), email, password)
			if err != nil {
				respondError(w, err)
				return
			}

			ctx := NewContextWithUser(r.Context(), authUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireActiveUser rejects inactive accounts. It runs after
// RequireBasicAuth and protects endpoints that need an activated account;
// the activation endpoint itself must not use it.
func RequireActiveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authUser, err := FromContext(r.Context())
		if err != nil {
			web.Fail(w, http.StatusUnauthorized, err, message.InvalidCredentials, nil)
			return
		}

		if !authUser.IsActive {
			web.Fail(w, http.StatusForbidden, ErrNotActivated, message.NotActivated, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
