package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/rehistro/internal/pkg/message"
	"github.com/ferdiebergado/rehistro/internal/pkg/web"
	"github.com/ferdiebergado/rehistro/internal/platform/validation"
)

// ValidateInput validates the decoded payload of type T placed in the
// context by DecodePayload. Format errors stop the request before any
// store access.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.Fail(w, http.StatusBadRequest, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
