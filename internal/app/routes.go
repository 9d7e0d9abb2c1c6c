package app

import (
	"github.com/ferdiebergado/rehistro/internal/middleware"
	"github.com/ferdiebergado/rehistro/internal/platform/router"
	"github.com/ferdiebergado/rehistro/internal/platform/validation"
	"github.com/ferdiebergado/rehistro/internal/user"
)

func mountUserRoutes(r router.Router, handler *user.Handler, svc user.UserService, validator validation.Validator, maxBodySize int64) {
	r.Group("/users", func(gr router.Router) {
		gr.Post("/register", handler.Register,
			middleware.DecodePayload[user.RegisterRequest](maxBodySize),
			middleware.ValidateInput[user.RegisterRequest](validator))

		// The gate runs before the payload is even decoded, so bad
		// credentials always win over a bad code.
		gr.Patch("/activate", handler.Activate,
			user.RequireBasicAuth(svc),
			middleware.DecodePayload[user.ActivateRequest](maxBodySize),
			middleware.ValidateInput[user.ActivateRequest](validator))

		gr.Get("/me", handler.Me,
			user.RequireBasicAuth(svc),
			user.RequireActiveUser)
	})
}
