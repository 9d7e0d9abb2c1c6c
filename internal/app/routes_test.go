package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/rehistro/internal/pkg/message"
	"github.com/ferdiebergado/rehistro/internal/platform/router"
	"github.com/ferdiebergado/rehistro/internal/platform/validation"
	"github.com/ferdiebergado/rehistro/internal/user"
)

const (
	testEmail = "alice@test.com"
	testPass  = "Password123!?"
)

func newTestRouter(svc user.UserService) router.Router {
	r := router.NewGoexpressRouter()
	handler := user.NewHandler(svc)
	mountUserRoutes(r, handler, svc, validation.NewGoPlaygroundValidator(), 1<<20)
	return r
}

func TestActivateRoute_GateRunsBeforePayload(t *testing.T) {
	t.Parallel()

	var activateCalled bool
	svc := &user.StubService{
		AuthenticateFunc: func(ctx context.Context, email, password string) (user.PublicUser, error) {
			if email != testEmail || password != testPass {
				return user.PublicUser{}, user.ErrInvalidCredentials
			}
			return user.PublicUser{ID: 1, Email: email, IsActive: false}, nil
		},
		ActivateFunc: func(ctx context.Context, authUser user.PublicUser, code string) (user.PublicUser, error) {
			activateCalled = true
			return user.PublicUser{}, user.ErrCodeInvalid
		},
	}
	r := newTestRouter(svc)

	t.Run("Bad credentials win over a bad code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/users/activate", strings.NewReader(`{"code":"9999"}`))
		req.SetBasicAuth(testEmail, "Wrong123!?")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusUnauthorized)
		}
		if activateCalled {
			t.Error("Activate was called despite rejected credentials")
		}
	})

	t.Run("Valid credentials reach the code check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/users/activate", strings.NewReader(`{"code":"9999"}`))
		req.SetBasicAuth(testEmail, testPass)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusUnprocessableEntity)
		}
		if !activateCalled {
			t.Error("Activate was not reached with valid credentials")
		}
	})
}

func TestActivateRoute_MalformedCodeStopsBeforeService(t *testing.T) {
	t.Parallel()

	var activateCalled bool
	svc := &user.StubService{
		AuthenticateFunc: func(ctx context.Context, email, password string) (user.PublicUser, error) {
			return user.PublicUser{ID: 1, Email: email, IsActive: false}, nil
		},
		ActivateFunc: func(ctx context.Context, authUser user.PublicUser, code string) (user.PublicUser, error) {
			activateCalled = true
			return user.PublicUser{}, nil
		},
	}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/users/activate", strings.NewReader(`{"code":"12a4"}`))
	req.SetBasicAuth(testEmail, testPass)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusBadRequest)
	}
	if activateCalled {
		t.Error("Activate was called with a malformed code")
	}
}

func TestMeRoute_RequiresActiveAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isActive bool
		code     int
	}{
		{"Active account", true, http.StatusOK},
		{"Inactive account", false, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &user.StubService{
				AuthenticateFunc: func(ctx context.Context, email, password string) (user.PublicUser, error) {
					return user.PublicUser{ID: 1, Email: email, IsActive: tt.isActive}, nil
				},
			}
			r := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.SetBasicAuth(testEmail, testPass)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}
		})
	}
}
