package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/rehistro/internal/pkg/message"
	"github.com/ferdiebergado/rehistro/internal/user"
)

func TestRequireBasicAuth(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		AuthenticateFunc: func(ctx context.Context, email, password string) (user.PublicUser, error) {
			if email != testEmail || password != testPass {
				return user.PublicUser{}, user.ErrInvalidCredentials
			}
			return user.PublicUser{ID: 1, Email: email, IsActive: false}, nil
		},
	}

	tests := []struct {
		name        string
		email       string
		password    string
		noCreds     bool
		code        int
		gateCleared bool
	}{
		{"Valid credentials", testEmail, testPass, false, http.StatusOK, true},
		{"Missing credentials", "", "", true, http.StatusUnauthorized, false},
		{"Unknown email", "nobody@test.com", testPass, false, http.StatusUnauthorized, false},
		{"Wrong password", testEmail, "Wrong123!?", false, http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUser *user.PublicUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				u, err := user.FromContext(r.Context())
				if err != nil {
					t.Errorf("FromContext() error = %v", err)
				}
				gotUser = &u
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPatch, "/users/activate", nil)
			if !tt.noCreds {
				req.SetBasicAuth(tt.email, tt.password)
			}
			rec := httptest.NewRecorder()
			user.RequireBasicAuth(svc)(next).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}

			if tt.gateCleared {
				if gotUser == nil {
					t.Fatal("next handler did not run for valid credentials")
				}
				if gotUser.Email != tt.email {
					t.Errorf("gotUser.Email = %q, want: %q", gotUser.Email, tt.email)
				}
			} else if gotUser != nil {
				t.Error("next handler ran despite rejected credentials")
			}
		})
	}
}

func TestRequireActiveUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		authUser *user.PublicUser
		code     int
	}{
		{"Active user passes", &user.PublicUser{ID: 1, Email: testEmail, IsActive: true}, http.StatusOK},
		{"Inactive user is forbidden", &user.PublicUser{ID: 1, Email: testEmail, IsActive: false}, http.StatusForbidden},
		{"No user in context", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			ctx := context.Background()
			if tt.authUser != nil {
				ctx = user.NewContextWithUser(ctx, *tt.authUser)
			}
			req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/users/me", nil)
			rec := httptest.NewRecorder()
			user.RequireActiveUser(next).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}
		})
	}
}
