package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/rehistro/internal/middleware"
	"github.com/ferdiebergado/rehistro/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"email":"alice@test.com","password":"Password1!"}`), 64, "true"},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"email":"alice@test.com","password":"Password1!"}`), 4, ""},
		{"Unknown field", http.StatusUnprocessableEntity, []byte(`{"email":"alice@test.com","password":"Password1!","admin":true}`), 128, ""},
		{"Extra payload", http.StatusBadRequest, []byte(`{"email":"a@test.com","password":"x"}{"email":"b@test.com","password":"y"}`), 128, ""},
		{"Incorrect data type", http.StatusBadRequest, []byte(`{"email":"alice@test.com","password":1234}`), 64, ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"email"`), 64, ""},
		{"Array passed to string", http.StatusBadRequest, []byte(`{"email":["a@test.com","b@test.com"],"password":"x"}`), 64, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[credentials](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&params); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			})

			body := bytes.NewBuffer(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/", body)
			rec := httptest.NewRecorder()
			mw := middleware.DecodePayload[credentials](tt.bodySize)(handler)
			mw.ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tt.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			gotHeader, wantHeader := rec.Header().Get(header), tt.header
			if gotHeader != wantHeader {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, gotHeader, wantHeader)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			wantBody := string(tt.payload)
			if tt.header == "true" && gotBody != wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, wantBody)
			}
		})
	}
}
