package validation_test

import (
	"testing"

	"github.com/ferdiebergado/rehistro/internal/platform/validation"
)

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type activateInput struct {
	Code string `json:"code" validate:"required,verifycode"`
}

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	v := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{
			name:  "Valid registration input",
			input: registerInput{Email: "alice@test.com", Password: "Password1!"},
		},
		{
			name:       "Missing email",
			input:      registerInput{Password: "Password1!"},
			wantFields: []string{"email"},
		},
		{
			name:       "Malformed email",
			input:      registerInput{Email: "not-an-email", Password: "Password1!"},
			wantFields: []string{"email"},
		},
		{
			name:       "Weak password",
			input:      registerInput{Email: "alice@test.com", Password: "password"},
			wantFields: []string{"password"},
		},
		{
			name:       "Both fields invalid",
			input:      registerInput{Email: "nope", Password: "short"},
			wantFields: []string{"email", "password"},
		},
		{
			name:  "Valid code",
			input: activateInput{Code: "1234"},
		},
		{
			name:       "Code too short",
			input:      activateInput{Code: "123"},
			wantFields: []string{"code"},
		},
		{
			name:       "Code with letters",
			input:      activateInput{Code: "12a4"},
			wantFields: []string{"code"},
		},
		{
			name:       "Missing code",
			input:      activateInput{},
			wantFields: []string{"code"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := v.ValidateStruct(tc.input)

			if len(tc.wantFields) == 0 {
				if errs != nil {
					t.Fatalf("ValidateStruct() = %v, want: nil", errs)
				}
				return
			}

			if len(errs) != len(tc.wantFields) {
				t.Fatalf("ValidateStruct() = %v, want errors on %v", errs, tc.wantFields)
			}
			for _, field := range tc.wantFields {
				if msg, ok := errs[field]; !ok || msg == "" {
					t.Errorf("no message for field %q in %v", field, errs)
				}
			}
		})
	}
}
