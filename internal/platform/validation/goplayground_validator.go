package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ferdiebergado/rehistro/internal/pkg/security"
	"github.com/go-playground/validator/v10"
)

var _ Validator = &GoPlaygroundValidator{}

type GoPlaygroundValidator struct {
	v *validator.Validate
}

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New()

	// register function to get tag name from json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Domain rules shared with the service layer.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return security.IsValidPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("verifycode", func(fl validator.FieldLevel) bool {
		return security.IsValidCode(fl.Field().String())
	})

	return &GoPlaygroundValidator{
		v: v,
	}
}

func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return nil
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "password":
		return fmt.Sprintf("%s must be 6-20 characters with at least one lowercase letter, one uppercase letter, one digit and one symbol", e.Field())
	case "verifycode":
		return fmt.Sprintf("%s must be exactly %d digits", e.Field(), security.CodeLength)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
