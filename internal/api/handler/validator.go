package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	if err := v.RegisterValidation("password", passwordComplexity); err != nil {
		panic(err)
	}
	return &echoValidator{v: v}
}

// passwordComplexity backs the "password" tag: the value must contain an
// uppercase letter, a lowercase letter, a digit, and a special character.
func passwordComplexity(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Validate satisfies the echo.Validator interface. Failures surface as 400
// with field-level detail.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return echo.NewHTTPError(http.StatusBadRequest, "validation failed: "+strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "password":
		return field + " must contain an uppercase letter, a lowercase letter, a digit, and a special character"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
