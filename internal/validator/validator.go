package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Indian mobile numbers: optional +91 prefix, then ten digits starting 6-9.
var phoneRgx = regexp.MustCompile(`^(\+91[\s-]?)?[6-9]\d{9}$`)

var otpRgx = regexp.MustCompile(`^\d{4,8}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("phone", validatePhone)
	validator.RegisterValidation("otp", validateOTP)

	return validator
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRgx.MatchString(fl.Field().String())
}

func validateOTP(fl validator.FieldLevel) bool {
	return otpRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "phone":
		return "must be a valid mobile number"
	case "otp":
		return "must be a 4 to 8 digit code"
	default:
		return "is invalid"
	}
}
