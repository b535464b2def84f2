package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration.
// Field names in errors come from the env tag so messages point at the variable to fix.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("listen_port", validateListenPort)
	_ = v.RegisterValidation("cors_origin", validateCORSOrigin)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("env"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates s and flattens any field errors into a single error
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(FormatErrors(validationErrs), "; "))
}

// FormatErrors converts validation errors to "FIELD: message" strings
func FormatErrors(errs validator.ValidationErrors) []string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), FormatFieldError(fe)))
	}
	return details
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required for this configuration"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "listen_port":
		return "must be a port number between 1 and 65535"
	case "cors_origin":
		return "must be '*' or an http(s) origin"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// validateListenPort validates a TCP port given as a string
func validateListenPort(fl validator.FieldLevel) bool {
	port, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return port > 0 && port <= 65535
}

// validateCORSOrigin accepts the wildcard or an absolute http(s) origin
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := fl.Field().String()
	if origin == "*" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
