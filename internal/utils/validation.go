package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	israeliPhonePattern = regexp.MustCompile(`^05\d{8,9}$`)
)

// loginPasswordSpecials is the set of characters that satisfy the special
// character rule of the login password.
const loginPasswordSpecials = `!@#$%^&*(),.?":{}|<>`

// InitValidator initializes the validator with custom validations
func InitValidator() {
	validate = validator.New()

	// Report json names so messages match the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations(validate)

	log.Info().Msg("Validator initialized")
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// DecodeJSON decodes a JSON request body into the provided struct
// with improved error handling and size limits
func DecodeJSON(r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &maxBytesError):
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)

		case errors.Is(err, io.EOF):
			return NewBadRequestError(constants.MsgEmptyRequestBody)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return NewBadRequestError(constants.MsgMalformedJSON)

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return NewValidationError(strings.Trim(fieldName, `"`), fmt.Sprintf("%s is not allowed", fieldName))

		case errors.As(err, &syntaxError):
			return NewBadRequestError(fmt.Sprintf("Request body contains malformed JSON (at position %d)", syntaxError.Offset))

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return NewValidationError(unmarshalTypeError.Field, fmt.Sprintf("%s must be a %s", unmarshalTypeError.Field, jsonKind(unmarshalTypeError.Type)))
			}
			return NewBadRequestError(fmt.Sprintf("Request body contains incorrect JSON type (at position %d)", unmarshalTypeError.Offset))

		case errors.As(err, &invalidUnmarshalError):
			return NewInternalServerError(err)

		default:
			// Custom UnmarshalJSON implementations report their own message
			return NewBadRequestError(err.Error())
		}
	}

	if dec.More() {
		return NewBadRequestError("Request body must only contain a single JSON object")
	}

	return nil
}

// ValidateStruct validates a struct and reports only the first failing field.
// Fields are checked in declaration order, so a struct's layout decides
// which error wins.
func ValidateStruct(v interface{}) error {
	err := GetValidator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		path := fieldPath(e)
		return NewValidationError(path, getErrorMessage(path, e))
	}

	return NewBadRequestError(err.Error())
}

// DecodeAndValidate decodes a JSON request body and validates it
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateStruct(v)
}

// fieldPath drops the root struct name from the namespace, leaving the
// json path of the field (e.g. "address.city").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return e.Field()
}

// getErrorMessage returns a user-friendly error message for a validation error
func getErrorMessage(path string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "email":
		return fmt.Sprintf("%s must be a valid email", path)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be at least %s characters long", path, e.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", path, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", path, e.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", path, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a number", path)
	case "uri", "url":
		return fmt.Sprintf("%s must be a valid uri", path)
	case "israeli_phone":
		return constants.MsgInvalidPhone
	case "login_password":
		return constants.MsgWeakLoginPassword
	default:
		return fmt.Sprintf("%s failed validation on the '%s' rule", path, e.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// registerCustomValidations adds custom validation functions to the validator
func registerCustomValidations(v *validator.Validate) {
	if err := v.RegisterValidation("israeli_phone", validateIsraeliPhone); err != nil {
		log.Error().Err(err).Msg("Failed to register israeli_phone validation")
	}
	if err := v.RegisterValidation("login_password", validateLoginPassword); err != nil {
		log.Error().Err(err).Msg("Failed to register login_password validation")
	}
}

// validateIsraeliPhone accepts mobile numbers of the form 05XXXXXXXX(X).
func validateIsraeliPhone(fl validator.FieldLevel) bool {
	return israeliPhonePattern.MatchString(fl.Field().String())
}

// validateLoginPassword requires one lowercase, one uppercase, one digit,
// one special character and a minimum length of six.
func validateLoginPassword(fl validator.FieldLevel) bool {
	return IsComplexPassword(fl.Field().String())
}

// IsComplexPassword reports whether password satisfies the login password rule.
func IsComplexPassword(password string) bool {
	if len([]rune(password)) < 6 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char) && char <= unicode.MaxASCII:
			hasUpper = true
		case unicode.IsLower(char) && char <= unicode.MaxASCII:
			hasLower = true
		case unicode.IsDigit(char) && char <= unicode.MaxASCII:
			hasNumber = true
		case strings.ContainsRune(loginPasswordSpecials, char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

// IsIsraeliPhone reports whether phone matches the Israeli mobile pattern.
func IsIsraeliPhone(phone string) bool {
	return israeliPhonePattern.MatchString(phone)
}
