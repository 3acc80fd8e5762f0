package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrAlreadyVerified    = errors.New("email is already verified")
	ErrTokenMismatch      = errors.New("token does not match")
	ErrTokenExpired       = errors.New("token has expired")
	ErrNoResetRequest     = errors.New("no password reset requested")
	ErrForbidden          = errors.New("account does not have permission")
)

// FieldError is one (field, message) pair of a validation failure, kept
// structured so the transport can hand clients a form-mappable list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed input validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidArgument.Error()
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

func NewValidation(fields []FieldError) error {
	return &ValidationError{Fields: fields}
}

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// NewDuplicateField reports a uniqueness conflict naming the offending
// field ("email" or "username").
func NewDuplicateField(field string) error {
	return fmt.Errorf("%w: %s", ErrAlreadyExists, field)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsInvalidEmail(err error) bool {
	return errors.Is(err, ErrInvalidEmail)
}

func IsEmailNotVerified(err error) bool {
	return errors.Is(err, ErrEmailNotVerified)
}

func IsAlreadyVerified(err error) bool {
	return errors.Is(err, ErrAlreadyVerified)
}

func IsTokenMismatch(err error) bool {
	return errors.Is(err, ErrTokenMismatch)
}

func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

func IsNoResetRequest(err error) bool {
	return errors.Is(err, ErrNoResetRequest)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
