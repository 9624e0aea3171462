package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeEmailExists          = "USR001"
	ErrCodeInvalidCredentials   = "USR002"
	ErrCodeUserNotFound         = "USR003"
	ErrCodeVerificationNotFound = "USR004"
	ErrCodeInternal             = "USR005"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrEmailAlreadyExists   = errors.New("there is a user with that email already")
	ErrInvalidCredentials   = errors.New("wrong email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrVerificationNotFound = errors.New("verification not found")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserError(code, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
