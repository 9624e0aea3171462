package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeOrderNotFound  = "ORD001"
	ErrCodeNotAllowed     = "ORD002"
	ErrCodeDriverAssigned = "ORD003"
	ErrCodeInvalidInput   = "ORD004"
	ErrCodeInternal       = "ORD005"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDriverAssigned = errors.New("this order already has a driver")
	ErrNotAllowed     = errors.New("you can not see that")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type OrderError struct {
	Code    string
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func NewOrderError(code, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
