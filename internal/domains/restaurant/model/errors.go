package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeRestaurantNotFound = "RST001"
	ErrCodeDishNotFound       = "RST002"
	ErrCodeCategoryNotFound   = "RST003"
	ErrCodeNotOwner           = "RST004"
	ErrCodeInvalidInput       = "RST005"
	ErrCodeInternal           = "RST006"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrNotOwner           = errors.New("you can not touch a restaurant that you do not own")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type RestaurantError struct {
	Code    string
	Message string
	Err     error
}

func (e *RestaurantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RestaurantError) Unwrap() error {
	return e.Err
}

func NewRestaurantError(code, message string, err error) *RestaurantError {
	return &RestaurantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
