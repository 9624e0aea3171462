package model

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeRestaurantNotFound = "PAY001"
	ErrCodeNotOwner           = "PAY002"
	ErrCodeInvalidInput       = "PAY003"
	ErrCodeInternal           = "PAY004"
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func NewPaymentError(code, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
