package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	TransactionID string    `json:"transaction_id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
}

func (r CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionID, validation.Required),
		validation.Field(&r.RestaurantID, validation.Required),
	)
}
