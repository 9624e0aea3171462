package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST / RESPONSE DTOs
// =====================================================

type CreateOrderItemInput struct {
	DishID  uuid.UUID         `json:"dish_id"`
	Options []OrderItemOption `json:"options,omitempty"`
}

type CreateOrderRequest struct {
	RestaurantID uuid.UUID              `json:"restaurant_id"`
	Items        []CreateOrderItemInput `json:"items"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RestaurantID, validation.Required),
		validation.Field(&r.Items, validation.Required, validation.Length(1, 0)),
	)
}

type EditOrderRequest struct {
	OrderID uuid.UUID   `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

func (r EditOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderID, validation.Required),
		validation.Field(&r.Status, validation.Required, validation.By(validStatus)),
	)
}

func validStatus(value interface{}) error {
	status, ok := value.(OrderStatus)
	if !ok || !status.Valid() {
		return validation.NewError("validation_status", "unknown order status")
	}
	return nil
}
