package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	userModel "eats-backend/internal/domains/user/model"
)

// =====================================================
// ORDER ENTITY
// =====================================================
type Order struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	DriverID     *uuid.UUID      `json:"driver_id,omitempty"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Items        []OrderItem     `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Owner of the restaurant the order belongs to, joined in by the
	// repository so visibility checks need no extra lookup.
	RestaurantOwnerID uuid.UUID `json:"-"`
}

type OrderItem struct {
	ID      uuid.UUID         `json:"id"`
	OrderID uuid.UUID         `json:"order_id"`
	DishID  uuid.UUID         `json:"dish_id"`
	Options []OrderItemOption `json:"options,omitempty"`
}

// OrderItemOption is a customer's pick for one dish option. Choice is
// set only when the option carries nested choices.
type OrderItemOption struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// CanBeSeenBy reports whether the user may read this order. The user
// must hold the matching role AND be the matching party.
func (o *Order) CanBeSeenBy(userID uuid.UUID, role userModel.Role) bool {
	switch role {
	case userModel.RoleClient:
		return o.CustomerID == userID
	case userModel.RoleDelivery:
		return o.DriverID != nil && *o.DriverID == userID
	case userModel.RoleOwner:
		return o.RestaurantOwnerID == userID
	default:
		return false
	}
}
