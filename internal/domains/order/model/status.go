package model

import (
	userModel "eats-backend/internal/domains/user/model"
)

// =====================================================
// ORDER STATUS
// =====================================================
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCooking   OrderStatus = "cooking"
	StatusCooked    OrderStatus = "cooked"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCooking, StatusCooked, StatusPickedUp, StatusDelivered:
		return true
	}
	return false
}

// CanSetStatus reports whether a user with the given role may move an
// order into the target status. Clients never edit order status.
// Owners may set every status except cooking; drivers may set every
// status except picked_up and delivered.
//
// TODO: confirm with product whether drivers should instead be limited
// to exactly picked_up and delivered; the current rule matches the
// shipped behavior.
func CanSetStatus(role userModel.Role, target OrderStatus) bool {
	switch role {
	case userModel.RoleClient:
		return false
	case userModel.RoleOwner:
		return target != StatusCooking
	case userModel.RoleDelivery:
		return target != StatusPickedUp && target != StatusDelivered
	default:
		return false
	}
}
