package authz

import (
	"eats-backend/internal/domains/user/model"
)

// Operation names every role-gated entry point. Handlers reference
// these constants; the table below is the single source of truth for
// who may call what.
type Operation string

const (
	OpCreateOrder Operation = "createOrder"
	OpGetOrders   Operation = "getOrders"
	OpGetOrder    Operation = "getOrder"
	OpEditOrder   Operation = "editOrder"
	OpTakeOrder   Operation = "takeOrder"

	OpPendingOrders Operation = "pendingOrders"
	OpCookedOrders  Operation = "cookedOrders"
	OpOrderUpdates  Operation = "orderUpdates"

	OpCreateRestaurant Operation = "createRestaurant"
	OpEditRestaurant   Operation = "editRestaurant"
	OpDeleteRestaurant Operation = "deleteRestaurant"
	OpMyRestaurants    Operation = "myRestaurants"
	OpCreateDish       Operation = "createDish"
	OpEditDish         Operation = "editDish"
	OpDeleteDish       Operation = "deleteDish"

	OpCreatePayment Operation = "createPayment"
	OpGetPayments   Operation = "getPayments"

	OpMe          Operation = "me"
	OpEditProfile Operation = "editProfile"
	OpUserProfile Operation = "userProfile"
)

// roleAny is a meta-role: any authenticated caller passes.
const roleAny = model.Role("any")

var allowedRoles = map[Operation][]model.Role{
	OpCreateOrder: {model.RoleClient},
	OpGetOrders:   {roleAny},
	OpGetOrder:    {roleAny},
	OpEditOrder:   {roleAny},
	OpTakeOrder:   {model.RoleDelivery},

	OpPendingOrders: {model.RoleOwner},
	OpCookedOrders:  {model.RoleDelivery},
	OpOrderUpdates:  {roleAny},

	OpCreateRestaurant: {model.RoleOwner},
	OpEditRestaurant:   {model.RoleOwner},
	OpDeleteRestaurant: {model.RoleOwner},
	OpMyRestaurants:    {model.RoleOwner},
	OpCreateDish:       {model.RoleOwner},
	OpEditDish:         {model.RoleOwner},
	OpDeleteDish:       {model.RoleOwner},

	OpCreatePayment: {model.RoleOwner},
	OpGetPayments:   {model.RoleOwner},

	OpMe:          {roleAny},
	OpEditProfile: {roleAny},
	OpUserProfile: {roleAny},
}

// IsAuthorized reports whether a role may invoke an operation. It is a
// pure table lookup: ownership and visibility checks live in the
// services, not here. Unknown operations deny by default.
func IsAuthorized(role model.Role, op Operation) bool {
	roles, ok := allowedRoles[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == roleAny {
			return role.Valid()
		}
		if r == role {
			return true
		}
	}
	return false
}
