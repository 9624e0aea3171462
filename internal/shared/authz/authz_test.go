package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eats-backend/internal/domains/user/model"
)

func TestIsAuthorized(t *testing.T) {
	tests := []struct {
		name string
		role model.Role
		op   Operation
		want bool
	}{
		{"client can create orders", model.RoleClient, OpCreateOrder, true},
		{"owner cannot create orders", model.RoleOwner, OpCreateOrder, false},
		{"delivery cannot create orders", model.RoleDelivery, OpCreateOrder, false},
		{"delivery can take orders", model.RoleDelivery, OpTakeOrder, true},
		{"client cannot take orders", model.RoleClient, OpTakeOrder, false},
		{"owner can create payments", model.RoleOwner, OpCreatePayment, true},
		{"client cannot create payments", model.RoleClient, OpCreatePayment, false},
		{"any role can edit orders", model.RoleClient, OpEditOrder, true},
		{"any role can get orders", model.RoleDelivery, OpGetOrders, true},
		{"any role can see a single order", model.RoleOwner, OpGetOrder, true},
		{"owner subscribes to pending orders", model.RoleOwner, OpPendingOrders, true},
		{"delivery cannot subscribe to pending orders", model.RoleDelivery, OpPendingOrders, false},
		{"delivery subscribes to cooked orders", model.RoleDelivery, OpCookedOrders, true},
		{"owner manages restaurants", model.RoleOwner, OpCreateRestaurant, true},
		{"client cannot manage restaurants", model.RoleClient, OpCreateRestaurant, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorized(tt.role, tt.op))
		})
	}
}

func TestIsAuthorizedRejectsInvalidRole(t *testing.T) {
	// An unrecognized role never passes, not even on "any" operations.
	assert.False(t, IsAuthorized(model.Role("admin"), OpGetOrders))
	assert.False(t, IsAuthorized(model.Role(""), OpMe))
}

func TestIsAuthorizedUnknownOperation(t *testing.T) {
	assert.False(t, IsAuthorized(model.RoleOwner, Operation("dropTables")))
}
