package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	userModel "eats-backend/internal/domains/user/model"
)

func TestCanSetStatus(t *testing.T) {
	tests := []struct {
		name   string
		role   userModel.Role
		target OrderStatus
		want   bool
	}{
		{"client can not set pending", userModel.RoleClient, StatusPending, false},
		{"client can not set delivered", userModel.RoleClient, StatusDelivered, false},
		{"owner can set cooked", userModel.RoleOwner, StatusCooked, true},
		{"owner can not set cooking", userModel.RoleOwner, StatusCooking, false},
		{"owner can set picked_up", userModel.RoleOwner, StatusPickedUp, true},
		{"owner can set delivered", userModel.RoleOwner, StatusDelivered, true},
		{"delivery can set cooking", userModel.RoleDelivery, StatusCooking, true},
		{"delivery can set cooked", userModel.RoleDelivery, StatusCooked, true},
		{"delivery can not set picked_up", userModel.RoleDelivery, StatusPickedUp, false},
		{"delivery can not set delivered", userModel.RoleDelivery, StatusDelivered, false},
		{"unknown role denied", userModel.Role("admin"), StatusCooked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSetStatus(tt.role, tt.target))
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusCooking, StatusCooked, StatusPickedUp, StatusDelivered} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
}

func TestCanBeSeenBy(t *testing.T) {
	customer := uuid.New()
	driver := uuid.New()
	owner := uuid.New()
	order := &Order{
		ID:                uuid.New(),
		CustomerID:        customer,
		DriverID:          &driver,
		RestaurantOwnerID: owner,
	}

	assert.True(t, order.CanBeSeenBy(customer, userModel.RoleClient))
	assert.True(t, order.CanBeSeenBy(driver, userModel.RoleDelivery))
	assert.True(t, order.CanBeSeenBy(owner, userModel.RoleOwner))

	// Matching identity with the wrong role is still denied.
	assert.False(t, order.CanBeSeenBy(customer, userModel.RoleOwner))
	assert.False(t, order.CanBeSeenBy(owner, userModel.RoleClient))

	stranger := uuid.New()
	assert.False(t, order.CanBeSeenBy(stranger, userModel.RoleClient))
	assert.False(t, order.CanBeSeenBy(stranger, userModel.RoleDelivery))
	assert.False(t, order.CanBeSeenBy(stranger, userModel.RoleOwner))
}

func TestCanBeSeenByNoDriver(t *testing.T) {
	order := &Order{ID: uuid.New(), CustomerID: uuid.New(), RestaurantOwnerID: uuid.New()}
	assert.False(t, order.CanBeSeenBy(uuid.New(), userModel.RoleDelivery))
}
