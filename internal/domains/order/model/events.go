package model

import "github.com/google/uuid"

// =====================================================
// BUS EVENT PAYLOADS
// =====================================================

// PendingOrderEvent is published when a new order is created. OwnerID
// lets owner subscribers filter for their own restaurants.
type PendingOrderEvent struct {
	Order   *Order    `json:"order"`
	OwnerID uuid.UUID `json:"owner_id"`
}

// CookedOrderEvent is published when an order reaches the cooked
// status. Delivered to every delivery subscriber, unfiltered.
type CookedOrderEvent struct {
	Order *Order `json:"order"`
}

// OrderUpdateEvent is published on every successful status edit and on
// driver assignment. Subscribers filter by order id and visibility.
type OrderUpdateEvent struct {
	Order *Order `json:"order"`
}
