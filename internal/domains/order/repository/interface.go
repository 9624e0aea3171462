package repository

import (
	"context"

	"github.com/google/uuid"

	"eats-backend/internal/domains/order/model"
)

// =====================================================
// ORDER REPOSITORY INTERFACE
// =====================================================
type OrderRepository interface {
	// CreateWithItems persists the order and all of its items in one
	// transaction. On any failure nothing is written.
	CreateWithItems(ctx context.Context, order *model.Order) error

	// GetByID loads an order with its items and the owning
	// restaurant's owner id. Returns model.ErrOrderNotFound on miss.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	// AssignDriver sets the driver only when none is assigned yet.
	// Returns model.ErrDriverAssigned when the slot is already taken.
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) error

	ListByCustomer(ctx context.Context, customerID uuid.UUID, status *model.OrderStatus) ([]model.Order, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, status *model.OrderStatus) ([]model.Order, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status *model.OrderStatus) ([]model.Order, error)
}
