package service

import (
	"context"

	"github.com/google/uuid"

	"eats-backend/internal/domains/order/model"
	userModel "eats-backend/internal/domains/user/model"
)

// =====================================================
// ORDER SERVICE INTERFACE
// =====================================================
type OrderService interface {
	CreateOrder(ctx context.Context, customer *userModel.User, req model.CreateOrderRequest) (*model.Order, error)
	GetOrders(ctx context.Context, user *userModel.User, status *model.OrderStatus) ([]model.Order, error)
	GetOrder(ctx context.Context, user *userModel.User, id uuid.UUID) (*model.Order, error)
	EditOrder(ctx context.Context, user *userModel.User, req model.EditOrderRequest) (*model.Order, error)
	TakeOrder(ctx context.Context, driver *userModel.User, id uuid.UUID) (*model.Order, error)
}
