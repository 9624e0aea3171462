package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"eats-backend/internal/domains/order/model"
	"eats-backend/internal/domains/order/repository"
	restaurantModel "eats-backend/internal/domains/restaurant/model"
	restaurantRepo "eats-backend/internal/domains/restaurant/repository"
	userModel "eats-backend/internal/domains/user/model"
	"eats-backend/internal/infrastructure/pubsub"
	"eats-backend/pkg/logger"
)

// =====================================================
// ORDER SERVICE IMPLEMENTATION
// =====================================================
type orderService struct {
	orders      repository.OrderRepository
	restaurants restaurantRepo.RestaurantRepository
	bus         pubsub.Bus
}

func NewOrderService(orders repository.OrderRepository, restaurants restaurantRepo.RestaurantRepository, bus pubsub.Bus) OrderService {
	return &orderService{
		orders:      orders,
		restaurants: restaurants,
		bus:         bus,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, customer *userModel.User, req model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewOrderError(model.ErrCodeInvalidInput, "invalid order input", err)
	}

	restaurant, err := s.restaurants.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantModel.ErrRestaurantNotFound) {
			return nil, model.NewOrderError(model.ErrCodeOrderNotFound, "restaurant not found", err)
		}
		logger.Error("load restaurant for order", err)
		return nil, model.NewOrderError(model.ErrCodeInternal, "could not create order", err)
	}

	order := &model.Order{
		ID:                uuid.New(),
		CustomerID:        customer.ID,
		RestaurantID:      restaurant.ID,
		Status:            model.StatusPending,
		RestaurantOwnerID: restaurant.OwnerID,
	}

	total := decimal.Zero
	for _, input := range req.Items {
		dish, err := s.restaurants.GetDishByID(ctx, input.DishID)
		if err != nil {
			if errors.Is(err, restaurantModel.ErrDishNotFound) {
				return nil, model.NewOrderError(model.ErrCodeOrderNotFound, "dish not found", err)
			}
			logger.Error("load dish for order", err)
			return nil, model.NewOrderError(model.ErrCodeInternal, "could not create order", err)
		}
		if dish.RestaurantID != restaurant.ID {
			return nil, model.NewOrderError(model.ErrCodeOrderNotFound, "dish not found", nil)
		}

		total = total.Add(DishPrice(dish, input.Options))
		order.Items = append(order.Items, model.OrderItem{
			ID:      uuid.New(),
			OrderID: order.ID,
			DishID:  dish.ID,
			Options: input.Options,
		})
	}
	order.Total = total

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		logger.Error("create order", err)
		return nil, model.NewOrderError(model.ErrCodeInternal, "could not create order", err)
	}

	s.bus.Publish(ctx, pubsub.TopicPendingOrders, model.PendingOrderEvent{
		Order:   order,
		OwnerID: restaurant.OwnerID,
	})

	return order, nil
}

// GetOrders lists orders scoped to the caller's role. The status
// filter is applied at query level for every role.
func (s *orderService) GetOrders(ctx context.Context, user *userModel.User, status *model.OrderStatus) ([]model.Order, error) {
	if status != nil && !status.Valid() {
		return nil, model.NewOrderError(model.ErrCodeInvalidInput, "unknown order status", nil)
	}

	var (
		orders []model.Order
		err    error
	)
	switch user.Role {
	case userModel.RoleClient:
		orders, err = s.orders.ListByCustomer(ctx, user.ID, status)
	case userModel.RoleDelivery:
		orders, err = s.orders.ListByDriver(ctx, user.ID, status)
	case userModel.RoleOwner:
		orders, err = s.orders.ListByOwner(ctx, user.ID, status)
	default:
		return nil, model.NewOrderError(model.ErrCodeNotAllowed, "you can not see that", nil)
	}

	if err != nil {
		logger.Error("list orders", err)
		return nil, model.NewOrderError(model.ErrCodeInternal, "could not load orders", err)
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, user *userModel.User, id uuid.UUID) (*model.Order, error) {
	order, err := s.loadOrder(ctx, id, "could not load order")
	if err != nil {
		return nil, err
	}
	if !order.CanBeSeenBy(user.ID, user.Role) {
		return nil, model.NewOrderError(model.ErrCodeNotAllowed, "you can not see that", nil)
	}
	return order, nil
}

func (s *orderService) EditOrder(ctx context.Context, user *userModel.User, req model.EditOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewOrderError(model.ErrCodeInvalidInput, "invalid order input", err)
	}

	order, err := s.loadOrder(ctx, req.OrderID, "could not edit order")
	if err != nil {
		return nil, err
	}
	if !order.CanBeSeenBy(user.ID, user.Role) {
		return nil, model.NewOrderError(model.ErrCodeNotAllowed, "you can not see that", nil)
	}
	if !model.CanSetStatus(user.Role, req.Status) {
		return nil, model.NewOrderError(model.ErrCodeNotAllowed, "you can not do that", nil)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, req.Status); err != nil {
		logger.Error("update order status", err)
		return nil, model.NewOrderError(model.ErrCodeInternal, "could not edit order", err)
	}
	order.Status = req.Status

	if user.Role == userModel.RoleOwner && req.Status == model.StatusCooked {
		s.bus.Publish(ctx, pubsub.TopicCookedOrders, model.CookedOrderEvent{Order: order})
	}
	s.bus.Publish(ctx, pubsub.TopicOrderUpdates, model.OrderUpdateEvent{Order: order})

	return order, nil
}

func (s *orderService) TakeOrder(ctx context.Context, driver *userModel.User, id uuid.UUID) (*model.Order, error) {
	order, err := s.loadOrder(ctx, id, "could not take order")
	if err != nil {
		return nil, err
	}
	if order.DriverID != nil {
		return nil, model.NewOrderError(model.ErrCodeDriverAssigned, "this order already has a driver", nil)
	}

	if err := s.orders.AssignDriver(ctx, order.ID, driver.ID); err != nil {
		if errors.Is(err, model.ErrDriverAssigned) {
			return nil, model.NewOrderError(model.ErrCodeDriverAssigned, "this order already has a driver", err)
		}
		logger.Error("assign driver", err)
		return nil, model.NewOrderError(model.ErrCodeInternal, "could not take order", err)
	}
	order.DriverID = &driver.ID

	s.bus.Publish(ctx, pubsub.TopicOrderUpdates, model.OrderUpdateEvent{Order: order})

	return order, nil
}

func (s *orderService) loadOrder(ctx context.Context, id uuid.UUID, internalMsg string) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, model.NewOrderError(model.ErrCodeOrderNotFound, "order not found", err)
		}
		logger.Error("load order", err)
		return nil, model.NewOrderError(model.ErrCodeInternal, internalMsg, err)
	}
	return order, nil
}
