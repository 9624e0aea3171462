package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"eats-backend/internal/domains/payment/model"
	"eats-backend/internal/domains/payment/repository"
	restaurantModel "eats-backend/internal/domains/restaurant/model"
	restaurantRepo "eats-backend/internal/domains/restaurant/repository"
	userModel "eats-backend/internal/domains/user/model"
	"eats-backend/pkg/logger"
)

// =====================================================
// PAYMENT SERVICE IMPLEMENTATION
// =====================================================
type paymentService struct {
	payments    repository.PaymentRepository
	restaurants restaurantRepo.RestaurantRepository
	now         func() time.Time
}

func NewPaymentService(payments repository.PaymentRepository, restaurants restaurantRepo.RestaurantRepository) PaymentService {
	return &paymentService{
		payments:    payments,
		restaurants: restaurants,
		now:         time.Now,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, owner *userModel.User, req model.CreatePaymentRequest) (*model.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewPaymentError(model.ErrCodeInvalidInput, "invalid payment input", err)
	}

	restaurant, err := s.restaurants.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantModel.ErrRestaurantNotFound) {
			return nil, model.NewPaymentError(model.ErrCodeRestaurantNotFound, "restaurant not found", err)
		}
		logger.Error("load restaurant for payment", err)
		return nil, model.NewPaymentError(model.ErrCodeInternal, "could not create payment", err)
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return nil, model.NewPaymentError(model.ErrCodeNotOwner, "you are not allowed to do this", nil)
	}

	payment := &model.Payment{
		ID:            uuid.New(),
		TransactionID: req.TransactionID,
		UserID:        owner.ID,
		RestaurantID:  restaurant.ID,
	}

	promotedUntil := s.now().Add(model.PromotionDuration)
	if err := s.payments.CreateWithPromotion(ctx, payment, promotedUntil); err != nil {
		logger.Error("create payment", err)
		return nil, model.NewPaymentError(model.ErrCodeInternal, "could not create payment", err)
	}

	return payment, nil
}

func (s *paymentService) GetPayments(ctx context.Context, user *userModel.User) ([]model.Payment, error) {
	payments, err := s.payments.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Error("list payments", err)
		return nil, model.NewPaymentError(model.ErrCodeInternal, "could not load payments", err)
	}
	return payments, nil
}
