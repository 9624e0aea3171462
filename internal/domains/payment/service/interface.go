package service

import (
	"context"

	"eats-backend/internal/domains/payment/model"
	userModel "eats-backend/internal/domains/user/model"
)

// =====================================================
// PAYMENT SERVICE INTERFACE
// =====================================================
type PaymentService interface {
	// CreatePayment records a payment by a restaurant owner and
	// extends the restaurant's promotion window.
	CreatePayment(ctx context.Context, owner *userModel.User, req model.CreatePaymentRequest) (*model.Payment, error)

	GetPayments(ctx context.Context, user *userModel.User) ([]model.Payment, error)
}
