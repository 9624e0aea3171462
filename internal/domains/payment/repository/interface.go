package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eats-backend/internal/domains/payment/model"
)

// =====================================================
// PAYMENT REPOSITORY INTERFACE
// =====================================================
type PaymentRepository interface {
	// CreateWithPromotion persists the payment and promotes the paid
	// restaurant until the given time, in one transaction.
	CreateWithPromotion(ctx context.Context, payment *model.Payment, promotedUntil time.Time) error

	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error)
}
