package model

import (
	"time"

	"github.com/google/uuid"
)

// PromotionDuration is how long one payment keeps a restaurant
// promoted.
const PromotionDuration = 7 * 24 * time.Hour

// =====================================================
// PAYMENT ENTITY
// =====================================================
type Payment struct {
	ID            uuid.UUID `json:"id"`
	TransactionID string    `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	CreatedAt     time.Time `json:"created_at"`
}
