package model

import (
	"time"

	"github.com/google/uuid"
)

// =====================================================
// ENTITY: Restaurant
// =====================================================
// IsPromoted and PromotedUntil move together: payment creation sets
// both, the promotion sweeper clears both. No code path writes one
// without the other.
type Restaurant struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	CoverImage    string     `json:"cover_image"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	IsPromoted    bool       `json:"is_promoted"`
	PromotedUntil *time.Time `json:"promoted_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Menu is populated on detail lookups only.
	Menu []Dish `json:"menu,omitempty"`
}

// IsOwnedBy checks restaurant ownership.
func (r *Restaurant) IsOwnedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}

// =====================================================
// ENTITY: Category
// =====================================================
type Category struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CoverImage *string   `json:"cover_image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// RestaurantCount is filled by listing queries.
	RestaurantCount int `json:"restaurant_count,omitempty"`
}
