package model

import (
	"time"

	"github.com/google/uuid"
)

// =====================================================
// ROLE CONSTANTS
// =====================================================
// Role is fixed at registration time. There is no operation that
// changes it afterwards.
type Role string

const (
	RoleClient   Role = "client"
	RoleOwner    Role = "owner"
	RoleDelivery Role = "delivery"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	}
	return false
}

// =====================================================
// ENTITY: User
// =====================================================
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToDTO strips fields that must not leave the service layer.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// =====================================================
// ENTITY: Verification
// =====================================================
// One row per pending email verification. Deleted once the code is
// redeemed.
type Verification struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
