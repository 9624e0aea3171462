package repository

import (
	"context"

	"github.com/google/uuid"

	"eats-backend/internal/domains/user/model"
)

// =====================================================
// USER REPOSITORY INTERFACE
// =====================================================
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *model.User) error

	CreateVerification(ctx context.Context, v *model.Verification) error
	GetVerificationByCode(ctx context.Context, code string) (*model.Verification, error)
	DeleteVerification(ctx context.Context, id uuid.UUID) error
	DeleteVerificationsByUser(ctx context.Context, userID uuid.UUID) error
}
