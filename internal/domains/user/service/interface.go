package service

import (
	"context"

	"github.com/google/uuid"

	"eats-backend/internal/domains/user/model"
)

// =====================================================
// USER SERVICE INTERFACE
// =====================================================
type UserService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Profile(ctx context.Context, id uuid.UUID) (*model.UserDTO, error)
	EditProfile(ctx context.Context, userID uuid.UUID, req model.EditProfileRequest) (*model.UserDTO, error)
	VerifyEmail(ctx context.Context, code string) error
}
