package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"

	"eats-backend/internal/domains/user/model"
	"eats-backend/internal/domains/user/repository"
	"eats-backend/internal/infrastructure/email"
	"eats-backend/internal/shared"
	"eats-backend/pkg/jwt"
	"eats-backend/pkg/logger"
)

const bcryptCost = 12

// Enqueuer pushes background tasks. *asynq.Client satisfies it.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// =====================================================
// USER SERVICE IMPLEMENTATION
// =====================================================
type userService struct {
	repo     repository.UserRepository
	jwt      *jwt.Manager
	enqueuer Enqueuer
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager, enqueuer Enqueuer) UserService {
	return &userService{
		repo:     repo,
		jwt:      jwtManager,
		enqueuer: enqueuer,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewUserError(model.ErrCodeInvalidCredentials, "invalid registration input", err)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("check email", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not create account", err)
	}
	if exists {
		return nil, model.NewUserError(model.ErrCodeEmailExists, "there is a user with that email already", model.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logger.Error("hash password", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not create account", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		logger.Error("create user", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not create account", err)
	}

	s.sendVerification(ctx, user)

	dto := user.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewUserError(model.ErrCodeInvalidCredentials, "wrong email or password", err)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same answer as a bad password so the response does not
			// reveal which emails are registered.
			return nil, model.NewUserError(model.ErrCodeInvalidCredentials, "wrong email or password", err)
		}
		logger.Error("load user for login", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewUserError(model.ErrCodeInvalidCredentials, "wrong email or password", err)
	}

	token, err := s.jwt.GenerateToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		logger.Error("generate token", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not log in", err)
	}

	return &model.LoginResponse{
		Token: token,
		User:  user.ToDTO(),
	}, nil
}

func (s *userService) Profile(ctx context.Context, id uuid.UUID) (*model.UserDTO, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserError(model.ErrCodeUserNotFound, "user not found", err)
		}
		logger.Error("load user", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not load profile", err)
	}

	dto := user.ToDTO()
	return &dto, nil
}

func (s *userService) EditProfile(ctx context.Context, userID uuid.UUID, req model.EditProfileRequest) (*model.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewUserError(model.ErrCodeInvalidCredentials, "invalid profile input", err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserError(model.ErrCodeUserNotFound, "user not found", err)
		}
		logger.Error("load user", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not update profile", err)
	}

	emailChanged := false
	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			logger.Error("check email", err)
			return nil, model.NewUserError(model.ErrCodeInternal, "could not update profile", err)
		}
		if exists {
			return nil, model.NewUserError(model.ErrCodeEmailExists, "there is a user with that email already", model.ErrEmailAlreadyExists)
		}
		user.Email = *req.Email
		user.IsVerified = false
		emailChanged = true
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			logger.Error("hash password", err)
			return nil, model.NewUserError(model.ErrCodeInternal, "could not update profile", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		logger.Error("update user", err)
		return nil, model.NewUserError(model.ErrCodeInternal, "could not update profile", err)
	}

	if emailChanged {
		// Stale codes for the old address must not verify the new one.
		if err := s.repo.DeleteVerificationsByUser(ctx, user.ID); err != nil {
			logger.Error("delete old verifications", err)
		}
		s.sendVerification(ctx, user)
	}

	dto := user.ToDTO()
	return &dto, nil
}

func (s *userService) VerifyEmail(ctx context.Context, code string) error {
	verification, err := s.repo.GetVerificationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrVerificationNotFound) {
			return model.NewUserError(model.ErrCodeVerificationNotFound, "verification not found", err)
		}
		logger.Error("load verification", err)
		return model.NewUserError(model.ErrCodeInternal, "could not verify email", err)
	}

	user, err := s.repo.GetByID(ctx, verification.UserID)
	if err != nil {
		logger.Error("load user for verification", err)
		return model.NewUserError(model.ErrCodeInternal, "could not verify email", err)
	}

	user.IsVerified = true
	if err := s.repo.Update(ctx, user); err != nil {
		logger.Error("mark user verified", err)
		return model.NewUserError(model.ErrCodeInternal, "could not verify email", err)
	}

	if err := s.repo.DeleteVerification(ctx, verification.ID); err != nil {
		logger.Error("delete verification", err)
	}

	return nil
}

// sendVerification stores a fresh code and queues the mail. Failures
// are logged only; registration and profile edits still succeed.
func (s *userService) sendVerification(ctx context.Context, user *model.User) {
	verification := &model.Verification{
		ID:     uuid.New(),
		Code:   uuid.New().String(),
		UserID: user.ID,
	}
	if err := s.repo.CreateVerification(ctx, verification); err != nil {
		logger.Error("create verification", err)
		return
	}

	payload, err := json.Marshal(email.VerificationEmailData{
		Email: user.Email,
		Code:  verification.Code,
	})
	if err != nil {
		logger.Error("marshal verification payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeSendVerificationEmail, payload)
	if _, err := s.enqueuer.Enqueue(task, asynq.Queue(shared.QueueEmail)); err != nil {
		logger.Error("enqueue verification email", err)
	}
}
