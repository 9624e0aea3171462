package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eats-backend/internal/domains/user/model"
	"eats-backend/internal/domains/user/service"
	"eats-backend/internal/shared/middleware"
	"eats-backend/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================
type Handler struct {
	service service.UserService
}

func NewHandler(service service.UserService) *Handler {
	return &Handler{
		service: service,
	}
}

// Register - POST /v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login - POST /v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me - GET /v1/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// EditProfile - PUT /v1/me
func (h *Handler) EditProfile(c *gin.Context) {
	var req model.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.EditProfile(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UserProfile - GET /v1/users/:id
func (h *Handler) UserProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	user, err := h.service.Profile(c.Request.Context(), id)
	if err != nil {
		writeUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// VerifyEmail - POST /v1/auth/verify-email
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req model.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "code is required")
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), req.Code); err != nil {
		writeUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verified": true})
}

func writeUserError(c *gin.Context, err error) {
	var userErr *model.UserError
	if !errors.As(err, &userErr) {
		response.InternalServerError(c, "something went wrong")
		return
	}

	switch userErr.Code {
	case model.ErrCodeEmailExists:
		response.ErrorResponse(c, http.StatusConflict, userErr.Code, userErr.Message)
	case model.ErrCodeInvalidCredentials:
		response.ErrorResponse(c, http.StatusUnauthorized, userErr.Code, userErr.Message)
	case model.ErrCodeUserNotFound, model.ErrCodeVerificationNotFound:
		response.ErrorResponse(c, http.StatusNotFound, userErr.Code, userErr.Message)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, userErr.Code, userErr.Message)
	}
}
