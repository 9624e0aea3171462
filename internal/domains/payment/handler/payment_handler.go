package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eats-backend/internal/domains/payment/model"
	"eats-backend/internal/domains/payment/service"
	"eats-backend/internal/shared/middleware"
	"eats-backend/internal/shared/response"
)

// =====================================================
// PAYMENT HANDLER
// =====================================================
type Handler struct {
	service service.PaymentService
}

func NewHandler(service service.PaymentService) *Handler {
	return &Handler{
		service: service,
	}
}

// CreatePayment - POST /v1/payments
func (h *Handler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), middleware.GetUser(c), req)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, payment)
}

// ListPayments - GET /v1/payments
func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.service.GetPayments(c.Request.Context(), middleware.GetUser(c))
	if err != nil {
		writePaymentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func writePaymentError(c *gin.Context, err error) {
	var paymentErr *model.PaymentError
	if !errors.As(err, &paymentErr) {
		response.InternalServerError(c, "something went wrong")
		return
	}

	switch paymentErr.Code {
	case model.ErrCodeRestaurantNotFound:
		response.ErrorResponse(c, http.StatusNotFound, paymentErr.Code, paymentErr.Message)
	case model.ErrCodeNotOwner:
		response.ErrorResponse(c, http.StatusForbidden, paymentErr.Code, paymentErr.Message)
	case model.ErrCodeInvalidInput:
		response.ErrorResponse(c, http.StatusUnprocessableEntity, paymentErr.Code, paymentErr.Message)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, paymentErr.Code, paymentErr.Message)
	}
}
