package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eats-backend/internal/domains/order/model"
	"eats-backend/internal/domains/order/service"
	"eats-backend/internal/infrastructure/pubsub"
	"eats-backend/internal/shared/middleware"
	"eats-backend/internal/shared/response"
)

// =====================================================
// ORDER HANDLER
// =====================================================
type Handler struct {
	service service.OrderService
	bus     pubsub.Bus
}

func NewHandler(service service.OrderService, bus pubsub.Bus) *Handler {
	return &Handler{
		service: service,
		bus:     bus,
	}
}

// CreateOrder - POST /v1/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), middleware.GetUser(c), req)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// ListOrders - GET /v1/orders?status=
func (h *Handler) ListOrders(c *gin.Context) {
	var status *model.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := model.OrderStatus(raw)
		if !s.Valid() {
			response.BadRequest(c, "unknown order status")
			return
		}
		status = &s
	}

	orders, err := h.service.GetOrders(c.Request.Context(), middleware.GetUser(c), status)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// GetOrder - GET /v1/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), middleware.GetUser(c), id)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// EditOrder - PUT /v1/orders/:id
func (h *Handler) EditOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	req.OrderID = id

	order, err := h.service.EditOrder(c.Request.Context(), middleware.GetUser(c), req)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// TakeOrder - POST /v1/orders/:id/take
func (h *Handler) TakeOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.service.TakeOrder(c.Request.Context(), middleware.GetUser(c), id)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// =====================================================
// HELPERS
// =====================================================

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func writeOrderError(c *gin.Context, err error) {
	var orderErr *model.OrderError
	if !errors.As(err, &orderErr) {
		response.InternalServerError(c, "something went wrong")
		return
	}

	switch orderErr.Code {
	case model.ErrCodeOrderNotFound:
		response.ErrorResponse(c, http.StatusNotFound, orderErr.Code, orderErr.Message)
	case model.ErrCodeNotAllowed:
		response.ErrorResponse(c, http.StatusForbidden, orderErr.Code, orderErr.Message)
	case model.ErrCodeDriverAssigned:
		response.ErrorResponse(c, http.StatusConflict, orderErr.Code, orderErr.Message)
	case model.ErrCodeInvalidInput:
		response.ErrorResponse(c, http.StatusUnprocessableEntity, orderErr.Code, orderErr.Message)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, orderErr.Code, orderErr.Message)
	}
}
