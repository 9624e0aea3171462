package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eats-backend/internal/domains/restaurant/model"
	"eats-backend/internal/domains/restaurant/service"
	"eats-backend/internal/infrastructure/storage"
	"eats-backend/internal/shared/middleware"
	"eats-backend/internal/shared/response"
)

const maxCoverImageSize = 5 << 20

// =====================================================
// RESTAURANT HANDLER
// =====================================================
type Handler struct {
	service service.RestaurantService
	storage *storage.MinIOStorage
}

func NewHandler(service service.RestaurantService, storage *storage.MinIOStorage) *Handler {
	return &Handler{
		service: service,
		storage: storage,
	}
}

// CreateRestaurant - POST /v1/restaurants
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req model.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), middleware.GetUser(c), req)
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, restaurant)
}

// EditRestaurant - PUT /v1/restaurants/:id
func (h *Handler) EditRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.EditRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	req.RestaurantID = id

	if err := h.service.EditRestaurant(c.Request.Context(), middleware.GetUser(c), req); err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// DeleteRestaurant - DELETE /v1/restaurants/:id
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRestaurant(c.Request.Context(), middleware.GetUser(c), id); err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// MyRestaurants - GET /v1/restaurants/mine
func (h *Handler) MyRestaurants(c *gin.Context) {
	restaurants, err := h.service.MyRestaurants(c.Request.Context(), middleware.GetUser(c))
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

// ListRestaurants - GET /v1/restaurants
func (h *Handler) ListRestaurants(c *gin.Context) {
	page := parsePage(c)

	result, err := h.service.AllRestaurants(c.Request.Context(), page)
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Restaurants, &response.Meta{
		Page:       page,
		Limit:      model.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetRestaurant - GET /v1/restaurants/:id
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	restaurant, err := h.service.FindRestaurantByID(c.Request.Context(), id)
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, restaurant)
}

// SearchRestaurants - GET /v1/restaurants/search
func (h *Handler) SearchRestaurants(c *gin.Context) {
	req := model.SearchRestaurantRequest{Query: c.Query("query")}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "query is required")
		return
	}

	result, err := h.service.SearchRestaurantByName(c.Request.Context(), req.Query, parsePage(c))
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"restaurants": result.Restaurants,
		"total":       result.Total,
		"total_pages": result.TotalPages,
	})
}

// ListCategories - GET /v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.AllCategories(c.Request.Context())
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// GetCategory - GET /v1/categories/:slug
func (h *Handler) GetCategory(c *gin.Context) {
	category, result, err := h.service.CategoryBySlug(c.Request.Context(), c.Param("slug"), parsePage(c))
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"category":    category,
		"restaurants": result.Restaurants,
		"total":       result.Total,
		"total_pages": result.TotalPages,
	})
}

// UploadCoverImage - POST /v1/restaurants/cover-image
func (h *Handler) UploadCoverImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxCoverImageSize {
		response.BadRequest(c, "file is too large")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxCoverImageSize))
	if err != nil {
		response.InternalServerError(c, "could not read file")
		return
	}

	key := fmt.Sprintf("covers/%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	url, err := h.storage.Upload(c.Request.Context(), key, data, header.Header.Get("Content-Type"))
	if err != nil {
		response.InternalServerError(c, "could not upload file")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}

// =====================================================
// DISHES
// =====================================================

// CreateDish - POST /v1/dishes
func (h *Handler) CreateDish(c *gin.Context) {
	var req model.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dish, err := h.service.CreateDish(c.Request.Context(), middleware.GetUser(c), req)
	if err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dish)
}

// EditDish - PUT /v1/dishes/:id
func (h *Handler) EditDish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.EditDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	req.DishID = id

	if err := h.service.EditDish(c.Request.Context(), middleware.GetUser(c), req); err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// DeleteDish - DELETE /v1/dishes/:id
func (h *Handler) DeleteDish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDish(c.Request.Context(), middleware.GetUser(c), id); err != nil {
		writeRestaurantError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
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

func parsePage(c *gin.Context) int {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	return page
}

func writeRestaurantError(c *gin.Context, err error) {
	var restaurantErr *model.RestaurantError
	if !errors.As(err, &restaurantErr) {
		response.InternalServerError(c, "something went wrong")
		return
	}

	switch restaurantErr.Code {
	case model.ErrCodeRestaurantNotFound, model.ErrCodeDishNotFound, model.ErrCodeCategoryNotFound:
		response.ErrorResponse(c, http.StatusNotFound, restaurantErr.Code, restaurantErr.Message)
	case model.ErrCodeNotOwner:
		response.ErrorResponse(c, http.StatusForbidden, restaurantErr.Code, restaurantErr.Message)
	case model.ErrCodeInvalidInput:
		response.ErrorResponse(c, http.StatusUnprocessableEntity, restaurantErr.Code, restaurantErr.Message)
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, restaurantErr.Code, restaurantErr.Message)
	}
}
