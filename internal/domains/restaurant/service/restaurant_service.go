package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"eats-backend/internal/domains/restaurant/model"
	"eats-backend/internal/domains/restaurant/repository"
	userModel "eats-backend/internal/domains/user/model"
	"eats-backend/internal/infrastructure/cache"
	"eats-backend/internal/shared/utils"
	"eats-backend/pkg/logger"
)

const listCacheTTL = 30 * time.Second

// =====================================================
// RESTAURANT SERVICE IMPLEMENTATION
// =====================================================
type restaurantService struct {
	repo  repository.RestaurantRepository
	cache cache.Cache
}

func NewRestaurantService(repo repository.RestaurantRepository, cache cache.Cache) RestaurantService {
	return &restaurantService{
		repo:  repo,
		cache: cache,
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, owner *userModel.User, req model.CreateRestaurantRequest) (*model.Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewRestaurantError(model.ErrCodeInvalidInput, "invalid restaurant input", err)
	}

	category, err := s.repo.GetOrCreateCategory(ctx, req.CategoryName, utils.GenerateSlug(req.CategoryName))
	if err != nil {
		logger.Error("get or create category", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not create restaurant", err)
	}

	restaurant := &model.Restaurant{
		ID:         uuid.New(),
		Name:       req.Name,
		Address:    req.Address,
		CoverImage: req.CoverImage,
		OwnerID:    owner.ID,
		CategoryID: &category.ID,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		logger.Error("create restaurant", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not create restaurant", err)
	}

	return restaurant, nil
}

func (s *restaurantService) EditRestaurant(ctx context.Context, owner *userModel.User, req model.EditRestaurantRequest) error {
	if err := req.Validate(); err != nil {
		return model.NewRestaurantError(model.ErrCodeInvalidInput, "invalid restaurant input", err)
	}

	restaurant, err := s.repo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		return s.wrapLookupError(err, "could not update restaurant")
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return model.NewRestaurantError(model.ErrCodeNotOwner, "you can not edit a restaurant that you do not own", nil)
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.CoverImage != nil {
		restaurant.CoverImage = *req.CoverImage
	}
	if req.CategoryName != nil {
		category, err := s.repo.GetOrCreateCategory(ctx, *req.CategoryName, utils.GenerateSlug(*req.CategoryName))
		if err != nil {
			logger.Error("get or create category", err)
			return model.NewRestaurantError(model.ErrCodeInternal, "could not update restaurant", err)
		}
		restaurant.CategoryID = &category.ID
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		logger.Error("update restaurant", err)
		return model.NewRestaurantError(model.ErrCodeInternal, "could not update restaurant", err)
	}

	return nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, owner *userModel.User, restaurantID uuid.UUID) error {
	restaurant, err := s.repo.GetByID(ctx, restaurantID)
	if err != nil {
		return s.wrapLookupError(err, "could not delete restaurant")
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return model.NewRestaurantError(model.ErrCodeNotOwner, "you can not delete a restaurant that you do not own", nil)
	}

	if err := s.repo.Delete(ctx, restaurantID); err != nil {
		logger.Error("delete restaurant", err)
		return model.NewRestaurantError(model.ErrCodeInternal, "could not delete restaurant", err)
	}

	return nil
}

func (s *restaurantService) MyRestaurants(ctx context.Context, owner *userModel.User) ([]model.Restaurant, error) {
	restaurants, err := s.repo.ListByOwner(ctx, owner.ID)
	if err != nil {
		logger.Error("list restaurants by owner", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load restaurants", err)
	}
	return restaurants, nil
}

func (s *restaurantService) AllRestaurants(ctx context.Context, page int) (*model.ListRestaurantsResponse, error) {
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("restaurants:all:%d", page)
	var cached model.ListRestaurantsResponse
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	restaurants, total, err := s.repo.FindAndCount(ctx, page, model.PageSize)
	if err != nil {
		logger.Error("list restaurants", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load restaurants", err)
	}

	resp := &model.ListRestaurantsResponse{
		Restaurants: restaurants,
		Total:       total,
		TotalPages:  totalPages(total),
	}

	if err := s.cache.Set(ctx, cacheKey, resp, listCacheTTL); err != nil {
		// Cache is an optimization; listing still succeeds without it.
		logger.Error("cache restaurant listing", err)
	}

	return resp, nil
}

func (s *restaurantService) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.repo.GetByIDWithMenu(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrRestaurantNotFound) {
			return nil, model.NewRestaurantError(model.ErrCodeRestaurantNotFound, "restaurant not found", err)
		}
		logger.Error("find restaurant", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not find restaurant", err)
	}
	return restaurant, nil
}

func (s *restaurantService) SearchRestaurantByName(ctx context.Context, query string, page int) (*model.ListRestaurantsResponse, error) {
	if page < 1 {
		page = 1
	}

	restaurants, total, err := s.repo.SearchByName(ctx, query, page, model.PageSize)
	if err != nil {
		logger.Error("search restaurants", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not search for restaurants", err)
	}

	return &model.ListRestaurantsResponse{
		Restaurants: restaurants,
		Total:       total,
		TotalPages:  totalPages(total),
	}, nil
}

func (s *restaurantService) AllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.AllCategories(ctx)
	if err != nil {
		logger.Error("list categories", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load categories", err)
	}
	return categories, nil
}

func (s *restaurantService) CategoryBySlug(ctx context.Context, slug string, page int) (*model.Category, *model.ListRestaurantsResponse, error) {
	if page < 1 {
		page = 1
	}

	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			return nil, nil, model.NewRestaurantError(model.ErrCodeCategoryNotFound, "category not found", err)
		}
		logger.Error("get category", err)
		return nil, nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load category", err)
	}

	restaurants, total, err := s.repo.ListByCategory(ctx, category.ID, page, model.PageSize)
	if err != nil {
		logger.Error("list restaurants by category", err)
		return nil, nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load category", err)
	}

	return category, &model.ListRestaurantsResponse{
		Restaurants: restaurants,
		Total:       total,
		TotalPages:  totalPages(total),
	}, nil
}

// =====================================================
// DISHES
// =====================================================

func (s *restaurantService) CreateDish(ctx context.Context, owner *userModel.User, req model.CreateDishRequest) (*model.Dish, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewRestaurantError(model.ErrCodeInvalidInput, "invalid dish input", err)
	}

	restaurant, err := s.repo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, s.wrapLookupError(err, "could not create dish")
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return nil, model.NewRestaurantError(model.ErrCodeNotOwner, "you can not add a dish to a restaurant that you do not own", nil)
	}

	dish := &model.Dish{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Photo:        req.Photo,
		Options:      req.Options,
	}

	if err := s.repo.CreateDish(ctx, dish); err != nil {
		logger.Error("create dish", err)
		return nil, model.NewRestaurantError(model.ErrCodeInternal, "could not create dish", err)
	}

	return dish, nil
}

func (s *restaurantService) EditDish(ctx context.Context, owner *userModel.User, req model.EditDishRequest) error {
	if err := req.Validate(); err != nil {
		return model.NewRestaurantError(model.ErrCodeInvalidInput, "invalid dish input", err)
	}

	dish, restaurant, err := s.dishWithRestaurant(ctx, req.DishID)
	if err != nil {
		return err
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return model.NewRestaurantError(model.ErrCodeNotOwner, "you can not edit a dish of a restaurant that you do not own", nil)
	}

	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Photo != nil {
		dish.Photo = req.Photo
	}
	if req.Options != nil {
		dish.Options = req.Options
	}

	if err := s.repo.UpdateDish(ctx, dish); err != nil {
		logger.Error("update dish", err)
		return model.NewRestaurantError(model.ErrCodeInternal, "could not update dish", err)
	}

	return nil
}

func (s *restaurantService) DeleteDish(ctx context.Context, owner *userModel.User, dishID uuid.UUID) error {
	_, restaurant, err := s.dishWithRestaurant(ctx, dishID)
	if err != nil {
		return err
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return model.NewRestaurantError(model.ErrCodeNotOwner, "you can not delete a dish of a restaurant that you do not own", nil)
	}

	if err := s.repo.DeleteDish(ctx, dishID); err != nil {
		logger.Error("delete dish", err)
		return model.NewRestaurantError(model.ErrCodeInternal, "could not delete dish", err)
	}

	return nil
}

func (s *restaurantService) dishWithRestaurant(ctx context.Context, dishID uuid.UUID) (*model.Dish, *model.Restaurant, error) {
	dish, err := s.repo.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, model.ErrDishNotFound) {
			return nil, nil, model.NewRestaurantError(model.ErrCodeDishNotFound, "dish not found", err)
		}
		logger.Error("get dish", err)
		return nil, nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load dish", err)
	}

	restaurant, err := s.repo.GetByID(ctx, dish.RestaurantID)
	if err != nil {
		logger.Error("get dish restaurant", err)
		return nil, nil, model.NewRestaurantError(model.ErrCodeInternal, "could not load dish", err)
	}

	return dish, restaurant, nil
}

func (s *restaurantService) wrapLookupError(err error, internalMsg string) error {
	if errors.Is(err, model.ErrRestaurantNotFound) {
		return model.NewRestaurantError(model.ErrCodeRestaurantNotFound, "restaurant not found", err)
	}
	logger.Error("restaurant lookup", err)
	return model.NewRestaurantError(model.ErrCodeInternal, internalMsg, err)
}

func totalPages(total int) int {
	return int(math.Ceil(float64(total) / float64(model.PageSize)))
}
