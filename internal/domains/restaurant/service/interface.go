package service

import (
	"context"

	"github.com/google/uuid"

	"eats-backend/internal/domains/restaurant/model"
	userModel "eats-backend/internal/domains/user/model"
)

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, owner *userModel.User, req model.CreateRestaurantRequest) (*model.Restaurant, error)
	EditRestaurant(ctx context.Context, owner *userModel.User, req model.EditRestaurantRequest) error
	DeleteRestaurant(ctx context.Context, owner *userModel.User, restaurantID uuid.UUID) error
	MyRestaurants(ctx context.Context, owner *userModel.User) ([]model.Restaurant, error)

	AllRestaurants(ctx context.Context, page int) (*model.ListRestaurantsResponse, error)
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	SearchRestaurantByName(ctx context.Context, query string, page int) (*model.ListRestaurantsResponse, error)

	AllCategories(ctx context.Context) ([]model.Category, error)
	CategoryBySlug(ctx context.Context, slug string, page int) (*model.Category, *model.ListRestaurantsResponse, error)

	CreateDish(ctx context.Context, owner *userModel.User, req model.CreateDishRequest) (*model.Dish, error)
	EditDish(ctx context.Context, owner *userModel.User, req model.EditDishRequest) error
	DeleteDish(ctx context.Context, owner *userModel.User, dishID uuid.UUID) error
}
