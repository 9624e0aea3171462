package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eats-backend/internal/domains/restaurant/model"
)

// RestaurantRepository is the data access contract for restaurants,
// categories and dishes.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	GetByIDWithMenu(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	Update(ctx context.Context, restaurant *model.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAndCount pages through all restaurants, promoted first.
	FindAndCount(ctx context.Context, page, limit int) ([]model.Restaurant, int, error)
	SearchByName(ctx context.Context, query string, page, limit int) ([]model.Restaurant, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Restaurant, error)

	// ExpirePromotions clears is_promoted and promoted_until together
	// for every restaurant whose promotion deadline has passed.
	// Returns the number of affected rows; a sweep with nothing
	// expired is a no-op.
	ExpirePromotions(ctx context.Context, now time.Time) (int64, error)

	GetOrCreateCategory(ctx context.Context, name, slug string) (*model.Category, error)
	AllCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page, limit int) ([]model.Restaurant, int, error)

	CreateDish(ctx context.Context, dish *model.Dish) error
	GetDishByID(ctx context.Context, id uuid.UUID) (*model.Dish, error)
	UpdateDish(ctx context.Context, dish *model.Dish) error
	DeleteDish(ctx context.Context, id uuid.UUID) error
}
