package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eats-backend/internal/domains/restaurant/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================
type postgresRestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRestaurantRepository(pool *pgxpool.Pool) RestaurantRepository {
	return &postgresRestaurantRepository{
		pool: pool,
	}
}

const restaurantColumns = `
	id, name, address, cover_image, owner_id, category_id,
	is_promoted, promoted_until, created_at, updated_at
`

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.CoverImage,
		&r.OwnerID,
		&r.CategoryID,
		&r.IsPromoted,
		&r.PromotedUntil,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// =====================================================
// RESTAURANTS
// =====================================================

func (r *postgresRestaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	query := `
		INSERT INTO restaurants (
			id, name, address, cover_image, owner_id, category_id, is_promoted
		) VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.CoverImage,
		restaurant.OwnerID,
		restaurant.CategoryID,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return nil
}

func (r *postgresRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	restaurant, err := scanRestaurant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant by id: %w", err)
	}

	return restaurant, nil
}

func (r *postgresRestaurantRepository) GetByIDWithMenu(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, restaurant_id, name, description, price, photo, options, created_at, updated_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		restaurant.Menu = append(restaurant.Menu, *dish)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu: %w", err)
	}

	return restaurant, nil
}

func (r *postgresRestaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, address = $3, cover_image = $4, category_id = $5,
		    is_promoted = $6, promoted_until = $7, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.CoverImage,
		restaurant.CategoryID,
		restaurant.IsPromoted,
		restaurant.PromotedUntil,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRestaurantNotFound
	}

	return nil
}

func (r *postgresRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRestaurantNotFound
	}
	return nil
}

func (r *postgresRestaurantRepository) FindAndCount(ctx context.Context, page, limit int) ([]model.Restaurant, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		ORDER BY is_promoted DESC, created_at DESC
		OFFSET $1 LIMIT $2
	`

	return r.queryRestaurants(ctx, query, total, (page-1)*limit, limit)
}

func (r *postgresRestaurantRepository) SearchByName(ctx context.Context, query string, page, limit int) ([]model.Restaurant, int, error) {
	pattern := "%" + query + "%"

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants WHERE name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	sql := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE name ILIKE $3
		ORDER BY is_promoted DESC, created_at DESC
		OFFSET $1 LIMIT $2
	`

	return r.queryRestaurants(ctx, sql, total, (page-1)*limit, limit, pattern)
}

func (r *postgresRestaurantRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants by owner: %w", err)
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

func (r *postgresRestaurantRepository) ExpirePromotions(ctx context.Context, now time.Time) (int64, error) {
	// Single conditional update keeps the pair-write atomic and the
	// sweep idempotent.
	query := `
		UPDATE restaurants
		SET is_promoted = FALSE, promoted_until = NULL, updated_at = now()
		WHERE is_promoted = TRUE AND promoted_until < $1
	`

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire promotions: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRestaurantRepository) queryRestaurants(ctx context.Context, query string, total, offset, limit int, extra ...interface{}) ([]model.Restaurant, int, error) {
	args := append([]interface{}{offset, limit}, extra...)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants, err := collectRestaurants(rows)
	if err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

func collectRestaurants(rows pgx.Rows) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, *restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}
	return restaurants, nil
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresRestaurantRepository) GetOrCreateCategory(ctx context.Context, name, slug string) (*model.Category, error) {
	query := `
		INSERT INTO categories (id, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = categories.name
		RETURNING id, name, slug, cover_image, created_at
	`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, uuid.New(), name, slug).Scan(
		&c.ID, &c.Name, &c.Slug, &c.CoverImage, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create category: %w", err)
	}

	return &c, nil
}

func (r *postgresRestaurantRepository) AllCategories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.cover_image, c.created_at, COUNT(r.id)
		FROM categories c
		LEFT JOIN restaurants r ON r.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CoverImage, &c.CreatedAt, &c.RestaurantCount); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRestaurantRepository) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	query := `SELECT id, name, slug, cover_image, created_at FROM categories WHERE slug = $1`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.CoverImage, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return &c, nil
}

func (r *postgresRestaurantRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, page, limit int) ([]model.Restaurant, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants WHERE category_id = $1`, categoryID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE category_id = $3
		ORDER BY is_promoted DESC, created_at DESC
		OFFSET $1 LIMIT $2
	`

	return r.queryRestaurants(ctx, query, total, (page-1)*limit, limit, categoryID)
}

// =====================================================
// DISHES
// =====================================================

func scanDish(row pgx.Row) (*model.Dish, error) {
	var d model.Dish
	var options []byte

	err := row.Scan(
		&d.ID,
		&d.RestaurantID,
		&d.Name,
		&d.Description,
		&d.Price,
		&d.Photo,
		&options,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &d.Options); err != nil {
			return nil, fmt.Errorf("failed to decode dish options: %w", err)
		}
	}

	return &d, nil
}

func (r *postgresRestaurantRepository) CreateDish(ctx context.Context, dish *model.Dish) error {
	options, err := json.Marshal(dish.Options)
	if err != nil {
		return fmt.Errorf("failed to encode dish options: %w", err)
	}

	query := `
		INSERT INTO dishes (id, restaurant_id, name, description, price, photo, options)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = r.pool.QueryRow(ctx, query,
		dish.ID,
		dish.RestaurantID,
		dish.Name,
		dish.Description,
		dish.Price,
		dish.Photo,
		options,
	).Scan(&dish.CreatedAt, &dish.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create dish: %w", err)
	}

	return nil
}

func (r *postgresRestaurantRepository) GetDishByID(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, photo, options, created_at, updated_at
		FROM dishes
		WHERE id = $1
	`

	dish, err := scanDish(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDishNotFound
		}
		return nil, fmt.Errorf("failed to get dish by id: %w", err)
	}

	return dish, nil
}

func (r *postgresRestaurantRepository) UpdateDish(ctx context.Context, dish *model.Dish) error {
	options, err := json.Marshal(dish.Options)
	if err != nil {
		return fmt.Errorf("failed to encode dish options: %w", err)
	}

	query := `
		UPDATE dishes
		SET name = $2, description = $3, price = $4, photo = $5, options = $6, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		dish.ID,
		dish.Name,
		dish.Description,
		dish.Price,
		dish.Photo,
		options,
	)
	if err != nil {
		return fmt.Errorf("failed to update dish: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDishNotFound
	}

	return nil
}

func (r *postgresRestaurantRepository) DeleteDish(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dish: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDishNotFound
	}
	return nil
}
