package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eats-backend/internal/domains/order/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================
type postgresOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &postgresOrderRepository{
		pool: pool,
	}
}

const orderColumns = `
	o.id, o.customer_id, o.driver_id, o.restaurant_id, o.status,
	o.total, o.created_at, o.updated_at, r.owner_id
`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.DriverID,
		&o.RestaurantID,
		&o.Status,
		&o.Total,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.RestaurantOwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresOrderRepository) CreateWithItems(ctx context.Context, order *model.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, customer_id, restaurant_id, status, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		order.ID,
		order.CustomerID,
		order.RestaurantID,
		order.Status,
		order.Total,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, dish_id, options)
		VALUES ($1, $2, $3, $4)
	`
	for i := range order.Items {
		item := &order.Items[i]
		options, err := json.Marshal(item.Options)
		if err != nil {
			return fmt.Errorf("failed to encode item options: %w", err)
		}
		if _, err := tx.Exec(ctx, itemQuery, item.ID, item.OrderID, item.DishID, options); err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *postgresOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1
	`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *postgresOrderRepository) itemsByOrder(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	query := `
		SELECT id, order_id, dish_id, options
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		var options []byte
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &options); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if len(options) > 0 {
			if err := json.Unmarshal(options, &item.Options); err != nil {
				return nil, fmt.Errorf("failed to decode item options: %w", err)
			}
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *postgresOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func (r *postgresOrderRepository) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) error {
	// Conditional update so two racing drivers can not both win; the
	// loser sees zero affected rows.
	query := `
		UPDATE orders
		SET driver_id = $2, updated_at = NOW()
		WHERE id = $1 AND driver_id IS NULL
	`

	tag, err := r.pool.Exec(ctx, query, orderID, driverID)
	if err != nil {
		return fmt.Errorf("failed to assign driver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDriverAssigned
	}

	return nil
}

func (r *postgresOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	return r.listOrders(ctx, "o.customer_id = $1", customerID, status)
}

func (r *postgresOrderRepository) ListByDriver(ctx context.Context, driverID uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	return r.listOrders(ctx, "o.driver_id = $1", driverID, status)
}

func (r *postgresOrderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	return r.listOrders(ctx, "r.owner_id = $1", ownerID, status)
}

func (r *postgresOrderRepository) listOrders(ctx context.Context, where string, id uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE ` + where

	args := []interface{}{id}
	if status != nil {
		query += " AND o.status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}
