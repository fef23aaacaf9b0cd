package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"loja-be/internal/address"
	"loja-be/internal/logger"
	"loja-be/internal/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetStockLevels(ctx context.Context, productIDs []uint) (map[uint]StockLevel, error)

	Create(ctx context.Context, order *Order, items []Item) (*Order, error)

	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetByIDForUser(ctx context.Context, userID, orderID uint) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetStockLevels reads the live stock of every product in one query.
// Products missing from the result no longer exist in the catalog.
func (r *repository) GetStockLevels(
	ctx context.Context,
	productIDs []uint,
) (map[uint]StockLevel, error) {

	ids := make([]int64, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, int64(id))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, stock
		FROM products
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make(map[uint]StockLevel, len(productIDs))

	for rows.Next() {
		var id uint
		var lvl StockLevel
		if err := rows.Scan(&id, &lvl.Name, &lvl.Stock); err != nil {
			return nil, err
		}
		levels[id] = lvl
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return levels, nil
}

// Create materializes an order inside one transaction: the order row,
// its items, and a conditional stock decrement per product. The
// decrement only applies while stock covers the quantity, so two
// concurrent checkouts cannot drive stock negative; the loser rolls
// back with InsufficientStockError.
func (r *repository) Create(
	ctx context.Context,
	order *Order,
	items []Item,
) (*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("user_id", order.UserID),
		zap.Int("item_count", len(items)),
	)

	log.Debug("starting order transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, address_id, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		order.UserID,
		order.AddressID,
		order.Total,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for i := range items {
		item := &items[i]
		item.OrderID = order.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, price, quantity)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			item.OrderID,
			item.ProductID,
			item.Price,
			item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		// Conditional decrement: only applies while stock covers the
		// quantity, closing the gap between verification and commit.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			var name string
			var available int
			err := tx.QueryRowContext(ctx, `
				SELECT name, stock FROM products WHERE id = $1
			`, item.ProductID).Scan(&name, &available)

			if errors.Is(err, sql.ErrNoRows) {
				return nil, product.ErrProductNotFound
			}
			if err != nil {
				return nil, err
			}

			log.Warn("stock ran out during commit",
				zap.Uint("product_id", item.ProductID),
				zap.Int("available", available),
			)

			return nil, &InsufficientStockError{
				ProductID: item.ProductID,
				Name:      name,
				Available: available,
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	order.Items = items

	log.Info("order transaction committed", zap.Uint("order_id", order.ID))

	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (r *repository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, address_id, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order

	for rows.Next() {
		var o Order
		var addressID uuid.NullUUID
		if err := rows.Scan(
			&o.ID, &o.UserID, &addressID, &o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		if addressID.Valid {
			o.AddressID = &addressID.UUID
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return orders, nil
}

// GetByIDForUser loads one order with its items, only when the order
// belongs to the user. Ownership is part of the WHERE clause, so a
// foreign order is indistinguishable from a missing one.
func (r *repository) GetByIDForUser(
	ctx context.Context,
	userID, orderID uint,
) (*Order, error) {

	var o Order
	var addressID uuid.NullUUID

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, address_id, total, status, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(
		&o.ID, &o.UserID, &addressID, &o.Total, &o.Status, &o.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if addressID.Valid {
		o.AddressID = &addressID.UUID

		var a address.Address
		err := r.db.QueryRowContext(ctx, `
			SELECT id, user_id,
			       street, number, complement, neighborhood,
			       city, state, postal_code, is_default
			FROM addresses
			WHERE id = $1
		`, addressID.UUID).Scan(
			&a.ID, &a.UserID,
			&a.Street, &a.Number, &a.Complement, &a.Neighborhood,
			&a.City, &a.State, &a.PostalCode, &a.IsDefault,
		)
		if err == nil {
			o.Address = &a
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get order address: %w", err)
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.price, oi.quantity
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, o.ID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.Name, &item.Price, &item.Quantity,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
