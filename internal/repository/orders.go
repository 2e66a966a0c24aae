package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mmeshcher/eshop-system/internal/model"
)

const orderColumns = `id, user_id, total_amount, status, order_date, shipping_address, payment_method, payment_status`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var status string
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &status, &o.OrderDate,
		&o.ShippingAddress, &o.PaymentMethod, &o.PaymentStatus)
	if err != nil {
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}

// CreateOrder атомарно оформляет заказ: списывает остатки по каждой позиции
// условным UPDATE, вставляет заказ и его позиции в одной транзакции.
// Любая ошибка откатывает все списания.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	var created *model.Order

	err := r.withRetry(ctx, func() error {
		var txErr error
		created, txErr = r.createOrderTx(ctx, order)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *PostgresRepository) createOrderTx(ctx context.Context, order *model.Order) (*model.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var userExists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, order.UserID).Scan(&userExists); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !userExists {
		return nil, ErrUserNotFound
	}

	// Проверка остатка и списание выполняются одним условным UPDATE,
	// поэтому два конкурентных заказа не могут продать один и тот же товар дважды.
	for _, item := range order.Items {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE products SET stock_quantity = stock_quantity - $2, updated_at = now()
			 WHERE id = $1 AND stock_quantity >= $2`,
			item.ProductID, item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
		if cmdTag.RowsAffected() == 1 {
			continue
		}

		var name string
		err = tx.QueryRow(ctx, `SELECT name FROM products WHERE id = $1`, item.ProductID).Scan(&name)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("select product: %w", err)
		}
		return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, name)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_amount, status, order_date, shipping_address, payment_method, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+orderColumns,
		order.UserID, order.TotalAmount, string(order.Status), order.OrderDate,
		order.ShippingAddress, order.PaymentMethod, order.PaymentStatus,
	)

	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created.Items = make([]model.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		var itemID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price, subtotal)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			created.ID, item.ProductID, item.Quantity, item.Price, item.Subtotal,
		).Scan(&itemID)
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}

		item.ID = itemID
		item.OrderID = created.ID
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return created, nil
}

// GetOrderByID возвращает заказ с позициями по идентификатору.
func (r *PostgresRepository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	orders := []model.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// UpdateOrderStatus безусловно перезаписывает статус заказа и возвращает обновлённый заказ.
// Граф допустимых переходов намеренно не проверяется.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1 RETURNING `+orderColumns,
		id, string(status),
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}

	orders := []model.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// GetOrdersByUser возвращает заказы пользователя с позициями.
func (r *PostgresRepository) GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id`,
		userID,
	)
}

// GetOrdersByStatus возвращает заказы в указанном статусе.
func (r *PostgresRepository) GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY id`,
		string(status),
	)
}

// GetAllOrders возвращает все заказы системы.
func (r *PostgresRepository) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY id`,
	)
}

// GetRecentOrders возвращает последние заказы в обратном хронологическом порядке.
func (r *PostgresRepository) GetRecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC LIMIT $1`,
		limit,
	)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems загружает позиции для набора заказов одним запросом.
func (r *PostgresRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	index := make(map[int64]*model.Order, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		index[orders[i].ID] = &orders[i]
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, product_id, quantity, price, subtotal
		 FROM order_items
		 WHERE order_id = ANY($1)
		 ORDER BY id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.Subtotal); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := index[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}

	return nil
}
