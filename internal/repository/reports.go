package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

// CountOrders возвращает общее число заказов.
func (r *PostgresRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// TotalRevenue возвращает сумму итогов всех заказов.
func (r *PostgresRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return total, nil
}

// CountOrdersByStatus возвращает число заказов по каждому встречающемуся статусу.
func (r *PostgresRepository) CountOrdersByStatus(ctx context.Context) (map[model.OrderStatus]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM orders GROUP BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.OrderStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[model.OrderStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return counts, nil
}

// SalesTotals возвращает сумму продаж и число заказов за период включительно.
func (r *PostgresRepository) SalesTotals(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		 FROM orders
		 WHERE order_date BETWEEN $1 AND $2`,
		start, end,
	).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales totals: %w", err)
	}
	return total, count, nil
}

// SalesByCategory возвращает суммы позиций заказов за период, сгруппированные по категории товара.
func (r *PostgresRepository) SalesByCategory(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.category, SUM(i.subtotal)
		 FROM order_items i
		 JOIN orders o ON o.id = i.order_id
		 JOIN products p ON p.id = i.product_id
		 WHERE o.order_date BETWEEN $1 AND $2
		 GROUP BY p.category`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("sales by category: %w", err)
	}
	defer rows.Close()

	sales := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var sum decimal.Decimal
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		sales[category] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return sales, nil
}
