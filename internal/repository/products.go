package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, description, price, stock_quantity, category, image_url, active, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.Category, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

// CreateProduct создаёт новый активный товар каталога.
func (r *PostgresRepository) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, stock_quantity, category, image_url, active)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		 RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.StockQuantity, p.Category, p.ImageURL,
	)

	created, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// UpdateProduct перезаписывает изменяемые поля товара.
func (r *PostgresRepository) UpdateProduct(ctx context.Context, id int64, p *model.Product) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, stock_quantity = $5, category = $6, image_url = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+productColumns,
		id, p.Name, p.Description, p.Price, p.StockQuantity, p.Category, p.ImageURL,
	)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// SetProductActive переключает флаг активности товара. Исторические заказы не затрагиваются.
func (r *PostgresRepository) SetProductActive(ctx context.Context, id int64, active bool) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE products SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GetProductByID возвращает товар по идентификатору.
func (r *PostgresRepository) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetActiveProducts возвращает все активные товары каталога.
func (r *PostgresRepository) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE active = TRUE ORDER BY id`,
	)
}

// SearchProductsByName ищет товары по подстроке имени без учёта регистра.
func (r *PostgresRepository) SearchProductsByName(ctx context.Context, name string) ([]model.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY id`,
		name,
	)
}

// GetProductsByCategory возвращает товары с точным совпадением категории.
func (r *PostgresRepository) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`,
		category,
	)
}

// GetProductsByPriceRange возвращает товары с ценой в заданном диапазоне включительно.
func (r *PostgresRepository) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE price >= $1 AND price <= $2 ORDER BY price`,
		minPrice, maxPrice,
	)
}

// GetLowStockProducts возвращает товары с остатком ниже порога.
func (r *PostgresRepository) GetLowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE stock_quantity < $1 ORDER BY stock_quantity`,
		threshold,
	)
}

// CountProducts возвращает общее число товаров.
func (r *PostgresRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
