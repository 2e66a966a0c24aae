package service

import (
	"context"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

// CreateProduct создаёт новый активный товар каталога.
func (s *Service) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return s.repo.CreateProduct(ctx, p)
}

// UpdateProduct перезаписывает изменяемые поля товара.
func (s *Service) UpdateProduct(ctx context.Context, id int64, p *model.Product) (*model.Product, error) {
	return s.repo.UpdateProduct(ctx, id, p)
}

// DeleteProduct выполняет мягкое удаление товара: сбрасывает флаг активности.
// Исторические заказы ссылки на товар сохраняют.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.SetProductActive(ctx, id, false)
}

// SetProductActive переключает флаг активности товара.
func (s *Service) SetProductActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetProductActive(ctx, id, active)
}

// GetProductByID возвращает товар по идентификатору.
func (s *Service) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

// GetActiveProducts возвращает все активные товары каталога.
func (s *Service) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.GetActiveProducts(ctx)
}

// SearchProducts ищет товары по подстроке имени без учёта регистра.
// Отсутствие совпадений — пустой список, а не ошибка.
func (s *Service) SearchProducts(ctx context.Context, name string) ([]model.Product, error) {
	return s.repo.SearchProductsByName(ctx, name)
}

// GetProductsByCategory возвращает товары с точным совпадением категории.
func (s *Service) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.repo.GetProductsByCategory(ctx, category)
}

// GetProductsByPriceRange возвращает товары с ценой в заданном диапазоне.
func (s *Service) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Product, error) {
	return s.repo.GetProductsByPriceRange(ctx, minPrice, maxPrice)
}
