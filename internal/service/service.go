// Package service реализует бизнес-логику интернет-магазина.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

// ErrInvalidCredentials возвращается при неверном пароле.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled возвращается при попытке входа в отключённую учётную запись.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrInvalidOrderLine возвращается для позиции заказа с некорректным количеством или ценой.
	ErrInvalidOrderLine = errors.New("invalid order line")
	// ErrEmptyOrder возвращается для заказа без позиций.
	ErrEmptyOrder = errors.New("order has no items")
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error

	CreateUser(ctx context.Context, email string, passwordHash []byte, firstName, lastName string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id int64, firstName, lastName string, passwordHash []byte) (*model.User, error)
	SetUserEnabled(ctx context.Context, id int64, enabled bool) error
	GetAllUsers(ctx context.Context) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)

	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, p *model.Product) (*model.Product, error)
	SetProductActive(ctx context.Context, id int64, active bool) error
	GetProductByID(ctx context.Context, id int64) (*model.Product, error)
	GetActiveProducts(ctx context.Context) ([]model.Product, error)
	SearchProductsByName(ctx context.Context, name string) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Product, error)
	GetLowStockProducts(ctx context.Context, threshold int) ([]model.Product, error)
	CountProducts(ctx context.Context) (int64, error)

	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetRecentOrders(ctx context.Context, limit int) ([]model.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	CountOrdersByStatus(ctx context.Context) (map[model.OrderStatus]int64, error)
	SalesTotals(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error)
	SalesByCategory(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error)
}

// Service содержит бизнес-логику интернет-магазина.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService создаёт новый сервис с указанным репозиторием.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}
