package service

import (
	"context"
	"fmt"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

// OrderLine описывает одну запрошенную позицию заказа. Цена — снимок
// на момент оформления, дальнейшие изменения цены товара её не затрагивают.
type OrderLine struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrder оформляет заказ пользователя: проверяет позиции, считает
// промежуточные и итоговую суммы точной десятичной арифметикой и передаёт
// заказ репозиторию, который атомарно списывает остатки. Заказ либо
// сохраняется целиком, либо не оставляет никаких следов.
func (s *Service) CreateOrder(ctx context.Context, userID int64, shippingAddress, paymentMethod string, lines []OrderLine) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]model.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidOrderLine, line.Quantity)
		}
		if line.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidOrderLine, line.Price)
		}

		subtotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	order := &model.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		OrderDate:       s.now(),
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   "PENDING",
	}

	return s.repo.CreateOrder(ctx, order)
}

// GetOrderByID возвращает заказ с позициями по идентификатору.
func (s *Service) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

// UpdateOrderStatus перезаписывает статус заказа. Остатки и итог заказа
// при этом не меняются.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return s.repo.UpdateOrderStatus(ctx, id, status)
}

// GetOrdersByUser возвращает заказы пользователя.
func (s *Service) GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

// GetOrdersByStatus возвращает заказы в указанном статусе.
func (s *Service) GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.repo.GetOrdersByStatus(ctx, status)
}

// GetAllOrders возвращает все заказы системы.
func (s *Service) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.GetAllOrders(ctx)
}
