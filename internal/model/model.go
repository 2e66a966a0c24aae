// Package model содержит доменные сущности интернет-магазина.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole описывает роль пользователя в системе.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// IsValidUserRole проверяет, что строка является допустимой ролью.
func IsValidUserRole(s string) bool {
	switch UserRole(s) {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя магазина.
// Email используется как логин и неизменяем после регистрации.
type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	Role         UserRole
	Enabled      bool
	CreatedAt    time.Time
}

// Product описывает товар каталога. Удаление товара мягкое:
// вместо удаления строки сбрасывается флаг Active.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Category      string
	ImageURL      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses перечисляет все допустимые статусы заказа.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus проверяет, что строка является допустимым статусом заказа.
func IsValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if OrderStatus(s) == st {
			return true
		}
	}
	return false
}

// Order описывает заказ пользователя вместе с его позициями.
// TotalAmount равен сумме Subtotal всех позиций на момент создания
// и после создания не пересчитывается.
type Order struct {
	ID              int64
	UserID          int64
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	OrderDate       time.Time
	ShippingAddress string
	PaymentMethod   string
	PaymentStatus   string
}

// OrderItem описывает одну позицию заказа. Цена фиксируется на момент
// оформления и не зависит от последующих изменений цены товара.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}
