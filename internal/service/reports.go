package service

import (
	"context"
	"time"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

// DashboardStats содержит сводные показатели для административной панели.
type DashboardStats struct {
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
	TotalProducts  int64
	TotalUsers     int64
	OrdersByStatus map[model.OrderStatus]int64
}

// SalesReport содержит отчёт о продажах за период.
type SalesReport struct {
	TotalSales        decimal.Decimal
	NumberOfOrders    int64
	AverageOrderValue decimal.Decimal
	SalesByCategory   map[string]decimal.Decimal
}

// GetDashboardStats собирает сводные показатели магазина.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalOrders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	// Статусы без заказов присутствуют в отчёте с нулём.
	ordersByStatus := make(map[model.OrderStatus]int64, len(model.OrderStatuses))
	for _, st := range model.OrderStatuses {
		ordersByStatus[st] = counts[st]
	}

	return &DashboardStats{
		TotalOrders:    totalOrders,
		TotalRevenue:   totalRevenue,
		TotalProducts:  totalProducts,
		TotalUsers:     totalUsers,
		OrdersByStatus: ordersByStatus,
	}, nil
}

// GetSalesReport строит отчёт о продажах за период.
func (s *Service) GetSalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error) {
	totalSales, numberOfOrders, err := s.repo.SalesTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}

	average := decimal.Zero
	if numberOfOrders > 0 {
		average = totalSales.DivRound(decimal.NewFromInt(numberOfOrders), 2)
	}

	salesByCategory, err := s.repo.SalesByCategory(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		TotalSales:        totalSales,
		NumberOfOrders:    numberOfOrders,
		AverageOrderValue: average,
		SalesByCategory:   salesByCategory,
	}, nil
}

// GetLowStockProducts возвращает товары с остатком ниже порога.
func (s *Service) GetLowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	return s.repo.GetLowStockProducts(ctx, threshold)
}

// GetRecentOrders возвращает последние заказы, от новых к старым.
func (s *Service) GetRecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return s.repo.GetRecentOrders(ctx, limit)
}
