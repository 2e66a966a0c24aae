package service

import (
	"context"
	"testing"
	"time"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/shopspring/decimal"
)

func TestGetDashboardStats_FillsAllStatuses(t *testing.T) {
	repo := &stubRepo{
		countOrders:   3,
		countProducts: 10,
		countUsers:    5,
		revenue:       decimal.NewFromInt(100),
		statusCounts: map[model.OrderStatus]int64{
			model.OrderStatusPending: 2,
			model.OrderStatusShipped: 1,
		},
	}
	svc := NewService(repo)

	stats, err := svc.GetDashboardStats(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardStats error: %v", err)
	}

	if len(stats.OrdersByStatus) != len(model.OrderStatuses) {
		t.Fatalf("statuses in report = %d, want %d", len(stats.OrdersByStatus), len(model.OrderStatuses))
	}
	if stats.OrdersByStatus[model.OrderStatusPending] != 2 {
		t.Fatalf("PENDING = %d, want 2", stats.OrdersByStatus[model.OrderStatusPending])
	}
	if stats.OrdersByStatus[model.OrderStatusCancelled] != 0 {
		t.Fatalf("CANCELLED = %d, want 0", stats.OrdersByStatus[model.OrderStatusCancelled])
	}
	if stats.TotalOrders != 3 || stats.TotalProducts != 10 || stats.TotalUsers != 5 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
}

func TestGetSalesReport_AverageRounding(t *testing.T) {
	repo := &stubRepo{
		salesTotal: mustDecimal(t, "100.00"),
		salesCount: 3,
		salesByCat: map[string]decimal.Decimal{
			"books": mustDecimal(t, "100.00"),
		},
	}
	svc := NewService(repo)

	report, err := svc.GetSalesReport(context.Background(), time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("GetSalesReport error: %v", err)
	}

	if !report.AverageOrderValue.Equal(mustDecimal(t, "33.33")) {
		t.Fatalf("average = %s, want 33.33", report.AverageOrderValue)
	}
	if !report.SalesByCategory["books"].Equal(mustDecimal(t, "100.00")) {
		t.Fatalf("books = %s, want 100.00", report.SalesByCategory["books"])
	}
}

func TestGetSalesReport_EmptyPeriod(t *testing.T) {
	repo := &stubRepo{
		salesTotal: decimal.Zero,
		salesCount: 0,
	}
	svc := NewService(repo)

	report, err := svc.GetSalesReport(context.Background(), time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("GetSalesReport error: %v", err)
	}

	if !report.AverageOrderValue.IsZero() {
		t.Fatalf("average for empty period = %s, want 0", report.AverageOrderValue)
	}
	if report.NumberOfOrders != 0 {
		t.Fatalf("orders = %d, want 0", report.NumberOfOrders)
	}
}
