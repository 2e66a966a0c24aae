package handler

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/shopspring/decimal"
)

type dashboardResponse struct {
	TotalOrders    int64            `json:"totalOrders"`
	TotalRevenue   decimal.Decimal  `json:"totalRevenue"`
	TotalProducts  int64            `json:"totalProducts"`
	TotalUsers     int64            `json:"totalUsers"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
}

// GetDashboard возвращает сводные показатели магазина.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboardStats(r.Context())
	if err != nil {
		h.logger.Error("dashboard error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ordersByStatus := make(map[string]int64, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		ordersByStatus[string(status)] = count
	}

	h.writeJSON(w, dashboardResponse{
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		TotalProducts:  stats.TotalProducts,
		TotalUsers:     stats.TotalUsers,
		OrdersByStatus: ordersByStatus,
	})
}

type salesReportResponse struct {
	TotalSales        decimal.Decimal            `json:"totalSales"`
	NumberOfOrders    int64                      `json:"numberOfOrders"`
	AverageOrderValue decimal.Decimal            `json:"averageOrderValue"`
	SalesByCategory   map[string]decimal.Decimal `json:"salesByCategory"`
}

// GetSalesReport возвращает отчёт о продажах за период startDate..endDate (RFC3339).
func (h *Handler) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("startDate"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("endDate"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	report, err := h.service.GetSalesReport(r.Context(), start, end)
	if err != nil {
		h.logger.Error("sales report error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, salesReportResponse{
		TotalSales:        report.TotalSales,
		NumberOfOrders:    report.NumberOfOrders,
		AverageOrderValue: report.AverageOrderValue,
		SalesByCategory:   report.SalesByCategory,
	})
}

// GetAllUsers возвращает всех пользователей системы.
func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		h.logger.Error("get users error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}

	h.writeJSON(w, resp)
}

// GetLowStockProducts возвращает товары с остатком ниже порога (по умолчанию 10).
func (h *Handler) GetLowStockProducts(w http.ResponseWriter, r *http.Request) {
	threshold := 10
	if v := r.URL.Query().Get("threshold"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	products, err := h.service.GetLowStockProducts(r.Context(), threshold)
	if err != nil {
		h.logger.Error("low stock error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toProductResponses(products))
}

// GetRecentOrders возвращает последние заказы (по умолчанию 10).
func (h *Handler) GetRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	orders, err := h.service.GetRecentOrders(r.Context(), limit)
	if err != nil {
		h.logger.Error("recent orders error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toOrderResponses(orders))
}
