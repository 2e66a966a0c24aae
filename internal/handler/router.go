package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	custommiddleware "github.com/mmeshcher/eshop-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware интернет-магазина.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)

			r.Get("/{email}", h.GetUserByEmail)
			r.Put("/{id}", h.UpdateProfile)

			r.With(h.authMiddleware.RequireAdmin).Put("/{id}/enabled", h.SetUserEnabled)
		})
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.GetProducts)
		r.Get("/search", h.SearchProducts)
		r.Get("/price-range", h.GetProductsByPriceRange)
		r.Get("/category/{category}", h.GetProductsByCategory)
		r.Get("/{id}", h.GetProductByID)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware, h.authMiddleware.RequireAdmin)

			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(h.authMiddleware.Middleware)

		r.Post("/user/{userId}", h.CreateOrder)
		r.Get("/user/{userId}", h.GetOrdersByUser)
		r.Get("/{id}", h.GetOrderByID)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.RequireAdmin)

			r.Get("/", h.GetAllOrders)
			r.Get("/status/{status}", h.GetOrdersByStatus)
			r.Put("/{id}/status", h.UpdateOrderStatus)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.authMiddleware.Middleware, h.authMiddleware.RequireAdmin)

		r.Get("/dashboard", h.GetDashboard)
		r.Get("/sales-report", h.GetSalesReport)
		r.Get("/users", h.GetAllUsers)
		r.Get("/low-stock", h.GetLowStockProducts)
		r.Get("/recent-orders", h.GetRecentOrders)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
