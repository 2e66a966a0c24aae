package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/eshop-system/internal/model"
	"github.com/mmeshcher/eshop-system/internal/repository"
	"github.com/shopspring/decimal"
)

type stubRepo struct {
	createUserResp *model.User
	createUserErr  error
	createUserHash []byte

	getUser    *model.User
	getUserErr error

	updateProfileResp *model.User
	updateProfileHash []byte

	users []model.User

	product     *model.Product
	productErr  error
	products    []model.Product
	productsErr error

	createdOrder   *model.Order
	createOrderErr error
	order          *model.Order
	orderErr       error
	orders         []model.Order

	countOrders    int64
	countProducts  int64
	countUsers     int64
	revenue        decimal.Decimal
	statusCounts   map[model.OrderStatus]int64
	salesTotal     decimal.Decimal
	salesCount     int64
	salesByCat     map[string]decimal.Decimal
	salesTotalsErr error
}

func (s *stubRepo) Close() error { return nil }

func (s *stubRepo) CreateUser(ctx context.Context, email string, passwordHash []byte, firstName, lastName string) (*model.User, error) {
	s.createUserHash = passwordHash
	return s.createUserResp, s.createUserErr
}

func (s *stubRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser, s.getUserErr
}

func (s *stubRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.getUser, s.getUserErr
}

func (s *stubRepo) UpdateUserProfile(ctx context.Context, id int64, firstName, lastName string, passwordHash []byte) (*model.User, error) {
	s.updateProfileHash = passwordHash
	return s.updateProfileResp, nil
}

func (s *stubRepo) SetUserEnabled(ctx context.Context, id int64, enabled bool) error { return nil }

func (s *stubRepo) GetAllUsers(ctx context.Context) ([]model.User, error) { return s.users, nil }

func (s *stubRepo) CountUsers(ctx context.Context) (int64, error) { return s.countUsers, nil }

func (s *stubRepo) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return s.product, s.productErr
}

func (s *stubRepo) UpdateProduct(ctx context.Context, id int64, p *model.Product) (*model.Product, error) {
	return s.product, s.productErr
}

func (s *stubRepo) SetProductActive(ctx context.Context, id int64, active bool) error {
	return s.productErr
}

func (s *stubRepo) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.product, s.productErr
}

func (s *stubRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	return s.products, s.productsErr
}

func (s *stubRepo) SearchProductsByName(ctx context.Context, name string) ([]model.Product, error) {
	return s.products, s.productsErr
}

func (s *stubRepo) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.products, s.productsErr
}

func (s *stubRepo) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Product, error) {
	return s.products, s.productsErr
}

func (s *stubRepo) GetLowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	return s.products, s.productsErr
}

func (s *stubRepo) CountProducts(ctx context.Context) (int64, error) { return s.countProducts, nil }

func (s *stubRepo) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.createdOrder = order
	if s.createOrderErr != nil {
		return nil, s.createOrderErr
	}
	return order, nil
}

func (s *stubRepo) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return s.order, s.orderErr
}

func (s *stubRepo) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return s.order, s.orderErr
}

func (s *stubRepo) GetOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.orders, nil
}

func (s *stubRepo) GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.orders, nil
}

func (s *stubRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) { return s.orders, nil }

func (s *stubRepo) GetRecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return s.orders, nil
}

func (s *stubRepo) CountOrders(ctx context.Context) (int64, error) { return s.countOrders, nil }

func (s *stubRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.revenue, nil
}

func (s *stubRepo) CountOrdersByStatus(ctx context.Context) (map[model.OrderStatus]int64, error) {
	return s.statusCounts, nil
}

func (s *stubRepo) SalesTotals(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	return s.salesTotal, s.salesCount, s.salesTotalsErr
}

func (s *stubRepo) SalesByCategory(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error) {
	return s.salesByCat, nil
}

func TestRegisterUser_StoresBcryptHash(t *testing.T) {
	repo := &stubRepo{
		createUserResp: &model.User{ID: 1, Email: "user@example.com", Role: model.RoleCustomer, Enabled: true},
	}
	svc := NewService(repo)

	_, err := svc.RegisterUser(context.Background(), "user@example.com", "secret", "Ivan", "Petrov")
	if err != nil {
		t.Fatalf("RegisterUser error: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword(repo.createUserHash, []byte("secret")); err != nil {
		t.Fatalf("stored hash does not verify the password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(repo.createUserHash, []byte("wrong")); err == nil {
		t.Fatalf("stored hash verifies a wrong password")
	}
}

func TestRegisterUser_PropagatesDuplicateError(t *testing.T) {
	repo := &stubRepo{
		createUserErr: repository.ErrUserExists,
	}
	svc := NewService(repo)

	_, err := svc.RegisterUser(context.Background(), "user@example.com", "secret", "Ivan", "Petrov")
	if !errors.Is(err, repository.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}

	tests := []struct {
		name     string
		user     *model.User
		userErr  error
		password string
		wantErr  error
	}{
		{
			name:     "success",
			user:     &model.User{ID: 1, Email: "user@example.com", PasswordHash: hash, Enabled: true},
			password: "correct",
		},
		{
			name:     "wrong password",
			user:     &model.User{ID: 1, Email: "user@example.com", PasswordHash: hash, Enabled: true},
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "disabled account",
			user:     &model.User{ID: 1, Email: "user@example.com", PasswordHash: hash, Enabled: false},
			password: "correct",
			wantErr:  ErrAccountDisabled,
		},
		{
			name:     "unknown user",
			userErr:  repository.ErrUserNotFound,
			password: "correct",
			wantErr:  repository.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{getUser: tt.user, getUserErr: tt.userErr}
			svc := NewService(repo)

			u, err := svc.AuthenticateUser(context.Background(), "user@example.com", tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AuthenticateUser error: %v", err)
			}
			if u.ID != tt.user.ID {
				t.Fatalf("user id = %d, want %d", u.ID, tt.user.ID)
			}
		})
	}
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	repo := &stubRepo{
		updateProfileResp: &model.User{ID: 7, FirstName: "Anna"},
	}
	svc := NewService(repo)

	_, err := svc.UpdateProfile(context.Background(), 7, "Anna", "Sidorova", "newpass")
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword(repo.updateProfileHash, []byte("newpass")); err != nil {
		t.Fatalf("updated hash does not verify the new password: %v", err)
	}
}
