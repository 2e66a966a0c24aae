package service

import (
	"context"
	"fmt"

	"github.com/mmeshcher/eshop-system/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя с ролью CUSTOMER.
// Пароль хранится в виде bcrypt-хеша.
func (s *Service) RegisterUser(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.CreateUser(ctx, email, hash, firstName, lastName)
}

// AuthenticateUser проверяет email и пароль пользователя и возвращает его.
func (s *Service) AuthenticateUser(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.Enabled {
		return nil, ErrAccountDisabled
	}

	return u, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

// GetUserByID возвращает пользователя по идентификатору.
func (s *Service) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// UpdateProfile перезаписывает имя, фамилию и пароль пользователя. Email неизменяем.
func (s *Service) UpdateProfile(ctx context.Context, id int64, firstName, lastName, newPassword string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdateUserProfile(ctx, id, firstName, lastName, hash)
}

// SetUserEnabled включает или отключает учётную запись пользователя.
func (s *Service) SetUserEnabled(ctx context.Context, id int64, enabled bool) error {
	return s.repo.SetUserEnabled(ctx, id, enabled)
}

// GetAllUsers возвращает всех пользователей системы.
func (s *Service) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.GetAllUsers(ctx)
}
