package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mmeshcher/eshop-system/internal/model"
)

const userColumns = `id, email, password_hash, first_name, last_name, role, enabled, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &role, &u.Enabled, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = model.UserRole(role)
	return &u, nil
}

// CreateUser создаёт нового пользователя с ролью CUSTOMER и включённой учётной записью.
func (r *PostgresRepository) CreateUser(ctx context.Context, email string, passwordHash []byte, firstName, lastName string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name, role, enabled)
		 VALUES ($1, $2, $3, $4, $5, TRUE)
		 RETURNING `+userColumns,
		email, passwordHash, firstName, lastName, string(model.RoleCustomer),
	)

	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по email. Сравнение email точное.
func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetUserByID возвращает пользователя по идентификатору.
func (r *PostgresRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// UpdateUserProfile перезаписывает имя, фамилию и хеш пароля пользователя. Email неизменяем.
func (r *PostgresRepository) UpdateUserProfile(ctx context.Context, id int64, firstName, lastName string, passwordHash []byte) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, password_hash = $4
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, firstName, lastName, passwordHash,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return u, nil
}

// SetUserEnabled включает или отключает учётную запись пользователя. Операция идемпотентна.
func (r *PostgresRepository) SetUserEnabled(ctx context.Context, id int64, enabled bool) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE users SET enabled = $2 WHERE id = $1`,
		id, enabled,
	)
	if err != nil {
		return fmt.Errorf("set user enabled: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetAllUsers возвращает всех пользователей системы.
func (r *PostgresRepository) GetAllUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// CountUsers возвращает общее число пользователей.
func (r *PostgresRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
