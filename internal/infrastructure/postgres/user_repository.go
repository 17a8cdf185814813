package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password_hash, role, is_active, created_by, password_reset_token, password_reset_expires, created_at`

// UserRepo PostgreSQL implementation of the UserRepository port (usable
// with pool or tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new user. A duplicate email surfaces as a
// DuplicateKeyError naming the email field.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	createdBy := (*string)(nil)
	if user.CreatedBy != "" {
		createdBy = &user.CreatedBy
	}
	resetToken := (*string)(nil)
	if user.PasswordResetToken != "" {
		resetToken = &user.PasswordResetToken
	}
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.IsActive,
		createdBy, resetToken, user.PasswordResetExpires, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateKeyError{Field: violatedField(err, "email")}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id. (nil, nil) when no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get user by id")
}

// GetByEmail fetches a user by email. (nil, nil) when no row matches.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get user by email")
}

// GetByResetToken fetches the user holding a non-expired reset token.
func (r *UserRepo) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE password_reset_token = $1 AND password_reset_expires > now() LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, token), "get user by reset token")
}

// Update rewrites the mutable user fields.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, is_active = $6,
			password_reset_token = $7, password_reset_expires = $8
		WHERE id = $1`
	resetToken := (*string)(nil)
	if user.PasswordResetToken != "" {
		resetToken = &user.PasswordResetToken
	}
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.IsActive,
		resetToken, user.PasswordResetExpires,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateKeyError{Field: violatedField(err, "email")}
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByRole lists users of one role, newest first.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// CountByRole counts users of one role.
func (r *UserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, role).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var createdBy, resetToken *string
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive,
		&createdBy, &resetToken, &u.PasswordResetExpires, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		u.CreatedBy = *createdBy
	}
	if resetToken != nil {
		u.PasswordResetToken = *resetToken
	}
	return &u, nil
}
