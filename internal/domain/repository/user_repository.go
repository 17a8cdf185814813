package repository

import (
	"context"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByResetToken finds the user holding the given non-expired
	// password-reset token.
	GetByResetToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
}
