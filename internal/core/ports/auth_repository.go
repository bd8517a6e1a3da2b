package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// AuthRepository defines the interface for account persistence. Email lookup
// is case-insensitive; Create fails with domain.ErrUserExists when the email
// is already registered.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
