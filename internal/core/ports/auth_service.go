package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
