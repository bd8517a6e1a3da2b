package mongo

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// EnsureAdminUser creates an admin account from configuration when no account
// with that email exists yet. It is the supported path for provisioning
// administrators, so regular operation never depends on registration-time
// role elevation.
func EnsureAdminUser(ctx context.Context, repo *AuthRepository, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
