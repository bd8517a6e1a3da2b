package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User // keyed by lowercase email
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	key := strings.ToLower(user.Email)
	if _, exists := r.users[key]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = key
	}
	r.users[key] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultsToCustomer(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, user, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "", "a@example.com", "pass", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass", "superuser"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "pass", "")
	if _, _, err := svc.Register(context.Background(), "Bobby", "BOB@example.com", "pass2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass", "")

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), "Eve", "Eve@Example.com", "pass", "")
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass"); err != nil {
		t.Fatalf("expected case-insensitive email match, got %v", err)
	}
}
