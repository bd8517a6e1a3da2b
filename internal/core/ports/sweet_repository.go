package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// SearchFilter carries the catalog search options. Unset options impose no
// constraint; all set options compose conjunctively. MaxPrice is a pointer
// because 0 is a valid upper bound: a catalog price may be 0, so set-ness
// cannot ride on the zero value.
type SearchFilter struct {
	Name     string   // case-insensitive substring match on name
	Category string   // exact match
	MinPrice float64  // inclusive lower bound, default 0
	MaxPrice *float64 // inclusive upper bound, nil means unbounded
}

// SweetPatch carries a partial update. Nil fields are left untouched.
type SweetPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SweetRepository defines persistence operations for the catalog.
//
// DecrementQuantity and IncrementQuantity are the stock-adjustment
// primitives: each implementation must serialize the read-modify-write cycle
// per record so that concurrent purchases never drive a quantity below zero.
// Update must apply its merge atomically per record for the same reason.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) error
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	FindAll(ctx context.Context) ([]*domain.Sweet, error)
	// Update merges the provided fields into the stored record and returns
	// the updated record. Fails with domain.ErrSweetNotFound when id is absent.
	Update(ctx context.Context, id string, patch SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// Search returns the records matching filter in insertion order. An empty
	// result is not an error.
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	// DecrementQuantity removes exactly one unit of stock. Fails with
	// domain.ErrOutOfStock when the quantity is zero (no mutation) and with
	// domain.ErrSweetNotFound when id is absent.
	DecrementQuantity(ctx context.Context, id string) (*domain.Sweet, error)
	// IncrementQuantity adds amount units of stock. The amount has already
	// been validated positive by the service layer.
	IncrementQuantity(ctx context.Context, id string, amount int64) (*domain.Sweet, error)
}
