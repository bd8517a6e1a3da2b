package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a catalog record.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
}

// UpdateSweetInput carries a partial update; nil fields are not touched.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SweetService defines the catalog and inventory use cases. Actor is the
// subject id of the authenticated caller and is recorded on stock movements.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	Get(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id, actor string) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, amount int64, actor string) (*domain.Sweet, error)
}
