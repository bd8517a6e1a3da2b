package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// MovementRepository persists stock movement records to the audit collection.
type MovementRepository interface {
	Insert(ctx context.Context, m *domain.StockMovement) error
}
