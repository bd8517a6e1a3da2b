package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const movementsCollection = "stock_movements"

// MovementRepository implements ports.MovementRepository using MongoDB.
type MovementRepository struct {
	col *mongo.Collection
}

func NewMovementRepository(db *mongo.Database) ports.MovementRepository {
	return &MovementRepository{col: db.Collection(movementsCollection)}
}

// Insert persists a stock movement to the audit collection.
func (r *MovementRepository) Insert(ctx context.Context, m *domain.StockMovement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"sweet_id":       m.SweetID,
		"kind":           string(m.Kind),
		"delta":          m.Delta,
		"quantity_after": m.QuantityAfter,
		"actor":          m.Actor,
		"at":             m.At.UTC(),
		"recorded_at":    time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
