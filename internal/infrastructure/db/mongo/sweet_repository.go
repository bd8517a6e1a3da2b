package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const sweetsCollection = "sweets"

type SweetRepository struct {
	col *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{col: db.Collection(sweetsCollection)}
}

// Create inserts a new catalog document.
func (r *SweetRepository) Create(ctx context.Context, s *domain.Sweet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Sweet
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll returns the whole catalog in insertion order.
func (r *SweetRepository) FindAll(ctx context.Context) ([]*domain.Sweet, error) {
	return r.find(ctx, bson.M{})
}

// Update applies the patch as a single $set, so the merge is atomic per
// record. The provided fields were validated by the service layer.
func (r *SweetRepository) Update(ctx context.Context, id string, patch ports.SweetPatch) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}

	after := options.After
	var s domain.Sweet
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// Search builds a conjunctive bson filter from the normalized options.
func (r *SweetRepository) Search(ctx context.Context, f ports.SearchFilter) ([]*domain.Sweet, error) {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	price := bson.M{}
	if f.MinPrice > 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return r.find(ctx, filter)
}

// DecrementQuantity is the guarded single-unit decrement. The quantity guard
// lives in the update filter, so check and decrement are one atomic document
// operation and the count can never go negative.
func (r *SweetRepository) DecrementQuantity(ctx context.Context, id string) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.After
	var s domain.Sweet
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "quantity": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"quantity": -1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&s)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// No match: either the record is absent or its stock is exhausted.
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, domain.ErrOutOfStock
}

// IncrementQuantity adds stock; the amount was validated positive upstream.
func (r *SweetRepository) IncrementQuantity(ctx context.Context, id string, amount int64) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.After
	var s domain.Sweet
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"quantity": amount},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return &s, nil
}

// EnsureIndexes creates the indexes backing the search filter.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SweetRepository) find(ctx context.Context, filter bson.M) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// created_at sort keeps results order-stable by insertion.
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sweets := make([]*domain.Sweet, 0)
	for cur.Next(ctx) {
		var s domain.Sweet
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sweets = append(sweets, &s)
	}
	return sweets, cur.Err()
}
