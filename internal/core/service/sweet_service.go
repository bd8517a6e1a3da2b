package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// MovementRecorder abstracts the asynchronous stock-movement audit trail.
// Recording is fire-and-forget: a failed or dropped record never fails the
// inventory operation that produced it.
type MovementRecorder interface {
	Record(m domain.StockMovement)
}

type SweetService struct {
	repo      ports.SweetRepository
	movements MovementRecorder // optional
	logger    zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, movements MovementRecorder, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, movements: movements, logger: logger}
}

// Create validates the catalog invariants, assigns a fresh id, and persists
// the new record.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	now := time.Now().UTC()
	sweet := &domain.Sweet{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := sweet.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sweet); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	s.logger.Info().Str("sweet_id", sweet.ID).Str("name", sweet.Name).Msg("sweet created")
	return sweet, nil
}

func (s *SweetService) Get(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.FindAll(ctx)
}

// Search applies the conjunctive catalog filter. An empty result is returned
// as an empty slice, not an error.
func (s *SweetService) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	if filter.MinPrice < 0 {
		return nil, domain.NewValidationError("minPrice must not be negative")
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return nil, domain.NewValidationError("maxPrice must not be negative")
	}
	return s.repo.Search(ctx, filter)
}

// Update merges the provided fields into the stored record. Each provided
// field is checked against the catalog invariants before the merge, so the
// post-merge record always satisfies them.
func (s *SweetService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, domain.NewValidationError("Name must not be empty")
	}
	if input.Category != nil && *input.Category == "" {
		return nil, domain.NewValidationError("Category must not be empty")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, domain.NewValidationError("Price must not be negative")
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domain.NewValidationError("Quantity must not be negative")
	}

	sweet, err := s.repo.Update(ctx, id, ports.SweetPatch{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Msg("sweet updated")
	return sweet, nil
}

// Delete removes the record permanently. There is no soft-delete.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

// Purchase removes exactly one unit of stock. The check-then-decrement is
// atomic inside the repository, so two concurrent purchases against a single
// remaining unit yield one success and one domain.ErrOutOfStock.
func (s *SweetService) Purchase(ctx context.Context, id, actor string) (*domain.Sweet, error) {
	sweet, err := s.repo.DecrementQuantity(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(domain.StockMovement{
		SweetID:       sweet.ID,
		Kind:          domain.MovementPurchase,
		Delta:         -1,
		QuantityAfter: sweet.Quantity,
		Actor:         actor,
		At:            time.Now().UTC(),
	})

	s.logger.Info().Str("sweet_id", id).Int64("quantity", sweet.Quantity).Msg("sweet purchased")
	return sweet, nil
}

// Restock adds amount units of stock. The amount is validated before the
// product lookup: a non-positive amount fails even for an unknown id.
func (s *SweetService) Restock(ctx context.Context, id string, amount int64, actor string) (*domain.Sweet, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("Restock amount must be positive")
	}

	sweet, err := s.repo.IncrementQuantity(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	s.record(domain.StockMovement{
		SweetID:       sweet.ID,
		Kind:          domain.MovementRestock,
		Delta:         amount,
		QuantityAfter: sweet.Quantity,
		Actor:         actor,
		At:            time.Now().UTC(),
	})

	s.logger.Info().Str("sweet_id", id).Int64("amount", amount).Int64("quantity", sweet.Quantity).Msg("sweet restocked")
	return sweet, nil
}

func (s *SweetService) record(m domain.StockMovement) {
	if s.movements == nil {
		return
	}
	s.movements.Record(m)
}
