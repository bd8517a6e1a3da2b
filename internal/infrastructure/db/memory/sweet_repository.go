// Package memory provides an in-memory SweetRepository. It backs tests and
// local development without a MongoDB instance while honouring the same
// per-record serialization contract as the Mongo implementation.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

type SweetRepository struct {
	mu     sync.RWMutex
	sweets map[string]*domain.Sweet
	order  []string
}

func NewSweetRepository() *SweetRepository {
	return &SweetRepository{sweets: make(map[string]*domain.Sweet)}
}

func clone(s *domain.Sweet) *domain.Sweet {
	c := *s
	return &c
}

func (r *SweetRepository) Create(_ context.Context, s *domain.Sweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweets[s.ID] = clone(s)
	r.order = append(r.order, s.ID)
	return nil
}

func (r *SweetRepository) FindByID(_ context.Context, id string) (*domain.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	return clone(s), nil
}

func (r *SweetRepository) FindAll(_ context.Context) ([]*domain.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Sweet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.sweets[id]))
	}
	return out, nil
}

func (r *SweetRepository) Update(_ context.Context, id string, patch ports.SweetPatch) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	if patch.Price != nil {
		s.Price = *patch.Price
	}
	if patch.Quantity != nil {
		s.Quantity = *patch.Quantity
	}
	s.UpdatedAt = time.Now().UTC()
	return clone(s), nil
}

func (r *SweetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sweets[id]; !ok {
		return domain.ErrSweetNotFound
	}
	delete(r.sweets, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SweetRepository) Search(_ context.Context, f ports.SearchFilter) ([]*domain.Sweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Sweet, 0)
	for _, id := range r.order {
		s := r.sweets[id]
		if f.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if s.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && s.Price > *f.MaxPrice {
			continue
		}
		out = append(out, clone(s))
	}
	return out, nil
}

// DecrementQuantity performs the guarded decrement under the write lock, so
// the check and the mutation are a single critical section.
func (r *SweetRepository) DecrementQuantity(_ context.Context, id string) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if s.Quantity == 0 {
		return nil, domain.ErrOutOfStock
	}
	s.Quantity--
	s.UpdatedAt = time.Now().UTC()
	return clone(s), nil
}

func (r *SweetRepository) IncrementQuantity(_ context.Context, id string, amount int64) (*domain.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	s.Quantity += amount
	s.UpdatedAt = time.Now().UTC()
	return clone(s), nil
}
