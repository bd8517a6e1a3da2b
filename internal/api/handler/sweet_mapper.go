package handler

import (
	"strconv"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSweetRequest) ports.CreateSweetInput {
	return ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
}

func toUpdateInput(req updateSweetRequest) ports.UpdateSweetInput {
	return ports.UpdateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
}

// toSearchFilter parses the query parameters of GET /sweets/search. Bounds
// that fail to parse are reported as validation errors, not ignored.
func toSearchFilter(name, category, minPrice, maxPrice string) (ports.SearchFilter, error) {
	f := ports.SearchFilter{Name: name, Category: category}
	if minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return f, domain.NewValidationError("minPrice must be a number")
		}
		f.MinPrice = v
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return f, domain.NewValidationError("maxPrice must be a number")
		}
		f.MaxPrice = &v
	}
	return f, nil
}

// --- Service result → HTTP response ---

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toSweetListResponse(sweets []*domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, len(sweets))
	for i, s := range sweets {
		out[i] = toSweetResponse(s)
	}
	return out
}
