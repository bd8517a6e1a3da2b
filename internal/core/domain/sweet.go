package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrOutOfStock = errors.New("out of stock")
var ErrForbidden = errors.New("access forbidden")

// ValidationError marks input that violates a catalog invariant. It wraps a
// shared sentinel so the transport layer can map the whole family to 400
// while keeping the specific message.
type ValidationError struct {
	msg string
}

var ErrValidation = errors.New("validation failed")

func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsValidation reports whether err belongs to the validation error family.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// Sweet is the catalog record. Quantity is the authoritative stock count and
// is never observable negative.
type Sweet struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category" bson:"category"`
	Price     float64   `json:"price" bson:"price"`
	Quantity  int64     `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Validate checks the catalog invariants on a fully populated record.
func (s *Sweet) Validate() error {
	if s.Name == "" {
		return NewValidationError("Name is required")
	}
	if s.Category == "" {
		return NewValidationError("Category is required")
	}
	if s.Price < 0 {
		return NewValidationError("Price must not be negative")
	}
	if s.Quantity < 0 {
		return NewValidationError("Quantity must not be negative")
	}
	return nil
}
