package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central HTTP error handler).
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// --- Request types ---

type createSweetRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
}

// updateSweetRequest uses pointers so an absent field is distinguishable from
// a zero value: only provided fields are merged.
type updateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int64   `json:"quantity"`
}

type restockRequest struct {
	Amount int64 `json:"amount"`
}

// --- Response types owned by the transport layer ---
// These are intentionally separate from domain types so the JSON contract is
// not coupled to internal service changes.

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
