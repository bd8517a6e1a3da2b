package domain

import "time"

// MovementKind identifies which inventory operation changed the stock count.
type MovementKind string

const (
	MovementPurchase MovementKind = "purchase"
	MovementRestock  MovementKind = "restock"
)

// StockMovement is the audit record of a single quantity change. Delta is
// negative for purchases and positive for restocks; QuantityAfter is the
// stock count the change produced.
type StockMovement struct {
	SweetID       string
	Kind          MovementKind
	Delta         int64
	QuantityAfter int64
	Actor         string
	At            time.Time
}
