package entity

import "time"

// Product is an item available for purchase.
// Products are immutable once created.
type Product struct {
	ID        string    // Generated opaque identifier, assigned by the repository on creation.
	Name      string    // Product name, non-empty and at most 100 characters.
	Price     float64   // Unit price, greater than zero and at most 10000.
	CreatedAt time.Time // Timestamp of when this product was created.
}
