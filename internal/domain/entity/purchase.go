package entity

import "time"

// Purchase records a user buying a quantity of a single product.
// UserID and ProductID are verified against existing entities when the
// purchase is created; TotalPrice is derived from quantity times the
// product's unit price and never independently authoritative.
type Purchase struct {
	ID           string         // Generated opaque identifier, assigned by the repository on creation.
	UserID       string         // References an existing User.
	ProductID    string         // References an existing Product.
	Quantity     int            // Number of units, greater than zero.
	TotalPrice   float64        // Quantity times the product's unit price at creation time.
	PurchaseDate time.Time      // Set once at creation, immutable.
	LastUpdated  time.Time      // Refreshed on every mutation.
	Status       PurchaseStatus // Current lifecycle status; starts at PENDING.
}
