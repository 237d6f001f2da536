package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"
)

// ErrPurchaseNotFound is a domain-specific error returned when a purchase is not found.
var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository defines the standard operations for purchase persistence.
// The repository exclusively owns stored purchase records; callers never
// cache them across operations.
type PurchaseRepository interface {
	// Create persists a new purchase and assigns its generated ID.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByID retrieves a single purchase by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Purchase, error)

	// UpdateStatus sets the status of an existing purchase and refreshes its
	// LastUpdated timestamp, returning the updated record. It returns
	// ErrPurchaseNotFound when no purchase with the given ID exists.
	UpdateStatus(ctx context.Context, id string, status entity.PurchaseStatus, now time.Time) (*entity.Purchase, error)

	// FindByUserID retrieves the purchases belonging to a user in creation
	// order (first created, first returned). A user without purchases yields
	// an empty slice, not an error.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Purchase, error)
}
