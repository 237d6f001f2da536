// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// PurchaseUsecase defines the interface for the purchase lifecycle workflow.
type PurchaseUsecase interface {
	// CreatePurchase validates the request, verifies that the referenced
	// user and product exist, reconciles the submitted total against the
	// product's unit price, and persists a new PENDING purchase.
	CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*CreatePurchaseOutput, error)

	// UpdatePurchaseStatus applies a status transition to an existing
	// purchase, enforcing the purchase state machine.
	UpdatePurchaseStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error)

	// GetPurchase retrieves a single purchase by ID.
	GetPurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error)

	// GetAllPurchasesForUser retrieves a user's purchases in creation order.
	// A user without purchases yields an empty list, not an error.
	GetAllPurchasesForUser(ctx context.Context, userID string) ([]*entity.Purchase, error)
}

// --- Input/Output DTOs ---

// CreatePurchaseInput defines the data required to create a purchase.
type CreatePurchaseInput struct {
	UserID     string  `json:"user_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// CreatePurchaseOutput carries the generated ID of a created purchase.
type CreatePurchaseOutput struct {
	PurchaseID string `json:"purchase_id"`
}

// UpdateStatusInput defines the data required to update a purchase's status.
type UpdateStatusInput struct {
	PurchaseID string                `json:"purchase_id"`
	NewStatus  entity.PurchaseStatus `json:"new_status"`
}

// UpdateStatusOutput reports the applied status and refreshed timestamp.
type UpdateStatusOutput struct {
	PurchaseID  string                `json:"purchase_id"`
	NewStatus   entity.PurchaseStatus `json:"new_status"`
	LastUpdated time.Time             `json:"last_updated"`
}
