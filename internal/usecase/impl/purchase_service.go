// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// priceEpsilon absorbs float64 representation noise when comparing a
// submitted total against quantity times unit price. Any real mismatch is
// orders of magnitude larger.
const priceEpsilon = 1e-9

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.PurchaseUsecase {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// CreatePurchase runs the creation workflow in strict order: field
// validation, user existence, product existence, price reconciliation,
// persist. Each step short-circuits the rest on failure, so no write
// happens until every check has passed.
func (srv *purchaseService) CreatePurchase(ctx context.Context, input *usecase.CreatePurchaseInput) (*usecase.CreatePurchaseOutput, error) {
	if err := validateCreatePurchaseInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFound("User", input.UserID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewNotFound("Product", input.ProductID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	if err := reconcileTotal(input.Quantity, product.Price, input.TotalPrice); err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := &entity.Purchase{
		UserID:       input.UserID,
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		TotalPrice:   input.TotalPrice,
		PurchaseDate: now,
		LastUpdated:  now,
		Status:       entity.PurchaseStatusPending,
	}

	if err := srv.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, domainerrors.NewUnknownError(err)
	}

	srv.logger.Info("purchase created",
		"purchaseID", purchase.ID,
		"userID", purchase.UserID,
		"productID", purchase.ProductID,
	)

	return &usecase.CreatePurchaseOutput{PurchaseID: purchase.ID}, nil
}

// UpdatePurchaseStatus applies a status transition. A transition into
// PENDING is rejected outright, before any repository read; every other
// edge is checked against the purchase state machine using the current
// stored status.
func (srv *purchaseService) UpdatePurchaseStatus(ctx context.Context, input *usecase.UpdateStatusInput) (*usecase.UpdateStatusOutput, error) {
	if strings.TrimSpace(input.PurchaseID) == "" {
		return nil, domainerrors.NewValidationError("Purchase ID cannot be empty")
	}
	if !input.NewStatus.Valid() {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("Invalid purchase status: %s", input.NewStatus))
	}
	if input.NewStatus == entity.PurchaseStatusPending {
		return nil, domainerrors.NewBusinessRuleViolation("Cannot transition to PENDING status from a completed purchase")
	}

	current, err := srv.purchaseRepo.FindByID(ctx, input.PurchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.NewNotFound("Purchase", input.PurchaseID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	if !current.Status.CanTransitionTo(input.NewStatus) {
		return nil, domainerrors.NewBusinessRuleViolation(
			fmt.Sprintf("Cannot transition from %s to %s", current.Status, input.NewStatus))
	}

	updated, err := srv.purchaseRepo.UpdateStatus(ctx, input.PurchaseID, input.NewStatus, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.NewNotFound("Purchase", input.PurchaseID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	srv.logger.Info("purchase status updated",
		"purchaseID", updated.ID,
		"status", updated.Status,
	)

	return &usecase.UpdateStatusOutput{
		PurchaseID:  updated.ID,
		NewStatus:   updated.Status,
		LastUpdated: updated.LastUpdated,
	}, nil
}

// GetPurchase retrieves a single purchase by ID.
func (srv *purchaseService) GetPurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	if strings.TrimSpace(purchaseID) == "" {
		return nil, domainerrors.NewValidationError("Purchase ID cannot be empty")
	}

	purchase, err := srv.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.NewNotFound("Purchase", purchaseID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	return purchase, nil
}

// GetAllPurchasesForUser retrieves a user's purchases in creation order.
func (srv *purchaseService) GetAllPurchasesForUser(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.NewValidationError("User ID cannot be empty")
	}

	purchases, err := srv.purchaseRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err)
	}

	return purchases, nil
}

// validateCreatePurchaseInput checks field-level constraints in a fixed
// order and returns the first failure. It performs no repository calls.
func validateCreatePurchaseInput(input *usecase.CreatePurchaseInput) error {
	switch {
	case strings.TrimSpace(input.UserID) == "":
		return domainerrors.NewValidationError("User ID cannot be empty")
	case strings.TrimSpace(input.ProductID) == "":
		return domainerrors.NewValidationError("Product ID cannot be empty")
	case input.Quantity <= 0:
		return domainerrors.NewValidationError("Quantity must be greater than zero")
	case input.TotalPrice <= 0:
		return domainerrors.NewValidationError("Total price must be greater than zero")
	default:
		return nil
	}
}

// reconcileTotal recomputes the expected total from quantity times unit
// price and rejects the request when the submitted total differs.
func reconcileTotal(quantity int, unitPrice, submitted float64) error {
	expected := float64(quantity) * unitPrice
	if math.Abs(expected-submitted) > priceEpsilon {
		return domainerrors.NewBusinessRuleViolation(fmt.Sprintf(
			"Provided total (%s) does not match calculated total (%s)",
			formatAmount(submitted), formatAmount(expected)))
	}

	return nil
}
