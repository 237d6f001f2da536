package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for purchase-related handlers.
type PurchaseHandler struct {
	uc     usecase.PurchaseUsecase
	logger *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(uc usecase.PurchaseUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePurchase handles the purchase creation request.
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	var input usecase.CreatePurchaseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	output, err := h.uc.CreatePurchase(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Purchase created successfully")
}

// updateStatusRequest is the body for the status transition endpoint; the
// purchase ID comes from the path. An absent or empty new_status is a
// malformed request; unknown status names still reach the service.
type updateStatusRequest struct {
	NewStatus entity.PurchaseStatus `json:"new_status" validate:"required"`
}

// UpdatePurchaseStatus handles the status transition request.
func (h *PurchaseHandler) UpdatePurchaseStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.UpdatePurchaseStatus(c.Request().Context(), &usecase.UpdateStatusInput{
		PurchaseID: c.Param("id"),
		NewStatus:  req.NewStatus,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Purchase status updated successfully")
}

// GetPurchase handles the request for a single purchase.
func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	purchase, err := h.uc.GetPurchase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchase, "Purchase retrieved successfully")
}

// GetUserPurchases handles the request for all purchases of a user.
func (h *PurchaseHandler) GetUserPurchases(c echo.Context) error {
	purchases, err := h.uc.GetAllPurchasesForUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved successfully")
}
