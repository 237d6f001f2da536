package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// purchaseServiceFixtures holds all test dependencies for purchase service tests.
type purchaseServiceFixtures struct {
	service      usecase.PurchaseUsecase
	purchaseRepo *mockRepo.MockPurchaseRepository
	userRepo     *mockRepo.MockUserRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewPurchaseService(purchaseRepo, userRepo, productRepo, slog.New(slog.DiscardHandler))

	return purchaseServiceFixtures{
		service:      service,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
	}
}

func testUser(id string) *entity.User {
	return &entity.User{ID: id, Username: "alice", CreatedAt: time.Now()}
}

func testProduct(id string, price float64) *entity.Product {
	return &entity.Product{ID: id, Name: "Wireless Mouse", Price: price, CreatedAt: time.Now()}
}

func TestPurchaseService_CreatePurchase_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.NewString()
	productID := uuid.NewString()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID), nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(testProduct(productID, 29.99), nil)

	var persisted *entity.Purchase
	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(ctx context.Context, purchase *entity.Purchase) {
			purchase.ID = uuid.NewString()
			persisted = purchase
		}).
		Return(nil)

	output, err := fx.service.CreatePurchase(ctx, &usecase.CreatePurchaseInput{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   2,
		TotalPrice: 59.98,
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, persisted.ID, output.PurchaseID)
	assert.Equal(t, userID, persisted.UserID)
	assert.Equal(t, productID, persisted.ProductID)
	assert.Equal(t, 2, persisted.Quantity)
	assert.Equal(t, 59.98, persisted.TotalPrice)
	assert.Equal(t, entity.PurchaseStatusPending, persisted.Status)
	assert.False(t, persisted.PurchaseDate.IsZero())
	assert.Equal(t, persisted.PurchaseDate, persisted.LastUpdated)
}

func TestPurchaseService_CreatePurchase_FieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreatePurchaseInput
		message string
	}{
		{
			name:    "empty user ID",
			input:   &usecase.CreatePurchaseInput{UserID: "  ", ProductID: "p-1", Quantity: 1, TotalPrice: 10},
			message: "User ID cannot be empty",
		},
		{
			name:    "empty product ID",
			input:   &usecase.CreatePurchaseInput{UserID: "u-1", ProductID: "", Quantity: 1, TotalPrice: 10},
			message: "Product ID cannot be empty",
		},
		{
			name:    "zero quantity",
			input:   &usecase.CreatePurchaseInput{UserID: "u-1", ProductID: "p-1", Quantity: 0, TotalPrice: 10},
			message: "Quantity must be greater than zero",
		},
		{
			name:    "negative quantity",
			input:   &usecase.CreatePurchaseInput{UserID: "u-1", ProductID: "p-1", Quantity: -3, TotalPrice: 10},
			message: "Quantity must be greater than zero",
		},
		{
			name:    "zero total price",
			input:   &usecase.CreatePurchaseInput{UserID: "u-1", ProductID: "p-1", Quantity: 1, TotalPrice: 0},
			message: "Total price must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPurchaseService(t)

			output, err := fx.service.CreatePurchase(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, domainerrors.IsValidationError(err))

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())

			// Field validation rejects before any repository access.
			fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			fx.purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPurchaseService_CreatePurchase_UserNotFound(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u-404").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CreatePurchase(ctx, &usecase.CreatePurchaseInput{
		UserID:     "u-404",
		ProductID:  "p-1",
		Quantity:   1,
		TotalPrice: 10,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsNotFound(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User with id u-404 not found", appErr.Message())

	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseService_CreatePurchase_ProductNotFound(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u-1").
		Return(testUser("u-1"), nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, "p-404").
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.CreatePurchase(ctx, &usecase.CreatePurchaseInput{
		UserID:     "u-1",
		ProductID:  "p-404",
		Quantity:   1,
		TotalPrice: 10,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsNotFound(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Product with id p-404 not found", appErr.Message())

	fx.purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseService_CreatePurchase_PriceMismatch(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u-1").
		Return(testUser("u-1"), nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, "p-1").
		Return(testProduct("p-1", 29.99), nil)

	output, err := fx.service.CreatePurchase(ctx, &usecase.CreatePurchaseInput{
		UserID:     "u-1",
		ProductID:  "p-1",
		Quantity:   2,
		TotalPrice: 100.0,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsBusinessRuleViolation(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Provided total (100.0) does not match calculated total (59.98)", appErr.Message())

	fx.purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseService_CreatePurchase_MatchingTotalWithinEpsilon(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u-1").
		Return(testUser("u-1"), nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, "p-1").
		Return(testProduct("p-1", 0.1), nil)

	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(ctx context.Context, purchase *entity.Purchase) {
			purchase.ID = uuid.NewString()
		}).
		Return(nil)

	// 3 * 0.1 is 0.30000000000000004 in float64; 0.3 must still reconcile.
	output, err := fx.service.CreatePurchase(ctx, &usecase.CreatePurchaseInput{
		UserID:     "u-1",
		ProductID:  "p-1",
		Quantity:   3,
		TotalPrice: 0.3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.PurchaseID)
}

func TestPurchaseService_CreatePurchase_RepositoryFailure(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u-1").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.CreatePurchase(ctx, &usecase.CreatePurchaseInput{
		UserID:     "u-1",
		ProductID:  "p-1",
		Quantity:   1,
		TotalPrice: 10,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindUnknown, appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestPurchaseService_UpdatePurchaseStatus_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchaseID := uuid.NewString()
	now := time.Now()

	fx.purchaseRepo.EXPECT().
		FindByID(ctx, purchaseID).
		Return(&entity.Purchase{
			ID:          purchaseID,
			Status:      entity.PurchaseStatusPending,
			LastUpdated: now.Add(-time.Hour),
		}, nil)

	fx.purchaseRepo.EXPECT().
		UpdateStatus(ctx, purchaseID, entity.PurchaseStatusCompleted, mock.AnythingOfType("time.Time")).
		Return(&entity.Purchase{
			ID:          purchaseID,
			Status:      entity.PurchaseStatusCompleted,
			LastUpdated: now,
		}, nil)

	output, err := fx.service.UpdatePurchaseStatus(ctx, &usecase.UpdateStatusInput{
		PurchaseID: purchaseID,
		NewStatus:  entity.PurchaseStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, purchaseID, output.PurchaseID)
	assert.Equal(t, entity.PurchaseStatusCompleted, output.NewStatus)
	assert.Equal(t, now, output.LastUpdated)
}

func TestPurchaseService_UpdatePurchaseStatus_EmptyID(t *testing.T) {
	fx := createTestPurchaseService(t)

	output, err := fx.service.UpdatePurchaseStatus(context.Background(), &usecase.UpdateStatusInput{
		PurchaseID: "  ",
		NewStatus:  entity.PurchaseStatusCompleted,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsValidationError(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Purchase ID cannot be empty", appErr.Message())
}

func TestPurchaseService_UpdatePurchaseStatus_UnknownStatus(t *testing.T) {
	fx := createTestPurchaseService(t)

	output, err := fx.service.UpdatePurchaseStatus(context.Background(), &usecase.UpdateStatusInput{
		PurchaseID: "pur-1",
		NewStatus:  entity.PurchaseStatus("SHIPPED"),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsValidationError(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid purchase status: SHIPPED", appErr.Message())

	fx.purchaseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestPurchaseService_UpdatePurchaseStatus_PendingTargetAlwaysRejected(t *testing.T) {
	fx := createTestPurchaseService(t)

	output, err := fx.service.UpdatePurchaseStatus(context.Background(), &usecase.UpdateStatusInput{
		PurchaseID: "pur-1",
		NewStatus:  entity.PurchaseStatusPending,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsBusinessRuleViolation(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cannot transition to PENDING status from a completed purchase", appErr.Message())

	// The PENDING guard fires before the purchase is ever loaded.
	fx.purchaseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.purchaseRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseService_UpdatePurchaseStatus_IllegalTransition(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByID(ctx, "pur-1").
		Return(&entity.Purchase{ID: "pur-1", Status: entity.PurchaseStatusCancelled}, nil)

	output, err := fx.service.UpdatePurchaseStatus(ctx, &usecase.UpdateStatusInput{
		PurchaseID: "pur-1",
		NewStatus:  entity.PurchaseStatusCompleted,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsBusinessRuleViolation(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cannot transition from CANCELLED to COMPLETED", appErr.Message())

	fx.purchaseRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseService_UpdatePurchaseStatus_NotFound(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByID(ctx, "pur-404").
		Return(nil, repository.ErrPurchaseNotFound)

	output, err := fx.service.UpdatePurchaseStatus(ctx, &usecase.UpdateStatusInput{
		PurchaseID: "pur-404",
		NewStatus:  entity.PurchaseStatusCancelled,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, domainerrors.IsNotFound(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Purchase with id pur-404 not found", appErr.Message())
}

func TestPurchaseService_GetPurchase_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	expected := &entity.Purchase{ID: "pur-1", UserID: "u-1", Status: entity.PurchaseStatusPending}

	fx.purchaseRepo.EXPECT().
		FindByID(ctx, "pur-1").
		Return(expected, nil)

	purchase, err := fx.service.GetPurchase(ctx, "pur-1")
	require.NoError(t, err)
	assert.Equal(t, expected, purchase)
}

func TestPurchaseService_GetPurchase_EmptyID(t *testing.T) {
	fx := createTestPurchaseService(t)

	purchase, err := fx.service.GetPurchase(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, domainerrors.IsValidationError(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Purchase ID cannot be empty", appErr.Message())
}

func TestPurchaseService_GetPurchase_NotFound(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByID(ctx, "pur-404").
		Return(nil, repository.ErrPurchaseNotFound)

	purchase, err := fx.service.GetPurchase(ctx, "pur-404")
	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestPurchaseService_GetAllPurchasesForUser_CreationOrder(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	first := &entity.Purchase{ID: "pur-1", UserID: "u-1"}
	second := &entity.Purchase{ID: "pur-2", UserID: "u-1"}

	fx.purchaseRepo.EXPECT().
		FindByUserID(ctx, "u-1").
		Return([]*entity.Purchase{first, second}, nil)

	purchases, err := fx.service.GetAllPurchasesForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, "pur-1", purchases[0].ID)
	assert.Equal(t, "pur-2", purchases[1].ID)
}

func TestPurchaseService_GetAllPurchasesForUser_NoPurchases(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByUserID(ctx, "u-1").
		Return([]*entity.Purchase{}, nil)

	purchases, err := fx.service.GetAllPurchasesForUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestPurchaseService_GetAllPurchasesForUser_EmptyID(t *testing.T) {
	fx := createTestPurchaseService(t)

	purchases, err := fx.service.GetAllPurchasesForUser(context.Background(), " ")
	require.Error(t, err)
	assert.Nil(t, purchases)
	assert.True(t, domainerrors.IsValidationError(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User ID cannot be empty", appErr.Message())
}
