package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(productRepo, slog.New(slog.DiscardHandler))

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.NewString()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Wireless Mouse",
		Price: 29.99,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Wireless Mouse", product.Name)
	assert.Equal(t, 29.99, product.Price)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateProductInput
		message string
	}{
		{
			name:    "empty name",
			input:   &usecase.CreateProductInput{Name: "  ", Price: 10},
			message: "Product name cannot be empty",
		},
		{
			name:    "name too long",
			input:   &usecase.CreateProductInput{Name: strings.Repeat("x", 101), Price: 10},
			message: "Product name cannot exceed 100 characters",
		},
		{
			name:    "zero price",
			input:   &usecase.CreateProductInput{Name: "Mouse", Price: 0},
			message: "Product price must be greater than zero",
		},
		{
			name:    "negative price",
			input:   &usecase.CreateProductInput{Name: "Mouse", Price: -1},
			message: "Product price must be greater than zero",
		},
		{
			name:    "price above cap",
			input:   &usecase.CreateProductInput{Name: "Mouse", Price: 10000.01},
			message: "Price must be less than 10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			product, err := fx.service.CreateProduct(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, product)
			assert.True(t, domainerrors.IsValidationError(err))

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())

			fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expected := testProduct("p-1", 29.99)

	fx.productRepo.EXPECT().
		FindByID(ctx, "p-1").
		Return(expected, nil)

	product, err := fx.service.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_GetProduct_EmptyID(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.GetProduct(context.Background(), " ")
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Product ID cannot be empty", appErr.Message())
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, "p-404").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, "p-404")
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, domainerrors.IsNotFound(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Product with id p-404 not found", appErr.Message())
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := []*entity.Product{testProduct("p-1", 10), testProduct("p-2", 20)}

	fx.productRepo.EXPECT().
		FindAll(ctx).
		Return(stored, nil)

	products, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, products)
}
