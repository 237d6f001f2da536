package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const (
	maxProductNameLength = 100
	maxProductPrice      = 10000
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct adds a product to the catalog after validating name and price.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateCreateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{Name: input.Name, Price: input.Price}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewUnknownError(err)
	}

	srv.logger.Info("product created", "productID", product.ID)

	return product, nil
}

// GetProduct retrieves a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.NewValidationError("Product ID cannot be empty")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewNotFound("Product", productID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	return product, nil
}

// ListProducts returns the full catalog.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err)
	}

	return products, nil
}

func validateCreateProductInput(input *usecase.CreateProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.NewValidationError("Product name cannot be empty")
	case utf8.RuneCountInString(input.Name) > maxProductNameLength:
		return domainerrors.NewValidationError("Product name cannot exceed 100 characters")
	case input.Price <= 0:
		return domainerrors.NewValidationError("Product price must be greater than zero")
	case input.Price > maxProductPrice:
		return domainerrors.NewValidationError("Price must be less than 10000")
	default:
		return nil
	}
}
