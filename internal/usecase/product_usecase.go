package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
