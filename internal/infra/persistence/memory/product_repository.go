package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// productRepository implements repository.ProductRepository in memory. An
// insertion-order index keeps FindAll deterministic.
type productRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
	order    []string
}

// NewProductRepository is the constructor for the in-memory product repository.
func NewProductRepository() repository.ProductRepository {
	return &productRepository{products: make(map[string]entity.Product)}
}

// Create stores the product under a freshly generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	repo.products[product.ID] = *product
	repo.order = append(repo.order, product.ID)

	return nil
}

// FindByID retrieves a product by ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	product, ok := repo.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

// FindAll returns every stored product in creation order.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Product, 0, len(repo.products))
	for _, id := range repo.order {
		product := repo.products[id]
		out = append(out, &product)
	}

	return out, nil
}
