package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// purchaseRepository implements repository.PurchaseRepository in memory.
// Besides the keyed map it keeps an insertion-order index so that
// FindByUserID returns purchases first-created, first-returned.
type purchaseRepository struct {
	mu        sync.RWMutex
	purchases map[string]entity.Purchase
	order     []string
}

// NewPurchaseRepository is the constructor for the in-memory purchase repository.
func NewPurchaseRepository() repository.PurchaseRepository {
	return &purchaseRepository{purchases: make(map[string]entity.Purchase)}
}

// Create stores the purchase under a freshly generated ID and records its
// position in the insertion order.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	purchase.ID = uuid.NewString()
	repo.purchases[purchase.ID] = *purchase
	repo.order = append(repo.order, purchase.ID)

	return nil
}

// FindByID retrieves a purchase by ID.
func (repo *purchaseRepository) FindByID(ctx context.Context, id string) (*entity.Purchase, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	purchase, ok := repo.purchases[id]
	if !ok {
		return nil, repository.ErrPurchaseNotFound
	}

	return &purchase, nil
}

// UpdateStatus sets the status of an existing purchase and refreshes its
// LastUpdated timestamp.
func (repo *purchaseRepository) UpdateStatus(ctx context.Context, id string, status entity.PurchaseStatus, now time.Time) (*entity.Purchase, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	purchase, ok := repo.purchases[id]
	if !ok {
		return nil, repository.ErrPurchaseNotFound
	}

	purchase.Status = status
	purchase.LastUpdated = now
	repo.purchases[id] = purchase

	return &purchase, nil
}

// FindByUserID returns the user's purchases in creation order.
func (repo *purchaseRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Purchase, 0)
	for _, id := range repo.order {
		purchase, ok := repo.purchases[id]
		if !ok || purchase.UserID != userID {
			continue
		}
		p := purchase
		out = append(out, &p)
	}

	return out, nil
}
