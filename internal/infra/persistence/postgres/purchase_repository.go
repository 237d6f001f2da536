package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements repository.PurchaseRepository using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for the PostgreSQL purchase repository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create persists a new purchase, generating its ID before the insert.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)
	purchaseM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		return errors.Wrap(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID

	return nil
}

// FindByID retrieves a single purchase by its unique ID.
func (repo *purchaseRepository) FindByID(ctx context.Context, id string) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&purchaseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by id")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// UpdateStatus sets the status of an existing purchase and refreshes its
// LastUpdated timestamp.
func (repo *purchaseRepository) UpdateStatus(ctx context.Context, id string, status entity.PurchaseStatus, now time.Time) (*entity.Purchase, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "last_updated": now})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update purchase status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPurchaseNotFound
	}

	return repo.FindByID(ctx, id)
}

// FindByUserID returns the user's purchases in creation order.
func (repo *purchaseRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	var purchaseMs []model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq").
		Find(&purchaseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases for user")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseMs))
	for i := range purchaseMs {
		purchases = append(purchases, toPurchaseDomain(&purchaseMs[i]))
	}

	return purchases, nil
}

func toPurchaseDomain(purchaseM *model.PurchaseModel) *entity.Purchase {
	return &entity.Purchase{
		ID:           purchaseM.ID,
		UserID:       purchaseM.UserID,
		ProductID:    purchaseM.ProductID,
		Quantity:     purchaseM.Quantity,
		TotalPrice:   purchaseM.TotalPrice,
		PurchaseDate: purchaseM.PurchaseDate,
		LastUpdated:  purchaseM.LastUpdated,
		Status:       entity.PurchaseStatus(purchaseM.Status),
	}
}

func fromPurchaseDomain(purchase *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:           purchase.ID,
		UserID:       purchase.UserID,
		ProductID:    purchase.ProductID,
		Quantity:     purchase.Quantity,
		TotalPrice:   purchase.TotalPrice,
		PurchaseDate: purchase.PurchaseDate,
		LastUpdated:  purchase.LastUpdated,
		Status:       string(purchase.Status),
	}
}
