package purchaserepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM.
type GormPurchaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormPurchaseRepository creates a new GORM purchase repository.
func NewGormPurchaseRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseRepository {
	return &GormPurchaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and writes the generated identifier
// and initial version back to the aggregate.
func (r *GormPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.MarkPersisted(dto.ID, dto.Version); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order under optimistic locking. The write only
// lands if the stored version still matches the version the aggregate was
// loaded with; a concurrent writer surfaces as errs.ErrConflict.
func (r *GormPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&PurchaseDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&PurchaseDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("purchase", dto.ID)
		}
		return errs.NewConflictError("purchase", dto.ID)
	}

	if err := aggregate.MarkPersisted(dto.ID, dto.Version); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, soft-deleted ones included.
func (r *GormPurchaseRepository) Get(ctx context.Context, id int64) (*purchase.Purchase, error) {
	var dto PurchaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every order that is not soft-deleted.
func (r *GormPurchaseRepository) GetAllActive(ctx context.Context) ([]*purchase.Purchase, error) {
	var dtos []PurchaseDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_deleted = ?", false).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllActiveByRequester retrieves the non-deleted orders owned by the given
// requester.
func (r *GormPurchaseRepository) GetAllActiveByRequester(ctx context.Context, requesterID int64) ([]*purchase.Purchase, error) {
	var dtos []PurchaseDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "is_deleted = ? AND requester_id = ?", false, requesterID).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormPurchaseRepository) toDomainAll(dtos []PurchaseDTO) ([]*purchase.Purchase, error) {
	orders := make([]*purchase.Purchase, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
