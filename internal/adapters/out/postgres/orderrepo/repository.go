package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates modified
// within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its items and tracking steps. The
// unique index on the order number rejects duplicates at the storage layer.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("order number", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order using an optimistic version check: the row
// is only written if it still carries the version the aggregate was loaded
// with. Every aggregate mutation bumps the version exactly once, so the
// previously stored version is the aggregate's current version minus one.
// A lost race surfaces as errs.VersionIsInvalidError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version - 1

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("Items", "TrackingSteps").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", dto.Number)
		}
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s was modified concurrently", dto.Number))
	}

	// Items and tracking steps are replaced wholesale. Both collections
	// are small and only change through the aggregate, so a delete and
	// reinsert inside the surrounding transaction keeps the write
	// all-or-nothing without diffing.
	if err := db.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&TrackingStepDTO{}).Error; err != nil {
		return err
	}
	if len(dto.TrackingSteps) > 0 {
		if err := db.Create(&dto.TrackingSteps).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves an order by its external number, with items and
// tracking steps in their original positions.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByNumber reports whether an order number is already taken.
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, number order.Number) (bool, error) {
	if err := number.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ?", number.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllByVendor retrieves a vendor's orders, newest first.
func (r *GormOrderRepository) GetAllByVendor(
	ctx context.Context,
	vendorID kernel.UUID,
	statusFilter *order.Status,
) ([]*order.Order, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}
	return r.findAll(ctx, "vendor_id = ?", vendorID.Bytes(), statusFilter, 0)
}

// GetAllBySupplier retrieves a supplier's orders, newest first.
func (r *GormOrderRepository) GetAllBySupplier(
	ctx context.Context,
	supplierID kernel.UUID,
	statusFilter *order.Status,
) ([]*order.Order, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}
	return r.findAll(ctx, "supplier_id = ?", supplierID.Bytes(), statusFilter, 0)
}

// GetRecent retrieves the most recently created orders across all parties.
func (r *GormOrderRepository) GetRecent(
	ctx context.Context,
	limit int,
	statusFilter *order.Status,
) ([]*order.Order, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, int(^uint(0)>>1))
	}
	return r.findAll(ctx, "", nil, statusFilter, limit)
}

func (r *GormOrderRepository) findAll(
	ctx context.Context,
	condition string,
	conditionArg any,
	statusFilter *order.Status,
	limit int,
) ([]*order.Order, error) {
	query := r.preloaded(ctx).Order("created_at DESC")
	if condition != "" {
		query = query.Where(condition, conditionArg)
	}
	if statusFilter != nil {
		query = query.Where("status = ?", int(*statusFilter))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("TrackingSteps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}
