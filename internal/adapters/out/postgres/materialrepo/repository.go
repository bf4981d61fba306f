package materialrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaterialCatalog implements ports.MaterialCatalog against the shared
// materials table.
type GormMaterialCatalog struct {
	db *gorm.DB
}

// NewGormMaterialCatalog creates a catalog adapter over the given connection.
func NewGormMaterialCatalog(db *gorm.DB) *GormMaterialCatalog {
	return &GormMaterialCatalog{db: db}
}

// Get returns the current snapshot for a material. Out-of-stock materials
// are treated as unknown: they cannot be ordered.
func (c *GormMaterialCatalog) Get(ctx context.Context, materialID kernel.UUID) (ports.MaterialSnapshot, error) {
	if err := materialID.Validate(); err != nil {
		return ports.MaterialSnapshot{}, err
	}

	var dto MaterialDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ?", materialID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MaterialSnapshot{}, errs.NewObjectNotFoundError("material", materialID.String())
		}
		return ports.MaterialSnapshot{}, err
	}

	if !dto.InStock {
		return ports.MaterialSnapshot{}, errs.NewObjectNotFoundErrorWithCause(
			"material", materialID.String(), fmt.Errorf("material %q is out of stock", dto.Name))
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.MaterialSnapshot{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.MaterialSnapshot{}, err
	}

	return ports.MaterialSnapshot{
		ID:    id,
		Name:  dto.Name,
		Price: price,
		Unit:  dto.Unit,
	}, nil
}
