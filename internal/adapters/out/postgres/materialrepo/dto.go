// Package materialrepo provides the GORM-backed read adapter for the
// material catalog. The catalog itself (CRUD, search) is owned by another
// service; the order core only snapshots name, price, and unit at
// order-creation time.
package materialrepo

import (
	"time"

	"github.com/google/uuid"
)

// MaterialDTO is the database row for a catalog material.
type MaterialDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     int64
	Unit      string
	InStock   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "materials".
func (MaterialDTO) TableName() string {
	return "materials"
}
