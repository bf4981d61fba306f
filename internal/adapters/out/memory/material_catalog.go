package memory

import (
	"context"
	"fmt"
	"sync"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// catalogEntry pairs a material snapshot with its availability flag.
type catalogEntry struct {
	snapshot ports.MaterialSnapshot
	inStock  bool
}

// InMemoryMaterialCatalog implements ports.MaterialCatalog over a seeded map.
// Safe for concurrent use.
type InMemoryMaterialCatalog struct {
	mu        sync.RWMutex
	materials map[string]catalogEntry
}

// NewInMemoryMaterialCatalog creates an empty catalog.
func NewInMemoryMaterialCatalog() *InMemoryMaterialCatalog {
	return &InMemoryMaterialCatalog{
		materials: make(map[string]catalogEntry),
	}
}

// Put adds or replaces a material in the catalog.
func (c *InMemoryMaterialCatalog) Put(snapshot ports.MaterialSnapshot, inStock bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.materials[snapshot.ID.String()] = catalogEntry{snapshot: snapshot, inStock: inStock}
}

// Get returns the current snapshot for a material. Out-of-stock materials
// are treated as unknown: they cannot be ordered.
func (c *InMemoryMaterialCatalog) Get(_ context.Context, materialID kernel.UUID) (ports.MaterialSnapshot, error) {
	if err := materialID.Validate(); err != nil {
		return ports.MaterialSnapshot{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.materials[materialID.String()]
	if !found {
		return ports.MaterialSnapshot{}, errs.NewObjectNotFoundError("material", materialID.String())
	}
	if !entry.inStock {
		return ports.MaterialSnapshot{}, errs.NewObjectNotFoundErrorWithCause(
			"material", materialID.String(),
			fmt.Errorf("material %q is out of stock", entry.snapshot.Name))
	}
	return entry.snapshot, nil
}
