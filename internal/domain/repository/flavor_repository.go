package repository

import (
	"context"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
)

// FlavorRepository defines the interface for catalog flavor operations
type FlavorRepository interface {
	// ReplaceAll swaps the whole active catalog for the given flavors atomically
	ReplaceAll(ctx context.Context, flavors []entity.Flavor) error
	// List returns the active catalog ordered by position
	List(ctx context.Context) ([]entity.Flavor, error)
	// GetByName returns the flavor with the given name, or nil when absent
	GetByName(ctx context.Context, name string) (*entity.Flavor, error)
	// DeleteAll clears the catalog (system reset)
	DeleteAll(ctx context.Context) error
}
