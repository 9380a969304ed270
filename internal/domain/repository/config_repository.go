package repository

import (
	"context"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
)

// ConfigRepository defines the interface for the single-row event configuration
type ConfigRepository interface {
	// Get returns the event configuration, or nil when the row does not exist yet
	Get(ctx context.Context) (*entity.EventConfig, error)
	// Save upserts the configuration row (id is always 1)
	Save(ctx context.Context, cfg *entity.EventConfig) error
}
