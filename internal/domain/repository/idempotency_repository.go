package repository

import (
	"context"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and register session
	GetByKey(ctx context.Context, key string, session string) (*entity.IdempotencyKey, error)
	// Create stores an idempotency key, replacing any existing row for the
	// same key and register session
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes expired idempotency keys (for cleanup)
	DeleteExpired(ctx context.Context) error
}
