package repository

import (
	"context"
	"time"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleFilterParams holds the filters for listing ledger sales
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches sale_no or id prefix/suffix
	Method     *enum.PaymentMethod
	Kind       *enum.SaleKind
	StartDate  *time.Time
	EndDate    *time.Time
}

// SaleRepository defines the interface for ledger operations
type SaleRepository interface {
	// Create stores a sale together with its lines in one transaction
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID returns a sale without lines, or nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithLines returns a sale with its lines preloaded, or nil when absent
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// List returns sales matching the filters plus the total match count
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListAll returns every sale with lines, oldest first (backup snapshots)
	ListAll(ctx context.Context) ([]entity.Sale, error)
	// Delete removes a sale and its lines
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteAll clears the ledger (system reset)
	DeleteAll(ctx context.Context) error
}
