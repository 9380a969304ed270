package service

import (
	"context"
	"log"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/internal/infrastructure/backup"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/caiolopes/pdv-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleService handles ledger queries and sale reversal
type SaleService struct {
	saleRepo repository.SaleRepository
	vipRepo  repository.VIPRepository
	backup   backup.Writer
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, vipRepo repository.VIPRepository, backupWriter backup.Writer) *SaleService {
	return &SaleService{saleRepo: saleRepo, vipRepo: vipRepo, backup: backupWriter}
}

// GetSale retrieves a sale with its lines by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists ledger sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// Reverse voids a sale: the ledger row and its lines are deleted, and a
// VIP-funded sale gives the charged amount back to the tab (clamped at zero).
// Reversing a settlement does not reopen the tab it paid off.
func (s *SaleService) Reverse(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if sale.PaymentMethod == enum.PaymentVIP && sale.VIPCustomer != nil {
		if err := s.vipRepo.SubtractFromBalance(ctx, *sale.VIPCustomer, sale.Total); err != nil {
			return err
		}
	}

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("Sale reversed: %s (%.2f, %s)", sale.SaleNo, sale.GetTotalDecimal(), sale.PaymentMethod)

	if err := s.backup.Snapshot(ctx); err != nil {
		log.Printf("Warning: reversal of %s committed but backup snapshot failed: %v", sale.SaleNo, err)
		return apperror.NewAppError(500, "Sale reversed but backup snapshot failed: "+err.Error())
	}

	return nil
}
