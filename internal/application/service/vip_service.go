package service

import (
	"context"
	"log"
	"time"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/internal/infrastructure/backup"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/caiolopes/pdv-api/pkg/utils"
)

// VIPService handles VIP tab listing and settlement
type VIPService struct {
	vipRepo  repository.VIPRepository
	saleRepo repository.SaleRepository
	backup   backup.Writer
}

// NewVIPService creates a new VIP service
func NewVIPService(vipRepo repository.VIPRepository, saleRepo repository.SaleRepository, backupWriter backup.Writer) *VIPService {
	return &VIPService{vipRepo: vipRepo, saleRepo: saleRepo, backup: backupWriter}
}

// ListAccounts returns all VIP accounts ordered by outstanding balance.
func (s *VIPService) ListAccounts(ctx context.Context) ([]entity.VIPAccount, error) {
	return s.vipRepo.List(ctx)
}

// Settle pays off the account's full balance via the given method. The
// settlement is recorded as its own sale so it shows up in revenue totals,
// and the balance is zeroed.
func (s *VIPService) Settle(ctx context.Context, name string, method enum.PaymentMethod) (*entity.Sale, error) {
	if !method.Settles() {
		return nil, apperror.NewBadRequestError("Settlement must be paid via PIX, Debit, Credit or Cash")
	}

	account, err := s.vipRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("VIP account")
	}
	if account.Balance <= 0 {
		return nil, apperror.NewStateError("VIP account has no outstanding balance")
	}

	sale, err := entity.NewSettlementSale(utils.GenerateSaleNo(), time.Now(), method, account.Balance, name)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	if err := s.vipRepo.SettleBalance(ctx, name); err != nil {
		// Keep ledger and registry consistent: drop the settlement record
		// when zeroing the balance failed.
		_ = s.saleRepo.Delete(ctx, sale.ID)
		return nil, err
	}

	log.Printf("VIP tab settled: %s paid %.2f via %s", name, sale.GetTotalDecimal(), method)

	if err := s.backup.Snapshot(ctx); err != nil {
		log.Printf("Warning: settlement %s committed but backup snapshot failed: %v", sale.SaleNo, err)
		return sale, apperror.NewAppError(500, "Settlement recorded but backup snapshot failed: "+err.Error())
	}

	return sale, nil
}
