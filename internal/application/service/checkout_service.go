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

// CheckoutService converts a cart plus payment method into ledger entries
type CheckoutService struct {
	carts      *CartStore
	configRepo repository.ConfigRepository
	saleRepo   repository.SaleRepository
	vipRepo    repository.VIPRepository
	backup     backup.Writer
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	carts *CartStore,
	configRepo repository.ConfigRepository,
	saleRepo repository.SaleRepository,
	vipRepo repository.VIPRepository,
	backupWriter backup.Writer,
) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		configRepo: configRepo,
		saleRepo:   saleRepo,
		vipRepo:    vipRepo,
		backup:     backupWriter,
	}
}

// FinalizeInput represents the finalize checkout input
type FinalizeInput struct {
	Session       string
	PaymentMethod enum.PaymentMethod
	VIPName       string
	CashTendered  float64
}

// CheckoutResult is the outcome of a successful finalize
type CheckoutResult struct {
	Sale    *entity.Sale    `json:"sale"`
	Change  float64         `json:"change"`
	Tickets []entity.Ticket `json:"tickets"`
}

// Finalize validates the cart and payment, writes the sale with its lines,
// applies the VIP balance side effect and clears the cart. The cart is only
// cleared after the sale is durable.
func (s *CheckoutService) Finalize(ctx context.Context, input *FinalizeInput) (*CheckoutResult, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.Configured {
		return nil, apperror.ErrNotConfigured
	}

	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}
	if input.PaymentMethod == enum.PaymentVIP && input.VIPName == "" {
		return nil, apperror.NewBadRequestError("VIP sale requires a customer name")
	}

	cart := s.carts.Snapshot(input.Session)
	if cart.IsEmpty() {
		return nil, apperror.NewStateError("Cart is empty")
	}

	complimentary := input.PaymentMethod == enum.PaymentComplimentary

	subTotal := cart.SubTotal()
	discount := cart.Discount
	total := cart.Total()
	if complimentary {
		// Free drinks: items stay on the ticket but nothing is charged,
		// so the discount is not recorded either.
		discount = 0
		total = 0
	}

	var tendered, change int64
	if input.PaymentMethod == enum.PaymentCash {
		tendered = int64(input.CashTendered*100 + 0.5)
		if tendered < total {
			return nil, apperror.NewBadRequestError("Cash tendered is less than the total due")
		}
		change = tendered - total
	}

	lines := make([]entity.SaleLine, 0, len(cart.Lines))
	for _, cl := range cart.Lines {
		lineTotal := cl.UnitPrice * int64(cl.Quantity)
		if complimentary {
			lineTotal = 0
		}
		lines = append(lines, entity.SaleLine{
			Flavor:    cl.Flavor,
			UnitPrice: cl.UnitPrice,
			Quantity:  cl.Quantity,
			Total:     lineTotal,
		})
	}

	var vipCustomer *string
	if input.PaymentMethod == enum.PaymentVIP {
		name := input.VIPName
		vipCustomer = &name
	}

	sale, err := entity.NewProductSale(
		utils.GenerateSaleNo(), time.Now(), input.PaymentMethod,
		subTotal, discount, total, vipCustomer, lines,
	)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	sale.Tendered = tendered
	sale.Change = change

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	if input.PaymentMethod == enum.PaymentVIP {
		if err := s.vipRepo.AddToBalance(ctx, input.VIPName, total); err != nil {
			// Sale row is already durable - roll it back so the ledger and
			// the VIP registry never disagree.
			_ = s.saleRepo.Delete(ctx, sale.ID)
			return nil, err
		}
	}

	_ = s.carts.With(input.Session, func(cart *entity.Cart) error {
		cart.Clear()
		return nil
	})

	result := &CheckoutResult{
		Sale:    sale,
		Change:  float64(change) / 100,
		Tickets: TicketsForSale(cfg.StandName, sale),
	}

	if err := s.backup.Snapshot(ctx); err != nil {
		log.Printf("Warning: sale %s committed but backup snapshot failed: %v", sale.SaleNo, err)
		return result, apperror.NewAppError(500, "Sale recorded but backup snapshot failed: "+err.Error())
	}

	return result, nil
}
