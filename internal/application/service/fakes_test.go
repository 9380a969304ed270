package service

import (
	"context"
	"errors"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/google/uuid"
)

// In-memory fakes standing in for the Postgres repositories.

type memSaleRepo struct {
	sales     map[uuid.UUID]*entity.Sale
	createErr error
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for i := range sale.Lines {
		if sale.Lines[i].ID == uuid.Nil {
			sale.Lines[i].ID = uuid.New()
		}
		sale.Lines[i].SaleID = sale.ID
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	cp.Lines = nil
	return &cp, nil
}

func (r *memSaleRepo) GetWithLines(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *memSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	params.Pagination.Validate()
	var out []entity.Sale
	for _, s := range r.sales {
		if params.Method != nil && s.PaymentMethod != *params.Method {
			continue
		}
		if params.Kind != nil && s.Kind != *params.Kind {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *memSaleRepo) ListAll(_ context.Context) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *memSaleRepo) DeleteAll(_ context.Context) error {
	r.sales = make(map[uuid.UUID]*entity.Sale)
	return nil
}

type memVIPRepo struct {
	balances  map[string]int64
	addErr    error
	settleErr error
}

func newMemVIPRepo() *memVIPRepo {
	return &memVIPRepo{balances: make(map[string]int64)}
}

func (r *memVIPRepo) GetByName(_ context.Context, name string) (*entity.VIPAccount, error) {
	balance, ok := r.balances[name]
	if !ok {
		return nil, nil
	}
	return &entity.VIPAccount{ID: uuid.New(), Name: name, Balance: balance}, nil
}

func (r *memVIPRepo) List(_ context.Context) ([]entity.VIPAccount, error) {
	var out []entity.VIPAccount
	for name, balance := range r.balances {
		out = append(out, entity.VIPAccount{Name: name, Balance: balance})
	}
	return out, nil
}

func (r *memVIPRepo) AddToBalance(_ context.Context, name string, amount int64) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.balances[name] += amount
	return nil
}

func (r *memVIPRepo) SubtractFromBalance(_ context.Context, name string, amount int64) error {
	balance := r.balances[name] - amount
	if balance < 0 {
		balance = 0
	}
	r.balances[name] = balance
	return nil
}

func (r *memVIPRepo) SettleBalance(_ context.Context, name string) error {
	if r.settleErr != nil {
		return r.settleErr
	}
	r.balances[name] = 0
	return nil
}

func (r *memVIPRepo) DeleteAll(_ context.Context) error {
	r.balances = make(map[string]int64)
	return nil
}

type memConfigRepo struct {
	cfg *entity.EventConfig
}

func (r *memConfigRepo) Get(_ context.Context) (*entity.EventConfig, error) {
	if r.cfg == nil {
		return nil, nil
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *memConfigRepo) Save(_ context.Context, cfg *entity.EventConfig) error {
	cp := *cfg
	r.cfg = &cp
	return nil
}

type memFlavorRepo struct {
	flavors []entity.Flavor
}

func (r *memFlavorRepo) ReplaceAll(_ context.Context, flavors []entity.Flavor) error {
	r.flavors = append([]entity.Flavor(nil), flavors...)
	return nil
}

func (r *memFlavorRepo) List(_ context.Context) ([]entity.Flavor, error) {
	return append([]entity.Flavor(nil), r.flavors...), nil
}

func (r *memFlavorRepo) GetByName(_ context.Context, name string) (*entity.Flavor, error) {
	for i := range r.flavors {
		if r.flavors[i].Name == name {
			cp := r.flavors[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memFlavorRepo) DeleteAll(_ context.Context) error {
	r.flavors = nil
	return nil
}

var errBackupFailed = errors.New("disk full")

type fakeBackup struct {
	snapshots int
	cleans    int
	fail      bool
}

func (b *fakeBackup) Snapshot(_ context.Context) error {
	if b.fail {
		return errBackupFailed
	}
	b.snapshots++
	return nil
}

func (b *fakeBackup) Clean() error {
	b.cleans++
	return nil
}
