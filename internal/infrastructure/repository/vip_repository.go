package repository

import (
	"context"
	"errors"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	domainRepo "github.com/caiolopes/pdv-api/internal/domain/repository"
	"gorm.io/gorm"
)

type vipRepository struct {
	db *gorm.DB
}

// NewVIPRepository creates a new VIP account repository
func NewVIPRepository(db *gorm.DB) domainRepo.VIPRepository {
	return &vipRepository{db: db}
}

func (r *vipRepository) GetByName(ctx context.Context, name string) (*entity.VIPAccount, error) {
	var account entity.VIPAccount
	err := r.db.WithContext(ctx).First(&account, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *vipRepository) List(ctx context.Context) ([]entity.VIPAccount, error) {
	var accounts []entity.VIPAccount
	err := r.db.WithContext(ctx).Order("balance DESC, name ASC").Find(&accounts).Error
	return accounts, err
}

// AddToBalance creates the account on first charge and increments the balance
// atomically, so repeated VIP sales for the same name never race a read.
func (r *vipRepository) AddToBalance(ctx context.Context, name string, amount int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO vip_accounts (id, name, balance, created_at, updated_at)
		VALUES (gen_random_uuid(), ?, ?, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE
		SET balance = vip_accounts.balance + EXCLUDED.balance, updated_at = NOW()
	`, name, amount).Error
}

// SubtractFromBalance decrements the balance clamped at zero. A reversal can
// never drive a tab negative.
func (r *vipRepository) SubtractFromBalance(ctx context.Context, name string, amount int64) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE vip_accounts
		SET balance = GREATEST(balance - ?, 0), updated_at = NOW()
		WHERE name = ?
	`, amount, name).Error
}

func (r *vipRepository) SettleBalance(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Model(&entity.VIPAccount{}).
		Where("name = ?", name).
		Update("balance", 0).Error
}

func (r *vipRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.VIPAccount{}).Error
}
