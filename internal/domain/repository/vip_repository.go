package repository

import (
	"context"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
)

// VIPRepository defines the interface for VIP tab operations
type VIPRepository interface {
	// GetByName returns the account with the given name, or nil when absent
	GetByName(ctx context.Context, name string) (*entity.VIPAccount, error)
	// List returns all accounts ordered by balance descending
	List(ctx context.Context) ([]entity.VIPAccount, error)
	// AddToBalance upserts the account and increments its balance by amount cents
	AddToBalance(ctx context.Context, name string, amount int64) error
	// SubtractFromBalance decrements the balance by amount cents, clamped at 0
	SubtractFromBalance(ctx context.Context, name string, amount int64) error
	// SettleBalance zeroes the account balance
	SettleBalance(ctx context.Context, name string) error
	// DeleteAll clears the registry (system reset)
	DeleteAll(ctx context.Context) error
}
