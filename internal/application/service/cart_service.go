package service

import (
	"context"
	"errors"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/pkg/apperror"
)

// CartService handles per-register cart operations
type CartService struct {
	carts      *CartStore
	flavorRepo repository.FlavorRepository
}

// NewCartService creates a new cart service
func NewCartService(carts *CartStore, flavorRepo repository.FlavorRepository) *CartService {
	return &CartService{carts: carts, flavorRepo: flavorRepo}
}

// Get returns the session's cart.
func (s *CartService) Get(ctx context.Context, session string) entity.Cart {
	return s.carts.Snapshot(session)
}

// AddItem adds one unit of the flavor, snapshotting its current catalog price.
func (s *CartService) AddItem(ctx context.Context, session, flavorName string) (entity.Cart, error) {
	flavor, err := s.flavorRepo.GetByName(ctx, flavorName)
	if err != nil {
		return entity.Cart{}, err
	}
	if flavor == nil {
		return entity.Cart{}, apperror.NewNotFoundError("Flavor")
	}

	err = s.carts.With(session, func(cart *entity.Cart) error {
		cart.Add(flavor.Name, flavor.Price)
		return nil
	})
	if err != nil {
		return entity.Cart{}, err
	}
	return s.carts.Snapshot(session), nil
}

// DecrementItem removes one unit of the flavor; no-op when it is not in the cart.
func (s *CartService) DecrementItem(ctx context.Context, session, flavorName string) entity.Cart {
	_ = s.carts.With(session, func(cart *entity.Cart) error {
		cart.Decrement(flavorName)
		return nil
	})
	return s.carts.Snapshot(session)
}

// ApplyDiscount sets the cart discount; rejected outside [0, subtotal].
func (s *CartService) ApplyDiscount(ctx context.Context, session string, amount float64) (entity.Cart, error) {
	cents := int64(amount*100 + 0.5)
	if amount < 0 {
		cents = int64(amount*100 - 0.5)
	}

	err := s.carts.With(session, func(cart *entity.Cart) error {
		return cart.ApplyDiscount(cents)
	})
	if err != nil {
		if errors.Is(err, entity.ErrDiscountOutOfRange) {
			return entity.Cart{}, apperror.NewBadRequestError("Discount must be between 0 and the cart subtotal")
		}
		return entity.Cart{}, err
	}
	return s.carts.Snapshot(session), nil
}

// Clear empties the session's cart and resets its discount.
func (s *CartService) Clear(ctx context.Context, session string) {
	_ = s.carts.With(session, func(cart *entity.Cart) error {
		cart.Clear()
		return nil
	})
}
