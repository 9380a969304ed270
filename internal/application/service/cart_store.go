package service

import (
	"sync"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
)

// CartStore holds the in-flight cart of each register session. Carts are
// ephemeral checkout state and never touch the database; the store exists so
// cart and checkout services share the same session-scoped carts instead of
// process-wide globals. The mutex covers the map and the carts it holds.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*entity.Cart)}
}

// With runs fn against the session's cart, creating it on first use.
func (s *CartStore) With(session string, fn func(cart *entity.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[session]
	if !ok {
		cart = &entity.Cart{}
		s.carts[session] = cart
	}
	return fn(cart)
}

// Snapshot returns a copy of the session's cart for read-only use.
func (s *CartStore) Snapshot(session string) entity.Cart {
	var copied entity.Cart
	_ = s.With(session, func(cart *entity.Cart) error {
		copied = *cart
		copied.Lines = append([]entity.CartLine(nil), cart.Lines...)
		return nil
	})
	return copied
}

// Reset discards every session's cart (system reset).
func (s *CartStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts = make(map[string]*entity.Cart)
}
