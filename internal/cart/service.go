package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrCartNotFound = errors.New("cart not found")

// Service owns the live ledgers, one per cart id, restoring persisted carts
// on first access.
type Service struct {
	mu      sync.Mutex
	store   Store
	ledgers map[string]*Ledger
}

func NewService(store Store) *Service {
	return &Service{
		store:   store,
		ledgers: make(map[string]*Ledger),
	}
}

// Create opens a fresh empty cart.
func (s *Service) Create() *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := NewLedger(uuid.New().String(), s.store)
	s.ledgers[ledger.CartID()] = ledger
	return ledger
}

// Get returns the live ledger for a cart id, loading persisted contents if
// this process has not seen the cart yet.
func (s *Service) Get(ctx context.Context, cartID string) (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ledger, ok := s.ledgers[cartID]; ok {
		return ledger, nil
	}

	if s.store != nil {
		lines, found, err := s.store.LoadCart(ctx, cartID)
		if err != nil {
			return nil, err
		}
		if found {
			ledger := NewLedgerWithLines(cartID, lines, s.store)
			s.ledgers[cartID] = ledger
			return ledger, nil
		}
	}

	return nil, ErrCartNotFound
}
