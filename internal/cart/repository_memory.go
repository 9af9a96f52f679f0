package cart

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Line
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{carts: make(map[string][]Line)}
}

func (r *InMemoryStore) SaveCart(ctx context.Context, cartID string, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cartID] = append([]Line(nil), lines...)
	return nil
}

func (r *InMemoryStore) LoadCart(ctx context.Context, cartID string) ([]Line, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines, ok := r.carts[cartID]
	return append([]Line(nil), lines...), ok, nil
}
