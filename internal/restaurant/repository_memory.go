package restaurant

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	settings Settings
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		settings: Settings{AcceptingOrders: true, UpdatedAt: time.Now()},
	}
}

func (r *InMemoryRepository) Get(ctx context.Context) (*Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.settings
	return &s, nil
}

func (r *InMemoryRepository) SetAcceptingOrders(ctx context.Context, accepting bool, updatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.AcceptingOrders = accepting
	r.settings.UpdatedAt = time.Now()
	r.settings.UpdatedBy = updatedBy
	return nil
}
