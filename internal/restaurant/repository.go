package restaurant

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	SetAcceptingOrders(ctx context.Context, accepting bool, updatedBy string) error
}
