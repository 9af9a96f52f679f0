package restaurant

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*Settings, error) {
	settings := &Settings{}
	err := r.db.QueryRow(ctx, `
		SELECT accepting_orders, updated_at
		FROM restaurant_settings
		WHERE id = 1
	`).Scan(&settings.AcceptingOrders, &settings.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *PostgresRepository) SetAcceptingOrders(ctx context.Context, accepting bool, updatedBy string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE restaurant_settings
		SET accepting_orders = $1,
		    updated_at = CURRENT_TIMESTAMP,
		    updated_by = $2
		WHERE id = 1
	`, accepting, updatedBy)
	return err
}
