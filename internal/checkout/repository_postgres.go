package checkout

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	payload, err := json.Marshal(order.Request)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id,
			cart_id,
			payload,
			client_secret,
			amount,
			currency,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`,
		order.ID,
		order.CartID,
		payload,
		order.ClientSecret,
		order.Amount,
		order.Currency,
		order.Status,
	).Scan(&order.CreatedAt)
}

func (r *PostgresOrderRepository) MarkCompleted(ctx context.Context, cartID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = 'COMPLETED'
		WHERE cart_id = $1 AND status = 'PENDING'
	`, cartID)
	return err
}
