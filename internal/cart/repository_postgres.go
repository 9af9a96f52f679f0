package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// persistedCart is the durable cart shape: the lines are the only field
// carried across sessions.
type persistedCart struct {
	CartItems []Line `json:"cartItems"`
}

func (r *PostgresStore) SaveCart(ctx context.Context, cartID string, lines []Line) error {
	doc, err := json.Marshal(persistedCart{CartItems: lines})
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO carts (id, contents, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (id)
		DO UPDATE SET contents = $2, updated_at = CURRENT_TIMESTAMP
	`, cartID, doc)
	return err
}

func (r *PostgresStore) LoadCart(ctx context.Context, cartID string) ([]Line, bool, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `
		SELECT contents FROM carts WHERE id = $1
	`, cartID).Scan(&doc)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var persisted persistedCart
	if err := json.Unmarshal(doc, &persisted); err != nil {
		return nil, false, err
	}
	return persisted.CartItems, true, nil
}
