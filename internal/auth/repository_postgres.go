package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMerchantRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMerchantRepository(db *pgxpool.Pool) *PostgresMerchantRepository {
	return &PostgresMerchantRepository{db: db}
}

func (r *PostgresMerchantRepository) Save(merchant *Merchant) error {
	if merchant.ID == "" {
		merchant.ID = uuid.New().String()
	}

	query := `
		INSERT INTO merchants (id, name, email, password)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(context.Background(), query,
		merchant.ID, merchant.Name, merchant.Email, merchant.Password,
	)
	return err
}

func (r *PostgresMerchantRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM merchants WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresMerchantRepository) FindByEmail(email string) (*Merchant, error) {
	query := `
		SELECT id, name, email, password
		FROM merchants WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	merchant := &Merchant{}
	if err := row.Scan(&merchant.ID, &merchant.Name, &merchant.Email, &merchant.Password); err != nil {
		return nil, errors.New("merchant not found")
	}
	return merchant, nil
}
