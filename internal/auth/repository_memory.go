package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryMerchantRepository struct {
	merchants map[string]*Merchant
}

func NewInMemoryMerchantRepository() *InMemoryMerchantRepository {
	return &InMemoryMerchantRepository{
		merchants: make(map[string]*Merchant),
	}
}

func (r *InMemoryMerchantRepository) Save(merchant *Merchant) error {
	if merchant.ID == "" {
		merchant.ID = uuid.New().String()
	}
	r.merchants[merchant.Email] = merchant
	return nil
}

func (r *InMemoryMerchantRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.merchants[email]
	return exists, nil
}

func (r *InMemoryMerchantRepository) FindByEmail(email string) (*Merchant, error) {
	merchant, ok := r.merchants[email]
	if !ok {
		return nil, errors.New("merchant not found")
	}
	return merchant, nil
}
