package auth

// MerchantRepository defines the data-access contract.
// Service depends ONLY on this interface.
type MerchantRepository interface {
	Save(merchant *Merchant) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*Merchant, error)
}
