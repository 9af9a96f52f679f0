package auth

// Merchant is the domain entity: a staff account that manages the
// storefront (order toggle, item images).
type Merchant struct {
	ID       string
	Name     string
	Email    string
	Password string
}
