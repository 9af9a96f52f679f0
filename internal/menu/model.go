package menu

// Restaurant is the upstream restaurant metadata served alongside the menu.
type Restaurant struct {
	Name            string            `json:"name"`
	Phone           string            `json:"phone,omitempty"`
	Email           string            `json:"email,omitempty"`
	Address         string            `json:"address,omitempty"`
	Hours           map[string]string `json:"hours,omitempty"`
	Social          map[string]string `json:"social,omitempty"`
	AcceptingOrders bool              `json:"accepting_orders"`
	MenuID          string            `json:"menu_id"`
}

// Section is one menu section (Smash Burgers, Sides, Drinks, Deals...).
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
