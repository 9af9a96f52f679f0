package restaurant

import "time"

// Settings is the locally owned slice of restaurant state: whether the
// kitchen is taking orders right now. Menu content and opening hours come
// from the upstream menu source.
type Settings struct {
	AcceptingOrders bool      `json:"accepting_orders"`
	UpdatedAt       time.Time `json:"updated_at"`
	UpdatedBy       string    `json:"-"`
}
