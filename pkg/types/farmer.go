package types

import "time"

// Farmer represents a seller profile. A farmer owns zero or more products
// through Product.FarmerID.
type Farmer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
