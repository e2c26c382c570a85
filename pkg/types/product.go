package types

import "time"

// Product represents a listed item for sale. FarmerID links the product
// to its seller; a nil FarmerID means the listing is unattributed.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	FarmerID    *int64    `json:"farmer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
