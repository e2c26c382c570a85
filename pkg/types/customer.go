package types

import "time"

// Customer represents a buyer profile. Email is optional but unique when
// present; a nil Email never collides with another nil Email.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
