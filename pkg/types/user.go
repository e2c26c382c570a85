package types

import "time"

// User roles. The role decides which marketplace operations an account may
// perform: farmers list products, customers buy them, admins do both plus
// account management.
const (
	RoleAdmin    = "admin"
	RoleFarmer   = "farmer"
	RoleCustomer = "customer"
)

// validRoles is the set of recognized role values.
var validRoles = map[string]bool{
	RoleAdmin:    true,
	RoleFarmer:   true,
	RoleCustomer: true,
}

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	return validRoles[role]
}

// User represents a marketplace account. PasswordHash holds the bcrypt
// hash of the password; the clear text is never stored.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetRole sets the user role to the given value.
// Returns ErrInvalidRole if the role is not recognized.
func (u *User) SetRole(role string) error {
	if !ValidRole(role) {
		return ErrInvalidRole
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}
