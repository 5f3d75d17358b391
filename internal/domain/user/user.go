package user

import "time"

// Role is the closed set of session roles.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleReceptionist Role = "Receptionist"
	RoleCustomer     Role = "Customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleCustomer:
		return true
	}
	return false
}

// Account is a stored login for one role.
type Account struct {
	Role         Role
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
