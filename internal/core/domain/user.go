package domain

import "time"

// Role is an enumerated authorization tier attached to a user and
// snapshotted into each session at login.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a raw role string against the known tiers.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// User models a storefront account. Email is the unique key (stored
// normalized: trimmed and lowercased). PasswordDigest is the opaque hashed
// credential; the plaintext is never persisted. CreatedAt is set once by the
// service and never mutated afterwards.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	PasswordDigest string    `json:"-"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	Address        string    `json:"address,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
