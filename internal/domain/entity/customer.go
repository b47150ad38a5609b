// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Customer is the identity and authentication record for a shopper or admin.
// The email address doubles as the login identifier and is matched
// case-insensitively at login time.
type Customer struct {
	ID             int64  // Serial primary key assigned by the store.
	Name           string // Display name supplied at registration.
	Email          string // Unique contact email, used as the login identifier.
	Phone          string // Optional contact phone number.
	Address        string // Optional postal address.
	HashedPassword string // Argon2id hash; the plaintext password is never stored.
	IsAdmin        bool   // Grants catalog management rights.
	IsActive       bool   // Inactive customers may not authenticate.
	IsSuperuser    bool
	IsVerified     bool
}

// CanAuthenticate reports whether this customer is allowed to log in.
func (c *Customer) CanAuthenticate() bool {
	return c != nil && c.IsActive
}
