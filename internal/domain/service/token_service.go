package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the verified content of an auth token.
type Claims struct {
	CustomerID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed
// auth token carried by the HTTP-only cookie. Tokens are stateless: there is
// no server-side revocation list, so a token stays valid until expiry even
// after logout.
type TokenService interface {
	// GenerateToken creates a signed token embedding the customer ID and an
	// expiry TokenTTL from now.
	GenerateToken(customerID int64) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
