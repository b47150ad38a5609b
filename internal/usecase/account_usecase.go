// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created customer's basic information.
type RegisterOutput struct {
	Customer *entity.Customer
}

// LoginOutput returns the signed auth token after a successful login.
type LoginOutput struct {
	Token    string
	Customer *entity.Customer
}

// AccountUsecase defines the interface for customer account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new customer account. The email must not already
	// be registered, compared case-insensitively.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a signed auth token. Unknown
	// email, inactive account and wrong password all surface the same
	// invalid-credentials error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate resolves a token string to the active customer it was
	// issued to.
	Authenticate(ctx context.Context, token string) (*entity.Customer, error)

	// BootstrapAdmin creates the configured admin account when no account
	// with its email exists yet.
	BootstrapAdmin(ctx context.Context) (*entity.Customer, error)
}
