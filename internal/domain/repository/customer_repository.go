// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByEmail retrieves a single customer by email. The match is
	// case-insensitive so login and duplicate checks behave identically
	// regardless of the store's collation.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Create persists a new customer and backfills the generated ID.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer record.
	Update(ctx context.Context, customer *entity.Customer) error
}
