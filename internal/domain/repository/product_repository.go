package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List returns products whose name contains nameQuery, matched
	// case-insensitively. An empty query returns the full catalog.
	// Result sets are unbounded by design.
	List(ctx context.Context, nameQuery string) ([]*entity.Product, error)

	// ListFirst returns up to limit products in ID order.
	ListFirst(ctx context.Context, limit int) ([]*entity.Product, error)

	// Create persists a new product and backfills the generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product row. Associated reviews and image files are
	// left behind on purpose.
	Delete(ctx context.Context, id int64) error
}
