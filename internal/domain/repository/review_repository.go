package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// ListByProduct returns all reviews for a product in creation order.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)

	// Create persists a new review and backfills the generated ID.
	Create(ctx context.Context, review *entity.Review) error

	// AverageRating returns the unrounded mean rating for a product,
	// zero when the product has no reviews.
	AverageRating(ctx context.Context, productID int64) (float64, error)
}
