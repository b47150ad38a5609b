package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddReviewInput defines the data required to submit a product review.
type AddReviewInput struct {
	ProductID  int64
	CustomerID int64
	Rating     int
	Comment    string
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	// Add records a review for an existing product on behalf of the
	// authenticated customer.
	Add(ctx context.Context, input AddReviewInput) (*entity.Review, error)
}
