package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// ListByProduct returns all reviews for a product in creation order.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var reviewMs []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, reviewMs[i].ToEntity())
	}

	return reviews, nil
}

// Create persists a new review and backfills the generated ID.
// A zero review date defaults to the current time.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := model.ReviewModelFromEntity(review)
	reviewM.ID = 0
	if reviewM.ReviewDate.IsZero() {
		reviewM.ReviewDate = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.ReviewDate = reviewM.ReviewDate

	return nil
}

// AverageRating returns the unrounded mean rating for a product, zero when
// the product has no reviews.
func (repo *reviewRepository) AverageRating(ctx context.Context, productID int64) (float64, error) {
	var avg float64
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return avg, nil
}
