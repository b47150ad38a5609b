package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ImageUpload carries an uploaded product image through the use case layer.
// A nil Content means no image was submitted.
type ImageUpload struct {
	Filename string
	Content  []byte
}

// ProductInput defines the data required to create or update a product.
type ProductInput struct {
	Name          string
	Price         float64
	StockQuantity int
	CategoryID    int64
	Image         *ImageUpload
}

// ProductDetail bundles a product with its reviews and mean rating, the
// rating rounded to one decimal place.
type ProductDetail struct {
	Product       *entity.Product
	Reviews       []*entity.Review
	AverageRating float64
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// Home returns the first few products of the catalog in ID order.
	Home(ctx context.Context) ([]*entity.Product, error)

	// List returns products filtered by a case-insensitive name substring.
	// An empty query returns everything.
	List(ctx context.Context, nameQuery string) ([]*entity.Product, error)

	// Get returns one product with its reviews and average rating.
	Get(ctx context.Context, id int64) (*ProductDetail, error)

	// Create adds a product. The image is optional; when one is supplied
	// its payload must be non-empty.
	Create(ctx context.Context, input ProductInput) (*entity.Product, error)

	// Update replaces a product's fields. When no new image is submitted
	// the stored image path is retained.
	Update(ctx context.Context, id int64, input ProductInput) (*entity.Product, error)

	// Delete removes a product row.
	Delete(ctx context.Context, id int64) error
}
