package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productM.ToEntity(), nil
}

// List returns products whose name contains nameQuery, case-insensitively.
// An empty query returns the full catalog in ID order.
func (repo *productRepository) List(ctx context.Context, nameQuery string) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if nameQuery != "" {
		query = query.Where("name ILIKE ?", "%"+nameQuery+"%")
	}

	var productMs []model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductEntities(productMs), nil
}

// ListFirst returns up to limit products in ID order.
func (repo *productRepository) ListFirst(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list first products")
	}

	return toProductEntities(productMs), nil
}

// Create persists a new product entity and backfills the generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := model.ProductModelFromEntity(product)
	productM.ID = 0

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// Update modifies an existing product record.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := model.ProductModelFromEntity(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":           productM.Name,
			"price":          productM.Price,
			"stock_quantity": productM.StockQuantity,
			"category_id":    productM.CategoryID,
			"image":          productM.Image,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product row. Reviews and image files are left behind.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductEntities(productMs []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, productMs[i].ToEntity())
	}

	return products
}
