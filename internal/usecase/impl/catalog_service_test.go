package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *fakeProductRepo
	reviewRepo  *fakeReviewRepo
	imageStore  *fakeImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	productRepo := &fakeProductRepo{}
	reviewRepo := &fakeReviewRepo{}
	imageStore := &fakeImageStore{
		save: func(ctx context.Context, filename string, content []byte) (string, error) {
			return "/uploads/1_" + filename, nil
		},
	}

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ReviewRepo:  reviewRepo,
		ImageStore:  imageStore,
		Logger:      discardLogger(t),
	})

	return catalogServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		imageStore:  imageStore,
	}
}

func TestCatalogService_HomeLimit(t *testing.T) {
	f := createTestCatalogService(t)

	var gotLimit int
	f.productRepo.listFirst = func(ctx context.Context, limit int) ([]*entity.Product, error) {
		gotLimit = limit

		return []*entity.Product{{ID: 1}, {ID: 2}}, nil
	}

	products, err := f.service.Home(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, homeProductLimit, gotLimit)
}

func TestCatalogService_GetRoundsAverage(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.findByID = func(ctx context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id, Name: "Mug"}, nil
	}
	f.reviewRepo.listByProduct = func(ctx context.Context, productID int64) ([]*entity.Review, error) {
		return []*entity.Review{{Rating: 4}, {Rating: 5}, {Rating: 4}}, nil
	}
	f.reviewRepo.averageRating = func(ctx context.Context, productID int64) (float64, error) {
		return 4.333333, nil
	}

	detail, err := f.service.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4.3, detail.AverageRating)
	assert.Len(t, detail.Reviews, 3)
}

func TestCatalogService_GetWithoutReviews(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.findByID = func(ctx context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id}, nil
	}
	f.reviewRepo.listByProduct = func(ctx context.Context, productID int64) ([]*entity.Review, error) {
		return nil, nil
	}
	f.reviewRepo.averageRating = func(ctx context.Context, productID int64) (float64, error) {
		return 0, nil
	}

	detail, err := f.service.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.AverageRating)
}

func TestCatalogService_GetNotFound(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.findByID = func(ctx context.Context, id int64) (*entity.Product, error) {
		return nil, repository.ErrProductNotFound
	}

	detail, err := f.service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, detail)
}

func TestCatalogService_Create(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.create = func(ctx context.Context, product *entity.Product) error {
		product.ID = 5

		return nil
	}

	product, err := f.service.Create(context.Background(), usecase.ProductInput{
		Name:          "Mug",
		Price:         9.5,
		StockQuantity: 10,
		CategoryID:    2,
		Image:         &usecase.ImageUpload{Filename: "mug.png", Content: []byte("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), product.ID)
	assert.Equal(t, "/uploads/1_mug.png", product.Image)
}

func TestCatalogService_CreateWithoutImage(t *testing.T) {
	f := createTestCatalogService(t)

	saved := false
	f.imageStore.save = func(ctx context.Context, filename string, content []byte) (string, error) {
		saved = true

		return "", nil
	}
	f.productRepo.create = func(ctx context.Context, product *entity.Product) error {
		product.ID = 6

		return nil
	}

	product, err := f.service.Create(context.Background(), usecase.ProductInput{
		Name:          "Widget",
		Price:         1,
		StockQuantity: 5,
		CategoryID:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), product.ID)
	assert.Empty(t, product.Image)
	assert.False(t, saved)
}

func TestCatalogService_CreateImageFailureAbortsInsert(t *testing.T) {
	f := createTestCatalogService(t)
	f.imageStore.save = func(ctx context.Context, filename string, content []byte) (string, error) {
		return "", domainerrors.ErrEmptyImage
	}

	created := false
	f.productRepo.create = func(ctx context.Context, product *entity.Product) error {
		created = true

		return nil
	}

	_, err := f.service.Create(context.Background(), usecase.ProductInput{
		Name:  "Mug",
		Image: &usecase.ImageUpload{Filename: "mug.png"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyImage)
	assert.False(t, created)
}

func TestCatalogService_UpdateKeepsImageWithoutUpload(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.findByID = func(ctx context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id, Name: "Mug", Image: "/uploads/old.png"}, nil
	}

	var updated *entity.Product
	f.productRepo.update = func(ctx context.Context, product *entity.Product) error {
		updated = product

		return nil
	}

	product, err := f.service.Update(context.Background(), 5, usecase.ProductInput{
		Name:          "Big Mug",
		Price:         12,
		StockQuantity: 3,
		CategoryID:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/old.png", product.Image)
	assert.Equal(t, "Big Mug", updated.Name)
}

func TestCatalogService_UpdateReplacesImage(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.findByID = func(ctx context.Context, id int64) (*entity.Product, error) {
		return &entity.Product{ID: id, Image: "/uploads/old.png"}, nil
	}
	f.productRepo.update = func(ctx context.Context, product *entity.Product) error {
		return nil
	}

	product, err := f.service.Update(context.Background(), 5, usecase.ProductInput{
		Name:  "Mug",
		Image: &usecase.ImageUpload{Filename: "new.png", Content: []byte("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1_new.png", product.Image)
}

func TestCatalogService_UpdateNotFound(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.findByID = func(ctx context.Context, id int64) (*entity.Product, error) {
		return nil, repository.ErrProductNotFound
	}

	product, err := f.service.Update(context.Background(), 99, usecase.ProductInput{Name: "Mug"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, product)
}

func TestCatalogService_Delete(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.delete = func(ctx context.Context, id int64) error {
		return nil
	}

	assert.NoError(t, f.service.Delete(context.Background(), 5))
}

func TestCatalogService_DeleteNotFound(t *testing.T) {
	f := createTestCatalogService(t)
	f.productRepo.delete = func(ctx context.Context, id int64) error {
		return repository.ErrProductNotFound
	}

	assert.ErrorIs(t, f.service.Delete(context.Background(), 99), domainerrors.ErrProductNotFound)
}
