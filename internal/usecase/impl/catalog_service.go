package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// homeProductLimit caps the storefront landing selection.
const homeProductLimit = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home returns the first products of the catalog in ID order.
func (srv *catalogService) Home(ctx context.Context) ([]*entity.Product, error) {
	return srv.productRepo.ListFirst(ctx, homeProductLimit)
}

// List returns products filtered by a case-insensitive name substring.
func (srv *catalogService) List(ctx context.Context, nameQuery string) ([]*entity.Product, error) {
	return srv.productRepo.List(ctx, nameQuery)
}

// Get returns one product together with its reviews and the mean rating
// rounded to one decimal place.
func (srv *catalogService) Get(ctx context.Context, id int64) (*usecase.ProductDetail, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	avg, err := srv.reviewRepo.AverageRating(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ProductDetail{
		Product:       product,
		Reviews:       reviews,
		AverageRating: math.Round(avg*10) / 10,
	}, nil
}

// Create adds a product. The image is optional; when one is supplied it is
// written to the store before the row is inserted, so an insert failure
// leaves the file behind. Without an image the row is created with an
// empty image path.
func (srv *catalogService) Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	var imagePath string
	if input.Image != nil {
		var err error
		imagePath, err = srv.imageStore.Save(ctx, input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, err
		}
	}

	product := &entity.Product{
		Name:          input.Name,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
		Image:         imagePath,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.ErrProductCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Product created",
		slog.Int64("productID", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// Update replaces a product's fields. Without a new image the stored image
// path is retained; a replaced image file is never removed from disk.
func (srv *catalogService) Update(ctx context.Context, id int64, input usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	imagePath := product.Image
	if input.Image != nil {
		imagePath, err = srv.imageStore.Save(ctx, input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, err
		}
	}

	product.Name = input.Name
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.CategoryID = input.CategoryID
	product.Image = imagePath

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.ErrProductUpdateFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", product.ID))

	return product, nil
}

// Delete removes a product row. Reviews and image files stay behind.
func (srv *catalogService) Delete(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}
