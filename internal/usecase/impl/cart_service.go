package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem increments the product's quantity after checking it exists.
func (srv *cartService) AddItem(ctx context.Context, cart *entity.Cart, productID int64) (*entity.Cart, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	if cart == nil {
		cart = entity.NewCart()
	}
	cart.Add(productID)

	srv.log(ctx).Debug("Cart item added",
		slog.Int64("productID", productID),
		slog.Int("quantity", cart.Quantity(productID)),
	)

	return cart, nil
}

// View resolves cart entries to product snapshots in ID order. Entries
// whose product disappeared from the catalog are skipped rather than
// failing the whole view.
func (srv *cartService) View(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	view := &usecase.CartView{Items: []*usecase.CartItem{}}
	if cart == nil || cart.IsEmpty() {
		return view, nil
	}

	items := cart.Items()
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		product, err := srv.productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Skipping cart entry for missing product", slog.Int64("productID", id))

				continue
			}

			return nil, err
		}

		quantity := items[id]
		view.Items = append(view.Items, &usecase.CartItem{Product: product, Quantity: quantity})
		view.Total += product.Price * float64(quantity)
	}

	return view, nil
}
