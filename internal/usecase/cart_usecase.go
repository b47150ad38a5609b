package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartItem pairs a product snapshot with the quantity held in the cart.
type CartItem struct {
	Product  *entity.Product
	Quantity int
}

// CartView is the resolved cart: line items in product ID order plus the
// running total. Items whose product has since been deleted are skipped.
type CartView struct {
	Items []*CartItem
	Total float64
}

// CartUsecase defines the interface for session cart operations. The cart
// itself lives in the caller's session cookie; these operations validate
// and resolve it against the catalog.
type CartUsecase interface {
	// AddItem increments the product's quantity in the cart after checking
	// the product exists. The mutated cart is returned for re-persisting.
	AddItem(ctx context.Context, cart *entity.Cart, productID int64) (*entity.Cart, error)

	// View resolves cart entries to product snapshots and totals them.
	View(ctx context.Context, cart *entity.Cart) (*CartView, error)
}
