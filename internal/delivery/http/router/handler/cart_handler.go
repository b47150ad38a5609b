package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cartItemResponse is one resolved line of the cart.
type cartItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// cartResponse is the resolved cart with its running total.
type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

// CartHandler holds dependencies for session cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	store  *session.CartStore
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, store *session.CartStore, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		store:  store,
		logger: logger,
	}
}

// Add puts one more unit of the product into the session cart.
func (h *CartHandler) Add(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	cart, err := h.store.Get(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err = h.uc.AddItem(c.Request().Context(), cart, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.store.Save(c, cart); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product_id": productID,
		"quantity":   cart.Quantity(productID),
	}, "Added to cart")
}

// View resolves the session cart against the catalog.
func (h *CartHandler) View(c echo.Context) error {
	cart, err := h.store.Get(c)
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.View(c.Request().Context(), cart)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(view), "")
}

// Clear drops the cart from the session.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.store.Clear(c); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "Cart cleared")
}

func toCartResponse(view *usecase.CartView) cartResponse {
	resp := cartResponse{
		Items: make([]cartItemResponse, 0, len(view.Items)),
		Total: view.Total,
	}
	for _, item := range view.Items {
		resp.Items = append(resp.Items, cartItemResponse{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Product.Price * float64(item.Quantity),
		})
	}

	return resp
}
