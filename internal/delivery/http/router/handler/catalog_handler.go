package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// productRequest is the payload for product create and update. Both arrive
// as multipart forms because of the optional image file.
type productRequest struct {
	Name          string  `json:"name" form:"name" validate:"required"`
	Price         float64 `json:"price" form:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" form:"stock_quantity" validate:"gte=0"`
	CategoryID    int64   `json:"category_id" form:"category_id"`
}

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Home returns the storefront landing selection.
func (h *CatalogHandler) Home(c echo.Context) error {
	products, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// List returns products filtered by the optional query parameter.
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get returns one product with its reviews and average rating.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product":        detail.Product,
		"reviews":        detail.Reviews,
		"average_rating": detail.AverageRating,
	}, "")
}

// Create adds a product from a multipart form.
func (h *CatalogHandler) Create(c echo.Context) error {
	input, err := h.bindProductInput(c)
	if err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update replaces a product's fields from a multipart form.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	input, err := h.bindProductInput(c)
	if err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), id, *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete removes a product.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted")
}

// bindProductInput binds the form fields and the optional image file.
func (h *CatalogHandler) bindProductInput(c echo.Context) (*usecase.ProductInput, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	input := &usecase.ProductInput{
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image part in the form; the use case decides whether that is allowed.
		return input, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, domainerrors.ErrImageSaveFailed.WrapMessage(err.Error())
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, domainerrors.ErrImageSaveFailed.WrapMessage(err.Error())
	}

	input.Image = &usecase.ImageUpload{
		Filename: fileHeader.Filename,
		Content:  content,
	}

	return input, nil
}

func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid id parameter")
	}

	return id, nil
}
