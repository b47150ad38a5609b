package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// reviewRequest is the payload for submitting a review. The rating range is
// not constrained server-side; whatever integer the client sends is stored.
// Form clients always send the comment field, so an absent comment and an
// empty one are indistinguishable here and both are stored as "".
type reviewRequest struct {
	Rating  int    `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
}

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add records a review on behalf of the authenticated customer.
func (h *ReviewHandler) Add(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	customer := middleware.CurrentCustomer(c)
	if customer == nil {
		return domainerrors.ErrUnauthorized
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid review input")
	}

	review, err := h.uc.Add(c.Request().Context(), usecase.AddReviewInput{
		ProductID:  productID,
		CustomerID: customer.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review added")
}
