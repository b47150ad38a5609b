package middleware

import (
	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// customerContextKey is the echo context key holding the authenticated customer.
const customerContextKey = "customer"

// AuthMiddleware provides middleware for cookie based authentication and
// authorization. The auth token travels in an HTTP-only cookie rather than
// an Authorization header.
type AuthMiddleware struct {
	accounts   usecase.AccountUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		accounts:   accounts,
		cookieName: cfg.Auth.CookieName,
	}
}

// RequireAuth validates the auth cookie and stores the resolved customer on
// the context. A missing, invalid or expired cookie rejects the request.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthorized
		}

		customer, err := m.accounts.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(customerContextKey, customer)

		return next(c)
	}
}

// RequireAdmin rejects authenticated customers without the admin flag.
// It must be used AFTER RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		customer := CurrentCustomer(c)
		if customer == nil {
			return domainerrors.ErrUnauthorized
		}
		if !customer.IsAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// CurrentCustomer returns the customer set by RequireAuth, nil when the
// request is unauthenticated.
func CurrentCustomer(c echo.Context) *entity.Customer {
	customer, ok := c.Get(customerContextKey).(*entity.Customer)
	if !ok {
		return nil
	}

	return customer
}
