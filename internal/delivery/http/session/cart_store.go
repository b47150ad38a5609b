// Package session keeps the shopping cart in the client's signed session
// cookie. The cart never touches the database; clearing the session is the
// only way to empty it.
package session

import (
	"encoding/gob"

	"storefront/internal/domain/entity"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	sessionName = "session"
	cartKey     = "cart"
)

func init() {
	// The cart map must be registered for the cookie store's gob codec.
	gob.Register(map[int64]int{})
}

// CartStore reads and writes the cart through the echo session middleware.
type CartStore struct{}

// NewCartStore is the constructor for CartStore.
func NewCartStore() *CartStore {
	return &CartStore{}
}

// Get returns the cart held in the request's session. A missing or
// malformed value yields an empty cart.
func (s *CartStore) Get(c echo.Context) (*entity.Cart, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}

	items, ok := sess.Values[cartKey].(map[int64]int)
	if !ok {
		return entity.NewCart(), nil
	}

	return entity.CartFromItems(items), nil
}

// Save writes the cart back into the session cookie.
func (s *CartStore) Save(c echo.Context, cart *entity.Cart) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return errors.Wrap(err, "failed to read session")
	}

	sess.Values[cartKey] = cart.Items()
	sess.Options = sessionOptions()

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Clear drops the cart from the session cookie.
func (s *CartStore) Clear(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return errors.Wrap(err, "failed to read session")
	}

	delete(sess.Values, cartKey)
	sess.Options = sessionOptions()

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

func sessionOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		HttpOnly: true,
	}
}
