// Package entity contains the core business objects of the project.
package entity

// Cart is the session-scoped shopping cart: a mapping from product ID to a
// positive quantity. It is a value object that only ever lives inside the
// session cookie, never in the relational store. All mutation goes through
// the accessor methods so quantities can never go non-positive.
type Cart struct {
	items map[int64]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[int64]int)}
}

// CartFromItems rebuilds a cart from a deserialized quantity map, dropping
// entries with non-positive quantities. The input map is copied.
func CartFromItems(items map[int64]int) *Cart {
	cart := NewCart()
	for productID, quantity := range items {
		if quantity > 0 {
			cart.items[productID] = quantity
		}
	}

	return cart
}

// Add increments the quantity for the given product by one, creating the
// entry lazily on first add.
func (c *Cart) Add(productID int64) {
	if c.items == nil {
		c.items = make(map[int64]int)
	}
	c.items[productID]++
}

// Quantity returns the current quantity for a product, zero if absent.
func (c *Cart) Quantity(productID int64) int {
	return c.items[productID]
}

// Items returns a copy of the quantity map.
func (c *Cart) Items() map[int64]int {
	items := make(map[int64]int, len(c.items))
	for productID, quantity := range c.items {
		items[productID] = quantity
	}

	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.items = make(map[int64]int)
}
