// Package entity contains the core business objects of the project.
package entity

import "time"

// Review is customer feedback attached to a product. Ratings are expected
// to be 1-5 but are deliberately not validated here, and a customer may
// post any number of reviews for the same product.
type Review struct {
	ID         int64
	ProductID  int64
	CustomerID int64
	Rating     int
	Comment    string
	ReviewDate time.Time // Defaults to the creation time when persisted.
}
