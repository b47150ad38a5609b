// Package entity contains the core business objects of the project.
package entity

// Product is a single catalog item. The Image field holds the public
// relative path of an uploaded asset ("/uploads/<name>") or is empty when
// no image was supplied. Categories live in an external entity and are
// referenced by ID only.
type Product struct {
	ID            int64
	Name          string
	Price         float64 // Non-negative, in main currency units.
	StockQuantity int     // Non-negative.
	CategoryID    int64   // Required reference to an external category.
	Image         string  // Optional public path of the uploaded image.
}

// HasImage reports whether an image path has been attached to the product.
func (p *Product) HasImage() bool {
	return p != nil && p.Image != ""
}
