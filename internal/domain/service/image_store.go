package service

import "context"

// ImageStore defines the interface for persisting uploaded product images.
// Save writes the payload under a name derived from the original filename
// and returns the public path to store on the product. Old images are never
// removed on replacement.
type ImageStore interface {
	// Save writes content and returns the public relative path.
	// An empty payload is rejected.
	Save(ctx context.Context, filename string, content []byte) (string, error)
}
