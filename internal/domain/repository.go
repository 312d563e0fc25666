package domain

import "context"

// PageFetcher defines the interface for retrieving a product page's HTML
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ModelClient defines the interface for the generative language model.
// Implementations with no configured credential must return
// ErrModelNotConfigured without performing any network call.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProductRepository defines the interface for the read-only demo catalog
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
}
