package catalog

import "context"

// Store holds the product catalog.
type Store interface {
	// List returns all products in identifier order.
	List(ctx context.Context) ([]Product, error)
	// Create validates in, assigns the next identifier and stores the product.
	Create(ctx context.Context, in NewProduct) (Product, error)
	// Update replaces the fields present in patch. Unknown ids yield a not-found error.
	Update(ctx context.Context, id int64, patch Patch) (Product, error)
	// Delete removes the product; deleting an unknown id is not an error.
	Delete(ctx context.Context, id int64) error
}
