package ports

import (
	"context"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the product catalog
// snapshot. Products are reference data owned by an external catalog; the
// capacity core never writes them.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the whole catalog snapshot, keyed by product id.
	// The weight estimator resolves order lines against this map.
	GetAll(ctx context.Context) (map[kernel.UUID]*product.Product, error)
}
