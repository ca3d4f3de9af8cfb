package repository

import (
	"context"

	"github.com/mercadito/storefront/internal/domain"
	"github.com/mercadito/storefront/pkg/errs"
)

// MemoryCatalogRepository serves the fixed catalog table. The table is built
// once at construction and only ever read afterwards, so it is safe for
// concurrent requests without locking.
type MemoryCatalogRepository struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func CreateNewCatalogRepository() CatalogRepository {
	products := seedCatalog()

	byID := make(map[string]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return &MemoryCatalogRepository{products: products, byID: byID}
}

// GetProducts returns a copy of the catalog in its natural order. Callers may
// filter and reorder the returned slice freely.
func (r *MemoryCatalogRepository) GetProducts(ctx context.Context) []domain.Product {
	snapshot := make([]domain.Product, len(r.products))
	copy(snapshot, r.products)

	return snapshot
}

func (r *MemoryCatalogRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}

	return product, nil
}
