package repository

import (
	"context"

	"github.com/mercadito/storefront/internal/domain"
)

type CatalogRepository interface {
	GetProducts(ctx context.Context) []domain.Product
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
}
