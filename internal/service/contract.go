package service

import (
	"context"

	"github.com/mercadito/storefront/internal/domain"
	"github.com/mercadito/storefront/internal/dto"
	pkgdto "github.com/mercadito/storefront/pkg/dto"
)

type CatalogService interface {
	GetProducts(ctx context.Context, criteria pkgdto.Criteria) (responsePayload dto.ProductListResponse, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
}
