package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mercadito/storefront/config"
	"github.com/mercadito/storefront/internal/domain"
	"github.com/mercadito/storefront/internal/dto"
	"github.com/mercadito/storefront/internal/repository"
	pkgdto "github.com/mercadito/storefront/pkg/dto"
)

type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepository
	config      config.Config
}

func CreateCatalogService(catalogRepo repository.CatalogRepository, config config.Config) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo, config: config}
}

// GetProducts applies the filter stages in a fixed order (category, text,
// min price, max price) and then sorts. Each stage is optional; an
// unparseable price bound disables that bound rather than failing the query.
func (s *CatalogServiceImpl) GetProducts(ctx context.Context, criteria pkgdto.Criteria) (responsePayload dto.ProductListResponse, err error) {
	items := s.catalogRepo.GetProducts(ctx)

	items = filterByCategory(items, criteria.Category)
	items = filterByTerm(items, criteria.Q)
	items = filterByMinPrice(items, criteria.MinPrice)
	items = filterByMaxPrice(items, criteria.MaxPrice)
	sortProducts(items, criteria.Sort)

	responsePayload.Items = items
	responsePayload.Total = len(items)
	return
}

func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.catalogRepo.GetProductByID(ctx, id)
}

func filterByCategory(items []domain.Product, category string) []domain.Product {
	if category == "" {
		return items
	}

	kept := items[:0]
	for _, item := range items {
		if item.Category == category {
			kept = append(kept, item)
		}
	}

	return kept
}

func filterByTerm(items []domain.Product, term string) []domain.Product {
	if term == "" {
		return items
	}

	term = strings.ToLower(term)
	kept := items[:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			kept = append(kept, item)
		}
	}

	return kept
}

func filterByMinPrice(items []domain.Product, raw string) []domain.Product {
	if raw == "" {
		return items
	}

	min, err := decimal.NewFromString(raw)
	if err != nil {
		// Unparseable bound: the filter is not applied.
		return items
	}

	kept := items[:0]
	for _, item := range items {
		if item.Price.GreaterThanOrEqual(min) {
			kept = append(kept, item)
		}
	}

	return kept
}

func filterByMaxPrice(items []domain.Product, raw string) []domain.Product {
	if raw == "" {
		return items
	}

	max, err := decimal.NewFromString(raw)
	if err != nil {
		return items
	}

	kept := items[:0]
	for _, item := range items {
		if item.Price.LessThanOrEqual(max) {
			kept = append(kept, item)
		}
	}

	return kept
}

// sortProducts orders items in place. Unknown sort values leave the catalog's
// natural order untouched; equal keys keep their relative order.
func sortProducts(items []domain.Product, sortKey string) {
	switch sortKey {
	case pkgdto.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.LessThan(items[j].Price)
		})
	case pkgdto.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.GreaterThan(items[j].Price)
		})
	case pkgdto.SortTitleAsc:
		collator := collate.New(language.Spanish)
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Title, items[j].Title) < 0
		})
	}
}
