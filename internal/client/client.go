package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"

	"github.com/mercadito/storefront/internal/domain"
	"github.com/mercadito/storefront/internal/dto"
	circuitbreaker "github.com/mercadito/storefront/internal/infrastructure/circuit-breaker"
	pkgdto "github.com/mercadito/storefront/pkg/dto"
	"github.com/mercadito/storefront/pkg/errs"
	"github.com/mercadito/storefront/pkg/httpclient"
)

// CatalogClient fetches products from the storefront API. Each kind of fetch
// keeps at most one request in flight: issuing a new one cancels its
// predecessor, so a slow stale response can never overtake a fresher one.
// Cancelled fetches resolve to an empty result rather than an error.
//
// Products seen in successful responses are merged into a local cache, keyed
// by id, which is never replaced wholesale.
type CatalogClient struct {
	baseURL string
	breaker *gobreaker.CircuitBreaker[[]byte]

	mu         sync.Mutex
	cancelList context.CancelFunc
	cancelGet  context.CancelFunc

	cacheMu sync.RWMutex
	known   map[string]domain.Product
}

func CreateCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		breaker: circuitbreaker.CreateCircuitBreaker("catalog-client"),
		known:   make(map[string]domain.Product),
	}
}

// FetchProducts queries the catalog with the given criteria. Empty criteria
// fields are omitted from the query string. A cancelled fetch returns an
// empty result and no error; any other transport failure is returned to the
// caller.
func (c *CatalogClient) FetchProducts(ctx context.Context, criteria pkgdto.Criteria) (dto.ProductListResponse, error) {
	responsePayload := dto.ProductListResponse{Items: []domain.Product{}}

	ctx = c.supersede(ctx, &c.cancelList)

	statusCode, body, err := c.send(ctx, c.baseURL+"/api/products"+encodeCriteria(criteria))
	if err != nil {
		if ctx.Err() != nil {
			return responsePayload, nil
		}
		log.Error().Err(err).Str("component", "FetchProducts").Msg("")
		return responsePayload, errs.ErrCatalogUnavailable
	}

	if statusCode != http.StatusOK {
		log.Error().Int("status", statusCode).Str("component", "FetchProducts").Msg("")
		return responsePayload, errs.ErrCatalogUnavailable
	}

	if err := json.Unmarshal(body, &responsePayload); err != nil {
		return responsePayload, fmt.Errorf("error unmarshalling product list response: %v", err)
	}

	c.learn(responsePayload.Items...)

	return responsePayload, nil
}

// FetchProductByID returns the product, or nil when it does not exist or the
// fetch was cancelled.
func (c *CatalogClient) FetchProductByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx = c.supersede(ctx, &c.cancelGet)

	statusCode, body, err := c.send(ctx, c.baseURL+"/api/products/"+url.PathEscape(id))
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil
		}
		log.Error().Err(err).Str("component", "FetchProductByID").Msg("")
		return nil, errs.ErrCatalogUnavailable
	}

	switch statusCode {
	case http.StatusOK:
		var product domain.Product
		if err := json.Unmarshal(body, &product); err != nil {
			return nil, fmt.Errorf("error unmarshalling product response: %v", err)
		}
		c.learn(product)
		return &product, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		log.Error().Int("status", statusCode).Str("component", "FetchProductByID").Msg("")
		return nil, errs.ErrCatalogUnavailable
	}
}

// KnownProduct looks up a product previously seen in a response.
func (c *CatalogClient) KnownProduct(id string) (domain.Product, bool) {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()

	product, ok := c.known[id]
	return product, ok
}

// supersede cancels the in-flight request in the given slot, if any, and
// registers a fresh cancellable context derived from parent.
func (c *CatalogClient) supersede(parent context.Context, slot *context.CancelFunc) context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()

	if *slot != nil {
		(*slot)()
	}

	ctx, cancel := context.WithCancel(parent)
	*slot = cancel

	return ctx
}

func (c *CatalogClient) send(ctx context.Context, requestURL string) (int, []byte, error) {
	var statusCode int
	body, err := c.breaker.Execute(func() ([]byte, error) {
		code, payload, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    requestURL,
			Method: http.MethodGet,
			Headers: map[string]string{
				"Accept": "application/json",
			},
		})
		statusCode = code
		return payload, err
	})

	return statusCode, body, err
}

func (c *CatalogClient) learn(products ...domain.Product) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	for _, product := range products {
		c.known[product.ID] = product
	}
}

func encodeCriteria(criteria pkgdto.Criteria) string {
	values := url.Values{}

	if criteria.Category != "" {
		values.Set("category", criteria.Category)
	}
	if criteria.Q != "" {
		values.Set("q", criteria.Q)
	}
	if criteria.MinPrice != "" {
		values.Set("minPrice", criteria.MinPrice)
	}
	if criteria.MaxPrice != "" {
		values.Set("maxPrice", criteria.MaxPrice)
	}
	if criteria.Sort != "" {
		values.Set("sort", criteria.Sort)
	}

	if len(values) == 0 {
		return ""
	}

	return "?" + values.Encode()
}
