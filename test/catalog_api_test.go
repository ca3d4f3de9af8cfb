package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mercadito/storefront/internal/cart"
	"github.com/mercadito/storefront/internal/client"
	"github.com/mercadito/storefront/internal/dto"
	pkgdto "github.com/mercadito/storefront/pkg/dto"
	"github.com/mercadito/storefront/pkg/response"
)

func (s *IntegrationTestSuite) baseURL() string {
	return fmt.Sprintf("http://localhost:%s", s.app.Config.ServicePort)
}

func (s *IntegrationTestSuite) getJSON(path string, target interface{}) int {
	resp, err := http.Get(s.baseURL() + path)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	err = json.NewDecoder(resp.Body).Decode(target)
	require.NoError(s.T(), err)

	return resp.StatusCode
}

func (s *IntegrationTestSuite) TestGetHealth() {
	var health dto.HealthResponse
	status := s.getJSON("/api/health", &health)

	s.Equal(http.StatusOK, status)
	s.Equal("ok", health.Status)
}

func (s *IntegrationTestSuite) TestGetProducts() {
	var payload dto.ProductListResponse
	status := s.getJSON("/api/products", &payload)

	s.Equal(http.StatusOK, status)
	s.Equal(4, payload.Total)
	s.Len(payload.Items, payload.Total)
}

func (s *IntegrationTestSuite) TestGetProductsFilteredAndSorted() {
	var payload dto.ProductListResponse
	status := s.getJSON("/api/products?category=hats&sort=price_desc", &payload)

	s.Equal(http.StatusOK, status)
	s.Equal(2, payload.Total)
	s.Equal("Beanie Urbano", payload.Items[0].Title)
	s.Equal("Gorro Clásico", payload.Items[1].Title)
}

func (s *IntegrationTestSuite) TestGetProductsTextSearch() {
	var payload dto.ProductListResponse
	status := s.getJSON("/api/products?q=sudadera", &payload)

	s.Equal(http.StatusOK, status)
	s.Equal(2, payload.Total)
	for _, item := range payload.Items {
		s.Equal("hoodies", item.Category)
	}
}

func (s *IntegrationTestSuite) TestGetProductsMinPrice() {
	var payload dto.ProductListResponse
	status := s.getJSON("/api/products?minPrice=30", &payload)

	s.Equal(http.StatusOK, status)
	s.Equal(2, payload.Total)
	for _, item := range payload.Items {
		s.Equal("hoodies", item.Category)
	}
}

func (s *IntegrationTestSuite) TestGetProductsCorsHeader() {
	req, err := http.NewRequest(http.MethodGet, s.baseURL()+"/api/products", nil)
	require.NoError(s.T(), err)
	req.Header.Set("Origin", "http://example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func (s *IntegrationTestSuite) TestGetProductByID() {
	resp, err := http.Get(s.baseURL() + "/api/products/1")
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&body)
	require.NoError(s.T(), err)

	s.Equal("Gorro Clásico", body["title"])
	// Prices serialize as plain JSON numbers.
	s.Equal(19.99, body["price"])
}

func (s *IntegrationTestSuite) TestGetProductByIDNotFound() {
	var body response.MessageResponse
	status := s.getJSON("/api/products/999", &body)

	s.Equal(http.StatusNotFound, status)
	s.Equal("Product not found", body.Message)
}

func (s *IntegrationTestSuite) TestClientAndCartRoundTrip() {
	catalogClient := client.CreateCatalogClient(s.baseURL())

	res, err := catalogClient.FetchProducts(context.Background(), pkgdto.Criteria{Category: "hats", Sort: pkgdto.SortPriceDesc})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Total)

	shoppingCart := cart.CreateCart(catalogClient)
	shoppingCart.Add(res.Items[0])
	shoppingCart.Add(res.Items[0])
	shoppingCart.Add(res.Items[1])

	s.Equal(int64(3), shoppingCart.ItemCount())
	// 2*24.99 + 19.99
	s.True(shoppingCart.Total().Equal(decimal.RequireFromString("69.97")))

	absent, err := catalogClient.FetchProductByID(context.Background(), "999")
	require.NoError(s.T(), err)
	s.Nil(absent)
}
