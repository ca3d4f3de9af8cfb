package dto

import "github.com/mercadito/storefront/internal/domain"

type ProductListResponse struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
