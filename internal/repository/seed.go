package repository

import (
	"github.com/mercadito/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

func intPtr(v int64) *int64 {
	return &v
}

// seedCatalog returns the catalog table. It is called once at repository
// construction; the records it returns are never mutated afterwards.
func seedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Title:       "Gorro Clásico",
			Description: "Gorro de lana clásico para el invierno, tejido a mano.",
			Price:       decimal.NewFromFloat(19.99),
			Images:      []string{"/images/gorro-clasico-1.jpg", "/images/gorro-clasico-2.jpg"},
			Category:    "hats",
			Colors:      []string{"negro", "gris"},
			Sizes:       []string{"única"},
			Stock:       intPtr(12),
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Beanie Urbano",
			Description: "Beanie de punto fino con doblez, estilo urbano para toda temporada.",
			Price:       decimal.NewFromFloat(24.99),
			Images:      []string{"/images/beanie-urbano-1.jpg"},
			Category:    "hats",
			Colors:      []string{"azul", "verde", "negro"},
			Sizes:       []string{"única"},
			Stock:       intPtr(0),
			Featured:    false,
		},
		{
			ID:          "3",
			Title:       "Sudadera Esencial",
			Description: "Hoodie de algodón orgánico con capucha forrada y bolsillo canguro.",
			Price:       decimal.NewFromFloat(39.99),
			Images:      []string{"/images/sudadera-esencial-1.jpg", "/images/sudadera-esencial-2.jpg"},
			Category:    "hoodies",
			Colors:      []string{"gris", "negro"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       intPtr(8),
			Featured:    true,
		},
		{
			ID:          "4",
			Title:       "Hoodie Premium",
			Description: "Sudadera premium de felpa pesada, corte oversize y acabado suave.",
			Price:       decimal.NewFromFloat(49.99),
			Images:      []string{},
			Category:    "hoodies",
			Colors:      []string{"crema", "negro"},
			Sizes:       []string{"M", "L", "XL"},
			Stock:       nil,
			Featured:    false,
		},
	}
}
