package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/mercadito/storefront/internal/dto"
	"github.com/mercadito/storefront/internal/service"
	pkgdto "github.com/mercadito/storefront/pkg/dto"
	"github.com/mercadito/storefront/pkg/response"
)

type Controller struct {
	service service.CatalogService
}

func CreateCatalogController(e *echo.Group, service service.CatalogService) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/health", c.GetHealth)
}

func (c *Controller) GetProducts(e echo.Context) error {
	criteria := pkgdto.Criteria{}
	err := e.Bind(&criteria)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), criteria)

	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, responsePayload)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))

	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, product)
}

func (c *Controller) GetHealth(e echo.Context) error {
	return response.WriteSuccessResponse(e, dto.HealthResponse{Status: "ok"})
}
