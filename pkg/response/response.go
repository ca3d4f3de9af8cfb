package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mercadito/storefront/pkg/errs"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	return c.JSON(statusCode, MessageResponse{Message: err.Error()})
}
