package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mercadito/storefront/config"
	"github.com/mercadito/storefront/internal/controller"
	"github.com/mercadito/storefront/internal/infrastructure/tracing"
	"github.com/mercadito/storefront/internal/middleware"
	"github.com/mercadito/storefront/internal/repository"
	"github.com/mercadito/storefront/internal/service"
)

type App struct {
	Config        *config.Config
	Server        *echo.Echo
	traceProvider *sdktrace.TracerProvider
}

// Start wires the catalog stack and serves it. It blocks until the server
// stops; StopServer shuts it down gracefully.
func (app *App) Start() error {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()
	e.HideBanner = true

	// The storefront is consumed from any origin.
	e.Use(echomiddleware.CORS())
	e.Use(middleware.Logger)
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			app.traceProvider = traceProvider
			tracer := traceProvider.Tracer("storefront")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api")

	catalogRepo := repository.CreateNewCatalogRepository()
	svc := service.CreateCatalogService(catalogRepo, *app.Config)
	controller.CreateCatalogController(g, svc)

	app.Server = e

	return e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.traceProvider != nil {
		if err := app.traceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}

	return app.Server.Shutdown(ctx)
}
