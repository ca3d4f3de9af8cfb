package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mercadito/storefront/config"
	"github.com/mercadito/storefront/internal/app"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	storefront := app.App{Config: conf}

	log.Info().Str("port", conf.ServicePort).Msg("Starting storefront")
	if err := storefront.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
