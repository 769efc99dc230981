package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/fx-portfolio/internal/middleware"
	"github.com/go-petr/fx-portfolio/internal/rateengine"
	"github.com/go-petr/fx-portfolio/internal/ratesdelivery"
	"github.com/go-petr/fx-portfolio/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	handler := ratesdelivery.NewHandler(rateengine.New())

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.GET("/api/rates", handler.All)
	server.GET("/api/rates/:code", handler.Get)

	if err := server.Run(config.RatesServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
