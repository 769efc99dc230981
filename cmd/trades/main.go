package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/fx-portfolio/internal/ledgerdelivery"
	"github.com/go-petr/fx-portfolio/internal/ledgerservice"
	"github.com/go-petr/fx-portfolio/internal/middleware"
	"github.com/go-petr/fx-portfolio/pkg/configpkg"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	handler := ledgerdelivery.NewHandler(ledgerservice.New())

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.POST("/api/trades", handler.Execute)
	server.GET("/api/trades/:userId", handler.History)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			logger.Fatal().Err(err).Msg("cannot register currency validator")
		}
	}

	if err := server.Run(config.TradesServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
