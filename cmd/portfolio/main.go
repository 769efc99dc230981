package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/fx-portfolio/internal/ledgerclient"
	"github.com/go-petr/fx-portfolio/internal/middleware"
	"github.com/go-petr/fx-portfolio/internal/portfoliodelivery"
	"github.com/go-petr/fx-portfolio/internal/portfolioservice"
	"github.com/go-petr/fx-portfolio/internal/portfoliostore"
	"github.com/go-petr/fx-portfolio/internal/ratesclient"
	"github.com/go-petr/fx-portfolio/pkg/configpkg"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server := createServer(logger, config)

	if err := server.Run(config.PortfolioServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(logger zerolog.Logger, config configpkg.Config) *gin.Engine {
	rates := ratesclient.New(config.RatesURL)
	ledger := ledgerclient.New(config.TradesURL)
	store := portfoliostore.Seeded()

	// Created once per process; the orchestrator's fallback buffer and
	// counters live here, not in package state.
	fallback := portfolioservice.NewFallbackState()

	service := portfolioservice.New(rates, ledger, store, fallback, portfolioservice.Config{
		CallTimeout:          config.UpstreamTimeout,
		HistoryRetryAttempts: config.HistoryRetryAttempts,
		HistoryRetryDelay:    config.HistoryRetryDelay,
	})

	handler := portfoliodelivery.NewHandler(service, store)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.GET("/api/portfolio/:userId", handler.GetPortfolio)
	server.GET("/api/currency-rates", handler.AllRates)
	server.GET("/api/currency-rates/:code", handler.GetRate)
	server.POST("/api/portfolio/trades", handler.ExecuteTrade)
	server.GET("/api/portfolio/trades/:userId", handler.GetAllTrades)
	server.GET("/api/users", handler.GetUsers)
	server.GET("/api/users/:userId", handler.GetUser)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			logger.Fatal().Err(err).Msg("cannot register currency validator")
		}
	}

	return server
}
