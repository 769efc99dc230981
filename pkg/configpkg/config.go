// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	RatesServerAddress     string        `mapstructure:"RATES_SERVER_ADDRESS"`
	TradesServerAddress    string        `mapstructure:"TRADES_SERVER_ADDRESS"`
	PortfolioServerAddress string        `mapstructure:"PORTFOLIO_SERVER_ADDRESS"`
	RatesURL               string        `mapstructure:"RATES_URL"`
	TradesURL              string        `mapstructure:"TRADES_URL"`
	UpstreamTimeout        time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	HistoryRetryAttempts   int           `mapstructure:"HISTORY_RETRY_ATTEMPTS"`
	HistoryRetryDelay      time.Duration `mapstructure:"HISTORY_RETRY_DELAY"`
	Environement           string        `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
