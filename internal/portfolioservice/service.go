// Package portfolioservice orchestrates the rate provider and trade ledger
// into a single portfolio view, degrading gracefully when either is down.
package portfolioservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
	"github.com/go-petr/fx-portfolio/pkg/retrypkg"
)

// RateProvider provides upstream access layer interface needed by the portfolio service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package portfolioservice
type RateProvider interface {
	All(ctx context.Context) ([]domain.CurrencyRate, error)
	Get(ctx context.Context, currencyCode string) (domain.CurrencyRate, error)
}

// TradeLedger provides trade execution and history upstream interface.
type TradeLedger interface {
	Submit(ctx context.Context, trade domain.Trade) error
	History(ctx context.Context, userID string) ([]domain.Trade, error)
}

// Store provides the balance store interface needed by the portfolio service.
type Store interface {
	List(owner string) []domain.PortfolioEntry
	ApplyTrade(trade domain.Trade)
}

// Config bounds the service's upstream calls.
type Config struct {
	// CallTimeout bounds every single upstream attempt. A timed out call is
	// treated the same as a transport failure.
	CallTimeout time.Duration
	// HistoryRetryAttempts is the total attempt budget for trade history.
	HistoryRetryAttempts int
	// HistoryRetryDelay is the fixed wait between history attempts.
	HistoryRetryDelay time.Duration
}

// Service facilitates portfolio orchestration logic. Every upstream call
// either returns the real result or the operation's fallback value;
// transport errors never reach the caller.
type Service struct {
	rates    RateProvider
	ledger   TradeLedger
	store    Store
	fallback *FallbackState
	config   Config
}

// New returns a portfolio service wired to the given upstreams, balance
// store and shared fallback state.
func New(rates RateProvider, ledger TradeLedger, store Store, fallback *FallbackState, config Config) *Service {
	return &Service{
		rates:    rates,
		ledger:   ledger,
		store:    store,
		fallback: fallback,
		config:   config,
	}
}

// GetPortfolio returns the user's balances sorted by currency code.
// Unknown or blank users get an empty slice.
func (s *Service) GetPortfolio(ctx context.Context, userID string) []domain.PortfolioEntry {
	l := zerolog.Ctx(ctx)
	l.Info().Str("user_id", userID).Msg("get portfolio")

	return s.store.List(userID)
}

// GetAllCurrentRates fetches the current rate for every supported currency.
// If the provider is unreachable it returns every supported currency with a
// zero rate instead of an error.
func (s *Service) GetAllCurrentRates(ctx context.Context) []domain.CurrencyRate {
	l := zerolog.Ctx(ctx)
	l.Info().Msg("get all currency rates")

	rates, err := retrypkg.Do(ctx, s.singleAttempt(), func(ctx context.Context) ([]domain.CurrencyRate, error) {
		return s.rates.All(ctx)
	})
	if err != nil {
		l.Warn().Err(err).Msg("falling back on get all currency rates")
		s.fallback.allRates.Add(1)

		degraded := make([]domain.CurrencyRate, 0, len(currencypkg.SupportedCurrencies))
		for _, code := range currencypkg.SupportedCurrencies {
			degraded = append(degraded, domain.CurrencyRate{CurrencyCode: code, Rate: decimal.Zero})
		}

		return degraded
	}

	return rates
}

// GetCurrentRate fetches the current rate for one currency. Unsupported
// codes fail with domain.ErrUnsupportedCurrency; an unreachable provider
// yields the currency with a zero rate.
func (s *Service) GetCurrentRate(ctx context.Context, currencyCode string) (domain.CurrencyRate, error) {
	l := zerolog.Ctx(ctx)
	l.Info().Str("currency", currencyCode).Msg("get currency rate")

	if !currencypkg.IsSupportedCurrency(currencyCode) {
		return domain.CurrencyRate{}, domain.ErrUnsupportedCurrency
	}

	rate, err := retrypkg.Do(ctx, s.singleAttempt(), func(ctx context.Context) (domain.CurrencyRate, error) {
		return s.rates.Get(ctx, currencyCode)
	})
	if err != nil {
		l.Warn().Err(err).Str("currency", currencyCode).Msg("falling back on get currency rate")
		s.fallback.singleRate.Add(1)

		return domain.CurrencyRate{CurrencyCode: currencyCode, Rate: decimal.Zero}, nil
	}

	return rate, nil
}

// ExecuteTrade submits the trade to the ledger and, on success, applies it
// to the user's balance. If the ledger is unreachable the trade lands in the
// shared pending buffer and the balance is left untouched; the caller still
// gets a nil error.
func (s *Service) ExecuteTrade(ctx context.Context, trade domain.Trade) error {
	l := zerolog.Ctx(ctx)
	l.Info().Str("user_id", trade.UserID).Str("to_currency", trade.ToCurrency).Msg("execute trade")

	if !trade.USDAmount.IsPositive() {
		return domain.ErrNegativeAmount
	}

	if trade.Status == "" {
		trade.Status = domain.StatusCreated
	}

	if trade.RequestedAt.IsZero() {
		trade.RequestedAt = time.Now()
	}

	_, err := retrypkg.Do(ctx, s.singleAttempt(), func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.ledger.Submit(ctx, trade)
	})
	if err != nil {
		l.Warn().Err(err).Str("user_id", trade.UserID).Msg("falling back on execute trade")
		s.fallback.executeTrade.Add(1)
		s.fallback.BufferTrade(trade)

		return nil
	}

	// The ledger call has completed; no lock is held while it is in flight.
	s.store.ApplyTrade(trade)

	return nil
}

// GetAllTrades fetches the user's trade history, retrying transient ledger
// failures. Once the attempt budget is exhausted it returns the pending
// fallback buffer, which is shared across all users.
func (s *Service) GetAllTrades(ctx context.Context, userID string) []domain.Trade {
	l := zerolog.Ctx(ctx)
	l.Info().Str("user_id", userID).Msg("get all trades")

	policy := retrypkg.Policy{
		Attempts: s.config.HistoryRetryAttempts,
		Delay:    s.config.HistoryRetryDelay,
		Timeout:  s.config.CallTimeout,
	}

	trades, err := retrypkg.Do(ctx, policy, func(ctx context.Context) ([]domain.Trade, error) {
		return s.ledger.History(ctx, userID)
	})
	if err != nil {
		l.Warn().Err(err).Str("user_id", userID).Msg("falling back on get all trades")
		s.fallback.tradeHistory.Add(1)

		return s.fallback.PendingTrades()
	}

	return trades
}

func (s *Service) singleAttempt() retrypkg.Policy {
	return retrypkg.Policy{Attempts: 1, Timeout: s.config.CallTimeout}
}
