package rateengine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time {
		return time.Unix(sec, 0).UTC()
	}
}

func TestComputeBounds(t *testing.T) {
	engine := New()

	maxFluctuation := decimal.RequireFromString("0.2")

	for _, code := range currencypkg.SupportedCurrencies {
		rate, err := engine.Compute(code)
		require.NoError(t, err)

		require.Equal(t, code, rate.CurrencyCode)
		require.True(t, rate.Rate.IsPositive(), "rate for %s must be positive", code)

		diff := rate.Rate.Sub(baseRates[code]).Abs()
		require.True(t, diff.LessThanOrEqual(maxFluctuation.Add(decimal.RequireFromString("0.005"))),
			"rate for %s fluctuated by %s, want at most 0.2", code, diff)
	}
}

func TestComputeDeterministic(t *testing.T) {
	engine := NewWithClock(fixedClock(1700000000))

	first, err := engine.Compute(currencypkg.EUR)
	require.NoError(t, err)

	second, err := engine.Compute(currencypkg.EUR)
	require.NoError(t, err)

	require.True(t, first.Rate.Equal(second.Rate),
		"same (currency, second) produced %s and %s", first.Rate, second.Rate)
	require.Equal(t, first.ComputedAt, second.ComputedAt)
}

func TestComputeSeedSeparation(t *testing.T) {
	engine := NewWithClock(fixedClock(0))

	fluctuations := make(map[string]decimal.Decimal)

	for _, code := range currencypkg.SupportedCurrencies {
		rate, err := engine.Compute(code)
		require.NoError(t, err)

		fluctuations[code] = rate.Rate.Sub(baseRates[code]).Round(3)
	}

	for i, a := range currencypkg.SupportedCurrencies {
		for _, b := range currencypkg.SupportedCurrencies[i+1:] {
			require.False(t, fluctuations[a].Equal(fluctuations[b]),
				"%s and %s fluctuated identically (%s) at the same instant", a, b, fluctuations[a])
		}
	}
}

func TestComputeScale(t *testing.T) {
	engine := New()

	for _, code := range currencypkg.SupportedCurrencies {
		rate, err := engine.Compute(code)
		require.NoError(t, err)

		wantScale := int32(4)
		if code == currencypkg.JPY {
			wantScale = 2
		}

		require.LessOrEqual(t, -rate.Rate.Exponent(), wantScale,
			"rate %s for %s has too many fractional digits", rate.Rate, code)
	}
}

func TestComputeUnsupportedCurrency(t *testing.T) {
	engine := New()

	_, err := engine.Compute("XYZ")
	require.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestComputeAll(t *testing.T) {
	engine := NewWithClock(fixedClock(1700000000))

	rates := engine.ComputeAll()

	require.Len(t, rates, len(currencypkg.SupportedCurrencies))

	for i, code := range currencypkg.SupportedCurrencies {
		require.Equal(t, code, rates[i].CurrencyCode)
	}
}
