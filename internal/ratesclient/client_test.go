package ratesclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
)

func TestAll(t *testing.T) {
	want := []domain.CurrencyRate{
		{
			CurrencyCode: currencypkg.EUR,
			Rate:         decimal.RequireFromString("0.9217"),
			ComputedAt:   time.Now().Truncate(time.Second).UTC(),
		},
		{
			CurrencyCode: currencypkg.JPY,
			Rate:         decimal.RequireFromString("149.25"),
			ComputedAt:   time.Now().Truncate(time.Second).UTC(),
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rates", r.URL.Path)

		response := ratesResponse{Data: ratesData{Rates: want}}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := New(server.URL)

	got, err := client.All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		require.Equal(t, want[i].CurrencyCode, got[i].CurrencyCode)
		require.True(t, want[i].Rate.Equal(got[i].Rate))
		require.True(t, want[i].ComputedAt.Equal(got[i].ComputedAt))
	}
}

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rates/EUR", r.URL.Path)

		response := rateResponse{Data: rateData{Rate: domain.CurrencyRate{
			CurrencyCode: currencypkg.EUR,
			Rate:         decimal.RequireFromString("0.9217"),
			ComputedAt:   time.Now(),
		}}}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := New(server.URL)

	got, err := client.Get(context.Background(), currencypkg.EUR)
	require.NoError(t, err)
	require.Equal(t, currencypkg.EUR, got.CurrencyCode)
	require.True(t, got.Rate.Equal(decimal.RequireFromString("0.9217")))
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)

	_, err := client.All(context.Background())
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	_, err = client.Get(context.Background(), currencypkg.EUR)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL)

	_, err := client.All(context.Background())
	require.Error(t, err)
}
