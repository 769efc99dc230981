package portfoliostore

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
)

// SeedUsers returns the built-in demo users. Card numbers are masked at
// construction and never stored in full.
func SeedUsers() []domain.User {
	return []domain.User{
		domain.NewUser(1, "John", "Doe", "john.doe@example.com", "4532123456781234", "12/26", "VISA"),
		domain.NewUser(2, "Jane", "Smith", "jane.smith@example.com", "5555123456789876", "08/25", "MASTERCARD"),
		domain.NewUser(3, "Bob", "Johnson", "bob.johnson@example.com", "378282246310005", "03/27", "AMEX"),
	}
}

// Seeded returns a store preloaded with the demo users and their balances.
func Seeded() *Store {
	store := New()

	for _, user := range SeedUsers() {
		store.SeedUser(user)
	}

	seed := []struct {
		id       int64
		owner    string
		currency string
		balance  string
	}{
		{2, "john.doe@example.com", currencypkg.EUR, "85.0"},
		{3, "john.doe@example.com", currencypkg.GBP, "50.0"},
		{4, "john.doe@example.com", currencypkg.JPY, "100.0"},
		{5, "john.doe@example.com", currencypkg.CHF, "90.0"},
		{6, "john.doe@example.com", currencypkg.CAD, "120.0"},
		{7, "john.doe@example.com", currencypkg.AUD, "110.0"},
		{9, "jane.smith@example.com", currencypkg.EUR, "170.0"},
		{10, "jane.smith@example.com", currencypkg.GBP, "150.0"},
		{11, "jane.smith@example.com", currencypkg.JPY, "20.0"},
		{12, "jane.smith@example.com", currencypkg.CHF, "180.0"},
		{16, "bob.johnson@example.com", currencypkg.EUR, "42.0"},
		{17, "bob.johnson@example.com", currencypkg.GBP, "37.0"},
		{18, "bob.johnson@example.com", currencypkg.JPY, "50.0"},
		{19, "bob.johnson@example.com", currencypkg.CHF, "45.0"},
		{21, "bob.johnson@example.com", currencypkg.AUD, "55.0"},
	}

	for _, e := range seed {
		store.Seed(domain.PortfolioEntry{
			ID:          e.id,
			Owner:       e.owner,
			Currency:    e.currency,
			Balance:     decimal.RequireFromString(e.balance),
			LastUpdated: store.now(),
		})
	}

	return store
}
