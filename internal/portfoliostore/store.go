// Package portfoliostore manages the in-memory per-user currency balances.
package portfoliostore

import (
	"sort"
	"sync"
	"time"

	"github.com/go-petr/fx-portfolio/internal/domain"
)

// Store holds portfolio entries keyed by owner email. It exclusively owns
// the mutable entry collection; all access goes through the store mutex so
// concurrent balance updates against the same entry cannot lose writes.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]domain.PortfolioEntry
	users   []domain.User
	now     func() time.Time
}

// New returns an empty store using the system clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty store with an injected clock for tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		entries: make(map[string][]domain.PortfolioEntry),
		now:     now,
	}
}

// SeedUser adds a user to the read-only reference data.
func (s *Store) SeedUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
}

// Users returns the seeded reference users.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, len(s.users))
	copy(users, s.users)

	return users
}

// User looks up a seeded user by email.
func (s *Store) User(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}

	return domain.User{}, false
}

// Seed adds the given entry to the owner's portfolio.
func (s *Store) Seed(entry domain.PortfolioEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.Owner] = append(s.entries[entry.Owner], entry)
}

// List returns the owner's portfolio entries sorted by currency code
// ascending. Unknown or blank owners get an empty slice, not an error.
func (s *Store) List(owner string) []domain.PortfolioEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.PortfolioEntry, len(s.entries[owner]))
	copy(entries, s.entries[owner])

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Currency < entries[j].Currency
	})

	return entries
}

// ApplyTrade adds the trade's converted amount to the owner's balance in the
// target currency, rounding the new balance half up to 1 fractional digit.
//
// Users without seeded entries and currencies the user does not hold are
// silent no-ops; balances are never created on the fly. The read-modify-write
// happens under the store lock, so readers never observe a half-built entry.
func (s *Store) ApplyTrade(trade domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.entries[trade.UserID]
	if !ok {
		return
	}

	for i, entry := range entries {
		if entry.Currency != trade.ToCurrency {
			continue
		}

		convertedAmount := trade.USDAmount.Mul(trade.AppliedRate)

		entry.Balance = entry.Balance.Add(convertedAmount).Round(1)
		entry.LastUpdated = s.now()
		entries[i] = entry

		return
	}
}
