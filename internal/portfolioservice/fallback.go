package portfolioservice

import (
	"sync"
	"sync/atomic"

	"github.com/go-petr/fx-portfolio/internal/domain"
)

// FallbackState holds the process-wide fallback trade buffer and the
// per-operation fallback counters. It is created once per process and passed
// explicitly to the orchestrator; all access is synchronized.
//
// The pending buffer is keyed by insertion order only, not by user: under a
// ledger outage, history fallbacks may surface other users' buffered trades.
// That mirrors the system's availability-first trade-off and is not a
// security boundary.
type FallbackState struct {
	mu      sync.Mutex
	pending []domain.Trade

	allRates     atomic.Int64
	singleRate   atomic.Int64
	executeTrade atomic.Int64
	tradeHistory atomic.Int64
}

// NewFallbackState returns empty fallback state.
func NewFallbackState() *FallbackState {
	return &FallbackState{}
}

// BufferTrade appends a trade that could not reach the ledger.
func (f *FallbackState) BufferTrade(trade domain.Trade) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = append(f.pending, trade)
}

// PendingTrades returns a copy of the buffered trades in insertion order.
func (f *FallbackState) PendingTrades() []domain.Trade {
	f.mu.Lock()
	defer f.mu.Unlock()

	trades := make([]domain.Trade, len(f.pending))
	copy(trades, f.pending)

	return trades
}

// FallbackCounts carries the number of fallback invocations per operation.
type FallbackCounts struct {
	AllRates     int64 `json:"all_rates"`
	SingleRate   int64 `json:"single_rate"`
	ExecuteTrade int64 `json:"execute_trade"`
	TradeHistory int64 `json:"trade_history"`
}

// Counts returns a snapshot of the fallback counters.
func (f *FallbackState) Counts() FallbackCounts {
	return FallbackCounts{
		AllRates:     f.allRates.Load(),
		SingleRate:   f.singleRate.Load(),
		ExecuteTrade: f.executeTrade.Load(),
		TradeHistory: f.tradeHistory.Load(),
	}
}
