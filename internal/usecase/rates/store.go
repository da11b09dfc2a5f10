package rates

import (
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// RateStore holds the current currency rate snapshot
// Readers always see a complete snapshot; writers replace it as a whole.
type RateStore struct {
	current atomic.Pointer[domain.CurrencyRates]
}

// NewRateStore creates an empty RateStore
func NewRateStore() *RateStore {
	return &RateStore{}
}

// Snapshot returns the current snapshot, or an empty one if nothing was loaded
func (s *RateStore) Snapshot() domain.CurrencyRates {
	if current := s.current.Load(); current != nil {
		return *current
	}
	return domain.CurrencyRates{}
}

// SetRates replaces the snapshot with a copy of rates
func (s *RateStore) SetRates(rates map[string]decimal.Decimal, fetchedAt time.Time) domain.CurrencyRates {
	snapshot := domain.NewCurrencyRates(rates, fetchedAt)
	s.current.Store(&snapshot)
	return snapshot
}

// SeedFallback replaces the snapshot with every known currency at rate 1
func (s *RateStore) SeedFallback(now time.Time) domain.CurrencyRates {
	snapshot := domain.NewFallbackRates(now)
	s.current.Store(&snapshot)
	return snapshot
}

// HasLive reports whether the store holds real rates rather than nothing or the fallback
func (s *RateStore) HasLive() bool {
	current := s.current.Load()
	return current != nil && !current.IsFallback() && current.Len() > 0
}
