package domain

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency every rate is expressed against
const BaseCurrency = "USD"

// CurrencyRates is an immutable snapshot of exchange rates relative to USD
// The zero value is an empty snapshot: every currency conversion passes through
type CurrencyRates struct {
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
	fallback  bool
}

// NewCurrencyRates copies rates into a new snapshot
func NewCurrencyRates(rates map[string]decimal.Decimal, fetchedAt time.Time) CurrencyRates {
	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return CurrencyRates{rates: copied, fetchedAt: fetchedAt}
}

// NewFallbackRates seeds every known currency at rate 1
func NewFallbackRates(createdAt time.Time) CurrencyRates {
	rates := make(map[string]decimal.Decimal, len(KnownCurrencies))
	for _, c := range KnownCurrencies {
		rates[c.Code] = decimal.NewFromInt(1)
	}
	return CurrencyRates{rates: rates, fetchedAt: createdAt, fallback: true}
}

// Rate returns the rate for a currency code
func (r CurrencyRates) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := r.rates[code]
	return rate, ok
}

// Len returns the number of currencies in the snapshot
func (r CurrencyRates) Len() int {
	return len(r.rates)
}

// Codes returns the currency codes in the snapshot, sorted
func (r CurrencyRates) Codes() []string {
	codes := make([]string, 0, len(r.rates))
	for code := range r.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Map returns a copy of the rates
func (r CurrencyRates) Map() map[string]decimal.Decimal {
	copied := make(map[string]decimal.Decimal, len(r.rates))
	for code, rate := range r.rates {
		copied[code] = rate
	}
	return copied
}

// FetchedAt returns when the rates were obtained
func (r CurrencyRates) FetchedAt() time.Time {
	return r.fetchedAt
}

// IsFallback reports whether the snapshot is the unity fallback
func (r CurrencyRates) IsFallback() bool {
	return r.fallback
}

// RateSnapshot is a persisted set of rates from one successful fetch
type RateSnapshot struct {
	ID        uuid.UUID
	Base      string
	FetchedAt time.Time
	Rates     map[string]decimal.Decimal
}

// RateProvider fetches the latest USD-relative rates from an external source
type RateProvider interface {
	FetchRates(ctx context.Context) (map[string]decimal.Decimal, error)
}
