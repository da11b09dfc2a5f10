package rates

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
	"golang.org/x/text/currency"
)

var errNoProvider = errors.New("no rate provider configured")

// RateService keeps the RateStore up to date
type RateService struct {
	Store    *RateStore
	Provider domain.RateProvider
	RateRepo domain.RateRepository // optional

	mu  sync.Mutex
	now func() time.Time
}

// NewRateService creates a new RateService instance
// provider and rateRepo may be nil
func NewRateService(store *RateStore, provider domain.RateProvider, rateRepo domain.RateRepository) *RateService {
	return &RateService{
		Store:    store,
		Provider: provider,
		RateRepo: rateRepo,
		now:      time.Now,
	}
}

// Refresh fetches the latest rates and swaps them into the store
// Logic:
//  1. Fetch USD-relative rates from the provider
//  2. Keep ISO 4217 codes with positive rates, USD is always 1
//  3. Swap the snapshot into the store and persist it
//
// On failure the last successful snapshot is kept. If there never was one, the
// latest persisted snapshot is restored, and failing that the unity fallback is
// seeded. The returned snapshot is the one in effect after the call.
func (s *RateService) Refresh(ctx context.Context) (domain.CurrencyRates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Provider == nil {
		return s.recoverLocked(ctx, errNoProvider)
	}

	raw, err := s.Provider.FetchRates(ctx)
	if err != nil {
		return s.recoverLocked(ctx, err)
	}

	rates, dropped := sanitizeRates(raw)
	if len(dropped) > 0 {
		log.Printf("rates: dropped %d unusable codes: %s", len(dropped), strings.Join(dropped, ", "))
	}
	if len(rates) <= 1 {
		return s.recoverLocked(ctx, errors.New("provider returned no usable rates"))
	}

	snapshot := s.Store.SetRates(rates, s.now())

	if s.RateRepo != nil {
		record := &domain.RateSnapshot{
			ID:        uuid.New(),
			Base:      domain.BaseCurrency,
			FetchedAt: snapshot.FetchedAt(),
			Rates:     snapshot.Map(),
		}
		// Best effort: the store already holds the new rates
		if err := s.RateRepo.Save(ctx, record); err != nil {
			log.Printf("rates: failed to persist snapshot: %v", err)
		}
	}

	log.Printf("rates: loaded %d currencies", snapshot.Len())
	return snapshot, nil
}

// Restore loads the latest persisted snapshot into the store
// It returns false when there is no repository or nothing has been persisted yet.
func (s *RateService) Restore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.restoreLocked(ctx)
}

// Run refreshes the rates every interval until ctx is done
func (s *RateService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				log.Printf("rates: refresh failed: %v", err)
			}
		}
	}
}

func (s *RateService) recoverLocked(ctx context.Context, cause error) (domain.CurrencyRates, error) {
	err := fmt.Errorf("%w: %w", domain.ErrRatesUnavailable, cause)

	if s.Store.HasLive() {
		return s.Store.Snapshot(), err
	}

	restored, restoreErr := s.restoreLocked(ctx)
	if restoreErr != nil {
		log.Printf("rates: failed to restore persisted snapshot: %v", restoreErr)
	}
	if restored {
		log.Printf("rates: using persisted snapshot from %s", s.Store.Snapshot().FetchedAt().Format(time.RFC3339))
		return s.Store.Snapshot(), err
	}

	log.Printf("rates: no rates available, seeding fallback")
	return s.Store.SeedFallback(s.now()), err
}

func (s *RateService) restoreLocked(ctx context.Context) (bool, error) {
	if s.RateRepo == nil {
		return false, nil
	}

	latest, err := s.RateRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRatesUnavailable) {
			return false, nil
		}
		return false, err
	}
	if latest == nil || len(latest.Rates) == 0 {
		return false, nil
	}

	s.Store.SetRates(latest.Rates, latest.FetchedAt)
	return true, nil
}

var knownCodes = func() map[string]bool {
	codes := make(map[string]bool, len(domain.KnownCurrencies))
	for _, c := range domain.KnownCurrencies {
		codes[c.Code] = true
	}
	return codes
}()

// sanitizeRates keeps recognized currency codes with positive, in-range rates
// A code that only matches after upper-casing is dropped when its canonical
// spelling is also present.
// It returns the accepted rates and the sorted list of dropped codes.
func sanitizeRates(raw map[string]decimal.Decimal) (map[string]decimal.Decimal, []string) {
	rates := make(map[string]decimal.Decimal, len(raw)+1)
	var dropped []string

	for code, rate := range raw {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if !isCurrencyCode(normalized) || !rate.IsPositive() || domain.CheckValue(rate) != nil {
			dropped = append(dropped, code)
			continue
		}
		if _, canonical := raw[normalized]; canonical && normalized != code {
			dropped = append(dropped, code)
			continue
		}
		rates[normalized] = rate
	}

	rates[domain.BaseCurrency] = decimal.NewFromInt(1)

	sort.Strings(dropped)
	return rates, dropped
}

func isCurrencyCode(code string) bool {
	if knownCodes[code] {
		return true
	}
	unit, err := currency.ParseISO(code)
	return err == nil && unit.String() == code
}
