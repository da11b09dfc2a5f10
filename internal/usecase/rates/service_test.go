package rates

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRateProvider is a mock implementation of RateProvider for testing
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// MockRateRepository is a mock implementation of RateRepository for testing
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) Save(ctx context.Context, snapshot *domain.RateSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockRateRepository) GetLatest(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTestService(provider domain.RateProvider, repo domain.RateRepository) *RateService {
	service := NewRateService(NewRateStore(), provider, repo)
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestRefresh_Success(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	mockRepo := new(MockRateRepository)
	service := newTestService(mockProvider, mockRepo)

	mockProvider.On("FetchRates", ctx).Return(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9"),
		"JPY": decimal.RequireFromString("151.2"),
	}, nil)
	mockRepo.On("Save", ctx, mock.MatchedBy(func(s *domain.RateSnapshot) bool {
		return s.Base == domain.BaseCurrency && len(s.Rates) == 3 && s.FetchedAt.Equal(fixedNow)
	})).Return(nil)

	snapshot, err := service.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.Len())
	assert.False(t, snapshot.IsFallback())
	assert.True(t, service.Store.HasLive())

	rate, ok := service.Store.Snapshot().Rate("EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9")))

	mockProvider.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRefresh_DropsUnusableCodes(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	service := newTestService(mockProvider, nil)

	mockProvider.On("FetchRates", ctx).Return(map[string]decimal.Decimal{
		"EUR":    decimal.RequireFromString("0.9"),
		"gbp":    decimal.RequireFromString("0.8"),
		"NOPE":   decimal.NewFromInt(3),
		"QQQ":    decimal.NewFromInt(2),
		"CHF":    decimal.Zero,
		"SEK":    decimal.NewFromInt(-1),
		"BITCON": decimal.NewFromInt(1),
	}, nil)

	snapshot, err := service.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "GBP", "USD"}, snapshot.Codes())

	usd, ok := snapshot.Rate("USD")
	require.True(t, ok)
	assert.True(t, usd.Equal(decimal.NewFromInt(1)))
}

func TestRefresh_FailureKeepsLastSuccessfulSnapshot(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	service := newTestService(mockProvider, nil)

	mockProvider.On("FetchRates", ctx).Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.9"),
	}, nil).Once()
	mockProvider.On("FetchRates", ctx).Return(nil, errors.New("connection refused")).Once()

	_, err := service.Refresh(ctx)
	require.NoError(t, err)

	snapshot, err := service.Refresh(ctx)

	assert.ErrorIs(t, err, domain.ErrRatesUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.False(t, snapshot.IsFallback())
	rate, ok := snapshot.Rate("EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9")))
	mockProvider.AssertExpectations(t)
}

func TestRefresh_FailureRestoresPersistedSnapshot(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	mockRepo := new(MockRateRepository)
	service := newTestService(mockProvider, mockRepo)

	persistedAt := fixedNow.Add(-6 * time.Hour)
	mockProvider.On("FetchRates", ctx).Return(nil, errors.New("timeout"))
	mockRepo.On("GetLatest", ctx).Return(&domain.RateSnapshot{
		Base:      domain.BaseCurrency,
		FetchedAt: persistedAt,
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.92"),
		},
	}, nil)

	snapshot, err := service.Refresh(ctx)

	assert.ErrorIs(t, err, domain.ErrRatesUnavailable)
	assert.False(t, snapshot.IsFallback())
	assert.Equal(t, persistedAt, snapshot.FetchedAt())
	assert.True(t, service.Store.HasLive())
	mockRepo.AssertExpectations(t)
}

func TestRefresh_FailureWithoutHistorySeedsFallback(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	mockRepo := new(MockRateRepository)
	service := newTestService(mockProvider, mockRepo)

	mockProvider.On("FetchRates", ctx).Return(nil, errors.New("503"))
	mockRepo.On("GetLatest", ctx).Return(nil, fmt.Errorf("get latest snapshot: %w", domain.ErrRatesUnavailable))

	snapshot, err := service.Refresh(ctx)

	assert.ErrorIs(t, err, domain.ErrRatesUnavailable)
	assert.True(t, snapshot.IsFallback())
	assert.Equal(t, len(domain.KnownCurrencies), snapshot.Len())
	assert.False(t, service.Store.HasLive())
}

func TestRefresh_NoProviderSeedsFallback(t *testing.T) {
	service := newTestService(nil, nil)

	snapshot, err := service.Refresh(context.Background())

	assert.ErrorIs(t, err, domain.ErrRatesUnavailable)
	assert.True(t, snapshot.IsFallback())
}

func TestRefresh_EmptyResponseIsAFailure(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	service := newTestService(mockProvider, nil)

	mockProvider.On("FetchRates", ctx).Return(map[string]decimal.Decimal{}, nil)

	snapshot, err := service.Refresh(ctx)

	assert.ErrorIs(t, err, domain.ErrRatesUnavailable)
	assert.True(t, snapshot.IsFallback())
}

func TestRefresh_PersistFailureKeepsLiveRates(t *testing.T) {
	ctx := context.Background()
	mockProvider := new(MockRateProvider)
	mockRepo := new(MockRateRepository)
	service := newTestService(mockProvider, mockRepo)

	mockProvider.On("FetchRates", ctx).Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.9"),
	}, nil)
	mockRepo.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))

	snapshot, err := service.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())
	assert.True(t, service.Store.HasLive())
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("Without repository", func(t *testing.T) {
		restored, err := newTestService(nil, nil).Restore(ctx)
		require.NoError(t, err)
		assert.False(t, restored)
	})

	t.Run("Repository error is returned", func(t *testing.T) {
		mockRepo := new(MockRateRepository)
		mockRepo.On("GetLatest", ctx).Return(nil, errors.New("database is down"))

		restored, err := newTestService(nil, mockRepo).Restore(ctx)
		assert.Error(t, err)
		assert.False(t, restored)
	})

	t.Run("Latest snapshot is loaded", func(t *testing.T) {
		mockRepo := new(MockRateRepository)
		mockRepo.On("GetLatest", ctx).Return(&domain.RateSnapshot{
			FetchedAt: fixedNow,
			Rates:     map[string]decimal.Decimal{"USD": decimal.NewFromInt(1), "EUR": decimal.RequireFromString("0.9")},
		}, nil)
		service := newTestService(nil, mockRepo)

		restored, err := service.Restore(ctx)
		require.NoError(t, err)
		assert.True(t, restored)
		assert.Equal(t, 2, service.Store.Snapshot().Len())
	})
}

func TestRun_StopsWithContext(t *testing.T) {
	mockProvider := new(MockRateProvider)
	service := newTestService(mockProvider, nil)

	refreshed := make(chan struct{}, 1)
	mockProvider.On("FetchRates", mock.Anything).Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.9"),
	}, nil).Run(func(mock.Arguments) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not refresh")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.True(t, service.Store.HasLive())
}

func TestRun_NonPositiveIntervalReturns(t *testing.T) {
	service := newTestService(nil, nil)
	service.Run(context.Background(), 0)
	assert.Equal(t, 0, service.Store.Snapshot().Len())
}

func TestSanitizeRates(t *testing.T) {
	tests := []struct {
		name        string
		raw         map[string]decimal.Decimal
		expected    map[string]string
		wantDropped []string
	}{
		{
			name: "Canonical spelling wins over lower case",
			raw: map[string]decimal.Decimal{
				"EUR": decimal.RequireFromString("0.9"),
				"eur": decimal.RequireFromString("0.5"),
			},
			expected:    map[string]string{"EUR": "0.9", "USD": "1"},
			wantDropped: []string{"eur"},
		},
		{
			name: "Lower case alone is normalized",
			raw: map[string]decimal.Decimal{
				" gbp ": decimal.RequireFromString("0.8"),
			},
			expected: map[string]string{"GBP": "0.8", "USD": "1"},
		},
		{
			name: "Out of range rate is dropped",
			raw: map[string]decimal.Decimal{
				"EUR": decimal.New(9, -2147483640),
				"JPY": decimal.NewFromInt(150),
			},
			expected:    map[string]string{"JPY": "150", "USD": "1"},
			wantDropped: []string{"EUR"},
		},
		{
			name: "Provider USD is forced to one",
			raw: map[string]decimal.Decimal{
				"USD": decimal.NewFromInt(2),
			},
			expected: map[string]string{"USD": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Map iteration order varies, so repeat to catch order-dependent results
			for i := 0; i < 20; i++ {
				rates, dropped := sanitizeRates(tt.raw)

				require.Len(t, rates, len(tt.expected))
				for code, want := range tt.expected {
					got, ok := rates[code]
					require.True(t, ok, "missing %s", code)
					assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s: got %s", code, got)
				}
				assert.Equal(t, tt.wantDropped, dropped)
			}
		})
	}
}
