package converter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/unitflow-backend/internal/domain"
)

func testRates() domain.CurrencyRates {
	return domain.NewCurrencyRates(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9"),
		"JPY": decimal.RequireFromString("150"),
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestConvertCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from, to string
		expected string
	}{
		{name: "USD to EUR", value: "100", from: "USD", to: "EUR", expected: "90"},
		{name: "EUR to USD", value: "90", from: "EUR", to: "USD", expected: "100"},
		{name: "EUR to JPY through USD", value: "9", from: "EUR", to: "JPY", expected: "1500"},
		{name: "Same code", value: "42", from: "JPY", to: "JPY", expected: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversion, err := ConvertCurrency(testRates(), decimal.RequireFromString(tt.value), tt.from, tt.to)

			require.NoError(t, err)
			require.True(t, conversion.OK())
			assert.True(t, conversion.Value.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, conversion.Value)
		})
	}
}

func TestConvertCurrency_MissingCodePassesThrough(t *testing.T) {
	v := decimal.RequireFromString("100")

	t.Run("Empty snapshot", func(t *testing.T) {
		conversion, err := ConvertCurrency(domain.CurrencyRates{}, v, "USD", "EUR")

		require.NoError(t, err)
		assert.True(t, conversion.Value.Equal(v))
		assert.Equal(t, domain.StatusUnitNotFound, conversion.Status)
		assert.Equal(t, "USD", conversion.MissingUnit)
	})

	t.Run("Code not in snapshot", func(t *testing.T) {
		conversion, err := ConvertCurrency(testRates(), v, "USD", "GBP")

		require.NoError(t, err)
		assert.True(t, conversion.Value.Equal(v))
		assert.Equal(t, "GBP", conversion.MissingUnit)
	})

	t.Run("Codes are exact", func(t *testing.T) {
		conversion, err := ConvertCurrency(testRates(), v, "usd", "EUR")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnitNotFound, conversion.Status)
	})
}

func TestCurrencyCategory_ReadsLatestSnapshot(t *testing.T) {
	source := &swappableRates{rates: testRates()}
	category := newCurrencyCategory(source)

	conversion, err := category.Convert(decimal.NewFromInt(100), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, conversion.Value.Equal(decimal.NewFromInt(90)))

	source.rates = domain.NewCurrencyRates(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.8"),
	}, time.Now())

	conversion, err = category.Convert(decimal.NewFromInt(100), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, conversion.Value.Equal(decimal.NewFromInt(80)))
}

func TestCurrencyCategory_NilSource(t *testing.T) {
	category := newCurrencyCategory(nil)

	conversion, err := category.Convert(decimal.NewFromInt(5), "USD", "EUR")

	require.NoError(t, err)
	assert.False(t, conversion.OK())
	assert.True(t, conversion.Value.Equal(decimal.NewFromInt(5)))
	assert.Len(t, category.Units(), len(domain.KnownCurrencies))
}

func TestCurrencyCategory_ResolveSnapshotOnlyCode(t *testing.T) {
	source := &swappableRates{rates: domain.NewCurrencyRates(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"XAU": decimal.RequireFromString("0.0005"),
	}, time.Now())}
	category := newCurrencyCategory(source)

	unit, ok := category.Resolve("XAU")
	require.True(t, ok)
	assert.Equal(t, "XAU", unit.ID)

	unit, ok = category.Resolve("EUR")
	require.True(t, ok)
	assert.Equal(t, "Euro", unit.Name)

	_, ok = category.Resolve("QQQ")
	assert.False(t, ok)
}

type swappableRates struct {
	rates domain.CurrencyRates
}

func (s *swappableRates) Snapshot() domain.CurrencyRates {
	return s.rates
}
