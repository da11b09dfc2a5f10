package converter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/unitflow-backend/internal/domain"
)

func TestQuo_DivisionByZero(t *testing.T) {
	_, err := quo(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestQuo_KeepsSignificantDigitsAtExtremes(t *testing.T) {
	planck := decimal.RequireFromString("0.00000000000000000000000000000000000000000005391247")

	t.Run("Tiny quotient", func(t *testing.T) {
		result, err := quo(planck, decimal.NewFromInt(31_556_952))
		require.NoError(t, err)
		require.False(t, result.IsZero())
		assert.GreaterOrEqual(t, len(result.Coefficient().String()), significantDigits)
	})

	t.Run("Huge quotient", func(t *testing.T) {
		result, err := quo(decimal.NewFromInt(1), planck)
		require.NoError(t, err)

		back := result.Mul(planck)
		diff := back.Sub(decimal.NewFromInt(1)).Abs()
		assert.True(t, diff.LessThan(decimal.RequireFromString("1e-35")), "1/t*t drifted by %s", diff)
	})

	t.Run("Exact quotient", func(t *testing.T) {
		result, err := quo(decimal.RequireFromString("1609.344"), decimal.RequireFromString("0.0254"))
		require.NoError(t, err)
		assert.True(t, result.Equal(decimal.NewFromInt(63_360)))
	})
}

func TestQuo_ScaleBeyondLimit(t *testing.T) {
	_, err := quo(decimal.New(1, -100_000), decimal.NewFromInt(3))
	assert.ErrorIs(t, err, domain.ErrValueOutOfRange)
}

func TestConvert_PlanckTime(t *testing.T) {
	conversion, err := durationCategory.Convert(decimal.NewFromInt(1), "planck time", "second")
	require.NoError(t, err)
	assert.True(t, conversion.Value.Equal(decimal.RequireFromString("5.391247e-44")), "got %s", conversion.Value)
	assert.False(t, conversion.Value.IsZero())

	back, err := durationCategory.Convert(conversion.Value, "second", "planck time")
	require.NoError(t, err)
	assertClose(t, decimal.NewFromInt(1), back.Value, "planck round trip")
}
