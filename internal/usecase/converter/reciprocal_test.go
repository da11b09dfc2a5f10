package converter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/unitflow-backend/internal/domain"
)

func TestReciprocal_FuelConsumption(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from, to string
		expected string
	}{
		{name: "100 km/L is 1 L/100km", value: "100", from: "km/L", to: "L/100km", expected: "1"},
		{name: "200 km/L is 0.5 L/100km", value: "200", from: "km/L", to: "L/100km", expected: "0.5"},
		{name: "10 L/100km is 10 km/L", value: "10", from: "L/100km", to: "km/L", expected: "10"},
		{name: "Inverse to inverse", value: "5", from: "L/100km", to: "mL/km", expected: "50"},
		{name: "Direct to direct", value: "1", from: "mi/L", to: "km/L", expected: "1.609344"},
		{name: "Symbols are case insensitive", value: "20", from: "KM/L", to: "l/100KM", expected: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversion, err := fuelConsumptionCategory.Convert(decimal.RequireFromString(tt.value), tt.from, tt.to)

			require.NoError(t, err)
			require.True(t, conversion.OK())
			assert.True(t, conversion.Value.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, conversion.Value)
		})
	}
}

func TestReciprocal_MilesPerGallon(t *testing.T) {
	conversion, err := fuelConsumptionCategory.Convert(decimal.NewFromInt(1), "mpg (US)", "L/100km")

	require.NoError(t, err)
	assert.Equal(t, "235.214583", conversion.Value.Round(6).String())
}

func TestReciprocal_ZeroValueHasNoReciprocal(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{name: "Direct to inverse", from: "km/L", to: "L/100km"},
		{name: "Inverse to direct", from: "L/100km", to: "km/L"},
		{name: "Inverse to inverse", from: "L/100km", to: "L/km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fuelConsumptionCategory.Convert(decimal.Zero, tt.from, tt.to)
			assert.ErrorIs(t, err, domain.ErrNoReciprocal)
		})
	}

	t.Run("Direct to direct is fine", func(t *testing.T) {
		conversion, err := fuelConsumptionCategory.Convert(decimal.Zero, "km/L", "mi/L")
		require.NoError(t, err)
		assert.True(t, conversion.Value.IsZero())
	})
}

func TestReciprocal_SpecificEnergy(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from, to string
		expected string
	}{
		{name: "1 g/kWh in J/kg", value: "1", from: "g/kWh", to: "J/kg", expected: "3600000000"},
		{name: "200 g/kWh in MJ/kg", value: "200", from: "g/kWh", to: "MJ/kg", expected: "18"},
		{name: "Btu/lb to lb/Btu", value: "0.5", from: "Btu/lb", to: "lb/Btu", expected: "2"},
		{name: "J/kg to g/J", value: "4", from: "J/kg", to: "g/J", expected: "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversion, err := specificEnergyCategory.Convert(decimal.RequireFromString(tt.value), tt.from, tt.to)

			require.NoError(t, err)
			assert.True(t, conversion.Value.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, conversion.Value)
		})
	}
}

func TestReciprocal_EnergyDensity(t *testing.T) {
	conversion, err := energyDensityCategory.Convert(decimal.NewFromInt(2), "MJ/L", "L/MJ")
	require.NoError(t, err)
	assert.True(t, conversion.Value.Equal(decimal.RequireFromString("0.5")), "got %s", conversion.Value)

	conversion, err = energyDensityCategory.Convert(decimal.NewFromInt(1), "Btu/gal (US)", "gal/MBtu")
	require.NoError(t, err)
	assert.True(t, conversion.Value.Equal(decimal.NewFromInt(1_000_000)), "got %s", conversion.Value)
}

func TestReciprocal_IsInverseUnit(t *testing.T) {
	tests := []struct {
		category   *reciprocalCategory
		identifier string
		expected   bool
	}{
		{fuelConsumptionCategory, "L/100km", true},
		{fuelConsumptionCategory, "gal (UK)/100mi", true},
		{fuelConsumptionCategory, "km/L", false},
		{fuelConsumptionCategory, "mpg (US)", false},
		{specificEnergyCategory, "g/kWh", true},
		{specificEnergyCategory, "lb/Btu", true},
		{specificEnergyCategory, "J/kg", false},
		{energyDensityCategory, "m³/MJ", true},
		{energyDensityCategory, "L/J", true},
		{energyDensityCategory, "gal/MBtu", true},
		{energyDensityCategory, "J/L", false},
		{energyDensityCategory, "Btu/gal (US)", false},
		{energyDensityCategory, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.category.IsInverseUnit(tt.identifier))
		})
	}
}
