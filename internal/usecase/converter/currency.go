package converter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// RateSource supplies the live currency rate snapshot
type RateSource interface {
	Snapshot() domain.CurrencyRates
}

// currencyCategory treats the live rate snapshot as a unit table whose
// factors change at runtime
type currencyCategory struct {
	meta
	source RateSource
	units  []domain.Unit
	known  map[string]domain.Unit
}

func newCurrencyCategory(source RateSource) *currencyCategory {
	c := &currencyCategory{
		meta: meta{
			id:          CategoryCurrency,
			icon:        "dollarsign.circle",
			description: "Exchange between currencies using the latest USD-relative rates.",
		},
		source: source,
		units:  make([]domain.Unit, 0, len(domain.KnownCurrencies)),
		known:  make(map[string]domain.Unit, len(domain.KnownCurrencies)),
	}
	for _, cur := range domain.KnownCurrencies {
		unit := domain.Unit{ID: cur.Code, Symbol: cur.Code, Name: cur.Name}
		c.units = append(c.units, unit)
		c.known[cur.Code] = unit
	}
	return c
}

func (c *currencyCategory) Units() []domain.Unit {
	units := make([]domain.Unit, len(c.units))
	copy(units, c.units)
	return units
}

// Resolve accepts known codes and any code present in the live snapshot
func (c *currencyCategory) Resolve(identifier string) (domain.Unit, bool) {
	if unit, ok := c.known[identifier]; ok {
		return unit, true
	}
	if _, ok := c.snapshot().Rate(identifier); ok {
		return domain.Unit{ID: identifier, Symbol: identifier, Name: identifier}, true
	}
	return domain.Unit{}, false
}

func (c *currencyCategory) Convert(value decimal.Decimal, from, to string) (domain.Conversion, error) {
	return ConvertCurrency(c.snapshot(), value, from, to)
}

func (c *currencyCategory) snapshot() domain.CurrencyRates {
	if c.source == nil {
		return domain.CurrencyRates{}
	}
	return c.source.Snapshot()
}

// ConvertCurrency converts between two currency codes with an explicit snapshot:
// usd = value / rate[from]; result = usd * rate[to]
// A code missing from the snapshot passes the value through unchanged.
func ConvertCurrency(rates domain.CurrencyRates, value decimal.Decimal, from, to string) (domain.Conversion, error) {
	fromRate, ok := rates.Rate(from)
	if !ok {
		return domain.UnitNotFound(value, from), nil
	}
	toRate, ok := rates.Rate(to)
	if !ok {
		return domain.UnitNotFound(value, to), nil
	}

	if from == to {
		return domain.Converted(value, from, to), nil
	}

	usd, err := quo(value, fromRate)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("convert currency from %q: %w", from, err)
	}

	return domain.Converted(usd.Mul(toRate), from, to), nil
}
