package converter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// reciprocalCategory handles tables that mix a quantity and its reciprocal
// (km/L against L/100km, J/kg against g/kWh). For an inverse unit the factor is
// the value that equals one base unit, so the standard value is factor / value
// instead of value * factor, and symmetrically on the way out.
type reciprocalCategory struct {
	meta
	table   *domain.UnitTable
	inverse domain.InverseRule
}

func newReciprocalCategory(m meta, table *domain.UnitTable, inverse domain.InverseRule) *reciprocalCategory {
	return &reciprocalCategory{meta: m, table: table, inverse: inverse}
}

func (c *reciprocalCategory) Units() []domain.Unit {
	return c.table.Units()
}

func (c *reciprocalCategory) Resolve(identifier string) (domain.Unit, bool) {
	unit, _, ok := c.table.Lookup(identifier)
	return unit, ok
}

// IsInverseUnit reports whether the identifier resolves to an inverse unit
func (c *reciprocalCategory) IsInverseUnit(identifier string) bool {
	unit, _, ok := c.table.Lookup(identifier)
	return ok && c.inverse.IsInverse(unit.ID)
}

func (c *reciprocalCategory) Convert(value decimal.Decimal, from, to string) (domain.Conversion, error) {
	fromUnit, fromFactor, ok := c.table.Lookup(from)
	if !ok {
		return domain.UnitNotFound(value, from), nil
	}
	toUnit, toFactor, ok := c.table.Lookup(to)
	if !ok {
		return domain.UnitNotFound(value, to), nil
	}

	if fromUnit.ID == toUnit.ID {
		return domain.Converted(value, fromUnit.ID, toUnit.ID), nil
	}

	fromInverse := c.inverse.IsInverse(fromUnit.ID)
	toInverse := c.inverse.IsInverse(toUnit.ID)
	if value.IsZero() && (fromInverse || toInverse) {
		return domain.Conversion{}, fmt.Errorf("convert %s from %q to %q: %w", c.id, fromUnit.ID, toUnit.ID, domain.ErrNoReciprocal)
	}

	standard := value.Mul(fromFactor)
	if fromInverse {
		var err error
		if standard, err = quo(fromFactor, value); err != nil {
			return domain.Conversion{}, fmt.Errorf("convert %s from %q: %w", c.id, fromUnit.ID, err)
		}
	}

	var result decimal.Decimal
	var err error
	if toInverse {
		result, err = quo(toFactor, standard)
	} else {
		result, err = quo(standard, toFactor)
	}
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("convert %s to %q: %w", c.id, toUnit.ID, err)
	}

	return domain.Converted(result, fromUnit.ID, toUnit.ID), nil
}
