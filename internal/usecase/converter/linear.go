package converter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

// meta holds the pass-through metadata every category exposes
type meta struct {
	id          domain.CategoryID
	icon        string
	description string
}

func (m meta) ID() domain.CategoryID {
	return m.id
}

func (m meta) Icon() string {
	return m.icon
}

func (m meta) Description() string {
	return m.description
}

// linearCategory converts through the table's base unit:
// base = value * factor[from]; result = base / factor[to]
type linearCategory struct {
	meta
	table *domain.UnitTable
}

func newLinearCategory(m meta, table *domain.UnitTable) *linearCategory {
	return &linearCategory{meta: m, table: table}
}

func (c *linearCategory) Units() []domain.Unit {
	return c.table.Units()
}

func (c *linearCategory) Resolve(identifier string) (domain.Unit, bool) {
	unit, _, ok := c.table.Lookup(identifier)
	return unit, ok
}

func (c *linearCategory) Convert(value decimal.Decimal, from, to string) (domain.Conversion, error) {
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

	result, err := quo(value.Mul(fromFactor), toFactor)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("convert %s from %q to %q: %w", c.id, fromUnit.ID, toUnit.ID, err)
	}

	return domain.Converted(result, fromUnit.ID, toUnit.ID), nil
}
