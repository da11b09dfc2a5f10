package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// KeyBy selects which column of a unit table is used as the unit identifier
type KeyBy int

const (
	KeyBySymbol KeyBy = iota
	KeyByName
)

// Unit represents one selectable unit of a category
// ID is exactly the identifier the category's Convert accepts
type Unit struct {
	ID     string
	Symbol string
	Name   string
}

// UnitDef declares a row of a unit table
// Factor is the decimal ratio of the unit to the table's implicit base unit
type UnitDef struct {
	Symbol string
	Name   string
	Factor string
}

// UnitTable is an immutable mapping from unit identifier to conversion factor,
// scoped to one category. Every factor is relative to one implicit base unit.
type UnitTable struct {
	keyBy         KeyBy
	caseSensitive bool
	units         []Unit
	entries       map[string]tableEntry // normalized key -> entry
}

type tableEntry struct {
	unit   Unit
	factor decimal.Decimal
}

// NewUnitTable builds a unit table from its definitions
// Returns an error if a factor cannot be parsed or is zero, or if two units
// share an identifier after the table's case policy is applied
func NewUnitTable(keyBy KeyBy, caseSensitive bool, defs []UnitDef) (*UnitTable, error) {
	if len(defs) == 0 {
		return nil, errors.New("unit table must have at least one unit")
	}

	t := &UnitTable{
		keyBy:         keyBy,
		caseSensitive: caseSensitive,
		units:         make([]Unit, 0, len(defs)),
		entries:       make(map[string]tableEntry, len(defs)),
	}

	for _, def := range defs {
		id := def.Symbol
		if keyBy == KeyByName {
			id = def.Name
		}
		if id == "" {
			return nil, fmt.Errorf("unit %q/%q has an empty identifier", def.Symbol, def.Name)
		}

		factor, err := decimal.NewFromString(def.Factor)
		if err != nil {
			return nil, fmt.Errorf("invalid factor for unit %q: %w", id, err)
		}
		if factor.IsZero() {
			return nil, fmt.Errorf("unit %q: %w", id, ErrDivisionByZero)
		}

		key := t.normalize(id)
		if existing, ok := t.entries[key]; ok {
			return nil, fmt.Errorf("unit %q collides with %q in the same table", id, existing.unit.ID)
		}

		unit := Unit{ID: id, Symbol: def.Symbol, Name: def.Name}
		t.entries[key] = tableEntry{unit: unit, factor: factor}
		t.units = append(t.units, unit)
	}

	return t, nil
}

// MustNewUnitTable is like NewUnitTable but panics if the table is malformed
// Tables are static data, so a failure here is an authoring bug
func MustNewUnitTable(keyBy KeyBy, caseSensitive bool, defs []UnitDef) *UnitTable {
	t, err := NewUnitTable(keyBy, caseSensitive, defs)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup resolves an identifier to its unit and factor
func (t *UnitTable) Lookup(identifier string) (Unit, decimal.Decimal, bool) {
	entry, ok := t.entries[t.normalize(identifier)]
	if !ok {
		return Unit{}, decimal.Zero, false
	}
	return entry.unit, entry.factor, true
}

// Units returns the ordered unit list of the table
func (t *UnitTable) Units() []Unit {
	units := make([]Unit, len(t.units))
	copy(units, t.units)
	return units
}

// KeyBy reports which column the table is keyed by
func (t *UnitTable) KeyBy() KeyBy {
	return t.keyBy
}

// CaseSensitive reports whether identifiers must match case exactly
func (t *UnitTable) CaseSensitive() bool {
	return t.caseSensitive
}

func (t *UnitTable) normalize(identifier string) string {
	if t.caseSensitive {
		return identifier
	}
	return FoldIdentifier(identifier)
}

// FoldIdentifier returns the case-folded form of a unit identifier
// A new Caser is created per call since casers are not safe for concurrent use
func FoldIdentifier(identifier string) string {
	return cases.Fold().String(identifier)
}
