package domain

import "github.com/shopspring/decimal"

// CategoryID identifies a physical quantity family (length, mass, currency...)
type CategoryID string

// SectionID identifies a group of categories shown together
type SectionID string

// Category is the capability exposed by every quantity family
// Convert never fails on unknown unit identifiers: it returns the input value
// tagged with StatusUnitNotFound. It only returns an error for arithmetic that
// cannot be performed (division by zero, reciprocal of zero).
type Category interface {
	ID() CategoryID
	Icon() string
	Description() string
	Units() []Unit
	Resolve(identifier string) (Unit, bool)
	Convert(value decimal.Decimal, from, to string) (Conversion, error)
}

// Section groups categories for display
// A category may belong to several sections (temperature does)
type Section struct {
	ID         SectionID
	Title      string
	Icon       string
	Categories []Category
}
