package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConversionStatus tags the outcome of a conversion
type ConversionStatus string

const (
	StatusConverted    ConversionStatus = "CONVERTED"
	StatusUnitNotFound ConversionStatus = "UNIT_NOT_FOUND"
)

// Conversion is the tagged result of a conversion
// For StatusUnitNotFound, Value is the original input and MissingUnit holds the
// identifier that could not be resolved
type Conversion struct {
	Value       decimal.Decimal
	Status      ConversionStatus
	From        string // canonical from-unit ID when resolved
	To          string // canonical to-unit ID when resolved
	MissingUnit string
}

// Converted builds a successful conversion result
func Converted(value decimal.Decimal, from, to string) Conversion {
	return Conversion{
		Value:  value,
		Status: StatusConverted,
		From:   from,
		To:     to,
	}
}

// UnitNotFound builds a passthrough result carrying the original value
func UnitNotFound(original decimal.Decimal, missing string) Conversion {
	return Conversion{
		Value:       original,
		Status:      StatusUnitNotFound,
		MissingUnit: missing,
	}
}

// OK reports whether both units were resolved
func (c Conversion) OK() bool {
	return c.Status == StatusConverted
}

// Err returns ErrUnitNotFound (wrapped with the identifier) for passthrough results
// Callers that want strict handling check this instead of using Value directly
func (c Conversion) Err() error {
	if c.OK() {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnitNotFound, c.MissingUnit)
}
