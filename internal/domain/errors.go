package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnitNotFound is returned in strict mode when a unit identifier does not resolve
	ErrUnitNotFound = errors.New("unit not found")

	// ErrCategoryNotFound is returned for unknown category IDs
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSectionNotFound is returned for unknown section IDs
	ErrSectionNotFound = errors.New("section not found")

	// ErrDivisionByZero signals a zero factor or rate, which means a broken table
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNoReciprocal is returned when a zero value is converted to or from an inverse unit
	ErrNoReciprocal = errors.New("zero has no reciprocal")

	// ErrRatesUnavailable is returned when no usable currency rates could be obtained
	ErrRatesUnavailable = errors.New("currency rates unavailable")

	// ErrFavoriteExists is returned when the same favorite conversion is added twice
	ErrFavoriteExists = errors.New("favorite conversion already exists")

	// ErrFavoriteNotFound is returned when a favorite conversion does not exist
	ErrFavoriteNotFound = errors.New("favorite conversion not found")

	// ErrValueOutOfRange is returned for values outside the accepted exponent or precision range
	ErrValueOutOfRange = errors.New("value out of range")
)

const (
	// MaxValueExponent bounds the decimal exponent of an input value in both directions
	MaxValueExponent = 1000

	// MaxValueDigits bounds the number of significant digits of an input value
	MaxValueDigits = 1000

	// sign, decimal point and an exponent suffix on top of the digits
	maxValueLength = MaxValueDigits + 16
)

// ParseError reports an input string that is not a decimal number
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid decimal value %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseValue parses user input into a decimal value
// Input sanitization happens upstream; anything unparseable or out of range is a *ParseError
func ParseValue(input string) (decimal.Decimal, error) {
	if len(input) > maxValueLength {
		return decimal.Zero, &ParseError{
			Input: input[:32] + "...",
			Err:   fmt.Errorf("%w: %d characters", ErrValueOutOfRange, len(input)),
		}
	}

	value, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, &ParseError{Input: input, Err: err}
	}
	if value.IsZero() {
		return decimal.Zero, nil
	}
	if err := CheckValue(value); err != nil {
		return decimal.Zero, &ParseError{Input: input, Err: err}
	}
	return value, nil
}

// CheckValue returns ErrValueOutOfRange (wrapped) when the exponent of value is
// outside ±MaxValueExponent or it carries more than MaxValueDigits digits.
func CheckValue(value decimal.Decimal) error {
	exp := value.Exponent()
	if exp < -MaxValueExponent || exp > MaxValueExponent {
		return fmt.Errorf("%w: exponent %d outside ±%d", ErrValueOutOfRange, exp, MaxValueExponent)
	}
	if digits := value.NumDigits(); digits > MaxValueDigits {
		return fmt.Errorf("%w: %d digits exceeds %d", ErrValueOutOfRange, digits, MaxValueDigits)
	}
	return nil
}
