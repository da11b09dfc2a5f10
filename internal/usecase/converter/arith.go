package converter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

const (
	// significantDigits is the minimum number of significant digits a quotient keeps
	// Factors span 1e-44..1e30, so a fixed count of decimal places is not enough
	significantDigits = 40

	// minScale keeps at least shopspring's default number of decimal places
	minScale = 16

	// maxScale caps the quotient's decimal places far below the int32 limit
	maxScale = 1 << 16
)

// quo divides num by den without falling back to binary floating point
// The scale follows the operands' magnitudes so tiny and huge quotients both
// keep significantDigits significant digits
func quo(num, den decimal.Decimal) (decimal.Decimal, error) {
	if den.IsZero() {
		return decimal.Zero, domain.ErrDivisionByZero
	}
	if num.IsZero() {
		return decimal.Zero, nil
	}

	scale := significantDigits - (magnitude(num) - magnitude(den))
	if scale < minScale {
		scale = minScale
	}
	if scale > maxScale {
		return decimal.Zero, fmt.Errorf("%w: quotient needs %d decimal places", domain.ErrValueOutOfRange, scale)
	}

	return num.DivRound(den, int32(scale)), nil
}

// magnitude returns the base-10 exponent of the most significant digit
func magnitude(d decimal.Decimal) int {
	return d.NumDigits() + int(d.Exponent()) - 1
}
