package converter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

type temperatureScale int

const (
	scaleCelsius temperatureScale = iota
	scaleFahrenheit
	scaleKelvin
	scaleRankine
	scaleReaumur
	scaleTriplePoint
)

var (
	celsiusOffset     = decimal.RequireFromString("273.15")
	fahrenheitOffset  = decimal.NewFromInt(32)
	triplePointKelvin = decimal.RequireFromString("273.16")
	four              = decimal.NewFromInt(4)
	five              = decimal.NewFromInt(5)
	nine              = decimal.NewFromInt(9)
)

// temperatureUnits is the ordered unit list; IDs are the lower-case names
var temperatureUnits = []struct {
	unit    domain.Unit
	scale   temperatureScale
	aliases []string
}{
	{domain.Unit{ID: "celsius", Symbol: "°C", Name: "celsius"}, scaleCelsius, []string{"c", "°c", "degree celsius"}},
	{domain.Unit{ID: "fahrenheit", Symbol: "°F", Name: "fahrenheit"}, scaleFahrenheit, []string{"f", "°f", "degree fahrenheit"}},
	{domain.Unit{ID: "kelvin", Symbol: "K", Name: "kelvin"}, scaleKelvin, []string{"k"}},
	{domain.Unit{ID: "rankine", Symbol: "°R", Name: "rankine"}, scaleRankine, []string{"r", "°r", "degree rankine"}},
	{domain.Unit{ID: "reaumur", Symbol: "°Ré", Name: "réaumur"}, scaleReaumur, []string{"°re", "°ré", "réaumur"}},
	{domain.Unit{ID: "triple point of water", Symbol: "Ttpw", Name: "triple point of water"}, scaleTriplePoint, nil},
}

// temperatureCategory converts through kelvin with affine transforms
// Identifiers are matched case-insensitively against names and symbols.
// The triple point of water is a fixed 273.16 K: converting from it ignores the
// input and converting to it always yields 273.16.
type temperatureCategory struct {
	meta
	scales map[string]temperatureScale
	units  map[temperatureScale]domain.Unit
}

func newTemperatureCategory() *temperatureCategory {
	c := &temperatureCategory{
		meta: meta{
			id:          CategoryTemperature,
			icon:        "thermometer",
			description: "Degree of hotness on the Celsius, Fahrenheit, Kelvin, Rankine and Réaumur scales.",
		},
		scales: make(map[string]temperatureScale),
		units:  make(map[temperatureScale]domain.Unit),
	}

	for _, def := range temperatureUnits {
		c.units[def.scale] = def.unit
		keys := append([]string{def.unit.ID, def.unit.Symbol, def.unit.Name}, def.aliases...)
		for _, key := range keys {
			c.scales[domain.FoldIdentifier(key)] = def.scale
		}
	}

	return c
}

func (c *temperatureCategory) Units() []domain.Unit {
	units := make([]domain.Unit, 0, len(temperatureUnits))
	for _, def := range temperatureUnits {
		units = append(units, def.unit)
	}
	return units
}

func (c *temperatureCategory) Resolve(identifier string) (domain.Unit, bool) {
	scale, ok := c.scales[domain.FoldIdentifier(identifier)]
	if !ok {
		return domain.Unit{}, false
	}
	return c.units[scale], true
}

func (c *temperatureCategory) Convert(value decimal.Decimal, from, to string) (domain.Conversion, error) {
	fromScale, ok := c.scales[domain.FoldIdentifier(from)]
	if !ok {
		return domain.UnitNotFound(value, from), nil
	}
	toScale, ok := c.scales[domain.FoldIdentifier(to)]
	if !ok {
		return domain.UnitNotFound(value, to), nil
	}

	fromID, toID := c.units[fromScale].ID, c.units[toScale].ID
	if fromScale == toScale {
		return domain.Converted(value, fromID, toID), nil
	}

	kelvin, err := toKelvin(fromScale, value)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("convert temperature from %q: %w", fromID, err)
	}
	result, err := fromKelvin(toScale, kelvin)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("convert temperature to %q: %w", toID, err)
	}

	return domain.Converted(result, fromID, toID), nil
}

func toKelvin(scale temperatureScale, v decimal.Decimal) (decimal.Decimal, error) {
	switch scale {
	case scaleCelsius:
		return v.Add(celsiusOffset), nil
	case scaleFahrenheit:
		k, err := quo(v.Sub(fahrenheitOffset).Mul(five), nine)
		if err != nil {
			return decimal.Zero, err
		}
		return k.Add(celsiusOffset), nil
	case scaleRankine:
		return quo(v.Mul(five), nine)
	case scaleReaumur:
		k, err := quo(v.Mul(five), four)
		if err != nil {
			return decimal.Zero, err
		}
		return k.Add(celsiusOffset), nil
	case scaleTriplePoint:
		return triplePointKelvin, nil
	default:
		return v, nil
	}
}

func fromKelvin(scale temperatureScale, k decimal.Decimal) (decimal.Decimal, error) {
	switch scale {
	case scaleCelsius:
		return k.Sub(celsiusOffset), nil
	case scaleFahrenheit:
		f, err := quo(k.Sub(celsiusOffset).Mul(nine), five)
		if err != nil {
			return decimal.Zero, err
		}
		return f.Add(fahrenheitOffset), nil
	case scaleRankine:
		return quo(k.Mul(nine), five)
	case scaleReaumur:
		return quo(k.Sub(celsiusOffset).Mul(four), five)
	case scaleTriplePoint:
		return triplePointKelvin, nil
	default:
		return k, nil
	}
}
