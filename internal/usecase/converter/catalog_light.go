package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	luminanceCategory = newLinearCategory(
		meta{id: CategoryLuminance, icon: "sun.min", description: "Luminous intensity per unit area of a light source."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "cd/m²", Name: "candela per square meter", Factor: "1"},
			{Symbol: "nt", Name: "nit", Factor: "1"},
			{Symbol: "cd/cm²", Name: "candela per square centimeter", Factor: "10000"},
			{Symbol: "cd/ft²", Name: "candela per square foot", Factor: "10.7639104167097223083335055559"},
			{Symbol: "cd/in²", Name: "candela per square inch", Factor: "1550.00310000620001240002480005"},
			{Symbol: "sb", Name: "stilb", Factor: "10000"},
			{Symbol: "asb", Name: "apostilb", Factor: "0.318309886183790671537767526745"},
			{Symbol: "L", Name: "lambert", Factor: "3183.09886183790671537767526745"},
			{Symbol: "mL", Name: "millilambert", Factor: "3.18309886183790671537767526745"},
			{Symbol: "fL", Name: "foot-lambert", Factor: "3.42625909963539052691674596165"},
		}),
	)
	illuminanceCategory = newLinearCategory(
		meta{id: CategoryIlluminance, icon: "lightbulb", description: "Luminous flux falling on a unit area."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "lx", Name: "lux", Factor: "1"},
			{Symbol: "klx", Name: "kilolux", Factor: "1000"},
			{Symbol: "lm/m²", Name: "lumen per square meter", Factor: "1"},
			{Symbol: "lm/cm²", Name: "lumen per square centimeter", Factor: "10000"},
			{Symbol: "ph", Name: "phot", Factor: "10000"},
			{Symbol: "fc", Name: "foot-candle", Factor: "10.7639104167097223083335055559"},
			{Symbol: "lm/ft²", Name: "lumen per square foot", Factor: "10.7639104167097223083335055559"},
			{Symbol: "nx", Name: "nox", Factor: "0.001"},
		}),
	)
	luminousIntensityCategory = newLinearCategory(
		meta{id: CategoryLuminousIntensity, icon: "light.max", description: "Power emitted by a light source in a given direction."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "cd", Name: "candela", Factor: "1"},
			{Symbol: "mcd", Name: "millicandela", Factor: "0.001"},
			{Symbol: "kcd", Name: "kilocandela", Factor: "1000"},
			{Symbol: "cp", Name: "candlepower", Factor: "1"},
			{Symbol: "lm/sr", Name: "lumen per steradian", Factor: "1"},
			{Symbol: "HK", Name: "Hefner candle", Factor: "0.903"},
			{Symbol: "IC", Name: "international candle", Factor: "1.019"},
		}),
	)
)
