package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	specificEnergyCategory = newReciprocalCategory(
		meta{id: CategorySpecificEnergy, icon: "flame", description: "Energy per unit mass of fuel and its reciprocal, fuel mass per energy."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "J/kg", Name: "joule per kilogram", Factor: "1"},
			{Symbol: "kJ/kg", Name: "kilojoule per kilogram", Factor: "1000"},
			{Symbol: "MJ/kg", Name: "megajoule per kilogram", Factor: "1000000"},
			{Symbol: "cal/g", Name: "calorie per gram", Factor: "4186.8"},
			{Symbol: "kcal/kg", Name: "kilocalorie per kilogram", Factor: "4186.8"},
			{Symbol: "Btu/lb", Name: "BTU per pound", Factor: "2326"},
			{Symbol: "Wh/kg", Name: "watt-hour per kilogram", Factor: "3600"},
			{Symbol: "kWh/kg", Name: "kilowatt-hour per kilogram", Factor: "3600000"},
			{Symbol: "g/J", Name: "gram per joule", Factor: "1000"},
			{Symbol: "g/kJ", Name: "gram per kilojoule", Factor: "1000000"},
			{Symbol: "g/cal", Name: "gram per calorie", Factor: "4186.8"},
			{Symbol: "g/kWh", Name: "gram per kilowatt-hour", Factor: "3600000000"},
			{Symbol: "lb/Btu", Name: "pound per BTU", Factor: "2326"},
			{Symbol: "lb/kWh", Name: "pound per kilowatt-hour", Factor: "7936641.43865559290602705684842"},
		}),
		domain.InverseRule{Prefixes: []string{"g/", "lb/"}},
	)
	energyDensityCategory = newReciprocalCategory(
		meta{id: CategoryEnergyDensity, icon: "flame.fill", description: "Energy per unit volume of fuel and its reciprocal, fuel volume per energy."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "J/m³", Name: "joule per cubic meter", Factor: "1"},
			{Symbol: "kJ/m³", Name: "kilojoule per cubic meter", Factor: "1000"},
			{Symbol: "MJ/m³", Name: "megajoule per cubic meter", Factor: "1000000"},
			{Symbol: "J/L", Name: "joule per liter", Factor: "1000"},
			{Symbol: "kJ/L", Name: "kilojoule per liter", Factor: "1000000"},
			{Symbol: "MJ/L", Name: "megajoule per liter", Factor: "1000000000"},
			{Symbol: "kcal/m³", Name: "kilocalorie per cubic meter", Factor: "4186.8"},
			{Symbol: "cal/cm³", Name: "calorie per cubic centimeter", Factor: "4186800"},
			{Symbol: "Btu/ft³", Name: "BTU per cubic foot", Factor: "37258.9458078312846622776943425"},
			{Symbol: "Btu/gal (US)", Name: "BTU per US gallon", Factor: "278716.269939101557993142233004"},
			{Symbol: "therm/ft³", Name: "therm per cubic foot", Factor: "3725894580.78312846622776943425"},
			{Symbol: "m³/J", Name: "cubic meter per joule", Factor: "1"},
			{Symbol: "m³/MJ", Name: "cubic meter per megajoule", Factor: "1000000"},
			{Symbol: "L/J", Name: "liter per joule", Factor: "1000"},
			{Symbol: "L/MJ", Name: "liter per megajoule", Factor: "1000000000"},
			{Symbol: "gal/MBtu", Name: "US gallon per million BTU", Factor: "278716269939.101557993142233004"},
		}),
		domain.InverseRule{IDs: []string{"gal/MBtu"}, Prefixes: []string{"m³/", "L/"}},
	)
	heatFluxDensityCategory = newLinearCategory(
		meta{id: CategoryHeatFluxDensity, icon: "sun.max", description: "Heat flow per unit area."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "W/m²", Name: "watt per square meter", Factor: "1"},
			{Symbol: "kW/m²", Name: "kilowatt per square meter", Factor: "1000"},
			{Symbol: "W/cm²", Name: "watt per square centimeter", Factor: "10000"},
			{Symbol: "W/in²", Name: "watt per square inch", Factor: "1550.00310000620001240002480005"},
			{Symbol: "kcal/(h·m²)", Name: "kilocalorie per hour per square meter", Factor: "1.163"},
			{Symbol: "cal/(s·cm²)", Name: "calorie per second per square centimeter", Factor: "41868"},
			{Symbol: "Btu/(h·ft²)", Name: "BTU per hour per square foot", Factor: "3.15459074506304876807284478766"},
			{Symbol: "Btu/(s·ft²)", Name: "BTU per second per square foot", Factor: "11356.5266822269755650622412356"},
			{Symbol: "hp/ft²", Name: "horsepower per square foot", Factor: "8026.64661546350065616797900262"},
			{Symbol: "erg/(s·cm²)", Name: "erg per second per square centimeter", Factor: "0.001"},
		}),
	)
	heatTransferCoefficientCategory = newLinearCategory(
		meta{id: CategoryHeatTransferCoefficient, icon: "arrow.left.and.right", description: "Heat flow per unit area per degree of temperature difference."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "W/(m²·K)", Name: "watt per square meter kelvin", Factor: "1"},
			{Symbol: "kW/(m²·K)", Name: "kilowatt per square meter kelvin", Factor: "1000"},
			{Symbol: "W/(cm²·°C)", Name: "watt per square centimeter degree Celsius", Factor: "10000"},
			{Symbol: "kcal/(h·m²·°C)", Name: "kilocalorie per hour square meter degree Celsius", Factor: "1.163"},
			{Symbol: "cal/(s·cm²·°C)", Name: "calorie per second square centimeter degree Celsius", Factor: "41868"},
			{Symbol: "Btu/(h·ft²·°F)", Name: "BTU per hour square foot degree Fahrenheit", Factor: "5.6782633411134877825311206178"},
		}),
	)
	specificHeatCapacityCategory = newLinearCategory(
		meta{id: CategorySpecificHeatCapacity, icon: "thermometer.sun", description: "Heat needed to raise a unit mass by one degree."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "J/(kg·K)", Name: "joule per kilogram kelvin", Factor: "1"},
			{Symbol: "kJ/(kg·K)", Name: "kilojoule per kilogram kelvin", Factor: "1000"},
			{Symbol: "J/(g·°C)", Name: "joule per gram degree Celsius", Factor: "1000"},
			{Symbol: "cal/(g·°C)", Name: "calorie per gram degree Celsius", Factor: "4186.8"},
			{Symbol: "kcal/(kg·°C)", Name: "kilocalorie per kilogram degree Celsius", Factor: "4186.8"},
			{Symbol: "Btu/(lb·°F)", Name: "BTU per pound degree Fahrenheit", Factor: "4186.8"},
			{Symbol: "kWh/(kg·K)", Name: "kilowatt-hour per kilogram kelvin", Factor: "3600000"},
		}),
	)
	thermalConductivityCategory = newLinearCategory(
		meta{id: CategoryThermalConductivity, icon: "thermometer.medium", description: "Ability of a material to conduct heat."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "W/(m·K)", Name: "watt per meter kelvin", Factor: "1"},
			{Symbol: "kW/(m·K)", Name: "kilowatt per meter kelvin", Factor: "1000"},
			{Symbol: "W/(cm·°C)", Name: "watt per centimeter degree Celsius", Factor: "100"},
			{Symbol: "cal/(s·cm·°C)", Name: "calorie per second centimeter degree Celsius", Factor: "418.68"},
			{Symbol: "kcal/(h·m·°C)", Name: "kilocalorie per hour meter degree Celsius", Factor: "1.163"},
			{Symbol: "Btu/(h·ft·°F)", Name: "BTU per hour foot degree Fahrenheit", Factor: "1.7307346663713910761154855643"},
			{Symbol: "Btu·in/(h·ft²·°F)", Name: "BTU inch per hour square foot degree Fahrenheit", Factor: "0.144227888864282589676290463692"},
		}),
	)
	thermalResistanceCategory = newLinearCategory(
		meta{id: CategoryThermalResistance, icon: "thermometer.low", description: "Temperature difference per unit of heat flow."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "K/W", Name: "kelvin per watt", Factor: "1"},
			{Symbol: "K/kW", Name: "kelvin per kilowatt", Factor: "0.001"},
			{Symbol: "°C/W", Name: "degree Celsius per watt", Factor: "1"},
			{Symbol: "°F·h/Btu", Name: "degree Fahrenheit hour per BTU", Factor: "1.89563424062663440002557008895"},
		}),
	)
)
