package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	electricChargeCategory = newLinearCategory(
		meta{id: CategoryElectricCharge, icon: "battery.100", description: "Quantity of electricity carried by a body."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "C", Name: "coulomb", Factor: "1"},
			{Symbol: "mC", Name: "millicoulomb", Factor: "0.001"},
			{Symbol: "µC", Name: "microcoulomb", Factor: "0.000001"},
			{Symbol: "nC", Name: "nanocoulomb", Factor: "0.000000001"},
			{Symbol: "pC", Name: "picocoulomb", Factor: "0.000000000001"},
			{Symbol: "kC", Name: "kilocoulomb", Factor: "1000"},
			{Symbol: "MC", Name: "megacoulomb", Factor: "1000000"},
			{Symbol: "A·h", Name: "ampere-hour", Factor: "3600"},
			{Symbol: "mA·h", Name: "milliampere-hour", Factor: "3.6"},
			{Symbol: "A·s", Name: "ampere-second", Factor: "1"},
			{Symbol: "F", Name: "faraday", Factor: "96485.33212331001"},
			{Symbol: "abC", Name: "abcoulomb", Factor: "10"},
			{Symbol: "statC", Name: "statcoulomb", Factor: "0.000000000333564095198152049575576714475"},
			{Symbol: "e", Name: "elementary charge", Factor: "0.0000000000000000001602176634"},
		}),
	)
	electricCurrentCategory = newLinearCategory(
		meta{id: CategoryElectricCurrent, icon: "bolt.horizontal", description: "Flow of electric charge per unit of time."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "A", Name: "ampere", Factor: "1"},
			{Symbol: "kA", Name: "kiloampere", Factor: "1000"},
			{Symbol: "mA", Name: "milliampere", Factor: "0.001"},
			{Symbol: "µA", Name: "microampere", Factor: "0.000001"},
			{Symbol: "nA", Name: "nanoampere", Factor: "0.000000001"},
			{Symbol: "pA", Name: "picoampere", Factor: "0.000000000001"},
			{Symbol: "MA", Name: "megaampere", Factor: "1000000"},
			{Symbol: "C/s", Name: "coulomb per second", Factor: "1"},
			{Symbol: "abA", Name: "abampere", Factor: "10"},
			{Symbol: "Bi", Name: "biot", Factor: "10"},
			{Symbol: "statA", Name: "statampere", Factor: "0.000000000333564095198152049575576714475"},
		}),
	)
	electricPotentialCategory = newLinearCategory(
		meta{id: CategoryElectricPotential, icon: "bolt.circle", description: "Work needed per unit of charge, voltage."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "V", Name: "volt", Factor: "1"},
			{Symbol: "kV", Name: "kilovolt", Factor: "1000"},
			{Symbol: "MV", Name: "megavolt", Factor: "1000000"},
			{Symbol: "mV", Name: "millivolt", Factor: "0.001"},
			{Symbol: "µV", Name: "microvolt", Factor: "0.000001"},
			{Symbol: "nV", Name: "nanovolt", Factor: "0.000000001"},
			{Symbol: "W/A", Name: "watt per ampere", Factor: "1"},
			{Symbol: "abV", Name: "abvolt", Factor: "0.00000001"},
			{Symbol: "statV", Name: "statvolt", Factor: "299.792458"},
		}),
	)
	electricResistanceCategory = newLinearCategory(
		meta{id: CategoryElectricResistance, icon: "poweroff", description: "Opposition to the flow of electric current."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Ω", Name: "ohm", Factor: "1"},
			{Symbol: "kΩ", Name: "kiloohm", Factor: "1000"},
			{Symbol: "MΩ", Name: "megaohm", Factor: "1000000"},
			{Symbol: "GΩ", Name: "gigaohm", Factor: "1000000000"},
			{Symbol: "mΩ", Name: "milliohm", Factor: "0.001"},
			{Symbol: "µΩ", Name: "microohm", Factor: "0.000001"},
			{Symbol: "V/A", Name: "volt per ampere", Factor: "1"},
			{Symbol: "abΩ", Name: "abohm", Factor: "0.000000001"},
			{Symbol: "statΩ", Name: "statohm", Factor: "89875517.873681764"},
		}),
	)
	electricConductanceCategory = newLinearCategory(
		meta{id: CategoryElectricConductance, icon: "cable.connector", description: "Ease with which current flows, the reciprocal of resistance."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "S", Name: "siemens", Factor: "1"},
			{Symbol: "kS", Name: "kilosiemens", Factor: "1000"},
			{Symbol: "mS", Name: "millisiemens", Factor: "0.001"},
			{Symbol: "µS", Name: "microsiemens", Factor: "0.000001"},
			{Symbol: "nS", Name: "nanosiemens", Factor: "0.000000001"},
			{Symbol: "℧", Name: "mho", Factor: "1"},
			{Symbol: "A/V", Name: "ampere per volt", Factor: "1"},
			{Symbol: "abS", Name: "absiemens", Factor: "1000000000"},
			{Symbol: "statS", Name: "statsiemens", Factor: "0.0000000111265005605361843217408996485"},
		}),
	)
	capacitanceCategory = newLinearCategory(
		meta{id: CategoryCapacitance, icon: "minus.plus.batteryblock", description: "Ability to store electric charge."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "F", Name: "farad", Factor: "1"},
			{Symbol: "mF", Name: "millifarad", Factor: "0.001"},
			{Symbol: "µF", Name: "microfarad", Factor: "0.000001"},
			{Symbol: "nF", Name: "nanofarad", Factor: "0.000000001"},
			{Symbol: "pF", Name: "picofarad", Factor: "0.000000000001"},
			{Symbol: "C/V", Name: "coulomb per volt", Factor: "1"},
			{Symbol: "abF", Name: "abfarad", Factor: "1000000000"},
			{Symbol: "statF", Name: "statfarad", Factor: "0.0000000111265005605361843217408996485"},
		}),
	)
	inductanceCategory = newLinearCategory(
		meta{id: CategoryInductance, icon: "point.3.connected.trianglepath.dotted", description: "Opposition to changes in electric current."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "H", Name: "henry", Factor: "1"},
			{Symbol: "kH", Name: "kilohenry", Factor: "1000"},
			{Symbol: "mH", Name: "millihenry", Factor: "0.001"},
			{Symbol: "µH", Name: "microhenry", Factor: "0.000001"},
			{Symbol: "nH", Name: "nanohenry", Factor: "0.000000001"},
			{Symbol: "pH", Name: "picohenry", Factor: "0.000000000001"},
			{Symbol: "Wb/A", Name: "weber per ampere", Factor: "1"},
			{Symbol: "abH", Name: "abhenry", Factor: "0.000000001"},
			{Symbol: "statH", Name: "stathenry", Factor: "89875517.873681764"},
		}),
	)
)
