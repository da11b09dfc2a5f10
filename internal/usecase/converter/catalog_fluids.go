package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	flowRateCategory = newLinearCategory(
		meta{id: CategoryFlowRate, icon: "water.waves", description: "Volume of fluid passing per unit of time."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "m³/s", Name: "cubic meter per second", Factor: "1"},
			{Symbol: "m³/min", Name: "cubic meter per minute", Factor: "0.0166666666666666666666666666667"},
			{Symbol: "m³/h", Name: "cubic meter per hour", Factor: "0.000277777777777777777777777777778"},
			{Symbol: "m³/d", Name: "cubic meter per day", Factor: "0.0000115740740740740740740740740741"},
			{Symbol: "L/s", Name: "liter per second", Factor: "0.001"},
			{Symbol: "L/min", Name: "liter per minute", Factor: "0.0000166666666666666666666666666667"},
			{Symbol: "L/h", Name: "liter per hour", Factor: "0.000000277777777777777777777777777778"},
			{Symbol: "mL/s", Name: "milliliter per second", Factor: "0.000001"},
			{Symbol: "mL/min", Name: "milliliter per minute", Factor: "0.0000000166666666666666666666666666667"},
			{Symbol: "ft³/s", Name: "cubic foot per second", Factor: "0.028316846592"},
			{Symbol: "ft³/min", Name: "cubic foot per minute", Factor: "0.0004719474432"},
			{Symbol: "gal (US)/s", Name: "US gallon per second", Factor: "0.003785411784"},
			{Symbol: "gal (US)/min", Name: "US gallon per minute", Factor: "0.0000630901964"},
			{Symbol: "gal (US)/h", Name: "US gallon per hour", Factor: "0.00000105150327333333333333333333333"},
			{Symbol: "gal (UK)/min", Name: "imperial gallon per minute", Factor: "0.0000757681666666666666666666666667"},
			{Symbol: "bbl/d", Name: "oil barrel per day", Factor: "0.00000184013072833333333333333333333"},
			{Symbol: "ac·ft/d", Name: "acre-foot per day", Factor: "0.0142764101568"},
		}),
	)
	massFlowRateCategory = newLinearCategory(
		meta{id: CategoryMassFlowRate, icon: "water.waves.and.arrow.up", description: "Mass of fluid passing per unit of time."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "kg/s", Name: "kilogram per second", Factor: "1"},
			{Symbol: "kg/min", Name: "kilogram per minute", Factor: "0.0166666666666666666666666666667"},
			{Symbol: "kg/h", Name: "kilogram per hour", Factor: "0.000277777777777777777777777777778"},
			{Symbol: "g/s", Name: "gram per second", Factor: "0.001"},
			{Symbol: "g/min", Name: "gram per minute", Factor: "0.0000166666666666666666666666666667"},
			{Symbol: "t/h", Name: "tonne per hour", Factor: "0.277777777777777777777777777778"},
			{Symbol: "t/d", Name: "tonne per day", Factor: "0.0115740740740740740740740740741"},
			{Symbol: "lb/s", Name: "pound per second", Factor: "0.45359237"},
			{Symbol: "lb/min", Name: "pound per minute", Factor: "0.00755987283333333333333333333333"},
			{Symbol: "lb/h", Name: "pound per hour", Factor: "0.000125997880555555555555555555556"},
			{Symbol: "ton (US)/h", Name: "short ton per hour", Factor: "0.251995761111111111111111111111"},
		}),
	)
	dynamicViscosityCategory = newLinearCategory(
		meta{id: CategoryDynamicViscosity, icon: "drop.triangle", description: "Resistance of a fluid to shear flow."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Pa·s", Name: "pascal second", Factor: "1"},
			{Symbol: "mPa·s", Name: "millipascal second", Factor: "0.001"},
			{Symbol: "P", Name: "poise", Factor: "0.1"},
			{Symbol: "cP", Name: "centipoise", Factor: "0.001"},
			{Symbol: "N·s/m²", Name: "newton second per square meter", Factor: "1"},
			{Symbol: "dyn·s/cm²", Name: "dyne second per square centimeter", Factor: "0.1"},
			{Symbol: "kgf·s/m²", Name: "kilogram-force second per square meter", Factor: "9.80665"},
			{Symbol: "lbf·s/ft²", Name: "pound-force second per square foot", Factor: "47.8802589803358426161296767038"},
			{Symbol: "reyn", Name: "reyn", Factor: "6894.75729316836133672267344535"},
			{Symbol: "lb/(ft·s)", Name: "pound per foot second", Factor: "1.48816394356955380577427821522"},
			{Symbol: "lb/(ft·h)", Name: "pound per foot hour", Factor: "0.00041337887321376494604841061534"},
		}),
	)
	kinematicViscosityCategory = newLinearCategory(
		meta{id: CategoryKinematicViscosity, icon: "drop.halffull", description: "Dynamic viscosity divided by density."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "m²/s", Name: "square meter per second", Factor: "1"},
			{Symbol: "m²/h", Name: "square meter per hour", Factor: "0.000277777777777777777777777777778"},
			{Symbol: "cm²/s", Name: "square centimeter per second", Factor: "0.0001"},
			{Symbol: "St", Name: "stokes", Factor: "0.0001"},
			{Symbol: "cSt", Name: "centistokes", Factor: "0.000001"},
			{Symbol: "mm²/s", Name: "square millimeter per second", Factor: "0.000001"},
			{Symbol: "ft²/s", Name: "square foot per second", Factor: "0.09290304"},
			{Symbol: "ft²/h", Name: "square foot per hour", Factor: "0.0000258064"},
			{Symbol: "in²/s", Name: "square inch per second", Factor: "0.00064516"},
		}),
	)
	surfaceTensionCategory = newLinearCategory(
		meta{id: CategorySurfaceTension, icon: "circle.grid.cross", description: "Force per unit length along a liquid surface."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "N/m", Name: "newton per meter", Factor: "1"},
			{Symbol: "mN/m", Name: "millinewton per meter", Factor: "0.001"},
			{Symbol: "dyn/cm", Name: "dyne per centimeter", Factor: "0.001"},
			{Symbol: "erg/cm²", Name: "erg per square centimeter", Factor: "0.001"},
			{Symbol: "gf/cm", Name: "gram-force per centimeter", Factor: "0.980665"},
			{Symbol: "kgf/m", Name: "kilogram-force per meter", Factor: "9.80665"},
			{Symbol: "lbf/in", Name: "pound-force per inch", Factor: "175.126835246476377952755905512"},
			{Symbol: "lbf/ft", Name: "pound-force per foot", Factor: "14.5939029372063648293963254593"},
		}),
	)
	concentrationCategory = newLinearCategory(
		meta{id: CategoryConcentration, icon: "testtube.2", description: "Amount of substance per unit volume of solution."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "mol/m³", Name: "mole per cubic meter", Factor: "1"},
			{Symbol: "mol/L", Name: "mole per liter", Factor: "1000"},
			{Symbol: "M", Name: "molar", Factor: "1000"},
			{Symbol: "mM", Name: "millimolar", Factor: "1"},
			{Symbol: "µM", Name: "micromolar", Factor: "0.001"},
			{Symbol: "nM", Name: "nanomolar", Factor: "0.000001"},
			{Symbol: "mmol/L", Name: "millimole per liter", Factor: "1"},
			{Symbol: "kmol/m³", Name: "kilomole per cubic meter", Factor: "1000"},
			{Symbol: "mol/cm³", Name: "mole per cubic centimeter", Factor: "1000000"},
		}),
	)
)
