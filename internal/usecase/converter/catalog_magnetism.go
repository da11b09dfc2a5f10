package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	magneticFluxCategory = newLinearCategory(
		meta{id: CategoryMagneticFlux, icon: "circle.circle", description: "Total magnetic field passing through a surface."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Wb", Name: "weber", Factor: "1"},
			{Symbol: "mWb", Name: "milliweber", Factor: "0.001"},
			{Symbol: "µWb", Name: "microweber", Factor: "0.000001"},
			{Symbol: "V·s", Name: "volt second", Factor: "1"},
			{Symbol: "T·m²", Name: "tesla square meter", Factor: "1"},
			{Symbol: "Mx", Name: "maxwell", Factor: "0.00000001"},
			{Symbol: "kMx", Name: "kilomaxwell", Factor: "0.00001"},
			{Symbol: "Φ₀", Name: "magnetic flux quantum", Factor: "0.000000000000002067833848"},
		}),
	)
	magneticFluxDensityCategory = newLinearCategory(
		meta{id: CategoryMagneticFluxDensity, icon: "circle.hexagongrid", description: "Magnetic flux per unit area."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "T", Name: "tesla", Factor: "1"},
			{Symbol: "mT", Name: "millitesla", Factor: "0.001"},
			{Symbol: "µT", Name: "microtesla", Factor: "0.000001"},
			{Symbol: "nT", Name: "nanotesla", Factor: "0.000000001"},
			{Symbol: "Wb/m²", Name: "weber per square meter", Factor: "1"},
			{Symbol: "G", Name: "gauss", Factor: "0.0001"},
			{Symbol: "kG", Name: "kilogauss", Factor: "0.1"},
			{Symbol: "mG", Name: "milligauss", Factor: "0.0000001"},
			{Symbol: "Mx/cm²", Name: "maxwell per square centimeter", Factor: "0.0001"},
			{Symbol: "γ", Name: "gamma", Factor: "0.000000001"},
		}),
	)
	magneticFieldStrengthCategory = newLinearCategory(
		meta{id: CategoryMagneticFieldStrength, icon: "dot.radiowaves.left.and.right", description: "Magnetizing force produced by a current."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "A/m", Name: "ampere per meter", Factor: "1"},
			{Symbol: "kA/m", Name: "kiloampere per meter", Factor: "1000"},
			{Symbol: "mA/m", Name: "milliampere per meter", Factor: "0.001"},
			{Symbol: "At/m", Name: "ampere-turn per meter", Factor: "1"},
			{Symbol: "Oe", Name: "oersted", Factor: "79.5774715459476678844418816863"},
			{Symbol: "kOe", Name: "kilooersted", Factor: "79577.4715459476678844418816863"},
		}),
	)
	magnetomotiveForceCategory = newLinearCategory(
		meta{id: CategoryMagnetomotiveForce, icon: "arrow.triangle.swap", description: "Property that gives rise to magnetic fields in a circuit."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "At", Name: "ampere-turn", Factor: "1"},
			{Symbol: "kAt", Name: "kiloampere-turn", Factor: "1000"},
			{Symbol: "mAt", Name: "milliampere-turn", Factor: "0.001"},
			{Symbol: "A", Name: "ampere", Factor: "1"},
			{Symbol: "abAt", Name: "abampere-turn", Factor: "10"},
			{Symbol: "Gb", Name: "gilbert", Factor: "0.795774715459476678844418816863"},
		}),
	)
)
