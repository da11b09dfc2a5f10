package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	absorbedDoseCategory = newLinearCategory(
		meta{id: CategoryAbsorbedDose, icon: "rays", description: "Energy deposited by ionizing radiation per unit mass."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Gy", Name: "gray", Factor: "1"},
			{Symbol: "kGy", Name: "kilogray", Factor: "1000"},
			{Symbol: "cGy", Name: "centigray", Factor: "0.01"},
			{Symbol: "mGy", Name: "milligray", Factor: "0.001"},
			{Symbol: "µGy", Name: "microgray", Factor: "0.000001"},
			{Symbol: "rad", Name: "rad", Factor: "0.01"},
			{Symbol: "mrad", Name: "millirad", Factor: "0.00001"},
			{Symbol: "J/kg", Name: "joule per kilogram", Factor: "1"},
			{Symbol: "erg/g", Name: "erg per gram", Factor: "0.0001"},
		}),
	)
	equivalentDoseCategory = newLinearCategory(
		meta{id: CategoryEquivalentDose, icon: "person.badge.shield.checkmark", description: "Biological effect of absorbed radiation."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Sv", Name: "sievert", Factor: "1"},
			{Symbol: "mSv", Name: "millisievert", Factor: "0.001"},
			{Symbol: "µSv", Name: "microsievert", Factor: "0.000001"},
			{Symbol: "rem", Name: "rem", Factor: "0.01"},
			{Symbol: "mrem", Name: "millirem", Factor: "0.00001"},
			{Symbol: "J/kg", Name: "joule per kilogram", Factor: "1"},
		}),
	)
	radioactivityCategory = newLinearCategory(
		meta{id: CategoryRadioactivity, icon: "atom", description: "Rate of decay of a radioactive source."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Bq", Name: "becquerel", Factor: "1"},
			{Symbol: "kBq", Name: "kilobecquerel", Factor: "1000"},
			{Symbol: "MBq", Name: "megabecquerel", Factor: "1000000"},
			{Symbol: "GBq", Name: "gigabecquerel", Factor: "1000000000"},
			{Symbol: "TBq", Name: "terabecquerel", Factor: "1000000000000"},
			{Symbol: "Ci", Name: "curie", Factor: "37000000000"},
			{Symbol: "mCi", Name: "millicurie", Factor: "37000000"},
			{Symbol: "µCi", Name: "microcurie", Factor: "37000"},
			{Symbol: "nCi", Name: "nanocurie", Factor: "37"},
			{Symbol: "pCi", Name: "picocurie", Factor: "0.037"},
			{Symbol: "Rd", Name: "rutherford", Factor: "1000000"},
			{Symbol: "dps", Name: "disintegration per second", Factor: "1"},
			{Symbol: "dpm", Name: "disintegration per minute", Factor: "0.0166666666666666666666666666667"},
		}),
	)
	exposureCategory = newLinearCategory(
		meta{id: CategoryExposure, icon: "sparkles", description: "Ionization produced in air by X and gamma rays."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "C/kg", Name: "coulomb per kilogram", Factor: "1"},
			{Symbol: "mC/kg", Name: "millicoulomb per kilogram", Factor: "0.001"},
			{Symbol: "µC/kg", Name: "microcoulomb per kilogram", Factor: "0.000001"},
			{Symbol: "R", Name: "roentgen", Factor: "0.000258"},
			{Symbol: "mR", Name: "milliroentgen", Factor: "0.000000258"},
			{Symbol: "µR", Name: "microroentgen", Factor: "0.000000000258"},
		}),
	)
)
