package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	lengthCategory = newLinearCategory(
		meta{id: CategoryLength, icon: "ruler", description: "Distance between two points, from the Planck length to the parsec."},
		domain.MustNewUnitTable(domain.KeyByName, false, []domain.UnitDef{
			{Symbol: "km", Name: "kilometer", Factor: "1000"},
			{Symbol: "m", Name: "meter", Factor: "1"},
			{Symbol: "dm", Name: "decimeter", Factor: "0.1"},
			{Symbol: "cm", Name: "centimeter", Factor: "0.01"},
			{Symbol: "mm", Name: "millimeter", Factor: "0.001"},
			{Symbol: "µm", Name: "micrometer", Factor: "0.000001"},
			{Symbol: "nm", Name: "nanometer", Factor: "0.000000001"},
			{Symbol: "pm", Name: "picometer", Factor: "0.000000000001"},
			{Symbol: "Å", Name: "angstrom", Factor: "0.0000000001"},
			{Symbol: "mi", Name: "mile", Factor: "1609.344"},
			{Symbol: "yd", Name: "yard", Factor: "0.9144"},
			{Symbol: "ft", Name: "foot", Factor: "0.3048"},
			{Symbol: "in", Name: "inch", Factor: "0.0254"},
			{Symbol: "mil", Name: "thou", Factor: "0.0000254"},
			{Symbol: "nmi", Name: "nautical mile", Factor: "1852"},
			{Symbol: "ftm", Name: "fathom", Factor: "1.8288"},
			{Symbol: "ch", Name: "chain", Factor: "20.1168"},
			{Symbol: "fur", Name: "furlong", Factor: "201.168"},
			{Symbol: "lea", Name: "league", Factor: "4828.032"},
			{Symbol: "au", Name: "astronomical unit", Factor: "149597870700"},
			{Symbol: "ly", Name: "light year", Factor: "9460730472580800"},
			{Symbol: "pc", Name: "parsec", Factor: "30856775814913673"},
			{Symbol: "lP", Name: "planck length", Factor: "0.00000000000000000000000000000000001616255"},
		}),
	)
	massCategory = newLinearCategory(
		meta{id: CategoryMass, icon: "scalemass", description: "Amount of matter in a body."},
		domain.MustNewUnitTable(domain.KeyByName, false, []domain.UnitDef{
			{Symbol: "t", Name: "tonne", Factor: "1000"},
			{Symbol: "kg", Name: "kilogram", Factor: "1"},
			{Symbol: "g", Name: "gram", Factor: "0.001"},
			{Symbol: "mg", Name: "milligram", Factor: "0.000001"},
			{Symbol: "µg", Name: "microgram", Factor: "0.000000001"},
			{Symbol: "lb", Name: "pound", Factor: "0.45359237"},
			{Symbol: "oz", Name: "ounce", Factor: "0.028349523125"},
			{Symbol: "st", Name: "stone", Factor: "6.35029318"},
			{Symbol: "ton (US)", Name: "short ton", Factor: "907.18474"},
			{Symbol: "ton (UK)", Name: "long ton", Factor: "1016.0469088"},
			{Symbol: "ct", Name: "carat", Factor: "0.0002"},
			{Symbol: "gr", Name: "grain", Factor: "0.00006479891"},
			{Symbol: "oz t", Name: "troy ounce", Factor: "0.0311034768"},
			{Symbol: "dwt", Name: "pennyweight", Factor: "0.00155517384"},
			{Symbol: "slug", Name: "slug", Factor: "14.5939029372063648293963254593"},
			{Symbol: "u", Name: "atomic mass unit", Factor: "0.0000000000000000000000000016605390666"},
			{Symbol: "mP", Name: "planck mass", Factor: "0.00000002176434"},
		}),
	)
	volumeCategory = newLinearCategory(
		meta{id: CategoryVolume, icon: "cube", description: "Three-dimensional space occupied by a liquid or solid."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "m³", Name: "cubic meter", Factor: "1000"},
			{Symbol: "dm³", Name: "cubic decimeter", Factor: "1"},
			{Symbol: "cm³", Name: "cubic centimeter", Factor: "0.001"},
			{Symbol: "mm³", Name: "cubic millimeter", Factor: "0.000001"},
			{Symbol: "hL", Name: "hectoliter", Factor: "100"},
			{Symbol: "L", Name: "liter", Factor: "1"},
			{Symbol: "dL", Name: "deciliter", Factor: "0.1"},
			{Symbol: "cL", Name: "centiliter", Factor: "0.01"},
			{Symbol: "mL", Name: "milliliter", Factor: "0.001"},
			{Symbol: "gal (US)", Name: "US gallon", Factor: "3.785411784"},
			{Symbol: "qt (US)", Name: "US quart", Factor: "0.946352946"},
			{Symbol: "pt (US)", Name: "US pint", Factor: "0.473176473"},
			{Symbol: "cup (US)", Name: "US cup", Factor: "0.2365882365"},
			{Symbol: "fl oz (US)", Name: "US fluid ounce", Factor: "0.0295735295625"},
			{Symbol: "tbsp (US)", Name: "US tablespoon", Factor: "0.01478676478125"},
			{Symbol: "tsp (US)", Name: "US teaspoon", Factor: "0.00492892159375"},
			{Symbol: "gal (UK)", Name: "imperial gallon", Factor: "4.54609"},
			{Symbol: "qt (UK)", Name: "imperial quart", Factor: "1.1365225"},
			{Symbol: "pt (UK)", Name: "imperial pint", Factor: "0.56826125"},
			{Symbol: "fl oz (UK)", Name: "imperial fluid ounce", Factor: "0.0284130625"},
			{Symbol: "in³", Name: "cubic inch", Factor: "0.016387064"},
			{Symbol: "ft³", Name: "cubic foot", Factor: "28.316846592"},
			{Symbol: "yd³", Name: "cubic yard", Factor: "764.554857984"},
			{Symbol: "bbl", Name: "oil barrel", Factor: "158.987294928"},
			{Symbol: "ac·ft", Name: "acre-foot", Factor: "1233481.83754752"},
		}),
	)
	dryVolumeCategory = newLinearCategory(
		meta{id: CategoryDryVolume, icon: "basket", description: "Volume of dry commodities such as grain and produce."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "bu (US)", Name: "US bushel", Factor: "35.23907016688"},
			{Symbol: "pk (US)", Name: "US peck", Factor: "8.80976754172"},
			{Symbol: "gal (US dry)", Name: "US dry gallon", Factor: "4.40488377086"},
			{Symbol: "qt (US dry)", Name: "US dry quart", Factor: "1.101220942715"},
			{Symbol: "pt (US dry)", Name: "US dry pint", Factor: "0.5506104713575"},
			{Symbol: "bbl (US dry)", Name: "US dry barrel", Factor: "115.628198985075"},
			{Symbol: "bu (UK)", Name: "imperial bushel", Factor: "36.36872"},
			{Symbol: "pk (UK)", Name: "imperial peck", Factor: "9.09218"},
			{Symbol: "L", Name: "liter", Factor: "1"},
			{Symbol: "m³", Name: "cubic meter", Factor: "1000"},
		}),
	)
	areaCategory = newLinearCategory(
		meta{id: CategoryArea, icon: "square.dashed", description: "Extent of a two-dimensional surface."},
		domain.MustNewUnitTable(domain.KeyByName, false, []domain.UnitDef{
			{Symbol: "km²", Name: "square kilometer", Factor: "1000000"},
			{Symbol: "ha", Name: "hectare", Factor: "10000"},
			{Symbol: "a", Name: "are", Factor: "100"},
			{Symbol: "m²", Name: "square meter", Factor: "1"},
			{Symbol: "dm²", Name: "square decimeter", Factor: "0.01"},
			{Symbol: "cm²", Name: "square centimeter", Factor: "0.0001"},
			{Symbol: "mm²", Name: "square millimeter", Factor: "0.000001"},
			{Symbol: "mi²", Name: "square mile", Factor: "2589988.110336"},
			{Symbol: "ac", Name: "acre", Factor: "4046.8564224"},
			{Symbol: "ro", Name: "rood", Factor: "1011.7141056"},
			{Symbol: "yd²", Name: "square yard", Factor: "0.83612736"},
			{Symbol: "ft²", Name: "square foot", Factor: "0.09290304"},
			{Symbol: "in²", Name: "square inch", Factor: "0.00064516"},
			{Symbol: "b", Name: "barn", Factor: "0.0000000000000000000000000001"},
		}),
	)
	pressureCategory = newLinearCategory(
		meta{id: CategoryPressure, icon: "gauge", description: "Force applied perpendicular to a surface per unit area."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "Pa", Name: "pascal", Factor: "1"},
			{Symbol: "mPa", Name: "millipascal", Factor: "0.001"},
			{Symbol: "hPa", Name: "hectopascal", Factor: "100"},
			{Symbol: "kPa", Name: "kilopascal", Factor: "1000"},
			{Symbol: "MPa", Name: "megapascal", Factor: "1000000"},
			{Symbol: "GPa", Name: "gigapascal", Factor: "1000000000"},
			{Symbol: "bar", Name: "bar", Factor: "100000"},
			{Symbol: "mbar", Name: "millibar", Factor: "100"},
			{Symbol: "atm", Name: "standard atmosphere", Factor: "101325"},
			{Symbol: "at", Name: "technical atmosphere", Factor: "98066.5"},
			{Symbol: "Torr", Name: "torr", Factor: "133.322368421052631578947368421"},
			{Symbol: "mmHg", Name: "millimeter of mercury", Factor: "133.322387415"},
			{Symbol: "inHg", Name: "inch of mercury", Factor: "3386.389"},
			{Symbol: "cmH₂O", Name: "centimeter of water", Factor: "98.0665"},
			{Symbol: "inH₂O", Name: "inch of water", Factor: "249.08891"},
			{Symbol: "psi", Name: "pound per square inch", Factor: "6894.75729316836133672267344535"},
			{Symbol: "ksi", Name: "kilopound per square inch", Factor: "6894757.29316836133672267344535"},
			{Symbol: "psf", Name: "pound per square foot", Factor: "47.8802589803358426161296767038"},
			{Symbol: "kgf/cm²", Name: "kilogram-force per square centimeter", Factor: "98066.5"},
			{Symbol: "N/m²", Name: "newton per square meter", Factor: "1"},
			{Symbol: "dyn/cm²", Name: "dyne per square centimeter", Factor: "0.1"},
		}),
	)
	speedCategory = newLinearCategory(
		meta{id: CategorySpeed, icon: "speedometer", description: "Distance travelled per unit of time."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "km/h", Name: "kilometer per hour", Factor: "1"},
			{Symbol: "m/s", Name: "meter per second", Factor: "3.6"},
			{Symbol: "km/s", Name: "kilometer per second", Factor: "3600"},
			{Symbol: "mph", Name: "mile per hour", Factor: "1.609344"},
			{Symbol: "kn", Name: "knot", Factor: "1.852"},
			{Symbol: "ft/s", Name: "foot per second", Factor: "1.09728"},
			{Symbol: "ft/min", Name: "foot per minute", Factor: "0.018288"},
			{Symbol: "in/s", Name: "inch per second", Factor: "0.09144"},
			{Symbol: "m/min", Name: "meter per minute", Factor: "0.06"},
			{Symbol: "cm/s", Name: "centimeter per second", Factor: "0.036"},
			{Symbol: "mm/s", Name: "millimeter per second", Factor: "0.0036"},
			{Symbol: "mach", Name: "mach (sea level)", Factor: "1225.044"},
			{Symbol: "c", Name: "speed of light", Factor: "1079252848.8"},
		}),
	)
	durationCategory = newLinearCategory(
		meta{id: CategoryDuration, icon: "clock", description: "Elapsed time between two events."},
		domain.MustNewUnitTable(domain.KeyByName, false, []domain.UnitDef{
			{Symbol: "ka", Name: "millennium", Factor: "31536000000"},
			{Symbol: "c", Name: "century", Factor: "3153600000"},
			{Symbol: "dec", Name: "decade", Factor: "315360000"},
			{Symbol: "a", Name: "year", Factor: "31536000"},
			{Symbol: "mo", Name: "month", Factor: "2629746"},
			{Symbol: "fn", Name: "fortnight", Factor: "1209600"},
			{Symbol: "wk", Name: "week", Factor: "604800"},
			{Symbol: "d", Name: "day", Factor: "86400"},
			{Symbol: "h", Name: "hour", Factor: "3600"},
			{Symbol: "min", Name: "minute", Factor: "60"},
			{Symbol: "s", Name: "second", Factor: "1"},
			{Symbol: "ms", Name: "millisecond", Factor: "0.001"},
			{Symbol: "µs", Name: "microsecond", Factor: "0.000001"},
			{Symbol: "ns", Name: "nanosecond", Factor: "0.000000001"},
			{Symbol: "ps", Name: "picosecond", Factor: "0.000000000001"},
			{Symbol: "sh", Name: "shake", Factor: "0.00000001"},
			{Symbol: "tP", Name: "planck time", Factor: "0.00000000000000000000000000000000000000000005391247"},
		}),
	)
	angleCategory = newLinearCategory(
		meta{id: CategoryAngle, icon: "angle", description: "Rotation between two intersecting lines."},
		domain.MustNewUnitTable(domain.KeyByName, false, []domain.UnitDef{
			{Symbol: "°", Name: "degree", Factor: "3600"},
			{Symbol: "′", Name: "arcminute", Factor: "60"},
			{Symbol: "″", Name: "arcsecond", Factor: "1"},
			{Symbol: "rad", Name: "radian", Factor: "206264.806247096355156473357331"},
			{Symbol: "mrad", Name: "milliradian", Factor: "206.264806247096355156473357331"},
			{Symbol: "gon", Name: "gradian", Factor: "3240"},
			{Symbol: "rev", Name: "revolution", Factor: "1296000"},
			{Symbol: "quad", Name: "quadrant", Factor: "324000"},
			{Symbol: "sxt", Name: "sextant", Factor: "216000"},
			{Symbol: "mil", Name: "mil", Factor: "202.5"},
		}),
	)
	energyCategory = newLinearCategory(
		meta{id: CategoryEnergy, icon: "bolt", description: "Capacity to do work, including heat and electrical energy."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "J", Name: "joule", Factor: "1"},
			{Symbol: "mJ", Name: "millijoule", Factor: "0.001"},
			{Symbol: "µJ", Name: "microjoule", Factor: "0.000001"},
			{Symbol: "kJ", Name: "kilojoule", Factor: "1000"},
			{Symbol: "MJ", Name: "megajoule", Factor: "1000000"},
			{Symbol: "GJ", Name: "gigajoule", Factor: "1000000000"},
			{Symbol: "cal", Name: "calorie", Factor: "4.1868"},
			{Symbol: "kcal", Name: "kilocalorie", Factor: "4186.8"},
			{Symbol: "mWh", Name: "milliwatt-hour", Factor: "3.6"},
			{Symbol: "Wh", Name: "watt-hour", Factor: "3600"},
			{Symbol: "kWh", Name: "kilowatt-hour", Factor: "3600000"},
			{Symbol: "MWh", Name: "megawatt-hour", Factor: "3600000000"},
			{Symbol: "eV", Name: "electronvolt", Factor: "0.0000000000000000001602176634"},
			{Symbol: "keV", Name: "kiloelectronvolt", Factor: "0.0000000000000001602176634"},
			{Symbol: "MeV", Name: "megaelectronvolt", Factor: "0.0000000000001602176634"},
			{Symbol: "Btu", Name: "British thermal unit", Factor: "1055.05585262"},
			{Symbol: "thm", Name: "therm", Factor: "105505585.262"},
			{Symbol: "quad", Name: "quad", Factor: "1055055852620000000"},
			{Symbol: "ft·lbf", Name: "foot-pound", Factor: "1.3558179483314004"},
			{Symbol: "hp·h", Name: "horsepower-hour", Factor: "2684519.537696172792"},
			{Symbol: "erg", Name: "erg", Factor: "0.0000001"},
			{Symbol: "toe", Name: "tonne of oil equivalent", Factor: "41868000000"},
			{Symbol: "Eh", Name: "hartree", Factor: "0.0000000000000000043597447222071"},
		}),
	)
	powerCategory = newLinearCategory(
		meta{id: CategoryPower, icon: "powerplug", description: "Rate at which energy is transferred."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "W", Name: "watt", Factor: "1"},
			{Symbol: "mW", Name: "milliwatt", Factor: "0.001"},
			{Symbol: "µW", Name: "microwatt", Factor: "0.000001"},
			{Symbol: "kW", Name: "kilowatt", Factor: "1000"},
			{Symbol: "MW", Name: "megawatt", Factor: "1000000"},
			{Symbol: "GW", Name: "gigawatt", Factor: "1000000000"},
			{Symbol: "hp", Name: "horsepower", Factor: "745.69987158227022"},
			{Symbol: "PS", Name: "metric horsepower", Factor: "735.49875"},
			{Symbol: "Btu/h", Name: "BTU per hour", Factor: "0.293071070172222222222222222222"},
			{Symbol: "cal/s", Name: "calorie per second", Factor: "4.1868"},
			{Symbol: "kcal/h", Name: "kilocalorie per hour", Factor: "1.163"},
			{Symbol: "ft·lbf/s", Name: "foot-pound per second", Factor: "1.3558179483314004"},
			{Symbol: "erg/s", Name: "erg per second", Factor: "0.0000001"},
			{Symbol: "TR", Name: "ton of refrigeration", Factor: "3516.85284206666666666666666667"},
		}),
	)
	forceCategory = newLinearCategory(
		meta{id: CategoryForce, icon: "arrow.up.and.down", description: "Interaction that changes the motion of a mass."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "N", Name: "newton", Factor: "1"},
			{Symbol: "mN", Name: "millinewton", Factor: "0.001"},
			{Symbol: "µN", Name: "micronewton", Factor: "0.000001"},
			{Symbol: "kN", Name: "kilonewton", Factor: "1000"},
			{Symbol: "MN", Name: "meganewton", Factor: "1000000"},
			{Symbol: "dyn", Name: "dyne", Factor: "0.00001"},
			{Symbol: "kgf", Name: "kilogram-force", Factor: "9.80665"},
			{Symbol: "gf", Name: "gram-force", Factor: "0.00980665"},
			{Symbol: "tf", Name: "tonne-force", Factor: "9806.65"},
			{Symbol: "lbf", Name: "pound-force", Factor: "4.4482216152605"},
			{Symbol: "kip", Name: "kip", Factor: "4448.2216152605"},
			{Symbol: "ozf", Name: "ounce-force", Factor: "0.27801385095378125"},
			{Symbol: "pdl", Name: "poundal", Factor: "0.138254954376"},
		}),
	)
	fuelConsumptionCategory = newReciprocalCategory(
		meta{id: CategoryFuelConsumption, icon: "fuelpump", description: "Distance per volume of fuel and its reciprocal, volume per distance."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "km/L", Name: "kilometer per liter", Factor: "1"},
			{Symbol: "m/L", Name: "meter per liter", Factor: "0.001"},
			{Symbol: "mi/L", Name: "mile per liter", Factor: "1.609344"},
			{Symbol: "mpg (US)", Name: "mile per US gallon", Factor: "0.425143707430272003401149659442"},
			{Symbol: "mpg (UK)", Name: "mile per imperial gallon", Factor: "0.354006189934647136330341018326"},
			{Symbol: "km/gal (US)", Name: "kilometer per US gallon", Factor: "0.264172052358148415379899921609"},
			{Symbol: "L/100km", Name: "liter per 100 kilometers", Factor: "100"},
			{Symbol: "L/km", Name: "liter per kilometer", Factor: "1"},
			{Symbol: "mL/km", Name: "milliliter per kilometer", Factor: "1000"},
			{Symbol: "gal (US)/100mi", Name: "US gallon per 100 miles", Factor: "42.5143707430272003401149659442"},
			{Symbol: "gal (UK)/100mi", Name: "imperial gallon per 100 miles", Factor: "35.4006189934647136330341018326"},
		}),
		domain.InverseRule{IDs: []string{"L/100km", "L/km", "mL/km", "gal (US)/100mi", "gal (UK)/100mi"}},
	)
	dataStorageCategory = newLinearCategory(
		meta{id: CategoryDataStorage, icon: "internaldrive", description: "Quantity of digital information, decimal and binary prefixes."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "b", Name: "bit", Factor: "1"},
			{Symbol: "B", Name: "byte", Factor: "8"},
			{Symbol: "kb", Name: "kilobit", Factor: "1000"},
			{Symbol: "kB", Name: "kilobyte", Factor: "8000"},
			{Symbol: "Kibit", Name: "kibibit", Factor: "1024"},
			{Symbol: "KiB", Name: "kibibyte", Factor: "8192"},
			{Symbol: "Mb", Name: "megabit", Factor: "1000000"},
			{Symbol: "MB", Name: "megabyte", Factor: "8000000"},
			{Symbol: "Mibit", Name: "mebibit", Factor: "1048576"},
			{Symbol: "MiB", Name: "mebibyte", Factor: "8388608"},
			{Symbol: "Gb", Name: "gigabit", Factor: "1000000000"},
			{Symbol: "GB", Name: "gigabyte", Factor: "8000000000"},
			{Symbol: "Gibit", Name: "gibibit", Factor: "1073741824"},
			{Symbol: "GiB", Name: "gibibyte", Factor: "8589934592"},
			{Symbol: "Tb", Name: "terabit", Factor: "1000000000000"},
			{Symbol: "TB", Name: "terabyte", Factor: "8000000000000"},
			{Symbol: "TiB", Name: "tebibyte", Factor: "8796093022208"},
			{Symbol: "PB", Name: "petabyte", Factor: "8000000000000000"},
			{Symbol: "PiB", Name: "pebibyte", Factor: "9007199254740992"},
		}),
	)
)
