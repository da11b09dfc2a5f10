package converter

import "github.com/simaogato/unitflow-backend/internal/domain"

var (
	accelerationCategory = newLinearCategory(
		meta{id: CategoryAcceleration, icon: "arrow.up.right", description: "Rate of change of velocity."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "m/s²", Name: "meter per second squared", Factor: "1"},
			{Symbol: "km/s²", Name: "kilometer per second squared", Factor: "1000"},
			{Symbol: "cm/s²", Name: "centimeter per second squared", Factor: "0.01"},
			{Symbol: "mm/s²", Name: "millimeter per second squared", Factor: "0.001"},
			{Symbol: "ft/s²", Name: "foot per second squared", Factor: "0.3048"},
			{Symbol: "in/s²", Name: "inch per second squared", Factor: "0.0254"},
			{Symbol: "mi/s²", Name: "mile per second squared", Factor: "1609.344"},
			{Symbol: "km/(h·s)", Name: "kilometer per hour per second", Factor: "0.277777777777777777777777777778"},
			{Symbol: "mph/s", Name: "mile per hour per second", Factor: "0.44704"},
			{Symbol: "g₀", Name: "standard gravity", Factor: "9.80665"},
			{Symbol: "Gal", Name: "galileo", Factor: "0.01"},
			{Symbol: "mGal", Name: "milligal", Factor: "0.00001"},
		}),
	)
	angularVelocityCategory = newLinearCategory(
		meta{id: CategoryAngularVelocity, icon: "arrow.clockwise", description: "Rate of rotation about an axis."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "rad/s", Name: "radian per second", Factor: "1"},
			{Symbol: "rad/min", Name: "radian per minute", Factor: "0.0166666666666666666666666666667"},
			{Symbol: "rad/h", Name: "radian per hour", Factor: "0.000277777777777777777777777777778"},
			{Symbol: "rad/d", Name: "radian per day", Factor: "0.0000115740740740740740740740740741"},
			{Symbol: "°/s", Name: "degree per second", Factor: "0.0174532925199432957692369076849"},
			{Symbol: "°/min", Name: "degree per minute", Factor: "0.000290888208665721596153948461415"},
			{Symbol: "°/h", Name: "degree per hour", Factor: "0.00000484813681109535993589914102358"},
			{Symbol: "rev/s", Name: "revolution per second", Factor: "6.28318530717958647692528676656"},
			{Symbol: "rpm", Name: "revolution per minute", Factor: "0.104719755119659774615421446109"},
			{Symbol: "rev/h", Name: "revolution per hour", Factor: "0.00174532925199432957692369076849"},
			{Symbol: "rev/d", Name: "revolution per day", Factor: "0.0000727220521664303990384871153537"},
		}),
	)
	angularAccelerationCategory = newLinearCategory(
		meta{id: CategoryAngularAcceleration, icon: "arrow.triangle.2.circlepath", description: "Rate of change of angular velocity."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "rad/s²", Name: "radian per second squared", Factor: "1"},
			{Symbol: "rad/min²", Name: "radian per minute squared", Factor: "0.000277777777777777777777777777778"},
			{Symbol: "°/s²", Name: "degree per second squared", Factor: "0.0174532925199432957692369076849"},
			{Symbol: "°/min²", Name: "degree per minute squared", Factor: "0.00000484813681109535993589914102358"},
			{Symbol: "rev/s²", Name: "revolution per second squared", Factor: "6.28318530717958647692528676656"},
			{Symbol: "rev/min²", Name: "revolution per minute squared", Factor: "0.00174532925199432957692369076849"},
			{Symbol: "rpm/s", Name: "revolution per minute per second", Factor: "0.104719755119659774615421446109"},
		}),
	)
	densityCategory = newLinearCategory(
		meta{id: CategoryDensity, icon: "drop.fill", description: "Mass per unit volume."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "kg/m³", Name: "kilogram per cubic meter", Factor: "1"},
			{Symbol: "g/cm³", Name: "gram per cubic centimeter", Factor: "1000"},
			{Symbol: "g/mL", Name: "gram per milliliter", Factor: "1000"},
			{Symbol: "kg/L", Name: "kilogram per liter", Factor: "1000"},
			{Symbol: "g/L", Name: "gram per liter", Factor: "1"},
			{Symbol: "mg/L", Name: "milligram per liter", Factor: "0.001"},
			{Symbol: "mg/cm³", Name: "milligram per cubic centimeter", Factor: "1"},
			{Symbol: "t/m³", Name: "tonne per cubic meter", Factor: "1000"},
			{Symbol: "lb/ft³", Name: "pound per cubic foot", Factor: "16.0184633739601395796550706546"},
			{Symbol: "lb/in³", Name: "pound per cubic inch", Factor: "27679.9047102031211936439620911"},
			{Symbol: "lb/gal (US)", Name: "pound per US gallon", Factor: "119.826427316896628543913255806"},
			{Symbol: "lb/gal (UK)", Name: "pound per imperial gallon", Factor: "99.7763726631016983825661172568"},
			{Symbol: "oz/in³", Name: "ounce per cubic inch", Factor: "1729.99404438769507460274763069"},
			{Symbol: "oz/gal (US)", Name: "ounce per US gallon", Factor: "7.48915170730603928399457848784"},
			{Symbol: "slug/ft³", Name: "slug per cubic foot", Factor: "515.378818393196203441024929903"},
		}),
	)
	specificVolumeCategory = newLinearCategory(
		meta{id: CategorySpecificVolume, icon: "cube.transparent", description: "Volume per unit mass, the reciprocal of density."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "m³/kg", Name: "cubic meter per kilogram", Factor: "1"},
			{Symbol: "cm³/g", Name: "cubic centimeter per gram", Factor: "0.001"},
			{Symbol: "L/kg", Name: "liter per kilogram", Factor: "0.001"},
			{Symbol: "L/g", Name: "liter per gram", Factor: "1"},
			{Symbol: "mL/g", Name: "milliliter per gram", Factor: "0.001"},
			{Symbol: "ft³/lb", Name: "cubic foot per pound", Factor: "0.0624279605761446119563254558272"},
			{Symbol: "ft³/kg", Name: "cubic foot per kilogram", Factor: "0.028316846592"},
			{Symbol: "gal (US)/lb", Name: "US gallon per pound", Factor: "0.00834540445201933180666156267135"},
			{Symbol: "gal (UK)/lb", Name: "imperial gallon per pound", Factor: "0.0100224128549605012094890396856"},
		}),
	)
	momentOfInertiaCategory = newLinearCategory(
		meta{id: CategoryMomentOfInertia, icon: "circle.dotted", description: "Resistance of a body to angular acceleration."},
		domain.MustNewUnitTable(domain.KeyBySymbol, false, []domain.UnitDef{
			{Symbol: "kg·m²", Name: "kilogram square meter", Factor: "1"},
			{Symbol: "kg·cm²", Name: "kilogram square centimeter", Factor: "0.0001"},
			{Symbol: "kg·mm²", Name: "kilogram square millimeter", Factor: "0.000001"},
			{Symbol: "g·cm²", Name: "gram square centimeter", Factor: "0.0000001"},
			{Symbol: "g·mm²", Name: "gram square millimeter", Factor: "0.000000001"},
			{Symbol: "t·m²", Name: "tonne square meter", Factor: "1000"},
			{Symbol: "lb·ft²", Name: "pound square foot", Factor: "0.0421401100938048"},
			{Symbol: "lb·in²", Name: "pound square inch", Factor: "0.0002926396534292"},
			{Symbol: "oz·in²", Name: "ounce square inch", Factor: "0.000018289978339325"},
			{Symbol: "slug·ft²", Name: "slug square foot", Factor: "1.3558179483314004"},
			{Symbol: "kgf·m·s²", Name: "kilogram-force meter second squared", Factor: "9.80665"},
		}),
	)
	momentOfForceCategory = newLinearCategory(
		meta{id: CategoryMomentOfForce, icon: "wrench", description: "Turning effect of a force about a point."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "N·m", Name: "newton meter", Factor: "1"},
			{Symbol: "mN·m", Name: "millinewton meter", Factor: "0.001"},
			{Symbol: "µN·m", Name: "micronewton meter", Factor: "0.000001"},
			{Symbol: "kN·m", Name: "kilonewton meter", Factor: "1000"},
			{Symbol: "MN·m", Name: "meganewton meter", Factor: "1000000"},
			{Symbol: "kgf·m", Name: "kilogram-force meter", Factor: "9.80665"},
			{Symbol: "gf·cm", Name: "gram-force centimeter", Factor: "0.0000980665"},
			{Symbol: "dyn·cm", Name: "dyne centimeter", Factor: "0.0000001"},
			{Symbol: "lbf·ft", Name: "pound-force foot", Factor: "1.3558179483314004"},
			{Symbol: "lbf·in", Name: "pound-force inch", Factor: "0.1129848290276167"},
			{Symbol: "ozf·in", Name: "ounce-force inch", Factor: "0.00706155181422604375"},
		}),
	)
	torqueCategory = newLinearCategory(
		meta{id: CategoryTorque, icon: "wrench.and.screwdriver", description: "Rotational force applied by a fastener or shaft."},
		domain.MustNewUnitTable(domain.KeyBySymbol, true, []domain.UnitDef{
			{Symbol: "N·m", Name: "newton meter", Factor: "1"},
			{Symbol: "N·cm", Name: "newton centimeter", Factor: "0.01"},
			{Symbol: "N·mm", Name: "newton millimeter", Factor: "0.001"},
			{Symbol: "kN·m", Name: "kilonewton meter", Factor: "1000"},
			{Symbol: "dyn·cm", Name: "dyne centimeter", Factor: "0.0000001"},
			{Symbol: "dyn·m", Name: "dyne meter", Factor: "0.00001"},
			{Symbol: "kgf·m", Name: "kilogram-force meter", Factor: "9.80665"},
			{Symbol: "kgf·cm", Name: "kilogram-force centimeter", Factor: "0.0980665"},
			{Symbol: "gf·cm", Name: "gram-force centimeter", Factor: "0.0000980665"},
			{Symbol: "lbf·ft", Name: "pound-force foot", Factor: "1.3558179483314004"},
			{Symbol: "lbf·in", Name: "pound-force inch", Factor: "0.1129848290276167"},
			{Symbol: "ozf·in", Name: "ounce-force inch", Factor: "0.00706155181422604375"},
			{Symbol: "pdl·ft", Name: "poundal foot", Factor: "0.0421401100938048"},
		}),
	)
)
