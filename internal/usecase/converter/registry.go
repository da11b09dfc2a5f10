package converter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/unitflow-backend/internal/domain"
)

const (
	SectionCommon      domain.SectionID = "common"
	SectionEngineering domain.SectionID = "engineering"
	SectionHeat        domain.SectionID = "heat"
	SectionFluids      domain.SectionID = "fluids"
	SectionLight       domain.SectionID = "light"
	SectionElectricity domain.SectionID = "electricity"
	SectionMagnetism   domain.SectionID = "magnetism"
	SectionRadiology   domain.SectionID = "radiology"
	SectionCurrency    domain.SectionID = "currency"
)

const (
	CategoryTemperature             domain.CategoryID = "temperature"
	CategoryCurrency                domain.CategoryID = "currency"
	CategoryLength                  domain.CategoryID = "length"
	CategoryMass                    domain.CategoryID = "mass"
	CategoryVolume                  domain.CategoryID = "volume"
	CategoryDryVolume               domain.CategoryID = "dry-volume"
	CategoryArea                    domain.CategoryID = "area"
	CategoryPressure                domain.CategoryID = "pressure"
	CategorySpeed                   domain.CategoryID = "speed"
	CategoryDuration                domain.CategoryID = "duration"
	CategoryAngle                   domain.CategoryID = "angle"
	CategoryEnergy                  domain.CategoryID = "energy"
	CategoryPower                   domain.CategoryID = "power"
	CategoryForce                   domain.CategoryID = "force"
	CategoryFuelConsumption         domain.CategoryID = "fuel-consumption"
	CategoryDataStorage             domain.CategoryID = "data-storage"
	CategoryAcceleration            domain.CategoryID = "acceleration"
	CategoryAngularVelocity         domain.CategoryID = "angular-velocity"
	CategoryAngularAcceleration     domain.CategoryID = "angular-acceleration"
	CategoryDensity                 domain.CategoryID = "density"
	CategorySpecificVolume          domain.CategoryID = "specific-volume"
	CategoryMomentOfInertia         domain.CategoryID = "moment-of-inertia"
	CategoryMomentOfForce           domain.CategoryID = "moment-of-force"
	CategoryTorque                  domain.CategoryID = "torque"
	CategorySpecificEnergy          domain.CategoryID = "fuel-efficiency-mass"
	CategoryEnergyDensity           domain.CategoryID = "fuel-efficiency-volume"
	CategoryHeatFluxDensity         domain.CategoryID = "heat-flux-density"
	CategoryHeatTransferCoefficient domain.CategoryID = "heat-transfer-coefficient"
	CategorySpecificHeatCapacity    domain.CategoryID = "specific-heat-capacity"
	CategoryThermalConductivity     domain.CategoryID = "thermal-conductivity"
	CategoryThermalResistance       domain.CategoryID = "thermal-resistance"
	CategoryFlowRate                domain.CategoryID = "flow-rate"
	CategoryMassFlowRate            domain.CategoryID = "mass-flow-rate"
	CategoryDynamicViscosity        domain.CategoryID = "dynamic-viscosity"
	CategoryKinematicViscosity      domain.CategoryID = "kinematic-viscosity"
	CategorySurfaceTension          domain.CategoryID = "surface-tension"
	CategoryConcentration           domain.CategoryID = "concentration"
	CategoryLuminance               domain.CategoryID = "luminance"
	CategoryIlluminance             domain.CategoryID = "illuminance"
	CategoryLuminousIntensity       domain.CategoryID = "luminous-intensity"
	CategoryElectricCharge          domain.CategoryID = "electric-charge"
	CategoryElectricCurrent         domain.CategoryID = "electric-current"
	CategoryElectricPotential       domain.CategoryID = "electric-potential"
	CategoryElectricResistance      domain.CategoryID = "electric-resistance"
	CategoryElectricConductance     domain.CategoryID = "electric-conductance"
	CategoryCapacitance             domain.CategoryID = "capacitance"
	CategoryInductance              domain.CategoryID = "inductance"
	CategoryMagneticFlux            domain.CategoryID = "magnetic-flux"
	CategoryMagneticFluxDensity     domain.CategoryID = "magnetic-flux-density"
	CategoryMagneticFieldStrength   domain.CategoryID = "magnetic-field-strength"
	CategoryMagnetomotiveForce      domain.CategoryID = "magnetomotive-force"
	CategoryAbsorbedDose            domain.CategoryID = "absorbed-dose"
	CategoryEquivalentDose          domain.CategoryID = "equivalent-dose"
	CategoryRadioactivity           domain.CategoryID = "radioactivity"
	CategoryExposure                domain.CategoryID = "exposure"
)

// Registry dispatches conversions to the category implementations
// It is immutable after construction and safe for concurrent use; the only
// mutable input is the currency RateSource, which hands out immutable snapshots.
type Registry struct {
	sections   []domain.Section
	categories map[domain.CategoryID]domain.Category
	order      []domain.CategoryID
}

// ConvertInput represents the input for a conversion
type ConvertInput struct {
	CategoryID domain.CategoryID
	Value      decimal.Decimal
	From       string
	To         string
}

// NewRegistry builds the registry with every section and category
// rates may be nil, in which case every currency conversion passes through
func NewRegistry(rates RateSource) *Registry {
	temperature := newTemperatureCategory()

	sections := []domain.Section{
		{
			ID:    SectionCommon,
			Title: "Common",
			Icon:  "square.grid.2x2",
			Categories: []domain.Category{
				lengthCategory, massCategory, volumeCategory, dryVolumeCategory, areaCategory,
				temperature, pressureCategory, speedCategory, durationCategory, angleCategory,
				energyCategory, powerCategory, forceCategory, fuelConsumptionCategory, dataStorageCategory,
			},
		},
		{
			ID:    SectionEngineering,
			Title: "Engineering",
			Icon:  "gearshape.2",
			Categories: []domain.Category{
				accelerationCategory, angularVelocityCategory, angularAccelerationCategory,
				densityCategory, specificVolumeCategory, momentOfInertiaCategory,
				momentOfForceCategory, torqueCategory, temperature,
			},
		},
		{
			ID:    SectionHeat,
			Title: "Heat",
			Icon:  "flame",
			Categories: []domain.Category{
				temperature, specificEnergyCategory, energyDensityCategory, heatFluxDensityCategory,
				heatTransferCoefficientCategory, specificHeatCapacityCategory,
				thermalConductivityCategory, thermalResistanceCategory,
			},
		},
		{
			ID:    SectionFluids,
			Title: "Fluids",
			Icon:  "drop",
			Categories: []domain.Category{
				flowRateCategory, massFlowRateCategory, dynamicViscosityCategory,
				kinematicViscosityCategory, surfaceTensionCategory, concentrationCategory,
			},
		},
		{
			ID:         SectionLight,
			Title:      "Light",
			Icon:       "lightbulb",
			Categories: []domain.Category{luminanceCategory, illuminanceCategory, luminousIntensityCategory},
		},
		{
			ID:    SectionElectricity,
			Title: "Electricity",
			Icon:  "bolt",
			Categories: []domain.Category{
				electricChargeCategory, electricCurrentCategory, electricPotentialCategory,
				electricResistanceCategory, electricConductanceCategory, capacitanceCategory,
				inductanceCategory,
			},
		},
		{
			ID:    SectionMagnetism,
			Title: "Magnetism",
			Icon:  "circle.circle",
			Categories: []domain.Category{
				magneticFluxCategory, magneticFluxDensityCategory, magneticFieldStrengthCategory,
				magnetomotiveForceCategory,
			},
		},
		{
			ID:    SectionRadiology,
			Title: "Radiology",
			Icon:  "rays",
			Categories: []domain.Category{
				absorbedDoseCategory, equivalentDoseCategory, radioactivityCategory, exposureCategory,
			},
		},
		{
			ID:         SectionCurrency,
			Title:      "Currency",
			Icon:       "dollarsign.circle",
			Categories: []domain.Category{newCurrencyCategory(rates)},
		},
	}

	r := &Registry{
		sections:   sections,
		categories: make(map[domain.CategoryID]domain.Category),
	}
	for _, section := range sections {
		for _, category := range section.Categories {
			if _, seen := r.categories[category.ID()]; seen {
				continue
			}
			r.categories[category.ID()] = category
			r.order = append(r.order, category.ID())
		}
	}

	return r
}

// Sections returns the ordered sections
func (r *Registry) Sections() []domain.Section {
	sections := make([]domain.Section, len(r.sections))
	copy(sections, r.sections)
	return sections
}

// Section retrieves a section by its ID
func (r *Registry) Section(id domain.SectionID) (domain.Section, error) {
	for _, section := range r.sections {
		if section.ID == id {
			return section, nil
		}
	}
	return domain.Section{}, fmt.Errorf("%w: %q", domain.ErrSectionNotFound, id)
}

// Categories returns every distinct category in section order
func (r *Registry) Categories() []domain.Category {
	categories := make([]domain.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, r.categories[id])
	}
	return categories
}

// Category retrieves a category by its ID
func (r *Registry) Category(id domain.CategoryID) (domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, id)
	}
	return category, nil
}

// Convert dispatches to the category's conversion
// Unknown units pass the value through, tagged with StatusUnitNotFound.
// Values outside domain.CheckValue's range return ErrValueOutOfRange.
func (r *Registry) Convert(input ConvertInput) (domain.Conversion, error) {
	category, err := r.Category(input.CategoryID)
	if err != nil {
		return domain.Conversion{}, err
	}
	if err := domain.CheckValue(input.Value); err != nil {
		return domain.Conversion{}, err
	}
	return category.Convert(input.Value, input.From, input.To)
}

// ConvertStrict is like Convert but returns ErrUnitNotFound instead of passing through
func (r *Registry) ConvertStrict(input ConvertInput) (decimal.Decimal, error) {
	conversion, err := r.Convert(input)
	if err != nil {
		return decimal.Zero, err
	}
	if err := conversion.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("convert %s: %w", input.CategoryID, err)
	}
	return conversion.Value, nil
}

// ResolveUnit resolves a unit identifier within a category
func (r *Registry) ResolveUnit(categoryID domain.CategoryID, identifier string) (domain.Unit, error) {
	category, err := r.Category(categoryID)
	if err != nil {
		return domain.Unit{}, err
	}
	unit, ok := category.Resolve(identifier)
	if !ok {
		return domain.Unit{}, fmt.Errorf("%w: %q in %s", domain.ErrUnitNotFound, identifier, categoryID)
	}
	return unit, nil
}
