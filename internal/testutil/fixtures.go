package testutil

import (
	"github.com/google/uuid"

	"github.com/HerbHall/motorscope/pkg/catalog"
)

// NewEngine returns an Engine with sensible defaults, suitable for test fixtures.
// Override individual fields with options as needed.
func NewEngine(opts ...func(*catalog.Engine)) catalog.Engine {
	e := catalog.Engine{
		ID:                 uuid.New().String(),
		Name:               "Test Engine",
		Manufacturer:       "Test Motors",
		FuelType:           catalog.FuelPetrol,
		Power:              "150 ch",
		Torque:             "250 Nm",
		Displacement:       "1 498 cm³",
		CylinderLayout:     "4 cylindres en ligne",
		AverageConsumption: "5,5 L/100 km",
		CO2:                "125 g/km",
		FeaturedIn:         []string{"Test Model"},
		Innovations:        []string{},
		PerformanceScore:   5,
		EfficiencyScore:    5,
		ReliabilityScore:   5,
		LaunchYear:         2022,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// WithID sets the engine identifier.
func WithID(id string) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.ID = id }
}

// WithName sets the engine name.
func WithName(name string) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.Name = name }
}

// WithManufacturer sets the engine manufacturer.
func WithManufacturer(m string) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.Manufacturer = m }
}

// WithFuel sets the fuel type.
func WithFuel(ft catalog.FuelType) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.FuelType = ft }
}

// WithScores sets the performance and efficiency scores.
func WithScores(performance, efficiency float64) func(*catalog.Engine) {
	return func(e *catalog.Engine) {
		e.PerformanceScore = performance
		e.EfficiencyScore = efficiency
	}
}

// WithInnovations sets the innovation labels.
func WithInnovations(labels ...string) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.Innovations = labels }
}

// WithFeaturedIn sets the list of equipped models.
func WithFeaturedIn(models ...string) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.FeaturedIn = models }
}

// WithLaunchYear sets the launch year.
func WithLaunchYear(year int) func(*catalog.Engine) {
	return func(e *catalog.Engine) { e.LaunchYear = year }
}

// SampleEngines returns a small fixed dataset covering every fuel type,
// including a pair with equal performance scores.
func SampleEngines() []catalog.Engine {
	return []catalog.Engine{
		NewEngine(WithID("hr12"), WithName("HR12 Hybrid Turbo"), WithManufacturer("Renault"),
			WithFuel(catalog.FuelHybridizedPetrol), WithScores(7.2, 9.1),
			WithInnovations("turbo électrique"),
			WithFeaturedIn("Renault Austral E-Tech", "Renault Espace E-Tech")),
		NewEngine(WithID("s58"), WithName("S58 3.0 Biturbo"), WithManufacturer("BMW M"),
			WithFuel(catalog.FuelPetrol), WithScores(9.1, 4.9),
			WithInnovations("culasse imprimée 3D"),
			WithFeaturedIn("BMW M3 Competition")),
		NewEngine(WithID("m139l"), WithName("M139l 2.0 Turbo"), WithManufacturer("Mercedes-AMG"),
			WithFuel(catalog.FuelMildHybridPetrol), WithScores(9.1, 6.4),
			WithInnovations("turbo électrique", "réseau 48 V", "alterno-démarreur"),
			WithFeaturedIn("Mercedes-AMG C 63 S E Performance")),
		NewEngine(WithID("evo2"), WithName("1.5 eTSI evo2"), WithManufacturer("Volkswagen"),
			WithFuel(catalog.FuelMildHybridPetrol), WithScores(6.8, 8.4),
			WithFeaturedIn("Volkswagen Golf", "Skoda Superb"), WithLaunchYear(2023)),
		NewEngine(WithID("gt3"), WithName("4.0 flat-six GT3"), WithManufacturer("Porsche"),
			WithFuel(catalog.FuelPetrol), WithScores(9.5, 3.8),
			WithFeaturedIn("Porsche 911 GT3"), WithLaunchYear(2021)),
	}
}
