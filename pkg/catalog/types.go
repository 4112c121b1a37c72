// Package catalog holds the embedded engine dataset and its record types.
package catalog

// FuelType classifies an engine's energy source.
type FuelType string

// Fuel types present in the dataset. Values are the display labels.
const (
	FuelPetrol           FuelType = "Essence"
	FuelHybridizedPetrol FuelType = "Essence Hybridée"
	FuelMildHybridPetrol FuelType = "Essence Mild-Hybrid"
)

// FuelTypes lists every valid fuel type in display order.
var FuelTypes = []FuelType{FuelPetrol, FuelHybridizedPetrol, FuelMildHybridPetrol}

// Valid reports whether f is a member of the closed fuel type set.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelHybridizedPetrol, FuelMildHybridPetrol:
		return true
	}
	return false
}

// Engine is one catalog entry. Records are never mutated after load.
type Engine struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	Manufacturer       string   `yaml:"manufacturer" json:"manufacturer"`
	FuelType           FuelType `yaml:"fuel_type" json:"fuel_type"`
	Power              string   `yaml:"power" json:"power"`
	Torque             string   `yaml:"torque" json:"torque"`
	Displacement       string   `yaml:"displacement" json:"displacement"`
	CylinderLayout     string   `yaml:"cylinder_layout" json:"cylinder_layout"`
	AverageConsumption string   `yaml:"average_consumption" json:"average_consumption"`
	CO2                string   `yaml:"co2" json:"co2"`
	Highlight          string   `yaml:"highlight" json:"highlight"`
	Notes              string   `yaml:"notes" json:"notes"`
	BestFor            string   `yaml:"best_for" json:"best_for"`
	FeaturedIn         []string `yaml:"featured_in" json:"featured_in"`
	Innovations        []string `yaml:"innovations" json:"innovations"`
	PerformanceScore   float64  `yaml:"performance_score" json:"performance_score"`
	EfficiencyScore    float64  `yaml:"efficiency_score" json:"efficiency_score"`
	ReliabilityScore   float64  `yaml:"reliability_score" json:"reliability_score"`
	LaunchYear         int      `yaml:"launch_year" json:"launch_year"`
}

// clone returns a deep copy so callers cannot alias the backing slices.
func (e Engine) clone() Engine {
	e.FeaturedIn = copyStrings(e.FeaturedIn)
	e.Innovations = copyStrings(e.Innovations)
	return e
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
