package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed engines.yaml
var catalogRawData []byte

// ErrNotFound is returned by Lookup when no engine has the requested ID.
var ErrNotFound = errors.New("catalog: engine not found")

// catalogFile is the top-level structure of the dataset YAML.
type catalogFile struct {
	Engines []rawEngine `yaml:"engines"`
}

// rawEngine mirrors Engine with pointer numerics so that an absent score
// is distinguishable from an explicit zero.
type rawEngine struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Manufacturer       string   `yaml:"manufacturer"`
	FuelType           string   `yaml:"fuel_type"`
	Power              string   `yaml:"power"`
	Torque             string   `yaml:"torque"`
	Displacement       string   `yaml:"displacement"`
	CylinderLayout     string   `yaml:"cylinder_layout"`
	AverageConsumption string   `yaml:"average_consumption"`
	CO2                string   `yaml:"co2"`
	Highlight          string   `yaml:"highlight"`
	Notes              string   `yaml:"notes"`
	BestFor            string   `yaml:"best_for"`
	FeaturedIn         []string `yaml:"featured_in"`
	Innovations        []string `yaml:"innovations"`
	PerformanceScore   *float64 `yaml:"performance_score"`
	EfficiencyScore    *float64 `yaml:"efficiency_score"`
	ReliabilityScore   *float64 `yaml:"reliability_score"`
	LaunchYear         *int     `yaml:"launch_year"`
}

// Catalog provides lazy-loaded access to an engine dataset.
type Catalog struct {
	once    sync.Once
	raw     []byte
	engines []Engine
	byID    map[string]int
	err     error
}

// NewCatalog creates a Catalog that will parse the embedded dataset on first access.
func NewCatalog() *Catalog {
	return &Catalog{raw: catalogRawData}
}

// NewCatalogFromBytes creates a Catalog over an externally supplied YAML dataset.
// Validation is identical to the embedded dataset.
func NewCatalogFromBytes(data []byte) *Catalog {
	return &Catalog{raw: data}
}

// Engines returns a copy of all engines in dataset order.
func (c *Catalog) Engines() ([]Engine, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]Engine, len(c.engines))
	for i := range c.engines {
		cp[i] = c.engines[i].clone()
	}
	return cp, nil
}

// Lookup returns a copy of the engine with the given ID.
func (c *Catalog) Lookup(id string) (Engine, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return Engine{}, c.err
	}
	i, ok := c.byID[id]
	if !ok {
		return Engine{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.engines[i].clone(), nil
}

// Len returns the number of engines, or 0 if the dataset failed to load.
func (c *Catalog) Len() int {
	c.once.Do(c.load)
	return len(c.engines)
}

// load parses and validates the dataset. Any invalid record rejects the
// whole dataset; no defaults are substituted.
func (c *Catalog) load() {
	var f catalogFile
	if err := yaml.Unmarshal(c.raw, &f); err != nil {
		c.err = fmt.Errorf("catalog: parse yaml: %w", err)
		return
	}
	if len(f.Engines) == 0 {
		c.err = errors.New("catalog: dataset contains no engines")
		return
	}

	engines := make([]Engine, 0, len(f.Engines))
	byID := make(map[string]int, len(f.Engines))
	var errs []error
	for i := range f.Engines {
		e, err := f.Engines[i].resolve()
		if err != nil {
			errs = append(errs, fmt.Errorf("engine #%d: %w", i+1, err))
			continue
		}
		if _, dup := byID[e.ID]; dup {
			errs = append(errs, fmt.Errorf("engine #%d: duplicate id %q", i+1, e.ID))
			continue
		}
		byID[e.ID] = len(engines)
		engines = append(engines, e)
	}
	if len(errs) > 0 {
		c.err = fmt.Errorf("catalog: invalid dataset: %w", errors.Join(errs...))
		return
	}

	c.engines = engines
	c.byID = byID
}

// resolve validates a raw record and converts it to an Engine.
func (r *rawEngine) resolve() (Engine, error) {
	e := Engine{
		ID:                 r.ID,
		Name:               r.Name,
		Manufacturer:       r.Manufacturer,
		FuelType:           FuelType(r.FuelType),
		Power:              r.Power,
		Torque:             r.Torque,
		Displacement:       r.Displacement,
		CylinderLayout:     r.CylinderLayout,
		AverageConsumption: r.AverageConsumption,
		CO2:                r.CO2,
		Highlight:          r.Highlight,
		Notes:              r.Notes,
		BestFor:            r.BestFor,
		FeaturedIn:         copyStrings(r.FeaturedIn),
		Innovations:        copyStrings(r.Innovations),
	}
	var errs []error

	if e.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if e.Name == "" {
		errs = append(errs, errors.New("missing name"))
	}
	if e.Manufacturer == "" {
		errs = append(errs, errors.New("missing manufacturer"))
	}
	if !e.FuelType.Valid() {
		errs = append(errs, fmt.Errorf("invalid fuel_type %q", e.FuelType))
	}
	for i, model := range e.FeaturedIn {
		if model == "" {
			errs = append(errs, fmt.Errorf("featured_in[%d] is empty", i))
		}
	}

	scores := []struct {
		name string
		val  *float64
		dst  *float64
	}{
		{"performance_score", r.PerformanceScore, &e.PerformanceScore},
		{"efficiency_score", r.EfficiencyScore, &e.EfficiencyScore},
		{"reliability_score", r.ReliabilityScore, &e.ReliabilityScore},
	}
	for _, s := range scores {
		switch {
		case s.val == nil:
			errs = append(errs, fmt.Errorf("missing %s", s.name))
		case math.IsNaN(*s.val) || math.IsInf(*s.val, 0):
			errs = append(errs, fmt.Errorf("%s is not finite", s.name))
		default:
			*s.dst = *s.val
		}
	}
	if r.LaunchYear == nil {
		errs = append(errs, errors.New("missing launch_year"))
	} else {
		e.LaunchYear = *r.LaunchYear
	}

	if len(errs) > 0 {
		if e.ID != "" {
			return Engine{}, fmt.Errorf("%q: %w", e.ID, errors.Join(errs...))
		}
		return Engine{}, errors.Join(errs...)
	}
	return e, nil
}
