// Package explorer ranks the engine catalog by fuel filter, priority mode,
// and free-text search.
package explorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HerbHall/motorscope/pkg/catalog"
)

var (
	// ErrUnknownFuelFilter is returned when a fuel filter name is not recognized.
	ErrUnknownFuelFilter = errors.New("unknown fuel filter")
	// ErrUnknownPriorityMode is returned when a priority mode name is not recognized.
	ErrUnknownPriorityMode = errors.New("unknown priority mode")
)

// FuelFilter restricts which engines are eligible for display.
type FuelFilter int

const (
	ShowAll FuelFilter = iota
	PureGasoline
	HybridizedGasoline
	MildHybrid
)

// FuelFilters lists every filter in display order.
var FuelFilters = []FuelFilter{ShowAll, PureGasoline, HybridizedGasoline, MildHybrid}

// String returns the wire name used in query parameters and JSON.
func (f FuelFilter) String() string {
	switch f {
	case ShowAll:
		return "all"
	case PureGasoline:
		return "essence"
	case HybridizedGasoline:
		return "hybride"
	case MildHybrid:
		return "mild-hybrid"
	}
	return fmt.Sprintf("FuelFilter(%d)", int(f))
}

// Label returns the button label shown to visitors.
func (f FuelFilter) Label() string {
	switch f {
	case ShowAll:
		return "Tous"
	case PureGasoline:
		return "Essence pure"
	case HybridizedGasoline:
		return "Hybride"
	case MildHybrid:
		return "Mild-Hybrid"
	}
	return f.String()
}

// FuelType returns the catalog fuel type this filter selects on.
// ShowAll has no fuel type and returns false.
func (f FuelFilter) FuelType() (catalog.FuelType, bool) {
	switch f {
	case PureGasoline:
		return catalog.FuelPetrol, true
	case HybridizedGasoline:
		return catalog.FuelHybridizedPetrol, true
	case MildHybrid:
		return catalog.FuelMildHybridPetrol, true
	}
	return "", false
}

// MarshalText implements encoding.TextMarshaler.
func (f FuelFilter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FuelFilter) UnmarshalText(b []byte) error {
	v, err := ParseFuelFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFuelFilter parses a wire name or French label. Empty input means ShowAll.
func ParseFuelFilter(s string) (FuelFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ShowAll, nil
	}
	for _, f := range FuelFilters {
		if strings.EqualFold(s, f.String()) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
		if ft, ok := f.FuelType(); ok && strings.EqualFold(s, string(ft)) {
			return f, nil
		}
	}
	return ShowAll, fmt.Errorf("%w: %q", ErrUnknownFuelFilter, s)
}

// PriorityMode selects the scoring strategy used to rank engines.
type PriorityMode int

const (
	Innovation PriorityMode = iota
	Performance
	Efficiency
)

// PriorityModes lists every mode in display order.
var PriorityModes = []PriorityMode{Performance, Efficiency, Innovation}

// String returns the wire name used in query parameters and JSON.
func (m PriorityMode) String() string {
	switch m {
	case Performance:
		return "performance"
	case Efficiency:
		return "efficiency"
	case Innovation:
		return "innovation"
	}
	return fmt.Sprintf("PriorityMode(%d)", int(m))
}

// Label returns the card title shown to visitors.
func (m PriorityMode) Label() string {
	switch m {
	case Performance:
		return "Performance pure"
	case Efficiency:
		return "Sobriété"
	case Innovation:
		return "Innovation"
	}
	return m.String()
}

// Description returns the one-line explanation shown under the label.
func (m PriorityMode) Description() string {
	switch m {
	case Performance:
		return "Puissance et couple max"
	case Efficiency:
		return "Consommation WLTP & CO₂ bas"
	case Innovation:
		return "Technologies et architecture"
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (m PriorityMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PriorityMode) UnmarshalText(b []byte) error {
	v, err := ParsePriorityMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParsePriorityMode parses a wire name. Empty input means Innovation.
func ParsePriorityMode(s string) (PriorityMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Innovation, nil
	}
	for _, m := range PriorityModes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return Innovation, fmt.Errorf("%w: %q", ErrUnknownPriorityMode, s)
}
