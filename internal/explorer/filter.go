package explorer

import (
	"strings"

	"github.com/HerbHall/motorscope/pkg/catalog"
)

// PassesFuelFilter reports whether e is eligible under filter.
//
// HybridizedGasoline matches every engine that is not pure petrol, so
// mild-hybrid engines appear under both the Hybride and Mild-Hybrid filters.
func PassesFuelFilter(e *catalog.Engine, filter FuelFilter) bool {
	switch filter {
	case ShowAll:
		return true
	case PureGasoline:
		return e.FuelType == catalog.FuelPetrol
	case HybridizedGasoline:
		return e.FuelType == catalog.FuelHybridizedPetrol || e.FuelType != catalog.FuelPetrol
	case MildHybrid:
		return e.FuelType == catalog.FuelMildHybridPetrol
	}
	return false
}

// PassesSearch reports whether term appears, case-insensitively, in the
// engine name, manufacturer, or any featured model. A blank term matches
// everything. Surrounding whitespace only decides blankness and is
// otherwise part of the needle.
func PassesSearch(e *catalog.Engine, term string) bool {
	needle, ok := searchNeedle(term)
	if !ok {
		return true
	}
	return matches(e, needle)
}

// searchNeedle lowercases term for matching. ok is false for a blank term.
func searchNeedle(term string) (needle string, ok bool) {
	if strings.TrimSpace(term) == "" {
		return "", false
	}
	return strings.ToLower(term), true
}

// matches expects term already lowercased.
func matches(e *catalog.Engine, term string) bool {
	if strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Manufacturer), term) {
		return true
	}
	for _, model := range e.FeaturedIn {
		if strings.Contains(strings.ToLower(model), term) {
			return true
		}
	}
	return false
}
