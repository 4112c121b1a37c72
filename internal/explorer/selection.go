package explorer

import "github.com/HerbHall/motorscope/pkg/catalog"

// Selection is the visitor-controlled state of one explorer view. The zero
// value is the default selection: all fuels, innovation ranking, no search.
//
// A Selection is owned by a single view and is not safe for concurrent use.
type Selection struct {
	engines []catalog.Engine
	fuel    FuelFilter
	mode    PriorityMode
	term    string
}

// NewSelection creates a default selection over engines.
func NewSelection(engines []catalog.Engine) *Selection {
	return &Selection{engines: engines}
}

// SetFuelFilter replaces the active fuel filter.
func (s *Selection) SetFuelFilter(f FuelFilter) {
	s.fuel = f
}

// SetPriorityMode replaces the active priority mode.
func (s *Selection) SetPriorityMode(m PriorityMode) {
	s.mode = m
}

// SetSearchTerm replaces the search text.
func (s *Selection) SetSearchTerm(term string) {
	s.term = term
}

// FuelFilter returns the active fuel filter.
func (s *Selection) FuelFilter() FuelFilter {
	return s.fuel
}

// PriorityMode returns the active priority mode.
func (s *Selection) PriorityMode() PriorityMode {
	return s.mode
}

// SearchTerm returns the search text as entered.
func (s *Selection) SearchTerm() string {
	return s.term
}

// Ranked recomputes the ranked view for the current selection.
func (s *Selection) Ranked() []Ranked {
	return Rank(s.engines, s.fuel, s.mode, s.term)
}

// Visible recomputes the ordered engine list for the current selection.
func (s *Selection) Visible() []catalog.Engine {
	return Visible(s.engines, s.fuel, s.mode, s.term)
}
