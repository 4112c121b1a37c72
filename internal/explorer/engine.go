package explorer

import (
	"cmp"
	"slices"

	"github.com/HerbHall/motorscope/pkg/catalog"
)

// Ranked pairs an engine with its score under the active priority mode.
type Ranked struct {
	Engine catalog.Engine `json:"engine"`
	Score  float64        `json:"score"`
}

// Rank returns the engines passing both filter and term, ordered by
// descending score under mode. Equal scores keep dataset order. The input
// slice is never modified.
func Rank(engines []catalog.Engine, filter FuelFilter, mode PriorityMode, term string) []Ranked {
	needle, searching := searchNeedle(term)

	result := make([]Ranked, 0, len(engines))
	for i := range engines {
		e := &engines[i]
		if !PassesFuelFilter(e, filter) {
			continue
		}
		if searching && !matches(e, needle) {
			continue
		}
		result = append(result, Ranked{Engine: *e, Score: Score(e, mode)})
	}

	slices.SortStableFunc(result, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return result
}

// Visible is Rank without the scores.
func Visible(engines []catalog.Engine, filter FuelFilter, mode PriorityMode, term string) []catalog.Engine {
	ranked := Rank(engines, filter, mode, term)
	out := make([]catalog.Engine, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].Engine
	}
	return out
}

// Engine runs ranking queries against a catalog.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates a ranking engine backed by the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Select returns a default selection over a fresh copy of the catalog.
func (e *Engine) Select() (*Selection, error) {
	engines, err := e.cat.Engines()
	if err != nil {
		return nil, err
	}
	return NewSelection(engines), nil
}

// Query ranks the catalog for one selection.
func (e *Engine) Query(filter FuelFilter, mode PriorityMode, term string) ([]Ranked, error) {
	sel, err := e.Select()
	if err != nil {
		return nil, err
	}
	sel.SetFuelFilter(filter)
	sel.SetPriorityMode(mode)
	sel.SetSearchTerm(term)
	return sel.Ranked(), nil
}

// Lookup returns a single engine by ID.
func (e *Engine) Lookup(id string) (catalog.Engine, error) {
	return e.cat.Lookup(id)
}

// Highlights computes the hero callouts for the catalog.
func (e *Engine) Highlights() (Highlights, error) {
	engines, err := e.cat.Engines()
	if err != nil {
		return Highlights{}, err
	}
	return ComputeHighlights(engines), nil
}
