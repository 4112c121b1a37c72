package explorer

import "github.com/HerbHall/motorscope/pkg/catalog"

// Spotlight is a static editorial callout.
type Spotlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Spotlights are the record-holder callouts shown under the engine list.
var Spotlights = []Spotlight{
	{Label: "Puissance record", Value: "Ferrari F163 (830 ch cumulés)"},
	{Label: "Conso mixte la plus basse", Value: "Renault HR12 Hybrid Turbo – 4,9 L/100 km"},
	{Label: "Innovation radicale", Value: "Mercedes-AMG M139l – turbo électrique dérivé de la F1"},
}

// Highlights holds the catalog-derived hero callouts.
type Highlights struct {
	BestEfficiency *catalog.Engine `json:"best_efficiency"`
	FreshestLaunch *catalog.Engine `json:"freshest_launch"`
	Spotlights     []Spotlight     `json:"spotlights"`
}

// ComputeHighlights picks the most efficient engine and the most recent
// launch. Ties keep the earliest engine in dataset order. Both are nil for
// an empty input.
func ComputeHighlights(engines []catalog.Engine) Highlights {
	h := Highlights{Spotlights: Spotlights}
	for i := range engines {
		e := &engines[i]
		if h.BestEfficiency == nil || e.EfficiencyScore > h.BestEfficiency.EfficiencyScore {
			h.BestEfficiency = e
		}
		if h.FreshestLaunch == nil || e.LaunchYear > h.FreshestLaunch.LaunchYear {
			h.FreshestLaunch = e
		}
	}
	return h
}
