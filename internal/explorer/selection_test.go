package explorer

import (
	"testing"

	"github.com/HerbHall/motorscope/internal/testutil"
)

func TestSelection_Defaults(t *testing.T) {
	s := NewSelection(testutil.SampleEngines())

	if s.FuelFilter() != ShowAll {
		t.Errorf("FuelFilter = %s, want all", s.FuelFilter())
	}
	if s.PriorityMode() != Innovation {
		t.Errorf("PriorityMode = %s, want innovation", s.PriorityMode())
	}
	if s.SearchTerm() != "" {
		t.Errorf("SearchTerm = %q, want empty", s.SearchTerm())
	}
	if got := len(s.Visible()); got != len(testutil.SampleEngines()) {
		t.Errorf("Visible len = %d, want %d", got, len(testutil.SampleEngines()))
	}
}

func TestSelection_SettersRecompute(t *testing.T) {
	s := NewSelection(testutil.SampleEngines())

	s.SetFuelFilter(PureGasoline)
	if got := ids(s.Visible()); len(got) != 2 || got[0] != "s58" {
		t.Fatalf("after SetFuelFilter: %v", got)
	}

	s.SetPriorityMode(Performance)
	if got := ids(s.Visible()); len(got) != 2 || got[0] != "gt3" {
		t.Fatalf("after SetPriorityMode: %v", got)
	}

	s.SetSearchTerm("BMW")
	if got := ids(s.Visible()); len(got) != 1 || got[0] != "s58" {
		t.Fatalf("after SetSearchTerm: %v", got)
	}

	s.SetSearchTerm("")
	s.SetFuelFilter(ShowAll)
	if got := len(s.Visible()); got != 5 {
		t.Fatalf("after reset: len = %d, want 5", got)
	}
}

func TestSelection_OverwriteIsUnconditional(t *testing.T) {
	s := NewSelection(testutil.SampleEngines())
	s.SetSearchTerm("renault")
	s.SetSearchTerm("renault")
	if s.SearchTerm() != "renault" {
		t.Errorf("SearchTerm = %q", s.SearchTerm())
	}
	s.SetPriorityMode(Efficiency)
	s.SetPriorityMode(Innovation)
	if s.PriorityMode() != Innovation {
		t.Errorf("PriorityMode = %s, want innovation", s.PriorityMode())
	}
}

func TestSelection_RankedMatchesVisible(t *testing.T) {
	s := NewSelection(testutil.SampleEngines())
	s.SetFuelFilter(HybridizedGasoline)

	ranked := s.Ranked()
	visible := s.Visible()
	if len(ranked) != len(visible) {
		t.Fatalf("len(ranked) = %d, len(visible) = %d", len(ranked), len(visible))
	}
	for i := range ranked {
		if ranked[i].Engine.ID != visible[i].ID {
			t.Errorf("position %d: %q vs %q", i, ranked[i].Engine.ID, visible[i].ID)
		}
	}
}
