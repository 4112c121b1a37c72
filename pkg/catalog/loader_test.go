package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedCatalog_Loads(t *testing.T) {
	cat := NewCatalog()
	engines, err := cat.Engines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(engines) < 8 {
		t.Errorf("expected at least 8 engines, got %d", len(engines))
	}
	if cat.Len() != len(engines) {
		t.Errorf("Len() = %d, want %d", cat.Len(), len(engines))
	}

	seen := make(map[string]bool)
	for i := range engines {
		e := engines[i]
		if seen[e.ID] {
			t.Errorf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
		if !e.FuelType.Valid() {
			t.Errorf("%s: invalid fuel type %q", e.ID, e.FuelType)
		}
		if e.LaunchYear < 2021 || e.LaunchYear > 2024 {
			t.Errorf("%s: launch year %d outside 2021-2024", e.ID, e.LaunchYear)
		}
		if len(e.FeaturedIn) == 0 {
			t.Errorf("%s: no featured models", e.ID)
		}
	}
}

func TestEmbeddedCatalog_CoversEveryFuelType(t *testing.T) {
	engines, err := NewCatalog().Engines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := make(map[FuelType]int)
	for i := range engines {
		counts[engines[i].FuelType]++
	}
	for _, ft := range FuelTypes {
		if counts[ft] == 0 {
			t.Errorf("no engine with fuel type %q", ft)
		}
	}
}

func TestCatalog_EnginesReturnsCopy(t *testing.T) {
	cat := NewCatalog()
	first, err := cat.Engines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	origName := first[0].Name
	origModel := first[0].FeaturedIn[0]

	first[0].Name = "mutated"
	first[0].FeaturedIn[0] = "mutated"

	second, _ := cat.Engines()
	if second[0].Name != origName {
		t.Errorf("Name mutated through copy: got %q, want %q", second[0].Name, origName)
	}
	if second[0].FeaturedIn[0] != origModel {
		t.Errorf("FeaturedIn aliased: got %q, want %q", second[0].FeaturedIn[0], origModel)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	cat := NewCatalog()

	e, err := cat.Lookup("renault-hr12-hybrid-turbo")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if e.Manufacturer != "Renault" {
		t.Errorf("Manufacturer = %q, want Renault", e.Manufacturer)
	}

	_, err = cat.Lookup("does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(missing) error = %v, want ErrNotFound", err)
	}
}

const validRecord = `
  - id: a
    name: Alpha
    manufacturer: Acme
    fuel_type: Essence
    featured_in: [Model A]
    innovations: []
    performance_score: 5
    efficiency_score: 6
    reliability_score: 7
    launch_year: 2022
`

func TestNewCatalogFromBytes_Valid(t *testing.T) {
	cat := NewCatalogFromBytes([]byte("engines:" + validRecord))
	engines, err := cat.Engines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(engines) != 1 {
		t.Fatalf("len = %d, want 1", len(engines))
	}
	if engines[0].Innovations == nil {
		t.Error("Innovations should be an empty slice, not nil")
	}
	if engines[0].PerformanceScore != 5 {
		t.Errorf("PerformanceScore = %v, want 5", engines[0].PerformanceScore)
	}
}

func TestNewCatalogFromBytes_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			data:    "engines: [",
			wantErr: "parse yaml",
		},
		{
			name:    "empty dataset",
			data:    "engines: []",
			wantErr: "no engines",
		},
		{
			name: "missing score",
			data: `engines:
  - id: a
    name: Alpha
    manufacturer: Acme
    fuel_type: Essence
    featured_in: [Model A]
    efficiency_score: 6
    reliability_score: 7
    launch_year: 2022
`,
			wantErr: "missing performance_score",
		},
		{
			name: "non-finite score",
			data: `engines:
  - id: a
    name: Alpha
    manufacturer: Acme
    fuel_type: Essence
    featured_in: [Model A]
    performance_score: .nan
    efficiency_score: 6
    reliability_score: 7
    launch_year: 2022
`,
			wantErr: "performance_score is not finite",
		},
		{
			name: "unknown fuel type",
			data: `engines:
  - id: a
    name: Alpha
    manufacturer: Acme
    fuel_type: Diesel
    featured_in: [Model A]
    performance_score: 5
    efficiency_score: 6
    reliability_score: 7
    launch_year: 2022
`,
			wantErr: `invalid fuel_type "Diesel"`,
		},
		{
			name:    "duplicate id",
			data:    "engines:" + validRecord + validRecord,
			wantErr: `duplicate id "a"`,
		},
		{
			name: "empty featured model",
			data: `engines:
  - id: a
    name: Alpha
    manufacturer: Acme
    fuel_type: Essence
    featured_in: ["Model A", ""]
    performance_score: 5
    efficiency_score: 6
    reliability_score: 7
    launch_year: 2022
`,
			wantErr: "featured_in[1] is empty",
		},
		{
			name: "missing identity",
			data: `engines:
  - fuel_type: Essence
    performance_score: 5
    efficiency_score: 6
    reliability_score: 7
    launch_year: 2022
`,
			wantErr: "missing id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := NewCatalogFromBytes([]byte(tt.data))
			_, err := cat.Engines()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
			if cat.Len() != 0 {
				t.Errorf("Len() = %d after failed load, want 0", cat.Len())
			}
		})
	}
}

func TestFuelTypeValid(t *testing.T) {
	for _, ft := range FuelTypes {
		if !ft.Valid() {
			t.Errorf("%q should be valid", ft)
		}
	}
	if FuelType("Diesel").Valid() {
		t.Error("Diesel should not be valid")
	}
	if FuelType("").Valid() {
		t.Error("empty fuel type should not be valid")
	}
}
