package graph

import (
	"context"
	"errors"
	"testing"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Skoda", "skoda"},
		{"DS Automobiles", "ds-automobiles"},
		{"Gen 3 (5E)", "gen-3-5e"},
		{"S60/V60", "s60-v60"},
		{"Bang & Olufsen", "bang-olufsen"},
		{"Moderný (Facelift)", "modern-facelift"},
		{"Škoda", "koda"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeID(tt.input); got != tt.want {
			t.Errorf("sanitizeID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIDComposition(t *testing.T) {
	b := NewBrand("Land Rover")
	if b.ID != "land-rover" || b.Name != "Land Rover" {
		t.Fatalf("brand = %+v", b)
	}
	mID := modelID(b.ID, "Range Rover Evoque")
	if mID != "land-rover-range-rover-evoque" {
		t.Fatalf("model id = %q", mID)
	}
	gID := generationID(mID, "L538 (Gen 1)")
	if gID != "land-rover-range-rover-evoque-l538-gen-1" {
		t.Fatalf("generation id = %q", gID)
	}
}

func TestStrProp(t *testing.T) {
	props := map[string]any{"name": "Audi", "count": 42}
	if got := strProp(props, "name"); got != "Audi" {
		t.Errorf("strProp(name) = %q", got)
	}
	if got := strProp(props, "count"); got != "" {
		t.Errorf("strProp on non-string = %q, want empty", got)
	}
	if got := strProp(props, "missing"); got != "" {
		t.Errorf("strProp on missing = %q, want empty", got)
	}
}

func TestIntProp(t *testing.T) {
	tests := []struct {
		val  any
		want int
	}{
		{3, 3},
		{int64(4), 4},
		{float64(5), 5},
		{"six", 0},
		{nil, 0},
	}
	for _, tt := range tests {
		props := map[string]any{"position": tt.val}
		if got := intProp(props, "position"); got != tt.want {
			t.Errorf("intProp(%v) = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestNewGraphStore(t *testing.T) {
	// Construction with a nil driver needs no live Neo4j.
	gs := New(nil)
	if gs == nil {
		t.Fatal("expected non-nil GraphStore")
	}
	if gs.brands == nil {
		t.Fatal("expected non-nil brand repo")
	}
}

func TestGetBrandFallback(t *testing.T) {
	rec := makeNodeRecord(map[string]any{"id": "audi", "name": "Audi"})
	sess := &mockSession{runResult: newMockResult(rec)}
	gs := NewWithOpener(&mockOpener{session: sess})

	b, err := gs.GetBrand(context.Background(), "audi")
	if err != nil {
		t.Fatalf("GetBrand: %v", err)
	}
	if b.ID != "audi" || b.Name != "Audi" {
		t.Errorf("brand = %+v", b)
	}
	if !sess.closed {
		t.Error("session not closed")
	}
}

func TestGetBrandFallbackNotFound(t *testing.T) {
	sess := &mockSession{runResult: newMockResult()}
	gs := NewWithOpener(&mockOpener{session: sess})

	if _, err := gs.GetBrand(context.Background(), "nope"); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestGetBrandFallbackRunError(t *testing.T) {
	sess := &mockSession{runErr: errors.New("run fail")}
	gs := NewWithOpener(&mockOpener{session: sess})

	if _, err := gs.GetBrand(context.Background(), "audi"); err == nil {
		t.Fatal("expected error")
	}
}

func TestListBrandsFallback(t *testing.T) {
	recs := []CypherResult{newMockResult(
		makeNodeRecord(map[string]any{"id": "audi", "name": "Audi"}),
		makeNodeRecord(map[string]any{"id": "bmw", "name": "BMW"}),
	)}
	sess := &scriptedSession{results: recs}
	gs := NewWithOpener(&mockOpener{session: sess})

	brands, err := gs.ListBrands(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("ListBrands: %v", err)
	}
	if len(brands) != 2 || brands[0].Name != "Audi" || brands[1].Name != "BMW" {
		t.Errorf("brands = %+v", brands)
	}
}
