package graph

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tunexa/audiodb/engine/catalog"
)

func smallCatalog() catalog.Catalog {
	return catalog.Catalog{
		"Skoda": {
			"Octavia": {
				{Generation: "Gen 3 (5E)", Years: "2012-2019", BaseSystem: "Základný (4-8 repro)", PremiumSystem: "Canton Sound System (10 repro)"},
				{Generation: "Gen 4 (NX)", Years: "2020-súčasnosť", BaseSystem: "Základný (8 repro)", PremiumSystem: "Canton Sound System (12 repro)"},
			},
		},
	}
}

func TestImportCatalogCreates(t *testing.T) {
	sess := &mockSession{}
	gs := NewWithOpener(&mockOpener{session: sess})

	stats, err := gs.ImportCatalog(context.Background(), smallCatalog())
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}

	want := ImportStats{Brands: 1, Models: 1, Created: 2}
	if stats.Brands != want.Brands || stats.Models != want.Models || stats.Created != want.Created ||
		stats.Updated != 0 || stats.Skipped != 0 || len(stats.Errors) != 0 {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	if !sess.closed {
		t.Error("session not closed")
	}

	var sawBrand, sawModel, sawGeneration bool
	for _, q := range sess.queries {
		switch {
		case strings.Contains(q, "MERGE (n:Brand"):
			sawBrand = true
		case strings.Contains(q, "MERGE (m:Model"):
			sawModel = true
		case strings.Contains(q, "MERGE (g:Generation"):
			sawGeneration = true
		}
	}
	if !sawBrand || !sawModel || !sawGeneration {
		t.Errorf("missing merge statements: brand=%v model=%v generation=%v", sawBrand, sawModel, sawGeneration)
	}
}

func TestImportCatalogGenerationIDs(t *testing.T) {
	sess := &mockSession{}
	gs := NewWithOpener(&mockOpener{session: sess})

	if _, err := gs.ImportCatalog(context.Background(), smallCatalog()); err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}

	var ids []string
	var positions []int
	for i, q := range sess.queries {
		if strings.Contains(q, "MERGE (g:Generation") {
			p := sess.params[i]
			ids = append(ids, p["id"].(string))
			positions = append(positions, p["pos"].(int))
		}
	}
	wantIDs := []string{"skoda-octavia-gen-3-5e", "skoda-octavia-gen-4-nx"}
	if len(ids) != 2 || ids[0] != wantIDs[0] || ids[1] != wantIDs[1] {
		t.Errorf("generation ids = %v, want %v", ids, wantIDs)
	}
	if len(positions) != 2 || positions[0] != 0 || positions[1] != 1 {
		t.Errorf("positions = %v, want [0 1]", positions)
	}
}

func TestImportCatalogSkipsIdentical(t *testing.T) {
	cat := catalog.Catalog{
		"Skoda": {
			"Kodiaq": {
				{Generation: "Gen 1", Years: "2016-2023", BaseSystem: "Základný (8 repro)", PremiumSystem: "Canton Sound System (10 repro)"},
			},
		},
	}

	existing := makeRecord(
		[]string{"label", "years", "base", "premium"},
		[]any{"Gen 1", "2016-2023", "Základný (8 repro)", "Canton Sound System (10 repro)"},
	)
	// Run order: brand merge, model merge, generation lookup.
	sess := &scriptedSession{results: []CypherResult{
		newMockResult(),
		newMockResult(),
		newMockResult(existing),
	}}
	gs := NewWithOpener(&mockOpener{session: sess})

	stats, err := gs.ImportCatalog(context.Background(), cat)
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}
	if stats.Skipped != 1 || stats.Created != 0 || stats.Updated != 0 {
		t.Errorf("stats = %+v, want 1 skipped", stats)
	}
	if len(sess.queries) != 3 {
		t.Errorf("queries = %d, want 3 (no write for identical entry)", len(sess.queries))
	}
}

func TestImportCatalogUpdatesChanged(t *testing.T) {
	cat := catalog.Catalog{
		"Skoda": {
			"Kodiaq": {
				{Generation: "Gen 1", Years: "2016-2023", BaseSystem: "Základný (8 repro)", PremiumSystem: "Canton Sound System (12 repro)"},
			},
		},
	}

	existing := makeRecord(
		[]string{"label", "years", "base", "premium"},
		[]any{"Gen 1", "2016-2023", "Základný (8 repro)", "Canton Sound System (10 repro)"},
	)
	sess := &scriptedSession{results: []CypherResult{
		newMockResult(),
		newMockResult(),
		newMockResult(existing),
	}}
	gs := NewWithOpener(&mockOpener{session: sess})

	stats, err := gs.ImportCatalog(context.Background(), cat)
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}
	if stats.Updated != 1 || stats.Created != 0 || stats.Skipped != 0 {
		t.Errorf("stats = %+v, want 1 updated", stats)
	}

	last := sess.queries[len(sess.queries)-1]
	if !strings.Contains(last, "MATCH (g:Generation") || !strings.Contains(last, "SET g.label") {
		t.Errorf("last query is not the update statement: %q", last)
	}
}

func TestImportCatalogBrandError(t *testing.T) {
	sess := &mockSession{runErr: errors.New("boom")}
	gs := NewWithOpener(&mockOpener{session: sess})

	cat := catalog.Catalog{
		"Audi":  {"A3": {{Generation: "8V", Years: "2012-2020", BaseSystem: "Audi Sound System (10 repro)", PremiumSystem: "Bang & Olufsen Sound System (14 repro)"}}},
		"Skoda": {"Fabia": {{Generation: "Gen 3 (NJ)", Years: "2014-2021", BaseSystem: "Základný (4 repro)", PremiumSystem: "Škoda Surround (6 repro, Arkamys)"}}},
	}

	stats, err := gs.ImportCatalog(context.Background(), cat)
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}
	if stats.Brands != 2 || stats.Models != 0 {
		t.Errorf("stats = %+v, want 2 brands and no models attempted", stats)
	}
	if len(stats.Errors) != 2 {
		t.Fatalf("errors = %v, want 2", stats.Errors)
	}
	if !strings.HasPrefix(stats.Errors[0], "Audi: ") || !strings.HasPrefix(stats.Errors[1], "Skoda: ") {
		t.Errorf("errors not in sorted brand order: %v", stats.Errors)
	}
}

func TestImportCatalogModelTxError(t *testing.T) {
	sess := &mockSession{writeErr: errors.New("tx fail")}
	gs := NewWithOpener(&mockOpener{session: sess})

	stats, err := gs.ImportCatalog(context.Background(), smallCatalog())
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}
	if stats.Brands != 1 || stats.Models != 1 {
		t.Errorf("stats = %+v, want brand and model counted", stats)
	}
	if stats.Created != 0 || stats.Updated != 0 || stats.Skipped != 0 {
		t.Errorf("stats = %+v, want no generation outcomes after rollback", stats)
	}
	if len(stats.Errors) != 1 || !strings.HasPrefix(stats.Errors[0], "Skoda/Octavia: ") {
		t.Errorf("errors = %v", stats.Errors)
	}
}

func TestImportCatalogEmptyModelList(t *testing.T) {
	sess := &mockSession{}
	gs := NewWithOpener(&mockOpener{session: sess})

	cat := catalog.Catalog{"Bentley": {"Continental GT": {}}}
	stats, err := gs.ImportCatalog(context.Background(), cat)
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}
	if stats.Brands != 1 || stats.Models != 1 || stats.Created != 0 {
		t.Errorf("stats = %+v, want model processed with no generations", stats)
	}
}
