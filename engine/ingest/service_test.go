package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/tunexa/audiodb/engine/catalog"
	"github.com/tunexa/audiodb/engine/graph"
	"github.com/tunexa/audiodb/pkg/metrics"
)

type stubGraph struct {
	stats graph.ImportStats
	err   error
	got   catalog.Catalog
}

func (s *stubGraph) ImportCatalog(_ context.Context, cat catalog.Catalog) (graph.ImportStats, error) {
	s.got = cat
	return s.stats, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		"Skoda": {
			"Octavia": {
				{Generation: "4. generacia", Years: "2020-2024", BaseSystem: "8 reproduktorov", PremiumSystem: "Canton Sound System"},
			},
		},
		"Volkswagen": {
			"Golf": {
				{Generation: "8. generacia", Years: "2019-", BaseSystem: "Composition", PremiumSystem: "Harman Kardon"},
			},
		},
	}
}

func TestImportReturnsStats(t *testing.T) {
	g := &stubGraph{stats: graph.ImportStats{Brands: 2, Models: 2, Created: 2}}
	svc := New(Deps{Graph: g, Logger: discardLogger()})

	stats, err := svc.Import(context.Background(), testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Created != 2 || stats.Brands != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if g.got == nil {
		t.Error("graph import never called")
	}
}

func TestImportGraphError(t *testing.T) {
	g := &stubGraph{err: errors.New("neo4j unavailable")}
	published := 0
	svc := New(Deps{
		Graph:    g,
		PublishF: func(context.Context, BrandImported) error { published++; return nil },
		Logger:   discardLogger(),
	})

	if _, err := svc.Import(context.Background(), testCatalog()); err == nil {
		t.Fatal("expected error")
	}
	if published != 0 {
		t.Error("should not announce a failed import")
	}
}

func TestImportAnnouncesBrands(t *testing.T) {
	g := &stubGraph{stats: graph.ImportStats{Brands: 2}}
	var events []BrandImported
	svc := New(Deps{
		Graph:    g,
		PublishF: func(_ context.Context, ev BrandImported) error { events = append(events, ev); return nil },
		Logger:   discardLogger(),
	})

	if _, err := svc.Import(context.Background(), testCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Brand != "Skoda" || events[1].Brand != "Volkswagen" {
		t.Errorf("brands = %s, %s", events[0].Brand, events[1].Brand)
	}
	if events[0].ImportedAt.IsZero() {
		t.Error("ImportedAt not set")
	}
	gens := events[0].Models["Octavia"]
	if len(gens) != 1 || gens[0].PremiumSystem != "Canton Sound System" {
		t.Errorf("event payload = %+v", events[0].Models)
	}
}

func TestImportPublishFailureNonFatal(t *testing.T) {
	g := &stubGraph{stats: graph.ImportStats{Brands: 2}}
	svc := New(Deps{
		Graph:    g,
		PublishF: func(context.Context, BrandImported) error { return errors.New("nats down") },
		Logger:   discardLogger(),
	})

	if _, err := svc.Import(context.Background(), testCatalog()); err != nil {
		t.Fatalf("publish failure should not fail the import: %v", err)
	}
}

func TestImportNoBusSkipsAnnounce(t *testing.T) {
	g := &stubGraph{stats: graph.ImportStats{Brands: 2}}
	svc := New(Deps{Graph: g, Logger: discardLogger()})
	if _, err := svc.Import(context.Background(), testCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportRecordsMetrics(t *testing.T) {
	g := &stubGraph{stats: graph.ImportStats{
		Brands:  1,
		Models:  2,
		Created: 3,
		Updated: 1,
		Skipped: 2,
		Errors:  []string{"Skoda/Octavia: merge failed"},
	}}
	reg := metrics.New()
	svc := New(Deps{Graph: g, Metrics: reg, Logger: discardLogger()})

	if _, err := svc.Import(context.Background(), testCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := reg.Render()
	for _, want := range []string{
		`catalog_imports_total{outcome="created"} 3`,
		`catalog_imports_total{outcome="updated"} 1`,
		`catalog_imports_total{outcome="skipped"} 2`,
		"catalog_import_errors_total 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics missing %q:\n%s", want, out)
		}
	}
}
