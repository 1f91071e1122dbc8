// Package ingest moves the authored catalog into the backing stores: an
// import service that merges it into the graph and announces imported
// brands on the bus, and an indexing consumer that embeds each brand's
// audio systems into the vector store.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/tunexa/audiodb/engine/catalog"
	"github.com/tunexa/audiodb/engine/graph"
	"github.com/tunexa/audiodb/pkg/fn"
	"github.com/tunexa/audiodb/pkg/metrics"
	"github.com/tunexa/audiodb/pkg/natsutil"
)

// GraphImporter is the slice of the graph store the service needs.
type GraphImporter interface {
	ImportCatalog(ctx context.Context, cat catalog.Catalog) (graph.ImportStats, error)
}

// Deps holds the import service's external dependencies. PublishF, when
// set, overrides Bus for announcing brand events.
type Deps struct {
	Graph    GraphImporter
	Bus      *nats.Conn
	PublishF func(ctx context.Context, ev BrandImported) error
	Metrics  *metrics.Registry
	Logger   *slog.Logger
}

// Service runs catalog imports.
type Service struct {
	deps        Deps
	log         *slog.Logger
	importStage fn.Stage[catalog.Catalog, graph.ImportStats]
}

// New wires an import service.
func New(deps Deps) *Service {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Service{deps: deps, log: log}
	s.importStage = fn.TracedStage("catalog.import",
		func(ctx context.Context, cat catalog.Catalog) fn.Result[graph.ImportStats] {
			return fn.FromPair(deps.Graph.ImportCatalog(ctx, cat))
		})
	return s
}

// Import merges the catalog into the graph, then announces each imported
// brand on the bus. Announce failures are logged, not returned: the graph
// import already committed and a later import can refresh the index.
func (s *Service) Import(ctx context.Context, cat catalog.Catalog) (graph.ImportStats, error) {
	stats, err := s.importStage(ctx, cat).Unwrap()
	if err != nil {
		return graph.ImportStats{}, err
	}

	s.observe(stats)
	s.announce(ctx, cat)

	s.log.Info("import: catalog merged",
		"brands", stats.Brands,
		"models", stats.Models,
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", len(stats.Errors),
	)
	return stats, nil
}

func (s *Service) observe(stats graph.ImportStats) {
	if s.deps.Metrics == nil {
		return
	}
	reg := s.deps.Metrics
	reg.Counter(metrics.WithLabels("catalog_imports_total", "outcome", "created"),
		"Imported generations by outcome").Add(int64(stats.Created))
	reg.Counter(metrics.WithLabels("catalog_imports_total", "outcome", "updated"),
		"Imported generations by outcome").Add(int64(stats.Updated))
	reg.Counter(metrics.WithLabels("catalog_imports_total", "outcome", "skipped"),
		"Imported generations by outcome").Add(int64(stats.Skipped))
	reg.Counter("catalog_import_errors_total",
		"Brand and model import failures").Add(int64(len(stats.Errors)))
}

func (s *Service) announce(ctx context.Context, cat catalog.Catalog) {
	publish := s.deps.PublishF
	if publish == nil {
		if s.deps.Bus == nil {
			return
		}
		publish = func(ctx context.Context, ev BrandImported) error {
			return natsutil.Publish(ctx, s.deps.Bus, ImportedSubject, ev)
		}
	}

	now := time.Now().UTC()
	events := fn.Map(cat.Brands(), func(brand string) BrandImported {
		return BrandImported{Brand: brand, Models: cat[brand], ImportedAt: now}
	})
	for _, ev := range events {
		if err := publish(ctx, ev); err != nil {
			s.log.Warn("import: announce brand", "brand", ev.Brand, "error", err)
		}
	}
}
