// Package main implements the vehicle audio catalog API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tunexa/audiodb/engine/catalog"
	"github.com/tunexa/audiodb/engine/graph"
	"github.com/tunexa/audiodb/engine/ingest"
	"github.com/tunexa/audiodb/engine/semantic"
	"github.com/tunexa/audiodb/pkg/metrics"
	"github.com/tunexa/audiodb/pkg/mid"
	"github.com/tunexa/audiodb/pkg/ollama"
	"github.com/tunexa/audiodb/pkg/vehiclenlp"
)

// Config holds all environment-based configuration.
type Config struct {
	Port        string
	MetricsPort int
	NatsURL     string
	Neo4jURL    string
	Neo4jUser   string
	Neo4jPass   string
	QdrantURL   string
	Collection  string
	OllamaURL   string
	EmbedModel  string
	CORSOrigin  string
}

func loadConfig() Config {
	metricsPort, _ := strconv.Atoi(envOr("METRICS_PORT", "9090"))
	return Config{
		Port:        envOr("PORT", "3000"),
		MetricsPort: metricsPort,
		NatsURL:     envOr("NATS_URL", nats.DefaultURL),
		Neo4jURL:    envOr("NEO4J_URL", "neo4j://localhost:7687"),
		Neo4jUser:   envOr("NEO4J_USER", "neo4j"),
		Neo4jPass:   envOr("NEO4J_PASS", "password"),
		QdrantURL:   envOr("QDRANT_URL", "localhost:6334"),
		Collection:  envOr("QDRANT_COLLECTION", "audio_systems"),
		OllamaURL:   envOr("OLLAMA_URL", "http://localhost:11434"),
		EmbedModel:  envOr("EMBED_MODEL", "nomic-embed-text"),
		CORSOrigin:  envOr("CORS_ORIGIN", "*"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Connect to Neo4j ---
	neo4jDriver, err := neo4j.NewDriverWithContext(cfg.Neo4jURL, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPass, ""))
	if err != nil {
		return fmt.Errorf("neo4j driver: %w", err)
	}
	defer neo4jDriver.Close(ctx)

	graphStore := graph.New(neo4jDriver)

	// --- Connect to Qdrant ---
	vectorStore, err := semantic.New(cfg.QdrantURL, cfg.Collection)
	if err != nil {
		return fmt.Errorf("qdrant connect: %w", err)
	}
	defer vectorStore.Close()

	// --- Embedding client for semantic queries ---
	embedder := ollama.New(cfg.OllamaURL, cfg.EmbedModel)

	// --- Query matcher over the authored catalog vocabulary ---
	var matcher *vehiclenlp.Matcher
	if cat, err := catalog.Build(); err != nil {
		logger.Warn("catalog unavailable, query filter extraction disabled", "err", err)
	} else {
		matcher = vehiclenlp.NewMatcher(cat.ModelNames())
	}

	// --- Connect to NATS; imports still work without the bus, the index
	// just goes stale until the next announce succeeds. ---
	var nc *nats.Conn
	if conn, err := nats.Connect(cfg.NatsURL, nats.Name("audiodb-api")); err != nil {
		logger.Warn("nats unavailable, brand events disabled", "err", err)
	} else {
		nc = conn
		defer nc.Close()
	}

	// --- Metrics ---
	reg := metrics.New()
	stopRuntime := reg.CollectRuntime(15 * time.Second)
	defer stopRuntime()
	reg.ServeAsync(cfg.MetricsPort)

	// --- Import service ---
	importSvc := ingest.New(ingest.Deps{
		Graph:   graphStore,
		Bus:     nc,
		Metrics: reg,
		Logger:  logger,
	})

	// --- Build HTTP server ---
	mux := newMux(importSvc, graphStore, embedder, vectorStore, matcher, logger)

	handler := mid.Chain(mux,
		mid.Recover(logger),
		mid.Logger(logger),
		mid.OTel("audiodb-api"),
		mid.Metrics(reg),
		mid.CORS(cfg.CORSOrigin),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful shutdown ---
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}

// --- Handler dependencies, narrowed for tests ---

type catalogImporter interface {
	Import(ctx context.Context, cat catalog.Catalog) (graph.ImportStats, error)
}

type graphReader interface {
	ListBrands(ctx context.Context, limit, offset int) ([]graph.Brand, error)
	ModelsOf(ctx context.Context, brand string) ([]graph.Model, error)
	GenerationsOf(ctx context.Context, brand, model string) ([]graph.Generation, error)
	FindBySystem(ctx context.Context, term string, limit int) ([]graph.SystemHit, error)
	NodeCounts(ctx context.Context) (map[string]int64, error)
	RelationshipCounts(ctx context.Context) (map[string]int64, error)
	TopBrands(ctx context.Context, limit int) ([]graph.BrandStats, error)
}

type queryEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type semanticSearcher interface {
	SearchFiltered(ctx context.Context, embedding []float32, topK int, filters map[string]string) ([]semantic.SystemHit, error)
}

func newMux(svc catalogImporter, g graphReader, emb queryEmbedder, vs semanticSearcher, m *vehiclenlp.Matcher, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /api/vehicle-speakers/import", handleImport(svc, logger))
	mux.HandleFunc("GET /api/brands", handleBrands(g))
	mux.HandleFunc("GET /api/brands/{brand}/models", handleModels(g))
	mux.HandleFunc("GET /api/brands/{brand}/models/{model}/generations", handleGenerations(g))
	mux.HandleFunc("GET /api/systems/search", handleSearch(g))
	mux.HandleFunc("GET /api/systems/semantic", handleSemanticSearch(emb, vs, m, logger))
	mux.HandleFunc("GET /api/stats", handleStats(g))
	return mux
}

// --- Handlers ---

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleImport(svc catalogImporter, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cat catalog.Catalog
		if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		stats, err := svc.Import(r.Context(), cat)
		if err != nil {
			logger.Error("catalog import failed", "err", err)
			writeError(w, http.StatusInternalServerError, "import failed")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func handleBrands(g graphReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := intParam(r, "limit", 100)
		offset := intParam(r, "offset", 0)

		brands, err := g.ListBrands(r.Context(), limit, offset)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "listing brands failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"brands": brands, "count": len(brands)})
	}
}

func handleModels(g graphReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand := r.PathValue("brand")
		models, err := g.ModelsOf(r.Context(), brand)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "listing models failed")
			return
		}
		if len(models) == 0 {
			writeError(w, http.StatusNotFound, "brand not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"brand": brand, "models": models})
	}
}

func handleGenerations(g graphReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand := r.PathValue("brand")
		model := r.PathValue("model")
		gens, err := g.GenerationsOf(r.Context(), brand, model)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "listing generations failed")
			return
		}
		if len(gens) == 0 {
			writeError(w, http.StatusNotFound, "model not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"brand": brand, "model": model, "generations": gens})
	}
}

func handleSearch(g graphReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		limit := intParam(r, "limit", 50)

		hits, err := g.FindBySystem(r.Context(), q, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "search failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"query": q, "hits": hits, "count": len(hits)})
	}
}

func handleSemanticSearch(emb queryEmbedder, vs semanticSearcher, m *vehiclenlp.Matcher, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		limit := intParam(r, "limit", 10)

		filters := make(map[string]string)
		if brand := r.URL.Query().Get("brand"); brand != "" {
			filters["brand"] = brand
		}
		if tier := r.URL.Query().Get("tier"); tier != "" {
			filters["tier"] = tier
		}

		// No explicit brand: derive filters from vehicle mentions in the
		// query text.
		if m != nil && filters["brand"] == "" {
			if match, ok := m.ExtractBest(q); ok {
				filters["brand"] = match.Brand
				if match.Model != "" {
					filters["model"] = match.Model
				}
			}
		}

		embedding, err := emb.Embed(r.Context(), q)
		if err != nil {
			logger.Error("query embedding failed", "err", err)
			writeError(w, http.StatusBadGateway, "embedding unavailable")
			return
		}

		hits, err := vs.SearchFiltered(r.Context(), embedding, limit, filters)
		if err != nil {
			logger.Error("semantic search failed", "err", err)
			writeError(w, http.StatusInternalServerError, "search failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"query": q, "filters": filters, "hits": hits, "count": len(hits)})
	}
}

func handleStats(g graphReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nodes, err := g.NodeCounts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "stats failed")
			return
		}
		rels, err := g.RelationshipCounts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "stats failed")
			return
		}
		top, err := g.TopBrands(r.Context(), 10)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "stats failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"nodes":         nodes,
			"relationships": rels,
			"top_brands":    top,
		})
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func intParam(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
