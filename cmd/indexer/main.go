// Command indexer consumes brand import events from NATS and keeps the
// semantic index in Qdrant current. Each event is flattened into audio
// system records, embedded through Ollama, and upserted with
// deterministic ids so re-imports replace rather than duplicate.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/tunexa/audiodb/engine/ingest"
	"github.com/tunexa/audiodb/engine/semantic"
	"github.com/tunexa/audiodb/pkg/metrics"
	"github.com/tunexa/audiodb/pkg/ollama"
	"github.com/tunexa/audiodb/pkg/resilience"
)

const vectorDims = 768 // nomic-embed-text

func main() {
	var (
		natsURL     = flag.String("nats", nats.DefaultURL, "NATS server URL")
		ollamaURL   = flag.String("ollama", "http://localhost:11434", "Ollama base URL")
		ollamaModel = flag.String("model", "nomic-embed-text", "Ollama embedding model")
		qdrantAddr  = flag.String("qdrant", "localhost:6334", "Qdrant gRPC address")
		collection  = flag.String("collection", "audio_systems", "Qdrant collection name")
		metricsPort = flag.Int("metrics-port", 9091, "metrics listen port")
		embedRate   = flag.Float64("embed-rate", 4, "embed calls per second")
		embedBurst  = flag.Int("embed-burst", 8, "embed call burst size")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := metrics.New()
	stopRuntime := reg.CollectRuntime(15 * time.Second)
	defer stopRuntime()
	reg.ServeAsync(*metricsPort)

	// Connect NATS
	nc, err := nats.Connect(*natsURL, nats.Name("audiodb-indexer"))
	if err != nil {
		log.Error("nats connect failed", "error", err)
		os.Exit(1)
	}
	defer nc.Close()
	log.Info("connected to NATS", "url", *natsURL)

	// Connect Qdrant
	vs, err := semantic.New(*qdrantAddr, *collection)
	if err != nil {
		log.Error("qdrant connect failed", "error", err)
		os.Exit(1)
	}
	defer vs.Close()
	if err := vs.EnsureCollection(ctx, vectorDims); err != nil {
		log.Error("qdrant ensure collection failed", "error", err)
		os.Exit(1)
	}
	log.Info("connected to Qdrant", "collection", *collection, "dims", vectorDims)

	// Ollama embedder, guarded so a dead Ollama trips fast and a live one
	// is not flooded.
	embedder := ollama.New(*ollamaURL, *ollamaModel)
	log.Info("using Ollama embeddings", "model", *ollamaModel)

	breaker := resilience.NewBreaker(resilience.DefaultBreakerOpts)
	limiter := resilience.NewLimiter(resilience.LimiterOpts{Rate: *embedRate, Burst: *embedBurst})

	sub, err := ingest.StartIndexConsumer(nc, ingest.IndexDeps{
		Embedder: embedder,
		Vectors:  vs,
		Limiter:  limiter,
		Breaker:  breaker,
		Metrics:  reg,
		Logger:   log,
	})
	if err != nil {
		log.Error("subscribe failed", "error", err)
		os.Exit(1)
	}
	defer sub.Unsubscribe()

	log.Info("indexing brand import events", "subject", ingest.ImportedSubject)

	<-ctx.Done()
	log.Info("shutting down")
}
