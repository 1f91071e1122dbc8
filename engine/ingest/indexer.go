package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/tunexa/audiodb/engine/semantic"
	"github.com/tunexa/audiodb/pkg/fn"
	"github.com/tunexa/audiodb/pkg/metrics"
	"github.com/tunexa/audiodb/pkg/natsutil"
	"github.com/tunexa/audiodb/pkg/resilience"
)

// IndexWorkers bounds concurrent embedding batches per event.
const IndexWorkers = 2

// Embedder is the slice of the embedding client the indexer needs.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorUpserter is the slice of the vector store the indexer needs.
type VectorUpserter interface {
	UpsertSystems(ctx context.Context, records []semantic.SystemRecord, embeddings [][]float32) error
}

// IndexDeps holds the indexing consumer's dependencies. Limiter and
// Breaker are optional; when set they guard the embedding calls.
type IndexDeps struct {
	Embedder Embedder
	Vectors  VectorUpserter
	Limiter  *resilience.Limiter
	Breaker  *resilience.Breaker
	Metrics  *metrics.Registry
	Logger   *slog.Logger
}

type embeddedBatch struct {
	records []semantic.SystemRecord
	vectors [][]float32
}

// Indexer turns brand import events into vector store points.
type Indexer struct {
	deps  IndexDeps
	log   *slog.Logger
	batch fn.Stage[[]semantic.SystemRecord, int]
}

// NewIndexer composes the per-batch pipeline: embed the batch texts,
// guarded by the breaker and rate limiter, then upsert the vectors.
func NewIndexer(deps IndexDeps) *Indexer {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	ix := &Indexer{deps: deps, log: log}

	embed := fn.Stage[[]semantic.SystemRecord, embeddedBatch](
		func(ctx context.Context, records []semantic.SystemRecord) fn.Result[embeddedBatch] {
			texts := fn.Map(records, func(r semantic.SystemRecord) string { return r.Text })
			vectors, err := deps.Embedder.EmbedBatch(ctx, texts)
			if err != nil {
				return fn.Err[embeddedBatch](err)
			}
			if len(vectors) != len(records) {
				return fn.Errf[embeddedBatch]("embedder returned %d vectors for %d texts", len(vectors), len(records))
			}
			return fn.Ok(embeddedBatch{records: records, vectors: vectors})
		})
	if deps.Breaker != nil {
		embed = resilience.BreakerStage(deps.Breaker, embed)
	}
	if deps.Limiter != nil {
		embed = resilience.LimiterStageWait(deps.Limiter, embed)
	}
	embed = fn.RetryStage(fn.RetryOpts{
		MaxAttempts: 2,
		InitialWait: 200 * time.Millisecond,
		MaxWait:     time.Second,
	}, embed)

	store := fn.Stage[embeddedBatch, int](
		func(ctx context.Context, b embeddedBatch) fn.Result[int] {
			if err := deps.Vectors.UpsertSystems(ctx, b.records, b.vectors); err != nil {
				return fn.Err[int](err)
			}
			return fn.Ok(len(b.records))
		})

	ix.batch = fn.TracedStage("index.batch", fn.Then(embed, store))
	return ix
}

// Index embeds one brand's systems and upserts them. Batches run with
// bounded concurrency; the first failing batch aborts the event.
func (ix *Indexer) Index(ctx context.Context, ev BrandImported) error {
	records := SystemRecords(ev)
	if len(records) == 0 {
		return nil
	}

	batches := fn.Chunk(records, UpsertBatchSize)
	run := fn.BatchStage(IndexWorkers, ix.batch)
	if _, err := run(ctx, batches).Unwrap(); err != nil {
		return fmt.Errorf("index %s: %w", ev.Brand, err)
	}

	ix.observe(records)
	return nil
}

func (ix *Indexer) observe(records []semantic.SystemRecord) {
	if ix.deps.Metrics == nil {
		return
	}
	byTier := fn.GroupBy(records, func(r semantic.SystemRecord) string { return r.Tier })
	for tier, rs := range byTier {
		ix.deps.Metrics.Counter(
			metrics.WithLabels("indexed_systems_total", "tier", tier),
			"Audio systems indexed into the vector store").Add(int64(len(rs)))
	}
}

func retryCount(msg *nats.Msg) int {
	if msg == nil || msg.Header == nil {
		return 0
	}
	n, _ := strconv.Atoi(msg.Header.Get(retryHeader))
	return n
}

// StartIndexConsumer subscribes to brand import events and indexes each
// brand's audio systems. Failed events are re-published with a retry
// header and land on the DLQ after MaxRetries attempts.
func StartIndexConsumer(nc *nats.Conn, deps IndexDeps) (*nats.Subscription, error) {
	ix := NewIndexer(deps)
	return natsutil.SubscribeMsg(nc, ImportedSubject, func(ctx context.Context, ev BrandImported, msg *nats.Msg) {
		err := ix.Index(ctx, ev)
		if err == nil {
			ix.log.Info("index: brand done", "brand", ev.Brand, "models", len(ev.Models))
			return
		}

		retries := retryCount(msg) + 1
		ix.log.Error("index: brand failed", "brand", ev.Brand, "retry", retries, "error", err)

		if retries >= MaxRetries {
			dlq := dlqEvent{Event: ev, Error: err.Error(), Retries: retries}
			if perr := natsutil.Publish(ctx, nc, DLQSubject, dlq); perr != nil {
				ix.log.Error("index: DLQ publish failed", "error", perr)
			}
			return
		}

		header := nats.Header{}
		header.Set(retryHeader, strconv.Itoa(retries))
		if perr := natsutil.PublishHeaders(ctx, nc, ImportedSubject, ev, header); perr != nil {
			ix.log.Error("index: retry publish failed", "error", perr)
		}
	})
}
