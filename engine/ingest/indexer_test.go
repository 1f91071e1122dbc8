package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/tunexa/audiodb/engine/catalog"
	"github.com/tunexa/audiodb/engine/semantic"
	"github.com/tunexa/audiodb/pkg/metrics"
	"github.com/tunexa/audiodb/pkg/resilience"
)

type stubEmbedder struct {
	mu    sync.Mutex
	calls int
	fail  int // first fail calls return err
	err   error
	texts [][]string
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.texts = append(s.texts, texts)
	if s.calls <= s.fail {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (s *stubEmbedder) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubVectors struct {
	mu      sync.Mutex
	err     error
	upserts [][]semantic.SystemRecord
}

func (s *stubVectors) UpsertSystems(_ context.Context, records []semantic.SystemRecord, embeddings [][]float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if len(records) != len(embeddings) {
		return errors.New("records and embeddings out of step")
	}
	s.upserts = append(s.upserts, records)
	return nil
}

func (s *stubVectors) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, batch := range s.upserts {
		n += len(batch)
	}
	return n
}

func TestIndexUpserts(t *testing.T) {
	emb := &stubEmbedder{}
	vec := &stubVectors{}
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Logger: discardLogger()})

	ev := brandEvent()
	if err := ix.Index(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := len(SystemRecords(ev))
	if got := vec.total(); got != want {
		t.Errorf("upserted %d records, want %d", got, want)
	}
	if emb.callCount() != 1 {
		t.Errorf("embedder calls = %d, want 1", emb.callCount())
	}
	if !strings.Contains(emb.texts[0][0], "Skoda") {
		t.Errorf("embed text = %q", emb.texts[0][0])
	}
}

func TestIndexEmptyEvent(t *testing.T) {
	emb := &stubEmbedder{}
	vec := &stubVectors{}
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Logger: discardLogger()})

	if err := ix.Index(context.Background(), BrandImported{Brand: "Skoda"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emb.callCount() != 0 {
		t.Error("embedder should not run for an empty event")
	}
}

func TestIndexRetriesTransientEmbedError(t *testing.T) {
	emb := &stubEmbedder{fail: 1, err: errors.New("model loading")}
	vec := &stubVectors{}
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Logger: discardLogger()})

	if err := ix.Index(context.Background(), brandEvent()); err != nil {
		t.Fatalf("expected retry to recover: %v", err)
	}
	if emb.callCount() != 2 {
		t.Errorf("embedder calls = %d, want 2", emb.callCount())
	}
}

func TestIndexGivesUpAfterRetries(t *testing.T) {
	emb := &stubEmbedder{fail: 10, err: errors.New("model loading")}
	vec := &stubVectors{}
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Logger: discardLogger()})

	err := ix.Index(context.Background(), brandEvent())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "index Skoda") {
		t.Errorf("error should name the brand: %v", err)
	}
	if vec.total() != 0 {
		t.Error("nothing should be upserted on failure")
	}
}

func TestIndexUpsertError(t *testing.T) {
	emb := &stubEmbedder{}
	vec := &stubVectors{err: errors.New("qdrant unavailable")}
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Logger: discardLogger()})

	if err := ix.Index(context.Background(), brandEvent()); err == nil {
		t.Fatal("expected error")
	}
}

func TestIndexSplitsLargeEvents(t *testing.T) {
	gens := make([]catalog.Entry, 30)
	for i := range gens {
		gens[i] = catalog.Entry{
			Generation:    "generacia",
			Years:         "2010-2020",
			BaseSystem:    "8 reproduktorov",
			PremiumSystem: "Bose",
		}
	}
	ev := BrandImported{Brand: "Audi", Models: map[string][]catalog.Entry{"A4": gens}}

	emb := &stubEmbedder{}
	vec := &stubVectors{}
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Logger: discardLogger()})

	if err := ix.Index(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 60 records split into batches of UpsertBatchSize.
	if got := vec.total(); got != 60 {
		t.Errorf("upserted %d records, want 60", got)
	}
	if emb.callCount() != 2 {
		t.Errorf("embedder calls = %d, want 2", emb.callCount())
	}
}

func TestIndexBreakerRejectsAfterTrip(t *testing.T) {
	emb := &stubEmbedder{fail: 100, err: errors.New("down")}
	vec := &stubVectors{}
	breaker := resilience.NewBreaker(resilience.BreakerOpts{FailThreshold: 1, Timeout: time.Hour})
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Breaker: breaker, Logger: discardLogger()})

	if err := ix.Index(context.Background(), brandEvent()); err == nil {
		t.Fatal("expected error")
	}
	callsAfterTrip := emb.callCount()

	err := ix.Index(context.Background(), brandEvent())
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if emb.callCount() != callsAfterTrip {
		t.Error("open breaker should not reach the embedder")
	}
}

func TestIndexWithLimiter(t *testing.T) {
	emb := &stubEmbedder{}
	vec := &stubVectors{}
	limiter := resilience.NewLimiter(resilience.LimiterOpts{Rate: 1000, Burst: 10})
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Limiter: limiter, Logger: discardLogger()})

	if err := ix.Index(context.Background(), brandEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vec.total() == 0 {
		t.Error("nothing upserted")
	}
}

func TestIndexMetricsByTier(t *testing.T) {
	emb := &stubEmbedder{}
	vec := &stubVectors{}
	reg := metrics.New()
	ix := NewIndexer(IndexDeps{Embedder: emb, Vectors: vec, Metrics: reg, Logger: discardLogger()})

	if err := ix.Index(context.Background(), brandEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := reg.Render()
	if !strings.Contains(out, `indexed_systems_total{tier="base"} 3`) {
		t.Errorf("missing base tier count:\n%s", out)
	}
	if !strings.Contains(out, `indexed_systems_total{tier="premium"} 1`) {
		t.Errorf("missing premium tier count:\n%s", out)
	}
}

func TestRetryCount(t *testing.T) {
	if got := retryCount(nil); got != 0 {
		t.Errorf("nil msg = %d", got)
	}
	if got := retryCount(&nats.Msg{}); got != 0 {
		t.Errorf("no header = %d", got)
	}
	msg := &nats.Msg{Header: nats.Header{}}
	msg.Header.Set("X-Retry-Count", "2")
	if got := retryCount(msg); got != 2 {
		t.Errorf("with header = %d, want 2", got)
	}
}
