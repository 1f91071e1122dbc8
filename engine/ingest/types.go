package ingest

import (
	"time"

	"github.com/tunexa/audiodb/engine/catalog"
)

const (
	// ImportedSubject carries one event per brand merged into the graph.
	ImportedSubject = "catalog.imported"
	// DLQSubject receives events the indexer has given up on.
	DLQSubject = "catalog.imported.dlq"
	// MaxRetries before a failing event lands on the DLQ.
	MaxRetries = 3
	// UpsertBatchSize caps systems per vector upsert.
	UpsertBatchSize = 50

	retryHeader = "X-Retry-Count"
)

// BrandImported announces one brand's catalog data after a graph import.
// The indexer consumes it to refresh the vector store.
type BrandImported struct {
	Brand      string                     `json:"brand"`
	Models     map[string][]catalog.Entry `json:"models"`
	ImportedAt time.Time                  `json:"imported_at"`
}

// dlqEvent wraps a poisoned event with its terminal error.
type dlqEvent struct {
	Event   BrandImported `json:"event"`
	Error   string        `json:"error"`
	Retries int           `json:"retries"`
}
