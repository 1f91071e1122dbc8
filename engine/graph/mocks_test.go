package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// mockResult feeds a fixed set of records.
type mockResult struct {
	records []*neo4j.Record
	pos     int
}

func newMockResult(records ...*neo4j.Record) *mockResult {
	return &mockResult{records: records}
}

func (r *mockResult) Next(_ context.Context) bool {
	if r.pos >= len(r.records) {
		return false
	}
	r.pos++
	return true
}

func (r *mockResult) Record() *neo4j.Record {
	return r.records[r.pos-1]
}

// makeNodeRecord wraps node properties in a single-column record keyed "n".
func makeNodeRecord(props map[string]any) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"n"},
		Values: []any{dbtype.Node{Props: props}},
	}
}

// makeRecord builds a record from parallel keys and values.
func makeRecord(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

// mockSession replays runResult (or runErr) for every Run, records the
// statements it saw, and routes ExecuteWrite back through itself. A nil
// runResult yields a fresh empty result per call.
type mockSession struct {
	runResult CypherResult
	runErr    error
	writeErr  error
	closed    bool
	queries   []string
	params    []map[string]any
}

func (s *mockSession) Run(_ context.Context, cypher string, params map[string]any) (CypherResult, error) {
	s.queries = append(s.queries, cypher)
	s.params = append(s.params, params)
	if s.runErr != nil {
		return nil, s.runErr
	}
	if s.runResult != nil {
		return s.runResult, nil
	}
	return newMockResult(), nil
}

func (s *mockSession) Close(_ context.Context) error {
	s.closed = true
	return nil
}

func (s *mockSession) ExecuteWrite(_ context.Context, work func(tx CypherRunner) (any, error)) (any, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return work(s)
}

// scriptedSession pops one prepared result per Run, in order, falling
// back to empty results when the script runs out.
type scriptedSession struct {
	results []CypherResult
	pos     int
	closed  bool
	queries []string
	params  []map[string]any
}

func (s *scriptedSession) Run(_ context.Context, cypher string, params map[string]any) (CypherResult, error) {
	s.queries = append(s.queries, cypher)
	s.params = append(s.params, params)
	if s.pos < len(s.results) {
		r := s.results[s.pos]
		s.pos++
		return r, nil
	}
	return newMockResult(), nil
}

func (s *scriptedSession) Close(_ context.Context) error {
	s.closed = true
	return nil
}

func (s *scriptedSession) ExecuteWrite(_ context.Context, work func(tx CypherRunner) (any, error)) (any, error) {
	return work(s)
}

type mockOpener struct {
	session CypherSession
}

func (o *mockOpener) OpenSession(_ context.Context) CypherSession {
	return o.session
}
