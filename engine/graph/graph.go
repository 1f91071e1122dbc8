// Package graph persists the vehicle audio catalog in Neo4j as a
// Brand -[:HAS_MODEL]-> Model -[:HAS_GENERATION]-> Generation hierarchy.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/tunexa/audiodb/pkg/repo"
)

// CypherResult is the minimal surface read from a query result.
type CypherResult interface {
	Next(ctx context.Context) bool
	Record() *neo4j.Record
}

// CypherRunner runs one Cypher statement.
type CypherRunner interface {
	Run(ctx context.Context, cypher string, params map[string]any) (CypherResult, error)
}

// CypherSession is the session surface the store needs. Tests stand in
// for the driver here.
type CypherSession interface {
	CypherRunner
	Close(ctx context.Context) error
	ExecuteWrite(ctx context.Context, work func(tx CypherRunner) (any, error)) (any, error)
}

// SessionOpener opens sessions on demand.
type SessionOpener interface {
	OpenSession(ctx context.Context) CypherSession
}

// GraphStore provides catalog operations on top of a Neo4j driver.
type GraphStore struct {
	opener SessionOpener
	brands *repo.Neo4jRepo[Brand, string]
}

// New creates a GraphStore on a live driver.
func New(driver neo4j.DriverWithContext) *GraphStore {
	return &GraphStore{
		opener: &driverOpener{driver: driver},
		brands: newBrandRepo(driver),
	}
}

// NewWithOpener creates a GraphStore with a custom session opener. Brand
// reads fall back to direct queries when no driver-backed repo exists.
func NewWithOpener(o SessionOpener) *GraphStore {
	return &GraphStore{opener: o}
}

// GetBrand returns one brand by id.
func (g *GraphStore) GetBrand(ctx context.Context, id string) (Brand, error) {
	if g.brands != nil {
		return g.brands.Get(ctx, id)
	}

	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	result, err := sess.Run(ctx, `MATCH (n:Brand {id: $id}) RETURN n`, map[string]any{"id": id})
	if err != nil {
		return Brand{}, err
	}
	if !result.Next(ctx) {
		return Brand{}, fmt.Errorf("brand %s not found", id)
	}
	return brandFromRecord(result.Record())
}

// ListBrands returns brands ordered by name.
func (g *GraphStore) ListBrands(ctx context.Context, limit, offset int) ([]Brand, error) {
	if g.brands != nil {
		return g.brands.List(ctx, repo.ListOpts{Limit: limit, Offset: offset, Order: "name"})
	}

	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	if limit <= 0 {
		limit = 100
	}
	cypher := `MATCH (n:Brand) RETURN n ORDER BY n.name SKIP $offset LIMIT $limit`
	result, err := sess.Run(ctx, cypher, map[string]any{"offset": offset, "limit": limit})
	if err != nil {
		return nil, err
	}

	var brands []Brand
	for result.Next(ctx) {
		b, err := brandFromRecord(result.Record())
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// driverOpener is the production SessionOpener.
type driverOpener struct {
	driver neo4j.DriverWithContext
}

func (o *driverOpener) OpenSession(ctx context.Context) CypherSession {
	return &driverSession{sess: o.driver.NewSession(ctx, neo4j.SessionConfig{})}
}

// driverSession adapts neo4j.SessionWithContext to CypherSession.
type driverSession struct {
	sess neo4j.SessionWithContext
}

func (s *driverSession) Run(ctx context.Context, cypher string, params map[string]any) (CypherResult, error) {
	return s.sess.Run(ctx, cypher, params)
}

func (s *driverSession) Close(ctx context.Context) error {
	return s.sess.Close(ctx)
}

func (s *driverSession) ExecuteWrite(ctx context.Context, work func(tx CypherRunner) (any, error)) (any, error) {
	return s.sess.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(&managedRunner{tx: tx})
	})
}

// managedRunner adapts a managed transaction to CypherRunner.
type managedRunner struct {
	tx neo4j.ManagedTransaction
}

func (r *managedRunner) Run(ctx context.Context, cypher string, params map[string]any) (CypherResult, error) {
	return r.tx.Run(ctx, cypher, params)
}

// strProp extracts a string property, empty when absent or non-string.
func strProp(props map[string]any, key string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// intProp extracts an integer property across the types the driver may
// hand back.
func intProp(props map[string]any, key string) int {
	switch v := props[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
