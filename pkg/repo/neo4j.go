package repo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const defaultListLimit = 100

// rows is the slice of neo4j result iteration the repo needs.
type rows interface {
	Next(ctx context.Context) bool
	Record() *neo4j.Record
}

// cypherRunner is the slice of a neo4j session the repo needs. Tests swap
// in a fake; production wraps neo4j.SessionWithContext.
type cypherRunner interface {
	Run(ctx context.Context, cypher string, params map[string]any) (rows, error)
	Close(ctx context.Context) error
}

// Neo4jRepo implements Repository on top of a Neo4j node label. Entities
// map to node properties through the toMap and fromRecord callbacks, so the
// repo itself stays ignorant of the concrete type.
type Neo4jRepo[T any, ID comparable] struct {
	driver      neo4j.DriverWithContext
	label       string
	idKey       string
	toMap       func(T) map[string]any
	fromRecord  func(*neo4j.Record) (T, error)
	openSession func(ctx context.Context) cypherRunner // overridden in tests
}

var _ Repository[any, string] = (*Neo4jRepo[any, string])(nil)

// Neo4jOption customizes a Neo4jRepo.
type Neo4jOption[T any, ID comparable] func(*Neo4jRepo[T, ID])

// WithIDKey names the node property holding the identity (default "id").
func WithIDKey[T any, ID comparable](key string) Neo4jOption[T, ID] {
	return func(r *Neo4jRepo[T, ID]) { r.idKey = key }
}

// NewNeo4jRepo builds a repository for nodes labeled label.
func NewNeo4jRepo[T any, ID comparable](
	driver neo4j.DriverWithContext,
	label string,
	toMap func(T) map[string]any,
	fromRecord func(*neo4j.Record) (T, error),
	opts ...Neo4jOption[T, ID],
) *Neo4jRepo[T, ID] {
	r := &Neo4jRepo[T, ID]{
		driver:     driver,
		label:      label,
		idKey:      "id",
		toMap:      toMap,
		fromRecord: fromRecord,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// driverSession adapts a real neo4j session to cypherRunner.
type driverSession struct {
	sess neo4j.SessionWithContext
}

func (d *driverSession) Run(ctx context.Context, cypher string, params map[string]any) (rows, error) {
	return d.sess.Run(ctx, cypher, params)
}

func (d *driverSession) Close(ctx context.Context) error { return d.sess.Close(ctx) }

func (r *Neo4jRepo[T, ID]) session(ctx context.Context) cypherRunner {
	if r.openSession != nil {
		return r.openSession(ctx)
	}
	return &driverSession{sess: r.driver.NewSession(ctx, neo4j.SessionConfig{})}
}

// one runs cypher and maps the first record, erring with notFound when the
// result is empty.
func (r *Neo4jRepo[T, ID]) one(ctx context.Context, cypher string, params map[string]any, notFound string) (T, error) {
	var zero T
	sess := r.session(ctx)
	defer sess.Close(ctx)

	res, err := sess.Run(ctx, cypher, params)
	if err != nil {
		return zero, err
	}
	if !res.Next(ctx) {
		return zero, errors.New(notFound)
	}
	return r.fromRecord(res.Record())
}

func (r *Neo4jRepo[T, ID]) Get(ctx context.Context, id ID) (T, error) {
	cypher := fmt.Sprintf("MATCH (n:%s {%s: $id}) RETURN n LIMIT 1", r.label, r.idKey)
	return r.one(ctx, cypher, map[string]any{"id": id},
		fmt.Sprintf("%s %v not found", r.label, id))
}

func (r *Neo4jRepo[T, ID]) List(ctx context.Context, opts ListOpts) ([]T, error) {
	sess := r.session(ctx)
	defer sess.Close(ctx)

	cypher, params := buildListQuery(r.label, opts)
	res, err := sess.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var out []T
	for res.Next(ctx) {
		entity, err := r.fromRecord(res.Record())
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *Neo4jRepo[T, ID]) Create(ctx context.Context, entity T) (T, error) {
	cypher := fmt.Sprintf("CREATE (n:%s) SET n = $props RETURN n", r.label)
	return r.one(ctx, cypher, map[string]any{"props": r.toMap(entity)},
		fmt.Sprintf("create %s returned no node", r.label))
}

func (r *Neo4jRepo[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	props := r.toMap(entity)
	cypher := fmt.Sprintf("MATCH (n:%s {%s: $id}) SET n += $props RETURN n", r.label, r.idKey)
	return r.one(ctx, cypher, map[string]any{"id": props[r.idKey], "props": props},
		fmt.Sprintf("%s %v not found", r.label, props[r.idKey]))
}

// Delete removes the node along with any relationships still attached.
func (r *Neo4jRepo[T, ID]) Delete(ctx context.Context, id ID) error {
	sess := r.session(ctx)
	defer sess.Close(ctx)

	cypher := fmt.Sprintf("MATCH (n:%s {%s: $id}) DETACH DELETE n", r.label, r.idKey)
	_, err := sess.Run(ctx, cypher, map[string]any{"id": id})
	return err
}

// buildListQuery assembles the List cypher. Filter clauses come out in
// sorted key order so the query text is deterministic.
func buildListQuery(label string, opts ListOpts) (string, map[string]any) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	params := map[string]any{"offset": opts.Offset, "limit": limit}

	var b strings.Builder
	fmt.Fprintf(&b, "MATCH (n:%s)", label)

	if len(opts.Filter) > 0 {
		keys := make([]string, 0, len(opts.Filter))
		for k := range opts.Filter {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i == 0 {
				b.WriteString(" WHERE ")
			} else {
				b.WriteString(" AND ")
			}
			fmt.Fprintf(&b, "n.%s = $f_%s", k, k)
			params["f_"+k] = opts.Filter[k]
		}
	}

	b.WriteString(" RETURN n")
	if opts.Order != "" {
		fmt.Fprintf(&b, " ORDER BY n.%s", opts.Order)
	}
	b.WriteString(" SKIP $offset LIMIT $limit")
	return b.String(), params
}
