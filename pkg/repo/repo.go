// Package repo provides a small generic repository abstraction with a
// Neo4j-backed implementation.
package repo

import "context"

// Repository is the generic CRUD surface shared by storage backends.
type Repository[T any, ID comparable] interface {
	Get(ctx context.Context, id ID) (T, error)
	List(ctx context.Context, opts ListOpts) ([]T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, id ID) error
}

// ListOpts shapes a List call.
type ListOpts struct {
	// Limit caps the page size; non-positive means the backend default.
	Limit int
	// Offset skips that many entities from the start.
	Offset int
	// Filter matches entity properties by equality. Keys must be trusted
	// identifiers, never user input.
	Filter map[string]any
	// Order names a property to sort by, ascending. Same trust rule as
	// Filter keys.
	Order string
}
