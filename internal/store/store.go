// Package store is the transactional boundary between repositories and the
// graph database. Repositories hand it a unit of work; the adapter owns the
// session for exactly the duration of that call.
package store

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// TxWork is a unit of work executed inside a managed transaction.
// Read work must not issue mutations.
type TxWork func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error)

// Store executes units of work against the graph store.
//
// Each call opens a fresh session, runs the work in a transaction and
// releases the session on every exit path. Writes commit on success and
// roll back when the work returns an error. No session outlives a call.
type Store interface {
	// ExecuteRead runs work in a read-only transaction.
	ExecuteRead(ctx context.Context, work TxWork) (any, error)

	// ExecuteWrite runs work with write privileges, committing on success.
	ExecuteWrite(ctx context.Context, work TxWork) (any, error)
}
