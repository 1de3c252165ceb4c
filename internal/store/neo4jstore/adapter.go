package neo4jstore

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store"
)

// Adapter implements the store port on top of the Neo4j driver.
// Concurrent callers share the driver's connection pool but never a session.
type Adapter struct {
	driver   neo4j.DriverWithContext
	database string
}

// New opens a driver for the given bolt URI. The connection is verified
// separately via Ping so callers can decide how fatal an unreachable store is.
func New(uri, username, password, database string) (*Adapter, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}
	return &Adapter{driver: driver, database: database}, nil
}

// Ping verifies connectivity to the store.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.driver.VerifyConnectivity(ctx)
}

// ExecuteRead runs work in a read-only session scoped to this call.
func (a *Adapter) ExecuteRead(ctx context.Context, work store.TxWork) (any, error) {
	session := a.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: a.database,
	})
	defer session.Close(ctx)

	return session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(ctx, tx)
	})
}

// ExecuteWrite runs work in a write session scoped to this call.
// The transaction commits when work succeeds and rolls back on error.
func (a *Adapter) ExecuteWrite(ctx context.Context, work store.TxWork) (any, error) {
	session := a.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: a.database,
	})
	defer session.Close(ctx)

	return session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(ctx, tx)
	})
}

// Close releases the driver and its connection pool.
func (a *Adapter) Close(ctx context.Context) error {
	return a.driver.Close(ctx)
}

var _ store.Store = (*Adapter)(nil)
