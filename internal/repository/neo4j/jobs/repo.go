// Package jobsneo4j talks to the store's own job runner (APOC periodic
// procedures) on behalf of the scheduler.
package jobsneo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/scheduler"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store"
)

// Repository implements scheduler.JobStore against APOC.
type Repository struct {
	store store.Store
}

// NewRepository constructs a job repository using the given store port.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// RegisteredNames lists the names of all jobs currently registered with the
// store's runner.
func (r *Repository) RegisteredNames(ctx context.Context) ([]string, error) {
	out, err := r.store.ExecuteRead(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `CALL apoc.periodic.list() YIELD name RETURN name`, nil)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(records))
		for _, rec := range records {
			name, _ := rec.Get("name")
			names = append(names, name.(string))
		}
		return names, nil
	})
	if err != nil {
		return nil, err
	}

	return out.([]string), nil
}

// Register submits a job to the store's runner. The period is expressed in
// whole seconds, which is the unit apoc.periodic.repeat expects.
func (r *Repository) Register(ctx context.Context, job scheduler.Job) error {
	_, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			`CALL apoc.periodic.repeat($name, $statement, $period)`,
			map[string]any{
				"name":      job.Name,
				"statement": job.Statement,
				"period":    int64(job.Period.Seconds()),
			})
		if err != nil {
			return nil, err
		}
		_, err = res.Consume(ctx)
		return nil, err
	})
	return err
}

// compile-time interface check
var _ scheduler.JobStore = (*Repository)(nil)
