// Package scheduler registers the fixed set of recurring maintenance jobs
// with the store's own job runner at process startup.
//
// Registration is read-then-conditional-write: list the names already
// registered, submit only the missing ones. Two processes booting at the
// same moment can both see an empty list and double-register a job; that
// race is accepted, since the statements are idempotent per tick and the
// store does not guarantee uniqueness by name. A job whose statement or
// period has drifted from the current definition is not corrected either;
// dropping it in the store by hand forces a re-seed on the next boot.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Job is a named, recurring store-side maintenance action.
type Job struct {
	Name      string
	Statement string
	Period    time.Duration
}

// JobStore is the slice of the store the registrar needs: listing the
// registered job names and submitting new jobs to the store's runner.
type JobStore interface {
	RegisteredNames(ctx context.Context) ([]string, error)
	Register(ctx context.Context, job Job) error
}

// Jobs is the fixed set of maintenance jobs this process keeps registered.
func Jobs() []Job {
	return []Job{
		{
			Name:      "decrease movies popularity",
			Statement: "MATCH (m:Movie) SET m.popularity = m.popularity / 2",
			Period:    12 * time.Hour,
		},
		{
			Name:      "decrease users activity score",
			Statement: "MATCH (u:User) SET u.activityScore = u.activityScore / 2",
			Period:    72 * time.Hour,
		},
		{
			Name:      "delete old messages",
			Statement: "MATCH (m:Message) WHERE m.createdAt < datetime() - duration({days: 7}) DETACH DELETE m",
			Period:    24 * time.Hour,
		},
	}
}

// Registrar performs the boot-time registration pass.
type Registrar struct {
	store JobStore
	jobs  []Job
}

// NewRegistrar creates a registrar for the default job set.
func NewRegistrar(store JobStore) *Registrar {
	return &Registrar{store: store, jobs: Jobs()}
}

// RegisterAll makes sure every defined job exists in the store, without
// re-registering names that are already present.
//
// Failing to read the existing names is fatal and returned to the caller.
// Failing to register one job is logged and skips only that job; the
// remaining jobs still attempt registration.
func (r *Registrar) RegisterAll(ctx context.Context) error {
	names, err := r.store.RegisteredNames(ctx)
	if err != nil {
		return fmt.Errorf("list registered jobs: %w", err)
	}

	existing := make(map[string]struct{}, len(names))
	for _, name := range names {
		existing[name] = struct{}{}
	}

	for _, job := range r.jobs {
		if _, ok := existing[job.Name]; ok {
			log.Printf("[Scheduler] Job %q already registered, skipping.", job.Name)
			continue
		}

		if err := r.store.Register(ctx, job); err != nil {
			log.Printf("[Scheduler] Failed to register job %q: %v", job.Name, err)
			continue
		}

		log.Printf("[Scheduler] Registered job %q (period=%s).", job.Name, job.Period)
	}

	return nil
}
