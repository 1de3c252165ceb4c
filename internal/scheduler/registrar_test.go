package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeJobStore is a test double holding registered jobs in memory. It can be
// told to fail listing or to fail registration of specific job names.
type fakeJobStore struct {
	jobs     []Job
	listErr  error
	failName string
}

func (f *fakeJobStore) RegisteredNames(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	names := make([]string, 0, len(f.jobs))
	for _, job := range f.jobs {
		names = append(names, job.Name)
	}
	return names, nil
}

func (f *fakeJobStore) Register(ctx context.Context, job Job) error {
	if job.Name == f.failName {
		return errors.New("registration rejected")
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func TestRegistrar_RegistersAllOnEmptyStore(t *testing.T) {
	req := require.New(t)
	store := &fakeJobStore{}

	err := NewRegistrar(store).RegisterAll(context.Background())
	req.NoError(err)
	req.Len(store.jobs, 3)
}

// TestRegistrar_SecondRunIsIdempotent seeds zero jobs, registers, then runs
// registration again: the set of registered names must not grow.
func TestRegistrar_SecondRunIsIdempotent(t *testing.T) {
	req := require.New(t)
	store := &fakeJobStore{}
	registrar := NewRegistrar(store)

	req.NoError(registrar.RegisterAll(context.Background()))
	req.Len(store.jobs, 3)

	req.NoError(registrar.RegisterAll(context.Background()))
	req.Len(store.jobs, 3)

	seen := map[string]int{}
	for _, job := range store.jobs {
		seen[job.Name]++
	}
	for name, count := range seen {
		req.Equal(1, count, "job %q registered more than once", name)
	}
}

func TestRegistrar_ListFailureIsFatal(t *testing.T) {
	req := require.New(t)
	store := &fakeJobStore{listErr: errors.New("store unreachable")}

	err := NewRegistrar(store).RegisterAll(context.Background())
	req.Error(err)
	req.Empty(store.jobs)
}

// A single job failing to register must not abort the remaining jobs.
func TestRegistrar_PerJobFailureSkipsOnlyThatJob(t *testing.T) {
	req := require.New(t)
	store := &fakeJobStore{failName: Jobs()[0].Name}

	err := NewRegistrar(store).RegisterAll(context.Background())
	req.NoError(err)
	req.Len(store.jobs, 2)
}

func TestJobs_Definitions(t *testing.T) {
	req := require.New(t)
	jobs := Jobs()

	req.Len(jobs, 3)

	byName := map[string]Job{}
	for _, job := range jobs {
		req.NotEmpty(job.Statement)
		byName[job.Name] = job
	}

	req.Equal(12*time.Hour, byName["decrease movies popularity"].Period)
	req.Equal(72*time.Hour, byName["decrease users activity score"].Period)
	req.Equal(24*time.Hour, byName["delete old messages"].Period)
}
