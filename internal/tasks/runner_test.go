package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunner_ExecutesSubmittedTasks(t *testing.T) {
	req := require.New(t)
	r := NewRunner(2, 8)

	var ran int32
	done := make(chan struct{})

	r.Submit("count", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("task was not executed")
	}

	r.Close()
	req.Equal(int32(1), atomic.LoadInt32(&ran))
}

// Close must drain everything already queued before returning.
func TestRunner_CloseDrainsQueue(t *testing.T) {
	req := require.New(t)
	r := NewRunner(1, 16)

	var ran int32
	for i := 0; i < 10; i++ {
		r.Submit("drain", func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}

	r.Close()
	req.Equal(int32(10), atomic.LoadInt32(&ran))
}

// A failing or panicking task must not take a worker down.
func TestRunner_SurvivesFailuresAndPanics(t *testing.T) {
	req := require.New(t)
	r := NewRunner(1, 8)

	r.Submit("fails", func(ctx context.Context) error { return errors.New("boom") })
	r.Submit("panics", func(ctx context.Context) error { panic("boom") })

	var ran int32
	r.Submit("after", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	r.Close()
	req.Equal(int32(1), atomic.LoadInt32(&ran))
}

func TestRunner_SubmitAfterCloseIsDropped(t *testing.T) {
	r := NewRunner(1, 8)
	r.Close()

	// Must not panic on a closed queue.
	r.Submit("late", func(ctx context.Context) error { return nil })
}

func TestSync_RunsInline(t *testing.T) {
	req := require.New(t)

	var ran bool
	Sync{}.Submit("inline", func(ctx context.Context) error {
		ran = true
		return nil
	})

	req.True(ran)
}
