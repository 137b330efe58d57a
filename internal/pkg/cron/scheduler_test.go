package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int64
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&ran, 1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int64(2), atomic.LoadInt64(&ran))
}

func TestStartRunsJobImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var once atomic.Bool
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		if once.CompareAndSwap(false, true) {
			close(done)
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "job did not run on Start")
	}
}

func TestStopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	s.AddJob("noop", time.Hour, func(ctx context.Context) error { return nil })
	s.Start()

	finished := make(chan struct{})
	go func() {
		s.Stop()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Stop did not return")
	}
}
