package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/internal/core/port"
)

type sweepStub struct {
	calls atomic.Int32
	res   port.SweepResult
	err   error
	panic bool
}

func (s *sweepStub) Run(context.Context) (port.SweepResult, error) {
	s.calls.Add(1)
	if s.panic {
		panic("sweep exploded")
	}
	return s.res, s.err
}

func newTestScheduler(stub *sweepStub, schedule string) *Scheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(context.Background(), stub, schedule, time.UTC, logger)
}

func TestRunSweep_CallsSweeper(t *testing.T) {
	stub := &sweepStub{res: port.SweepResult{Ads: 2, Posts: 3}}
	newTestScheduler(stub, "0 1 * * *").RunSweep()
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestRunSweep_SwallowsErrors(t *testing.T) {
	stub := &sweepStub{err: errors.New("db down")}
	assert.NotPanics(t, newTestScheduler(stub, "0 1 * * *").RunSweep)
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	s := newTestScheduler(&sweepStub{}, "not a cron expression")
	assert.Error(t, s.Start())
}

func TestStart_RunsOnSchedule(t *testing.T) {
	stub := &sweepStub{panic: true}
	s := newTestScheduler(stub, "@every 1s")
	require.NoError(t, s.Start())
	t.Cleanup(func() { <-s.Stop().Done() })

	// the recover wrapper keeps the runner alive across panicking runs
	assert.Eventually(t, func() bool { return stub.calls.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)
}
