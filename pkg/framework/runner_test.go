package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestRunnerWaitAllDone(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(context.Context) error { return nil }),
		NamedRun("second", RunFunc(func(context.Context) error { return nil })))
	assert.NoError(t, r.Wait())
}

func TestRunnerFailureCancelsOthers(t *testing.T) {
	errFirst := errors.New("first")
	r := NewRunner()
	r.Go(RunFunc(blockUntilDone), RunFunc(func(context.Context) error { return errFirst }))
	err := r.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, "first", err.Error())
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(blockUntilDone), RunFunc(blockUntilDone))
	r.Stop()
	assert.NoError(t, r.Wait())
}

func TestRunWithContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	unblock := make(chan struct{})
	var canceled bool
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := RunWithContextCancel(ctx, func() {
		canceled = true
		close(unblock)
	}, func() error {
		<-unblock
		return errors.New("unblocked")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, canceled)
}

func TestRunWithContextCloser(t *testing.T) {
	var closed int
	closer := closerFunc(func() error { closed++; return nil })
	errDone := errors.New("done")
	err := RunWithContextCloser(context.Background(), closer, func() error { return errDone })
	assert.ErrorIs(t, err, errDone)
	assert.Equal(t, 1, closed)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	assert.NoError(t, errs.Add(nil, nil).Aggregate())

	errA, errB := errors.New("a"), errors.New("b")
	err := errs.Add(errA, nil, errB).Aggregate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, "multiple errors:\n  a\n  b", err.Error())
}
