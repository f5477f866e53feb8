package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	stages []Stage
	seen   []Message
	take   bool
}

func (r *recorder) Control(cc ControlContext) error {
	r.stages = append(r.stages, cc.Stage())
	cc.ProcessMessages(func(msg Message) bool {
		r.seen = append(r.seen, msg)
		return r.take
	})
	return nil
}

func TestLoopRunOnceStages(t *testing.T) {
	var order []string
	l := NewLoop(time.Second)
	l.AddController(StageActuate, ControlFunc(func(ControlContext) error {
		order = append(order, "actuate")
		return nil
	}))
	l.AddController(StageSense, ControlFunc(func(ControlContext) error {
		order = append(order, "sense")
		return nil
	}))
	l.AddController(StageControl, ControlFunc(func(ControlContext) error {
		order = append(order, "control")
		return errors.New("ignored")
	}))
	l.RunOnce(context.Background(), time.Now())
	assert.Equal(t, []string{"sense", "control", "actuate"}, order)
}

func TestLoopMessages(t *testing.T) {
	taker, watcher := &recorder{take: true}, &recorder{}
	l := NewLoop(time.Second)
	l.AddController(StageControl, watcher)
	l.AddController(StageActuate, taker)

	l.PostMessage(1)
	l.PostMessage(2)
	l.RunOnce(context.Background(), time.Now())
	assert.Equal(t, []Message{1, 2}, watcher.seen)
	assert.Equal(t, []Message{1, 2}, taker.seen)
	assert.Equal(t, []Stage{StageControl}, watcher.stages)
	assert.Equal(t, []Stage{StageActuate}, taker.stages)

	// messages are consumed by the tick.
	l.RunOnce(context.Background(), time.Now())
	assert.Len(t, taker.seen, 2)

	l.PostMessage(3)
	l.RunOnce(context.Background(), time.Now())
	assert.Equal(t, []Message{1, 2, 3}, taker.seen)
}

func TestLoopTakenMessagesAreHidden(t *testing.T) {
	first, second := &recorder{take: true}, &recorder{}
	l := NewLoop(time.Second)
	l.AddController(StageSense, first)
	l.AddController(StageControl, second)
	l.PostMessage("event")
	l.RunOnce(context.Background(), time.Now())
	assert.Equal(t, []Message{"event"}, first.seen)
	assert.Empty(t, second.seen)
}

func TestLoopTick(t *testing.T) {
	var ticks []uint64
	l := NewLoop(time.Second)
	l.AddController(StageControl, ControlFunc(func(cc ControlContext) error {
		ticks = append(ticks, cc.Tick())
		return nil
	}))
	for i := 0; i < 3; i++ {
		l.RunOnce(context.Background(), time.Now())
	}
	assert.Equal(t, []uint64{1, 2, 3}, ticks)
}

func TestLoopRunTriggerNext(t *testing.T) {
	ticked := make(chan uint64, 4)
	l := NewLoop(time.Hour)
	l.AddController(StageControl, ControlFunc(func(cc ControlContext) error {
		ticked <- cc.Tick()
		return nil
	}))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	l.TriggerNext()
	select {
	case tick := <-ticked:
		assert.Equal(t, uint64(1), tick)
	case <-time.After(5 * time.Second):
		t.Fatal("no tick")
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestLoopRunStopsOnRunnableFailure(t *testing.T) {
	errBroken := errors.New("broken")
	l := NewLoop(time.Hour)
	l.AddRunnable(RunFunc(func(context.Context) error { return errBroken }))
	l.AddRunnable(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	err := l.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "sense", StageSense.String())
	assert.Equal(t, "control", StageControl.String())
	assert.Equal(t, "actuate", StageActuate.String())
	assert.Equal(t, "invalid", Stage(9).String())
}
