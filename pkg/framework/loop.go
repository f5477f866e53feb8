package framework

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultInterval is the tick interval used when Loop.Interval is zero.
// 50 Hz is the rate a radio transmitter normally sends channel frames at.
const DefaultInterval = 20 * time.Millisecond

// Loop runs controllers at a fixed rate and the attached runnables in the
// background.
type Loop struct {
	Interval time.Duration

	stages  [numStages][]Controller
	runners []Runnable

	lock    sync.Mutex
	pending []Message
	tick    uint64

	wakeUpOnce sync.Once
	wakeUpCh   chan struct{}
}

// LoopAdder attaches itself to a loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

// NewLoop creates a Loop ticking at interval.
func NewLoop(interval time.Duration) *Loop {
	return &Loop{Interval: interval}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers at stage. A controller which is also
// a Runnable is started with the loop.
func (l *Loop) AddController(stage Stage, ctls ...Controller) *Loop {
	l.stages[stage] = append(l.stages[stage], ctls...)
	for _, ctl := range ctls {
		if r, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, r)
		}
	}
	return l
}

// AddRunnable adds background workers.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// PostMessage implements LoopControl.
func (l *Loop) PostMessage(msg Message) {
	l.lock.Lock()
	l.pending = append(l.pending, msg)
	l.lock.Unlock()
}

// TriggerNext implements LoopControl.
func (l *Loop) TriggerNext() {
	select {
	case l.wakeUp() <- struct{}{}:
	default:
	}
}

func (l *Loop) wakeUp() chan struct{} {
	l.wakeUpOnce.Do(func() { l.wakeUpCh = make(chan struct{}, 1) })
	return l.wakeUpCh
}

// Run implements Runnable. It stops when ctx is canceled or any runnable
// fails.
func (l *Loop) Run(ctx context.Context) error {
	runner := NewRunnerWith(ctx)
	runner.Go(l.runners...)
	ctx = runner.Context

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	wakeUp := l.wakeUp()
	for {
		select {
		case <-ctx.Done():
			if err := runner.Wait(); err != nil {
				return err
			}
			return ctx.Err()
		case t := <-ticker.C:
			l.RunOnce(ctx, t)
		case <-wakeUp:
			l.RunOnce(ctx, time.Now())
		}
	}
}

// RunOnce runs every controller once with the messages posted so far.
func (l *Loop) RunOnce(ctx context.Context, t time.Time) {
	l.lock.Lock()
	l.tick++
	iter := &iteration{Loop: l, ctx: ctx, time: t, tick: l.tick, messages: l.pending}
	l.pending = nil
	l.lock.Unlock()

	for stage, ctls := range l.stages {
		iter.stage = Stage(stage)
		for _, ctl := range ctls {
			if err := ctl.Control(iter); err != nil {
				glog.Errorf("%s controller error: %v", iter.stage, err)
			}
		}
	}
}

type iteration struct {
	*Loop
	ctx      context.Context
	time     time.Time
	tick     uint64
	stage    Stage
	messages []Message
}

func (t *iteration) Context() context.Context { return t.ctx }
func (t *iteration) Time() time.Time          { return t.time }
func (t *iteration) Tick() uint64             { return t.tick }
func (t *iteration) Stage() Stage             { return t.stage }

func (t *iteration) ProcessMessages(fn func(Message) bool) {
	remains := t.messages[:0]
	for _, msg := range t.messages {
		if !fn(msg) {
			remains = append(remains, msg)
		}
	}
	for i := len(remains); i < len(t.messages); i++ {
		t.messages[i] = nil
	}
	t.messages = remains
}
