package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable is a background worker, e.g. a link or an input device.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Message is anything posted to the loop between two ticks, like an input
// event.
type Message interface{}

// Controller runs once per loop tick.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc is the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc ControlContext) error {
	return f(cc)
}

// ControlContext is what a controller sees during one tick.
type ControlContext interface {
	// Context is canceled when the loop stops.
	Context() context.Context
	// Time is when the tick started.
	Time() time.Time
	// Tick counts iterations, starting at 1.
	Tick() uint64
	// Stage is the stage of the running controller.
	Stage() Stage
	// ProcessMessages visits the messages posted before this tick in order.
	// A message is removed when fn returns true, otherwise the controllers
	// that follow see it too. Messages left over when the tick finishes are
	// dropped.
	ProcessMessages(fn func(Message) bool)

	LoopControl
}

// LoopControl is safe to use from any goroutine.
type LoopControl interface {
	// PostMessage queues msg for the next tick.
	PostMessage(msg Message)
	// TriggerNext starts the next tick without waiting for the interval.
	TriggerNext()
}

// Stage orders controllers inside a tick.
type Stage int

// Stages, in execution order.
const (
	StageSense Stage = iota
	StageControl
	StageActuate
	numStages
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageSense:
		return "sense"
	case StageControl:
		return "control"
	case StageActuate:
		return "actuate"
	}
	return "invalid"
}
