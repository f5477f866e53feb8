// Package processor turns a stream of byte chunks into decoded frames.
package processor

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/buffer"
)

// FrameHandler is called for every decoded frame.
type FrameHandler interface {
	HandleFrame(context.Context, crsf.Frame)
}

// HandleFrameFunc is func type of FrameHandler.
type HandleFrameFunc func(context.Context, crsf.Frame)

// HandleFrame implements FrameHandler.
func (f HandleFrameFunc) HandleFrame(ctx context.Context, frame crsf.Frame) {
	f(ctx, frame)
}

// Handlers dispatches a frame to each handler in order.
type Handlers []FrameHandler

// HandleFrame implements FrameHandler.
func (h Handlers) HandleFrame(ctx context.Context, frame crsf.Frame) {
	for _, handler := range h {
		handler.HandleFrame(ctx, frame)
	}
}

// Observer is notified about the outcome of each decode attempt.
type Observer interface {
	FrameDecoded(crsf.Frame)
	DecodeFailed(raw []byte, err error)
}

// Stats is a snapshot of the counters.
type Stats struct {
	Processed int
	Errors    int
}

// ErrorRate is the percentage of errors relative to the processed frames.
func (s Stats) ErrorRate() int {
	if s.Processed == 0 {
		return 0
	}
	return s.Errors * 100 / s.Processed
}

// Processor feeds chunks into a frame buffer and decodes frames.
// Process, BuildFrame and Flush must be called from one goroutine, the
// counters can be read from anywhere.
type Processor struct {
	Observer Observer

	buf       buffer.Buffer
	processed atomic.Int64
	errors    atomic.Int64
}

// New creates a Processor.
func New() *Processor {
	return &Processor{}
}

// Process queues data and hands every complete frame to h, which may be nil.
func (p *Processor) Process(ctx context.Context, data []byte, h FrameHandler) {
	p.buf.Add(data)
	for p.buf.Available() {
		if frame := p.BuildFrame(); frame != nil && h != nil {
			h.HandleFrame(ctx, frame)
		}
	}
}

// BuildFrame extracts and decodes one frame. It returns nil if no frame
// could be built. Decode errors are counted and the buffer is
// resynchronized.
func (p *Processor) BuildFrame() crsf.Frame {
	raw, ok := p.buf.Frame()
	if !ok {
		return nil
	}
	frame, err := crsf.Decode(raw)
	if err != nil {
		if !crsf.IsRecoverable(err) {
			glog.Warningf("unexpected decode error: %v", err)
			return nil
		}
		p.errors.Add(1)
		if glog.V(2) {
			glog.Infof("DROP % X: %v", raw, err)
		}
		if o := p.Observer; o != nil {
			o.DecodeFailed(raw, err)
		}
		p.buf.Resync()
		return nil
	}
	p.processed.Add(1)
	if glog.V(3) {
		glog.Infof("FRAME %s", frame)
	}
	if o := p.Observer; o != nil {
		o.FrameDecoded(frame)
	}
	return frame
}

// Flush drops all queued bytes.
func (p *Processor) Flush() {
	p.buf.Flush()
}

// Pending is the number of queued bytes.
func (p *Processor) Pending() int {
	return p.buf.Len()
}

// ResetStats zeroes the counters.
func (p *Processor) ResetStats() {
	p.processed.Store(0)
	p.errors.Store(0)
}

// Stats returns the counters.
func (p *Processor) Stats() Stats {
	return Stats{
		Processed: int(p.processed.Load()),
		Errors:    int(p.errors.Load()),
	}
}

// ErrorRate is Stats().ErrorRate().
func (p *Processor) ErrorRate() int {
	return p.Stats().ErrorRate()
}
