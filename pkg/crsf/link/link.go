// Package link pumps chunks from a transport into a frame processor and
// sends outbound frames.
package link

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/processor"
)

// ErrReadOnly indicates the link has no sink for outbound frames.
var ErrReadOnly = errors.New("link is read only")

// Link connects a chunk source to a Processor.
type Link struct {
	Source    ChunkReader
	Sink      ChunkWriter
	Processor *processor.Processor
	Handler   processor.FrameHandler
	// Recorder receives every inbound chunk before processing.
	Recorder ChunkWriter

	sendLock sync.Mutex
}

// New creates a Link reading from src. If src is also a ChunkWriter it is
// used as the sink.
func New(src ChunkReader) *Link {
	l := &Link{Source: src, Processor: processor.New()}
	if w, ok := src.(ChunkWriter); ok {
		l.Sink = w
	}
	return l
}

// WithHandler sets the frame handler.
func (l *Link) WithHandler(h processor.FrameHandler) *Link {
	l.Handler = h
	return l
}

// WithRecorder sets the recorder.
func (l *Link) WithRecorder(w ChunkWriter) *Link {
	l.Recorder = w
	return l
}

// Send writes an outbound frame.
func (l *Link) Send(e crsf.Encoder) error {
	if l.Sink == nil {
		return ErrReadOnly
	}
	frame, err := e.Bytes()
	if err != nil {
		return err
	}
	l.sendLock.Lock()
	defer l.sendLock.Unlock()
	return l.Sink.WriteChunk(frame)
}

// Run implements Runnable. It returns nil when the source reaches EOF.
func (l *Link) Run(ctx context.Context) error {
	chunkCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go l.readLoop(subCtx, chunkCh, errCh)
	for {
		select {
		case chunk := <-chunkCh:
			l.process(ctx, chunk)
		case err := <-errCh:
			if errors.Is(err, io.EOF) {
				glog.Infof("source closed, %d frames, %d errors",
					l.Processor.Stats().Processed, l.Processor.Stats().Errors)
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Link) process(ctx context.Context, chunk []byte) {
	if r := l.Recorder; r != nil {
		if err := r.WriteChunk(chunk); err != nil {
			glog.Errorf("record chunk error: %v", err)
		}
	}
	l.Processor.Process(ctx, chunk, l.Handler)
}

func (l *Link) readLoop(ctx context.Context, chunkCh chan []byte, errCh chan error) {
	for {
		chunk, err := l.Source.ReadChunk()
		if err != nil {
			errCh <- err
			return
		}
		select {
		case chunkCh <- chunk:
		case <-ctx.Done():
			return
		}
	}
}
