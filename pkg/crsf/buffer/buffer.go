// Package buffer reassembles frames from byte chunks of arbitrary size.
package buffer

import (
	"github.com/robotalks/crsf.go/pkg/crsf"
)

const (
	// Cap is the number of queued bytes which forces framing even when no
	// plausible length byte has been seen.
	Cap = 2*crsf.MaxFrameSize + 2
	// ResyncMarker is the head byte resynchronization searches for. It is
	// not the 0xC8 sync byte outbound frames start with, so frames
	// following a bad one in the same queue are dropped unless one of them
	// starts with ResyncMarker.
	ResyncMarker = byte(crsf.AddressRadioTransmitter)

	minSizeBytes = 3
)

// State is the state of a Buffer.
type State int

const (
	// StateEmpty means no bytes are queued.
	StateEmpty State = iota
	// StateAccumulating means bytes are queued but a frame is not complete
	// or its size is not known yet.
	StateAccumulating
	// StateReady means a frame can be extracted.
	StateReady
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Buffer queues bytes and extracts frames in arrival order.
// It must be owned by a single stream.
type Buffer struct {
	data  []byte
	size  int
	state State
}

// Add appends bytes to the queue.
func (b *Buffer) Add(data []byte) State {
	if len(data) > 0 {
		b.data = append(b.data, data...)
		b.analyze()
	}
	return b.state
}

// State returns the current state.
func (b *Buffer) State() State {
	return b.state
}

// Available tells if a frame can be extracted.
func (b *Buffer) Available() bool {
	return b.state == StateReady
}

// Len is the number of queued bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Size is the frame size derived from the length byte at the head, 0 if
// unknown.
func (b *Buffer) Size() int {
	return b.size
}

// Data returns a copy of the queued bytes.
func (b *Buffer) Data() []byte {
	return append([]byte(nil), b.data...)
}

// Frame extracts the bytes of the frame at the head. When the head does not
// hold a complete frame, it resynchronizes first; ok is false if still no
// frame can be extracted.
func (b *Buffer) Frame() (frame []byte, ok bool) {
	if !b.complete() {
		b.Resync()
		if !b.complete() {
			return nil, false
		}
	}
	frame = append([]byte(nil), b.data[:b.size]...)
	b.data, b.size = b.data[b.size:], 0
	b.analyze()
	return frame, true
}

// Resync drops bytes from the head until the head is ResyncMarker. If the
// marker is not found, the buffer is flushed and false is returned.
func (b *Buffer) Resync() bool {
	if n := resyncOffset(b.data); n > 0 {
		b.data, b.size = b.data[n:], 0
		b.analyze()
		return true
	}
	b.Flush()
	return false
}

// Flush clears all queued bytes.
func (b *Buffer) Flush() {
	b.data, b.size, b.state = nil, 0, StateEmpty
}

func (b *Buffer) complete() bool {
	return b.size > 0 && b.size <= crsf.MaxFrameSize && len(b.data) >= b.size
}

func (b *Buffer) analyze() {
	if b.size <= 0 || b.size > crsf.MaxFrameSize {
		b.size = frameSize(b.data)
	}
	b.state = deriveState(b.data, b.size)
}

// frameSize derives the frame size from the declared length, 0 if the
// length is not plausible yet.
func frameSize(data []byte) int {
	if len(data) < minSizeBytes {
		return 0
	}
	if l := int(data[1]); l > 0 && l <= crsf.MaxFrameSize {
		return l + 2
	}
	return 0
}

func deriveState(data []byte, size int) State {
	switch {
	case len(data) == 0:
		return StateEmpty
	case size > 0 && len(data) >= size, len(data) >= Cap:
		return StateReady
	}
	return StateAccumulating
}

// resyncOffset is the number of bytes to drop so that the head is
// ResyncMarker, at least one byte is always dropped. 0 means no marker.
func resyncOffset(data []byte) int {
	for n := 1; n < len(data); n++ {
		if data[n] == ResyncMarker {
			return n
		}
	}
	return 0
}
