package crsf

import (
	"fmt"

	"github.com/robotalks/crsf.go/pkg/crsf/channels"
)

// ChannelsFrameSize is the size of a packed channels frame.
const ChannelsFrameSize = headerSize + channels.PackedSize + 1

// Channels carries 16 packed RC channels.
type Channels struct {
	Envelope
}

// NewChannels creates a Channels frame.
func NewChannels(raw []byte) (*Channels, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Channels{Envelope: env}, nil
}

// Values unpacks the channels in protocol units.
func (f *Channels) Values() (channels.Values, error) {
	return channels.Unpack(f.raw[headerSize : len(f.raw)-1])
}

// Microseconds unpacks the channels in microseconds.
func (f *Channels) Microseconds() (channels.Values, error) {
	v, err := f.Values()
	if err != nil {
		return v, err
	}
	return v.ToMicroseconds()
}

// String implements Frame.
func (f *Channels) String() string {
	us, err := f.Microseconds()
	if err != nil {
		return fmt.Sprintf("Channels %s: %v", Address(f.raw[0]), err)
	}
	return fmt.Sprintf("Channels %s: %v", Address(f.raw[0]), us)
}

// Heartbeat is sent periodically by a device.
type Heartbeat struct {
	Envelope
}

// NewHeartbeat creates a Heartbeat frame.
func NewHeartbeat(raw []byte) (*Heartbeat, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Heartbeat{Envelope: env}, nil
}

// Origin is the address of the device sending the heartbeat.
func (f *Heartbeat) Origin() Address { return Address(f.u8(3)) }

// String implements Frame.
func (f *Heartbeat) String() string {
	return fmt.Sprintf("Heartbeat origin=%s", f.Origin())
}

// Raw holds any frame without a decoder. Its checksum is not verified, so
// opaque data flows through the same pipeline.
type Raw struct {
	Envelope
}

// NewRaw creates a Raw frame, only the header must be present.
func NewRaw(raw []byte) (*Raw, error) {
	env, err := newEnvelope(raw, false)
	if err != nil {
		return nil, err
	}
	return &Raw{Envelope: env}, nil
}

// String implements Frame.
func (f *Raw) String() string {
	return fmt.Sprintf("Raw %s [% X]", FrameType(f.raw[2]), f.raw)
}
