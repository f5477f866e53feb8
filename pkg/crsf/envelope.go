package crsf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/robotalks/crsf.go/pkg/crsf/crc"
)

const (
	// SyncByte starts frames sent to a flight controller.
	SyncByte byte = 0xC8
	// MaxFrameSize is the maximum number of bytes of a frame.
	MaxFrameSize = 64
	// MinFrameSize is the smallest frame with a checksum:
	// address, length, type and crc.
	MinFrameSize = 4
	// MinExtendedFrameSize is the smallest extended frame.
	MinExtendedFrameSize = 6

	headerSize = 3

	// ChecksumPolynomial is used by every frame.
	ChecksumPolynomial = crc.D5
)

// Frame is a validated frame.
type Frame interface {
	// Raw returns the bytes of the frame. It must not be modified.
	Raw() []byte
	// Address looks up the first byte.
	Address() (Address, error)
	// Type looks up the type code.
	Type() (FrameType, error)
	// Payload returns the bytes after the header.
	Payload() []byte
	// Checksum is the last byte.
	Checksum() byte
	// FrameSize is the size expected for the kind of frame.
	FrameSize() int
	// IsTelemetry tells if the frame carries sensor data.
	IsTelemetry() bool
	// Bytes returns a copy of the frame, ready to send.
	Bytes() ([]byte, error)
	String() string
}

// Envelope is the common part of all frames.
type Envelope struct {
	raw []byte
}

func newEnvelope(raw []byte, verifyCRC bool) (Envelope, error) {
	minSize := MinFrameSize
	if !verifyCRC {
		minSize = headerSize
	}
	if len(raw) < minSize {
		return Envelope{}, &LengthError{Frame: "frame", Want: minSize, Got: len(raw)}
	}
	e := Envelope{raw: append([]byte(nil), raw...)}
	if verifyCRC {
		if sum := e.calcChecksum(); sum != e.Checksum() {
			return Envelope{}, fmt.Errorf("%w: crc 0x%02X, calculated 0x%02X",
				ErrCorruptedFrame, e.Checksum(), sum)
		}
	}
	return e, nil
}

// NewEnvelope validates the checksum and creates an Envelope.
func NewEnvelope(raw []byte) (Envelope, error) {
	return newEnvelope(raw, true)
}

func (e Envelope) calcChecksum() byte {
	sum, _ := ChecksumPolynomial.Checksum(e.raw, 2, len(e.raw)-1)
	return sum
}

// Raw implements Frame.
func (e Envelope) Raw() []byte {
	return e.raw
}

// Bytes implements Frame.
func (e Envelope) Bytes() ([]byte, error) {
	return append([]byte(nil), e.raw...), nil
}

// WriteTo writes the raw frame.
func (e Envelope) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.raw)
	return int64(n), err
}

// Address implements Frame.
func (e Envelope) Address() (Address, error) {
	return LookupAddress(e.raw[0])
}

// Type implements Frame.
func (e Envelope) Type() (FrameType, error) {
	return LookupFrameType(e.raw[2])
}

// DeclaredLength is the length byte.
func (e Envelope) DeclaredLength() int {
	return int(e.raw[1])
}

// Payload implements Frame. For the plain envelope it starts from the type
// byte.
func (e Envelope) Payload() []byte {
	return e.raw[2:]
}

// Checksum implements Frame.
func (e Envelope) Checksum() byte {
	return e.raw[len(e.raw)-1]
}

// FrameSize implements Frame.
func (e Envelope) FrameSize() int {
	return len(e.raw)
}

// IsTelemetry implements Frame.
func (e Envelope) IsTelemetry() bool {
	return false
}

// String implements Frame.
func (e Envelope) String() string {
	return fmt.Sprintf("%s % X", FrameType(e.raw[2]), e.raw)
}

// Accessors below read zero for bytes beyond the frame, so a truncated frame
// never panics.

func (e Envelope) u8(i int) byte {
	if i < 0 || i >= len(e.raw) {
		return 0
	}
	return e.raw[i]
}

func (e Envelope) i8(i int) int {
	return int(int8(e.u8(i)))
}

func (e Envelope) field(i, n int) []byte {
	if i < 0 || i+n > len(e.raw) {
		return make([]byte, n)
	}
	return e.raw[i : i+n]
}

func (e Envelope) u16(i int) uint16 {
	return binary.BigEndian.Uint16(e.field(i, 2))
}

func (e Envelope) u24(i int) uint32 {
	b := e.field(i, 3)
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func (e Envelope) u32(i int) uint32 {
	return binary.BigEndian.Uint32(e.field(i, 4))
}

// cstring reads a NUL terminated string from raw[i:], the crc is never part
// of it.
func (e Envelope) cstring(i int) string {
	end := len(e.raw) - 1
	if i >= end {
		return ""
	}
	s := e.raw[i:end]
	for n, b := range s {
		if b == 0 {
			return string(s[:n])
		}
	}
	return string(s)
}

// ExtendedEnvelope is the common part of frames addressed to a device.
type ExtendedEnvelope struct {
	Envelope
}

func newExtendedEnvelope(raw []byte, name string) (ExtendedEnvelope, error) {
	if len(raw) < MinExtendedFrameSize {
		return ExtendedEnvelope{}, &LengthError{Frame: name, Want: MinExtendedFrameSize, Got: len(raw)}
	}
	env, err := NewEnvelope(raw)
	return ExtendedEnvelope{Envelope: env}, err
}

// NewExtendedEnvelope validates the size and checksum and creates an
// ExtendedEnvelope.
func NewExtendedEnvelope(raw []byte) (ExtendedEnvelope, error) {
	return newExtendedEnvelope(raw, "extended frame")
}

// Destination looks up the destination address.
func (e ExtendedEnvelope) Destination() (Address, error) {
	return LookupAddress(e.raw[3])
}

// Source looks up the source address.
func (e ExtendedEnvelope) Source() (Address, error) {
	return LookupAddress(e.raw[4])
}

// ExtendedType looks up the type code following the addresses.
func (e ExtendedEnvelope) ExtendedType() (FrameType, error) {
	return LookupFrameType(e.raw[5])
}

// Payload implements Frame.
func (e ExtendedEnvelope) Payload() []byte {
	return e.raw[6:]
}

func (e ExtendedEnvelope) addresses() string {
	return fmt.Sprintf("%s -> %s", Address(e.raw[4]), Address(e.raw[3]))
}
