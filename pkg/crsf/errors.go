package crsf

import (
	"errors"
	"fmt"

	"github.com/robotalks/crsf.go/pkg/crsf/channels"
	"github.com/robotalks/crsf.go/pkg/crsf/crc"
)

var (
	// ErrCorruptedFrame indicates a checksum mismatch.
	ErrCorruptedFrame = errors.New("corrupted frame")
	// ErrUnknownAddress indicates an address not in the address table.
	ErrUnknownAddress = errors.New("unknown address")
	// ErrUnknownFrameType indicates a type code not in the frame type table.
	ErrUnknownFrameType = errors.New("unknown frame type")
	// ErrInvalidLength indicates the frame is too short for its kind.
	ErrInvalidLength = errors.New("invalid length")

	// ErrConversionOutOfRange is returned when a channel value is outside
	// of its domain.
	ErrConversionOutOfRange = channels.ErrOutOfRange
	// ErrInvalidRange is returned when a checksum is requested over an
	// invalid byte range.
	ErrInvalidRange = crc.ErrInvalidRange
)

// CodeError reports a byte code missing from one of the tables.
type CodeError struct {
	// Kind is either ErrUnknownAddress or ErrUnknownFrameType.
	Kind error
	Code byte
}

// Error implements error.
func (e *CodeError) Error() string {
	return fmt.Sprintf("%v 0x%02X", e.Kind, e.Code)
}

// Unwrap returns Kind.
func (e *CodeError) Unwrap() error {
	return e.Kind
}

// LengthError reports a frame shorter than its kind requires.
type LengthError struct {
	Frame string
	Want  int
	Got   int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: %s needs %d bytes, got %d", ErrInvalidLength, e.Frame, e.Want, e.Got)
}

// Unwrap returns ErrInvalidLength.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// IsRecoverable tells if err is a structural decode error, which a stream
// consumer recovers from by resynchronizing.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrCorruptedFrame) ||
		errors.Is(err, ErrUnknownFrameType) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrUnknownAddress)
}
