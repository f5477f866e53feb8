package channels

import "errors"

var (
	// ErrOutOfRange indicates a channel value outside of its domain.
	ErrOutOfRange = errors.New("channel value out of range")
	// ErrShortPayload indicates there are not enough bytes to unpack all channels.
	ErrShortPayload = errors.New("packed channels too short")
)
