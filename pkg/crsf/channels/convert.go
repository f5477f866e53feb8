package channels

import (
	"fmt"
	"math"
)

// Constants of the two value domains.
const (
	MinValue = 0
	MaxValue = 1984
	// Failsafe is the center value in protocol units.
	Failsafe = 992

	// FailsafeMicroseconds is the center value in microseconds.
	FailsafeMicroseconds = 1500
	// MaxMicroseconds is the practical maximum used for "on" switches.
	MaxMicroseconds = 2000
	// MinMicroseconds is the practical minimum used for "off" switches.
	MinMicroseconds = 1000

	slope     = 0.624
	intercept = 880.672
)

// ProtocolToMicroseconds converts a value in protocol units to microseconds.
func ProtocolToMicroseconds(v int) (int, error) {
	if v == Failsafe {
		return FailsafeMicroseconds, nil
	}
	if v < MinValue || v > MaxValue {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, MinValue, MaxValue)
	}
	// explicit conversion keeps the product from being fused into an FMA.
	return int(math.Round(float64(slope*float64(v)) + intercept)), nil
}

// MicrosecondsToProtocol converts microseconds to protocol units.
// Halves round to even so MaxValue survives a round trip (2119us is
// exactly 1984.5 units).
func MicrosecondsToProtocol(us int) (int, error) {
	if us == FailsafeMicroseconds {
		return Failsafe, nil
	}
	v := int(math.RoundToEven((float64(us) - intercept) / slope))
	if v < MinValue || v > MaxValue {
		return 0, fmt.Errorf("%w: %dus converts to %d", ErrOutOfRange, us, v)
	}
	return v, nil
}

// ToMicroseconds converts all values to microseconds.
func (v Values) ToMicroseconds() (us Values, err error) {
	for n, val := range v {
		if us[n], err = ProtocolToMicroseconds(val); err != nil {
			return us, fmt.Errorf("channel %d: %w", n+1, err)
		}
	}
	return
}

// FromMicroseconds converts all microsecond values to protocol units.
func FromMicroseconds(us Values) (v Values, err error) {
	for n, val := range us {
		if v[n], err = MicrosecondsToProtocol(val); err != nil {
			return v, fmt.Errorf("channel %d: %w", n+1, err)
		}
	}
	return
}
