package channels

import (
	"fmt"
	"math"
)

// Axis names a channel with a conventional meaning.
type Axis int

// Conventional AETR+arm channel assignment (1-based channel numbers).
const (
	Roll     Axis = 1
	Pitch    Axis = 2
	Throttle Axis = 3
	Yaw      Axis = 4
	Arm      Axis = 5
)

var axisNames = map[Axis]string{
	Roll:     "roll",
	Pitch:    "pitch",
	Throttle: "throttle",
	Yaw:      "yaw",
	Arm:      "arm",
}

// String implements fmt.Stringer.
func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ch%d", int(a))
}

// AxisByName finds the axis by its name ("roll", ..., or "chN").
func AxisByName(name string) (Axis, bool) {
	for a, n := range axisNames {
		if n == name {
			return a, true
		}
	}
	var n int
	if _, err := fmt.Sscanf(name, "ch%d", &n); err == nil && n >= 1 && n <= Count {
		return Axis(n), true
	}
	return 0, false
}

// Axes holds the 16 channels in microseconds, all centered by default.
// The zero value is not centered, use NewAxes.
type Axes struct {
	us Values
}

// NewAxes creates Axes with every channel at FailsafeMicroseconds.
func NewAxes() *Axes {
	a := &Axes{}
	a.Reset()
	return a
}

// Reset centers all channels.
func (a *Axes) Reset() {
	for n := range a.us {
		a.us[n] = FailsafeMicroseconds
	}
}

// Channel gets a channel (1-based) in microseconds.
func (a *Axes) Channel(ch Axis) (int, error) {
	if ch < 1 || int(ch) > Count {
		return 0, fmt.Errorf("%w: channel %d", ErrOutOfRange, ch)
	}
	return a.us[ch-1], nil
}

// SetChannel sets a channel (1-based) in microseconds.
func (a *Axes) SetChannel(ch Axis, us int) error {
	if ch < 1 || int(ch) > Count {
		return fmt.Errorf("%w: channel %d", ErrOutOfRange, ch)
	}
	a.us[ch-1] = us
	return nil
}

// SetNormalized sets a channel from a stick position in [-1, 1].
func (a *Axes) SetNormalized(ch Axis, pos float64) error {
	return a.SetChannel(ch, NormalizedToMicroseconds(pos))
}

// SetSwitch sets a channel to MaxMicroseconds when on, MinMicroseconds otherwise.
func (a *Axes) SetSwitch(ch Axis, on bool) error {
	return a.SetChannel(ch, SwitchToMicroseconds(on))
}

// Get returns a named axis. Named axes are always in range.
func (a *Axes) Get(ax Axis) int {
	us, _ := a.Channel(ax)
	return us
}

// Roll gets channel 1.
func (a *Axes) Roll() int { return a.us[Roll-1] }

// Pitch gets channel 2.
func (a *Axes) Pitch() int { return a.us[Pitch-1] }

// Throttle gets channel 3.
func (a *Axes) Throttle() int { return a.us[Throttle-1] }

// Yaw gets channel 4.
func (a *Axes) Yaw() int { return a.us[Yaw-1] }

// Armed reports whether channel 5 is above center.
func (a *Axes) Armed() bool { return a.us[Arm-1] > FailsafeMicroseconds }

// SetArmed sets the arm switch.
func (a *Axes) SetArmed(on bool) { a.us[Arm-1] = SwitchToMicroseconds(on) }

// Microseconds returns a copy of all channels.
func (a *Axes) Microseconds() Values {
	return a.us
}

// Protocol converts all channels to protocol units.
func (a *Axes) Protocol() (Values, error) {
	return FromMicroseconds(a.us)
}

// NormalizedToMicroseconds maps [-1, 1] onto [1000, 2000], clamping.
func NormalizedToMicroseconds(pos float64) int {
	pos = math.Max(-1, math.Min(1, pos))
	return int(FailsafeMicroseconds + pos*500)
}

// SwitchToMicroseconds maps a switch state to microseconds.
func SwitchToMicroseconds(on bool) int {
	if on {
		return MaxMicroseconds
	}
	return MinMicroseconds
}
