package joystick

import (
	"fmt"
	"math"

	"github.com/robotalks/crsf.go/pkg/crsf/channels"
	"github.com/robotalks/crsf.go/pkg/joystick/device"
)

// AxisMapping drives a channel from a joystick axis.
type AxisMapping struct {
	Axis    int    `toml:"axis"`
	Channel string `toml:"channel"`
	Invert  bool   `toml:"invert"`
	// Deadzone is the fraction of the travel around center reported as
	// center.
	Deadzone float64 `toml:"deadzone"`
}

// ButtonMapping drives a switch channel from a button.
type ButtonMapping struct {
	Button  int    `toml:"button"`
	Channel string `toml:"channel"`
	// Toggle flips the switch on every press instead of following the
	// button.
	Toggle bool `toml:"toggle"`
}

// Mapping translates joystick events to channels.
type Mapping struct {
	Axes    []AxisMapping   `toml:"axes"`
	Buttons []ButtonMapping `toml:"buttons"`
}

// DefaultMapping is mode 2 on a dual stick gamepad: left stick yaw and
// throttle, right stick roll and pitch, first button toggles arm.
func DefaultMapping() Mapping {
	return Mapping{
		Axes: []AxisMapping{
			{Axis: 0, Channel: "yaw", Deadzone: 0.05},
			{Axis: 1, Channel: "throttle", Invert: true},
			{Axis: 3, Channel: "roll", Deadzone: 0.05},
			{Axis: 4, Channel: "pitch", Invert: true, Deadzone: 0.05},
		},
		Buttons: []ButtonMapping{
			{Button: 0, Channel: "arm", Toggle: true},
		},
	}
}

// Validate checks channel names.
func (m Mapping) Validate() error {
	for _, a := range m.Axes {
		if _, ok := channels.AxisByName(a.Channel); !ok {
			return fmt.Errorf("axis %d: unknown channel %q", a.Axis, a.Channel)
		}
	}
	for _, b := range m.Buttons {
		if _, ok := channels.AxisByName(b.Channel); !ok {
			return fmt.Errorf("button %d: unknown channel %q", b.Button, b.Channel)
		}
	}
	return nil
}

// Apply updates axes from ev and tells if any channel was touched.
func (m Mapping) Apply(axes *channels.Axes, ev device.Event) bool {
	var changed bool
	switch e := ev.(type) {
	case device.AxisEvent:
		for _, a := range m.Axes {
			ch, ok := channels.AxisByName(a.Channel)
			if !ok || a.Axis != e.Index() {
				continue
			}
			axes.SetNormalized(ch, a.position(e.Value()))
			changed = true
		}
	case device.ButtonEvent:
		for _, b := range m.Buttons {
			ch, ok := channels.AxisByName(b.Channel)
			if !ok || b.Button != e.Index() {
				continue
			}
			if b.Toggle {
				// init events report the state, not a press.
				if !e.Pressed() || e.IsInit() {
					continue
				}
				us, _ := axes.Channel(ch)
				axes.SetSwitch(ch, us <= channels.FailsafeMicroseconds)
			} else {
				axes.SetSwitch(ch, e.Pressed())
			}
			changed = true
		}
	}
	return changed
}

func (a AxisMapping) position(value int) float64 {
	pos := float64(value) / device.AxisMax
	if a.Invert {
		pos = -pos
	}
	if math.Abs(pos) < a.Deadzone {
		return 0
	}
	return pos
}
