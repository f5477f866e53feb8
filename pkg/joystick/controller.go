// Package joystick turns a joystick into a radio transmitter: device
// events move named channels, and the channels are sent as frames on every
// loop tick.
package joystick

import (
	"context"
	"errors"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/channels"
	fx "github.com/robotalks/crsf.go/pkg/framework"
	"github.com/robotalks/crsf.go/pkg/joystick/device"
	"github.com/robotalks/crsf.go/pkg/joystick/msgs"
)

// ErrNotInLoop is returned by Run if the controller was not added to a loop.
var ErrNotInLoop = errors.New("controller not added to a loop")

// DefaultRetryInterval is the delay between two device detections.
const DefaultRetryInterval = time.Second

// Sender sends outbound frames, usually a *link.Link.
type Sender interface {
	Send(crsf.Encoder) error
}

// StatusReporter receives the status whenever it changes.
type StatusReporter interface {
	ReportStatus(*msgs.JoystickStatus)
}

// ReportStatusFunc is the func form of StatusReporter.
type ReportStatusFunc func(*msgs.JoystickStatus)

// ReportStatus implements StatusReporter.
func (f ReportStatusFunc) ReportStatus(s *msgs.JoystickStatus) {
	f(s)
}

// Controller reads a joystick in the background and transmits the
// channels once per loop tick. Without a device the channels stay in
// failsafe: centered, throttle low, disarmed.
type Controller struct {
	Sender      Sender
	Address     crsf.Address
	DeviceIndex int
	Verbose     bool
	Mapping     Mapping
	Reporter    StatusReporter
	// OpenDevice overrides device detection.
	OpenDevice    func() (device.Device, error)
	RetryInterval time.Duration

	loop          fx.LoopControl
	axes          *channels.Axes
	status        msgs.JoystickStatus
	statusChanged bool
	sendFailing   bool
}

// NewController creates a Controller.
func NewController(sender Sender) *Controller {
	c := &Controller{
		Sender:        sender,
		Address:       crsf.AddressFlightController,
		DeviceIndex:   -1,
		Mapping:       DefaultMapping(),
		RetryInterval: DefaultRetryInterval,
		axes:          channels.NewAxes(),
		statusChanged: true,
	}
	c.failsafe()
	return c
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	c.loop = loop
	loop.AddController(fx.StageControl, c)
	loop.AddController(fx.StageActuate, fx.ControlFunc(c.transmit))
}

// Axes returns the channels being transmitted.
func (c *Controller) Axes() *channels.Axes {
	return c.axes
}

type deviceMsg struct {
	device *msgs.JoystickDevice
}

type eventMsg struct {
	event device.Event
}

func (c *Controller) open() (device.Device, error) {
	if c.OpenDevice != nil {
		return c.OpenDevice()
	}
	if c.DeviceIndex >= 0 {
		return device.Open(c.DeviceIndex)
	}
	return device.DetectAndOpen(0)
}

// Run implements Runnable.
func (c *Controller) Run(ctx context.Context) error {
	if c.loop == nil {
		return ErrNotInLoop
	}
	var (
		dev     device.Device
		eventCh chan device.Event
		retry   = time.After(0)
	)
	defer func() {
		if dev != nil {
			dev.Close()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-retry:
			retry = nil
			js, err := c.open()
			switch {
			case err != nil:
				glog.Warningf("open joystick error: %v", err)
			case js == nil:
				glog.V(1).Info("no joystick detected")
			}
			if err != nil || js == nil {
				retry = time.After(c.RetryInterval)
				continue
			}
			glog.Infof("joystick %d %q opened, %d axes, %d buttons",
				js.Index(), js.Name(), js.AxisCount(), js.ButtonCount())
			dev, eventCh = js, make(chan device.Event, 1)
			go c.poll(ctx, dev, eventCh)
			c.loop.PostMessage(&deviceMsg{device: &msgs.JoystickDevice{
				Index:   uint32(js.Index()),
				Name:    js.Name(),
				Axes:    uint32(js.AxisCount()),
				Buttons: uint32(js.ButtonCount()),
			}})
		case ev, ok := <-eventCh:
			if ok {
				c.loop.PostMessage(&eventMsg{event: ev})
			} else {
				dev.Close()
				dev, eventCh = nil, nil
				retry = time.After(c.RetryInterval)
				c.loop.PostMessage(&deviceMsg{})
			}
			c.loop.TriggerNext()
		}
	}
}

func (c *Controller) poll(ctx context.Context, dev device.Device, ch chan<- device.Event) {
	defer close(ch)
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			glog.Warningf("joystick read error: %v", err)
			return
		}
		if c.Verbose {
			var prefix string
			if ev.IsInit() {
				prefix = "[INIT] "
			}
			switch e := ev.(type) {
			case device.AxisEvent:
				glog.Infof("%sAxis %d: %d", prefix, e.Index(), e.Value())
			case device.ButtonEvent:
				glog.Infof("%sButton %d: %v", prefix, e.Index(), e.Pressed())
			}
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.ProcessMessages(func(m fx.Message) bool {
		switch msg := m.(type) {
		case *eventMsg:
			if c.Mapping.Apply(c.axes, msg.event) {
				c.statusChanged = true
			}
		case *deviceMsg:
			c.status.Device = msg.device
			if msg.device == nil {
				glog.Warning("joystick lost, failsafe")
				c.failsafe()
			}
			c.statusChanged = true
		default:
			return false
		}
		return true
	})
	return nil
}

func (c *Controller) failsafe() {
	c.axes.Reset()
	c.axes.SetChannel(channels.Throttle, channels.MinMicroseconds)
	c.axes.SetArmed(false)
}

func (c *Controller) transmit(cc fx.ControlContext) error {
	err := c.Sender.Send(crsf.ChannelsConfig{
		Address:      c.Address,
		Microseconds: c.axes.Microseconds(),
	})
	// only the first failure of a streak is reported.
	failing := err != nil
	if failing == c.sendFailing {
		err = nil
	}
	c.sendFailing = failing
	if c.statusChanged {
		c.statusChanged = false
		if c.Reporter != nil {
			c.Reporter.ReportStatus(c.Status())
		}
	}
	return err
}

// Status returns a copy of the current status.
func (c *Controller) Status() *msgs.JoystickStatus {
	us := c.axes.Microseconds()
	status := &msgs.JoystickStatus{
		Device:       c.status.Device,
		Armed:        c.axes.Armed(),
		Microseconds: make([]int32, len(us)),
	}
	for n, v := range us {
		status.Microseconds[n] = int32(v)
	}
	return status
}
