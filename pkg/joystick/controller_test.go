package joystick

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/channels"
	fx "github.com/robotalks/crsf.go/pkg/framework"
	"github.com/robotalks/crsf.go/pkg/joystick/device"
	"github.com/robotalks/crsf.go/pkg/joystick/msgs"
)

type fakeSender struct {
	lock sync.Mutex
	sent []crsf.ChannelsConfig
	err  error
}

func (s *fakeSender) Send(e crsf.Encoder) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, e.(crsf.ChannelsConfig))
	return nil
}

func (s *fakeSender) last() crsf.ChannelsConfig {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.sent[len(s.sent)-1]
}

type statusLog struct {
	lock     sync.Mutex
	statuses []*msgs.JoystickStatus
}

func (l *statusLog) ReportStatus(s *msgs.JoystickStatus) {
	l.lock.Lock()
	l.statuses = append(l.statuses, s)
	l.lock.Unlock()
}

func (l *statusLog) last() *msgs.JoystickStatus {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.statuses[len(l.statuses)-1]
}

func (l *statusLog) find(fn func(*msgs.JoystickStatus) bool) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	for _, s := range l.statuses {
		if fn(s) {
			return true
		}
	}
	return false
}

type fakeDevice struct {
	events []device.Event
	// EOF is reported once release is closed.
	release chan struct{}
}

func (d *fakeDevice) Close() error     { return nil }
func (d *fakeDevice) Index() int       { return 0 }
func (d *fakeDevice) Name() string     { return "pad" }
func (d *fakeDevice) AxisCount() int   { return 6 }
func (d *fakeDevice) ButtonCount() int { return 11 }

func (d *fakeDevice) ReadEvent() (device.Event, error) {
	if len(d.events) == 0 {
		if d.release != nil {
			<-d.release
		}
		return nil, io.EOF
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, nil
}

func TestControllerFailsafeWithoutDevice(t *testing.T) {
	sender, reporter := &fakeSender{}, &statusLog{}
	c := NewController(sender)
	c.Reporter = reporter
	loop := fx.NewLoop(time.Hour).Add(c)

	loop.RunOnce(context.Background(), time.Now())
	require.Len(t, sender.sent, 1)
	sent := sender.last()
	assert.Equal(t, crsf.AddressFlightController, sent.Address)
	assert.Equal(t, channels.MinMicroseconds, sent.Microseconds[channels.Throttle-1])
	assert.Equal(t, channels.MinMicroseconds, sent.Microseconds[channels.Arm-1])
	assert.Equal(t, channels.FailsafeMicroseconds, sent.Microseconds[channels.Roll-1])

	require.Len(t, reporter.statuses, 1)
	assert.Nil(t, reporter.statuses[0].Device)
	assert.False(t, reporter.statuses[0].Armed)

	// unchanged status is not reported again.
	loop.RunOnce(context.Background(), time.Now())
	assert.Len(t, sender.sent, 2)
	assert.Len(t, reporter.statuses, 1)
}

func TestControllerEvents(t *testing.T) {
	sender, reporter := &fakeSender{}, &statusLog{}
	c := NewController(sender)
	c.Reporter = reporter
	loop := fx.NewLoop(time.Hour).Add(c)

	loop.PostMessage(&deviceMsg{device: &msgs.JoystickDevice{Name: "pad"}})
	loop.PostMessage(&eventMsg{event: device.NewButtonEvent(0, true)})
	loop.PostMessage(&eventMsg{event: device.NewAxisEvent(1, -device.AxisMax)})
	loop.PostMessage("unrelated")
	loop.RunOnce(context.Background(), time.Now())

	sent := sender.last()
	assert.Equal(t, channels.MaxMicroseconds, sent.Microseconds[channels.Throttle-1])
	assert.Equal(t, channels.MaxMicroseconds, sent.Microseconds[channels.Arm-1])
	status := reporter.statuses[len(reporter.statuses)-1]
	assert.True(t, status.Armed)
	require.NotNil(t, status.Device)
	assert.Equal(t, "pad", status.Device.Name)
	assert.Equal(t, int32(2000), status.Microseconds[channels.Throttle-1])

	loop.PostMessage(&deviceMsg{})
	loop.RunOnce(context.Background(), time.Now())
	sent = sender.last()
	assert.Equal(t, channels.MinMicroseconds, sent.Microseconds[channels.Throttle-1])
	assert.False(t, c.Axes().Armed())
	assert.Nil(t, c.Status().Device)
}

func TestControllerSendFailure(t *testing.T) {
	errLink := errors.New("link down")
	sender := &fakeSender{err: errLink}
	c := NewController(sender)

	// only the first failure of a streak is returned.
	assert.ErrorIs(t, c.transmit(nil), errLink)
	assert.NoError(t, c.transmit(nil))
	sender.err = nil
	assert.NoError(t, c.transmit(nil))
	sender.err = errLink
	assert.ErrorIs(t, c.transmit(nil), errLink)
}

func TestControllerRun(t *testing.T) {
	sender, reporter := &fakeSender{}, &statusLog{}
	c := NewController(sender)
	c.Reporter = reporter
	c.RetryInterval = 10 * time.Millisecond
	var opened bool
	release := make(chan struct{})
	c.OpenDevice = func() (device.Device, error) {
		if opened {
			return nil, nil
		}
		opened = true
		return &fakeDevice{events: []device.Event{
			device.NewButtonEvent(0, true),
			device.NewAxisEvent(3, device.AxisMax),
		}, release: release}, nil
	}
	loop := fx.NewLoop(5 * time.Millisecond).Add(c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool {
		return reporter.find(func(s *msgs.JoystickStatus) bool {
			return s.Device != nil && s.Armed && s.Microseconds[channels.Roll-1] == 2000
		})
	}, 5*time.Second, 5*time.Millisecond)

	close(release)
	require.Eventually(t, func() bool {
		status := reporter.last()
		return status.Device == nil && !status.Armed &&
			status.Microseconds[channels.Roll-1] == channels.FailsafeMicroseconds
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestControllerRunOutsideLoop(t *testing.T) {
	c := NewController(&fakeSender{})
	assert.ErrorIs(t, c.Run(context.Background()), ErrNotInLoop)
}

func TestConfigNewController(t *testing.T) {
	conf := DefaultConfig()
	conf.Address = "0xEE"
	conf.DeviceIndex = 2
	c, err := conf.NewController(&fakeSender{})
	require.NoError(t, err)
	assert.Equal(t, crsf.AddressTransmitter, c.Address)
	assert.Equal(t, 2, c.DeviceIndex)
	assert.Equal(t, 20*time.Millisecond, conf.Interval())

	conf.Address = "nowhere"
	_, err = conf.NewController(&fakeSender{})
	assert.ErrorIs(t, err, crsf.ErrUnknownAddress)

	conf = DefaultConfig()
	conf.Mapping.Axes = append(conf.Mapping.Axes, AxisMapping{Axis: 5, Channel: "flaps"})
	_, err = conf.NewController(&fakeSender{})
	assert.Error(t, err)
}
