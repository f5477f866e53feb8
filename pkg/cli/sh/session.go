package sh

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/channels"
	"github.com/robotalks/crsf.go/pkg/crsf/crc"
	"github.com/robotalks/crsf.go/pkg/crsf/link"
	"github.com/robotalks/crsf.go/pkg/crsf/processor"
)

var (
	// ErrNotConnected is returned when a command needs a link.
	ErrNotConnected = errors.New("not connected")
	// ErrUsage indicates wrong arguments.
	ErrUsage = errors.New("invalid arguments")
)

// Session is the state behind the shell commands: a processor for frames
// fed by hand, named channels, and optionally a connected link.
type Session struct {
	Processor *processor.Processor
	Axes      *channels.Axes

	// LinkOptions are used by Connect.
	LinkOptions link.Options

	lock   sync.Mutex
	link   *link.Link
	conn   link.Conn
	source string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSession creates a Session.
func NewSession() *Session {
	return &Session{Processor: processor.New(), Axes: channels.NewAxes()}
}

// ParseArgsHex parses hex bytes spread over arguments.
func ParseArgsHex(args []string) ([]byte, error) {
	data, err := crsf.ParseHex(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: bytes expected", ErrUsage)
	}
	return data, nil
}

// Decode decodes one complete frame.
func Decode(args []string) (crsf.Frame, error) {
	data, err := ParseArgsHex(args)
	if err != nil {
		return nil, err
	}
	return crsf.Decode(data)
}

// Checksum computes the CRC over all bytes. The first argument may select
// the polynomial: d5 (default) or ba.
func Checksum(args []string) (crc.Polynomial, byte, error) {
	poly := crc.D5
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "d5":
			args = args[1:]
		case "ba":
			poly, args = crc.BA, args[1:]
		}
	}
	data, err := ParseArgsHex(args)
	if err != nil {
		return poly, 0, err
	}
	return poly, poly.Sum(data), nil
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for n, arg := range args {
		v, err := strconv.ParseInt(arg, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
		}
		vals[n] = int(v)
	}
	return vals, nil
}

func parseAddresses(args []string) ([]crsf.Address, error) {
	addrs := make([]crsf.Address, len(args))
	for n, arg := range args {
		a, err := crsf.ParseAddress(arg)
		if err != nil {
			return nil, err
		}
		addrs[n] = a
	}
	return addrs, nil
}

// ChannelsFrame builds a channels frame from up to 16 values in
// microseconds, the rest are centered.
func ChannelsFrame(args []string) (crsf.ChannelsConfig, error) {
	conf := crsf.ChannelsConfig{Address: crsf.AddressFlightController}
	if len(args) > channels.Count {
		return conf, fmt.Errorf("%w: at most %d channels", ErrUsage, channels.Count)
	}
	vals, err := parseInts(args)
	if err != nil {
		return conf, err
	}
	for n := range conf.Microseconds {
		conf.Microseconds[n] = channels.FailsafeMicroseconds
		if n < len(vals) {
			conf.Microseconds[n] = vals[n]
		}
	}
	return conf, nil
}

// PingFrame parses "DST SRC".
func PingFrame(args []string) (crsf.DevicePingConfig, error) {
	if len(args) != 2 {
		return crsf.DevicePingConfig{}, fmt.Errorf("%w: DST SRC", ErrUsage)
	}
	addrs, err := parseAddresses(args)
	if err != nil {
		return crsf.DevicePingConfig{}, err
	}
	return crsf.DevicePingConfig{Destination: addrs[0], Source: addrs[1]}, nil
}

func parseParamArgs(args []string, usage string) ([]crsf.Address, []int, error) {
	if len(args) != 4 {
		return nil, nil, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	addrs, err := parseAddresses(args[:2])
	if err != nil {
		return nil, nil, err
	}
	vals, err := parseInts(args[2:])
	if err != nil {
		return nil, nil, err
	}
	return addrs, vals, nil
}

// ParamReadFrame parses "DST SRC FIELD CHUNK".
func ParamReadFrame(args []string) (crsf.ParameterReadConfig, error) {
	addrs, vals, err := parseParamArgs(args, "DST SRC FIELD CHUNK")
	if err != nil {
		return crsf.ParameterReadConfig{}, err
	}
	return crsf.ParameterReadConfig{
		Destination: addrs[0],
		Source:      addrs[1],
		FieldIndex:  vals[0],
		ChunkIndex:  vals[1],
	}, nil
}

// ParamWriteFrame parses "DST SRC FIELD VALUE".
func ParamWriteFrame(args []string) (crsf.ParameterWriteConfig, error) {
	addrs, vals, err := parseParamArgs(args, "DST SRC FIELD VALUE")
	if err != nil {
		return crsf.ParameterWriteConfig{}, err
	}
	return crsf.ParameterWriteConfig{
		Destination: addrs[0],
		Source:      addrs[1],
		FieldIndex:  vals[0],
		Value:       vals[1],
	}, nil
}

// Feed streams bytes through the session processor and returns the frames
// completed so far.
func (s *Session) Feed(ctx context.Context, data []byte) []crsf.Frame {
	var frames []crsf.Frame
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Processor.Process(ctx, data, processor.HandleFrameFunc(func(_ context.Context, f crsf.Frame) {
		frames = append(frames, f)
	}))
	return frames
}

// Flush drops the bytes queued by Feed.
func (s *Session) Flush() {
	s.lock.Lock()
	s.Processor.Flush()
	s.lock.Unlock()
}

// Stats reports the processor of the link when connected, the session
// processor otherwise.
func (s *Session) Stats() processor.Stats {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.link != nil {
		return s.link.Processor.Stats()
	}
	return s.Processor.Stats()
}

// ResetStats zeroes the counters reported by Stats.
func (s *Session) ResetStats() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.link != nil {
		s.link.Processor.ResetStats()
		return
	}
	s.Processor.ResetStats()
}

// Connect opens source and runs a link, decoded frames go to h. An existing
// link is closed first.
func (s *Session) Connect(source string, h processor.FrameHandler) error {
	conn, err := link.OpenWith(source, s.LinkOptions)
	if err != nil {
		return err
	}
	s.Attach(source, conn, h)
	return nil
}

// Attach runs a link over an already opened transport.
func (s *Session) Attach(source string, conn link.Conn, h processor.FrameHandler) {
	s.Disconnect()
	l := link.New(conn).WithHandler(h)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.lock.Lock()
	s.link, s.conn, s.source, s.cancel, s.done = l, conn, source, cancel, done
	s.lock.Unlock()
	go func() {
		defer close(done)
		l.Run(ctx)
	}()
}

// Disconnect stops the link, if any.
func (s *Session) Disconnect() {
	s.lock.Lock()
	conn, cancel, done := s.conn, s.cancel, s.done
	s.link, s.conn, s.source, s.cancel, s.done = nil, nil, "", nil, nil
	s.lock.Unlock()
	if conn == nil {
		return
	}
	cancel()
	conn.Close()
	<-done
}

// Source is the connected source, empty if not connected.
func (s *Session) Source() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.source
}

// Send writes a frame to the link.
func (s *Session) Send(e crsf.Encoder) error {
	s.lock.Lock()
	l := s.link
	s.lock.Unlock()
	if l == nil {
		return ErrNotConnected
	}
	return l.Send(e)
}
