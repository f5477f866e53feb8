package link

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"go.bug.st/serial"

	"github.com/robotalks/crsf.go/pkg/crsf/capture"
	"github.com/robotalks/crsf.go/pkg/crsf/link/websocket"
)

// DefaultOrigin is the websocket origin used by Open.
const DefaultOrigin = "http://localhost/"

// DefaultBaud is the UART speed between receivers and flight controllers.
const DefaultBaud = 420000

// Options configures transports opened by OpenWith.
type Options struct {
	// Baud is the serial port speed, 0 means DefaultBaud.
	Baud int
}

func (o Options) baud() int {
	if o.Baud > 0 {
		return o.Baud
	}
	return DefaultBaud
}

// Conn is an opened transport.
type Conn interface {
	ChunkReader
	io.Closer
}

type streamConn struct {
	*Stream
	io.Closer
}

type captureConn struct {
	*capture.Reader
	io.Closer
}

var schemes = map[string]bool{
	"file":    true,
	"serial":  true,
	"tcp":     true,
	"ws":      true,
	"wss":     true,
	"capture": true,
}

// SplitSource separates the scheme from a source name. A name without a
// known scheme is a path: serial for tty devices, file otherwise.
func SplitSource(source string) (scheme, rest string) {
	if n := strings.Index(source, ":"); n > 0 && schemes[source[:n]] {
		return source[:n], source[n+1:]
	}
	if strings.HasPrefix(source, "/dev/tty") || strings.HasPrefix(source, "/dev/serial/") {
		return "serial", source
	}
	return "file", source
}

// Open opens a transport with default Options.
func Open(source string) (Conn, error) {
	return OpenWith(source, Options{})
}

// OpenWith opens a transport by name:
//
//	serial:/dev/ttyUSB0, /dev/ttyUSB0  UART at Options.Baud, 8N1
//	file:PATH, PATH                    device or file, read/write if possible
//	tcp://host:port                    TCP stream
//	ws://host/path, wss://host/path    websocket binary messages
//	capture:session.bin                recorded capture, read only
func OpenWith(source string, opts Options) (Conn, error) {
	scheme, rest := SplitSource(source)
	switch scheme {
	case "serial":
		port, err := serial.Open(rest, &serial.Mode{
			BaudRate: opts.baud(),
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		})
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", rest, err)
		}
		return &streamConn{Stream: NewStream(port), Closer: port}, nil
	case "file":
		f, err := os.OpenFile(rest, os.O_RDWR, 0)
		if err != nil {
			if f, err = os.Open(rest); err != nil {
				return nil, err
			}
		}
		return &streamConn{Stream: NewStream(f), Closer: f}, nil
	case "tcp":
		conn, err := net.Dial("tcp", strings.TrimPrefix(rest, "//"))
		if err != nil {
			return nil, err
		}
		return &streamConn{Stream: NewStream(conn), Closer: conn}, nil
	case "ws", "wss":
		ws, err := websocket.Dial(source, DefaultOrigin)
		if err != nil {
			return nil, err
		}
		return ws, nil
	case "capture":
		f, err := os.Open(rest)
		if err != nil {
			return nil, err
		}
		return &captureConn{Reader: capture.NewReader(f), Closer: f}, nil
	}
	return nil, fmt.Errorf("unsupported source %q", source)
}
