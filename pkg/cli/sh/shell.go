// Package sh provides an interactive shell to decode, build and send frames.
package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/crsf"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Session *Session
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "crsf > "
)

var (
	evalOnly   bool
	outputJSON bool
	baud       int

	commands = []*ishell.Cmd{
		&DecodeCmd,
		&CRCCmd,
		&ChannelsCmd,
		&PingCmd,
		&ParamReadCmd,
		&ParamWriteCmd,
		&FeedCmd,
		&StatsCmd,
		&FlushCmd,
	}
)

// SetupFlags registers the shell flags.
func SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	fs.BoolVar(&outputJSON, "json", outputJSON, "Print frames in JSON.")
	fs.IntVar(&baud, "baud", baud, "Speed of serial sources, 0 for the default.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New() *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Shell:       ishell.New(),
		Session:     NewSession(),
	}
	s.Session.LinkOptions.Baud = baud
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// SessionFrom gets the Session from ishell context.
func SessionFrom(c *ishell.Context) *Session {
	return ShellFrom(c).Session
}

// Connect connects the session and prints inbound frames.
func (s *Shell) Connect(source string) error {
	err := s.Session.Connect(source, s)
	if err == nil {
		s.Shell.SetPrompt(source + " > ")
	}
	return err
}

// Disconnect disconnects the session.
func (s *Shell) Disconnect() {
	s.Session.Disconnect()
	s.Shell.SetPrompt(unconnectedPrompt)
}

// HandleFrame implements processor.FrameHandler, printing frames from the
// link.
func (s *Shell) HandleFrame(_ context.Context, frame crsf.Frame) {
	s.Shell.Println(s.FormatFrame(frame))
}

// FormatFrame renders a frame as text or JSON.
func (s *Shell) FormatFrame(frame crsf.Frame) string {
	if !s.OutputJSON {
		return frame.String()
	}
	out, err := json.Marshal(NewFrameInfo(frame))
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// FrameInfo is the JSON form of a frame.
type FrameInfo struct {
	Address   string `json:"address"`
	Type      string `json:"type"`
	Size      int    `json:"size"`
	Telemetry bool   `json:"telemetry,omitempty"`
	Hex       string `json:"hex"`
	Text      string `json:"text"`
}

// NewFrameInfo describes frame.
func NewFrameInfo(frame crsf.Frame) FrameInfo {
	info := FrameInfo{
		Size:      len(frame.Raw()),
		Telemetry: frame.IsTelemetry(),
		Hex:       crsf.FormatHex(frame.Raw()),
		Text:      frame.String(),
	}
	if addr, err := frame.Address(); err == nil {
		info.Address = addr.String()
	} else {
		info.Address = fmt.Sprintf("0x%02X", frame.Raw()[0])
	}
	if t, err := frame.Type(); err == nil {
		info.Type = t.String()
	}
	return info
}

// Run runs the shell. With args, they are processed as a single command.
func (s *Shell) Run(args ...string) {
	defer s.Session.Disconnect()
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Exit("command expected")
}

// MustBeConnected wraps command func requires a link.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if SessionFrom(c).Source() == "" {
			c.Err(ErrNotConnected)
			return
		}
		fn(c)
	}
}
