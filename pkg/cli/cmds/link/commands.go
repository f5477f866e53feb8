// Package link adds shell commands to connect a frame source.
package link

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/crsf.go/pkg/cli/sh"
	"github.com/robotalks/crsf.go/pkg/crsf"
)

// RawFrame sends bytes as they are.
type RawFrame []byte

// Bytes implements crsf.Encoder.
func (f RawFrame) Bytes() ([]byte, error) {
	return f, nil
}

var (
	// ConnectCmd connects a source.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "SOURCE",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(sh.ErrUsage)
				return
			}
			if err := sh.ShellFrom(c).Connect(c.Args[0]); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd disconnects the source.
	DisconnectCmd = ishell.Cmd{
		Name: "disconnect",
		Func: func(c *ishell.Context) {
			sh.ShellFrom(c).Disconnect()
		},
	}

	// SendCmd sends raw bytes, the checksum is not verified.
	SendCmd = ishell.Cmd{
		Name: "send",
		Help: "HEX...",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			data, err := sh.ParseArgsHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			if err := sh.SessionFrom(c).Send(RawFrame(data)); err != nil {
				c.Err(err)
				return
			}
			c.Printf("sent %s\n", crsf.FormatHex(data))
		}),
	}
)

func init() {
	sh.AddCmds(
		&ConnectCmd,
		&DisconnectCmd,
		&SendCmd,
	)
}
