// Package rc adds shell commands to move named channels and transmit them.
package rc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/crsf.go/pkg/cli/sh"
	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/channels"
)

// Set sets a channel by name ("roll", "ch7", ...). The value is a switch
// state (on/off), a stick position with a decimal point in [-1, 1], or
// microseconds.
func Set(axes *channels.Axes, name, value string) error {
	ax, ok := channels.AxisByName(strings.ToLower(name))
	if !ok {
		return fmt.Errorf("%w: unknown channel %q", sh.ErrUsage, name)
	}
	switch strings.ToLower(value) {
	case "on":
		return axes.SetSwitch(ax, true)
	case "off":
		return axes.SetSwitch(ax, false)
	}
	if strings.Contains(value, ".") {
		pos, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", sh.ErrUsage, err)
		}
		return axes.SetNormalized(ax, pos)
	}
	us, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %v", sh.ErrUsage, err)
	}
	return axes.SetChannel(ax, us)
}

// Format lists all channels.
func Format(axes *channels.Axes) string {
	var sb strings.Builder
	for n, us := range axes.Microseconds() {
		if n > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s=%d", channels.Axis(n+1), us)
	}
	return sb.String()
}

// Frame is the channels frame for axes.
func Frame(axes *channels.Axes) crsf.ChannelsConfig {
	return crsf.ChannelsConfig{
		Address:      crsf.AddressFlightController,
		Microseconds: axes.Microseconds(),
	}
}

var (
	// SetCmd sets channels.
	SetCmd = ishell.Cmd{
		Name: "rc.set",
		Help: "CHANNEL VALUE [CHANNEL VALUE]...",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 || len(c.Args)%2 != 0 {
				c.Err(sh.ErrUsage)
				return
			}
			axes := sh.SessionFrom(c).Axes
			for n := 0; n < len(c.Args); n += 2 {
				if err := Set(axes, c.Args[n], c.Args[n+1]); err != nil {
					c.Err(err)
					return
				}
			}
			c.Println(Format(axes))
		},
	}

	// ShowCmd prints channels.
	ShowCmd = ishell.Cmd{
		Name: "rc.show",
		Func: func(c *ishell.Context) {
			c.Println(Format(sh.SessionFrom(c).Axes))
		},
	}

	// ResetCmd centers channels.
	ResetCmd = ishell.Cmd{
		Name: "rc.reset",
		Func: func(c *ishell.Context) {
			axes := sh.SessionFrom(c).Axes
			axes.Reset()
			c.Println(Format(axes))
		},
	}

	// SendCmd prints the channels frame and sends it if connected.
	SendCmd = ishell.Cmd{
		Name: "rc.send",
		Func: func(c *ishell.Context) {
			sh.PrintEncoded(c, Frame(sh.SessionFrom(c).Axes), nil)
		},
	}
)

func init() {
	sh.AddCmds(
		&SetCmd,
		&ShowCmd,
		&ResetCmd,
		&SendCmd,
	)
}
