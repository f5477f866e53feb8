package sh

import (
	"context"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/crsf.go/pkg/crsf"
)

// PrintEncoded prints the bytes of e and sends them if connected.
func PrintEncoded(c *ishell.Context, e crsf.Encoder, err error) {
	if err != nil {
		c.Err(err)
		return
	}
	data, err := e.Bytes()
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(crsf.FormatHex(data))
	s := SessionFrom(c)
	if s.Source() == "" {
		return
	}
	if err := s.Send(e); err != nil {
		c.Err(err)
		return
	}
	c.Println("sent")
}

var (
	// DecodeCmd decodes a complete frame.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"d"},
		Help:    "HEX...",
		Func: func(c *ishell.Context) {
			frame, err := Decode(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(ShellFrom(c).FormatFrame(frame))
		},
	}

	// CRCCmd computes a checksum.
	CRCCmd = ishell.Cmd{
		Name: "crc",
		Help: "[d5|ba] HEX...",
		Func: func(c *ishell.Context) {
			poly, sum, err := Checksum(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%s 0x%02X\n", poly, sum)
		},
	}

	// ChannelsCmd builds a channels frame.
	ChannelsCmd = ishell.Cmd{
		Name:    "channels",
		Aliases: []string{"ch"},
		Help:    "US...",
		Func: func(c *ishell.Context) {
			conf, err := ChannelsFrame(c.Args)
			PrintEncoded(c, conf, err)
		},
	}

	// PingCmd builds a device ping.
	PingCmd = ishell.Cmd{
		Name: "ping",
		Help: "DST SRC",
		Func: func(c *ishell.Context) {
			conf, err := PingFrame(c.Args)
			PrintEncoded(c, conf, err)
		},
	}

	// ParamReadCmd builds a parameter read request.
	ParamReadCmd = ishell.Cmd{
		Name: "param-read",
		Help: "DST SRC FIELD CHUNK",
		Func: func(c *ishell.Context) {
			conf, err := ParamReadFrame(c.Args)
			PrintEncoded(c, conf, err)
		},
	}

	// ParamWriteCmd builds a parameter write request.
	ParamWriteCmd = ishell.Cmd{
		Name: "param-write",
		Help: "DST SRC FIELD VALUE",
		Func: func(c *ishell.Context) {
			conf, err := ParamWriteFrame(c.Args)
			PrintEncoded(c, conf, err)
		},
	}

	// FeedCmd streams bytes through the shell processor.
	FeedCmd = ishell.Cmd{
		Name:    "feed",
		Aliases: []string{"f"},
		Help:    "HEX...",
		Func: func(c *ishell.Context) {
			data, err := ParseArgsHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			s := ShellFrom(c)
			for _, frame := range s.Session.Feed(context.Background(), data) {
				c.Println(s.FormatFrame(frame))
			}
			if pending := s.Session.Processor.Pending(); pending > 0 {
				c.Printf("%d bytes pending\n", pending)
			}
		},
	}

	// StatsCmd prints the processor counters.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "[reset]",
		Func: func(c *ishell.Context) {
			s := SessionFrom(c)
			stats := s.Stats()
			c.Printf("processed=%d errors=%d rate=%d%%\n", stats.Processed, stats.Errors, stats.ErrorRate())
			if len(c.Args) > 0 && c.Args[0] == "reset" {
				s.ResetStats()
			}
		},
	}

	// FlushCmd drops pending bytes.
	FlushCmd = ishell.Cmd{
		Name: "flush",
		Func: func(c *ishell.Context) {
			SessionFrom(c).Flush()
		},
	}
)
