package joystick

import (
	"flag"
	"time"

	"github.com/robotalks/crsf.go/pkg/crsf"
)

// Config defines the configurations for the controller.
type Config struct {
	DeviceIndex int    `toml:"device"`
	Verbose     bool   `toml:"verbose"`
	Address     string `toml:"address"`
	// Rate is the channels frame rate in Hz.
	Rate    int     `toml:"rate"`
	Mapping Mapping `toml:"mapping"`
}

// DefaultConfig returns the defaults: auto detection, flight controller
// address, 50 Hz and DefaultMapping.
func DefaultConfig() Config {
	return Config{
		DeviceIndex: -1,
		Address:     crsf.AddressFlightController.String(),
		Rate:        50,
		Mapping:     DefaultMapping(),
	}
}

// BindFlags registers command line flags writing into c.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DeviceIndex, "device", c.DeviceIndex, "Joystick device index, -1 for auto detection.")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "Print joystick events.")
	fs.StringVar(&c.Address, "address", c.Address, "Destination address of channels frames.")
	fs.IntVar(&c.Rate, "rate", c.Rate, "Channels frames per second.")
}

// Interval is the loop interval for Rate.
func (c *Config) Interval() time.Duration {
	if c.Rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Rate)
}

// NewController creates a controller sending to sender.
func (c *Config) NewController(sender Sender) (*Controller, error) {
	addr, err := crsf.ParseAddress(c.Address)
	if err != nil {
		return nil, err
	}
	if err := c.Mapping.Validate(); err != nil {
		return nil, err
	}
	ctl := NewController(sender)
	ctl.Address = addr
	ctl.DeviceIndex = c.DeviceIndex
	ctl.Verbose = c.Verbose
	ctl.Mapping = c.Mapping
	return ctl, nil
}
