package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "crsf.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "serial:/dev/ttyUSB0", conf.Source)
	assert.Equal(t, 420000, conf.Baud)
	assert.Equal(t, 420000, conf.LinkOptions().Baud)
	assert.Equal(t, -1, conf.Joystick.DeviceIndex)
	assert.Equal(t, 50, conf.Joystick.Rate)
	assert.NotEmpty(t, conf.Joystick.Mapping.Axes)
	assert.True(t, strings.HasPrefix(conf.MQTT.ClientID, ClientIDPrefix))
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, `
source = "capture:flight.bin"
metrics_addr = ":9001"
baud = 115200

[mqtt]
url = "mqtt://file:1883"
client_id = "from-file"
retain = true

[joystick]
rate = 25
`)
	t.Setenv(EnvMetricsAddr, ":9002")
	t.Setenv(EnvMQTTURL, "mqtt://env:1883")
	t.Setenv(EnvBaud, "416666")

	conf, err := Load(newFlagSet(), []string{"-config", path, "-mqtt", "mqtt://flag:1883", "-device", "1"})
	require.NoError(t, err)
	assert.Equal(t, 416666, conf.Baud)
	assert.Equal(t, "capture:flight.bin", conf.Source)
	assert.Equal(t, ":9002", conf.MetricsAddr)
	assert.Equal(t, "mqtt://flag:1883", conf.MQTT.URL)
	assert.Equal(t, "from-file", conf.MQTT.ClientID)
	assert.True(t, conf.MQTT.Retain)
	assert.Equal(t, 25, conf.Joystick.Rate)
	assert.Equal(t, 1, conf.Joystick.DeviceIndex)
}

func TestLoadFileMapping(t *testing.T) {
	conf := Default()
	require.NoError(t, conf.LoadFile(writeFile(t, `
[joystick]
address = "0xEE"

[[joystick.mapping.axes]]
axis = 2
channel = "throttle"
invert = true
`)))
	assert.Equal(t, "0xEE", conf.Joystick.Address)
	require.Len(t, conf.Joystick.Mapping.Axes, 1)
	assert.Equal(t, 2, conf.Joystick.Mapping.Axes[0].Axis)
	assert.True(t, conf.Joystick.Mapping.Axes[0].Invert)
	assert.Zero(t, conf.Joystick.Mapping.Axes[0].Deadzone)
	assert.Empty(t, conf.Joystick.Mapping.Buttons)
}

func TestLoadFileErrors(t *testing.T) {
	conf := Default()
	err := conf.LoadFile(writeFile(t, "bogus = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")

	err = conf.LoadFile(writeFile(t, "source = \n"))
	assert.Error(t, err)

	err = conf.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSource:       "tcp://localhost:5760",
		EnvRecord:       "out.bin",
		EnvMQTTClientID: "ground",
		EnvBaud:         "115200",
	}
	lookup := func(name string) (string, bool) {
		val, ok := env[name]
		return val, ok
	}
	conf := Default()
	require.NoError(t, conf.ApplyEnv(lookup))
	assert.Equal(t, 115200, conf.Baud)
	assert.Equal(t, "tcp://localhost:5760", conf.Source)
	assert.Equal(t, "out.bin", conf.Record)
	assert.Equal(t, "ground", conf.MQTT.ClientID)
	assert.Empty(t, conf.MQTT.URL)

	env[EnvBaud] = "fast"
	assert.Error(t, conf.ApplyEnv(lookup))
}

func TestLoadBaudFlag(t *testing.T) {
	path := writeFile(t, "baud = 115200\n")
	conf, err := Load(newFlagSet(), []string{"-config", path, "-baud", "400000"})
	require.NoError(t, err)
	assert.Equal(t, 400000, conf.Baud)
}

func TestDefaultClientID(t *testing.T) {
	id := DefaultClientID()
	assert.True(t, strings.HasPrefix(id, ClientIDPrefix))
	assert.Equal(t, id, DefaultClientID())
}
