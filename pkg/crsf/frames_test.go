package crsf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/crsf.go/pkg/crsf/channels"
)

func TestAttitude(t *testing.T) {
	f, err := NewAttitude(mustHex(t, "C8 08 1E 14 74 F5 C6 7A B8 D5"))
	require.NoError(t, err)
	assert.InDelta(t, 30.0, f.Pitch(), 0.01)
	assert.InDelta(t, -15.0, f.Roll(), 0.01)
	assert.InDelta(t, 180.0, f.Yaw(), 0.01)
	assert.True(t, f.IsTelemetry())
	assert.Equal(t, AttitudeFrameSize, f.FrameSize())

	f, err = NewAttitude(mustHex(t, "C8 08 1E 00 22 FF A9 3C 10 C4"))
	require.NoError(t, err)
	assert.InDelta(t, 34*attitudeRadiansPerUnit*57.29578, f.Pitch(), 1e-6)
	assert.InDelta(t, -87*attitudeRadiansPerUnit*57.29578, f.Roll(), 1e-6)
	assert.InDelta(t, 15376*attitudeRadiansPerUnit*57.29578, f.Yaw(), 1e-4)
}

func TestBattery(t *testing.T) {
	f, err := NewBattery(mustHex(t, "C8 0A 08 00 A8 00 7D 00 04 B0 4B CA"))
	require.NoError(t, err)
	assert.InDelta(t, 16.8, f.Voltage(), 1e-9)
	assert.InDelta(t, 12.5, f.Current(), 1e-9)
	assert.Equal(t, 1200, f.Fuel())
	assert.Equal(t, 75, f.Remaining())
	assert.Equal(t, BatteryFrameSize, f.FrameSize())

	f, err = NewBattery(mustHex(t, "C8 0A 08 00 00 00 02 00 00 23 00 7C"))
	require.NoError(t, err)
	assert.Zero(t, f.Voltage())
	assert.InDelta(t, 0.2, f.Current(), 1e-9)
	assert.Equal(t, 35, f.Fuel())
	assert.Zero(t, f.Remaining())
}

func TestGPS(t *testing.T) {
	f, err := NewGPS(mustHex(t, "C8 11 02 1F 2C 58 C0 FF 58 27 40 04 E2 23 28 04 4C 0C 71"))
	require.NoError(t, err)
	assert.InDelta(t, 52.3, f.Latitude(), 1e-9)
	assert.InDelta(t, -1.1, f.Longitude(), 1e-9)
	assert.InDelta(t, 12.5, f.GroundSpeed(), 1e-9)
	assert.InDelta(t, 90.0, f.Heading(), 1e-9)
	assert.Equal(t, 100, f.Altitude())
	assert.Equal(t, 12, f.Satellites())
	assert.Equal(t, GPSFrameSize, f.FrameSize())
}

func TestVariometer(t *testing.T) {
	f, err := NewVariometer(mustHex(t, "C8 04 07 FF 06 DA"))
	require.NoError(t, err)
	assert.Equal(t, -250, f.VerticalSpeed())

	f, err = NewVariometer(mustHex(t, "C8 04 07 00 00 23"))
	require.NoError(t, err)
	assert.Zero(t, f.VerticalSpeed())
	assert.Equal(t, VariometerFrameSize, f.FrameSize())
}

func TestBarometer(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		alt  float64
	}{
		{"meters", "C8 04 09 80 64 09", 100},
		{"decimeters", "C8 04 09 2B E2 3C", 123.4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewBarometer(mustHex(t, tc.raw))
			require.NoError(t, err)
			assert.InDelta(t, tc.alt, f.Altitude(), 1e-9)
		})
	}

	f, err := NewBarometerVariometer(mustHex(t, "C8 06 09 27 42 FF 6A 0A"))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, f.Altitude(), 1e-9)
	assert.InDelta(t, -1.5, f.VerticalSpeed(), 1e-9)
	assert.Equal(t, BarometerVariometerSize, f.FrameSize())
}

func TestFlightMode(t *testing.T) {
	raw := mustHex(t, "C8 07 21 57 41 49 54 00 AD")
	f, err := NewFlightMode(raw)
	require.NoError(t, err)
	assert.Equal(t, "WAIT", f.Mode())
	assert.Equal(t, len(raw), f.FrameSize())
	assert.True(t, f.IsTelemetry())
}

func TestLinkStatistics(t *testing.T) {
	f, err := NewLinkStatistics(mustHex(t, "C8 0C 14 46 50 64 05 01 04 02 3C 5A FD 3C"))
	require.NoError(t, err)
	assert.Equal(t, -70, f.UplinkRSSI1())
	assert.Equal(t, -80, f.UplinkRSSI2())
	assert.Equal(t, 100, f.UplinkLinkQuality())
	assert.Equal(t, 5, f.UplinkSNR())
	assert.Equal(t, 1, f.ActiveAntenna())
	assert.Equal(t, 4, f.RFMode())
	assert.Equal(t, 2, f.UplinkPower())
	assert.Equal(t, -60, f.DownlinkRSSI())
	assert.Equal(t, 90, f.DownlinkLinkQuality())
	assert.Equal(t, -3, f.DownlinkSNR())
	assert.False(t, f.IsTelemetry())

	_, err = NewLinkStatistics(mustHex(t, "C8 04 14 00 00 6A"))
	if assert.Error(t, err) {
		var lerr *LengthError
		require.True(t, errors.As(err, &lerr), "got %v", err)
		assert.Equal(t, LinkStatisticsFrameSize, lerr.Want)
	}
}

func TestLinkRXTX(t *testing.T) {
	rx, err := NewLinkRX(mustHex(t, "EA 07 1C 00 37 00 00 03 DE"))
	require.NoError(t, err)
	assert.Equal(t, 55, rx.UplinkRSSI())
	assert.Equal(t, 3, rx.DownlinkPower())
	assert.True(t, rx.IsTelemetry())

	tx, err := NewLinkTX(mustHex(t, "EA 08 1D 00 42 00 00 02 0F AD"))
	require.NoError(t, err)
	assert.Equal(t, 66, tx.DownlinkRSSI())
	assert.Equal(t, 2, tx.UplinkPower())
	assert.Equal(t, 15, tx.UplinkFPS())

	_, err = NewLinkTX(mustHex(t, "EA 07 1C 00 37 00 00 03 DE"))
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestChannels(t *testing.T) {
	f, err := NewChannels(mustHex(t,
		"C8 18 16 E0 03 1F F8 C0 07 3E F0 81 0F 7C E0 03 1F F8 C0 07 3E F0 81 0F 7C AD"))
	require.NoError(t, err)

	v, err := f.Values()
	require.NoError(t, err)
	us, err := f.Microseconds()
	require.NoError(t, err)
	for n := range v {
		assert.Equal(t, channels.Failsafe, v[n])
		assert.Equal(t, channels.FailsafeMicroseconds, us[n])
	}

	short, err := NewChannels(mustHex(t, "C8 04 16 01 02 CD"))
	require.NoError(t, err)
	_, err = short.Values()
	assert.True(t, errors.Is(err, channels.ErrShortPayload))
}

func TestHeartbeat(t *testing.T) {
	f, err := NewHeartbeat(mustHex(t, "C8 03 0B EC 44"))
	require.NoError(t, err)
	assert.Equal(t, AddressReceiver, f.Origin())
}

func TestDevicePing(t *testing.T) {
	f, err := NewDevicePing(mustHex(t, "C8 04 28 EE EA 97"))
	require.NoError(t, err)
	assert.Equal(t, DevicePingFrameSize, f.FrameSize())
	assert.Equal(t, "DevicePing RADIO_TRANSMITTER -> CRSF_TRANSMITTER", f.String())
}

func TestDeviceInfo(t *testing.T) {
	raw := mustHex(t, "EA 1B 29 EA EC 00 45 4C 52 53 20 52 58 00 45 4C 52 53 00 01 02 03 00 03 04 05 14 01 36 29")
	f, err := NewDeviceInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, "ELRS RX", f.Name())
	assert.Equal(t, []byte("ELRS"), f.Serial())
	assert.Equal(t, [3]byte{1, 2, 3}, f.HardwareVersion())
	assert.Equal(t, [3]byte{3, 4, 5}, f.SoftwareVersion())
	assert.Equal(t, 20, f.FieldCount())
	assert.Equal(t, 1, f.ParameterVersion())

	// no name and no fixed fields
	f, err = NewDeviceInfo(mustHex(t, "EA 04 29 EA EC B9"))
	require.NoError(t, err)
	assert.Empty(t, f.Name())
	assert.Equal(t, []byte{0, 0, 0, 0}, f.Serial())
	assert.Equal(t, [3]byte{}, f.SoftwareVersion())
	assert.Zero(t, f.FieldCount())
	assert.NotEmpty(t, f.String())
}

func TestOpenTxSync(t *testing.T) {
	f, err := NewOpenTxSync(mustHex(t, "EA 0C 3A EA EE 00 00 9C 40 FF FF FB 2E 43"))
	require.NoError(t, err)
	assert.EqualValues(t, 40000, f.Rate())
	assert.EqualValues(t, -1234, f.Offset())
	assert.InDelta(t, 250.0, f.RateHz(), 1e-9)
	assert.Equal(t, OpenTxSyncFrameSize, f.FrameSize())
}

func TestParameterSettingsEntry(t *testing.T) {
	raw := mustHex(t, "EA 14 2B EA EE 07 00 02 09 35 30 48 7A 3B 31 35 30 48 7A 00 01 47")
	f, err := NewParameterSettingsEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, raw[5:], f.Payload())
	assert.Equal(t, 7, f.FieldIndex())
	assert.Equal(t, 0, f.ChunksRemaining())
	assert.Equal(t, 2, f.Parent())
	assert.Equal(t, FieldTextSelection, f.FieldType())
	assert.Equal(t, append([]byte("50Hz;150Hz\x00"), 0x01), f.Value())
}

func TestParameterReadWrite(t *testing.T) {
	r, err := NewParameterRead(mustHex(t, "EE 06 2C EE EA 01 00 86"))
	require.NoError(t, err)
	assert.Equal(t, 1, r.FieldIndex())
	assert.Equal(t, 0, r.ChunkIndex())

	w, err := NewParameterWrite(mustHex(t, "C8 06 2D EE EA 03 05 0D"))
	require.NoError(t, err)
	assert.Equal(t, 3, w.FieldIndex())
	assert.Equal(t, 5, w.Value())
	assert.Equal(t, ParameterWriteFrameSize, w.FrameSize())
}

func TestRawSkipsChecksum(t *testing.T) {
	f, err := NewRaw(mustHex(t, "C8 05 7B 01 02 03 00"))
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), f.Checksum())

	f, err = NewRaw(mustHex(t, "C8 01 7B"))
	require.NoError(t, err)
	assert.Equal(t, 3, f.FrameSize())

	_, err = NewRaw(mustHex(t, "C8 01"))
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestFrameStrings(t *testing.T) {
	testCases := []struct {
		raw    string
		expect string
	}{
		{"C8 07 21 57 41 49 54 00 AD", `FlightMode "WAIT"`},
		{"C8 03 0B EC 44", "Heartbeat origin=CRSF_RECEIVER"},
		{"EE 06 2C EE EA 01 00 86", "ParameterRead RADIO_TRANSMITTER -> CRSF_TRANSMITTER field=1 chunk=0"},
		{"C8 04 09 80 64 09", "Barometer alt=100.0m"},
	}
	decoders := map[FrameType]func([]byte) (Frame, error){
		TypeFlightMode:            func(b []byte) (Frame, error) { return asFrame(NewFlightMode(b)) },
		TypeHeartbeat:             func(b []byte) (Frame, error) { return asFrame(NewHeartbeat(b)) },
		TypeParameterSettingsRead: func(b []byte) (Frame, error) { return asFrame(NewParameterRead(b)) },
		TypeBaroAltitude:          func(b []byte) (Frame, error) { return asFrame(NewBarometer(b)) },
	}
	for _, tc := range testCases {
		raw := mustHex(t, tc.raw)
		f, err := decoders[FrameType(raw[2])](raw)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, f.String())
	}
}
