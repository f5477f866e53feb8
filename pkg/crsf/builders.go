package crsf

import (
	"fmt"
	"io"

	"github.com/robotalks/crsf.go/pkg/crsf/channels"
)

// Encoder produces the bytes of an outbound frame.
type Encoder interface {
	Bytes() ([]byte, error)
}

// seal fills in the length byte and appends the checksum. buf holds
// [addr][len][type][payload...] without the crc.
func seal(buf []byte) []byte {
	buf[1] = byte(len(buf) - 1)
	buf = append(buf, 0)
	buf[len(buf)-1], _ = ChecksumPolynomial.Checksum(buf, 2, len(buf)-1)
	return buf
}

func writeEncoded(w io.Writer, e Encoder) (int64, error) {
	b, err := e.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

func checkAddresses(addrs ...Address) error {
	for _, a := range addrs {
		if _, err := LookupAddress(byte(a)); err != nil {
			return err
		}
	}
	return nil
}

func atLeast(v, lo int) byte {
	if v < lo {
		return byte(lo)
	}
	return byte(v)
}

// ChannelsConfig builds an RC channels frame from microsecond values.
type ChannelsConfig struct {
	Address      Address
	Microseconds channels.Values
}

// Bytes implements Encoder.
func (c ChannelsConfig) Bytes() ([]byte, error) {
	if err := checkAddresses(c.Address); err != nil {
		return nil, err
	}
	v, err := channels.FromMicroseconds(c.Microseconds)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, headerSize, ChannelsFrameSize)
	buf[0], buf[2] = byte(c.Address), byte(TypeRCChannelsPacked)
	return seal(append(buf, channels.Pack(v)...)), nil
}

// WriteTo writes the frame.
func (c ChannelsConfig) WriteTo(w io.Writer) (int64, error) { return writeEncoded(w, c) }

// DevicePingConfig builds a DevicePing frame.
type DevicePingConfig struct {
	Destination Address
	Source      Address
}

// Bytes implements Encoder.
func (c DevicePingConfig) Bytes() ([]byte, error) {
	if err := checkAddresses(c.Destination, c.Source); err != nil {
		return nil, err
	}
	return seal([]byte{SyncByte, 0, byte(TypeDevicePing), byte(c.Destination), byte(c.Source)}), nil
}

// WriteTo writes the frame.
func (c DevicePingConfig) WriteTo(w io.Writer) (int64, error) { return writeEncoded(w, c) }

// ParameterReadConfig builds a ParameterRead frame. The frame is addressed
// to the destination rather than the sync byte.
type ParameterReadConfig struct {
	Destination Address
	Source      Address
	FieldIndex  int
	ChunkIndex  int
}

// Bytes implements Encoder.
func (c ParameterReadConfig) Bytes() ([]byte, error) {
	if err := checkAddresses(c.Destination, c.Source); err != nil {
		return nil, err
	}
	return seal([]byte{
		byte(c.Destination), 0, byte(TypeParameterSettingsRead),
		byte(c.Destination), byte(c.Source),
		atLeast(c.FieldIndex, 1), atLeast(c.ChunkIndex, 0),
	}), nil
}

// WriteTo writes the frame.
func (c ParameterReadConfig) WriteTo(w io.Writer) (int64, error) { return writeEncoded(w, c) }

// ParameterWriteConfig builds a ParameterWrite frame.
type ParameterWriteConfig struct {
	Destination Address
	Source      Address
	FieldIndex  int
	Value       int
}

// Bytes implements Encoder.
func (c ParameterWriteConfig) Bytes() ([]byte, error) {
	if err := checkAddresses(c.Destination, c.Source); err != nil {
		return nil, err
	}
	if c.Value > 0xff {
		return nil, fmt.Errorf("parameter value %d: %w", c.Value, ErrConversionOutOfRange)
	}
	return seal([]byte{
		SyncByte, 0, byte(TypeParameterSettingsWrite),
		byte(c.Destination), byte(c.Source),
		atLeast(c.FieldIndex, 1), atLeast(c.Value, 0),
	}), nil
}

// WriteTo writes the frame.
func (c ParameterWriteConfig) WriteTo(w io.Writer) (int64, error) { return writeEncoded(w, c) }

// LinkStatisticsConfig builds a LinkStatistics frame. RSSI values are given
// in dBm, as reported by LinkStatistics.
type LinkStatisticsConfig struct {
	Address             Address
	UplinkRSSI1         int
	UplinkRSSI2         int
	UplinkLinkQuality   int
	UplinkSNR           int
	ActiveAntenna       int
	RFMode              int
	UplinkPower         int
	DownlinkRSSI        int
	DownlinkLinkQuality int
	DownlinkSNR         int
}

// Bytes implements Encoder.
func (c LinkStatisticsConfig) Bytes() ([]byte, error) {
	if err := checkAddresses(c.Address); err != nil {
		return nil, err
	}
	return seal([]byte{
		byte(c.Address), 0, byte(TypeLinkStatistics),
		byte(-c.UplinkRSSI1), byte(-c.UplinkRSSI2),
		byte(c.UplinkLinkQuality), byte(c.UplinkSNR),
		byte(c.ActiveAntenna), byte(c.RFMode), byte(c.UplinkPower),
		byte(-c.DownlinkRSSI), byte(c.DownlinkLinkQuality), byte(c.DownlinkSNR),
	}), nil
}

// WriteTo writes the frame.
func (c LinkStatisticsConfig) WriteTo(w io.Writer) (int64, error) { return writeEncoded(w, c) }
