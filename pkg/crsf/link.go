package crsf

import "fmt"

// Fixed sizes of link frames.
const (
	LinkStatisticsFrameSize = 14
	LinkRXFrameSize         = 9
	LinkTXFrameSize         = 10
)

func checkSize(raw []byte, name string, size int) error {
	if len(raw) < size {
		return &LengthError{Frame: name, Want: size, Got: len(raw)}
	}
	return nil
}

// LinkStatistics reports the radio link quality in both directions.
// RSSI values are carried as magnitudes and reported in negative dBm.
type LinkStatistics struct {
	Envelope
}

// NewLinkStatistics creates a LinkStatistics frame.
func NewLinkStatistics(raw []byte) (*LinkStatistics, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	if err := checkSize(raw, "link statistics", LinkStatisticsFrameSize); err != nil {
		return nil, err
	}
	return &LinkStatistics{Envelope: env}, nil
}

// FrameSize implements Frame.
func (f *LinkStatistics) FrameSize() int { return LinkStatisticsFrameSize }

// UplinkRSSI1 in dBm.
func (f *LinkStatistics) UplinkRSSI1() int { return -f.i8(3) }

// UplinkRSSI2 in dBm.
func (f *LinkStatistics) UplinkRSSI2() int { return -f.i8(4) }

// UplinkLinkQuality in percent.
func (f *LinkStatistics) UplinkLinkQuality() int { return f.i8(5) }

// UplinkSNR in dB.
func (f *LinkStatistics) UplinkSNR() int { return f.i8(6) }

// ActiveAntenna is 0 for antenna 1, 1 for antenna 2.
func (f *LinkStatistics) ActiveAntenna() int { return f.i8(7) }

// RFMode is the packet rate index.
func (f *LinkStatistics) RFMode() int { return f.i8(8) }

// UplinkPower is the transmit power index.
func (f *LinkStatistics) UplinkPower() int { return f.i8(9) }

// DownlinkRSSI in dBm.
func (f *LinkStatistics) DownlinkRSSI() int { return -f.i8(10) }

// DownlinkLinkQuality in percent.
func (f *LinkStatistics) DownlinkLinkQuality() int { return f.i8(11) }

// DownlinkSNR in dB.
func (f *LinkStatistics) DownlinkSNR() int { return f.i8(12) }

// String implements Frame.
func (f *LinkStatistics) String() string {
	return fmt.Sprintf("LinkStatistics up(rssi=%d/%ddBm lq=%d%% snr=%ddB power=%d) ant=%d mode=%d down(rssi=%ddBm lq=%d%% snr=%ddB)",
		f.UplinkRSSI1(), f.UplinkRSSI2(), f.UplinkLinkQuality(), f.UplinkSNR(), f.UplinkPower(),
		f.ActiveAntenna(), f.RFMode(),
		f.DownlinkRSSI(), f.DownlinkLinkQuality(), f.DownlinkSNR())
}

// LinkRX is the receiver side link report.
type LinkRX struct {
	telemetryEnvelope
}

// NewLinkRX creates a LinkRX frame.
func NewLinkRX(raw []byte) (*LinkRX, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &LinkRX{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *LinkRX) FrameSize() int { return LinkRXFrameSize }

// UplinkRSSI in percent.
func (f *LinkRX) UplinkRSSI() int { return f.i8(4) }

// DownlinkPower is the power index.
func (f *LinkRX) DownlinkPower() int { return f.i8(7) }

// String implements Frame.
func (f *LinkRX) String() string {
	return fmt.Sprintf("LinkRX rssi=%d%% power=%d", f.UplinkRSSI(), f.DownlinkPower())
}

// LinkTX is the transmitter side link report.
type LinkTX struct {
	telemetryEnvelope
}

// NewLinkTX creates a LinkTX frame.
func NewLinkTX(raw []byte) (*LinkTX, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	if err := checkSize(raw, "link tx", LinkTXFrameSize); err != nil {
		return nil, err
	}
	return &LinkTX{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *LinkTX) FrameSize() int { return LinkTXFrameSize }

// DownlinkRSSI in percent.
func (f *LinkTX) DownlinkRSSI() int { return f.i8(4) }

// UplinkPower is the power index.
func (f *LinkTX) UplinkPower() int { return f.i8(7) }

// UplinkFPS is the uplink rate in frames per second divided by 10.
func (f *LinkTX) UplinkFPS() int { return f.i8(8) }

// String implements Frame.
func (f *LinkTX) String() string {
	return fmt.Sprintf("LinkTX rssi=%d%% power=%d fps=%d", f.DownlinkRSSI(), f.UplinkPower(), f.UplinkFPS()*10)
}
