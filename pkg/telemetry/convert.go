package telemetry

import (
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/channels"
	"github.com/robotalks/crsf.go/pkg/telemetry/msgs"
)

// Topics of published messages.
const (
	TopicAttitude       = "telemetry/attitude"
	TopicBattery        = "telemetry/battery"
	TopicGPS            = "telemetry/gps"
	TopicVariometer     = "telemetry/vario"
	TopicBarometer      = "telemetry/baro"
	TopicFlightMode     = "telemetry/flight-mode"
	TopicLinkStatistics = "telemetry/link"
	TopicChannels       = "telemetry/channels"

	// TopicRCChannels receives channel values to transmit.
	TopicRCChannels = "rc/channels"
)

// FromFrame converts a frame into a message, nil if the frame is not
// published.
func FromFrame(frame crsf.Frame) proto.Message {
	switch f := frame.(type) {
	case *crsf.Attitude:
		return &msgs.Attitude{Pitch: f.Pitch(), Roll: f.Roll(), Yaw: f.Yaw()}
	case *crsf.Battery:
		return &msgs.Battery{
			Voltage:   f.Voltage(),
			Current:   f.Current(),
			Fuel:      int32(f.Fuel()),
			Remaining: int32(f.Remaining()),
		}
	case *crsf.GPS:
		return &msgs.GPS{
			Latitude:    f.Latitude(),
			Longitude:   f.Longitude(),
			GroundSpeed: f.GroundSpeed(),
			Heading:     f.Heading(),
			Altitude:    int32(f.Altitude()),
			Satellites:  int32(f.Satellites()),
		}
	case *crsf.Variometer:
		return &msgs.Variometer{VerticalSpeed: int32(f.VerticalSpeed())}
	case *crsf.Barometer:
		return &msgs.Barometer{Altitude: f.Altitude()}
	case *crsf.BarometerVariometer:
		return &msgs.Barometer{Altitude: f.Altitude(), VerticalSpeed: f.VerticalSpeed()}
	case *crsf.FlightMode:
		return &msgs.FlightMode{Mode: f.Mode()}
	case *crsf.LinkStatistics:
		return &msgs.LinkStatistics{
			UplinkRSSI1:         int32(f.UplinkRSSI1()),
			UplinkRSSI2:         int32(f.UplinkRSSI2()),
			UplinkLinkQuality:   int32(f.UplinkLinkQuality()),
			UplinkSNR:           int32(f.UplinkSNR()),
			ActiveAntenna:       int32(f.ActiveAntenna()),
			RFMode:              int32(f.RFMode()),
			UplinkPower:         int32(f.UplinkPower()),
			DownlinkRSSI:        int32(f.DownlinkRSSI()),
			DownlinkLinkQuality: int32(f.DownlinkLinkQuality()),
			DownlinkSNR:         int32(f.DownlinkSNR()),
		}
	case *crsf.Channels:
		us, err := f.Microseconds()
		if err != nil {
			return nil
		}
		msg := &msgs.Channels{Address: uint32(f.Raw()[0]), Microseconds: make([]int32, len(us))}
		for n, v := range us {
			msg.Microseconds[n] = int32(v)
		}
		return msg
	}
	return nil
}

// Topic names the topic for the frame, empty if the frame is not published.
func Topic(frame crsf.Frame) string {
	switch frame.(type) {
	case *crsf.Attitude:
		return TopicAttitude
	case *crsf.Battery:
		return TopicBattery
	case *crsf.GPS:
		return TopicGPS
	case *crsf.Variometer:
		return TopicVariometer
	case *crsf.Barometer, *crsf.BarometerVariometer:
		return TopicBarometer
	case *crsf.FlightMode:
		return TopicFlightMode
	case *crsf.LinkStatistics:
		return TopicLinkStatistics
	case *crsf.Channels:
		return TopicChannels
	}
	return ""
}

// ChannelsConfig converts a Channels message into a frame builder.
// Channels missing from the message are centered, a zero address means
// the flight controller.
func ChannelsConfig(msg *msgs.Channels) crsf.ChannelsConfig {
	conf := crsf.ChannelsConfig{Address: crsf.Address(msg.Address)}
	if msg.Address == 0 {
		conf.Address = crsf.AddressFlightController
	}
	for n := range conf.Microseconds {
		conf.Microseconds[n] = channels.FailsafeMicroseconds
		if n < len(msg.Microseconds) {
			conf.Microseconds[n] = int(msg.Microseconds[n])
		}
	}
	return conf
}
