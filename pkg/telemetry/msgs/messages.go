// Package msgs defines the protobuf messages published for telemetry.
package msgs

import (
	"github.com/golang/protobuf/proto"
)

// Attitude is the vehicle orientation in degrees.
type Attitude struct {
	Pitch float64 `protobuf:"fixed64,1,opt,name=pitch,proto3" json:"pitch,omitempty"`
	Roll  float64 `protobuf:"fixed64,2,opt,name=roll,proto3" json:"roll,omitempty"`
	Yaw   float64 `protobuf:"fixed64,3,opt,name=yaw,proto3" json:"yaw,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Attitude) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Attitude) Reset() { *m = Attitude{} }

// String implements proto.Message.
func (m *Attitude) String() string { return proto.CompactTextString(m) }

// Battery is the battery sensor reading.
type Battery struct {
	Voltage   float64 `protobuf:"fixed64,1,opt,name=voltage,proto3" json:"voltage,omitempty"`
	Current   float64 `protobuf:"fixed64,2,opt,name=current,proto3" json:"current,omitempty"`
	Fuel      int32   `protobuf:"varint,3,opt,name=fuel,proto3" json:"fuel,omitempty"`
	Remaining int32   `protobuf:"varint,4,opt,name=remaining,proto3" json:"remaining,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Battery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Battery) Reset() { *m = Battery{} }

// String implements proto.Message.
func (m *Battery) String() string { return proto.CompactTextString(m) }

// GPS is a position fix.
type GPS struct {
	Latitude    float64 `protobuf:"fixed64,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude   float64 `protobuf:"fixed64,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
	GroundSpeed float64 `protobuf:"fixed64,3,opt,name=ground_speed,proto3" json:"ground_speed,omitempty"`
	Heading     float64 `protobuf:"fixed64,4,opt,name=heading,proto3" json:"heading,omitempty"`
	Altitude    int32   `protobuf:"varint,5,opt,name=altitude,proto3" json:"altitude,omitempty"`
	Satellites  int32   `protobuf:"varint,6,opt,name=satellites,proto3" json:"satellites,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *GPS) ProtoMessage() {}

// Reset implements proto.Message.
func (m *GPS) Reset() { *m = GPS{} }

// String implements proto.Message.
func (m *GPS) String() string { return proto.CompactTextString(m) }

// Variometer is the vertical speed in cm/s.
type Variometer struct {
	VerticalSpeed int32 `protobuf:"varint,1,opt,name=vertical_speed,proto3" json:"vertical_speed,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Variometer) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Variometer) Reset() { *m = Variometer{} }

// String implements proto.Message.
func (m *Variometer) String() string { return proto.CompactTextString(m) }

// Barometer is the barometric altitude in meters and vertical speed in m/s.
type Barometer struct {
	Altitude      float64 `protobuf:"fixed64,1,opt,name=altitude,proto3" json:"altitude,omitempty"`
	VerticalSpeed float64 `protobuf:"fixed64,2,opt,name=vertical_speed,proto3" json:"vertical_speed,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Barometer) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Barometer) Reset() { *m = Barometer{} }

// String implements proto.Message.
func (m *Barometer) String() string { return proto.CompactTextString(m) }

// FlightMode is the flight controller mode.
type FlightMode struct {
	Mode string `protobuf:"bytes,1,opt,name=mode,proto3" json:"mode,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *FlightMode) ProtoMessage() {}

// Reset implements proto.Message.
func (m *FlightMode) Reset() { *m = FlightMode{} }

// String implements proto.Message.
func (m *FlightMode) String() string { return proto.CompactTextString(m) }

// LinkStatistics is the radio link quality.
type LinkStatistics struct {
	UplinkRSSI1         int32 `protobuf:"varint,1,opt,name=uplink_rssi_1,proto3" json:"uplink_rssi_1,omitempty"`
	UplinkRSSI2         int32 `protobuf:"varint,2,opt,name=uplink_rssi_2,proto3" json:"uplink_rssi_2,omitempty"`
	UplinkLinkQuality   int32 `protobuf:"varint,3,opt,name=uplink_link_quality,proto3" json:"uplink_link_quality,omitempty"`
	UplinkSNR           int32 `protobuf:"varint,4,opt,name=uplink_snr,proto3" json:"uplink_snr,omitempty"`
	ActiveAntenna       int32 `protobuf:"varint,5,opt,name=active_antenna,proto3" json:"active_antenna,omitempty"`
	RFMode              int32 `protobuf:"varint,6,opt,name=rf_mode,proto3" json:"rf_mode,omitempty"`
	UplinkPower         int32 `protobuf:"varint,7,opt,name=uplink_power,proto3" json:"uplink_power,omitempty"`
	DownlinkRSSI        int32 `protobuf:"varint,8,opt,name=downlink_rssi,proto3" json:"downlink_rssi,omitempty"`
	DownlinkLinkQuality int32 `protobuf:"varint,9,opt,name=downlink_link_quality,proto3" json:"downlink_link_quality,omitempty"`
	DownlinkSNR         int32 `protobuf:"varint,10,opt,name=downlink_snr,proto3" json:"downlink_snr,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *LinkStatistics) ProtoMessage() {}

// Reset implements proto.Message.
func (m *LinkStatistics) Reset() { *m = LinkStatistics{} }

// String implements proto.Message.
func (m *LinkStatistics) String() string { return proto.CompactTextString(m) }

// Channels carries RC channel values in microseconds.
type Channels struct {
	Address      uint32  `protobuf:"varint,1,opt,name=address,proto3" json:"address,omitempty"`
	Microseconds []int32 `protobuf:"varint,2,rep,packed,name=microseconds,proto3" json:"microseconds,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Channels) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Channels) Reset() { *m = Channels{} }

// String implements proto.Message.
func (m *Channels) String() string { return proto.CompactTextString(m) }
