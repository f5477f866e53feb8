package crsf

import (
	"fmt"
	"strconv"
	"strings"
)

// FrameType is the type code at byte 2 of a frame.
type FrameType byte

// Known frame types.
const (
	TypeGPS                    FrameType = 0x02
	TypeCmdModelSelect         FrameType = 0x05
	TypeVario                  FrameType = 0x07
	TypeBatterySensor          FrameType = 0x08
	TypeBaroAltitude           FrameType = 0x09
	TypeHeartbeat              FrameType = 0x0B
	TypeOpenTxSync             FrameType = 0x10
	TypeLinkStatistics         FrameType = 0x14
	TypeRCChannelsPacked       FrameType = 0x16
	TypeSubsetRCChannelsPacked FrameType = 0x17
	TypeLinkRXID               FrameType = 0x1C
	TypeLinkTXID               FrameType = 0x1D
	TypeAttitude               FrameType = 0x1E
	TypeFlightMode             FrameType = 0x21
	TypeDevicePing             FrameType = 0x28
	TypeDeviceInfo             FrameType = 0x29
	TypeRequestSettings        FrameType = 0x2A
	TypeParameterSettingsEntry FrameType = 0x2B
	TypeParameterSettingsRead  FrameType = 0x2C
	TypeParameterSettingsWrite FrameType = 0x2D
	TypeELRSStatus             FrameType = 0x2E
	TypeCommand                FrameType = 0x32
	TypeRadioID                FrameType = 0x3A
	TypeKISSReq                FrameType = 0x78
	TypeKISSResp               FrameType = 0x79
	TypeMSPReq                 FrameType = 0x7A
	TypeMSPResp                FrameType = 0x7B
	TypeMSPWrite               FrameType = 0x7C
	TypeDisplayPortCmd         FrameType = 0x7D
	TypeArduPilotResp          FrameType = 0x80
	TypeUARTSync               FrameType = 0xC8
)

var frameTypeNames = map[FrameType]string{
	TypeGPS:                    "GPS",
	TypeCmdModelSelect:         "CMD_MODEL_SELECT",
	TypeVario:                  "VARIO",
	TypeBatterySensor:          "BATTERY_SENSOR",
	TypeBaroAltitude:           "BARO_ALTITUDE",
	TypeHeartbeat:              "HEARTBEAT",
	TypeOpenTxSync:             "OPEN_TX_SYNC",
	TypeLinkStatistics:         "LINK_STATISTICS",
	TypeRCChannelsPacked:       "RC_CHANNELS_PACKED",
	TypeSubsetRCChannelsPacked: "SUBSET_RC_CHANNELS_PACKED",
	TypeLinkRXID:               "LINK_RX_ID",
	TypeLinkTXID:               "LINK_TX_ID",
	TypeAttitude:               "ATTITUDE",
	TypeFlightMode:             "FLIGHT_MODE",
	TypeDevicePing:             "DEVICE_PING",
	TypeDeviceInfo:             "DEVICE_INFO",
	TypeRequestSettings:        "REQUEST_SETTINGS",
	TypeParameterSettingsEntry: "PARAMETER_SETTINGS_ENTRY",
	TypeParameterSettingsRead:  "PARAMETER_SETTINGS_READ",
	TypeParameterSettingsWrite: "PARAMETER_SETTINGS_WRITE",
	TypeELRSStatus:             "ELRS_STATUS",
	TypeCommand:                "COMMAND",
	TypeRadioID:                "RADIO_ID",
	TypeKISSReq:                "KISS_REQ",
	TypeKISSResp:               "KISS_RESP",
	TypeMSPReq:                 "MSP_REQ",
	TypeMSPResp:                "MSP_RESP",
	TypeMSPWrite:               "MSP_WRITE",
	TypeDisplayPortCmd:         "DISPLAYPORT_CMD",
	TypeArduPilotResp:          "ARDUPILOT_RESP",
	TypeUARTSync:               "UART_SYNC",
}

// LookupFrameType validates a type code.
func LookupFrameType(b byte) (FrameType, error) {
	if _, ok := frameTypeNames[FrameType(b)]; !ok {
		return 0, &CodeError{Kind: ErrUnknownFrameType, Code: b}
	}
	return FrameType(b), nil
}

// ParseFrameType accepts a table name (case-insensitive) or a number.
func ParseFrameType(s string) (FrameType, error) {
	name := strings.ToUpper(s)
	for t, n := range frameTypeNames {
		if n == name {
			return t, nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrameType, s)
	}
	return LookupFrameType(byte(n))
}

// IsKnown tells if the type is in the table.
func (t FrameType) IsKnown() bool {
	_, ok := frameTypeNames[t]
	return ok
}

// String implements fmt.Stringer.
func (t FrameType) String() string {
	if name, ok := frameTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(t))
}

// FieldType is the data type of a parameter settings entry.
type FieldType int

// Parameter field types, in wire index order.
const (
	FieldUint8 FieldType = iota
	FieldInt8
	FieldUint16
	FieldInt16
	FieldUint32
	FieldInt32
	FieldUint64
	FieldInt64
	FieldFloat
	FieldTextSelection
	FieldString
	FieldFolder
	FieldInfo
	FieldCommand
	FieldVTX
	FieldStatus
	FieldOutOfRange
)

// fieldTypeWireCount is the number of field types a device may send.
const fieldTypeWireCount = 15

var fieldTypeNames = [...]string{
	"UINT8", "INT8", "UINT16", "INT16", "UINT32", "INT32", "UINT64", "INT64",
	"FLOAT", "SELECT", "STRING", "FOLDER", "INFO", "COMMAND", "VTX",
	"suppress-critical-errors", "OUT-OF-RANGE",
}

// FieldTypeFromIndex maps the wire index, anything unknown is FieldOutOfRange.
func FieldTypeFromIndex(index int) FieldType {
	if index < 0 || index >= fieldTypeWireCount {
		return FieldOutOfRange
	}
	return FieldType(index)
}

// String implements fmt.Stringer.
func (t FieldType) String() string {
	if t < 0 || int(t) >= len(fieldTypeNames) {
		return fieldTypeNames[FieldOutOfRange]
	}
	return fieldTypeNames[t]
}

// Command is the command group of a COMMAND frame.
type Command byte

// Command groups.
const (
	CommandGeneral Command = 0x0A
	CommandRX      Command = 0x10
)

// Subcommand is the command in a group.
type Subcommand byte

// Subcommands.
const (
	SubcommandRXBind        Subcommand = 0x01
	SubcommandModelSelectID Subcommand = 0x05
	SubcommandSpeedProposal Subcommand = 0x70
	SubcommandSpeedResponse Subcommand = 0x71
)
