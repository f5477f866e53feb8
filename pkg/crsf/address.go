package crsf

import (
	"fmt"
	"strconv"
	"strings"
)

// Address identifies a device on the bus.
type Address byte

// Known device addresses.
const (
	AddressBroadcast        Address = 0x00
	AddressUSB              Address = 0x10
	AddressBluetooth        Address = 0x12
	AddressTBSCorePNPPro    Address = 0x80
	AddressReserved1        Address = 0x8A
	AddressCurrentSensor    Address = 0xC0
	AddressGPS              Address = 0xC2
	AddressTBSBlackbox      Address = 0xC4
	AddressFlightController Address = 0xC8
	AddressReserved2        Address = 0xCA
	AddressRaceTag          Address = 0xCC
	AddressRadioTransmitter Address = 0xEA
	AddressReceiver         Address = 0xEC
	AddressTransmitter      Address = 0xEE
	AddressELRSLua          Address = 0xEF
)

var addressNames = map[Address]string{
	AddressBroadcast:        "BROADCAST",
	AddressUSB:              "USB",
	AddressBluetooth:        "BLUETOOTH",
	AddressTBSCorePNPPro:    "TBS_CORE_PNP_PRO",
	AddressReserved1:        "RESERVED_1",
	AddressCurrentSensor:    "CURRENT_SENSOR",
	AddressGPS:              "GPS",
	AddressTBSBlackbox:      "TBS_BLACKBOX",
	AddressFlightController: "FLIGHT_CONTROLLER",
	AddressReserved2:        "RESERVED_2",
	AddressRaceTag:          "RACE_TAG",
	AddressRadioTransmitter: "RADIO_TRANSMITTER",
	AddressReceiver:         "CRSF_RECEIVER",
	AddressTransmitter:      "CRSF_TRANSMITTER",
	AddressELRSLua:          "ELRS_LUA",
}

// LookupAddress validates an address byte.
func LookupAddress(b byte) (Address, error) {
	if _, ok := addressNames[Address(b)]; !ok {
		return 0, &CodeError{Kind: ErrUnknownAddress, Code: b}
	}
	return Address(b), nil
}

// ParseAddress accepts a table name (case-insensitive) or a number
// ("0xC8", "200").
func ParseAddress(s string) (Address, error) {
	name := strings.ToUpper(s)
	for a, n := range addressNames {
		if n == name {
			return a, nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAddress, s)
	}
	return LookupAddress(byte(n))
}

// IsKnown tells if the address is in the table.
func (a Address) IsKnown() bool {
	_, ok := addressNames[a]
	return ok
}

// String implements fmt.Stringer.
func (a Address) String() string {
	if name, ok := addressNames[a]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(a))
}
