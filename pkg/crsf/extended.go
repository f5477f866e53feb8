package crsf

import (
	"fmt"
)

// Fixed sizes of extended frames.
const (
	DevicePingFrameSize     = 6
	OpenTxSyncFrameSize     = 8
	ParameterReadFrameSize  = 8
	ParameterWriteFrameSize = 8
)

// DevicePing asks devices on the bus to report their DeviceInfo.
type DevicePing struct {
	ExtendedEnvelope
}

// NewDevicePing creates a DevicePing frame.
func NewDevicePing(raw []byte) (*DevicePing, error) {
	env, err := newExtendedEnvelope(raw, "device ping")
	if err != nil {
		return nil, err
	}
	return &DevicePing{ExtendedEnvelope: env}, nil
}

// FrameSize implements Frame.
func (f *DevicePing) FrameSize() int { return DevicePingFrameSize }

// String implements Frame.
func (f *DevicePing) String() string {
	return "DevicePing " + f.addresses()
}

// DeviceInfo is the reply to a DevicePing. The name starts at the extended
// payload and the fixed fields follow its NUL. A frame too short for them
// still decodes, the accessors read zeros.
type DeviceInfo struct {
	ExtendedEnvelope
	name   string
	offset int
}

// NewDeviceInfo creates a DeviceInfo frame.
func NewDeviceInfo(raw []byte) (*DeviceInfo, error) {
	env, err := newExtendedEnvelope(raw, "device info")
	if err != nil {
		return nil, err
	}
	f := &DeviceInfo{ExtendedEnvelope: env}
	f.name = f.cstring(6)
	f.offset = 6 + len(f.name) + 1
	return f, nil
}

// Name is the device name.
func (f *DeviceInfo) Name() string { return f.name }

// Serial is the 4 bytes serial number.
func (f *DeviceInfo) Serial() []byte { return f.field(f.offset, 4) }

// HardwareVersion is major, minor and revision.
func (f *DeviceInfo) HardwareVersion() [3]byte {
	var v [3]byte
	copy(v[:], f.field(f.offset+5, 3))
	return v
}

// SoftwareVersion is major, minor and revision.
func (f *DeviceInfo) SoftwareVersion() [3]byte {
	var v [3]byte
	copy(v[:], f.field(f.offset+9, 3))
	return v
}

// FieldCount is the number of parameters the device exposes.
func (f *DeviceInfo) FieldCount() int { return int(f.u8(f.offset + 12)) }

// ParameterVersion is the version of the parameter protocol.
func (f *DeviceInfo) ParameterVersion() int { return int(f.u8(f.offset + 13)) }

// String implements Frame.
func (f *DeviceInfo) String() string {
	hw, sw := f.HardwareVersion(), f.SoftwareVersion()
	return fmt.Sprintf("DeviceInfo %s %q serial=%X hw=%d.%d.%d sw=%d.%d.%d fields=%d",
		f.addresses(), f.name, f.Serial(),
		hw[0], hw[1], hw[2], sw[0], sw[1], sw[2], f.FieldCount())
}

// OpenTxSync carries the radio timing used to align the RC packet rate.
type OpenTxSync struct {
	ExtendedEnvelope
}

// NewOpenTxSync creates an OpenTxSync frame.
func NewOpenTxSync(raw []byte) (*OpenTxSync, error) {
	env, err := newExtendedEnvelope(raw, "opentx sync")
	if err != nil {
		return nil, err
	}
	if err := checkSize(raw, "opentx sync", OpenTxSyncFrameSize); err != nil {
		return nil, err
	}
	return &OpenTxSync{ExtendedEnvelope: env}, nil
}

// FrameSize implements Frame.
func (f *OpenTxSync) FrameSize() int { return OpenTxSyncFrameSize }

// Rate is the packet interval in 0.1µs.
func (f *OpenTxSync) Rate() int32 { return int32(f.u32(6)) }

// Offset is the phase offset in 0.1µs.
func (f *OpenTxSync) Offset() int32 { return int32(f.u32(10)) }

// RateHz converts Rate to Hz, 0 if unknown.
func (f *OpenTxSync) RateHz() float64 {
	if r := f.Rate(); r != 0 {
		return 1 / (float64(r) / 1e7)
	}
	return 0
}

// String implements Frame.
func (f *OpenTxSync) String() string {
	return fmt.Sprintf("OpenTxSync %s rate=%.1fHz offset=%d", f.addresses(), f.RateHz(), f.Offset())
}

// ParameterSettingsEntry is one chunk of a parameter description.
type ParameterSettingsEntry struct {
	ExtendedEnvelope
}

// NewParameterSettingsEntry creates a ParameterSettingsEntry frame.
func NewParameterSettingsEntry(raw []byte) (*ParameterSettingsEntry, error) {
	env, err := newExtendedEnvelope(raw, "parameter settings entry")
	if err != nil {
		return nil, err
	}
	return &ParameterSettingsEntry{ExtendedEnvelope: env}, nil
}

// Payload implements Frame. The entry body starts right after the addresses.
func (f *ParameterSettingsEntry) Payload() []byte { return f.raw[5:] }

// FieldIndex is the parameter number.
func (f *ParameterSettingsEntry) FieldIndex() int { return int(f.u8(5)) }

// ChunksRemaining counts the chunks still to be read.
func (f *ParameterSettingsEntry) ChunksRemaining() int { return int(f.u8(6)) }

// Parent is the index of the folder holding the parameter.
func (f *ParameterSettingsEntry) Parent() int { return int(f.u8(7)) }

// FieldType is the type of the parameter value.
func (f *ParameterSettingsEntry) FieldType() FieldType { return FieldTypeFromIndex(int(f.u8(8))) }

// Value is the remaining part of the chunk.
func (f *ParameterSettingsEntry) Value() []byte {
	if len(f.raw) < 10 {
		return nil
	}
	return f.raw[9 : len(f.raw)-1]
}

// String implements Frame.
func (f *ParameterSettingsEntry) String() string {
	return fmt.Sprintf("ParameterSettingsEntry %s field=%d parent=%d type=%s remaining=%d value=[% X]",
		f.addresses(), f.FieldIndex(), f.Parent(), f.FieldType(), f.ChunksRemaining(), f.Value())
}

// ParameterRead requests a chunk of a parameter description.
type ParameterRead struct {
	ExtendedEnvelope
}

// NewParameterRead creates a ParameterRead frame.
func NewParameterRead(raw []byte) (*ParameterRead, error) {
	env, err := newExtendedEnvelope(raw, "parameter read")
	if err != nil {
		return nil, err
	}
	return &ParameterRead{ExtendedEnvelope: env}, nil
}

// FrameSize implements Frame.
func (f *ParameterRead) FrameSize() int { return ParameterReadFrameSize }

// FieldIndex is the parameter number.
func (f *ParameterRead) FieldIndex() int { return int(f.u8(5)) }

// ChunkIndex is the requested chunk.
func (f *ParameterRead) ChunkIndex() int { return int(f.u8(6)) }

// String implements Frame.
func (f *ParameterRead) String() string {
	return fmt.Sprintf("ParameterRead %s field=%d chunk=%d", f.addresses(), f.FieldIndex(), f.ChunkIndex())
}

// ParameterWrite sets a parameter value.
type ParameterWrite struct {
	ExtendedEnvelope
}

// NewParameterWrite creates a ParameterWrite frame.
func NewParameterWrite(raw []byte) (*ParameterWrite, error) {
	env, err := newExtendedEnvelope(raw, "parameter write")
	if err != nil {
		return nil, err
	}
	return &ParameterWrite{ExtendedEnvelope: env}, nil
}

// FrameSize implements Frame.
func (f *ParameterWrite) FrameSize() int { return ParameterWriteFrameSize }

// FieldIndex is the parameter number.
func (f *ParameterWrite) FieldIndex() int { return int(f.u8(5)) }

// Value is the new value.
func (f *ParameterWrite) Value() int { return int(f.u8(6)) }

// String implements Frame.
func (f *ParameterWrite) String() string {
	return fmt.Sprintf("ParameterWrite %s field=%d value=%d", f.addresses(), f.FieldIndex(), f.Value())
}
