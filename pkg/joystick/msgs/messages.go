// Package msgs defines the status messages of the joystick transmitter.
package msgs

import (
	"github.com/golang/protobuf/proto"
)

// TopicStatus is where JoystickStatus is published.
const TopicStatus = "joystick/status"

// JoystickStatus reflects the joystick and the channels being transmitted.
type JoystickStatus struct {
	Device       *JoystickDevice `protobuf:"bytes,1,opt,name=device,proto3" json:"device,omitempty"`
	Armed        bool            `protobuf:"varint,2,opt,name=armed,proto3" json:"armed,omitempty"`
	Microseconds []int32         `protobuf:"varint,3,rep,packed,name=microseconds,proto3" json:"microseconds,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *JoystickStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *JoystickStatus) Reset() { *m = JoystickStatus{} }

// String implements proto.Message.
func (m *JoystickStatus) String() string { return proto.CompactTextString(m) }

// JoystickDevice provides information of joystick device.
type JoystickDevice struct {
	Index   uint32 `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Name    string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Axes    uint32 `protobuf:"varint,3,opt,name=axes,proto3" json:"axes,omitempty"`
	Buttons uint32 `protobuf:"varint,4,opt,name=buttons,proto3" json:"buttons,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *JoystickDevice) ProtoMessage() {}

// Reset implements proto.Message.
func (m *JoystickDevice) Reset() { *m = JoystickDevice{} }

// String implements proto.Message.
func (m *JoystickDevice) String() string { return proto.CompactTextString(m) }
