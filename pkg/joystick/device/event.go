package device

import (
	"encoding/binary"
)

// EventSize is the size of struct js_event.
const EventSize = 8

const (
	evBTN  uint8 = 0x01
	evAXIS uint8 = 0x02
	evINIT uint8 = 0x80
)

// DecodeEvent decodes a js_event: u32 time, s16 value, u8 type, u8 number,
// little endian. Events which are neither axis nor button are returned as
// plain Event.
func DecodeEvent(buf []byte) (Event, error) {
	if len(buf) < EventSize {
		return nil, ErrShortEvent
	}
	ev := event{
		time:   binary.LittleEndian.Uint32(buf[0:4]),
		value:  int16(binary.LittleEndian.Uint16(buf[4:6])),
		typ:    buf[6],
		number: buf[7],
	}
	switch ev.typ &^ evINIT {
	case evBTN:
		return &buttonEvent{event: ev}, nil
	case evAXIS:
		return &axisEvent{event: ev}, nil
	}
	return &ev, nil
}

// EncodeEvent is the reverse of DecodeEvent, used to replay input.
func EncodeEvent(ev Event) []byte {
	buf := make([]byte, EventSize)
	typ := uint8(0)
	switch e := ev.(type) {
	case AxisEvent:
		typ = evAXIS
		binary.LittleEndian.PutUint16(buf[4:6], uint16(int16(e.Value())))
	case ButtonEvent:
		typ = evBTN
		if e.Pressed() {
			buf[4] = 1
		}
	}
	if ev.IsInit() {
		typ |= evINIT
	}
	buf[6], buf[7] = typ, uint8(ev.Index())
	return buf
}

type event struct {
	time   uint32
	value  int16
	typ    uint8
	number uint8
}

func (e *event) IsInit() bool {
	return e.typ&evINIT != 0
}

func (e *event) Index() int {
	return int(e.number)
}

type axisEvent struct {
	event
}

func (e *axisEvent) Value() int {
	return int(e.value)
}

type buttonEvent struct {
	event
}

func (e *buttonEvent) Pressed() bool {
	return e.value != 0
}

// NewAxisEvent creates an axis event, e.g. for tests or replays.
func NewAxisEvent(index, value int) AxisEvent {
	return &axisEvent{event: event{typ: evAXIS, number: uint8(index), value: int16(value)}}
}

// NewButtonEvent creates a button event.
func NewButtonEvent(index int, pressed bool) ButtonEvent {
	ev := &buttonEvent{event: event{typ: evBTN, number: uint8(index)}}
	if pressed {
		ev.value = 1
	}
	return ev
}
