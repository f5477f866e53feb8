package crsf

import (
	"fmt"
	"math"
)

// Fixed sizes of telemetry frames.
const (
	AttitudeFrameSize          = 10
	BatteryFrameSize           = 12
	GPSFrameSize               = 19
	VariometerFrameSize        = 7
	BarometerFrameSize         = 7
	BarometerVariometerSize    = 9
	attitudeRadiansPerUnit     = 1.0 / 10000
	gpsDegreesPerUnit          = 1.0 / 10000000
	baroAltitudeMetersFlag     = 0x8000
	baroAltitudeDecimeterShift = 10000
)

type telemetryEnvelope struct {
	Envelope
}

// IsTelemetry implements Frame.
func (telemetryEnvelope) IsTelemetry() bool { return true }

// Attitude reports the orientation of the vehicle.
type Attitude struct {
	telemetryEnvelope
}

// NewAttitude creates an Attitude frame.
func NewAttitude(raw []byte) (*Attitude, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Attitude{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *Attitude) FrameSize() int { return AttitudeFrameSize }

func (f *Attitude) degrees(i int) float64 {
	return float64(int16(f.u16(i))) * attitudeRadiansPerUnit * 180 / math.Pi
}

// Pitch in degrees.
func (f *Attitude) Pitch() float64 { return f.degrees(3) }

// Roll in degrees.
func (f *Attitude) Roll() float64 { return f.degrees(5) }

// Yaw in degrees.
func (f *Attitude) Yaw() float64 { return f.degrees(7) }

// String implements Frame.
func (f *Attitude) String() string {
	return fmt.Sprintf("Attitude pitch=%.2f roll=%.2f yaw=%.2f", f.Pitch(), f.Roll(), f.Yaw())
}

// Battery reports the battery sensor.
type Battery struct {
	telemetryEnvelope
}

// NewBattery creates a Battery frame.
func NewBattery(raw []byte) (*Battery, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Battery{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *Battery) FrameSize() int { return BatteryFrameSize }

// Voltage in volts.
func (f *Battery) Voltage() float64 { return float64(int16(f.u16(3))) / 10 }

// Current in amperes.
func (f *Battery) Current() float64 { return float64(int16(f.u16(5))) / 10 }

// Fuel is the drawn capacity in mAh.
func (f *Battery) Fuel() int { return int(f.u24(7)) }

// Remaining is the remaining capacity in percent.
func (f *Battery) Remaining() int { return f.i8(10) }

// String implements Frame.
func (f *Battery) String() string {
	return fmt.Sprintf("Battery voltage=%.1fV current=%.1fA fuel=%dmAh remaining=%d%%",
		f.Voltage(), f.Current(), f.Fuel(), f.Remaining())
}

// GPS reports the position fix.
type GPS struct {
	telemetryEnvelope
}

// NewGPS creates a GPS frame.
func NewGPS(raw []byte) (*GPS, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &GPS{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *GPS) FrameSize() int { return GPSFrameSize }

// Latitude in degrees.
func (f *GPS) Latitude() float64 { return float64(int32(f.u32(3))) * gpsDegreesPerUnit }

// Longitude in degrees.
func (f *GPS) Longitude() float64 { return float64(int32(f.u32(7))) * gpsDegreesPerUnit }

// GroundSpeed in km/h.
func (f *GPS) GroundSpeed() float64 { return float64(int16(f.u16(11))) / 100 }

// Heading in degrees.
func (f *GPS) Heading() float64 { return float64(int16(f.u16(13))) / 100 }

// Altitude in meters.
func (f *GPS) Altitude() int { return int(int16(f.u16(15))) - 1000 }

// Satellites in view.
func (f *GPS) Satellites() int { return f.i8(17) }

// String implements Frame.
func (f *GPS) String() string {
	return fmt.Sprintf("GPS lat=%.7f lon=%.7f speed=%.2f heading=%.2f alt=%dm sats=%d",
		f.Latitude(), f.Longitude(), f.GroundSpeed(), f.Heading(), f.Altitude(), f.Satellites())
}

// Variometer reports the vertical speed.
type Variometer struct {
	telemetryEnvelope
}

// NewVariometer creates a Variometer frame.
func NewVariometer(raw []byte) (*Variometer, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Variometer{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *Variometer) FrameSize() int { return VariometerFrameSize }

// VerticalSpeed in cm/s.
func (f *Variometer) VerticalSpeed() int { return int(int16(f.u16(3))) }

// String implements Frame.
func (f *Variometer) String() string {
	return fmt.Sprintf("Variometer vspeed=%dcm/s", f.VerticalSpeed())
}

// baroAltitude decodes the packed altitude: with the high bit set the value
// is in meters, otherwise in decimeters offset by 10000.
func baroAltitude(v uint16) float64 {
	if v&baroAltitudeMetersFlag != 0 {
		return float64(v &^ baroAltitudeMetersFlag)
	}
	return float64(int(v)-baroAltitudeDecimeterShift) / 10
}

// Barometer reports the barometric altitude.
type Barometer struct {
	telemetryEnvelope
}

// NewBarometer creates a Barometer frame.
func NewBarometer(raw []byte) (*Barometer, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &Barometer{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *Barometer) FrameSize() int { return BarometerFrameSize }

// Altitude in meters.
func (f *Barometer) Altitude() float64 { return baroAltitude(f.u16(3)) }

// String implements Frame.
func (f *Barometer) String() string {
	return fmt.Sprintf("Barometer alt=%.1fm", f.Altitude())
}

// BarometerVariometer reports barometric altitude and vertical speed.
type BarometerVariometer struct {
	telemetryEnvelope
}

// NewBarometerVariometer creates a BarometerVariometer frame.
func NewBarometerVariometer(raw []byte) (*BarometerVariometer, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &BarometerVariometer{telemetryEnvelope{env}}, nil
}

// FrameSize implements Frame.
func (f *BarometerVariometer) FrameSize() int { return BarometerVariometerSize }

// Altitude in meters.
func (f *BarometerVariometer) Altitude() float64 { return baroAltitude(f.u16(3)) }

// VerticalSpeed in m/s.
func (f *BarometerVariometer) VerticalSpeed() float64 { return float64(int16(f.u16(5))) / 100 }

// String implements Frame.
func (f *BarometerVariometer) String() string {
	return fmt.Sprintf("BarometerVariometer alt=%.1fm vspeed=%.2fm/s", f.Altitude(), f.VerticalSpeed())
}

// FlightMode reports the flight controller mode name.
type FlightMode struct {
	telemetryEnvelope
}

// NewFlightMode creates a FlightMode frame.
func NewFlightMode(raw []byte) (*FlightMode, error) {
	env, err := NewEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return &FlightMode{telemetryEnvelope{env}}, nil
}

// Mode is the NUL terminated mode name.
func (f *FlightMode) Mode() string { return f.cstring(3) }

// String implements Frame.
func (f *FlightMode) String() string {
	return fmt.Sprintf("FlightMode %q", f.Mode())
}
