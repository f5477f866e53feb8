package crsf

// Decode builds the frame variant for the type code of raw. Known types
// without a decoder become Raw frames.
func Decode(raw []byte) (Frame, error) {
	if len(raw) < headerSize {
		return nil, &LengthError{Frame: "frame", Want: headerSize, Got: len(raw)}
	}
	t, err := LookupFrameType(raw[2])
	if err != nil {
		return nil, err
	}
	switch t {
	case TypeDeviceInfo:
		return asFrame(NewDeviceInfo(raw))
	case TypeRadioID:
		return asFrame(NewOpenTxSync(raw))
	case TypeAttitude:
		return asFrame(NewAttitude(raw))
	case TypeLinkStatistics:
		return asFrame(NewLinkStatistics(raw))
	case TypeFlightMode:
		return asFrame(NewFlightMode(raw))
	case TypeBatterySensor:
		return asFrame(NewBattery(raw))
	case TypeRCChannelsPacked:
		return asFrame(NewChannels(raw))
	case TypeVario:
		return asFrame(NewVariometer(raw))
	case TypeGPS:
		return asFrame(NewGPS(raw))
	}
	return asFrame(NewRaw(raw))
}

// asFrame keeps a typed nil pointer from becoming a non-nil Frame.
func asFrame[T Frame](f T, err error) (Frame, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}
