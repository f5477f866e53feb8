package channels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailsafeIsExact(t *testing.T) {
	for i := 0; i < 3; i++ {
		us, err := ProtocolToMicroseconds(Failsafe)
		require.NoError(t, err)
		require.Equal(t, FailsafeMicroseconds, us)
		v, err := MicrosecondsToProtocol(FailsafeMicroseconds)
		require.NoError(t, err)
		require.Equal(t, Failsafe, v)
	}
}

func TestProtocolToMicroseconds(t *testing.T) {
	testCases := []struct {
		in     int
		expect int
	}{
		{0, 881},
		{172, 988},
		{191, 1000},
		{1794, 2000},
		{1811, 2011},
		{1984, 2119},
	}
	for _, tc := range testCases {
		us, err := ProtocolToMicroseconds(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.expect, us, "value %d", tc.in)
	}
	for _, v := range []int{-1, 1985, 2047} {
		_, err := ProtocolToMicroseconds(v)
		require.True(t, errors.Is(err, ErrOutOfRange), "value %d", v)
	}
}

func TestMicrosecondsToProtocol(t *testing.T) {
	testCases := []struct {
		in     int
		expect int
	}{
		{881, 1},
		{988, 172},
		{1000, 191},
		{2000, 1794},
		{2119, 1984},
	}
	for _, tc := range testCases {
		v, err := MicrosecondsToProtocol(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.expect, v, "%dus", tc.in)
	}
	for _, us := range []int{0, 880, 2120, 3000} {
		_, err := MicrosecondsToProtocol(us)
		require.True(t, errors.Is(err, ErrOutOfRange), "%dus", us)
	}
}

func TestRoundTripDrift(t *testing.T) {
	for v := MinValue; v <= MaxValue; v++ {
		us, err := ProtocolToMicroseconds(v)
		require.NoError(t, err)
		back, err := MicrosecondsToProtocol(us)
		require.NoError(t, err, "value %d (%dus)", v, us)
		if v == Failsafe {
			require.Equal(t, v, back)
			continue
		}
		require.InDelta(t, v, back, 1, "value %d (%dus)", v, us)
	}
}

func TestValuesConversion(t *testing.T) {
	us, err := centered().ToMicroseconds()
	require.NoError(t, err)
	for _, val := range us {
		require.Equal(t, FailsafeMicroseconds, val)
	}
	v, err := FromMicroseconds(us)
	require.NoError(t, err)
	require.Equal(t, centered(), v)

	us[3] = 5000
	_, err = FromMicroseconds(us)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.Contains(t, err.Error(), "channel 4")
}
