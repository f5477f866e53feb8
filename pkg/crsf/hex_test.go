package crsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	testCases := []struct {
		in     string
		expect []byte
	}{
		{"", nil},
		{"c8", []byte{0xC8}},
		{"C8 04 07", []byte{0xC8, 0x04, 0x07}},
		{"0xC8,0x4,7", []byte{0xC8, 0x04, 0x07}},
		{"c80407:00", []byte{0xC8, 0x04, 0x07, 0x00}},
	}
	for _, tc := range testCases {
		b, err := ParseHex(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expect, b, tc.in)
	}

	_, err := ParseHex("zz")
	assert.Error(t, err)
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "C8 04 07", FormatHex([]byte{0xC8, 0x04, 0x07}))
	assert.Equal(t, "", FormatHex(nil))
}
