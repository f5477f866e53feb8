package channels

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func centered() (v Values) {
	for n := range v {
		v[n] = Failsafe
	}
	return
}

func TestPack(t *testing.T) {
	testCases := []struct {
		name   string
		values Values
		expect []byte
	}{
		{
			name:   "centered",
			values: centered(),
			expect: []byte{
				0xe0, 0x03, 0x1f, 0xf8, 0xc0, 0x07, 0x3e, 0xf0, 0x81, 0x0f, 0x7c,
				0xe0, 0x03, 0x1f, 0xf8, 0xc0, 0x07, 0x3e, 0xf0, 0x81, 0x0f, 0x7c,
			},
		},
		{
			name:   "ascending",
			values: Values{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 1984},
			expect: []byte{
				0x00, 0x08, 0x80, 0x00, 0x06, 0x40, 0x80, 0x02, 0x18, 0xe0, 0x00,
				0x08, 0x48, 0x80, 0x02, 0x16, 0xc0, 0x80, 0x06, 0x38, 0x00, 0xf8,
			},
		},
		{
			name:   "masked to 11 bits",
			values: Values{0x7ff | 0x800},
			expect: append([]byte{0xff, 0x07}, make([]byte, 20)...),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packed := Pack(tc.values)
			require.Len(t, packed, PackedSize)
			require.Equal(t, tc.expect, packed)
		})
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		var v Values
		for n := range v {
			v[n] = rnd.Intn(MaxValue + 1)
		}
		out, err := Unpack(Pack(v))
		require.NoError(t, err)
		require.Equal(t, v, out)
	}
}

func TestUnpackShort(t *testing.T) {
	_, err := Unpack(make([]byte, PackedSize-1))
	require.True(t, errors.Is(err, ErrShortPayload))
}

func TestPackBitsPartialByte(t *testing.T) {
	// 3 x 11 bits leaves 1 bit in a trailing byte.
	packed := packBits([]int{0x7ff, 0, 0x400}, Bits)
	require.Equal(t, []byte{0xff, 0x07, 0x00, 0x00, 0x01}, packed)
	values := make([]int, 3)
	unpackBits(packed, values, Bits)
	require.Equal(t, []int{0x7ff, 0, 0x400}, values)
}
