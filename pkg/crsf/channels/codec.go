package channels

import "fmt"

const (
	// Count is the number of channels in a packed channels frame.
	Count = 16
	// Bits is the width of a packed channel value.
	Bits = 11
	// PackedSize is the number of bytes of Count packed values.
	PackedSize = (Count*Bits + 7) / 8

	valueMask = 1<<Bits - 1
)

// Values is a set of channel values.
type Values [Count]int

// Pack packs the values (masked to 11 bits) LSB first.
func Pack(v Values) []byte {
	return packBits(v[:], Bits)
}

// Unpack extracts Count values from packed bytes.
func Unpack(data []byte) (v Values, err error) {
	if len(data) < PackedSize {
		return v, fmt.Errorf("%w: %d bytes", ErrShortPayload, len(data))
	}
	unpackBits(data, v[:], Bits)
	return v, nil
}

func packBits(values []int, bits uint) []byte {
	out := make([]byte, 0, (len(values)*int(bits)+7)/8)
	mask := uint32(1)<<bits - 1
	var acc uint32
	var n uint
	for _, val := range values {
		acc |= (uint32(val) & mask) << n
		n += bits
		for n >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			n -= 8
		}
	}
	if n > 0 {
		out = append(out, byte(acc))
	}
	return out
}

func unpackBits(data []byte, values []int, bits uint) {
	mask := uint32(1)<<bits - 1
	var acc uint32
	var n uint
	pos := 0
	for i := range values {
		for n < bits {
			acc |= uint32(data[pos]) << n
			pos++
			n += 8
		}
		values[i] = int(acc & mask)
		acc >>= bits
		n -= bits
	}
}
