package crsf

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex reads bytes written as hex, optionally separated by spaces,
// commas or colons and prefixed with 0x.
func ParseHex(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == '\t' || r == '\n'
	})
	var out []byte
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		if len(f)%2 == 1 {
			f = "0" + f
		}
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// FormatHex writes bytes as space separated upper case hex.
func FormatHex(b []byte) string {
	return fmt.Sprintf("% X", b)
}
