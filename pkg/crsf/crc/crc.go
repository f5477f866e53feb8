// Package crc computes the CRC-8 checksums used to stamp and validate frames.
package crc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sigurn/crc8"
)

// Polynomial is an 8-bit CRC polynomial (MSB first, seed 0, no reflection).
type Polynomial byte

const (
	// D5 is the polynomial used by every frame on the wire (DVB-S2).
	D5 Polynomial = 0xD5
	// BA is defined by the protocol family for command frames. No frame in
	// this module uses it yet but it stays selectable.
	BA Polynomial = 0xBA
)

// ErrInvalidRange indicates the byte range for the checksum is empty or
// outside of the data.
var ErrInvalidRange = errors.New("crc: invalid range")

var (
	tablesLock sync.RWMutex
	tables     = make(map[Polynomial]*crc8.Table)
)

func (p Polynomial) table() *crc8.Table {
	tablesLock.RLock()
	t := tables[p]
	tablesLock.RUnlock()
	if t != nil {
		return t
	}
	tablesLock.Lock()
	defer tablesLock.Unlock()
	if t = tables[p]; t == nil {
		t = crc8.MakeTable(crc8.Params{Poly: byte(p), Name: p.String()})
		tables[p] = t
	}
	return t
}

// String returns the conventional name of the polynomial.
func (p Polynomial) String() string {
	switch p {
	case D5:
		return "CRC-8/DVB-S2"
	case BA:
		return "CRC-8/BA"
	}
	return fmt.Sprintf("CRC-8/0x%02X", byte(p))
}

// Checksum calculates the CRC of data[start:end] with the polynomial.
func (p Polynomial) Checksum(data []byte, start, end int) (byte, error) {
	if start < 0 || end > len(data) || start >= end {
		return 0, ErrInvalidRange
	}
	return crc8.Checksum(data[start:end], p.table()), nil
}

// Sum calculates the CRC of the whole slice. An empty slice sums to 0.
func (p Polynomial) Sum(data []byte) byte {
	if len(data) == 0 {
		return 0
	}
	return crc8.Checksum(data, p.table())
}

// Checksum calculates the CRC of data[start:end] with the given polynomial.
func Checksum(poly Polynomial, data []byte, start, end int) (byte, error) {
	return poly.Checksum(data, start, end)
}

// CalcD5 calculates the production checksum of data[start:end].
func CalcD5(data []byte, start, end int) (byte, error) {
	return D5.Checksum(data, start, end)
}

// CalcBA calculates the alternative checksum of data[start:end].
func CalcBA(data []byte, start, end int) (byte, error) {
	return BA.Checksum(data, start, end)
}
