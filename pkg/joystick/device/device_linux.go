//go:build linux

package device

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"
	"unsafe"
)

const (
	iocGAXES    uint = 0x80016a11
	iocGBUTTONS uint = 0x80016a12
	iocGNAME    uint = 0x80ff6a13
)

// MaxIndex bounds the device scan of DetectAndOpen.
const MaxIndex = 32

type device struct {
	file        *os.File
	index       int
	name        string
	axisCount   uint8
	buttonCount uint8
	buf         [EventSize]byte
}

// DevicePath is the device file of a joystick index.
func DevicePath(index int) string {
	return fmt.Sprintf("/dev/input/js%d", index)
}

// Open opens the device with specified index.
func Open(index int) (Device, error) {
	f, err := os.OpenFile(DevicePath(index), os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	d := &device{file: f, index: index}
	if err := d.query(); err != nil {
		f.Close()
		return nil, fmt.Errorf("query %s: %w", f.Name(), err)
	}
	return d, nil
}

func (d *device) query() error {
	if errno := d.ioctl(iocGAXES, unsafe.Pointer(&d.axisCount)); errno != 0 {
		return errno
	}
	if errno := d.ioctl(iocGBUTTONS, unsafe.Pointer(&d.buttonCount)); errno != 0 {
		return errno
	}
	var name [256]byte
	if errno := d.ioctl(iocGNAME, unsafe.Pointer(&name)); errno != 0 {
		return errno
	}
	if pos := bytes.IndexByte(name[:], 0); pos >= 0 {
		d.name = string(name[:pos])
	} else {
		d.name = string(name[:])
	}
	return nil
}

// DetectAndOpen opens the first available device from startIndex. It
// returns nil without error if there is none.
func DetectAndOpen(startIndex int) (Device, error) {
	for index := startIndex; index < MaxIndex; index++ {
		d, err := Open(index)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return d, nil
	}
	return nil, nil
}

// Close implements Device.
func (d *device) Close() error {
	return d.file.Close()
}

// Index implements Device.
func (d *device) Index() int {
	return d.index
}

// Name implements Device.
func (d *device) Name() string {
	return d.name
}

// AxisCount implements Device.
func (d *device) AxisCount() int {
	return int(d.axisCount)
}

// ButtonCount implements Device.
func (d *device) ButtonCount() int {
	return int(d.buttonCount)
}

// ReadEvent implements Device.
func (d *device) ReadEvent() (Event, error) {
	if _, err := io.ReadFull(d.file, d.buf[:]); err != nil {
		return nil, err
	}
	return DecodeEvent(d.buf[:])
}

func (d *device) ioctl(req uint, ptr unsafe.Pointer) syscall.Errno {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, d.file.Fd(), uintptr(req), uintptr(ptr))
	return errno
}
