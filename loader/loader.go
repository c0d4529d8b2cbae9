// Package loader reads program images from disk and flashes them onto an
// Addressable device using the big-endian load-address-prefixed format
// every memory device understands.
package loader

import (
	"fmt"
	"os"

	"github.com/stid/apple1-rst/memory"
)

// ReadImage reads the raw bytes of a program image from path.
func ReadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading image %q: %w", path, err)
	}
	return data, nil
}

// Flash builds the big-endian load-address-prefixed buffer and hands it to
// dev.Flash. loadAddr is honored by RAM devices and ignored by ROM
// devices, per the Addressable contract. A payload that would overflow a
// device of known size is rejected before Flash is ever called, rather
// than silently truncated.
func Flash(dev memory.Addressable, loadAddr uint16, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("loader: empty payload")
	}
	switch d := dev.(type) {
	case *memory.RAM:
		if end := int(loadAddr) + len(payload); end > d.Size() {
			return fmt.Errorf("loader: payload of %d bytes at load address 0x%.4X overflows %d-byte RAM", len(payload), loadAddr, d.Size())
		}
	case *memory.ROM:
		// ROM always loads at offset 0, ignoring loadAddr.
		if len(payload) > d.Size() {
			return fmt.Errorf("loader: payload of %d bytes overflows %d-byte ROM", len(payload), d.Size())
		}
	}

	buf := make([]byte, 2+len(payload))
	buf[0] = uint8(loadAddr >> 8)
	buf[1] = uint8(loadAddr & 0xFF)
	copy(buf[2:], payload)
	dev.Flash(buf)
	return nil
}

// LoadFile reads path and flashes its contents onto dev at loadAddr in one
// call, the common case for wiring a ROM image at startup.
func LoadFile(dev memory.Addressable, loadAddr uint16, path string) error {
	payload, err := ReadImage(path)
	if err != nil {
		return err
	}
	return Flash(dev, loadAddr, payload)
}
