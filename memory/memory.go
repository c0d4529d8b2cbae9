// Package memory defines the Addressable capability shared by every device
// that can sit on an address bus, and the two concrete backing stores
// (RAM/ROM) a 6502-family bus typically routes to.
package memory

import "fmt"

// Addressable is the capability an address bus routes reads, writes and
// bulk loads to. Addresses are device-local: a device does not know where
// it is mapped in the larger address space, that's the bus's job.
type Addressable interface {
	// Read returns the byte stored at the device-local offset addr.
	// Out-of-range offsets return 0.
	Read(addr uint16) uint8
	// Write stores val at the device-local offset addr. ROM devices treat
	// this as a no-op.
	Write(addr uint16, val uint8)
	// Flash bulk-loads data into the device. The first two bytes of data
	// are a big-endian load address; the remainder is the payload. ROM
	// devices ignore the load address and always start at offset 0.
	Flash(data []byte)
	// ReadOps and WriteOps report the number of Read/Write calls seen so
	// far, for diagnostics and tests. ROM devices do not count writes, so
	// their WriteOps is always 0.
	ReadOps() uint64
	WriteOps() uint64
}

// RAM is a mutable byte array backing store of fixed size.
type RAM struct {
	data     []uint8
	readOps  uint64
	writeOps uint64
}

// NewRAM allocates a RAM device of the given size, zero-initialized.
func NewRAM(size int) (*RAM, error) {
	if size <= 0 {
		return nil, fmt.Errorf("memory: invalid RAM size %d, must be positive", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("memory: invalid RAM size %d, larger than 64k", size)
	}
	return &RAM{data: make([]uint8, size)}, nil
}

// Read implements Addressable. Out-of-range offsets return 0.
func (r *RAM) Read(addr uint16) uint8 {
	r.readOps++
	if int(addr) >= len(r.data) {
		return 0
	}
	return r.data[addr]
}

// Write implements Addressable. Out-of-range offsets are dropped.
func (r *RAM) Write(addr uint16, val uint8) {
	r.writeOps++
	if int(addr) >= len(r.data) {
		return
	}
	r.data[addr] = val
}

// Flash implements Addressable: data[0:2] is a big-endian load address,
// data[2:] is copied into the backing array starting there.
func (r *RAM) Flash(data []byte) {
	if len(data) < 2 {
		return
	}
	loadAddr := int(data[0])<<8 | int(data[1])
	payload := data[2:]
	for i, b := range payload {
		off := loadAddr + i
		if off >= len(r.data) {
			break
		}
		r.data[off] = b
	}
}

func (r *RAM) ReadOps() uint64  { return r.readOps }
func (r *RAM) WriteOps() uint64 { return r.writeOps }

// Size reports the device's backing-array length, so callers like
// loader.Flash can reject a payload before it would overflow.
func (r *RAM) Size() int { return len(r.data) }

// ROM is a byte array backing store whose writes are always ignored. It
// initializes to 0xFF, matching an unprogrammed EPROM.
type ROM struct {
	data    []uint8
	readOps uint64
}

// NewROM allocates a ROM device of the given size, initialized to 0xFF.
func NewROM(size int) (*ROM, error) {
	if size <= 0 {
		return nil, fmt.Errorf("memory: invalid ROM size %d, must be positive", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("memory: invalid ROM size %d, larger than 64k", size)
	}
	data := make([]uint8, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &ROM{data: data}, nil
}

// Read implements Addressable. Out-of-range offsets return 0.
func (r *ROM) Read(addr uint16) uint8 {
	r.readOps++
	if int(addr) >= len(r.data) {
		return 0
	}
	return r.data[addr]
}

// Write implements Addressable as a no-op; ROM cannot be written at runtime.
func (r *ROM) Write(addr uint16, val uint8) {}

// Flash implements Addressable: the load address in data[0:2] is ignored,
// data[2:] is always copied starting at offset 0.
func (r *ROM) Flash(data []byte) {
	if len(data) < 2 {
		return
	}
	payload := data[2:]
	for i, b := range payload {
		if i >= len(r.data) {
			break
		}
		r.data[i] = b
	}
}

func (r *ROM) ReadOps() uint64  { return r.readOps }
func (r *ROM) WriteOps() uint64 { return 0 }

// Size reports the device's backing-array length, so callers like
// loader.Flash can reject a payload before it would overflow.
func (r *ROM) Size() int { return len(r.data) }
