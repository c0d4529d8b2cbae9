// Package bus implements the address-decoded memory bus that routes CPU
// reads and writes to the device mapped at a given address.
package bus

import "github.com/stid/apple1-rst/memory"

// mapping is one entry in an AddressBus: an inclusive [lo,hi] range routed
// to a device, carried alongside a name for diagnostics.
type mapping struct {
	lo, hi uint16
	dev    memory.Addressable
	name   string
}

func (m mapping) contains(addr uint16) bool {
	return addr >= m.lo && addr <= m.hi
}

// AddressBus routes reads and writes across an ordered list of device
// mappings. Ranges are matched first-match-wins, so ordering matters when
// ranges overlap. Addresses outside of every mapping read as 0x00 and drop
// writes silently, matching real open-bus behavior closely enough for this
// emulator's purposes.
type AddressBus struct {
	maps []mapping
}

// New creates an empty AddressBus. Use Map to register devices.
func New() *AddressBus {
	return &AddressBus{}
}

// Map registers dev to handle addresses in [lo, hi] inclusive. name labels
// the mapping for diagnostics; routing never reads it. Map does not reject
// overlapping ranges: the earliest Map call wins ties, per the bus's
// first-match contract.
func (b *AddressBus) Map(lo, hi uint16, dev memory.Addressable, name string) {
	b.maps = append(b.maps, mapping{lo: lo, hi: hi, dev: dev, name: name})
}

// Read returns the byte at addr from whichever mapped device claims it
// first, or 0x00 if nothing does.
func (b *AddressBus) Read(addr uint16) uint8 {
	for _, m := range b.maps {
		if m.contains(addr) {
			return m.dev.Read(addr - m.lo)
		}
	}
	return 0x00
}

// Write stores val at addr on whichever mapped device claims it first.
// Writes to unmapped addresses are silently dropped.
func (b *AddressBus) Write(addr uint16, val uint8) {
	for _, m := range b.maps {
		if m.contains(addr) {
			m.dev.Write(addr-m.lo, val)
			return
		}
	}
}

// Read16 reads a little-endian 16-bit value at addr, addr+1, such as a
// reset or interrupt vector. The CPU does not call it; it reads vectors and
// pointers one byte at a time through Read.
func (b *AddressBus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Flash implements memory.Addressable, letting an AddressBus stand in
// anywhere a single Addressable is expected (e.g. disassemble.Step). The
// big-endian load address in data[0:2] is an absolute bus address; each
// payload byte is routed through Write like any other store.
func (b *AddressBus) Flash(data []byte) {
	if len(data) < 2 {
		return
	}
	loadAddr := uint16(data[0])<<8 | uint16(data[1])
	for i, v := range data[2:] {
		b.Write(loadAddr+uint16(i), v)
	}
}

// ReadOps sums read-operation counters across every mapped device.
func (b *AddressBus) ReadOps() uint64 {
	var total uint64
	for _, m := range b.maps {
		total += m.dev.ReadOps()
	}
	return total
}

// WriteOps sums write-operation counters across every mapped device.
func (b *AddressBus) WriteOps() uint64 {
	var total uint64
	for _, m := range b.maps {
		total += m.dev.WriteOps()
	}
	return total
}
