// Package pia implements a 6820/6821 Peripheral Interface Adapter: a
// four-register I/O latch mediating two external ports, mapped onto the
// address bus as a four-byte Addressable device.
package pia

import "github.com/stid/apple1-rst/io"

// Register offsets within the PIA's four-byte device-local address space.
const (
	DataA uint16 = 0x0
	CtrlA uint16 = 0x1
	DataB uint16 = 0x2
	CtrlB uint16 = 0x3
)

// Chip is a 6820/6821 PIA. Reads from DATA A/B pull a byte from the wired
// external input port, if any; writes to DATA A/B push a byte to the wired
// external output port, if any. The control registers are plain latches at
// this level of emulation: they take writes and are readable back, but
// drive no side effect.
type Chip struct {
	data [4]uint8

	inA  io.PortIn8
	outA io.PortOut8
	inB  io.PortIn8
	outB io.PortOut8

	readOps  uint64
	writeOps uint64
}

// New creates a PIA with all registers zeroed and no ports wired.
func New() *Chip {
	return &Chip{}
}

// WireA wires port A's input/output callbacks. Either may be nil.
func (c *Chip) WireA(in io.PortIn8, out io.PortOut8) {
	c.inA = in
	c.outA = out
}

// WireB wires port B's input/output callbacks. Either may be nil.
func (c *Chip) WireB(in io.PortIn8, out io.PortOut8) {
	c.inB = in
	c.outB = out
}

// Read implements memory.Addressable. DATA A/B reads pull from the wired
// input port when one is present; otherwise they return the last latched
// value. Control register reads always return the latch.
func (c *Chip) Read(addr uint16) uint8 {
	c.readOps++
	switch addr & 0x3 {
	case DataA:
		if c.inA != nil {
			c.data[DataA] = c.inA.Input()
		}
		return c.data[DataA]
	case DataB:
		if c.inB != nil {
			c.data[DataB] = c.inB.Input()
		}
		return c.data[DataB]
	default:
		return c.data[addr&0x3]
	}
}

// Write implements memory.Addressable. DATA A/B writes latch the value and
// push it to the wired output port, if any. Control register writes only
// latch.
func (c *Chip) Write(addr uint16, val uint8) {
	c.writeOps++
	reg := addr & 0x3
	c.data[reg] = val
	switch reg {
	case DataA:
		if c.outA != nil {
			c.outA.Output(val)
		}
	case DataB:
		if c.outB != nil {
			c.outB.Output(val)
		}
	}
}

// Flash implements memory.Addressable by loading the four registers
// directly from data's payload (skipping the big-endian load-address
// header, per the common Addressable contract). This exists chiefly so a
// PIA can satisfy the Addressable interface uniformly; real machines never
// flash-load a PIA.
func (c *Chip) Flash(data []byte) {
	if len(data) < 2 {
		return
	}
	payload := data[2:]
	for i := 0; i < len(payload) && i < len(c.data); i++ {
		c.data[i] = payload[i]
	}
}

func (c *Chip) ReadOps() uint64  { return c.readOps }
func (c *Chip) WriteOps() uint64 { return c.writeOps }
