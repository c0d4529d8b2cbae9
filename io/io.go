// Package io defines the basic interfaces for wiring a 6502-family I/O
// port (generally bi-directional) to something outside the emulated
// machine, such as a terminal.
package io

// PortIn8 defines an 8-bit input port. Implementors return whatever value
// an external source (a keyboard, a joystick) currently presents.
type PortIn8 interface {
	// Input returns the current value being presented on the port.
	Input() uint8
}

// PortOut8 defines an 8-bit output port. Implementors receive every value
// written to the port by the emulated program, in order.
type PortOut8 interface {
	// Output is called with the value written to the port.
	Output(val uint8)
}
