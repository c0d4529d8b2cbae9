// Package disassemble renders one instruction at a given address as text,
// for the CLI's trace mode. It never mutates or advances a CPU — it is a
// pure function of an address space and a program counter.
package disassemble

import (
	"fmt"

	"github.com/stid/apple1-rst/memory"
)

type mode int

const (
	modeImplied mode = iota
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeRelative
)

type entry struct {
	mnemonic string
	mode     mode
}

var table [256]entry

func reg(op uint8, mnemonic string, m mode) { table[op] = entry{mnemonic, m} }

func init() {
	reg(0x00, "BRK", modeImplied)
	reg(0x01, "ORA", modeIndirectX)
	reg(0x02, "KIL", modeImplied)
	reg(0x03, "SLO", modeIndirectX)
	reg(0x04, "NOP", modeZP)
	reg(0x05, "ORA", modeZP)
	reg(0x06, "ASL", modeZP)
	reg(0x07, "SLO", modeZP)
	reg(0x08, "PHP", modeImplied)
	reg(0x09, "ORA", modeImmediate)
	reg(0x0A, "ASL", modeImplied)
	reg(0x0B, "ANC", modeImmediate)
	reg(0x0C, "NOP", modeAbsolute)
	reg(0x0D, "ORA", modeAbsolute)
	reg(0x0E, "ASL", modeAbsolute)
	reg(0x0F, "SLO", modeAbsolute)
	reg(0x10, "BPL", modeRelative)
	reg(0x11, "ORA", modeIndirectY)
	reg(0x12, "KIL", modeImplied)
	reg(0x13, "SLO", modeIndirectY)
	reg(0x14, "NOP", modeZPX)
	reg(0x15, "ORA", modeZPX)
	reg(0x16, "ASL", modeZPX)
	reg(0x17, "SLO", modeZPX)
	reg(0x18, "CLC", modeImplied)
	reg(0x19, "ORA", modeAbsoluteY)
	reg(0x1A, "NOP", modeImplied)
	reg(0x1B, "SLO", modeAbsoluteY)
	reg(0x1C, "NOP", modeAbsoluteX)
	reg(0x1D, "ORA", modeAbsoluteX)
	reg(0x1E, "ASL", modeAbsoluteX)
	reg(0x1F, "SLO", modeAbsoluteX)
	reg(0x20, "JSR", modeAbsolute)
	reg(0x21, "AND", modeIndirectX)
	reg(0x22, "KIL", modeImplied)
	reg(0x23, "RLA", modeIndirectX)
	reg(0x24, "BIT", modeZP)
	reg(0x25, "AND", modeZP)
	reg(0x26, "ROL", modeZP)
	reg(0x27, "RLA", modeZP)
	reg(0x28, "PLP", modeImplied)
	reg(0x29, "AND", modeImmediate)
	reg(0x2A, "ROL", modeImplied)
	reg(0x2B, "ANC", modeImmediate)
	reg(0x2C, "BIT", modeAbsolute)
	reg(0x2D, "AND", modeAbsolute)
	reg(0x2E, "ROL", modeAbsolute)
	reg(0x2F, "RLA", modeAbsolute)
	reg(0x30, "BMI", modeRelative)
	reg(0x31, "AND", modeIndirectY)
	reg(0x32, "KIL", modeImplied)
	reg(0x33, "RLA", modeIndirectY)
	reg(0x34, "NOP", modeZPX)
	reg(0x35, "AND", modeZPX)
	reg(0x36, "ROL", modeZPX)
	reg(0x37, "RLA", modeZPX)
	reg(0x38, "SEC", modeImplied)
	reg(0x39, "AND", modeAbsoluteY)
	reg(0x3A, "NOP", modeImplied)
	reg(0x3B, "RLA", modeAbsoluteY)
	reg(0x3C, "NOP", modeAbsoluteX)
	reg(0x3D, "AND", modeAbsoluteX)
	reg(0x3E, "ROL", modeAbsoluteX)
	reg(0x3F, "RLA", modeAbsoluteX)
	reg(0x40, "RTI", modeImplied)
	reg(0x41, "EOR", modeIndirectX)
	reg(0x42, "KIL", modeImplied)
	reg(0x43, "SRE", modeIndirectX)
	reg(0x44, "NOP", modeZP)
	reg(0x45, "EOR", modeZP)
	reg(0x46, "LSR", modeZP)
	reg(0x47, "SRE", modeZP)
	reg(0x48, "PHA", modeImplied)
	reg(0x49, "EOR", modeImmediate)
	reg(0x4A, "LSR", modeImplied)
	reg(0x4B, "ALR", modeImmediate)
	reg(0x4C, "JMP", modeAbsolute)
	reg(0x4D, "EOR", modeAbsolute)
	reg(0x4E, "LSR", modeAbsolute)
	reg(0x4F, "SRE", modeAbsolute)
	reg(0x50, "BVC", modeRelative)
	reg(0x51, "EOR", modeIndirectY)
	reg(0x52, "KIL", modeImplied)
	reg(0x53, "SRE", modeIndirectY)
	reg(0x54, "NOP", modeZPX)
	reg(0x55, "EOR", modeZPX)
	reg(0x56, "LSR", modeZPX)
	reg(0x57, "SRE", modeZPX)
	reg(0x58, "CLI", modeImplied)
	reg(0x59, "EOR", modeAbsoluteY)
	reg(0x5A, "NOP", modeImplied)
	reg(0x5B, "SRE", modeAbsoluteY)
	reg(0x5C, "NOP", modeAbsoluteX)
	reg(0x5D, "EOR", modeAbsoluteX)
	reg(0x5E, "LSR", modeAbsoluteX)
	reg(0x5F, "SRE", modeAbsoluteX)
	reg(0x60, "RTS", modeImplied)
	reg(0x61, "ADC", modeIndirectX)
	reg(0x62, "KIL", modeImplied)
	reg(0x63, "RRA", modeIndirectX)
	reg(0x64, "NOP", modeZP)
	reg(0x65, "ADC", modeZP)
	reg(0x66, "ROR", modeZP)
	reg(0x67, "RRA", modeZP)
	reg(0x68, "PLA", modeImplied)
	reg(0x69, "ADC", modeImmediate)
	reg(0x6A, "ROR", modeImplied)
	reg(0x6B, "ARR", modeImmediate)
	reg(0x6C, "JMP", modeIndirect)
	reg(0x6D, "ADC", modeAbsolute)
	reg(0x6E, "ROR", modeAbsolute)
	reg(0x6F, "RRA", modeAbsolute)
	reg(0x70, "BVS", modeRelative)
	reg(0x71, "ADC", modeIndirectY)
	reg(0x72, "KIL", modeImplied)
	reg(0x73, "RRA", modeIndirectY)
	reg(0x74, "NOP", modeZPX)
	reg(0x75, "ADC", modeZPX)
	reg(0x76, "ROR", modeZPX)
	reg(0x77, "RRA", modeZPX)
	reg(0x78, "SEI", modeImplied)
	reg(0x79, "ADC", modeAbsoluteY)
	reg(0x7A, "NOP", modeImplied)
	reg(0x7B, "RRA", modeAbsoluteY)
	reg(0x7C, "NOP", modeAbsoluteX)
	reg(0x7D, "ADC", modeAbsoluteX)
	reg(0x7E, "ROR", modeAbsoluteX)
	reg(0x7F, "RRA", modeAbsoluteX)
	reg(0x80, "NOP", modeImmediate)
	reg(0x81, "STA", modeIndirectX)
	reg(0x82, "NOP", modeImmediate)
	reg(0x83, "SAX", modeIndirectX)
	reg(0x84, "STY", modeZP)
	reg(0x85, "STA", modeZP)
	reg(0x86, "STX", modeZP)
	reg(0x87, "SAX", modeZP)
	reg(0x88, "DEY", modeImplied)
	reg(0x89, "NOP", modeImmediate)
	reg(0x8A, "TXA", modeImplied)
	reg(0x8B, "ANE", modeImmediate)
	reg(0x8C, "STY", modeAbsolute)
	reg(0x8D, "STA", modeAbsolute)
	reg(0x8E, "STX", modeAbsolute)
	reg(0x8F, "SAX", modeAbsolute)
	reg(0x90, "BCC", modeRelative)
	reg(0x91, "STA", modeIndirectY)
	reg(0x92, "KIL", modeImplied)
	reg(0x93, "AHX", modeIndirectY)
	reg(0x94, "STY", modeZPX)
	reg(0x95, "STA", modeZPX)
	reg(0x96, "STX", modeZPY)
	reg(0x97, "SAX", modeZPY)
	reg(0x98, "TYA", modeImplied)
	reg(0x99, "STA", modeAbsoluteY)
	reg(0x9A, "TXS", modeImplied)
	reg(0x9B, "SHS", modeAbsoluteY)
	reg(0x9C, "SHY", modeAbsoluteX)
	reg(0x9D, "STA", modeAbsoluteX)
	reg(0x9E, "SHX", modeAbsoluteY)
	reg(0x9F, "AHX", modeAbsoluteY)
	reg(0xA0, "LDY", modeImmediate)
	reg(0xA1, "LDA", modeIndirectX)
	reg(0xA2, "LDX", modeImmediate)
	reg(0xA3, "LAX", modeIndirectX)
	reg(0xA4, "LDY", modeZP)
	reg(0xA5, "LDA", modeZP)
	reg(0xA6, "LDX", modeZP)
	reg(0xA7, "LAX", modeZP)
	reg(0xA8, "TAY", modeImplied)
	reg(0xA9, "LDA", modeImmediate)
	reg(0xAA, "TAX", modeImplied)
	reg(0xAB, "LAX", modeImmediate)
	reg(0xAC, "LDY", modeAbsolute)
	reg(0xAD, "LDA", modeAbsolute)
	reg(0xAE, "LDX", modeAbsolute)
	reg(0xAF, "LAX", modeAbsolute)
	reg(0xB0, "BCS", modeRelative)
	reg(0xB1, "LDA", modeIndirectY)
	reg(0xB2, "KIL", modeImplied)
	reg(0xB3, "LAX", modeIndirectY)
	reg(0xB4, "LDY", modeZPX)
	reg(0xB5, "LDA", modeZPX)
	reg(0xB6, "LDX", modeZPY)
	reg(0xB7, "LAX", modeZPY)
	reg(0xB8, "CLV", modeImplied)
	reg(0xB9, "LDA", modeAbsoluteY)
	reg(0xBA, "TSX", modeImplied)
	reg(0xBB, "LAS", modeAbsoluteY)
	reg(0xBC, "LDY", modeAbsoluteX)
	reg(0xBD, "LDA", modeAbsoluteX)
	reg(0xBE, "LDX", modeAbsoluteY)
	reg(0xBF, "LAX", modeAbsoluteY)
	reg(0xC0, "CPY", modeImmediate)
	reg(0xC1, "CMP", modeIndirectX)
	reg(0xC2, "NOP", modeImmediate)
	reg(0xC3, "DCP", modeIndirectX)
	reg(0xC4, "CPY", modeZP)
	reg(0xC5, "CMP", modeZP)
	reg(0xC6, "DEC", modeZP)
	reg(0xC7, "DCP", modeZP)
	reg(0xC8, "INY", modeImplied)
	reg(0xC9, "CMP", modeImmediate)
	reg(0xCA, "DEX", modeImplied)
	reg(0xCB, "SBX", modeImmediate)
	reg(0xCC, "CPY", modeAbsolute)
	reg(0xCD, "CMP", modeAbsolute)
	reg(0xCE, "DEC", modeAbsolute)
	reg(0xCF, "DCP", modeAbsolute)
	reg(0xD0, "BNE", modeRelative)
	reg(0xD1, "CMP", modeIndirectY)
	reg(0xD2, "KIL", modeImplied)
	reg(0xD3, "DCP", modeIndirectY)
	reg(0xD4, "NOP", modeZPX)
	reg(0xD5, "CMP", modeZPX)
	reg(0xD6, "DEC", modeZPX)
	reg(0xD7, "DCP", modeZPX)
	reg(0xD8, "CLD", modeImplied)
	reg(0xD9, "CMP", modeAbsoluteY)
	reg(0xDA, "NOP", modeImplied)
	reg(0xDB, "DCP", modeAbsoluteY)
	reg(0xDC, "NOP", modeAbsoluteX)
	reg(0xDD, "CMP", modeAbsoluteX)
	reg(0xDE, "DEC", modeAbsoluteX)
	reg(0xDF, "DCP", modeAbsoluteX)
	reg(0xE0, "CPX", modeImmediate)
	reg(0xE1, "SBC", modeIndirectX)
	reg(0xE2, "NOP", modeImmediate)
	reg(0xE3, "ISC", modeIndirectX)
	reg(0xE4, "CPX", modeZP)
	reg(0xE5, "SBC", modeZP)
	reg(0xE6, "INC", modeZP)
	reg(0xE7, "ISC", modeZP)
	reg(0xE8, "INX", modeImplied)
	reg(0xE9, "SBC", modeImmediate)
	reg(0xEA, "NOP", modeImplied)
	reg(0xEB, "SBC", modeImmediate)
	reg(0xEC, "CPX", modeAbsolute)
	reg(0xED, "SBC", modeAbsolute)
	reg(0xEE, "INC", modeAbsolute)
	reg(0xEF, "ISC", modeAbsolute)
	reg(0xF0, "BEQ", modeRelative)
	reg(0xF1, "SBC", modeIndirectY)
	reg(0xF2, "KIL", modeImplied)
	reg(0xF3, "ISC", modeIndirectY)
	reg(0xF4, "NOP", modeZPX)
	reg(0xF5, "SBC", modeZPX)
	reg(0xF6, "INC", modeZPX)
	reg(0xF7, "ISC", modeZPX)
	reg(0xF8, "SED", modeImplied)
	reg(0xF9, "SBC", modeAbsoluteY)
	reg(0xFA, "NOP", modeImplied)
	reg(0xFB, "ISC", modeAbsoluteY)
	reg(0xFC, "NOP", modeAbsoluteX)
	reg(0xFD, "SBC", modeAbsoluteX)
	reg(0xFE, "INC", modeAbsoluteX)
	reg(0xFF, "ISC", modeAbsoluteX)
}

// Step disassembles the instruction at pc and returns its text plus the
// number of bytes the PC should advance to reach the next instruction.
// It does not interpret control flow: a JMP target is never followed.
// Step always reads up to two bytes past pc, so callers must ensure that
// range is backed by a valid address, even past the end of a short ROM.
func Step(pc uint16, mem memory.Addressable) (string, int) {
	opcode := mem.Read(pc)
	e := table[opcode]
	b1 := mem.Read(pc + 1)
	b2 := mem.Read(pc + 2)
	rel := pc + 2 + uint16(int16(int8(b1)))

	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	count := 2
	switch e.mode {
	case modeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", b1, e.mnemonic, b1)
	case modeZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", b1, e.mnemonic, b1)
	case modeZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", b1, e.mnemonic, b1)
	case modeZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", b1, e.mnemonic, b1)
	case modeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", b1, e.mnemonic, b1)
	case modeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", b1, e.mnemonic, b1)
	case modeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeImplied:
		out += fmt.Sprintf("        %s           ", e.mnemonic)
		count--
	case modeRelative:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", b1, e.mnemonic, b1, rel)
	}
	return out, count
}
