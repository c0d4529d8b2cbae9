package cpu

// opcodeTable is the fixed 256-entry dispatch table: each entry runs an
// addressing-mode function, the operation function, and -- for
// read-modify-write instructions -- the writeback that stores tmp back to
// addr. This is a plain data structure (a func per byte), not a decision
// tree, so every opcode is independently testable and the table's shape
// never has to change to add dispatch logic.
var opcodeTable [256]func(*CPU)

func init() {
	// 0x0_
	opcodeTable[0x00] = func(c *CPU) { c.modeImplied(); c.brk() }
	opcodeTable[0x01] = func(c *CPU) { c.modeIndirectX(); c.ora() }
	opcodeTable[0x02] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x03] = func(c *CPU) { c.modeIndirectX(); c.slo(); c.rmwWriteback() }
	opcodeTable[0x04] = func(c *CPU) { c.modeZP(); c.nop() }
	opcodeTable[0x05] = func(c *CPU) { c.modeZP(); c.ora() }
	opcodeTable[0x06] = func(c *CPU) { c.modeZP(); c.asl(); c.rmwWriteback() }
	opcodeTable[0x07] = func(c *CPU) { c.modeZP(); c.slo(); c.rmwWriteback() }
	opcodeTable[0x08] = func(c *CPU) { c.modeImplied(); c.php() }
	opcodeTable[0x09] = func(c *CPU) { c.modeImmediate(); c.ora() }
	opcodeTable[0x0A] = func(c *CPU) { c.modeImplied(); c.asla() }
	opcodeTable[0x0B] = func(c *CPU) { c.modeImmediate(); c.anc() }
	opcodeTable[0x0C] = func(c *CPU) { c.modeAbsolute(); c.nop() }
	opcodeTable[0x0D] = func(c *CPU) { c.modeAbsolute(); c.ora() }
	opcodeTable[0x0E] = func(c *CPU) { c.modeAbsolute(); c.asl(); c.rmwWriteback() }
	opcodeTable[0x0F] = func(c *CPU) { c.modeAbsolute(); c.slo(); c.rmwWriteback() }

	// 0x1_
	opcodeTable[0x10] = func(c *CPU) { c.modeRelative(); c.bpl() }
	opcodeTable[0x11] = func(c *CPU) { c.modeIndirectY(); c.ora() }
	opcodeTable[0x12] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x13] = func(c *CPU) { c.modeIndirectY(); c.slo(); c.rmwWriteback() }
	opcodeTable[0x14] = func(c *CPU) { c.modeZPX(); c.nop() }
	opcodeTable[0x15] = func(c *CPU) { c.modeZPX(); c.ora() }
	opcodeTable[0x16] = func(c *CPU) { c.modeZPX(); c.asl(); c.rmwWriteback() }
	opcodeTable[0x17] = func(c *CPU) { c.modeZPX(); c.slo(); c.rmwWriteback() }
	opcodeTable[0x18] = func(c *CPU) { c.modeImplied(); c.clc() }
	opcodeTable[0x19] = func(c *CPU) { c.modeAbsoluteY(); c.ora() }
	opcodeTable[0x1A] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0x1B] = func(c *CPU) { c.modeAbsoluteY(); c.slo(); c.rmwWriteback() }
	opcodeTable[0x1C] = func(c *CPU) { c.modeAbsoluteX(); c.nop() }
	opcodeTable[0x1D] = func(c *CPU) { c.modeAbsoluteX(); c.ora() }
	opcodeTable[0x1E] = func(c *CPU) { c.modeAbsoluteX(); c.asl(); c.rmwWriteback() }
	opcodeTable[0x1F] = func(c *CPU) { c.modeAbsoluteX(); c.slo(); c.rmwWriteback() }

	// 0x2_
	opcodeTable[0x20] = func(c *CPU) { c.modeAbsolute(); c.jsr() }
	opcodeTable[0x21] = func(c *CPU) { c.modeIndirectX(); c.and() }
	opcodeTable[0x22] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x23] = func(c *CPU) { c.modeIndirectX(); c.rla(); c.rmwWriteback() }
	opcodeTable[0x24] = func(c *CPU) { c.modeZP(); c.bit() }
	opcodeTable[0x25] = func(c *CPU) { c.modeZP(); c.and() }
	opcodeTable[0x26] = func(c *CPU) { c.modeZP(); c.rol(); c.rmwWriteback() }
	opcodeTable[0x27] = func(c *CPU) { c.modeZP(); c.rla(); c.rmwWriteback() }
	opcodeTable[0x28] = func(c *CPU) { c.modeImplied(); c.plp() }
	opcodeTable[0x29] = func(c *CPU) { c.modeImmediate(); c.and() }
	opcodeTable[0x2A] = func(c *CPU) { c.modeImplied(); c.rola() }
	opcodeTable[0x2B] = func(c *CPU) { c.modeImmediate(); c.anc() }
	opcodeTable[0x2C] = func(c *CPU) { c.modeAbsolute(); c.bit() }
	opcodeTable[0x2D] = func(c *CPU) { c.modeAbsolute(); c.and() }
	opcodeTable[0x2E] = func(c *CPU) { c.modeAbsolute(); c.rol(); c.rmwWriteback() }
	opcodeTable[0x2F] = func(c *CPU) { c.modeAbsolute(); c.rla(); c.rmwWriteback() }

	// 0x3_
	opcodeTable[0x30] = func(c *CPU) { c.modeRelative(); c.bmi() }
	opcodeTable[0x31] = func(c *CPU) { c.modeIndirectY(); c.and() }
	opcodeTable[0x32] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x33] = func(c *CPU) { c.modeIndirectY(); c.rla(); c.rmwWriteback() }
	opcodeTable[0x34] = func(c *CPU) { c.modeZPX(); c.nop() }
	opcodeTable[0x35] = func(c *CPU) { c.modeZPX(); c.and() }
	opcodeTable[0x36] = func(c *CPU) { c.modeZPX(); c.rol(); c.rmwWriteback() }
	opcodeTable[0x37] = func(c *CPU) { c.modeZPX(); c.rla(); c.rmwWriteback() }
	opcodeTable[0x38] = func(c *CPU) { c.modeImplied(); c.sec() }
	opcodeTable[0x39] = func(c *CPU) { c.modeAbsoluteY(); c.and() }
	opcodeTable[0x3A] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0x3B] = func(c *CPU) { c.modeAbsoluteY(); c.rla(); c.rmwWriteback() }
	opcodeTable[0x3C] = func(c *CPU) { c.modeAbsoluteX(); c.nop() }
	opcodeTable[0x3D] = func(c *CPU) { c.modeAbsoluteX(); c.and() }
	opcodeTable[0x3E] = func(c *CPU) { c.modeAbsoluteX(); c.rol(); c.rmwWriteback() }
	opcodeTable[0x3F] = func(c *CPU) { c.modeAbsoluteX(); c.rla(); c.rmwWriteback() }

	// 0x4_
	opcodeTable[0x40] = func(c *CPU) { c.modeImplied(); c.rti() }
	opcodeTable[0x41] = func(c *CPU) { c.modeIndirectX(); c.eor() }
	opcodeTable[0x42] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x43] = func(c *CPU) { c.modeIndirectX(); c.sre(); c.rmwWriteback() }
	opcodeTable[0x44] = func(c *CPU) { c.modeZP(); c.nop() }
	opcodeTable[0x45] = func(c *CPU) { c.modeZP(); c.eor() }
	opcodeTable[0x46] = func(c *CPU) { c.modeZP(); c.lsr(); c.rmwWriteback() }
	opcodeTable[0x47] = func(c *CPU) { c.modeZP(); c.sre(); c.rmwWriteback() }
	opcodeTable[0x48] = func(c *CPU) { c.modeImplied(); c.pha() }
	opcodeTable[0x49] = func(c *CPU) { c.modeImmediate(); c.eor() }
	opcodeTable[0x4A] = func(c *CPU) { c.modeImplied(); c.lsra() }
	opcodeTable[0x4B] = func(c *CPU) { c.modeImmediate(); c.alr() }
	opcodeTable[0x4C] = func(c *CPU) { c.modeAbsolute(); c.jmp() }
	opcodeTable[0x4D] = func(c *CPU) { c.modeAbsolute(); c.eor() }
	opcodeTable[0x4E] = func(c *CPU) { c.modeAbsolute(); c.lsr(); c.rmwWriteback() }
	opcodeTable[0x4F] = func(c *CPU) { c.modeAbsolute(); c.sre(); c.rmwWriteback() }

	// 0x5_
	opcodeTable[0x50] = func(c *CPU) { c.modeRelative(); c.bvc() }
	opcodeTable[0x51] = func(c *CPU) { c.modeIndirectY(); c.eor() }
	opcodeTable[0x52] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x53] = func(c *CPU) { c.modeIndirectY(); c.sre(); c.rmwWriteback() }
	opcodeTable[0x54] = func(c *CPU) { c.modeZPX(); c.nop() }
	opcodeTable[0x55] = func(c *CPU) { c.modeZPX(); c.eor() }
	opcodeTable[0x56] = func(c *CPU) { c.modeZPX(); c.lsr(); c.rmwWriteback() }
	opcodeTable[0x57] = func(c *CPU) { c.modeZPX(); c.sre(); c.rmwWriteback() }
	opcodeTable[0x58] = func(c *CPU) { c.modeImplied(); c.cli() }
	opcodeTable[0x59] = func(c *CPU) { c.modeAbsoluteY(); c.eor() }
	opcodeTable[0x5A] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0x5B] = func(c *CPU) { c.modeAbsoluteY(); c.sre(); c.rmwWriteback() }
	opcodeTable[0x5C] = func(c *CPU) { c.modeAbsoluteX(); c.nop() }
	opcodeTable[0x5D] = func(c *CPU) { c.modeAbsoluteX(); c.eor() }
	opcodeTable[0x5E] = func(c *CPU) { c.modeAbsoluteX(); c.lsr(); c.rmwWriteback() }
	opcodeTable[0x5F] = func(c *CPU) { c.modeAbsoluteX(); c.sre(); c.rmwWriteback() }

	// 0x6_
	opcodeTable[0x60] = func(c *CPU) { c.modeImplied(); c.rts() }
	opcodeTable[0x61] = func(c *CPU) { c.modeIndirectX(); c.opADC() }
	opcodeTable[0x62] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x63] = func(c *CPU) { c.modeIndirectX(); c.rra(); c.rmwWriteback() }
	opcodeTable[0x64] = func(c *CPU) { c.modeZP(); c.nop() }
	opcodeTable[0x65] = func(c *CPU) { c.modeZP(); c.opADC() }
	opcodeTable[0x66] = func(c *CPU) { c.modeZP(); c.ror(); c.rmwWriteback() }
	opcodeTable[0x67] = func(c *CPU) { c.modeZP(); c.rra(); c.rmwWriteback() }
	opcodeTable[0x68] = func(c *CPU) { c.modeImplied(); c.pla() }
	opcodeTable[0x69] = func(c *CPU) { c.modeImmediate(); c.opADC() }
	opcodeTable[0x6A] = func(c *CPU) { c.modeImplied(); c.rora() }
	opcodeTable[0x6B] = func(c *CPU) { c.modeImmediate(); c.arr() }
	opcodeTable[0x6C] = func(c *CPU) { c.modeIndirect(); c.jmpInd() }
	opcodeTable[0x6D] = func(c *CPU) { c.modeAbsolute(); c.opADC() }
	opcodeTable[0x6E] = func(c *CPU) { c.modeAbsolute(); c.ror(); c.rmwWriteback() }
	opcodeTable[0x6F] = func(c *CPU) { c.modeAbsolute(); c.rra(); c.rmwWriteback() }

	// 0x7_
	opcodeTable[0x70] = func(c *CPU) { c.modeRelative(); c.bvs() }
	opcodeTable[0x71] = func(c *CPU) { c.modeIndirectY(); c.opADC() }
	opcodeTable[0x72] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x73] = func(c *CPU) { c.modeIndirectY(); c.rra(); c.rmwWriteback() }
	opcodeTable[0x74] = func(c *CPU) { c.modeZPX(); c.nop() }
	opcodeTable[0x75] = func(c *CPU) { c.modeZPX(); c.opADC() }
	opcodeTable[0x76] = func(c *CPU) { c.modeZPX(); c.ror(); c.rmwWriteback() }
	opcodeTable[0x77] = func(c *CPU) { c.modeZPX(); c.rra(); c.rmwWriteback() }
	opcodeTable[0x78] = func(c *CPU) { c.modeImplied(); c.sei() }
	opcodeTable[0x79] = func(c *CPU) { c.modeAbsoluteY(); c.opADC() }
	opcodeTable[0x7A] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0x7B] = func(c *CPU) { c.modeAbsoluteY(); c.rra(); c.rmwWriteback() }
	opcodeTable[0x7C] = func(c *CPU) { c.modeAbsoluteX(); c.nop() }
	opcodeTable[0x7D] = func(c *CPU) { c.modeAbsoluteX(); c.opADC() }
	opcodeTable[0x7E] = func(c *CPU) { c.modeAbsoluteX(); c.ror(); c.rmwWriteback() }
	opcodeTable[0x7F] = func(c *CPU) { c.modeAbsoluteX(); c.rra(); c.rmwWriteback() }

	// 0x8_
	opcodeTable[0x80] = func(c *CPU) { c.modeImmediate(); c.nop() }
	opcodeTable[0x81] = func(c *CPU) { c.modeIndirectX(); c.sta() }
	opcodeTable[0x82] = func(c *CPU) { c.modeImmediate(); c.nop() }
	opcodeTable[0x83] = func(c *CPU) { c.modeIndirectX(); c.sax() }
	opcodeTable[0x84] = func(c *CPU) { c.modeZP(); c.sty() }
	opcodeTable[0x85] = func(c *CPU) { c.modeZP(); c.sta() }
	opcodeTable[0x86] = func(c *CPU) { c.modeZP(); c.stx() }
	opcodeTable[0x87] = func(c *CPU) { c.modeZP(); c.sax() }
	opcodeTable[0x88] = func(c *CPU) { c.modeImplied(); c.dey() }
	opcodeTable[0x89] = func(c *CPU) { c.modeImmediate(); c.nop() }
	opcodeTable[0x8A] = func(c *CPU) { c.modeImplied(); c.txa() }
	opcodeTable[0x8B] = func(c *CPU) { c.modeImmediate(); c.ane() }
	opcodeTable[0x8C] = func(c *CPU) { c.modeAbsolute(); c.sty() }
	opcodeTable[0x8D] = func(c *CPU) { c.modeAbsolute(); c.sta() }
	opcodeTable[0x8E] = func(c *CPU) { c.modeAbsolute(); c.stx() }
	opcodeTable[0x8F] = func(c *CPU) { c.modeAbsolute(); c.sax() }

	// 0x9_
	opcodeTable[0x90] = func(c *CPU) { c.modeRelative(); c.bcc() }
	opcodeTable[0x91] = func(c *CPU) { c.modeIndirectY(); c.sta() }
	opcodeTable[0x92] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0x93] = func(c *CPU) { c.modeIndirectY(); c.ahx() }
	opcodeTable[0x94] = func(c *CPU) { c.modeZPX(); c.sty() }
	opcodeTable[0x95] = func(c *CPU) { c.modeZPX(); c.sta() }
	opcodeTable[0x96] = func(c *CPU) { c.modeZPY(); c.stx() }
	opcodeTable[0x97] = func(c *CPU) { c.modeZPY(); c.sax() }
	opcodeTable[0x98] = func(c *CPU) { c.modeImplied(); c.tya() }
	opcodeTable[0x99] = func(c *CPU) { c.modeAbsoluteY(); c.sta() }
	opcodeTable[0x9A] = func(c *CPU) { c.modeImplied(); c.txs() }
	opcodeTable[0x9B] = func(c *CPU) { c.modeAbsoluteY(); c.shs() }
	opcodeTable[0x9C] = func(c *CPU) { c.modeAbsoluteX(); c.shy() }
	opcodeTable[0x9D] = func(c *CPU) { c.modeAbsoluteX(); c.sta() }
	opcodeTable[0x9E] = func(c *CPU) { c.modeAbsoluteY(); c.shx() }
	opcodeTable[0x9F] = func(c *CPU) { c.modeAbsoluteY(); c.ahx() }

	// 0xA_
	opcodeTable[0xA0] = func(c *CPU) { c.modeImmediate(); c.ldy() }
	opcodeTable[0xA1] = func(c *CPU) { c.modeIndirectX(); c.lda() }
	opcodeTable[0xA2] = func(c *CPU) { c.modeImmediate(); c.ldx() }
	opcodeTable[0xA3] = func(c *CPU) { c.modeIndirectX(); c.lax() }
	opcodeTable[0xA4] = func(c *CPU) { c.modeZP(); c.ldy() }
	opcodeTable[0xA5] = func(c *CPU) { c.modeZP(); c.lda() }
	opcodeTable[0xA6] = func(c *CPU) { c.modeZP(); c.ldx() }
	opcodeTable[0xA7] = func(c *CPU) { c.modeZP(); c.lax() }
	opcodeTable[0xA8] = func(c *CPU) { c.modeImplied(); c.tay() }
	opcodeTable[0xA9] = func(c *CPU) { c.modeImmediate(); c.lda() }
	opcodeTable[0xAA] = func(c *CPU) { c.modeImplied(); c.tax() }
	opcodeTable[0xAB] = func(c *CPU) { c.modeImmediate(); c.lax() }
	opcodeTable[0xAC] = func(c *CPU) { c.modeAbsolute(); c.ldy() }
	opcodeTable[0xAD] = func(c *CPU) { c.modeAbsolute(); c.lda() }
	opcodeTable[0xAE] = func(c *CPU) { c.modeAbsolute(); c.ldx() }
	opcodeTable[0xAF] = func(c *CPU) { c.modeAbsolute(); c.lax() }

	// 0xB_
	opcodeTable[0xB0] = func(c *CPU) { c.modeRelative(); c.bcs() }
	opcodeTable[0xB1] = func(c *CPU) { c.modeIndirectY(); c.lda() }
	opcodeTable[0xB2] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0xB3] = func(c *CPU) { c.modeIndirectY(); c.lax() }
	opcodeTable[0xB4] = func(c *CPU) { c.modeZPX(); c.ldy() }
	opcodeTable[0xB5] = func(c *CPU) { c.modeZPX(); c.lda() }
	opcodeTable[0xB6] = func(c *CPU) { c.modeZPY(); c.ldx() }
	opcodeTable[0xB7] = func(c *CPU) { c.modeZPY(); c.lax() }
	opcodeTable[0xB8] = func(c *CPU) { c.modeImplied(); c.clv() }
	opcodeTable[0xB9] = func(c *CPU) { c.modeAbsoluteY(); c.lda() }
	opcodeTable[0xBA] = func(c *CPU) { c.modeImplied(); c.tsx() }
	opcodeTable[0xBB] = func(c *CPU) { c.modeAbsoluteY(); c.las() }
	opcodeTable[0xBC] = func(c *CPU) { c.modeAbsoluteX(); c.ldy() }
	opcodeTable[0xBD] = func(c *CPU) { c.modeAbsoluteX(); c.lda() }
	opcodeTable[0xBE] = func(c *CPU) { c.modeAbsoluteY(); c.ldx() }
	opcodeTable[0xBF] = func(c *CPU) { c.modeAbsoluteY(); c.lax() }

	// 0xC_
	opcodeTable[0xC0] = func(c *CPU) { c.modeImmediate(); c.cpy() }
	opcodeTable[0xC1] = func(c *CPU) { c.modeIndirectX(); c.cmp() }
	opcodeTable[0xC2] = func(c *CPU) { c.modeImmediate(); c.nop() }
	opcodeTable[0xC3] = func(c *CPU) { c.modeIndirectX(); c.dcp(); c.rmwWriteback() }
	opcodeTable[0xC4] = func(c *CPU) { c.modeZP(); c.cpy() }
	opcodeTable[0xC5] = func(c *CPU) { c.modeZP(); c.cmp() }
	opcodeTable[0xC6] = func(c *CPU) { c.modeZP(); c.dec(); c.rmwWriteback() }
	opcodeTable[0xC7] = func(c *CPU) { c.modeZP(); c.dcp(); c.rmwWriteback() }
	opcodeTable[0xC8] = func(c *CPU) { c.modeImplied(); c.iny() }
	opcodeTable[0xC9] = func(c *CPU) { c.modeImmediate(); c.cmp() }
	opcodeTable[0xCA] = func(c *CPU) { c.modeImplied(); c.dex() }
	opcodeTable[0xCB] = func(c *CPU) { c.modeImmediate(); c.sbx() }
	opcodeTable[0xCC] = func(c *CPU) { c.modeAbsolute(); c.cpy() }
	opcodeTable[0xCD] = func(c *CPU) { c.modeAbsolute(); c.cmp() }
	opcodeTable[0xCE] = func(c *CPU) { c.modeAbsolute(); c.dec(); c.rmwWriteback() }
	opcodeTable[0xCF] = func(c *CPU) { c.modeAbsolute(); c.dcp(); c.rmwWriteback() }

	// 0xD_
	opcodeTable[0xD0] = func(c *CPU) { c.modeRelative(); c.bne() }
	opcodeTable[0xD1] = func(c *CPU) { c.modeIndirectY(); c.cmp() }
	opcodeTable[0xD2] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0xD3] = func(c *CPU) { c.modeIndirectY(); c.dcp(); c.rmwWriteback() }
	opcodeTable[0xD4] = func(c *CPU) { c.modeZPX(); c.nop() }
	opcodeTable[0xD5] = func(c *CPU) { c.modeZPX(); c.cmp() }
	opcodeTable[0xD6] = func(c *CPU) { c.modeZPX(); c.dec(); c.rmwWriteback() }
	opcodeTable[0xD7] = func(c *CPU) { c.modeZPX(); c.dcp(); c.rmwWriteback() }
	opcodeTable[0xD8] = func(c *CPU) { c.modeImplied(); c.cld() }
	opcodeTable[0xD9] = func(c *CPU) { c.modeAbsoluteY(); c.cmp() }
	opcodeTable[0xDA] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0xDB] = func(c *CPU) { c.modeAbsoluteY(); c.dcp(); c.rmwWriteback() }
	opcodeTable[0xDC] = func(c *CPU) { c.modeAbsoluteX(); c.nop() }
	opcodeTable[0xDD] = func(c *CPU) { c.modeAbsoluteX(); c.cmp() }
	opcodeTable[0xDE] = func(c *CPU) { c.modeAbsoluteX(); c.dec(); c.rmwWriteback() }
	opcodeTable[0xDF] = func(c *CPU) { c.modeAbsoluteX(); c.dcp(); c.rmwWriteback() }

	// 0xE_
	opcodeTable[0xE0] = func(c *CPU) { c.modeImmediate(); c.cpx() }
	opcodeTable[0xE1] = func(c *CPU) { c.modeIndirectX(); c.opSBC() }
	opcodeTable[0xE2] = func(c *CPU) { c.modeImmediate(); c.nop() }
	opcodeTable[0xE3] = func(c *CPU) { c.modeIndirectX(); c.isc(); c.rmwWriteback() }
	opcodeTable[0xE4] = func(c *CPU) { c.modeZP(); c.cpx() }
	opcodeTable[0xE5] = func(c *CPU) { c.modeZP(); c.opSBC() }
	opcodeTable[0xE6] = func(c *CPU) { c.modeZP(); c.inc(); c.rmwWriteback() }
	opcodeTable[0xE7] = func(c *CPU) { c.modeZP(); c.isc(); c.rmwWriteback() }
	opcodeTable[0xE8] = func(c *CPU) { c.modeImplied(); c.inx() }
	opcodeTable[0xE9] = func(c *CPU) { c.modeImmediate(); c.opSBC() }
	opcodeTable[0xEA] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0xEB] = func(c *CPU) { c.modeImmediate(); c.opSBC() }
	opcodeTable[0xEC] = func(c *CPU) { c.modeAbsolute(); c.cpx() }
	opcodeTable[0xED] = func(c *CPU) { c.modeAbsolute(); c.opSBC() }
	opcodeTable[0xEE] = func(c *CPU) { c.modeAbsolute(); c.inc(); c.rmwWriteback() }
	opcodeTable[0xEF] = func(c *CPU) { c.modeAbsolute(); c.isc(); c.rmwWriteback() }

	// 0xF_
	opcodeTable[0xF0] = func(c *CPU) { c.modeRelative(); c.beq() }
	opcodeTable[0xF1] = func(c *CPU) { c.modeIndirectY(); c.opSBC() }
	opcodeTable[0xF2] = func(c *CPU) { c.modeImplied(); c.kil() }
	opcodeTable[0xF3] = func(c *CPU) { c.modeIndirectY(); c.isc(); c.rmwWriteback() }
	opcodeTable[0xF4] = func(c *CPU) { c.modeZPX(); c.nop() }
	opcodeTable[0xF5] = func(c *CPU) { c.modeZPX(); c.opSBC() }
	opcodeTable[0xF6] = func(c *CPU) { c.modeZPX(); c.inc(); c.rmwWriteback() }
	opcodeTable[0xF7] = func(c *CPU) { c.modeZPX(); c.isc(); c.rmwWriteback() }
	opcodeTable[0xF8] = func(c *CPU) { c.modeImplied(); c.sed() }
	opcodeTable[0xF9] = func(c *CPU) { c.modeAbsoluteY(); c.opSBC() }
	opcodeTable[0xFA] = func(c *CPU) { c.modeImplied(); c.nop() }
	opcodeTable[0xFB] = func(c *CPU) { c.modeAbsoluteY(); c.isc(); c.rmwWriteback() }
	opcodeTable[0xFC] = func(c *CPU) { c.modeAbsoluteX(); c.nop() }
	opcodeTable[0xFD] = func(c *CPU) { c.modeAbsoluteX(); c.opSBC() }
	opcodeTable[0xFE] = func(c *CPU) { c.modeAbsoluteX(); c.inc(); c.rmwWriteback() }
	opcodeTable[0xFF] = func(c *CPU) { c.modeAbsoluteX(); c.isc(); c.rmwWriteback() }
}
