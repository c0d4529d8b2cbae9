package cpu

// Each addressing-mode method advances PC past its operand bytes, sets
// addr (the effective address operations read/write through), and
// accumulates its base cycle cost -- including the page-cross penalty
// where the mode carries one. The opcode fetch itself is already
// accounted for by these base costs, per the addressing mode table.

func pageCross(base, effective uint16) bool {
	return base&0xFF00 != effective&0xFF00
}

func (c *CPU) modeImplied() {
	c.cycles += 2
}

func (c *CPU) modeImmediate() {
	c.addr = c.PC
	c.PC++
	c.cycles += 2
}

func (c *CPU) modeZP() {
	c.addr = uint16(c.bus.Read(c.PC))
	c.PC++
	c.cycles += 3
}

func (c *CPU) modeZPX() {
	c.addr = uint16((c.bus.Read(c.PC) + c.X) & 0xFF)
	c.PC++
	c.cycles += 4
}

func (c *CPU) modeZPY() {
	c.addr = uint16((c.bus.Read(c.PC) + c.Y) & 0xFF)
	c.PC++
	c.cycles += 4
}

func (c *CPU) modeAbsolute() {
	lo := uint16(c.bus.Read(c.PC))
	hi := uint16(c.bus.Read(c.PC + 1))
	c.PC += 2
	c.addr = hi<<8 | lo
	c.cycles += 4
}

func (c *CPU) modeAbsoluteX() {
	lo := uint16(c.bus.Read(c.PC))
	hi := uint16(c.bus.Read(c.PC + 1))
	c.PC += 2
	base := hi<<8 | lo
	c.addr = base + uint16(c.X)
	c.cycles += 4
	if pageCross(base, c.addr) {
		c.cycles++
	}
}

func (c *CPU) modeAbsoluteY() {
	lo := uint16(c.bus.Read(c.PC))
	hi := uint16(c.bus.Read(c.PC + 1))
	c.PC += 2
	base := hi<<8 | lo
	c.addr = base + uint16(c.Y)
	c.cycles += 4
	if pageCross(base, c.addr) {
		c.cycles++
	}
}

// modeIndirect implements JMP (ind)'s pointer fetch, including the 6502
// page-wrap bug: the high byte is read from (ptr & 0xFF00) | ((ptr+1) &
// 0xFF), not from ptr+1 when that would cross a page.
func (c *CPU) modeIndirect() {
	lo := uint16(c.bus.Read(c.PC))
	hi := uint16(c.bus.Read(c.PC + 1))
	c.PC += 2
	ptr := hi<<8 | lo
	rlo := uint16(c.bus.Read(ptr))
	rhi := uint16(c.bus.Read((ptr & 0xFF00) | ((ptr + 1) & 0xFF)))
	c.addr = rhi<<8 | rlo
	c.cycles += 5
}

func (c *CPU) modeIndirectX() {
	zp := (c.bus.Read(c.PC) + c.X) & 0xFF
	c.PC++
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16((zp + 1) & 0xFF)))
	c.addr = hi<<8 | lo
	c.cycles += 6
}

func (c *CPU) modeIndirectY() {
	zp := c.bus.Read(c.PC)
	c.PC++
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16((zp + 1) & 0xFF)))
	base := hi<<8 | lo
	c.addr = base + uint16(c.Y)
	c.cycles += 5
	if pageCross(base, c.addr) {
		c.cycles++
	}
}

func (c *CPU) modeRelative() {
	disp := int8(c.bus.Read(c.PC))
	c.PC++
	c.addr = uint16(int32(c.PC) + int32(disp))
	c.cycles += 2
}

// fnz sets Z and N from the low byte of v.
func (c *CPU) fnz(v uint16) {
	c.Z = v&0xFF == 0
	c.N = v&0x80 != 0
}

// fnzc is fnz plus the shift/add carry-out convention: C set when v's 9th
// bit is set.
func (c *CPU) fnzc(v uint16) {
	c.fnz(v)
	c.C = v&0x100 != 0
}

// fnzb is fnz plus the subtract borrow convention: C set when there was no
// borrow, i.e. the 9th bit is clear.
func (c *CPU) fnzb(v uint16) {
	c.fnz(v)
	c.C = v&0x100 == 0
}
