package cpu

// AddressingMode names one of the 6502's operand-fetching schemes.
// decode records pageCrossed for the indexed modes, but nothing reads it
// and opcodes.go's Cycles stay nominal — timing fidelity below the
// whole-instruction level is explicitly out of scope.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX
	IndirectY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
)

// decode resolves the operand for mode, advancing PC past however many
// operand bytes the mode consumes, and leaves the result in c.absAddress
// (the effective address, where one exists) and c.m (the operand value,
// read from that address for every mode except Immediate/Accumulator/
// Implied/Relative, which have no memory operand to pre-read, and
// Indirect, which only resolves JMP's target and leaves c.m untouched).
func (c *CPU) decode(mode AddressingMode) {
	c.pageCrossed = false

	switch mode {
	case Implied:
		// No operand.

	case Accumulator:
		c.m = c.Reg.A

	case Immediate:
		c.m = c.fetch()

	case ZeroPage:
		c.absAddress = uint16(c.fetch())
		c.m = c.Mem.Load(c.absAddress)

	case ZeroPageX:
		c.absAddress = uint16(byte(c.fetch() + c.Reg.X))
		c.m = c.Mem.Load(c.absAddress)

	case ZeroPageY:
		c.absAddress = uint16(byte(c.fetch() + c.Reg.Y))
		c.m = c.Mem.Load(c.absAddress)

	case IndirectX:
		zp := byte(c.fetch() + c.Reg.X)
		lo := c.Mem.Load(uint16(zp))
		hi := c.Mem.Load(uint16(byte(zp + 1)))
		c.absAddress = uint16(hi)<<8 | uint16(lo)
		c.m = c.Mem.Load(c.absAddress)

	case IndirectY:
		zp := c.fetch()
		lo := c.Mem.Load(uint16(zp))
		hi := c.Mem.Load(uint16(byte(zp + 1)))
		base := uint16(hi)<<8 | uint16(lo)
		c.absAddress = base + uint16(c.Reg.Y)
		c.pageCrossed = (base & 0xff00) != (c.absAddress & 0xff00)
		c.m = c.Mem.Load(c.absAddress)

	case Relative:
		// The offset is signed but is resolved relative to PC by the
		// branch instruction itself, once it knows whether it is taken.
		c.m = c.fetch()

	case Absolute:
		c.absAddress = c.fetch16()
		c.m = c.Mem.Load(c.absAddress)

	case AbsoluteX:
		base := c.fetch16()
		c.absAddress = base + uint16(c.Reg.X)
		c.pageCrossed = (base & 0xff00) != (c.absAddress & 0xff00)
		c.m = c.Mem.Load(c.absAddress)

	case AbsoluteY:
		base := c.fetch16()
		c.absAddress = base + uint16(c.Reg.Y)
		c.pageCrossed = (base & 0xff00) != (c.absAddress & 0xff00)
		c.m = c.Mem.Load(c.absAddress)

	case Indirect:
		// JMP ($xxxx) only: reproduces the well-known hardware bug where
		// the indirect pointer does not cross a page boundary. If the low
		// byte of the pointer is $FF, the high byte is fetched from the
		// start of the SAME page rather than the next one.
		ptr := c.fetch16()
		lo := c.Mem.Load(ptr)
		var hiAddr uint16
		if ptr&0x00ff == 0x00ff {
			hiAddr = ptr & 0xff00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.Mem.Load(hiAddr)
		c.absAddress = uint16(hi)<<8 | uint16(lo)
	}
}

// fetch16 reads a little-endian word from PC and advances PC by two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}
