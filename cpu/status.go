package cpu

import "apple1/mask"

// StatusRegister is the 6502 P register: seven individually addressable
// flags. Overflow is derived by the canonical signed-overflow rule (see
// Registers.ADC) rather than aliased to Carry, and B/bit 5 are handled per
// hardware: always 1 when pushed, and never restored by PLP/RTI.
//
// Packed layout, bit 7 down to bit 0:
//
//	N V 1 B D I Z C
type StatusRegister struct {
	N bool // Negative
	V bool // Overflow
	B bool // Break
	D bool // Decimal (stored, never consulted by ADC/SBC)
	I bool // Interrupt disable
	Z bool // Zero
	C bool // Carry
}

// NewStatusRegister returns the power-on/reset value: all flags clear
// except B, which reads 1 in isolation.
func NewStatusRegister() StatusRegister {
	return StatusRegister{B: true}
}

// UpdateNZ sets N and Z from v, as nearly every instruction that touches A,
// X, Y, or a memory operand does.
func (p *StatusRegister) UpdateNZ(v byte) {
	p.N = v&0x80 != 0
	p.Z = v == 0
}

// UpdateNVZC sets N/Z from the truncated result, C from the 9th bit, and V
// aliased to C. This is NOT the general signed-overflow rule (see
// Registers.ADC) and must only be used where a carry-style overflow is the
// correct notion of V, which no official opcode reachable from this
// package needs — nothing in the package calls it (Increment and
// Decrement use UpdateNZ).
func (p *StatusRegister) UpdateNVZC(r uint16) {
	p.UpdateNZ(byte(r))
	p.C = r > 0xff
	p.V = p.C
}

// ToByte packs the flags into the hardware layout, with bit 5 forced to 1.
func (p StatusRegister) ToByte() byte {
	var b byte
	if p.N {
		b = mask.Set(b, mask.I1, 1)
	}
	if p.V {
		b = mask.Set(b, mask.I2, 1)
	}
	b = mask.Set(b, mask.I3, 1) // unused bit, always reads 1
	if p.B {
		b = mask.Set(b, mask.I4, 1)
	}
	if p.D {
		b = mask.Set(b, mask.I5, 1)
	}
	if p.I {
		b = mask.Set(b, mask.I6, 1)
	}
	if p.Z {
		b = mask.Set(b, mask.I7, 1)
	}
	if p.C {
		b = mask.Set(b, mask.I8, 1)
	}
	return b
}

// SetFromByte unpacks every flag from v, including B. Used by callers that
// want a fully deterministic P (tests, and SetFromByteKeepB before it puts
// B back), not directly by PLP/RTI — see SetFromByteKeepB.
func (p *StatusRegister) SetFromByte(v byte) {
	p.N = mask.IsSet(v, mask.I1)
	p.V = mask.IsSet(v, mask.I2)
	p.B = mask.IsSet(v, mask.I4)
	p.D = mask.IsSet(v, mask.I5)
	p.I = mask.IsSet(v, mask.I6)
	p.Z = mask.IsSet(v, mask.I7)
	p.C = mask.IsSet(v, mask.I8)
}

// SetFromByteKeepB unpacks N, V, D, I, Z, C from v but leaves B untouched,
// matching real 6502 behavior: PLP and RTI never restore B from the stack.
func (p *StatusRegister) SetFromByteKeepB(v byte) {
	keepB := p.B
	p.SetFromByte(v)
	p.B = keepB
}
