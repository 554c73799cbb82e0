package cpu

// Each function below is one mnemonic's Exec, wired to an opcode/mode pair
// in opcodes.go. By the time Exec runs, CPU.decode has already populated
// c.m (the operand value) and, for every memory-backed mode, c.absAddress
// (the effective address c.commit writes back to).

func opADC(c *CPU) { c.Reg.ADC(c.m) }
func opSBC(c *CPU) { c.Reg.SBC(c.m) }
func opAND(c *CPU) { c.Reg.AND(c.m) }
func opORA(c *CPU) { c.Reg.ORA(c.m) }
func opEOR(c *CPU) { c.Reg.EOR(c.m) }
func opBIT(c *CPU) { c.Reg.BIT(c.m) }

func opCMP(c *CPU) { c.Reg.Compare(c.Reg.A, c.m) }
func opCPX(c *CPU) { c.Reg.Compare(c.Reg.X, c.m) }
func opCPY(c *CPU) { c.Reg.Compare(c.Reg.Y, c.m) }

func opASL(c *CPU) { c.commit(ASL(&c.Reg.P, c.m)) }
func opLSR(c *CPU) { c.commit(LSR(&c.Reg.P, c.m)) }
func opROL(c *CPU) { c.commit(ROL(&c.Reg.P, c.m)) }
func opROR(c *CPU) { c.commit(ROR(&c.Reg.P, c.m)) }

func opINC(c *CPU) { c.commit(Increment(&c.Reg.P, c.m)) }
func opDEC(c *CPU) { c.commit(Decrement(&c.Reg.P, c.m)) }

func opINX(c *CPU) { c.Reg.X = Increment(&c.Reg.P, c.Reg.X) }
func opINY(c *CPU) { c.Reg.Y = Increment(&c.Reg.P, c.Reg.Y) }
func opDEX(c *CPU) { c.Reg.X = Decrement(&c.Reg.P, c.Reg.X) }
func opDEY(c *CPU) { c.Reg.Y = Decrement(&c.Reg.P, c.Reg.Y) }

func opLDA(c *CPU) { c.Reg.A = c.m; c.Reg.P.UpdateNZ(c.Reg.A) }
func opLDX(c *CPU) { c.Reg.X = c.m; c.Reg.P.UpdateNZ(c.Reg.X) }
func opLDY(c *CPU) { c.Reg.Y = c.m; c.Reg.P.UpdateNZ(c.Reg.Y) }

// STA/STX/STY write the register straight to the decoded address.
func opSTA(c *CPU) { c.Mem.Store(c.absAddress, c.Reg.A) }
func opSTX(c *CPU) { c.Mem.Store(c.absAddress, c.Reg.X) }
func opSTY(c *CPU) { c.Mem.Store(c.absAddress, c.Reg.Y) }

func opTAX(c *CPU) { c.Reg.X = c.Reg.A; c.Reg.P.UpdateNZ(c.Reg.X) }
func opTAY(c *CPU) { c.Reg.Y = c.Reg.A; c.Reg.P.UpdateNZ(c.Reg.Y) }
func opTXA(c *CPU) { c.Reg.A = c.Reg.X; c.Reg.P.UpdateNZ(c.Reg.A) }
func opTYA(c *CPU) { c.Reg.A = c.Reg.Y; c.Reg.P.UpdateNZ(c.Reg.A) }
func opTSX(c *CPU) { c.Reg.X = c.Reg.SP; c.Reg.P.UpdateNZ(c.Reg.X) }
func opTXS(c *CPU) { c.Reg.SP = c.Reg.X } // TXS famously does not touch flags

func opPHA(c *CPU) { c.push(c.Reg.A) }
func opPHP(c *CPU) {
	p := c.Reg.P
	p.B = true // a pushed P always reads with B (and bit 5) set
	c.push(p.ToByte())
}
func opPLA(c *CPU) { c.Reg.A = c.pop(); c.Reg.P.UpdateNZ(c.Reg.A) }
func opPLP(c *CPU) { c.Reg.P.SetFromByteKeepB(c.pop()) }

func opCLC(c *CPU) { c.Reg.P.C = false }
func opSEC(c *CPU) { c.Reg.P.C = true }
func opCLI(c *CPU) { c.Reg.P.I = false }
func opSEI(c *CPU) { c.Reg.P.I = true }
func opCLD(c *CPU) { c.Reg.P.D = false }
func opSED(c *CPU) { c.Reg.P.D = true }
func opCLV(c *CPU) { c.Reg.P.V = false }

func opNOP(c *CPU) {}

// JMP loads PC from the address decode resolved (Absolute or Indirect,
// including the page-boundary bug handled there).
func opJMP(c *CPU) { c.Reg.PC = c.absAddress }

// JSR pushes the address of the last byte of the JSR instruction (PC-1,
// since decode already advanced PC past all three bytes) and jumps. RTS
// pops that address and adds one back. This hardware-faithful convention —
// rather than pushing PC itself — is what makes RTS's pop+1 correct.
func opJSR(c *CPU) {
	c.push16(c.Reg.PC - 1)
	c.Reg.PC = c.absAddress
}

func opRTS(c *CPU) {
	c.Reg.PC = c.pop16() + 1
}

// BRK defaults to a simplified halt, which is what lets a standalone test
// ROM (no real IRQ vector, no OS underneath it) signal "I'm done" just by
// executing BRK. Setting CPU.HardwareBRK switches to the faithful
// interrupt sequence instead.
func opBRK(c *CPU) {
	if !c.HardwareBRK {
		c.Halted = true
		return
	}
	c.Reg.PC++ // BRK's operand byte (the "signature" byte) is skipped
	c.push16(c.Reg.PC)
	p := c.Reg.P
	p.B = true
	c.push(p.ToByte())
	c.Reg.P.I = true
	c.Reg.PC = c.Mem.Load16(0xfffe)
}

func opRTI(c *CPU) {
	c.Reg.P.SetFromByteKeepB(c.pop())
	c.Reg.PC = c.pop16()
}

// branch is shared by every conditional branch: if taken, PC moves by the
// signed 8-bit offset already fetched into c.m.
func (c *CPU) branch(taken bool) {
	if !taken {
		return
	}
	offset := int8(c.m)
	c.absAddress = uint16(int32(c.Reg.PC) + int32(offset))
	c.Reg.PC = c.absAddress
}

func opBCC(c *CPU) { c.branch(!c.Reg.P.C) }
func opBCS(c *CPU) { c.branch(c.Reg.P.C) }
func opBEQ(c *CPU) { c.branch(c.Reg.P.Z) }
func opBNE(c *CPU) { c.branch(!c.Reg.P.Z) }
func opBMI(c *CPU) { c.branch(c.Reg.P.N) }
func opBPL(c *CPU) { c.branch(!c.Reg.P.N) }
func opBVC(c *CPU) { c.branch(!c.Reg.P.V) }
func opBVS(c *CPU) { c.branch(c.Reg.P.V) }
