package cpu

// Opcode binds one byte value to the addressing mode that supplies its
// operand, the Exec function that implements it, a mnemonic for
// disassembly/debugging, and a nominal cycle count. Cycles is purely
// informational (CPU.Step only adds it to the running CPU.Cycles total);
// nothing in CPU.Step uses it to gate timing, since
// instruction-level rather than cycle-level fidelity is the target here.
type Opcode struct {
	Mode   AddressingMode
	Cycles byte
	Exec   func(*CPU)
	Name   string
}

// Opcodes is the full table of official (documented) 6502 opcodes. There
// is deliberately no entry for undocumented/illegal opcodes: CPU.Step
// treats a missing entry as an illegal-instruction halt, which is the
// correct behavior for every byte value a real assembler would never
// emit.
var Opcodes = map[byte]Opcode{
	0x69: {Immediate, 2, opADC, "ADC"},
	0x65: {ZeroPage, 3, opADC, "ADC"},
	0x75: {ZeroPageX, 4, opADC, "ADC"},
	0x6D: {Absolute, 4, opADC, "ADC"},
	0x7D: {AbsoluteX, 4, opADC, "ADC"},
	0x79: {AbsoluteY, 4, opADC, "ADC"},
	0x61: {IndirectX, 6, opADC, "ADC"},
	0x71: {IndirectY, 5, opADC, "ADC"},

	0x29: {Immediate, 2, opAND, "AND"},
	0x25: {ZeroPage, 3, opAND, "AND"},
	0x35: {ZeroPageX, 4, opAND, "AND"},
	0x2D: {Absolute, 4, opAND, "AND"},
	0x3D: {AbsoluteX, 4, opAND, "AND"},
	0x39: {AbsoluteY, 4, opAND, "AND"},
	0x21: {IndirectX, 6, opAND, "AND"},
	0x31: {IndirectY, 5, opAND, "AND"},

	0x0A: {Accumulator, 2, opASL, "ASL"},
	0x06: {ZeroPage, 5, opASL, "ASL"},
	0x16: {ZeroPageX, 6, opASL, "ASL"},
	0x0E: {Absolute, 6, opASL, "ASL"},
	0x1E: {AbsoluteX, 7, opASL, "ASL"},

	0x90: {Relative, 2, opBCC, "BCC"},
	0xB0: {Relative, 2, opBCS, "BCS"},
	0xF0: {Relative, 2, opBEQ, "BEQ"},

	0x24: {ZeroPage, 3, opBIT, "BIT"},
	0x2C: {Absolute, 4, opBIT, "BIT"},

	0x30: {Relative, 2, opBMI, "BMI"},
	0xD0: {Relative, 2, opBNE, "BNE"},
	0x10: {Relative, 2, opBPL, "BPL"},

	0x00: {Implied, 7, opBRK, "BRK"},

	0x50: {Relative, 2, opBVC, "BVC"},
	0x70: {Relative, 2, opBVS, "BVS"},

	0x18: {Implied, 2, opCLC, "CLC"},
	0xD8: {Implied, 2, opCLD, "CLD"},
	0x58: {Implied, 2, opCLI, "CLI"},
	0xB8: {Implied, 2, opCLV, "CLV"},

	0xC9: {Immediate, 2, opCMP, "CMP"},
	0xC5: {ZeroPage, 3, opCMP, "CMP"},
	0xD5: {ZeroPageX, 4, opCMP, "CMP"},
	0xCD: {Absolute, 4, opCMP, "CMP"},
	0xDD: {AbsoluteX, 4, opCMP, "CMP"},
	0xD9: {AbsoluteY, 4, opCMP, "CMP"},
	0xC1: {IndirectX, 6, opCMP, "CMP"},
	0xD1: {IndirectY, 5, opCMP, "CMP"},

	0xE0: {Immediate, 2, opCPX, "CPX"},
	0xE4: {ZeroPage, 3, opCPX, "CPX"},
	0xEC: {Absolute, 4, opCPX, "CPX"},

	0xC0: {Immediate, 2, opCPY, "CPY"},
	0xC4: {ZeroPage, 3, opCPY, "CPY"},
	0xCC: {Absolute, 4, opCPY, "CPY"},

	0xC6: {ZeroPage, 5, opDEC, "DEC"},
	0xD6: {ZeroPageX, 6, opDEC, "DEC"},
	0xCE: {Absolute, 6, opDEC, "DEC"},
	0xDE: {AbsoluteX, 7, opDEC, "DEC"},

	0xCA: {Implied, 2, opDEX, "DEX"},
	0x88: {Implied, 2, opDEY, "DEY"},

	0x49: {Immediate, 2, opEOR, "EOR"},
	0x45: {ZeroPage, 3, opEOR, "EOR"},
	0x55: {ZeroPageX, 4, opEOR, "EOR"},
	0x4D: {Absolute, 4, opEOR, "EOR"},
	0x5D: {AbsoluteX, 4, opEOR, "EOR"},
	0x59: {AbsoluteY, 4, opEOR, "EOR"},
	0x41: {IndirectX, 6, opEOR, "EOR"},
	0x51: {IndirectY, 5, opEOR, "EOR"},

	0xE6: {ZeroPage, 5, opINC, "INC"},
	0xF6: {ZeroPageX, 6, opINC, "INC"},
	0xEE: {Absolute, 6, opINC, "INC"},
	0xFE: {AbsoluteX, 7, opINC, "INC"},

	0xE8: {Implied, 2, opINX, "INX"},
	0xC8: {Implied, 2, opINY, "INY"},

	0x4C: {Absolute, 3, opJMP, "JMP"},
	0x6C: {Indirect, 5, opJMP, "JMP"},

	0x20: {Absolute, 6, opJSR, "JSR"},

	0xA9: {Immediate, 2, opLDA, "LDA"},
	0xA5: {ZeroPage, 3, opLDA, "LDA"},
	0xB5: {ZeroPageX, 4, opLDA, "LDA"},
	0xAD: {Absolute, 4, opLDA, "LDA"},
	0xBD: {AbsoluteX, 4, opLDA, "LDA"},
	0xB9: {AbsoluteY, 4, opLDA, "LDA"},
	0xA1: {IndirectX, 6, opLDA, "LDA"},
	0xB1: {IndirectY, 5, opLDA, "LDA"},

	0xA2: {Immediate, 2, opLDX, "LDX"},
	0xA6: {ZeroPage, 3, opLDX, "LDX"},
	0xB6: {ZeroPageY, 4, opLDX, "LDX"},
	0xAE: {Absolute, 4, opLDX, "LDX"},
	0xBE: {AbsoluteY, 4, opLDX, "LDX"},

	0xA0: {Immediate, 2, opLDY, "LDY"},
	0xA4: {ZeroPage, 3, opLDY, "LDY"},
	0xB4: {ZeroPageX, 4, opLDY, "LDY"},
	0xAC: {Absolute, 4, opLDY, "LDY"},
	0xBC: {AbsoluteX, 4, opLDY, "LDY"},

	0x4A: {Accumulator, 2, opLSR, "LSR"},
	0x46: {ZeroPage, 5, opLSR, "LSR"},
	0x56: {ZeroPageX, 6, opLSR, "LSR"},
	0x4E: {Absolute, 6, opLSR, "LSR"},
	0x5E: {AbsoluteX, 7, opLSR, "LSR"},

	0xEA: {Implied, 2, opNOP, "NOP"},

	0x09: {Immediate, 2, opORA, "ORA"},
	0x05: {ZeroPage, 3, opORA, "ORA"},
	0x15: {ZeroPageX, 4, opORA, "ORA"},
	0x0D: {Absolute, 4, opORA, "ORA"},
	0x1D: {AbsoluteX, 4, opORA, "ORA"},
	0x19: {AbsoluteY, 4, opORA, "ORA"},
	0x01: {IndirectX, 6, opORA, "ORA"},
	0x11: {IndirectY, 5, opORA, "ORA"},

	0x48: {Implied, 3, opPHA, "PHA"},
	0x08: {Implied, 3, opPHP, "PHP"},
	0x68: {Implied, 4, opPLA, "PLA"},
	0x28: {Implied, 4, opPLP, "PLP"},

	0x2A: {Accumulator, 2, opROL, "ROL"},
	0x26: {ZeroPage, 5, opROL, "ROL"},
	0x36: {ZeroPageX, 6, opROL, "ROL"},
	0x2E: {Absolute, 6, opROL, "ROL"},
	0x3E: {AbsoluteX, 7, opROL, "ROL"},

	0x6A: {Accumulator, 2, opROR, "ROR"},
	0x66: {ZeroPage, 5, opROR, "ROR"},
	0x76: {ZeroPageX, 6, opROR, "ROR"},
	0x6E: {Absolute, 6, opROR, "ROR"},
	0x7E: {AbsoluteX, 7, opROR, "ROR"},

	0x40: {Implied, 6, opRTI, "RTI"},
	0x60: {Implied, 6, opRTS, "RTS"},

	0xE9: {Immediate, 2, opSBC, "SBC"},
	0xE5: {ZeroPage, 3, opSBC, "SBC"},
	0xF5: {ZeroPageX, 4, opSBC, "SBC"},
	0xED: {Absolute, 4, opSBC, "SBC"},
	0xFD: {AbsoluteX, 4, opSBC, "SBC"},
	0xF9: {AbsoluteY, 4, opSBC, "SBC"},
	0xE1: {IndirectX, 6, opSBC, "SBC"},
	0xF1: {IndirectY, 5, opSBC, "SBC"},

	0x38: {Implied, 2, opSEC, "SEC"},
	0xF8: {Implied, 2, opSED, "SED"},
	0x78: {Implied, 2, opSEI, "SEI"},

	0x85: {ZeroPage, 3, opSTA, "STA"},
	0x95: {ZeroPageX, 4, opSTA, "STA"},
	0x8D: {Absolute, 4, opSTA, "STA"},
	0x9D: {AbsoluteX, 5, opSTA, "STA"},
	0x99: {AbsoluteY, 5, opSTA, "STA"},
	0x81: {IndirectX, 6, opSTA, "STA"},
	0x91: {IndirectY, 6, opSTA, "STA"},

	0x86: {ZeroPage, 3, opSTX, "STX"},
	0x96: {ZeroPageY, 4, opSTX, "STX"},
	0x8E: {Absolute, 4, opSTX, "STX"},

	0x84: {ZeroPage, 3, opSTY, "STY"},
	0x94: {ZeroPageX, 4, opSTY, "STY"},
	0x8C: {Absolute, 4, opSTY, "STY"},

	0xAA: {Implied, 2, opTAX, "TAX"},
	0xA8: {Implied, 2, opTAY, "TAY"},
	0xBA: {Implied, 2, opTSX, "TSX"},
	0x8A: {Implied, 2, opTXA, "TXA"},
	0x9A: {Implied, 2, opTXS, "TXS"},
	0x98: {Implied, 2, opTYA, "TYA"},
}
