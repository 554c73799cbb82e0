package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apple1/mem"
)

func newTestCPU(program []byte, base uint16) *CPU {
	bus := &mem.Bus{}
	bus.LoadImage(program, base)
	bus.Store16(0xfffc, base)
	regs := &Registers{}
	c := NewCPU(regs, bus, nil)
	c.Reset()
	return c
}

func TestLoadProgramAndReset(t *testing.T) {
	c := newTestCPU([]byte{0xa9, 0x05}, 0x0600)
	assert.Equal(t, uint16(0x0600), c.Reg.PC)
	assert.False(t, c.Halted)
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c := newTestCPU([]byte{0xa9, 0x00}, 0x0600)
	c.Step()
	assert.Equal(t, byte(0x00), c.Reg.A)
	assert.True(t, c.Reg.P.Z)
}

// TestArithmeticSequenceTrace traces a short arithmetic sequence
// instruction by instruction, checking A after each step.
func TestArithmeticSequenceTrace(t *testing.T) {
	program := []byte{
		0xa9, 0x0a, // LDA #$0a
		0x69, 0x0a, // ADC #$0a
		0x69, 0x0a, // ADC #$0a
		0x00, // BRK
	}
	c := newTestCPU(program, 0x0600)

	steps := []struct {
		wantA byte
		name  string
	}{
		{0x0a, "LDA"},
		{0x14, "ADC"},
		{0x1e, "ADC"},
	}
	for _, step := range steps {
		ok := c.Step()
		assert.True(t, ok)
		assert.Equal(t, step.wantA, c.Reg.A, step.name)
	}
	assert.False(t, c.Step(), "BRK halts by default")
	assert.True(t, c.Halted)
}

// TestJSRRTSRoundTrip JSRs into a subroutine that loads an immediate and
// RTS, landing back on the instruction after JSR with SP restored.
func TestJSRRTSRoundTrip(t *testing.T) {
	program := make([]byte, 0)
	// $0600: JSR $0605
	program = append(program, 0x20, 0x05, 0x06)
	// $0603: BRK
	program = append(program, 0x00)
	// $0604: padding so the subroutine starts exactly at $0605
	program = append(program, 0x00)
	// $0605: LDA #$42 ; RTS
	program = append(program, 0xa9, 0x42, 0x60)

	c := newTestCPU(program, 0x0600)

	assert.True(t, c.Step()) // JSR
	assert.Equal(t, uint16(0x0605), c.Reg.PC)
	assert.Equal(t, byte(0xfd), c.Reg.SP)

	assert.True(t, c.Step()) // LDA #$42
	assert.Equal(t, byte(0x42), c.Reg.A)

	assert.True(t, c.Step()) // RTS
	assert.Equal(t, uint16(0x0603), c.Reg.PC)
	assert.Equal(t, byte(0xff), c.Reg.SP)

	assert.False(t, c.Step()) // BRK
}

func TestJMPIndirectPageBoundaryBug(t *testing.T) {
	bus := &mem.Bus{}
	// JMP ($30FF)
	bus.Store(0x0600, 0x6c)
	bus.Store16(0x0601, 0x30ff)
	// Low byte from $30FF, high byte WRONGLY from $3000 (not $3100).
	bus.Store(0x30ff, 0x80)
	bus.Store(0x3000, 0x12)
	bus.Store(0x3100, 0x99)
	bus.Store16(0xfffc, 0x0600)

	regs := &Registers{}
	c := NewCPU(regs, bus, nil)
	c.Reset()
	c.Step()
	assert.Equal(t, uint16(0x1280), c.Reg.PC, "high byte must wrap within the page")
}

func TestSTADoesNotDropTheStore(t *testing.T) {
	c := newTestCPU([]byte{0xa9, 0x7f, 0x8d, 0x00, 0x02}, 0x0600) // LDA #$7f; STA $0200
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x7f), c.Mem.Load(0x0200))
}

func TestPLPDoesNotRestoreBreak(t *testing.T) {
	c := newTestCPU([]byte{0x28}, 0x0600) // PLP
	c.Reg.P.B = true
	c.push(0x00) // pulled byte has B clear
	c.Step()
	assert.True(t, c.Reg.P.B, "real 6502 PLP never restores B from the stack")
}

func TestIllegalOpcodeHalts(t *testing.T) {
	c := newTestCPU([]byte{0x02}, 0x0600) // not in the official table
	assert.False(t, c.Step())
	assert.True(t, c.Halted)
}

func TestRunStopsAtMaxSteps(t *testing.T) {
	c := newTestCPU([]byte{0xea, 0xea, 0xea, 0xea}, 0x0600) // NOP x4
	n := c.Run(2)
	assert.Equal(t, uint64(2), n)
	assert.False(t, c.Halted)
}

func TestHardwareBRKPushesAndJumps(t *testing.T) {
	c := newTestCPU([]byte{0x00, 0x00}, 0x0600)
	c.HardwareBRK = true
	c.Mem.Store16(0xfffe, 0x9000)
	c.Step()
	assert.Equal(t, uint16(0x9000), c.Reg.PC)
	assert.True(t, c.Reg.P.I)
	assert.False(t, c.Halted)
}

// TestADCImmediateNoCarry runs LDA #$05; ADC #$03; BRK and checks the
// resulting accumulator and flags.
func TestADCImmediateNoCarry(t *testing.T) {
	c := newTestCPU([]byte{0xa9, 0x05, 0x69, 0x03, 0x00}, 0x0600)
	c.Step() // LDA #$05
	c.Step() // ADC #$03
	assert.Equal(t, byte(0x08), c.Reg.A)
	assert.False(t, c.Reg.P.C)
	assert.False(t, c.Reg.P.Z)
	assert.False(t, c.Reg.P.N)
	assert.False(t, c.Reg.P.V)
	assert.False(t, c.Step()) // BRK halts
	assert.True(t, c.Halted)
}

// TestADCImmediateWrapAndCarry runs LDA #$FF; ADC #$02, which must wrap A
// to $01 and set carry.
func TestADCImmediateWrapAndCarry(t *testing.T) {
	c := newTestCPU([]byte{0xa9, 0xff, 0x69, 0x02, 0x00}, 0x0600)
	c.Step() // LDA #$FF
	c.Step() // ADC #$02
	assert.Equal(t, byte(0x01), c.Reg.A)
	assert.True(t, c.Reg.P.C)
	assert.False(t, c.Reg.P.Z)
	assert.False(t, c.Reg.P.N)
	assert.False(t, c.Reg.P.V)
}

// TestBranchTakenBackward runs LDX #3; loop: DEX; BNE loop; BRK, a
// decrementing loop that only terminates if the backward branch offset is
// resolved correctly.
func TestBranchTakenBackward(t *testing.T) {
	c := newTestCPU([]byte{0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00}, 0x0600)
	c.Step() // LDX #3
	for i := 0; i < 3; i++ {
		c.Step() // DEX
		c.Step() // BNE
	}
	assert.Equal(t, byte(0x00), c.Reg.X)
	assert.True(t, c.Reg.P.Z)
	assert.False(t, c.Reg.P.N)
	assert.False(t, c.Step(), "BRK halts")
}

// TestIndirectYLoad sets $10/$11 to a pointer at $8005 and indexes five
// bytes past it with Y.
func TestIndirectYLoad(t *testing.T) {
	c := newTestCPU([]byte{0xa0, 0x05, 0xb1, 0x10, 0x00}, 0x0600) // LDY #$05; LDA ($10),Y; BRK
	c.Mem.Store(0x10, 0x00)
	c.Mem.Store(0x11, 0x80)
	c.Mem.Store(0x8005, 0xab)
	c.Step() // LDY #$05
	c.Step() // LDA ($10),Y
	assert.Equal(t, byte(0xab), c.Reg.A)
}

// TestZeroPageIndexedWraps checks that LDX #$FF; LDA $02,X addresses $01,
// not $0101.
func TestZeroPageIndexedWraps(t *testing.T) {
	c := newTestCPU([]byte{0xa2, 0xff, 0xb5, 0x02}, 0x0600) // LDX #$FF; LDA $02,X
	c.Mem.Store(0x01, 0x77)
	c.Mem.Store(0x0101, 0x99)
	c.Step() // LDX #$FF
	c.Step() // LDA $02,X
	assert.Equal(t, byte(0x77), c.Reg.A)
}
