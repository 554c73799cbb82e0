package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"apple1/cpu"
	"apple1/mem"
)

func TestStepDrainsKeyboardIntoPIA(t *testing.T) {
	h := NewApple1Harness(strings.NewReader("A"))
	bus := &mem.Bus{}
	regs := &cpu.Registers{}

	// Give the reader goroutine a moment to push the byte into the channel.
	time.Sleep(10 * time.Millisecond)

	assert.False(t, h.Step(regs, bus))
	assert.Equal(t, byte('A'|0x80), bus.Load(addrKBD))
	assert.Equal(t, byte(0x80), bus.Load(addrKBDCR))
}

func TestStepClearsKBDCRAfterStrobeExpires(t *testing.T) {
	h := NewApple1Harness(strings.NewReader("A"))
	bus := &mem.Bus{}
	regs := &cpu.Registers{}

	time.Sleep(10 * time.Millisecond)

	h.Step(regs, bus) // latches the key, KBDCR bit 7 set, keybStrobe = 2
	assert.Equal(t, byte(0x80), bus.Load(addrKBDCR))

	h.Step(regs, bus) // keybStrobe = 1
	assert.Equal(t, byte(0x80), bus.Load(addrKBDCR), "strobe still pending")

	h.Step(regs, bus) // keybStrobe reaches 0, KBDCR bit 7 must clear
	assert.Equal(t, byte(0), bus.Load(addrKBDCR), "strobe expired, KBDCR bit 7 must clear")
}

func TestStepHaltsOnEscape(t *testing.T) {
	h := NewApple1Harness(strings.NewReader("\x1b"))
	bus := &mem.Bus{}
	regs := &cpu.Registers{}

	time.Sleep(10 * time.Millisecond)
	assert.True(t, h.Step(regs, bus))
}

func TestStepDrainsDisplayRegister(t *testing.T) {
	h := NewApple1Harness(strings.NewReader(""))
	bus := &mem.Bus{}
	regs := &cpu.Registers{}

	bus.Store(addrDSP, 'H'|0x80)
	h.Step(regs, bus)
	assert.Equal(t, byte(0), bus.Load(addrDSP), "display register must be cleared after draining")
	assert.Equal(t, "H", h.rowText(0))
}

func TestPutcHandlesCarriageReturn(t *testing.T) {
	h := &Apple1Harness{}
	h.putc('H')
	h.putc('I')
	h.putc(0x0d)
	h.putc('!')
	assert.Equal(t, "HI", h.rowText(0))
	assert.Equal(t, "!", h.rowText(1))
}

func TestNewlineScrollsAfterLastRow(t *testing.T) {
	h := &Apple1Harness{}
	for i := 0; i < screenRows+1; i++ {
		h.putc('X')
		h.putc(0x0d)
	}
	assert.Equal(t, screenRows-1, h.outRow)
}

// TestApple1DSPEcho runs LDA #$C1; STA $D012; BRK against a real cpu.CPU
// with Apple1Harness wired in as the Probe: it must echo 'A' into the
// harness's scrollback and leave $D012 cleared.
func TestApple1DSPEcho(t *testing.T) {
	bus := &mem.Bus{}
	bus.LoadImage([]byte{0xa9, 0xc1, 0x8d, 0x12, 0xd0, 0x00}, 0x0600) // LDA #$C1; STA $D012; BRK
	bus.Store16(0xfffc, 0x0600)

	regs := &cpu.Registers{}
	h := NewApple1Harness(strings.NewReader(""))
	c := cpu.NewCPU(regs, bus, h)
	c.Reset()

	c.Run(0)

	assert.True(t, c.Halted)
	assert.Equal(t, "A", h.rowText(0))
	assert.Equal(t, byte(0), bus.Load(addrDSP))
}

func TestChangedRowsReportsWrittenRowOnce(t *testing.T) {
	h := &Apple1Harness{}
	h.putc('Z')
	changed := h.changedRows()
	assert.Contains(t, changed, 0)

	// A second call with no new writes sees no further changes.
	changed = h.changedRows()
	assert.Empty(t, changed)
}
