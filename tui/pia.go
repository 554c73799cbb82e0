// Package tui hosts the Apple-1 PIA emulation and the bubbletea debugger
// that drives a cpu.CPU against it. The PIA itself is a cpu.Probe: the CPU
// has no idea $D010-$D013 are special, it's just memory — Apple1Harness.Step
// is what gives those four addresses keyboard/display semantics.
package tui

import (
	"bufio"
	"hash/fnv"
	"io"
	"strings"

	"apple1/cpu"
	"apple1/mem"
)

const (
	addrKBD   = 0xd010 // keyboard data, bit 7 set while a key is pending
	addrKBDCR = 0xd011 // keyboard control/status, bit 7 set while KBD is unread
	addrDSP   = 0xd012 // display data, bit 7 set by the program when it writes a char
	addrDSPCR = 0xd013 // display control/status (unused by this harness, kept for address-map completeness)
)

const (
	screenRows = 24
	screenCols = 40
)

// Apple1Harness is the memory-mapped keyboard/display pair the Apple-1
// monitor and BASIC ROMs expect, wired as a cpu.Probe. It reads pending
// input from an internal channel (fed by a reader goroutine started in
// NewApple1Harness) and renders everything the program has written to
// $D012 into a fixed-size scrollback grid.
type Apple1Harness struct {
	input chan byte

	// keybStrobe holds a key in $D010/$D011 for a couple of Steps, mirroring
	// how a real keyboard strobe lasts longer than a single CPU cycle and
	// giving monitor-ROM polling loops a realistic chance to see it.
	keybStrobe int

	textbuf [screenRows][screenCols]byte
	outRow  int
	outCol  int
	rowHash [screenRows]uint64
	dirty   [screenRows]bool
	esc     bool
}

// NewApple1Harness starts a goroutine draining r (typically os.Stdin) into
// an internal channel, so Step never blocks waiting on terminal input.
func NewApple1Harness(r io.Reader) *Apple1Harness {
	h := &Apple1Harness{input: make(chan byte, 256)}
	go func() {
		reader := bufio.NewReader(r)
		for {
			b, err := reader.ReadByte()
			if err != nil {
				close(h.input)
				return
			}
			h.input <- b
		}
	}()
	return h
}

// Step implements cpu.Probe. It is called once before every instruction:
// drain one pending keystroke into the PIA if the previous one has aged
// out, then drain anything the program wrote to the display register.
func (h *Apple1Harness) Step(_ *cpu.Registers, bus *mem.Bus) bool {
	if h.esc {
		return true
	}

	if h.keybStrobe > 0 {
		h.keybStrobe--
		if h.keybStrobe == 0 {
			bus.Store(addrKBDCR, bus.Load(addrKBDCR)&0x7f)
		}
	} else {
		select {
		case b, ok := <-h.input:
			if !ok {
				break
			}
			if b == 0x1b { // ESC halts the harness
				h.esc = true
				return true
			}
			bus.Store(addrKBD, b|0x80)
			bus.Store(addrKBDCR, 0x80)
			h.keybStrobe = 2
		default:
		}
	}

	if dsp := bus.Load(addrDSP); dsp != 0 {
		h.putc(dsp & 0x7f)
		bus.Store(addrDSP, 0)
	}

	return false
}

// putc appends one display character to the current scrollback row,
// handling carriage return as a newline (the Apple-1 monitor only ever
// emits CR, never LF) and scrolling the buffer up when it fills.
func (h *Apple1Harness) putc(c byte) {
	switch c {
	case 0x0d, 0x0a:
		h.newline()
	default:
		if h.outCol >= screenCols {
			h.newline()
		}
		h.textbuf[h.outRow][h.outCol] = c
		h.outCol++
		h.dirty[h.outRow] = true
	}
}

func (h *Apple1Harness) newline() {
	h.outCol = 0
	h.outRow++
	if h.outRow >= screenRows {
		copy(h.textbuf[:], h.textbuf[1:])
		h.textbuf[screenRows-1] = [screenCols]byte{}
		h.outRow = screenRows - 1
		for i := range h.dirty {
			h.dirty[i] = true
		}
	}
}

// rowText renders row i as a string, trimming the trailing NUL padding.
func (h *Apple1Harness) rowText(i int) string {
	return strings.TrimRight(string(h.textbuf[i][:]), "\x00")
}

// changedRows returns the indices of rows whose content hash differs from
// last render (on the first call, every row). View() still renders every
// row and uses this only to mark the changed ones.
func (h *Apple1Harness) changedRows() []int {
	var changed []int
	for i := range h.textbuf {
		sum := fnv.New64a()
		_, _ = sum.Write(h.textbuf[i][:])
		v := sum.Sum64()
		if v != h.rowHash[i] || h.dirty[i] {
			changed = append(changed, i)
			h.rowHash[i] = v
			h.dirty[i] = false
		}
	}
	return changed
}
