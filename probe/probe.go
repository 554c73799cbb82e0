// Package probe provides cpu.Probe implementations that are useful for
// running and debugging 6502 programs but have nothing to do with
// instruction semantics: a no-op default, and a runaway-loop detector.
package probe

import (
	"apple1/cpu"
	"apple1/mem"
)

// Null never halts and never inspects state. It exists so callers that
// don't need a Probe can be explicit about it instead of passing nil
// through several layers of constructors.
type Null struct{}

func (Null) Step(*cpu.Registers, *mem.Bus) bool { return false }

// CycleDetector halts execution once the program counter re-enters the
// same address more than maxVisits times, which is how a headless run
// (no human watching a screen) recognizes "the program has gotten stuck
// in an infinite loop" rather than running forever. Test ROMs that signal
// success/failure by jumping to themselves rely on exactly this behavior.
type CycleDetector struct {
	maxVisits int
	visits    map[uint16]int
	tripped   bool
}

// NewCycleDetector returns a detector that halts on the (maxVisits+2)th
// visit to any single address, i.e. its (maxVisits+1)th repeat. A
// maxVisits of 0 halts on the very first repeat.
func NewCycleDetector(maxVisits int) *CycleDetector {
	return &CycleDetector{maxVisits: maxVisits, visits: map[uint16]int{}}
}

// Halted reports whether any Step call so far has tripped the detector.
func (d *CycleDetector) Halted() bool {
	return d.tripped
}

func (d *CycleDetector) Step(regs *cpu.Registers, _ *mem.Bus) bool {
	d.visits[regs.PC]++
	if d.visits[regs.PC] > d.maxVisits+1 {
		d.tripped = true
		return true
	}
	return false
}
