// Package mem implements the flat 16-bit address space the Cpu executes
// against: a single 64 KiB Bus, with no mirroring or bank switching.
//
// Unlike the NES, where a Bus multiplexes several independent address
// spaces (CPU/RAM/APU/cartridge on one bus, PPU/VRAM/palette on another),
// an Apple-1-style system keeps everything — RAM, ROM image, and the
// memory-mapped PIA registers at $D010-$D013 — on the one Bus. The Cpu
// itself is unaware of the PIA; a Probe mutates the same backing store
// between instructions to simulate it (see package tui).
package mem

// A Bus is the 64 KiB byte-addressable memory a Cpu reads and writes.
// Reads are total: every address in [0, 0xffff] is always readable, and
// unpopulated addresses read as zero because the backing array starts
// zeroed. Stores are therefore also always in range; there is no
// OutOfRangeStore case to handle, because nothing in this Bus is sized
// smaller than the full address space.
type Bus struct {
	ram [65536]byte
}

// Load reads one byte from addr. The read has no side effects; device
// semantics (e.g. clearing the Apple-1 display register after it is
// drained) are the Probe's responsibility, not the Bus's.
func (b *Bus) Load(addr uint16) byte {
	return b.ram[addr]
}

// Load16 reads a little-endian word starting at addr: the low byte comes
// from addr, the high byte from addr+1. Both loads wrap independently at
// the top of the address space (addr=0xffff reads high byte from 0x0000),
// which is deliberate: only the JMP (indirect) page-boundary bug gets
// special handling, and that belongs to the decoder, not the Bus.
func (b *Bus) Load16(addr uint16) uint16 {
	lo := b.Load(addr)
	hi := b.Load(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Store writes one byte to addr.
func (b *Bus) Store(addr uint16, v byte) {
	b.ram[addr] = v
}

// Store16 writes v as a little-endian word at addr, addr+1.
func (b *Bus) Store16(addr uint16, v uint16) {
	b.Store(addr, byte(v))
	b.Store(addr+1, byte(v>>8))
}

// LoadImage copies data into the Bus starting at base, as if it had been
// loaded by a host program loader (see package loader). Addresses outside
// data are left untouched.
func (b *Bus) LoadImage(data []byte, base uint16) {
	for i, v := range data {
		b.Store(base+uint16(i), v)
	}
}
