// Package memory implements the 8080's 64 KiB address space: a fixed 4 KiB
// ROM image mapped permanently at 0xF000-0xFFFF, and a boot-time overlay
// that mirrors that same ROM into 0x0000-0x0FFF until firmware disables it.
package memory

import "fmt"

const (
	// RAMSize is the full 64 KiB address space backing RAM.
	RAMSize = 1 << 16
	// ROMSize is the fixed size of the ROM image.
	ROMSize = 4096
	// ROMBase is the physical address the ROM is permanently mapped at.
	ROMBase = 0xF000
	// OverlaySize is the extent of the boot overlay window at the bottom
	// of the address space.
	OverlaySize = 0x1000
)

// Memory is the 8080's address space: a RAM image, a fixed ROM image, and
// the overlay latch that decides whether low addresses read RAM or ROM.
//
// ROM bytes are never mutated after construction; writes that would land
// in a ROM region are silently dropped, matching real hardware where a
// write to the ROM's address lines simply has no effect.
type Memory struct {
	ram     [RAMSize]byte
	rom     [ROMSize]byte
	overlay bool
}

// New constructs a Memory with the given ROM image loaded and the boot
// overlay enabled. rom must be exactly ROMSize bytes.
func New(rom []byte) (*Memory, error) {
	if len(rom) != ROMSize {
		return nil, fmt.Errorf("memory: ROM image must be exactly %d bytes, got %d", ROMSize, len(rom))
	}
	m := &Memory{overlay: true}
	copy(m.rom[:], rom)
	return m, nil
}

// Reset re-enables the boot overlay. RAM contents are left untouched, as on
// real hardware a reset does not clear core memory.
func (m *Memory) Reset() {
	m.overlay = true
}

// Overlay reports whether the boot overlay is currently mirroring ROM into
// the low address space.
func (m *Memory) Overlay() bool {
	return m.overlay
}

// SetOverlay latches the overlay state. Called only by the System Control
// device; takes effect immediately for the next access.
func (m *Memory) SetOverlay(on bool) {
	m.overlay = on
}

func (m *Memory) inROM(addr uint16) bool {
	if addr >= ROMBase {
		return true
	}
	return m.overlay && addr < OverlaySize
}

// Read returns the byte at addr, resolving ROM vs RAM per the overlay
// state. Never fails.
func (m *Memory) Read(addr uint16) byte {
	if addr >= ROMBase {
		return m.rom[addr-ROMBase]
	}
	if m.overlay && addr < OverlaySize {
		return m.rom[addr]
	}
	return m.ram[addr]
}

// Write stores v at addr, unless addr currently resolves to ROM, in which
// case the write is silently dropped.
func (m *Memory) Write(addr uint16, v byte) {
	if m.inROM(addr) {
		return
	}
	m.ram[addr] = v
}
