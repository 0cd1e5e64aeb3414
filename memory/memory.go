// Package memory implements the flat 64 KiB bus the 6502 core reads and
// writes through.
package memory

// Memory is the bus contract the CPU holds a reference to for its entire
// lifetime. Read and Write return an error so that non-RAM implementations
// (bank-switched cartridge space, memory-mapped I/O — both out of scope for
// this core) can report a fault without changing the CPU's call sites.
type Memory interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, value uint8) error
}

// Size is the number of addressable cells on the bus.
const Size = 0x10000

// RAM is a flat, byte-addressable store of 65,536 cells. Every address is
// always legal to read or write; Read and Write never return a non-nil
// error — the interface allows for it only so other Memory implementations
// can.
type RAM struct {
	cells [Size]uint8
}

// NewRAM returns a zeroed 64 KiB memory bus.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the byte at addr.
func (m *RAM) Read(addr uint16) (uint8, error) {
	return m.cells[addr], nil
}

// Write stores value at addr.
func (m *RAM) Write(addr uint16, value uint8) error {
	m.cells[addr] = value
	return nil
}

// LoadProgram copies bytes into memory starting at origin and returns the
// address immediately following the last byte written.
func (m *RAM) LoadProgram(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		m.cells[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// ReadWord reads a little-endian 16-bit word from addr and addr+1. The read
// of addr+1 wraps around 0xFFFF to 0x0000, matching how a real 6502's
// address bus wraps rather than halting at the top of memory.
func ReadWord(m Memory, addr uint16) (uint16, error) {
	lo, err := m.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := m.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteWord writes a little-endian 16-bit word: the low byte at addr, the
// high byte at addr+1.
func WriteWord(m Memory, addr uint16, value uint16) error {
	if err := m.Write(addr, uint8(value)); err != nil {
		return err
	}
	return m.Write(addr+1, uint8(value>>8))
}
