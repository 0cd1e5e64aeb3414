// Package cputest provides shared test scaffolding for the cpu package, in
// the style of the teacher's own cpu_test.go mockMem/putInstructions
// pattern.
package cputest

import (
	"testing"

	"github.com/Oppenjaimer/6502-emulator/cpu"
	"github.com/Oppenjaimer/6502-emulator/memory"
)

// Harness bundles a RAM-backed CPU with helpers for loading a short
// program and asserting on the outcome, so individual test cases read as
// a program plus an expectation rather than boilerplate wiring.
type Harness struct {
	T   *testing.T
	RAM *memory.RAM
	CPU *cpu.CPU
}

// New returns a Harness with a fresh 64 KiB RAM and a CPU wired to it. The
// reset vector is pre-loaded to point at origin so callers can Load a
// program and immediately Reset.
func New(t *testing.T, origin uint16, opts ...cpu.Option) *Harness {
	t.Helper()
	ram := memory.NewRAM()
	_ = memory.WriteWord(ram, cpu.ResetVector, origin)
	return &Harness{
		T:   t,
		RAM: ram,
		CPU: cpu.New(ram, opts...),
	}
}

// Load writes bytes into RAM starting at origin and returns the address
// immediately following the last byte written.
func (h *Harness) Load(origin uint16, bytes ...uint8) uint16 {
	return h.RAM.LoadProgram(origin, bytes...)
}

// Reset resets the CPU and fails the test on error.
func (h *Harness) Reset() {
	h.T.Helper()
	if err := h.CPU.Reset(); err != nil {
		h.T.Fatalf("reset: %v", err)
	}
}

// SettleReset resets the CPU and drains the 7 cycles of the canonical
// reset sequence (spec.md §3/§8 invariant 1), leaving the CPU ready to
// fetch the first real opcode at the reset vector.
func (h *Harness) SettleReset() {
	h.T.Helper()
	h.Reset()
	h.Run(7)
}

// Run advances the CPU by n cycles and fails the test on error.
func (h *Harness) Run(n int) {
	h.T.Helper()
	if err := h.CPU.Run(n); err != nil {
		h.T.Fatalf("run(%d): %v", n, err)
	}
}

// AssertMemory fails the test if the byte at addr isn't want.
func (h *Harness) AssertMemory(addr uint16, want uint8) {
	h.T.Helper()
	got, err := h.RAM.Read(addr)
	if err != nil {
		h.T.Fatalf("read %#04x: %v", addr, err)
	}
	if got != want {
		h.T.Errorf("memory at %#04x = %#02x, want %#02x", addr, got, want)
	}
}
