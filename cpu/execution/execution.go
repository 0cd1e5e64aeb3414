// Package execution carries the outcome of retiring one instruction: the
// information tests and the optional trace logger need that isn't part of
// the architectural state itself.
package execution

import (
	"fmt"

	"github.com/Oppenjaimer/6502-emulator/cpu/instructions"
)

// Bug names a MANDATORY hardware quirk of the legal 6502 instruction set
// that this core reproduces deliberately rather than by oversight.
type Bug string

// NoBug is the zero value, meaning the instruction triggered no quirk.
const NoBug Bug = ""

// JMPIndirectPageWrap is the JMP (IND) bug from spec.md §4.3: when the
// pointer's low byte is 0xFF, the high byte of the target address is
// fetched from pointer&0xFF00 instead of pointer+1.
const JMPIndirectPageWrap Bug = "JMP indirect page-wrap bug"

// Result describes the instruction the CPU most recently finished
// retiring.
type Result struct {
	// PC is the address the opcode byte was fetched from.
	PC uint16

	// Defn is the definition of the retired opcode, or nil in a zero
	// Result (as after a reset). The CPU records no Result for an
	// unrecognized opcode byte (spec.md §7); it leaves the previous one.
	Defn *instructions.Definition

	// Address is the effective address the addressing-mode resolver
	// computed, if the instruction has one.
	Address uint16

	// Cycles is the total number of cycles the instruction consumed,
	// including any page-cross or branch-taken penalty.
	Cycles int

	// PageCrossed reports whether the addressing-mode resolver detected a
	// page boundary crossing.
	PageCrossed bool

	// BranchTaken reports whether a branch instruction's condition was
	// true.
	BranchTaken bool

	// Bug names the hardware quirk the instruction triggered, if any.
	Bug Bug
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ??? [unknown opcode]", r.PC)
	}
	s := fmt.Sprintf("%#04x %-4s %#04x [%d cycles]", r.PC, r.Defn.Mnemonic, r.Address, r.Cycles)
	if r.PageCrossed {
		s += " page-cross"
	}
	if r.Bug != NoBug {
		s += fmt.Sprintf(" *%s*", r.Bug)
	}
	return s
}

// Reset zeroes the result, used when the CPU is reset.
func (r *Result) Reset() {
	*r = Result{}
}
