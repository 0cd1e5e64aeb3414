package instructions_test

import (
	"testing"

	"github.com/Oppenjaimer/6502-emulator/cpu/instructions"
)

func TestAddressingModeString(t *testing.T) {
	if got := instructions.AbsoluteIndexedX.String(); got != "AbsoluteIndexedX" {
		t.Errorf("String() = %q, want %q", got, "AbsoluteIndexedX")
	}
}

func TestDefinitionIsBranch(t *testing.T) {
	branch := instructions.Definition{
		Mnemonic:       "BEQ",
		AddressingMode: instructions.Relative,
		Effect:         instructions.Flow,
	}
	if !branch.IsBranch() {
		t.Error("a Relative/Flow definition should report IsBranch() true")
	}

	jmp := instructions.Definition{
		Mnemonic:       "JMP",
		AddressingMode: instructions.Absolute,
		Effect:         instructions.Flow,
	}
	if jmp.IsBranch() {
		t.Error("an Absolute/Flow definition should not report IsBranch() true")
	}

	jsr := instructions.Definition{
		Mnemonic:       "JSR",
		AddressingMode: instructions.Absolute,
		Effect:         instructions.Subroutine,
	}
	if jsr.IsBranch() {
		t.Error("JSR is not a branch")
	}
}

func TestDefinitionString(t *testing.T) {
	d := instructions.Definition{
		OpCode:         0xA9,
		Mnemonic:       "LDA",
		Bytes:          2,
		Cycles:         2,
		AddressingMode: instructions.Immediate,
		Effect:         instructions.Read,
	}
	got := d.String()
	if got == "" {
		t.Fatal("String() should not be empty")
	}
}
