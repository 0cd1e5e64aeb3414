package cpu_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Oppenjaimer/6502-emulator/cpu"
	"github.com/Oppenjaimer/6502-emulator/internal/cputest"
	"github.com/Oppenjaimer/6502-emulator/memory"
)

func wantRegs(t *testing.T, c *cpu.CPU, a, x, y uint8) {
	t.Helper()
	if got := c.A.Value(); got != a {
		t.Errorf("A = %#02x, want %#02x", got, a)
	}
	if got := c.X.Value(); got != x {
		t.Errorf("X = %#02x, want %#02x", got, x)
	}
	if got := c.Y.Value(); got != y {
		t.Errorf("Y = %#02x, want %#02x", got, y)
	}
}

func wantFlag(t *testing.T, c *cpu.CPU, f cpu.Flag, name string, want bool) {
	t.Helper()
	if got := c.GetFlag(f); got != want {
		t.Errorf("flag %s = %v, want %v", name, got, want)
	}
}

// TestReset checks the canonical power-up state of spec.md §3/§6.
func TestReset(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Reset()

	wantRegs(t, h.CPU, 0, 0, 0)
	if got := h.CPU.SP.Value(); got != 0xFD {
		t.Errorf("SP = %#02x, want 0xFD", got)
	}
	if got := h.CPU.P.Value(); got != 0b00100100 {
		t.Errorf("P = %#08b, want 0b00100100", got)
	}
	if got := h.CPU.CyclesRemaining(); got != 7 {
		t.Errorf("cycles remaining = %d, want 7", got)
	}
	if got := h.CPU.PC.Value(); got != 0x3000 {
		t.Errorf("PC = %#04x, want 0x3000", got)
	}
}

// TestResetDrainInvariant is spec.md §8 invariant 1: after reset followed
// by run(k) for any k<=7, cycles_remaining == 7-k and no architectural
// register besides cycles_remaining changes.
func TestResetDrainInvariant(t *testing.T) {
	for k := 0; k <= 7; k++ {
		h := cputest.New(t, 0x3000)
		h.Reset()
		h.Run(k)

		if got := h.CPU.CyclesRemaining(); got != 7-k {
			t.Errorf("k=%d: cycles remaining = %d, want %d", k, got, 7-k)
		}
		wantRegs(t, h.CPU, 0, 0, 0)
		if got := h.CPU.PC.Value(); got != 0x3000 {
			t.Errorf("k=%d: PC = %#04x, want 0x3000", k, got)
		}
	}
}

// TestS1LoadFlags is spec.md §8 scenario S1.
func TestS1LoadFlags(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0xA9, 0x80) // LDA #$80
	h.SettleReset()
	h.Run(2)

	wantRegs(t, h.CPU, 0x80, 0, 0)
	wantFlag(t, h.CPU, cpu.FlagZero, "Z", false)
	wantFlag(t, h.CPU, cpu.FlagSign, "N", true)
	if got := h.CPU.CyclesRemaining(); got != 0 {
		t.Errorf("cycles remaining = %d, want 0", got)
	}
}

// TestS2IndexedPageCross is spec.md §8 scenario S2.
func TestS2IndexedPageCross(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0xBD, 0xFF, 0x10) // LDA $10FF,X
	h.Load(0x1100, 0x42)
	h.SettleReset()

	// preload X to 1 after reset, per the scenario.
	h.CPU.X.Load(1)
	h.Run(5) // 4 base + 1 page-cross

	if got := h.CPU.A.Value(); got != 0x42 {
		t.Errorf("A = %#02x, want 0x42", got)
	}
	if got := h.CPU.CyclesRemaining(); got != 0 {
		t.Errorf("cycles remaining = %d, want 0", got)
	}
}

// TestS3ADCSignedOverflow is spec.md §8 scenario S3.
func TestS3ADCSignedOverflow(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0x69, 0x01) // ADC #$01
	h.SettleReset()
	h.CPU.A.Load(0x7F)
	h.CPU.SetFlag(cpu.FlagCarry, false)
	h.Run(2)

	if got := h.CPU.A.Value(); got != 0x80 {
		t.Errorf("A = %#02x, want 0x80", got)
	}
	wantFlag(t, h.CPU, cpu.FlagCarry, "C", false)
	wantFlag(t, h.CPU, cpu.FlagZero, "Z", false)
	wantFlag(t, h.CPU, cpu.FlagOverflow, "V", true)
	wantFlag(t, h.CPU, cpu.FlagSign, "N", true)
}

// TestS4BranchTakenPageCross is spec.md §8 scenario S4: BEQ with Z set,
// displacement crossing into the next page.
func TestS4BranchTakenPageCross(t *testing.T) {
	h := cputest.New(t, 0x30FC)
	h.Load(0x30FC, 0xF0, 0x05) // BEQ +5, target 0x3103 (crosses page)
	h.SettleReset()
	h.CPU.SetFlag(cpu.FlagZero, true)
	h.Run(5) // 2 base + 1 taken + 2 page-cross

	if got := h.CPU.PC.Value(); got != 0x3103 {
		t.Errorf("PC = %#04x, want 0x3103", got)
	}
	if got := h.CPU.CyclesRemaining(); got != 0 {
		t.Errorf("cycles remaining = %d, want 0", got)
	}
}

// TestS5JMPIndirectBug is spec.md §8 scenario S5: the mandatory page-wrap
// bug in JMP (IND).
func TestS5JMPIndirectBug(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0x6C, 0xFF, 0x00) // JMP ($00FF)
	h.Load(0x00FF, 0x34)
	h.Load(0x0000, 0x12)
	h.SettleReset()
	h.Run(5)

	if got := h.CPU.PC.Value(); got != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", got)
	}
}

// TestS6BRKRTIRoundTrip is spec.md §8 scenario S6.
func TestS6BRKRTIRoundTrip(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0x00) // BRK
	h.Load(0x4000, 0x40) // RTI
	_ = memory.WriteWord(h.RAM, cpu.IRQVector, 0x4000)
	h.SettleReset()

	spBeforeBRK := h.CPU.SP.Value()
	h.Run(7) // BRK

	wantFlag(t, h.CPU, cpu.FlagBreak, "B", true)
	if got := h.CPU.PC.Value(); got != 0x4000 {
		t.Errorf("after BRK: PC = %#04x, want 0x4000", got)
	}

	h.Run(6) // RTI

	if got := h.CPU.SP.Value(); got != spBeforeBRK {
		t.Errorf("SP = %#02x, want %#02x (restored)", got, spBeforeBRK)
	}
	wantFlag(t, h.CPU, cpu.FlagBreak, "B", false)
	if got := h.CPU.PC.Value(); got != 0x3001 {
		t.Errorf("after RTI: PC = %#04x, want 0x3001", got)
	}
}

// TestStackRoundTrip is spec.md §8 invariant 3.
func TestStackRoundTrip(t *testing.T) {
	for _, b := range []uint8{0x00, 0x7F, 0x80, 0xFF, 0x42} {
		h := cputest.New(t, 0x3000)
		h.Reset()
		spBefore := h.CPU.SP.Value()

		if err := h.CPU.PushByte(b); err != nil {
			t.Fatalf("push: %v", err)
		}
		got, err := h.CPU.PullByte()
		if err != nil {
			t.Fatalf("pull: %v", err)
		}
		if got != b {
			t.Errorf("pulled %#02x, want %#02x", got, b)
		}
		if h.CPU.SP.Value() != spBefore {
			t.Errorf("SP = %#02x, want %#02x (restored)", h.CPU.SP.Value(), spBefore)
		}
	}
}

// TestJSRRTSRoundTrip is spec.md §8 invariant 4.
func TestJSRRTSRoundTrip(t *testing.T) {
	h := cputest.New(t, 0x3000)
	next := h.Load(0x3000, 0x20, 0x00, 0x40) // JSR $4000
	h.Load(0x4000, 0x60)                     // RTS
	h.SettleReset()
	spBefore := h.CPU.SP.Value()

	h.Run(6) // JSR
	if got := h.CPU.PC.Value(); got != 0x4000 {
		t.Errorf("after JSR: PC = %#04x, want 0x4000", got)
	}

	h.Run(6) // RTS
	if got := h.CPU.PC.Value(); got != next {
		t.Errorf("after RTS: PC = %#04x, want %#04x", got, next)
	}
	if got := h.CPU.SP.Value(); got != spBefore {
		t.Errorf("SP = %#02x, want %#02x (restored)", got, spBefore)
	}
}

// TestBITLeavesAccumulator is spec.md §8 invariant 6.
func TestBITLeavesAccumulator(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0x24, 0x10) // BIT $10
	h.Load(0x0010, 0xC0)       // bits 6 and 7 set
	h.SettleReset()
	h.CPU.A.Load(0x3F) // A & M == 0
	h.Run(3)

	if got := h.CPU.A.Value(); got != 0x3F {
		t.Errorf("A = %#02x, want unchanged 0x3f", got)
	}
	wantFlag(t, h.CPU, cpu.FlagZero, "Z", true)
	wantFlag(t, h.CPU, cpu.FlagOverflow, "V", true)
	wantFlag(t, h.CPU, cpu.FlagSign, "N", true)
}

// TestUnknownOpcodeStalls is spec.md §7: an unknown opcode byte leaves
// state untouched and is re-fetched on the next tick.
func TestUnknownOpcodeStalls(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0x02) // not a legal opcode
	h.SettleReset()

	pcBefore := h.CPU.PC.Value()
	h.Run(3)

	if got := h.CPU.PC.Value(); got != pcBefore {
		t.Errorf("PC = %#04x, want unchanged %#04x", got, pcBefore)
	}
	if got := h.CPU.CyclesRemaining(); got != 0 {
		t.Errorf("cycles remaining = %d, want 0", got)
	}
}

// TestSnapshotUnaffectedByFailedDecode uses go-cmp to confirm that a run
// of ticks over an unknown opcode leaves the entire visible register set
// bit-for-bit identical, not just PC.
func TestSnapshotUnaffectedByFailedDecode(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Load(0x3000, 0x02)
	h.SettleReset()

	type snapshot struct {
		PC, SP     uint16
		A, X, Y, P uint8
	}
	snap := func() snapshot {
		return snapshot{
			PC: h.CPU.PC.Value(),
			SP: uint16(h.CPU.SP.Value()),
			A:  h.CPU.A.Value(),
			X:  h.CPU.X.Value(),
			Y:  h.CPU.Y.Value(),
			P:  h.CPU.P.Value(),
		}
	}

	before := snap()
	h.Run(4)
	after := snap()

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("unknown opcode mutated state (-before +after):\n%s", diff)
	}
}

// TestIRQMasked checks that IRQ is a no-op while I is set.
func TestIRQMasked(t *testing.T) {
	h := cputest.New(t, 0x3000)
	h.Reset()
	h.CPU.SetFlag(cpu.FlagInterruptDisable, true)
	pcBefore := h.CPU.PC.Value()

	if err := h.CPU.IRQ(); err != nil {
		t.Fatalf("irq: %v", err)
	}
	if got := h.CPU.PC.Value(); got != pcBefore {
		t.Errorf("PC = %#04x, want unchanged %#04x (IRQ masked)", got, pcBefore)
	}
}

// TestNMIUnconditional checks that NMI always fires and adds 8 cycles.
func TestNMIUnconditional(t *testing.T) {
	h := cputest.New(t, 0x3000)
	_ = memory.WriteWord(h.RAM, cpu.NMIVector, 0x5000)
	h.Reset()
	h.CPU.SetFlag(cpu.FlagInterruptDisable, true)

	before := h.CPU.CyclesRemaining()
	if err := h.CPU.NMI(); err != nil {
		t.Fatalf("nmi: %v", err)
	}
	if got := h.CPU.PC.Value(); got != 0x5000 {
		t.Errorf("PC = %#04x, want 0x5000", got)
	}
	if got := h.CPU.CyclesRemaining(); got != before+8 {
		t.Errorf("cycles remaining = %d, want %d", got, before+8)
	}
}
