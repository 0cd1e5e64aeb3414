// Package cpu implements the MOS 6502 instruction interpreter: the
// fetch/decode/execute loop, the addressing-mode resolver, flag algebra,
// the stack and interrupt protocols, and cycle accounting. It is grounded
// on the teacher's hardware/cpu package, generalized from the Atari 2600's
// 6507 to the full legal 6502 instruction set and cycle-accounting model
// of spec.md.
package cpu

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Oppenjaimer/6502-emulator/cpu/execution"
	"github.com/Oppenjaimer/6502-emulator/cpu/instructions"
	"github.com/Oppenjaimer/6502-emulator/cpu/registers"
	"github.com/Oppenjaimer/6502-emulator/internal/cerrors"
	"github.com/Oppenjaimer/6502-emulator/memory"
)

// Vectors fixed in high memory, per spec.md §6.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// handler performs an instruction's effect at the already-resolved
// address (0 and unused for Implied-mode instructions) and returns any
// cycles beyond the opcode's base count — a branch taken, for instance.
// Handlers share this one shape per spec.md §9 ("Handler uniformity");
// implied-mode handlers ignore addr.
type handler func(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (extraCycles int, err error)

type opcodeEntry struct {
	defn    instructions.Definition
	handler handler
}

// CPU holds the full architectural state of one MOS 6502: registers,
// flags, the cycle counter that decouples clock ticks from instruction
// retirement, and a borrowed reference to the memory bus.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer
	A  registers.Register
	X  registers.Register
	Y  registers.Register
	P  registers.StatusRegister

	cyclesRemaining int

	mem   memory.Memory
	table [256]*opcodeEntry

	// lastResult records what the most recently retired instruction did;
	// exposed through LastResult for tests and for a driver's own diagnostics.
	lastResult execution.Result

	logger *logrus.Logger
	trace  bool
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger overrides the CPU's logger (default logrus.StandardLogger()).
func WithLogger(l *logrus.Logger) Option {
	return func(c *CPU) { c.logger = l }
}

// WithTrace enables per-instruction trace-level logging of every retired
// instruction, per SPEC_FULL.md §5.2.
func WithTrace(enabled bool) Option {
	return func(c *CPU) { c.trace = enabled }
}

// New creates a CPU wired to mem. PC, SP, A, X, Y and the cycle counter
// start at zero and P at its reset value (I and U set); call Reset to
// bring it to the canonical power-up/reset state of spec.md §3.
func New(mem memory.Memory, opts ...Option) *CPU {
	c := &CPU{
		PC:     registers.NewProgramCounter(0),
		SP:     registers.NewStackPointer(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		P:      registers.NewStatusRegister(),
		mem:    mem,
		logger: logrus.StandardLogger(),
	}
	buildOpcodeTable(&c.table)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%#04x A=%#02x X=%#02x Y=%#02x SP=%#02x P=%s",
		c.PC.Value(), c.A.Value(), c.X.Value(), c.Y.Value(), c.SP.Value(), c.P)
}

// LastResult returns what the most recently retired instruction did.
func (c *CPU) LastResult() execution.Result {
	return c.lastResult
}

// CyclesRemaining returns the number of pending ticks for the instruction
// currently in flight, 0 between instructions.
func (c *CPU) CyclesRemaining() int {
	return c.cyclesRemaining
}

// Reset brings the CPU to the canonical reset state of spec.md §3: all
// registers zeroed, SP=0xFD, P=0b00100100 (I and U set), cycles_remaining
// set to 7 (the canonical reset sequence duration), and PC loaded from the
// little-endian word at ResetVector.
func (c *CPU) Reset() error {
	c.A.Load(0)
	c.X.Load(0)
	c.Y.Load(0)
	c.SP.Load(0xFD)
	c.P.Reset()
	c.lastResult.Reset()

	pc, err := memory.ReadWord(c.mem, ResetVector)
	if err != nil {
		return err
	}
	c.PC.Load(pc)
	c.cyclesRemaining = 7
	return nil
}

// Run advances the CPU by exactly n clock ticks. It is the sole externally
// observable advancement method per spec.md §4.2.
func (c *CPU) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Tick advances the CPU by one clock cycle. If no instruction is in
// flight, it fetches and dispatches the opcode at PC; an unknown opcode is
// reported via the logger and leaves all state — including PC — untouched,
// so the next Tick will re-fetch the same byte, per spec.md §7.
func (c *CPU) Tick() error {
	if c.cyclesRemaining == 0 {
		fetchPC := c.PC.Value()
		opcode, err := c.mem.Read(fetchPC)
		if err != nil {
			return err
		}

		entry := c.table[opcode]
		if entry == nil {
			c.logger.WithFields(logrus.Fields{
				"opcode": fmt.Sprintf("%#02x", opcode),
				"pc":     fmt.Sprintf("%#04x", fetchPC),
			}).Warn(cerrors.New(cerrors.UnknownOpcode, opcode, fetchPC).Error())
			return nil
		}

		c.PC.Increment(1)

		defn := entry.defn
		addr, pageCrossed, bug, err := c.resolveAddress(defn.AddressingMode)
		if err != nil {
			return err
		}

		extra, err := entry.handler(c, defn.AddressingMode, addr, pageCrossed)
		if err != nil {
			return err
		}
		if pageCrossed && defn.PageSensitive {
			extra++
		}

		c.lastResult = execution.Result{
			PC:          fetchPC,
			Defn:        &defn,
			Address:     addr,
			Cycles:      defn.Cycles + extra,
			PageCrossed: pageCrossed,
			BranchTaken: defn.IsBranch() && extra > 0,
			Bug:         bug,
		}
		c.cyclesRemaining = c.lastResult.Cycles

		if c.trace {
			c.logger.WithFields(logrus.Fields{
				"mnemonic": defn.Mnemonic,
				"mode":     defn.AddressingMode.String(),
			}).Trace(c.lastResult.String())
		}
	}

	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
	}
	return nil
}

// IRQ requests a maskable interrupt. It is a no-op if the interrupt-disable
// flag is set. Otherwise it pushes PC (high then low) and P, sets I, loads
// PC from IRQVector, and adds 7 cycles to the in-flight cycle count, per
// spec.md §4.2.
func (c *CPU) IRQ() error {
	if c.P.InterruptDisable {
		return nil
	}
	if err := c.pushWord(c.PC.Value()); err != nil {
		return err
	}
	if err := c.PushByte(c.P.Value()); err != nil {
		return err
	}
	c.P.InterruptDisable = true

	pc, err := memory.ReadWord(c.mem, IRQVector)
	if err != nil {
		return err
	}
	c.PC.Load(pc)
	c.cyclesRemaining += 7
	return nil
}

// NMI requests a non-maskable interrupt: unconditional, pushes PC and P,
// loads PC from NMIVector, and adds 8 cycles, per spec.md §4.2.
func (c *CPU) NMI() error {
	if err := c.pushWord(c.PC.Value()); err != nil {
		return err
	}
	if err := c.PushByte(c.P.Value()); err != nil {
		return err
	}

	pc, err := memory.ReadWord(c.mem, NMIVector)
	if err != nil {
		return err
	}
	c.PC.Load(pc)
	c.cyclesRemaining += 8
	return nil
}

// ReadByte reads a byte from the bus, for driver use (spec.md §6).
func (c *CPU) ReadByte(addr uint16) (uint8, error) {
	return c.mem.Read(addr)
}

// WriteByte writes a byte to the bus, for driver use.
func (c *CPU) WriteByte(addr uint16, v uint8) error {
	return c.mem.Write(addr, v)
}

// ReadWord reads a little-endian word from the bus.
func (c *CPU) ReadWord(addr uint16) (uint16, error) {
	return memory.ReadWord(c.mem, addr)
}

// WriteWord writes a little-endian word to the bus.
func (c *CPU) WriteWord(addr uint16, v uint16) error {
	return memory.WriteWord(c.mem, addr, v)
}

// StackAddress returns the current effective stack address, 0x0100 | SP.
func (c *CPU) StackAddress() uint16 {
	return c.SP.Address()
}

// PushByte writes v to the current stack address, then decrements SP.
func (c *CPU) PushByte(v uint8) error {
	if err := c.mem.Write(c.SP.Address(), v); err != nil {
		return err
	}
	c.SP.Push()
	return nil
}

// PullByte increments SP, then reads and returns the byte at the new
// stack address.
func (c *CPU) PullByte() (uint8, error) {
	c.SP.Pull()
	return c.mem.Read(c.SP.Address())
}

// pushWord pushes a 16-bit value high byte first, then low byte, matching
// the order JSR/BRK/IRQ/NMI push PC.
func (c *CPU) pushWord(v uint16) error {
	if err := c.PushByte(uint8(v >> 8)); err != nil {
		return err
	}
	return c.PushByte(uint8(v))
}

// pullWord pulls a 16-bit value low byte first, then high byte, matching
// the order RTS/RTI pull PC.
func (c *CPU) pullWord() (uint16, error) {
	lo, err := c.PullByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.PullByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
