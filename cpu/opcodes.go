package cpu

import "github.com/Oppenjaimer/6502-emulator/cpu/instructions"

// The handlers in this file implement spec.md §4.4's functional groups.
// Every handler shares the uniform shape of spec.md §9: it receives the
// already-resolved address (and whether the resolver crossed a page) and
// returns any cycles beyond the opcode's tabulated base count. Implied-mode
// handlers ignore addr and pageCrossed.

// --- Load / Store / Transfer -------------------------------------------

func opLDA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.A.Load(v)
	c.P.SetZN(v)
	return 0, nil
}

func opLDX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.X.Load(v)
	c.P.SetZN(v)
	return 0, nil
}

func opLDY(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.Y.Load(v)
	c.P.SetZN(v)
	return 0, nil
}

func opSTA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return 0, c.mem.Write(addr, c.A.Value())
}

func opSTX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return 0, c.mem.Write(addr, c.X.Value())
}

func opSTY(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return 0, c.mem.Write(addr, c.Y.Value())
}

func opTAX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.X.Load(c.A.Value())
	c.P.SetZN(c.X.Value())
	return 0, nil
}

func opTAY(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.Y.Load(c.A.Value())
	c.P.SetZN(c.Y.Value())
	return 0, nil
}

func opTXA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.A.Load(c.X.Value())
	c.P.SetZN(c.A.Value())
	return 0, nil
}

func opTYA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.A.Load(c.Y.Value())
	c.P.SetZN(c.A.Value())
	return 0, nil
}

func opTSX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.X.Load(c.SP.Value())
	c.P.SetZN(c.X.Value())
	return 0, nil
}

// opTXS updates SP but, uniquely among the transfers, leaves flags
// unchanged per spec.md §4.4.
func opTXS(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.SP.Load(c.X.Value())
	return 0, nil
}

// --- Stack ops -----------------------------------------------------------

func opPHA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return 0, c.PushByte(c.A.Value())
}

func opPHP(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return 0, c.PushByte(c.P.Value())
}

func opPLA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.PullByte()
	if err != nil {
		return 0, err
	}
	c.A.Load(v)
	c.P.SetZN(v)
	return 0, nil
}

func opPLP(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.PullByte()
	if err != nil {
		return 0, err
	}
	c.P.FromValue(v)
	return 0, nil
}

// --- Logical ---------------------------------------------------------------

func opAND(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.A.AND(v)
	c.P.SetZN(c.A.Value())
	return 0, nil
}

func opORA(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.A.ORA(v)
	c.P.SetZN(c.A.Value())
	return 0, nil
}

func opEOR(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.A.EOR(v)
	c.P.SetZN(c.A.Value())
	return 0, nil
}

// opBIT computes A&M for Z, mirrors bits 6 and 7 of M into V and N, and
// leaves A unchanged, per spec.md §4.4.
func opBIT(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	c.P.Zero = (c.A.Value() & v) == 0
	c.P.Overflow = v&0x40 != 0
	c.P.Sign = v&0x80 != 0
	return 0, nil
}

// --- Arithmetic --------------------------------------------------------

func opADC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	carryOut, overflow := c.A.Add(v, c.P.Carry)
	c.P.Carry = carryOut
	c.P.Overflow = overflow
	c.P.SetZN(c.A.Value())
	return 0, nil
}

// opSBC is ADC with the operand's bitwise complement, so that Carry reads
// as "no borrow" on entry and after, per spec.md §4.4.
func opSBC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	carryOut, overflow := c.A.Subtract(v, c.P.Carry)
	c.P.Carry = carryOut
	c.P.Overflow = overflow
	c.P.SetZN(c.A.Value())
	return 0, nil
}

// --- Compare -------------------------------------------------------------

func compare(c *CPU, reg uint8, addr uint16) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	result := reg - v
	c.P.Carry = reg >= v
	c.P.Zero = reg == v
	c.P.Sign = result&0x80 != 0
	return 0, nil
}

func opCMP(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return compare(c, c.A.Value(), addr)
}

func opCPX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return compare(c, c.X.Value(), addr)
}

func opCPY(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return compare(c, c.Y.Value(), addr)
}

// --- Increment / Decrement ----------------------------------------------

func opINC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	v++
	if err := c.mem.Write(addr, v); err != nil {
		return 0, err
	}
	c.P.SetZN(v)
	return 0, nil
}

func opDEC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	v--
	if err := c.mem.Write(addr, v); err != nil {
		return 0, err
	}
	c.P.SetZN(v)
	return 0, nil
}

func opINX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.X.Load(c.X.Value() + 1)
	c.P.SetZN(c.X.Value())
	return 0, nil
}

func opINY(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.Y.Load(c.Y.Value() + 1)
	c.P.SetZN(c.Y.Value())
	return 0, nil
}

func opDEX(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.X.Load(c.X.Value() - 1)
	c.P.SetZN(c.X.Value())
	return 0, nil
}

func opDEY(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.Y.Load(c.Y.Value() - 1)
	c.P.SetZN(c.Y.Value())
	return 0, nil
}

// --- Shifts / Rotates ----------------------------------------------------

func shiftLeft(v uint8) (result uint8, carryOut bool) {
	return v << 1, v&0x80 != 0
}

func shiftRight(v uint8) (result uint8, carryOut bool) {
	return v >> 1, v&0x01 != 0
}

func rotateLeft(v uint8, carry bool) (result uint8, carryOut bool) {
	carryOut = v&0x80 != 0
	result = v << 1
	if carry {
		result |= 0x01
	}
	return result, carryOut
}

func rotateRight(v uint8, carry bool) (result uint8, carryOut bool) {
	carryOut = v&0x01 != 0
	result = v >> 1
	if carry {
		result |= 0x80
	}
	return result, carryOut
}

func opASL(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	if mode == instructions.Implied {
		carryOut := c.A.ASL()
		c.P.Carry = carryOut
		c.P.SetZN(c.A.Value())
		return 0, nil
	}
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	result, carryOut := shiftLeft(v)
	if err := c.mem.Write(addr, result); err != nil {
		return 0, err
	}
	c.P.Carry = carryOut
	c.P.SetZN(result)
	return 0, nil
}

func opLSR(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	if mode == instructions.Implied {
		carryOut := c.A.LSR()
		c.P.Carry = carryOut
		c.P.SetZN(c.A.Value())
		return 0, nil
	}
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	result, carryOut := shiftRight(v)
	if err := c.mem.Write(addr, result); err != nil {
		return 0, err
	}
	c.P.Carry = carryOut
	c.P.SetZN(result)
	return 0, nil
}

func opROL(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	if mode == instructions.Implied {
		carryOut := c.A.ROL(c.P.Carry)
		c.P.Carry = carryOut
		c.P.SetZN(c.A.Value())
		return 0, nil
	}
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	result, carryOut := rotateLeft(v, c.P.Carry)
	if err := c.mem.Write(addr, result); err != nil {
		return 0, err
	}
	c.P.Carry = carryOut
	c.P.SetZN(result)
	return 0, nil
}

func opROR(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	if mode == instructions.Implied {
		carryOut := c.A.ROR(c.P.Carry)
		c.P.Carry = carryOut
		c.P.SetZN(c.A.Value())
		return 0, nil
	}
	v, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	result, carryOut := rotateRight(v, c.P.Carry)
	if err := c.mem.Write(addr, result); err != nil {
		return 0, err
	}
	c.P.Carry = carryOut
	c.P.SetZN(result)
	return 0, nil
}

// --- Jumps / Subroutines -------------------------------------------------

func opJMP(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.PC.Load(addr)
	return 0, nil
}

// opJSR pushes the address of the last byte of the JSR instruction (the
// high byte of the target, i.e. PC-1 after the operand word has been
// consumed) and jumps to addr, per spec.md §4.4.
func opJSR(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	if err := c.pushWord(c.PC.Value() - 1); err != nil {
		return 0, err
	}
	c.PC.Load(addr)
	return 0, nil
}

// opRTS pulls the return address pushed by JSR and resumes at the byte
// immediately following the original JSR's operand.
func opRTS(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	word, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.PC.Load(word + 1)
	return 0, nil
}

// --- Branches --------------------------------------------------------------

// branch applies the common branch-cycle accounting of spec.md §4.4: 0
// extra cycles if not taken, +1 if taken, plus +2 more if the taken branch
// crosses a page boundary.
func branch(c *CPU, taken bool, addr uint16, pageCrossed bool) (int, error) {
	if !taken {
		return 0, nil
	}
	c.PC.Load(addr)
	if pageCrossed {
		return 3, nil
	}
	return 1, nil
}

func opBCC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, !c.P.Carry, addr, pageCrossed)
}

func opBCS(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, c.P.Carry, addr, pageCrossed)
}

func opBEQ(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, c.P.Zero, addr, pageCrossed)
}

func opBNE(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, !c.P.Zero, addr, pageCrossed)
}

// opBMI and opBPL are deliberately distinct here: spec.md §9 flags a
// suspected bug in the teacher's own BPL handler (same polarity as BNE)
// and directs reimplementers to branch on N==0 regardless.
func opBMI(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, c.P.Sign, addr, pageCrossed)
}

func opBPL(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, !c.P.Sign, addr, pageCrossed)
}

func opBVC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, !c.P.Overflow, addr, pageCrossed)
}

func opBVS(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return branch(c, c.P.Overflow, addr, pageCrossed)
}

// --- Flag manipulation -------------------------------------------------

func opCLC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.Carry = false
	return 0, nil
}

func opCLD(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.Decimal = false
	return 0, nil
}

func opCLI(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.InterruptDisable = false
	return 0, nil
}

func opCLV(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.Overflow = false
	return 0, nil
}

func opSEC(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.Carry = true
	return 0, nil
}

func opSED(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.Decimal = true
	return 0, nil
}

func opSEI(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	c.P.InterruptDisable = true
	return 0, nil
}

// --- System --------------------------------------------------------------

// opBRK implements the interrupt sequence of spec.md §4.2/§9: pushes the
// post-opcode PC (the Open Question on whether to push PC or PC+1 is
// decided in DESIGN.md in favor of the source's convention, not real
// hardware's PC+2), pushes P, sets B, and loads PC from IRQVector.
func opBRK(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	if err := c.pushWord(c.PC.Value()); err != nil {
		return 0, err
	}
	// Push P before setting B: the pushed byte reflects the status as it
	// stood before the break, so a later RTI round-trips B back to that
	// pre-break state rather than restoring B set (see DESIGN.md).
	if err := c.PushByte(c.P.Value()); err != nil {
		return 0, err
	}
	c.P.Break = true

	pc, err := c.ReadWord(IRQVector)
	if err != nil {
		return 0, err
	}
	c.PC.Load(pc)
	return 0, nil
}

// opRTI pulls P then pulls PC (low then high). Pulling P restores B from
// bit 4 of the stacked byte; after a BRK that byte was pushed before B was
// set, so B reads cleared again, per spec.md §4.2.
func opRTI(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	p, err := c.PullByte()
	if err != nil {
		return 0, err
	}
	c.P.FromValue(p)

	pc, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.PC.Load(pc)
	return 0, nil
}

func opNOP(c *CPU, mode instructions.AddressingMode, addr uint16, pageCrossed bool) (int, error) {
	return 0, nil
}
