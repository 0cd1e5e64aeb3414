package cpu

// Flag identifies one bit of the packed status register P, for the
// GetFlag/SetFlag driver surface named in spec.md §6.
type Flag int

// The eight flags of the 6502 status register, LSB to MSB.
const (
	FlagCarry Flag = iota
	FlagZero
	FlagInterruptDisable
	FlagDecimal
	FlagBreak
	FlagUnused
	FlagOverflow
	FlagSign
)

// GetFlag returns the current state of flag f. FlagUnused always reads as
// true, matching real hardware.
func (c *CPU) GetFlag(f Flag) bool {
	switch f {
	case FlagCarry:
		return c.P.Carry
	case FlagZero:
		return c.P.Zero
	case FlagInterruptDisable:
		return c.P.InterruptDisable
	case FlagDecimal:
		return c.P.Decimal
	case FlagBreak:
		return c.P.Break
	case FlagUnused:
		return true
	case FlagOverflow:
		return c.P.Overflow
	case FlagSign:
		return c.P.Sign
	}
	return false
}

// SetFlag sets flag f to v. Setting FlagUnused has no effect.
func (c *CPU) SetFlag(f Flag, v bool) {
	switch f {
	case FlagCarry:
		c.P.Carry = v
	case FlagZero:
		c.P.Zero = v
	case FlagInterruptDisable:
		c.P.InterruptDisable = v
	case FlagDecimal:
		c.P.Decimal = v
	case FlagBreak:
		c.P.Break = v
	case FlagOverflow:
		c.P.Overflow = v
	case FlagSign:
		c.P.Sign = v
	}
}
