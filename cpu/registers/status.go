package registers

import "strings"

// StatusRegister is the packed flag byte P, stored as individual bool
// fields for ergonomic access by instruction handlers and round-tripped to
// a byte via Value/FromValue for PHP/PLP and the interrupt sequences — the
// exact bit pattern, including the always-1 unused bit, must survive a
// push/pull round trip per spec.md's "Flag packing" design note.
type StatusRegister struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Sign             bool
}

// Bit positions of the packed status byte, LSB to MSB: C Z I D B U V N.
const (
	flagCarry    = 0x01
	flagZero     = 0x02
	flagIRQ      = 0x04
	flagDecimal  = 0x08
	flagBreak    = 0x10
	flagUnused   = 0x20
	flagOverflow = 0x40
	flagSign     = 0x80
)

// NewStatusRegister returns a status register with I and U set, matching
// the reset value 0b00100100 from spec.md §3.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{}
	sr.FromValue(flagIRQ | flagUnused)
	return sr
}

// Label returns the canonical register name.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	var s strings.Builder
	write := func(set bool, c rune) {
		if set {
			s.WriteRune(c)
		} else {
			s.WriteRune(c + ('a' - 'A'))
		}
	}
	write(sr.Sign, 'N')
	write(sr.Overflow, 'V')
	s.WriteRune('-')
	write(sr.Break, 'B')
	write(sr.Decimal, 'D')
	write(sr.InterruptDisable, 'I')
	write(sr.Zero, 'Z')
	write(sr.Carry, 'C')
	return s.String()
}

// Value packs the status register into the byte representation used by
// PHP, BRK, IRQ and NMI. The unused bit always reads as 1 on real
// hardware.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	if sr.Carry {
		v |= flagCarry
	}
	if sr.Zero {
		v |= flagZero
	}
	if sr.InterruptDisable {
		v |= flagIRQ
	}
	if sr.Decimal {
		v |= flagDecimal
	}
	if sr.Break {
		v |= flagBreak
	}
	if sr.Overflow {
		v |= flagOverflow
	}
	if sr.Sign {
		v |= flagSign
	}
	v |= flagUnused
	return v
}

// FromValue unpacks v (e.g. pulled from the stack by PLP or RTI) into the
// status register wholesale.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Carry = v&flagCarry != 0
	sr.Zero = v&flagZero != 0
	sr.InterruptDisable = v&flagIRQ != 0
	sr.Decimal = v&flagDecimal != 0
	sr.Break = v&flagBreak != 0
	sr.Overflow = v&flagOverflow != 0
	sr.Sign = v&flagSign != 0
}

// SetZN sets Zero and Sign from the given 8-bit result, the flag pair
// almost every data-moving instruction updates.
func (sr *StatusRegister) SetZN(result uint8) {
	sr.Zero = result == 0
	sr.Sign = result&0x80 != 0
}

// Reset clears the status register to its reset-time value (I and U set).
func (sr *StatusRegister) Reset() {
	*sr = NewStatusRegister()
}
