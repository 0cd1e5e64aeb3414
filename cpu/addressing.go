package cpu

import (
	"github.com/Oppenjaimer/6502-emulator/cpu/execution"
	"github.com/Oppenjaimer/6502-emulator/cpu/instructions"
)

// resolveAddress implements the addressing-mode resolver of spec.md §4.3.
// It consumes whatever operand bytes the mode requires (advancing PC as it
// goes) and returns the effective address, whether a page boundary was
// crossed, and any hardware bug the mode triggered. Implemented as a
// switch over instructions.AddressingMode rather than per-mode types, the
// "tagged switch" form spec.md §9 says is equally faithful to a
// table-of-descriptors design.
func (c *CPU) resolveAddress(mode instructions.AddressingMode) (addr uint16, pageCrossed bool, bug execution.Bug, err error) {
	switch mode {
	case instructions.Implied:
		return 0, false, execution.NoBug, nil

	case instructions.Immediate:
		addr = c.PC.Value()
		c.PC.Increment(1)
		return addr, false, execution.NoBug, nil

	case instructions.ZeroPage:
		b, err := c.fetchOperandByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return uint16(b), false, execution.NoBug, nil

	case instructions.ZeroPageIndexedX:
		b, err := c.fetchOperandByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return uint16(b + c.X.Value()), false, execution.NoBug, nil

	case instructions.ZeroPageIndexedY:
		b, err := c.fetchOperandByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return uint16(b + c.Y.Value()), false, execution.NoBug, nil

	case instructions.Relative:
		b, err := c.fetchOperandByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		base := c.PC.Value()
		target := base + uint16(int16(int8(b)))
		return target, (base & 0xFF00) != (target & 0xFF00), execution.NoBug, nil

	case instructions.Absolute:
		word, err := c.fetchOperandWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return word, false, execution.NoBug, nil

	case instructions.AbsoluteIndexedX:
		base, err := c.fetchOperandWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		addr = base + uint16(c.X.Value())
		return addr, (base & 0xFF00) != (addr & 0xFF00), execution.NoBug, nil

	case instructions.AbsoluteIndexedY:
		base, err := c.fetchOperandWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		addr = base + uint16(c.Y.Value())
		return addr, (base & 0xFF00) != (addr & 0xFF00), execution.NoBug, nil

	case instructions.Indirect:
		pointer, err := c.fetchOperandWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		// MANDATORY hardware quirk (spec.md §4.3): when the pointer's low
		// byte is 0xFF, the high byte of the target is read from
		// pointer&0xFF00 rather than pointer+1, which would otherwise
		// cross into the next page.
		if uint8(pointer) == 0xFF {
			lo, err := c.mem.Read(pointer)
			if err != nil {
				return 0, false, execution.NoBug, err
			}
			hi, err := c.mem.Read(pointer & 0xFF00)
			if err != nil {
				return 0, false, execution.NoBug, err
			}
			return uint16(hi)<<8 | uint16(lo), false, execution.JMPIndirectPageWrap, nil
		}
		word, err := c.readWordWrapping(pointer)
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return word, false, execution.NoBug, nil

	case instructions.IndexedIndirect:
		b, err := c.fetchOperandByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		zp := b + c.X.Value()
		word, err := c.readWordZeroPage(zp)
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return word, false, execution.NoBug, nil

	case instructions.IndirectIndexed:
		b, err := c.fetchOperandByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		base, err := c.readWordZeroPage(b)
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		addr = base + uint16(c.Y.Value())
		return addr, (base & 0xFF00) != (addr & 0xFF00), execution.NoBug, nil
	}

	return 0, false, execution.NoBug, nil
}

// fetchOperandByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchOperandByte() (uint8, error) {
	b, err := c.mem.Read(c.PC.Value())
	if err != nil {
		return 0, err
	}
	c.PC.Increment(1)
	return b, nil
}

// fetchOperandWord reads the little-endian word at PC and advances PC by
// two.
func (c *CPU) fetchOperandWord() (uint16, error) {
	lo, err := c.fetchOperandByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetchOperandByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readWordWrapping reads a little-endian word at addr, wrapping the high
// byte read around 0xFFFF to 0x0000 rather than halting, matching hardware
// address-bus wraparound (spec.md §4.1).
func (c *CPU) readWordWrapping(addr uint16) (uint16, error) {
	lo, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readWordZeroPage reads a little-endian word stored at zero-page address
// zp, wrapping the high-byte fetch within page zero (zp+1 computed modulo
// 256) rather than crossing into page one.
func (c *CPU) readWordZeroPage(zp uint8) (uint16, error) {
	lo, err := c.mem.Read(uint16(zp))
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(uint16(zp + 1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
