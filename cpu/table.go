package cpu

import "github.com/Oppenjaimer/6502-emulator/cpu/instructions"

// buildOpcodeTable populates the 256-entry dispatch table with the 151
// documented 6502 opcodes of spec.md §6. Unpopulated entries remain nil,
// the "unknown opcode" case of spec.md §7 — the 105 illegal/undocumented
// opcodes are deliberately left unimplemented per spec.md's Non-goals.
//
// Store variants of indexed addressing modes are priced at their worst
// case in the base cycle count and are never marked PageSensitive, per
// spec.md §4.4 ("Store variants of indexed modes do NOT get a page-cross
// penalty").
func buildOpcodeTable(table *[256]*opcodeEntry) {
	def := func(op uint8, mnemonic string, bytes, cycles int, mode instructions.AddressingMode, pageSensitive bool, effect instructions.Category, h handler) {
		table[op] = &opcodeEntry{
			defn: instructions.Definition{
				OpCode:         op,
				Mnemonic:       mnemonic,
				Bytes:          bytes,
				Cycles:         cycles,
				AddressingMode: mode,
				PageSensitive:  pageSensitive,
				Effect:         effect,
			},
			handler: h,
		}
	}

	I := instructions.Implied
	IMM := instructions.Immediate
	ZP := instructions.ZeroPage
	ZPX := instructions.ZeroPageIndexedX
	ZPY := instructions.ZeroPageIndexedY
	ABS := instructions.Absolute
	ABX := instructions.AbsoluteIndexedX
	ABY := instructions.AbsoluteIndexedY
	IND := instructions.Indirect
	IDX := instructions.IndexedIndirect
	IDY := instructions.IndirectIndexed
	REL := instructions.Relative

	Read := instructions.Read
	Write := instructions.Write
	Modify := instructions.Modify
	Flow := instructions.Flow
	Subroutine := instructions.Subroutine
	Interrupt := instructions.Interrupt
	Sys := instructions.System

	// LDA
	def(0xA9, "LDA", 2, 2, IMM, false, Read, opLDA)
	def(0xA5, "LDA", 2, 3, ZP, false, Read, opLDA)
	def(0xB5, "LDA", 2, 4, ZPX, false, Read, opLDA)
	def(0xAD, "LDA", 3, 4, ABS, false, Read, opLDA)
	def(0xBD, "LDA", 3, 4, ABX, true, Read, opLDA)
	def(0xB9, "LDA", 3, 4, ABY, true, Read, opLDA)
	def(0xA1, "LDA", 2, 6, IDX, false, Read, opLDA)
	def(0xB1, "LDA", 2, 5, IDY, true, Read, opLDA)

	// LDX
	def(0xA2, "LDX", 2, 2, IMM, false, Read, opLDX)
	def(0xA6, "LDX", 2, 3, ZP, false, Read, opLDX)
	def(0xB6, "LDX", 2, 4, ZPY, false, Read, opLDX)
	def(0xAE, "LDX", 3, 4, ABS, false, Read, opLDX)
	def(0xBE, "LDX", 3, 4, ABY, true, Read, opLDX)

	// LDY
	def(0xA0, "LDY", 2, 2, IMM, false, Read, opLDY)
	def(0xA4, "LDY", 2, 3, ZP, false, Read, opLDY)
	def(0xB4, "LDY", 2, 4, ZPX, false, Read, opLDY)
	def(0xAC, "LDY", 3, 4, ABS, false, Read, opLDY)
	def(0xBC, "LDY", 3, 4, ABX, true, Read, opLDY)

	// STA
	def(0x85, "STA", 2, 3, ZP, false, Write, opSTA)
	def(0x95, "STA", 2, 4, ZPX, false, Write, opSTA)
	def(0x8D, "STA", 3, 4, ABS, false, Write, opSTA)
	def(0x9D, "STA", 3, 5, ABX, false, Write, opSTA)
	def(0x99, "STA", 3, 5, ABY, false, Write, opSTA)
	def(0x81, "STA", 2, 6, IDX, false, Write, opSTA)
	def(0x91, "STA", 2, 6, IDY, false, Write, opSTA)

	// STX / STY
	def(0x86, "STX", 2, 3, ZP, false, Write, opSTX)
	def(0x96, "STX", 2, 4, ZPY, false, Write, opSTX)
	def(0x8E, "STX", 3, 4, ABS, false, Write, opSTX)
	def(0x84, "STY", 2, 3, ZP, false, Write, opSTY)
	def(0x94, "STY", 2, 4, ZPX, false, Write, opSTY)
	def(0x8C, "STY", 3, 4, ABS, false, Write, opSTY)

	// Transfers
	def(0xAA, "TAX", 1, 2, I, false, Read, opTAX)
	def(0xA8, "TAY", 1, 2, I, false, Read, opTAY)
	def(0x8A, "TXA", 1, 2, I, false, Read, opTXA)
	def(0x98, "TYA", 1, 2, I, false, Read, opTYA)
	def(0xBA, "TSX", 1, 2, I, false, Read, opTSX)
	def(0x9A, "TXS", 1, 2, I, false, Read, opTXS)

	// Stack ops
	def(0x48, "PHA", 1, 3, I, false, Write, opPHA)
	def(0x08, "PHP", 1, 3, I, false, Write, opPHP)
	def(0x68, "PLA", 1, 4, I, false, Read, opPLA)
	def(0x28, "PLP", 1, 4, I, false, Read, opPLP)

	// AND
	def(0x29, "AND", 2, 2, IMM, false, Read, opAND)
	def(0x25, "AND", 2, 3, ZP, false, Read, opAND)
	def(0x35, "AND", 2, 4, ZPX, false, Read, opAND)
	def(0x2D, "AND", 3, 4, ABS, false, Read, opAND)
	def(0x3D, "AND", 3, 4, ABX, true, Read, opAND)
	def(0x39, "AND", 3, 4, ABY, true, Read, opAND)
	def(0x21, "AND", 2, 6, IDX, false, Read, opAND)
	def(0x31, "AND", 2, 5, IDY, true, Read, opAND)

	// ORA
	def(0x09, "ORA", 2, 2, IMM, false, Read, opORA)
	def(0x05, "ORA", 2, 3, ZP, false, Read, opORA)
	def(0x15, "ORA", 2, 4, ZPX, false, Read, opORA)
	def(0x0D, "ORA", 3, 4, ABS, false, Read, opORA)
	def(0x1D, "ORA", 3, 4, ABX, true, Read, opORA)
	def(0x19, "ORA", 3, 4, ABY, true, Read, opORA)
	def(0x01, "ORA", 2, 6, IDX, false, Read, opORA)
	def(0x11, "ORA", 2, 5, IDY, true, Read, opORA)

	// EOR
	def(0x49, "EOR", 2, 2, IMM, false, Read, opEOR)
	def(0x45, "EOR", 2, 3, ZP, false, Read, opEOR)
	def(0x55, "EOR", 2, 4, ZPX, false, Read, opEOR)
	def(0x4D, "EOR", 3, 4, ABS, false, Read, opEOR)
	def(0x5D, "EOR", 3, 4, ABX, true, Read, opEOR)
	def(0x59, "EOR", 3, 4, ABY, true, Read, opEOR)
	def(0x41, "EOR", 2, 6, IDX, false, Read, opEOR)
	def(0x51, "EOR", 2, 5, IDY, true, Read, opEOR)

	// BIT
	def(0x24, "BIT", 2, 3, ZP, false, Read, opBIT)
	def(0x2C, "BIT", 3, 4, ABS, false, Read, opBIT)

	// ADC
	def(0x69, "ADC", 2, 2, IMM, false, Read, opADC)
	def(0x65, "ADC", 2, 3, ZP, false, Read, opADC)
	def(0x75, "ADC", 2, 4, ZPX, false, Read, opADC)
	def(0x6D, "ADC", 3, 4, ABS, false, Read, opADC)
	def(0x7D, "ADC", 3, 4, ABX, true, Read, opADC)
	def(0x79, "ADC", 3, 4, ABY, true, Read, opADC)
	def(0x61, "ADC", 2, 6, IDX, false, Read, opADC)
	def(0x71, "ADC", 2, 5, IDY, true, Read, opADC)

	// SBC
	def(0xE9, "SBC", 2, 2, IMM, false, Read, opSBC)
	def(0xE5, "SBC", 2, 3, ZP, false, Read, opSBC)
	def(0xF5, "SBC", 2, 4, ZPX, false, Read, opSBC)
	def(0xED, "SBC", 3, 4, ABS, false, Read, opSBC)
	def(0xFD, "SBC", 3, 4, ABX, true, Read, opSBC)
	def(0xF9, "SBC", 3, 4, ABY, true, Read, opSBC)
	def(0xE1, "SBC", 2, 6, IDX, false, Read, opSBC)
	def(0xF1, "SBC", 2, 5, IDY, true, Read, opSBC)

	// CMP
	def(0xC9, "CMP", 2, 2, IMM, false, Read, opCMP)
	def(0xC5, "CMP", 2, 3, ZP, false, Read, opCMP)
	def(0xD5, "CMP", 2, 4, ZPX, false, Read, opCMP)
	def(0xCD, "CMP", 3, 4, ABS, false, Read, opCMP)
	def(0xDD, "CMP", 3, 4, ABX, true, Read, opCMP)
	def(0xD9, "CMP", 3, 4, ABY, true, Read, opCMP)
	def(0xC1, "CMP", 2, 6, IDX, false, Read, opCMP)
	def(0xD1, "CMP", 2, 5, IDY, true, Read, opCMP)

	// CPX / CPY
	def(0xE0, "CPX", 2, 2, IMM, false, Read, opCPX)
	def(0xE4, "CPX", 2, 3, ZP, false, Read, opCPX)
	def(0xEC, "CPX", 3, 4, ABS, false, Read, opCPX)
	def(0xC0, "CPY", 2, 2, IMM, false, Read, opCPY)
	def(0xC4, "CPY", 2, 3, ZP, false, Read, opCPY)
	def(0xCC, "CPY", 3, 4, ABS, false, Read, opCPY)

	// INC / DEC
	def(0xE6, "INC", 2, 5, ZP, false, Modify, opINC)
	def(0xF6, "INC", 2, 6, ZPX, false, Modify, opINC)
	def(0xEE, "INC", 3, 6, ABS, false, Modify, opINC)
	def(0xFE, "INC", 3, 7, ABX, false, Modify, opINC)
	def(0xC6, "DEC", 2, 5, ZP, false, Modify, opDEC)
	def(0xD6, "DEC", 2, 6, ZPX, false, Modify, opDEC)
	def(0xCE, "DEC", 3, 6, ABS, false, Modify, opDEC)
	def(0xDE, "DEC", 3, 7, ABX, false, Modify, opDEC)

	def(0xE8, "INX", 1, 2, I, false, Read, opINX)
	def(0xC8, "INY", 1, 2, I, false, Read, opINY)
	def(0xCA, "DEX", 1, 2, I, false, Read, opDEX)
	def(0x88, "DEY", 1, 2, I, false, Read, opDEY)

	// ASL / LSR / ROL / ROR
	def(0x0A, "ASL", 1, 2, I, false, Modify, opASL)
	def(0x06, "ASL", 2, 5, ZP, false, Modify, opASL)
	def(0x16, "ASL", 2, 6, ZPX, false, Modify, opASL)
	def(0x0E, "ASL", 3, 6, ABS, false, Modify, opASL)
	def(0x1E, "ASL", 3, 7, ABX, false, Modify, opASL)

	def(0x4A, "LSR", 1, 2, I, false, Modify, opLSR)
	def(0x46, "LSR", 2, 5, ZP, false, Modify, opLSR)
	def(0x56, "LSR", 2, 6, ZPX, false, Modify, opLSR)
	def(0x4E, "LSR", 3, 6, ABS, false, Modify, opLSR)
	def(0x5E, "LSR", 3, 7, ABX, false, Modify, opLSR)

	def(0x2A, "ROL", 1, 2, I, false, Modify, opROL)
	def(0x26, "ROL", 2, 5, ZP, false, Modify, opROL)
	def(0x36, "ROL", 2, 6, ZPX, false, Modify, opROL)
	def(0x2E, "ROL", 3, 6, ABS, false, Modify, opROL)
	def(0x3E, "ROL", 3, 7, ABX, false, Modify, opROL)

	def(0x6A, "ROR", 1, 2, I, false, Modify, opROR)
	def(0x66, "ROR", 2, 5, ZP, false, Modify, opROR)
	def(0x76, "ROR", 2, 6, ZPX, false, Modify, opROR)
	def(0x6E, "ROR", 3, 6, ABS, false, Modify, opROR)
	def(0x7E, "ROR", 3, 7, ABX, false, Modify, opROR)

	// Jumps / Subroutines
	def(0x4C, "JMP", 3, 3, ABS, false, Flow, opJMP)
	def(0x6C, "JMP", 3, 5, IND, false, Flow, opJMP)
	def(0x20, "JSR", 3, 6, ABS, false, Subroutine, opJSR)
	def(0x60, "RTS", 1, 6, I, false, Subroutine, opRTS)

	// Branches
	def(0x90, "BCC", 2, 2, REL, false, Flow, opBCC)
	def(0xB0, "BCS", 2, 2, REL, false, Flow, opBCS)
	def(0xF0, "BEQ", 2, 2, REL, false, Flow, opBEQ)
	def(0xD0, "BNE", 2, 2, REL, false, Flow, opBNE)
	def(0x30, "BMI", 2, 2, REL, false, Flow, opBMI)
	def(0x10, "BPL", 2, 2, REL, false, Flow, opBPL)
	def(0x50, "BVC", 2, 2, REL, false, Flow, opBVC)
	def(0x70, "BVS", 2, 2, REL, false, Flow, opBVS)

	// Flag manipulation
	def(0x18, "CLC", 1, 2, I, false, Read, opCLC)
	def(0xD8, "CLD", 1, 2, I, false, Read, opCLD)
	def(0x58, "CLI", 1, 2, I, false, Read, opCLI)
	def(0xB8, "CLV", 1, 2, I, false, Read, opCLV)
	def(0x38, "SEC", 1, 2, I, false, Read, opSEC)
	def(0xF8, "SED", 1, 2, I, false, Read, opSED)
	def(0x78, "SEI", 1, 2, I, false, Read, opSEI)

	// System
	def(0x00, "BRK", 1, 7, I, false, Interrupt, opBRK)
	def(0x40, "RTI", 1, 6, I, false, Interrupt, opRTI)
	def(0xEA, "NOP", 1, 2, I, false, Sys, opNOP)
}
