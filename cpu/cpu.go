package cpu

import "go8080/iobus"

// haltCycles is the nominal cycle count Step returns while parked in HLT.
const haltCycles = 7

// mem is the minimal surface the CPU needs from the memory subsystem. It
// is satisfied by *memory.Memory without cpu importing that package's
// concrete type, avoiding a hard dependency either way.
type mem interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// CPU is the 8080 fetch/decode/execute engine. It owns no memory or
// devices; Mem and Bus are borrowed handles supplied at construction,
// mirroring how the register file has no memory of its own.
type CPU struct {
	Reg Registers
	Mem mem
	Bus *iobus.Bus

	IE     bool
	Halted bool

	pendingInterrupt    byte
	hasPendingInterrupt bool
}

// New constructs a CPU wired to mem and bus, in the power-on state.
func New(m mem, bus *iobus.Bus) *CPU {
	c := &CPU{Mem: m, Bus: bus}
	c.Reset()
	return c
}

// Reset returns all architectural state to power-on values: registers and
// flags zeroed, PC and SP at 0x0000, interrupts disabled, not halted.
func (c *CPU) Reset() {
	c.Reg = Registers{}
	c.IE = false
	c.Halted = false
	c.hasPendingInterrupt = false
}

// Interrupt signals that an external device placed opcode on the data bus
// during an interrupt acknowledge cycle. A no-op if interrupts are
// disabled. Otherwise interrupts are disabled, the halted latch clears,
// and opcode is executed by the next Step call in place of a normal fetch.
func (c *CPU) Interrupt(opcode byte) {
	if !c.IE {
		return
	}
	c.IE = false
	c.Halted = false
	c.pendingInterrupt = opcode
	c.hasPendingInterrupt = true
}

// Step executes exactly one instruction and returns the number of T-states
// it nominally consumes.
func (c *CPU) Step() int {
	if c.Halted {
		return haltCycles
	}

	var op byte
	if c.hasPendingInterrupt {
		op = c.pendingInterrupt
		c.hasPendingInterrupt = false
	} else {
		op = c.fetch8()
	}

	info := &opcodeTable[op]
	return info.exec(c)
}

// --- memory/operand plumbing ---

func (c *CPU) fetch8() byte {
	b := c.Mem.Read(c.Reg.PC)
	c.Reg.PC++
	return b
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return word(hi, lo)
}

func (c *CPU) readReg(idx byte) byte {
	switch idx {
	case RegB:
		return c.Reg.B
	case RegC:
		return c.Reg.C
	case RegD:
		return c.Reg.D
	case RegE:
		return c.Reg.E
	case RegH:
		return c.Reg.H
	case RegL:
		return c.Reg.L
	case RegM:
		return c.Mem.Read(c.Reg.HL())
	case RegA:
		return c.Reg.A
	default:
		panic("cpu: invalid register index")
	}
}

func (c *CPU) writeReg(idx byte, v byte) {
	switch idx {
	case RegB:
		c.Reg.B = v
	case RegC:
		c.Reg.C = v
	case RegD:
		c.Reg.D = v
	case RegE:
		c.Reg.E = v
	case RegH:
		c.Reg.H = v
	case RegL:
		c.Reg.L = v
	case RegM:
		c.Mem.Write(c.Reg.HL(), v)
	case RegA:
		c.Reg.A = v
	default:
		panic("cpu: invalid register index")
	}
}

func (c *CPU) push16(v uint16) {
	c.Reg.SP -= 2
	c.Mem.Write(c.Reg.SP+1, hi(v))
	c.Mem.Write(c.Reg.SP, lo(v))
}

func (c *CPU) pop16() uint16 {
	low := c.Mem.Read(c.Reg.SP)
	high := c.Mem.Read(c.Reg.SP + 1)
	c.Reg.SP += 2
	return word(high, low)
}

// PSW returns A (high) and the normalized flag byte (low) as a single
// 16-bit quantity, the format PUSH PSW writes to memory.
func (c *CPU) PSW() uint16 {
	return word(c.Reg.A, pswNormalize(c.Reg.F))
}

// SetPSW loads A and the flag byte from a PSW value, normalizing the fixed
// bits, the format POP PSW reads from memory.
func (c *CPU) SetPSW(v uint16) {
	c.Reg.A = hi(v)
	c.Reg.F = pswNormalize(lo(v))
}

// conditionTrue evaluates one of the eight branch conditions encoded in
// bits 3-5 of a conditional opcode: NZ,Z,NC,C,PO,PE,P,M.
func (c *CPU) conditionTrue(cc byte) bool {
	switch cc {
	case 0:
		return !testFlag(c.Reg.F, FlagZ)
	case 1:
		return testFlag(c.Reg.F, FlagZ)
	case 2:
		return !testFlag(c.Reg.F, FlagC)
	case 3:
		return testFlag(c.Reg.F, FlagC)
	case 4:
		return !testFlag(c.Reg.F, FlagP)
	case 5:
		return testFlag(c.Reg.F, FlagP)
	case 6:
		return !testFlag(c.Reg.F, FlagS)
	case 7:
		return testFlag(c.Reg.F, FlagS)
	default:
		panic("cpu: invalid condition code")
	}
}
