package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go8080/iobus"
)

// flatMem is a bare 64KiB array satisfying the mem interface, used to drive
// the CPU in isolation without pulling in the memory package's ROM overlay.
type flatMem [1 << 16]byte

func (m *flatMem) Read(addr uint16) byte     { return m[addr] }
func (m *flatMem) Write(addr uint16, v byte) { m[addr] = v }

func newTestCPU() (*CPU, *flatMem) {
	m := &flatMem{}
	bus := iobus.New()
	return New(m, bus), m
}

func load(m *flatMem, addr uint16, bytes ...byte) {
	for i, b := range bytes {
		m[addr+uint16(i)] = b
	}
}

func TestResetZeroesArchitecturalState(t *testing.T) {
	c, _ := newTestCPU()
	c.Reg.A = 0xFF
	c.Reg.PC = 0x1234
	c.IE = true
	c.Halted = true

	c.Reset()

	assert.Equal(t, Registers{}, c.Reg)
	assert.False(t, c.IE)
	assert.False(t, c.Halted)
}

func TestMviAndAddSetsFlags(t *testing.T) {
	c, m := newTestCPU()
	// MVI A,0x7F ; MVI B,0x01 ; ADD B -> A=0x80, S set, Z clear, AC set.
	load(m, 0, 0x3E, 0x7F, 0x06, 0x01, 0x80)

	c.Step()
	c.Step()
	cycles := c.Step()

	assert.Equal(t, byte(0x80), c.Reg.A)
	assert.Equal(t, 4, cycles)
	assert.True(t, testFlag(c.Reg.F, FlagS))
	assert.False(t, testFlag(c.Reg.F, FlagZ))
	assert.True(t, testFlag(c.Reg.F, FlagAC))
	assert.False(t, testFlag(c.Reg.F, FlagC))
}

func TestAddOverflowSetsCarryAndZero(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0, 0x3E, 0xFF, 0x06, 0x01, 0x80)

	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x00), c.Reg.A)
	assert.True(t, testFlag(c.Reg.F, FlagZ))
	assert.True(t, testFlag(c.Reg.F, FlagC))
	assert.True(t, testFlag(c.Reg.F, FlagP))
}

func TestPushPopPSWNormalizesFixedBits(t *testing.T) {
	c, m := newTestCPU()
	_ = m
	c.Reg.A = 0x42
	c.Reg.F = 0x00 // all flags clear, including the fixed-1 bit
	c.Reg.SP = 0x2000

	c.push16(c.PSW())
	got := c.pop16()

	assert.True(t, got&0x02 != 0, "fixed bit 1 must read back as 1")
	assert.True(t, got&0x08 == 0, "fixed bit 3 must read back as 0")
	assert.True(t, got&0x20 == 0, "fixed bit 5 must read back as 0")
	assert.Equal(t, byte(0x42), byte(got>>8))
}

func TestPushWritesHighByteAboveLow(t *testing.T) {
	c, m := newTestCPU()
	c.Reg.SP = 0x2000
	c.push16(0xBEEF)

	assert.Equal(t, byte(0xEF), m[0x1FFE])
	assert.Equal(t, byte(0xBE), m[0x1FFF])
	assert.Equal(t, uint16(0x1FFE), c.Reg.SP)
}

func TestConditionalJumpAlwaysTakesTenCyclesRegardlessOfOutcome(t *testing.T) {
	c, m := newTestCPU()
	// JNZ with Z set (not taken) still reads both operand bytes and costs 10.
	load(m, 0, 0xC2, 0x00, 0x10)
	c.Reg.F = setFlag(c.Reg.F, FlagZ, true)

	cycles := c.Step()

	assert.Equal(t, 10, cycles)
	assert.Equal(t, uint16(3), c.Reg.PC, "PC must advance past the untaken target")
}

func TestConditionalCallHasDifferentTakenAndNotTakenCycles(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0, 0xC4, 0x00, 0x10) // CNZ 0x1000

	c.Reg.F = setFlag(c.Reg.F, FlagZ, true) // not taken
	notTaken := c.Step()

	c.Reset()
	load(m, 0, 0xC4, 0x00, 0x10)
	c.Reg.F = setFlag(c.Reg.F, FlagZ, false) // taken
	taken := c.Step()

	assert.Equal(t, 11, notTaken)
	assert.Equal(t, 17, taken)
	assert.Equal(t, uint16(0x1000), c.Reg.PC)
}

func TestHaltParksTheFetchLoop(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0, 0x76) // HLT

	cycles := c.Step()
	require.True(t, c.Halted)
	assert.Equal(t, 7, cycles)

	again := c.Step()
	assert.Equal(t, 7, again, "Step keeps returning haltCycles without re-fetching")
	assert.Equal(t, uint16(1), c.Reg.PC, "PC must not advance while halted")
}

func TestInterruptInjectsOpcodeWithoutAdvancingPC(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0, 0x76) // HLT at 0x0000
	c.IE = true

	c.Step() // halts
	require.True(t, c.Halted)

	c.Interrupt(0xFF) // RST 7
	cycles := c.Step()

	assert.False(t, c.Halted, "interrupt must clear the halted latch")
	assert.False(t, c.IE, "interrupt must disable further interrupts")
	assert.Equal(t, uint16(0x0038), c.Reg.PC)
	assert.Equal(t, 11, cycles)
}

func TestInterruptIgnoredWhenDisabled(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0, 0x00) // NOP
	c.IE = false

	c.Interrupt(0xFF)
	assert.False(t, c.hasPendingInterrupt)

	cycles := c.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(1), c.Reg.PC)
}

func TestDaaCorrectsPackedBCDAddition(t *testing.T) {
	c, m := newTestCPU()
	// 0x15 + 0x27 = 0x3C raw; DAA must yield 0x42 in BCD.
	load(m, 0, 0x3E, 0x15, 0x06, 0x27, 0x80, 0x27)

	c.Step()
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x42), c.Reg.A)
}

func TestInOutRoundTripsThroughBus(t *testing.T) {
	c, m := newTestCPU()
	dev := &loopbackDevice{}
	c.Bus.Map(0x05, dev)
	load(m, 0, 0x3E, 0x99, 0xD3, 0x05, 0xDB, 0x05)

	c.Step() // MVI A,0x99
	c.Step() // OUT 5
	c.Step() // IN 5

	assert.Equal(t, byte(0x99), dev.last)
	assert.Equal(t, byte(0x99), c.Reg.A)
}

type loopbackDevice struct{ last byte }

func (d *loopbackDevice) ReadPort(port byte) byte    { return d.last }
func (d *loopbackDevice) WritePort(port byte, v byte) { d.last = v }

func TestUndocumentedOpcodeAliasesBehaveAsTheirCanonicalForm(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0, 0x08) // undocumented NOP alias

	cycles := c.Step()

	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(1), c.Reg.PC)
}

func TestOpcodeNameReportsMnemonic(t *testing.T) {
	assert.Equal(t, "NOP", OpcodeName(0x00))
	assert.Equal(t, "HLT", OpcodeName(0x76))
	assert.Equal(t, "MOV B,C", OpcodeName(0x41))
}

// TestArithmeticSequenceFlags steps a short program through ADD, SUB and
// ANI and checks A and every flag bit after each instruction, the way
// hejops-gone's cpu_test.go steps TestThirty through a table of expected
// intermediate states rather than asserting only the final one.
func TestArithmeticSequenceFlags(t *testing.T) {
	c, m := newTestCPU()
	load(m, 0,
		0x3E, 0x0F, // MVI A,0x0F
		0x06, 0x01, // MVI B,0x01
		0x80,       // ADD B      -> A=0x10
		0x06, 0xF0, // MVI B,0xF0
		0x80,       // ADD B      -> A=0x00
		0x90,       // SUB B      -> A=0x10, borrow
		0xE6, 0x00, // ANI 0x00   -> A=0x00
		0x76, // HLT
	)

	for _, want := range []struct {
		instName string
		a        byte
		s, z, ac, p, carry bool
	}{
		{"MVI A", 0x0F, false, false, false, false, false},
		{"MVI B", 0x0F, false, false, false, false, false},
		{"ADD B", 0x10, false, false, true, false, false},
		{"MVI B", 0x10, false, false, true, false, false},
		{"ADD B", 0x00, false, true, false, true, true},
		{"SUB B", 0x10, false, false, false, false, true},
		{"ANI", 0x00, false, true, false, true, false},
		{"HLT", 0x00, false, true, false, true, false},
	} {
		currInst := OpcodeName(m[c.Reg.PC])
		c.Step()
		assert.Equal(t, want.a, c.Reg.A, "incorrect A after %s", currInst)
		assert.Equal(t, want.s, testFlag(c.Reg.F, FlagS), "incorrect S after %s", currInst)
		assert.Equal(t, want.z, testFlag(c.Reg.F, FlagZ), "incorrect Z after %s", currInst)
		assert.Equal(t, want.ac, testFlag(c.Reg.F, FlagAC), "incorrect AC after %s", currInst)
		assert.Equal(t, want.p, testFlag(c.Reg.F, FlagP), "incorrect P after %s", currInst)
		assert.Equal(t, want.carry, testFlag(c.Reg.F, FlagC), "incorrect C after %s", currInst)
		assert.Equal(t, want.instName, currInst, "stepped wrong instruction")
	}

	require.True(t, c.Halted)
}
