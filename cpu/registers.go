// Package cpu implements the Intel 8080 instruction set: the register
// file, flag computation, the 256-entry opcode dispatch table, and the
// fetch/decode/execute loop.
package cpu

// Registers holds the 8080's architectural state: the seven 8-bit
// registers, the flag byte, and the two 16-bit pointers.
type Registers struct {
	A, B, C, D, E, H, L byte
	F                   byte // flag byte, PSW low order
	SP, PC              uint16
}

// Register field indices, matching the 3-bit encoding used throughout the
// opcode map (rows/columns of MOV, the reg operand of ADD/SUB/etc, and so
// on). RegM denotes indirect access through HL, not a real register.
const (
	RegB byte = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegM
	RegA
)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// BC returns the BC register pair, high byte first.
func (r *Registers) BC() uint16 { return word(r.B, r.C) }

// SetBC stores v into the BC register pair.
func (r *Registers) SetBC(v uint16) { r.B, r.C = hi(v), lo(v) }

// DE returns the DE register pair, high byte first.
func (r *Registers) DE() uint16 { return word(r.D, r.E) }

// SetDE stores v into the DE register pair.
func (r *Registers) SetDE(v uint16) { r.D, r.E = hi(v), lo(v) }

// HL returns the HL register pair, high byte first.
func (r *Registers) HL() uint16 { return word(r.H, r.L) }

// SetHL stores v into the HL register pair.
func (r *Registers) SetHL(v uint16) { r.H, r.L = hi(v), lo(v) }

func word(h, l byte) uint16 { return uint16(h)<<8 | uint16(l) }
func hi(v uint16) byte      { return byte(v >> 8) }
func lo(v uint16) byte      { return byte(v) }
