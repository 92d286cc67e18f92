package cpu

import "fmt"

// String renders the register file and flag byte for debugging, in the
// terse single-block style of a monitor register dump.
func (r Registers) String() string {
	return fmt.Sprintf(
		"A:%02x B:%02x C:%02x D:%02x E:%02x H:%02x L:%02x F:%02x SP:%04x PC:%04x",
		r.A, r.B, r.C, r.D, r.E, r.H, r.L, r.F, r.SP, r.PC,
	)
}

// String renders the CPU's full architectural state: registers, flags
// spelled out, and the halted/interrupt-enable latches.
func (c *CPU) String() string {
	flags := flagLetters(c.Reg.F)
	return fmt.Sprintf("%s  [%s]  IE:%v HLT:%v", c.Reg, flags, c.IE, c.Halted)
}

func flagLetters(f byte) string {
	letters := []struct {
		mask byte
		ch   byte
	}{
		{FlagS, 'S'}, {FlagZ, 'Z'}, {FlagAC, 'A'}, {FlagP, 'P'}, {FlagC, 'C'},
	}
	out := make([]byte, len(letters))
	for i, l := range letters {
		if testFlag(f, l.mask) {
			out[i] = l.ch
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}
