package cpu

// NOP, HLT, EI, DI, CMA, CMC, STC.

func execNop(c *CPU) int { return 4 }

func execHlt(c *CPU) int {
	c.Halted = true
	return 7
}

func execEi(c *CPU) int { c.IE = true; return 4 }
func execDi(c *CPU) int { c.IE = false; return 4 }

func execCma(c *CPU) int {
	c.Reg.A = ^c.Reg.A
	return 4
}

func execCmc(c *CPU) int {
	c.Reg.F = setFlag(c.Reg.F, FlagC, !testFlag(c.Reg.F, FlagC))
	return 4
}

func execStc(c *CPU) int {
	c.Reg.F = setFlag(c.Reg.F, FlagC, true)
	return 4
}
