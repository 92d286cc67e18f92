package cpu

// ANA/XRA/ORA/CMP and their immediate forms.

func (c *CPU) doAna(operand byte) {
	ac := (c.Reg.A&0x08) != 0 || (operand&0x08) != 0
	c.Reg.A &= operand
	c.Reg.F = logicFlags(c.Reg.F, c.Reg.A, ac)
}

func (c *CPU) doXra(operand byte) {
	c.Reg.A ^= operand
	c.Reg.F = logicFlags(c.Reg.F, c.Reg.A, false)
}

func (c *CPU) doOra(operand byte) {
	c.Reg.A |= operand
	c.Reg.F = logicFlags(c.Reg.F, c.Reg.A, false)
}

func (c *CPU) doCmp(operand byte) {
	// CMP computes A-operand purely for flags; the result is discarded.
	c.Reg.F = subFlags(c.Reg.F, c.Reg.A, operand, false)
}

func execAnaReg(idx byte) func(*CPU) int {
	return func(c *CPU) int { c.doAna(c.readReg(idx)); return aluCycles(idx) }
}

func execXraReg(idx byte) func(*CPU) int {
	return func(c *CPU) int { c.doXra(c.readReg(idx)); return aluCycles(idx) }
}

func execOraReg(idx byte) func(*CPU) int {
	return func(c *CPU) int { c.doOra(c.readReg(idx)); return aluCycles(idx) }
}

func execCmpReg(idx byte) func(*CPU) int {
	return func(c *CPU) int { c.doCmp(c.readReg(idx)); return aluCycles(idx) }
}

func execAni(c *CPU) int { c.doAna(c.fetch8()); return 7 }
func execXri(c *CPU) int { c.doXra(c.fetch8()); return 7 }
func execOri(c *CPU) int { c.doOra(c.fetch8()); return 7 }
func execCpi(c *CPU) int { c.doCmp(c.fetch8()); return 7 }
