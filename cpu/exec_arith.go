package cpu

// ADD/ADC/SUB/SBB/ADI/ACI/SUI/SBI, INR/DCR, INX/DCX/DAD, DAA.

func (c *CPU) doAdd(operand byte, carryIn bool) {
	c.Reg.F = addFlags(c.Reg.F, c.Reg.A, operand, carryIn)
	var cin byte
	if carryIn {
		cin = 1
	}
	c.Reg.A = c.Reg.A + operand + cin
}

func (c *CPU) doSub(operand byte, borrowIn bool) {
	c.Reg.F = subFlags(c.Reg.F, c.Reg.A, operand, borrowIn)
	var bin byte
	if borrowIn {
		bin = 1
	}
	c.Reg.A = c.Reg.A - operand - bin
}

func aluCycles(idx byte) int {
	if idx == RegM {
		return 7
	}
	return 4
}

func execAddReg(idx byte) func(*CPU) int {
	return func(c *CPU) int { c.doAdd(c.readReg(idx), false); return aluCycles(idx) }
}

func execAdcReg(idx byte) func(*CPU) int {
	return func(c *CPU) int {
		carryIn := testFlag(c.Reg.F, FlagC)
		c.doAdd(c.readReg(idx), carryIn)
		return aluCycles(idx)
	}
}

func execSubReg(idx byte) func(*CPU) int {
	return func(c *CPU) int { c.doSub(c.readReg(idx), false); return aluCycles(idx) }
}

func execSbbReg(idx byte) func(*CPU) int {
	return func(c *CPU) int {
		borrowIn := testFlag(c.Reg.F, FlagC)
		c.doSub(c.readReg(idx), borrowIn)
		return aluCycles(idx)
	}
}

func execAdi(c *CPU) int { c.doAdd(c.fetch8(), false); return 7 }
func execAci(c *CPU) int { c.doAdd(c.fetch8(), testFlag(c.Reg.F, FlagC)); return 7 }
func execSui(c *CPU) int { c.doSub(c.fetch8(), false); return 7 }
func execSbi(c *CPU) int { c.doSub(c.fetch8(), testFlag(c.Reg.F, FlagC)); return 7 }

func execInr(idx byte) func(*CPU) int {
	return func(c *CPU) int {
		v := c.readReg(idx)
		result := v + 1
		ac := (v & 0xF) == 0xF
		c.Reg.F = szp(c.Reg.F, result)
		c.Reg.F = setFlag(c.Reg.F, FlagAC, ac)
		c.writeReg(idx, result)
		if idx == RegM {
			return 10
		}
		return 5
	}
}

func execDcr(idx byte) func(*CPU) int {
	return func(c *CPU) int {
		v := c.readReg(idx)
		result := v - 1
		ac := (v & 0xF) == 0x0
		c.Reg.F = szp(c.Reg.F, result)
		c.Reg.F = setFlag(c.Reg.F, FlagAC, ac)
		c.writeReg(idx, result)
		if idx == RegM {
			return 10
		}
		return 5
	}
}

func execInxBC(c *CPU) int { c.Reg.SetBC(c.Reg.BC() + 1); return 5 }
func execInxDE(c *CPU) int { c.Reg.SetDE(c.Reg.DE() + 1); return 5 }
func execInxHL(c *CPU) int { c.Reg.SetHL(c.Reg.HL() + 1); return 5 }
func execInxSP(c *CPU) int { c.Reg.SP++; return 5 }

func execDcxBC(c *CPU) int { c.Reg.SetBC(c.Reg.BC() - 1); return 5 }
func execDcxDE(c *CPU) int { c.Reg.SetDE(c.Reg.DE() - 1); return 5 }
func execDcxHL(c *CPU) int { c.Reg.SetHL(c.Reg.HL() - 1); return 5 }
func execDcxSP(c *CPU) int { c.Reg.SP--; return 5 }

func execDad(rp func(*CPU) uint16) func(*CPU) int {
	return func(c *CPU) int {
		sum := uint32(c.Reg.HL()) + uint32(rp(c))
		c.Reg.F = setFlag(c.Reg.F, FlagC, sum > 0xFFFF)
		c.Reg.SetHL(uint16(sum))
		return 10
	}
}

func rpBC(c *CPU) uint16 { return c.Reg.BC() }
func rpDE(c *CPU) uint16 { return c.Reg.DE() }
func rpHL(c *CPU) uint16 { return c.Reg.HL() }
func rpSP(c *CPU) uint16 { return c.Reg.SP }

// execDaa decimal-adjusts A after a BCD add/subtract, per standard 8080
// semantics: the low nibble is corrected first, then the high nibble, with
// carry sticky across both corrections.
func execDaa(c *CPU) int {
	a := c.Reg.A
	cy := testFlag(c.Reg.F, FlagC)
	ac := testFlag(c.Reg.F, FlagAC)

	var correction byte
	if ac || (a&0x0F) > 9 {
		correction += 0x06
	}
	if cy || (a>>4) > 9 || ((a>>4) == 9 && (a&0x0F) > 9) {
		correction += 0x60
		cy = true
	}

	acOut := (a&0x0F)+(correction&0x0F) > 0x0F
	result := a + correction

	c.Reg.F = szp(c.Reg.F, result)
	c.Reg.F = setFlag(c.Reg.F, FlagC, cy)
	c.Reg.F = setFlag(c.Reg.F, FlagAC, acOut)
	c.Reg.A = result
	return 4
}
