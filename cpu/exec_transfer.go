package cpu

// MOV, MVI, LXI, LDA/STA, LHLD/SHLD, LDAX/STAX, XCHG, XTHL, SPHL, PCHL.

func execMov(dst, src byte) func(*CPU) int {
	return func(c *CPU) int {
		c.writeReg(dst, c.readReg(src))
		if dst == RegM || src == RegM {
			return 7
		}
		return 5
	}
}

func execMvi(dst byte) func(*CPU) int {
	return func(c *CPU) int {
		v := c.fetch8()
		c.writeReg(dst, v)
		if dst == RegM {
			return 10
		}
		return 7
	}
}

func execLxiBC(c *CPU) int { c.Reg.SetBC(c.fetch16()); return 10 }
func execLxiDE(c *CPU) int { c.Reg.SetDE(c.fetch16()); return 10 }
func execLxiHL(c *CPU) int { c.Reg.SetHL(c.fetch16()); return 10 }
func execLxiSP(c *CPU) int { c.Reg.SP = c.fetch16(); return 10 }

func execLda(c *CPU) int {
	addr := c.fetch16()
	c.Reg.A = c.Mem.Read(addr)
	return 13
}

func execSta(c *CPU) int {
	addr := c.fetch16()
	c.Mem.Write(addr, c.Reg.A)
	return 13
}

func execLhld(c *CPU) int {
	addr := c.fetch16()
	lo := c.Mem.Read(addr)
	hi := c.Mem.Read(addr + 1)
	c.Reg.SetHL(word(hi, lo))
	return 16
}

func execShld(c *CPU) int {
	addr := c.fetch16()
	c.Mem.Write(addr, c.Reg.L)
	c.Mem.Write(addr+1, c.Reg.H)
	return 16
}

func execLdaxBC(c *CPU) int { c.Reg.A = c.Mem.Read(c.Reg.BC()); return 7 }
func execLdaxDE(c *CPU) int { c.Reg.A = c.Mem.Read(c.Reg.DE()); return 7 }
func execStaxBC(c *CPU) int { c.Mem.Write(c.Reg.BC(), c.Reg.A); return 7 }
func execStaxDE(c *CPU) int { c.Mem.Write(c.Reg.DE(), c.Reg.A); return 7 }

func execXchg(c *CPU) int {
	c.Reg.D, c.Reg.H = c.Reg.H, c.Reg.D
	c.Reg.E, c.Reg.L = c.Reg.L, c.Reg.E
	return 4
}

func execXthl(c *CPU) int {
	lo := c.Mem.Read(c.Reg.SP)
	hi := c.Mem.Read(c.Reg.SP + 1)
	c.Mem.Write(c.Reg.SP, c.Reg.L)
	c.Mem.Write(c.Reg.SP+1, c.Reg.H)
	c.Reg.SetHL(word(hi, lo))
	return 18
}

func execSphl(c *CPU) int {
	c.Reg.SP = c.Reg.HL()
	return 5
}

func execPchl(c *CPU) int {
	c.Reg.PC = c.Reg.HL()
	return 5
}
