package cpu

// JMP, conditional J, CALL, conditional CALL, RET, conditional RET, RST.
//
// A not-taken conditional still consumes its operand bytes and advances PC
// past them; fetch16 always runs regardless of the condition's outcome.
//
// Conditional jumps cost 10 cycles whether taken or not; only conditional
// CALL (17 taken / 11 not) and conditional RET (11 / 5) differ by outcome.

func execJmp(c *CPU) int {
	c.Reg.PC = c.fetch16()
	return 10
}

func execJcc(cc byte) func(*CPU) int {
	return func(c *CPU) int {
		addr := c.fetch16()
		if c.conditionTrue(cc) {
			c.Reg.PC = addr
		}
		return 10
	}
}

func execCall(c *CPU) int {
	addr := c.fetch16()
	c.push16(c.Reg.PC)
	c.Reg.PC = addr
	return 17
}

func execCcc(cc byte) func(*CPU) int {
	return func(c *CPU) int {
		addr := c.fetch16()
		if c.conditionTrue(cc) {
			c.push16(c.Reg.PC)
			c.Reg.PC = addr
			return 17
		}
		return 11
	}
}

func execRet(c *CPU) int {
	c.Reg.PC = c.pop16()
	return 10
}

func execRcc(cc byte) func(*CPU) int {
	return func(c *CPU) int {
		if c.conditionTrue(cc) {
			c.Reg.PC = c.pop16()
			return 11
		}
		return 5
	}
}

func execRst(n byte) func(*CPU) int {
	return func(c *CPU) int {
		c.push16(c.Reg.PC)
		c.Reg.PC = uint16(n) * 8
		return 11
	}
}
