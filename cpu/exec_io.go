package cpu

// IN/OUT, the CPU's only window onto the I/O bus.

func execIn(c *CPU) int {
	port := c.fetch8()
	c.Reg.A = c.Bus.Read(port)
	return 10
}

func execOut(c *CPU) int {
	port := c.fetch8()
	c.Bus.Write(port, c.Reg.A)
	return 10
}
