package cpu

// PUSH/POP on BC, DE, HL, and PSW.

func execPushBC(c *CPU) int { c.push16(c.Reg.BC()); return 11 }
func execPushDE(c *CPU) int { c.push16(c.Reg.DE()); return 11 }
func execPushHL(c *CPU) int { c.push16(c.Reg.HL()); return 11 }
func execPushPSW(c *CPU) int { c.push16(c.PSW()); return 11 }

func execPopBC(c *CPU) int { c.Reg.SetBC(c.pop16()); return 10 }
func execPopDE(c *CPU) int { c.Reg.SetDE(c.pop16()); return 10 }
func execPopHL(c *CPU) int { c.Reg.SetHL(c.pop16()); return 10 }
func execPopPSW(c *CPU) int { c.SetPSW(c.pop16()); return 10 }
