// Package device implements the 8080 core's pluggable I/O devices: the
// Console, System Control, Storage, and Storage-Mount devices described in
// the port map.
package device

// Console ports.
const (
	ConsoleDataOut byte = 0x00
	ConsoleDataIn  byte = 0x01
	ConsoleStatus  byte = 0x02
)

// Console status bits (port 0x02).
const (
	ConsoleStatusRXReady byte = 1 << 0 // input available
	ConsoleStatusTXReady byte = 1 << 1 // always set: TX always ready
)

// Console models the firmware's terminal port: an input queue fed by the
// host driver between Step calls, and an output sink the firmware writes
// bytes to. It does not touch an actual TTY — that bridging is the host
// driver's job, outside the core.
type Console struct {
	in  []byte
	out []byte
}

// NewConsole returns an empty Console: no pending input, nothing written.
func NewConsole() *Console {
	return &Console{}
}

// Feed appends bytes to the input queue. Called by the host driver between
// Step calls, never by the CPU itself.
func (c *Console) Feed(b ...byte) {
	c.in = append(c.in, b...)
}

// Output returns and clears everything written to the console so far.
func (c *Console) Output() []byte {
	out := c.out
	c.out = nil
	return out
}

// Pending reports how many bytes are queued for input.
func (c *Console) Pending() int {
	return len(c.in)
}

// ReadPort implements iobus.Device.
func (c *Console) ReadPort(port byte) byte {
	switch port {
	case ConsoleDataIn:
		if len(c.in) == 0 {
			return 0
		}
		b := c.in[0]
		c.in = c.in[1:]
		return b
	case ConsoleStatus:
		status := ConsoleStatusTXReady
		if len(c.in) > 0 {
			status |= ConsoleStatusRXReady
		}
		return status
	default:
		return 0xFF
	}
}

// WritePort implements iobus.Device.
func (c *Console) WritePort(port byte, v byte) {
	if port == ConsoleDataOut {
		c.out = append(c.out, v)
	}
	// writes to DataIn/Status are no-ops
}
