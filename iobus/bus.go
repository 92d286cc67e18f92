// Package iobus implements the 8080's 256-slot port-mapped I/O bus: a flat
// dispatch table from port number to a device, used by IN/OUT instructions.
package iobus

// Device is anything that can be mapped onto one or more ports. The same
// device handle may be mapped to several ports; the port number is always
// passed through so a device can tell which of its ports was addressed.
type Device interface {
	ReadPort(port byte) byte
	WritePort(port byte, v byte)
}

// Bus dispatches byte reads and writes to at most one device per port. An
// unmapped port reads as 0xFF and drops writes.
type Bus struct {
	devices [256]Device
}

// New returns an empty bus with every port unmapped.
func New() *Bus {
	return &Bus{}
}

// Map binds a device to a port. A device may be mapped to more than one
// port by calling Map once per port with the same handle.
func (b *Bus) Map(port byte, dev Device) {
	b.devices[port] = dev
}

// Read dispatches a port read. Unmapped ports return 0xFF.
func (b *Bus) Read(port byte) byte {
	d := b.devices[port]
	if d == nil {
		return 0xFF
	}
	return d.ReadPort(port)
}

// Write dispatches a port write. Unmapped ports silently drop the write.
func (b *Bus) Write(port byte, v byte) {
	d := b.devices[port]
	if d == nil {
		return
	}
	d.WritePort(port, v)
}
