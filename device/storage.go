package device

import "os"

// Storage ports.
const (
	StorageAddrLow  byte = 0x08
	StorageAddrMid  byte = 0x09
	StorageAddrHigh byte = 0x0A
	StorageData     byte = 0x0B
	StorageStatus   byte = 0x0C
)

// Storage control commands written to StorageStatus.
const (
	StorageCmdRewind byte = 0x00
	StorageCmdDecr   byte = 0x01
	StorageCmdFlush  byte = 0x02
)

// Storage status bits (port 0x0C).
const (
	StorageStatusMounted byte = 1 << 0
	StorageStatusReady   byte = 1 << 1
	StorageStatusEOF     byte = 1 << 7
)

// AddrSpace is the size of the 24-bit address register's modulus (2^24).
const AddrSpace = 1 << 24

// Storage is the 24-bit byte-addressed storage device: an auto-incrementing
// address register over an optional host file. Every device operation is
// total — file errors surface only as status bits, never as errors the CPU
// can observe.
type Storage struct {
	file  *os.File
	addr  uint32
	size  int64
	dirty bool
}

// NewStorage returns an unmounted Storage device.
func NewStorage() *Storage {
	return &Storage{}
}

// Mounted reports whether a backing file is currently open.
func (s *Storage) Mounted() bool {
	return s.file != nil
}

// Mount opens (creating if necessary) the backing file at path and resets
// the address register to 0. Any previously mounted file is left as-is by
// the caller — Storage itself has no notion of "previous"; StorageMount is
// responsible for unmounting first when that is the desired semantics.
func (s *Storage) Mount(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	s.file = f
	s.size = info.Size()
	s.addr = 0
	s.dirty = false
	return nil
}

// Unmount closes the backing file, if any, and clears the dirty flag.
func (s *Storage) Unmount() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.size = 0
	s.addr = 0
	s.dirty = false
	return err
}

// Flush syncs the backing file to the host filesystem and clears the dirty
// flag.
func (s *Storage) Flush() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Sync()
	s.dirty = false
	return err
}

func (s *Storage) advance() {
	s.addr = (s.addr + 1) % AddrSpace
}

func (s *Storage) readByte() byte {
	if s.file == nil || int64(s.addr) >= s.size {
		return 0xFF
	}
	buf := make([]byte, 1)
	n, err := s.file.ReadAt(buf, int64(s.addr))
	if err != nil || n != 1 {
		return 0xFF
	}
	return buf[0]
}

func (s *Storage) writeByte(v byte) {
	if s.file == nil {
		return
	}
	if _, err := s.file.WriteAt([]byte{v}, int64(s.addr)); err != nil {
		return
	}
	if int64(s.addr)+1 > s.size {
		s.size = int64(s.addr) + 1
	}
	s.dirty = true
}

// ReadPort implements iobus.Device.
func (s *Storage) ReadPort(port byte) byte {
	switch port {
	case StorageAddrLow:
		return byte(s.addr)
	case StorageAddrMid:
		return byte(s.addr >> 8)
	case StorageAddrHigh:
		return byte(s.addr >> 16)
	case StorageData:
		v := s.readByte()
		s.advance()
		return v
	case StorageStatus:
		var status byte = StorageStatusReady
		if s.Mounted() {
			status |= StorageStatusMounted
		}
		if int64(s.addr) >= s.size {
			status |= StorageStatusEOF
		}
		return status
	default:
		return 0xFF
	}
}

// WritePort implements iobus.Device.
func (s *Storage) WritePort(port byte, v byte) {
	switch port {
	case StorageAddrLow:
		s.addr = (s.addr &^ 0x0000FF) | uint32(v)
	case StorageAddrMid:
		s.addr = (s.addr &^ 0x00FF00) | (uint32(v) << 8)
	case StorageAddrHigh:
		s.addr = (s.addr &^ 0xFF0000) | (uint32(v) << 16)
	case StorageData:
		s.writeByte(v)
		s.advance()
	case StorageStatus:
		switch v {
		case StorageCmdRewind:
			s.addr = 0
		case StorageCmdDecr:
			if s.addr == 0 {
				s.addr = AddrSpace - 1
			} else {
				s.addr--
			}
		case StorageCmdFlush:
			_ = s.Flush()
		}
	}
}
