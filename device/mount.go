package device

import (
	"path/filepath"
)

// Storage-Mount ports.
const (
	MountFilename byte = 0x0D
	MountCommand  byte = 0x0E
	MountStatus   byte = 0x0F
)

// Storage-Mount commands written to MountCommand.
const (
	MountCmdMount   byte = 0x01
	MountCmdUnmount byte = 0x02
	MountCmdQuery   byte = 0x03
)

// Storage-Mount status codes read from MountStatus.
const (
	MountStatusOK         byte = 0x00
	MountStatusNotFound   byte = 0x01
	MountStatusInvalidName byte = 0x02
)

// MaxFilenameLen is the maximum accumulated filename length; bytes received
// beyond this are dropped.
const MaxFilenameLen = 12

// StorageMount accumulates a filename from single-byte port writes and
// dispatches mount/unmount/query commands against a Storage device,
// resolving filenames under a fixed host base directory.
type StorageMount struct {
	storage *Storage
	baseDir string
	buf     []byte
	status  byte
}

// NewStorageMount returns a StorageMount that mounts files under baseDir
// into storage.
func NewStorageMount(storage *Storage, baseDir string) *StorageMount {
	return &StorageMount{storage: storage, baseDir: baseDir}
}

func validFilenameByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '.' || b == '_' || b == '-':
		return true
	default:
		return false
	}
}

func validFilename(name []byte) bool {
	if len(name) == 0 || len(name) > MaxFilenameLen {
		return false
	}
	for _, b := range name {
		if !validFilenameByte(b) {
			return false
		}
	}
	return true
}

// mount validates the accumulated buffer and attempts to open it under
// baseDir. The buffer is always consumed (cleared) once a mount is
// attempted, matching how firmware uses the zero byte purely as a
// terminator and never re-sends a partial name.
func (m *StorageMount) mount() {
	name := m.buf
	m.buf = nil

	if !validFilename(name) {
		m.status = MountStatusInvalidName
		return
	}
	path := filepath.Join(m.baseDir, string(name))
	if err := m.storage.Mount(path); err != nil {
		m.status = MountStatusNotFound
		return
	}
	m.status = MountStatusOK
}

func (m *StorageMount) unmount() {
	_ = m.storage.Unmount()
	m.status = MountStatusOK
}

func (m *StorageMount) query() {
	if m.storage.Mounted() {
		m.status = MountStatusOK
	} else {
		m.status = MountStatusNotFound
	}
}

// ReadPort implements iobus.Device.
func (m *StorageMount) ReadPort(port byte) byte {
	if port != MountStatus {
		return 0xFF
	}
	return m.status
}

// WritePort implements iobus.Device.
func (m *StorageMount) WritePort(port byte, v byte) {
	switch port {
	case MountFilename:
		if v == 0 {
			return // terminator marker; buffer is consumed on the mount command
		}
		if len(m.buf) < MaxFilenameLen {
			m.buf = append(m.buf, v)
		}
	case MountCommand:
		switch v {
		case MountCmdMount:
			m.mount()
		case MountCmdUnmount:
			m.unmount()
		case MountCmdQuery:
			m.query()
		}
	}
}
