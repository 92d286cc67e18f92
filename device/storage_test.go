package device

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageUnmountedReadsFF(t *testing.T) {
	s := NewStorage()
	assert.Equal(t, byte(0xFF), s.ReadPort(StorageData))
}

func TestStorageUnmountedWriteIsDropped(t *testing.T) {
	s := NewStorage()
	s.WritePort(StorageData, 0xAA)
	assert.False(t, s.dirty)
}

func TestStorageAddressByteAccessors(t *testing.T) {
	s := NewStorage()
	s.WritePort(StorageAddrLow, 0x34)
	s.WritePort(StorageAddrMid, 0x12)
	s.WritePort(StorageAddrHigh, 0xAB)

	assert.Equal(t, byte(0x34), s.ReadPort(StorageAddrLow))
	assert.Equal(t, byte(0x12), s.ReadPort(StorageAddrMid))
	assert.Equal(t, byte(0xAB), s.ReadPort(StorageAddrHigh))
	assert.Equal(t, uint32(0xAB1234), s.addr)
}

func TestStorageRoundTripWriteReadWithAutoIncrement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")

	s := NewStorage()
	require.NoError(t, s.Mount(path))

	s.WritePort(StorageData, 0xAA)
	s.WritePort(StorageData, 0xBB)
	s.WritePort(StorageData, 0xCC)
	require.NoError(t, s.Flush())

	s.WritePort(StorageStatus, StorageCmdRewind)
	assert.Equal(t, byte(0xAA), s.ReadPort(StorageData))
	assert.Equal(t, byte(0xBB), s.ReadPort(StorageData))
	assert.Equal(t, byte(0xCC), s.ReadPort(StorageData))
}

func TestStorageAddressWrapsAt24Bits(t *testing.T) {
	s := NewStorage()
	s.addr = AddrSpace - 1
	s.advance()
	assert.Equal(t, uint32(0), s.addr)
}

func TestStorageDecrementWraps(t *testing.T) {
	s := NewStorage()
	s.addr = 0
	s.WritePort(StorageStatus, StorageCmdDecr)
	assert.Equal(t, uint32(AddrSpace-1), s.addr)
}

func TestStorageStatusBits(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage()
	status := s.ReadPort(StorageStatus)
	assert.Zero(t, status&StorageStatusMounted)
	assert.NotZero(t, status&StorageStatusReady)
	assert.NotZero(t, status&StorageStatusEOF, "unmounted reads as EOF")

	require.NoError(t, s.Mount(filepath.Join(dir, "a.bin")))
	status = s.ReadPort(StorageStatus)
	assert.NotZero(t, status&StorageStatusMounted)
	assert.NotZero(t, status&StorageStatusEOF, "empty file starts at EOF")

	s.WritePort(StorageData, 0x01)
	s.WritePort(StorageStatus, StorageCmdRewind)
	status = s.ReadPort(StorageStatus)
	assert.Zero(t, status&StorageStatusEOF)
}

func TestStorageWritePastEndExtendsFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage()
	require.NoError(t, s.Mount(filepath.Join(dir, "grow.bin")))

	s.addr = 10
	s.WritePort(StorageData, 0x42)
	assert.Equal(t, int64(11), s.size)
}

func TestStorageFlushClearsDirty(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage()
	require.NoError(t, s.Mount(filepath.Join(dir, "d.bin")))

	s.WritePort(StorageData, 0x01)
	assert.True(t, s.dirty)
	require.NoError(t, s.Flush())
	assert.False(t, s.dirty)
}
