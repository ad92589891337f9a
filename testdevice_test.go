package sfs_test

import (
	"fmt"

	"github.com/cerrnl/gosfs"
)

// memDevice is an in-memory sfs.Device backing test images.
type memDevice struct {
	data []byte
}

func newMemDevice() *memDevice {
	return &memDevice{data: make([]byte, sfs.ImageSize())}
}

func (m *memDevice) ReadAt(dst []byte, off int64) error {
	if off < 0 || off+int64(len(dst)) > int64(len(m.data)) {
		return fmt.Errorf("memDevice: read out of range at %d len %d", off, len(dst))
	}
	copy(dst, m.data[off:off+int64(len(dst))])
	return nil
}

func (m *memDevice) WriteAt(src []byte, off int64) error {
	if off < 0 || off+int64(len(src)) > int64(len(m.data)) {
		return fmt.Errorf("memDevice: write out of range at %d len %d", off, len(src))
	}
	copy(m.data[off:off+int64(len(src))], src)
	return nil
}

func (m *memDevice) Close() error { return nil }

// newVolume returns a freshly formatted, mounted volume over a
// fresh in-memory image.
func newVolume(t interface{ Fatalf(string, ...interface{}) }) *sfs.Volume {
	dev := newMemDevice()
	if err := sfs.Format(dev); err != nil {
		t.Fatalf("format: %v", err)
	}
	return sfs.Open(dev)
}
