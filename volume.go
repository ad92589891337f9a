package sfs

import "log"

// Volume is the mounted context for an SFS image: the open device plus
// the block chain table, passed explicitly to every operation instead
// of living in global mutable state. The external binding owns its
// lifetime.
type Volume struct {
	dev Device
	tbl *blockTable
}

// Open mounts an existing SFS image already opened as dev. It performs
// no format validation beyond what OpenDevice already guarantees: the
// on-disk layout is fixed at compile time, so there is no
// superblock or magic number to check.
func Open(dev Device) *Volume {
	log.Printf("sfs: mounted image, block table at 0x%x, root dir at 0x%x, data at 0x%x", BlockTblOff, RootDirOff, DataOff)
	return &Volume{dev: dev, tbl: &blockTable{dev: dev}}
}

// OpenFile opens path as a device and mounts it. Convenience wrapper
// combining OpenDevice and Open, the way a driver's main() would.
func OpenFile(path string) (*Volume, error) {
	dev, err := OpenDevice(path)
	if err != nil {
		return nil, err
	}
	return Open(dev), nil
}

// Close releases the underlying device.
func (v *Volume) Close() error {
	return v.dev.Close()
}
