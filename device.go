package sfs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Device is the block device adapter contract: byte transfers to/from
// the image at absolute offsets. It is oblivious to layout; every
// offset arithmetic lives above this interface.
type Device interface {
	ReadAt(dst []byte, off int64) error
	WriteAt(src []byte, off int64) error
	Close() error
}

// fileDevice is a Device backed by an open image file, using direct
// pread/pwrite syscalls (golang.org/x/sys/unix) rather than the
// offset-seeking *os.File API, since every caller already has an
// absolute offset in hand.
type fileDevice struct {
	f *os.File
}

// OpenDevice opens path as a block device for an SFS image. It takes
// an exclusive advisory flock on the file to refuse mounting the same
// image twice, turning "unsupported" into "refused" rather than
// "silently corrupted".
func OpenDevice(path string) (Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s is already mounted", ErrBadImage, path)
	}
	return &fileDevice{f: f}, nil
}

// CreateDevice creates a new image file of exactly size bytes,
// truncated/zero-extended to that length, and opens it as a Device.
// It takes the same exclusive flock as OpenDevice before truncating,
// so an image that is already mounted is refused, not emptied. Used
// by gosfsctl mkfs, before Format, to build a fresh image.
func CreateDevice(path string, size int64) (Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s is already mounted", ErrBadImage, path)
	}
	if err := f.Truncate(0); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}
	return &fileDevice{f: f}, nil
}

func (d *fileDevice) ReadAt(dst []byte, off int64) error {
	n, err := unix.Pread(int(d.f.Fd()), dst, off)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return fmt.Errorf("sfs: short read at offset %d: got %d of %d bytes", off, n, len(dst))
	}
	return nil
}

func (d *fileDevice) WriteAt(src []byte, off int64) error {
	n, err := unix.Pwrite(int(d.f.Fd()), src, off)
	if err != nil {
		return err
	}
	if n != len(src) {
		return fmt.Errorf("sfs: short write at offset %d: wrote %d of %d bytes", off, n, len(src))
	}
	return nil
}

func (d *fileDevice) Close() error {
	unix.Flock(int(d.f.Fd()), unix.LOCK_UN)
	return d.f.Close()
}
