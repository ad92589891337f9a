package sfs

import (
	"errors"
	"syscall"
)

// Package-specific error variables, matched with errors.Is().
var (
	// ErrNotExist is returned when a path or intermediate component doesn't exist.
	ErrNotExist = errors.New("sfs: no such file or directory")

	// ErrNotDir is returned when an intermediate path component, or the
	// target of a directory operation, is not a directory.
	ErrNotDir = errors.New("sfs: not a directory")

	// ErrIsDir is returned when a file operation is invoked on a directory.
	ErrIsDir = errors.New("sfs: is a directory")

	// ErrNotEmpty is returned by rmdir on a non-empty directory.
	ErrNotEmpty = errors.New("sfs: directory not empty")

	// ErrExist is returned by create/mkdir when the name already exists.
	ErrExist = errors.New("sfs: file exists")

	// ErrNameTooLong is returned when a new name exceeds FilenameMax-1 bytes.
	ErrNameTooLong = errors.New("sfs: name too long")

	// ErrNoSpace is returned when no directory slot or data block is free.
	ErrNoSpace = errors.New("sfs: no space left on device")

	// ErrNoMemory is returned when the resolver cannot allocate scratch space.
	ErrNoMemory = errors.New("sfs: cannot allocate memory")

	// ErrInvalid is returned for a malformed path.
	ErrInvalid = errors.New("sfs: invalid argument")

	// ErrNotImplemented is returned by operations the core doesn't
	// support (currently only rename).
	ErrNotImplemented = errors.New("sfs: function not implemented")

	// ErrBadImage is returned when OpenDevice or CreateDevice can't get
	// the exclusive flock it takes to refuse using the same image twice (see
	// device.go). It does not validate image layout; a wrong-size or
	// corrupt image currently opens successfully.
	ErrBadImage = errors.New("sfs: not a valid or available sfs image")
)

// Errno maps an sfs error to the syscall.Errno a FUSE binding must
// return. go-fuse's fs package requires errors to cross that boundary
// as plain syscall.Errno values, so this is the one place sfs leaves
// its own error vocabulary for that neighboring one.
func Errno(err error) syscall.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, ErrNotDir):
		return syscall.ENOTDIR
	case errors.Is(err, ErrIsDir):
		return syscall.EISDIR
	case errors.Is(err, ErrNotEmpty):
		return syscall.ENOTEMPTY
	case errors.Is(err, ErrExist):
		return syscall.EEXIST
	case errors.Is(err, ErrNameTooLong):
		return syscall.ENAMETOOLONG
	case errors.Is(err, ErrNoSpace):
		return syscall.ENOSPC
	case errors.Is(err, ErrNoMemory):
		return syscall.ENOMEM
	case errors.Is(err, ErrInvalid):
		return syscall.EINVAL
	case errors.Is(err, ErrNotImplemented):
		return syscall.ENOSYS
	default:
		return syscall.EIO
	}
}
