package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// formatFromExt guesses a backup's compression format from its file
// extension, defaulting to zstd (the faster of the two, preferred when
// unspecified).
func formatFromExt(path string) string {
	if strings.HasSuffix(path, ".xz") {
		return "xz"
	}
	return "zstd"
}

// backupImage streams the sfs image at srcPath into a compressed
// archive at dstPath.
func backupImage(srcPath, dstPath, format string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	var w io.WriteCloser
	switch format {
	case "zstd":
		w, err = zstd.NewWriter(dst)
	case "xz":
		w, err = xz.NewWriter(dst)
	default:
		return fmt.Errorf("gosfsctl: unknown backup format %q", format)
	}
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// restoreImage decompresses a backup created by backupImage into a
// fresh image file at dstPath.
func restoreImage(srcPath, dstPath, format string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	var r io.Reader
	switch format {
	case "zstd":
		dec, err := zstd.NewReader(src)
		if err != nil {
			return err
		}
		defer dec.Close()
		r = dec
	case "xz":
		xr, err := xz.NewReader(src)
		if err != nil {
			return err
		}
		r = xr
	default:
		return fmt.Errorf("gosfsctl: unknown backup format %q", format)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, r)
	return err
}
