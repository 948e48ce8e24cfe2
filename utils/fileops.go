package utils

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/djherbis/times"
)

// MoveFile renames src to dst, falling back to copy+delete when the rename
// crosses filesystem boundaries.
func MoveFile(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := CopyPreserving(src, dst); err != nil {
			return err
		}
		return os.Remove(src)
	}
	return renameErr
}

// CopyFile streams src to dst, carrying over the source file mode.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// CopyPreserving copies src to dst and restores the source access and
// modification times on the copy.
func CopyPreserving(src, dst string) error {
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	ts, err := times.Stat(src)
	if err != nil {
		return nil
	}
	_ = os.Chtimes(dst, ts.AccessTime(), ts.ModTime())
	return nil
}
