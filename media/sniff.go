package media

import (
	"io"
	"os"

	"github.com/h2non/filetype"
)

// SniffImage reads the leading bytes of the file and reports whether they
// carry an image signature. Used as a cheap guard before handing a
// mis-extensioned file to an image decoder.
func SniffImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 261)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return filetype.IsImage(buf[:n])
}
