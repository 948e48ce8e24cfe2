package phash

import (
	"bufio"
	"fmt"
	"os"

	"github.com/glaslos/tlsh"
)

// tlsh cannot fill its buckets on less than 50 bytes of input.
const tlshMinInputSize = 50

// TLSHHasher hashes raw bytes rather than decoded pixels. It works on any
// file the image decoders reject, at the cost of being sensitive to
// re-encoding.
type TLSHHasher struct{}

func (h TLSHHasher) Name() string {
	return "tlsh"
}

func (h TLSHHasher) HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() < tlshMinInputSize {
		return "", fmt.Errorf("%s: %d bytes is below the %d byte tlsh minimum",
			path, info.Size(), tlshMinInputSize)
	}

	reader := bufio.NewReader(f)
	hash, err := tlsh.HashReader(reader)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

func init() {
	Register(TLSHHasher{})
}
