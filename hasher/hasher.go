// Package hasher computes content digests used as exact-duplicate keys.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/blake3"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "sha256"

const (
	bufferSmallSize      = 32 * 1024
	bufferLargeSize      = 128 * 1024
	largeBufferThreshold = 256 * 1024
)

var bufferSmallPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, bufferSmallSize)
		return &buf
	},
}

var bufferLargePool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, bufferLargeSize)
		return &buf
	},
}

// New returns a fresh hash for the named algorithm.
func New(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "", DefaultAlgorithm:
		return sha256.New(), nil
	case "blake3":
		return blake3.New(32, nil), nil
	case "xxh64":
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
}

// Sum streams the file through the named algorithm in fixed-size chunks and
// returns the hex digest. The file is never buffered whole.
func Sum(path, algorithm string) (string, error) {
	h, err := New(algorithm)
	if err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	pool := &bufferSmallPool
	if info, statErr := file.Stat(); statErr == nil && info.Size() >= largeBufferThreshold {
		pool = &bufferLargePool
	}
	bufferPtr := pool.Get().(*[]byte)
	defer pool.Put(bufferPtr)

	if _, err := io.CopyBuffer(h, file, *bufferPtr); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
