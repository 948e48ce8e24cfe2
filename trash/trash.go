// Package trash moves files to the platform trash facility when one exists.
package trash

import "errors"

// ErrUnsupported is returned where no trash facility is available. Callers
// are expected to degrade to permanent deletion.
var ErrUnsupported = errors.New("no trash facility available")

// Put moves the file into the platform trash.
func Put(path string) error {
	return put(path)
}
