//go:build !linux && !darwin

package trash

func put(path string) error {
	return ErrUnsupported
}
