package trash

import (
	"os"
	"path/filepath"

	"photosift/utils"
)

func put(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ErrUnsupported
	}
	trashDir := filepath.Join(home, ".Trash")
	if _, err := os.Stat(trashDir); err != nil {
		return ErrUnsupported
	}
	return utils.MoveFile(abs, utils.UniquePath(filepath.Join(trashDir, filepath.Base(abs))))
}
