package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"photosift/ledger"
	"photosift/logger"
	"photosift/trash"
	"photosift/utils"
)

var (
	// ErrNotFound means the named file does not exist in the review folder.
	ErrNotFound = errors.New("file not found in review folder")
	// ErrNoProvenance means the review folder holds the file but the ledger
	// has no original path for it, so it cannot be restored automatically.
	ErrNoProvenance = errors.New("no original path recorded")
)

// ReviewEntry describes one file currently held in the review folder.
type ReviewEntry struct {
	Name         string
	OriginalPath string
	Size         int64
}

// Revert moves filename out of the review folder back to the original path
// recorded in the ledger, recreating missing parent directories and
// resolving collisions with a numeric suffix. It returns the path the file
// ended up at.
func (r *Reorganizer) Revert(reviewRoot, filename string) (string, error) {
	src := filepath.Join(reviewRoot, filename)
	if !utils.IsPathWithin(src, []string{reviewRoot}) {
		return "", fmt.Errorf("%s: %w", filename, ErrNotFound)
	}
	if _, err := os.Lstat(src); err != nil {
		return "", fmt.Errorf("%s: %w", filename, ErrNotFound)
	}

	store := r.newStore(reviewRoot)
	entries, err := store.Load()
	if err != nil {
		return "", err
	}
	original, ok := entries[filename]
	if !ok {
		return "", fmt.Errorf("%s: %w", filename, ErrNoProvenance)
	}

	if err := os.MkdirAll(filepath.Dir(original), 0o755); err != nil {
		return "", fmt.Errorf("restore %s: %w", filename, err)
	}
	dest := utils.UniquePath(original)
	if err := utils.MoveFile(src, dest); err != nil {
		return "", fmt.Errorf("restore %s: %w", filename, err)
	}

	delete(entries, filename)
	if err := store.Save(entries); err != nil {
		return dest, fmt.Errorf("file restored to %s but ledger not updated: %w", dest, err)
	}
	return dest, nil
}

// DeleteFromReview removes filename from the review folder. With toTrash set
// it tries the system trash first and falls back to permanent deletion when
// no trash facility is available. The ledger entry, if any, is dropped.
func (r *Reorganizer) DeleteFromReview(reviewRoot, filename string, toTrash bool) error {
	src := filepath.Join(reviewRoot, filename)
	if !utils.IsPathWithin(src, []string{reviewRoot}) {
		return fmt.Errorf("%s: %w", filename, ErrNotFound)
	}
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("%s: %w", filename, ErrNotFound)
	}

	if toTrash {
		if err := trash.Put(src); err != nil {
			if !errors.Is(err, trash.ErrUnsupported) {
				logger.Warnf("Trash failed for %s, deleting permanently: %v", filename, err)
			}
			if err := os.Remove(src); err != nil {
				return fmt.Errorf("delete %s: %w", filename, err)
			}
		}
	} else {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("delete %s: %w", filename, err)
		}
	}

	store := r.newStore(reviewRoot)
	entries, err := store.Load()
	if err != nil {
		return err
	}
	if _, ok := entries[filename]; ok {
		delete(entries, filename)
		if err := store.Save(entries); err != nil {
			return fmt.Errorf("file deleted but ledger not updated: %w", err)
		}
	}
	return nil
}

// ListReviewContents enumerates the review folder in name order, joining
// each file with its recorded original path. Files with no ledger entry are
// reported with "Unknown" provenance. A missing review folder is an empty
// listing, not an error.
func (r *Reorganizer) ListReviewContents(reviewRoot string) ([]ReviewEntry, error) {
	dirEntries, err := os.ReadDir(reviewRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	store := r.newStore(reviewRoot)
	entries, err := store.Load()
	if err != nil {
		return nil, err
	}

	var out []ReviewEntry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || name == ledger.FileName || name[0] == '.' {
			continue
		}
		original, ok := entries[name]
		if !ok {
			original = "Unknown"
		}
		var size int64
		if info, err := de.Info(); err == nil {
			size = info.Size()
		}
		out = append(out, ReviewEntry{Name: name, OriginalPath: original, Size: size})
	}
	return out, nil
}
