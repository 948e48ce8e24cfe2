// Package organizer performs the filesystem mutation workflows over a scan
// result: the classic move/copy-by-date reorganization, the smart
// move-to-review quarantine, and the inverse operations backed by the
// review ledger.
package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"photosift/ledger"
	"photosift/logger"
	"photosift/media"
	"photosift/utils"
)

// Reorganizer runs one workflow at a time, one file at a time. Cancellation
// is cooperative: the item in flight completes and finished relocations are
// never rolled back.
type Reorganizer struct {
	cancel   atomic.Bool
	newStore func(reviewRoot string) ledger.Store
}

func New() *Reorganizer {
	return &Reorganizer{
		newStore: func(reviewRoot string) ledger.Store {
			return ledger.NewJSONStore(reviewRoot)
		},
	}
}

// Cancel requests a cooperative stop of the running workflow.
func (r *Reorganizer) Cancel() {
	r.cancel.Store(true)
}

// Result reports one workflow batch. Errors holds one formatted string per
// failed item; a failed item never aborts the batch.
type Result struct {
	Organized       int
	DuplicatesMoved int
	Errors          []string
}

// Organize runs the classic workflow: every to-delete group member moves
// into reviewRoot (flat, collision-resolved), then every unique item moves
// into destination, nested under <year>/<month> when byDate is set. Each
// relocation is a rename when moveFiles is true, otherwise a copy that
// preserves mode and times.
func (r *Reorganizer) Organize(destination, reviewRoot string, res *media.ScanResult, byDate, moveFiles bool, onProgress media.ProgressFunc) Result {
	r.cancel.Store(false)
	var out Result

	for _, dir := range []string{destination, reviewRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("error creating %s: %v", dir, err))
			return out
		}
	}

	duplicates := toDelete(res)
	total := len(duplicates) + len(res.UniqueItems)
	current := 0

	for _, item := range duplicates {
		if r.cancel.Load() {
			logger.Info("Organize cancelled")
			return out
		}
		current++
		if onProgress != nil {
			onProgress(current, total, filepath.Base(item.Path))
		}

		target := utils.UniquePath(filepath.Join(reviewRoot, filepath.Base(item.Path)))
		if err := relocate(item.Path, target, moveFiles); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("error moving duplicate %s: %v", item.Path, err))
			continue
		}
		out.DuplicatesMoved++
	}

	for _, item := range res.UniqueItems {
		if r.cancel.Load() {
			logger.Info("Organize cancelled")
			return out
		}
		current++
		if onProgress != nil {
			onProgress(current, total, filepath.Base(item.Path))
		}

		folder := destination
		if byDate && !item.CapturedAt.IsZero() {
			folder = filepath.Join(destination,
				fmt.Sprintf("%d", item.CapturedAt.Year()),
				fmt.Sprintf("%02d", int(item.CapturedAt.Month())))
		}
		if err := os.MkdirAll(folder, 0o755); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("error organizing %s: %v", item.Path, err))
			continue
		}
		target := utils.UniquePath(filepath.Join(folder, filepath.Base(item.Path)))
		if err := relocate(item.Path, target, moveFiles); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("error organizing %s: %v", item.Path, err))
			continue
		}
		out.Organized++
	}

	return out
}

// MoveDuplicatesToReview runs the smart workflow: only the to-delete members
// move into reviewRoot, and each move records the file's resolved original
// path in the review ledger. Kept members and unique items are never
// touched. The ledger is loaded once, mutated in memory, and persisted once
// at the end, including after cancellation.
func (r *Reorganizer) MoveDuplicatesToReview(res *media.ScanResult, reviewRoot string, onProgress media.ProgressFunc) Result {
	r.cancel.Store(false)
	var out Result

	if err := os.MkdirAll(reviewRoot, 0o755); err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("error creating %s: %v", reviewRoot, err))
		return out
	}

	store := r.newStore(reviewRoot)
	entries, err := store.Load()
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("error loading review ledger: %v", err))
		return out
	}

	duplicates := toDelete(res)
	for i, item := range duplicates {
		if r.cancel.Load() {
			logger.Info("Move to review cancelled")
			break
		}
		if onProgress != nil {
			onProgress(i+1, len(duplicates), filepath.Base(item.Path))
		}

		original, err := filepath.Abs(item.Path)
		if err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("error moving %s: %v", item.Path, err))
			continue
		}
		target := utils.UniquePath(filepath.Join(reviewRoot, filepath.Base(item.Path)))
		if err := utils.MoveFile(item.Path, target); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("error moving %s: %v", item.Path, err))
			continue
		}
		entries[filepath.Base(target)] = original
		item.OriginalPath = original
		out.DuplicatesMoved++
	}

	if err := store.Save(entries); err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("error saving review ledger: %v", err))
	}
	return out
}

func toDelete(res *media.ScanResult) []*media.Item {
	var items []*media.Item
	for _, g := range res.Groups {
		items = append(items, g.ToDelete()...)
	}
	return items
}

func relocate(src, dst string, move bool) error {
	if move {
		return utils.MoveFile(src, dst)
	}
	return utils.CopyPreserving(src, dst)
}
