package media

import "time"

// ProgressFunc is invoked once per item while scanning or reorganizing.
// current starts at 1; callbacks run inline on the worker, so they must be
// quick and must not panic.
type ProgressFunc func(current, total int, name string)

// Item is one discovered media file.
type Item struct {
	Path             string    `json:"path"`
	Size             int64     `json:"size"`
	ContentDigest    string    `json:"content_digest"`
	PerceptualDigest string    `json:"perceptual_digest,omitempty"`
	CapturedAt       time.Time `json:"captured_at"`

	// Legacy duplicate flags, set on every group member that is not the
	// kept one.
	IsDuplicate bool   `json:"is_duplicate,omitempty"`
	DuplicateOf string `json:"duplicate_of,omitempty"`

	// OriginalPath is recorded when the item is quarantined so the move
	// can be reverted later.
	OriginalPath string `json:"original_path,omitempty"`
}
