package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsPathWithin returns true if the given path is within any of the roots.
func IsPathWithin(path string, roots []string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}
	absPath, err := filepath.Abs(resolved)
	if err != nil {
		return false
	}
	for _, root := range roots {
		rResolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			rResolved = root
		}
		absRoot, err := filepath.Abs(rResolved)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absRoot, absPath)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// UniquePath returns candidate if nothing exists there, otherwise the first
// available variant with a numeric suffix before the extension (name_1.ext,
// name_2.ext, ...). The filesystem is consulted on every call since prior
// moves in the same batch change what is taken.
func UniquePath(candidate string) string {
	if _, err := os.Lstat(candidate); err != nil {
		return candidate
	}
	ext := filepath.Ext(candidate)
	stem := strings.TrimSuffix(candidate, ext)
	for i := 1; ; i++ {
		next := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Lstat(next); err != nil {
			return next
		}
	}
}
