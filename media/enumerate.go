package media

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"photosift/logger"
	"photosift/utils"
)

// Enumerate walks the roots in order and returns every candidate media file.
// A missing root contributes one error string and does not stop the walk.
// Within a root the order is the lexical order of filepath.WalkDir, so a
// given filesystem state always enumerates the same way.
func Enumerate(roots []string, matcher *utils.PatternMatcher) (files []string, errs []string) {
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			errs = append(errs, fmt.Sprintf("folder not found: %s", root))
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warnf("Failed to access %s: %v", path, err)
				return nil
			}
			if d == nil || d.IsDir() {
				return nil
			}
			if !isCandidate(d.Name()) {
				return nil
			}
			if !matcher.ShouldInclude(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			logger.Warnf("Error walking %s: %v", root, err)
		}
	}
	return files, errs
}

func isCandidate(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.HasSuffix(name, ".tmp") || strings.HasSuffix(name, "~") {
		return false
	}
	return IsMedia(name)
}
