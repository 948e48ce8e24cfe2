package media

import (
	"path/filepath"
	"strings"
)

var photoExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {}, ".gif": {},
	".bmp": {}, ".tiff": {}, ".tif": {}, ".heic": {}, ".heif": {},
}

var videoExts = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".mkv": {}, ".avi": {},
	".wmv": {}, ".m4v": {}, ".3gp": {},
}

// IsPhoto reports whether the path has a recognized photographic extension.
func IsPhoto(path string) bool {
	_, ok := photoExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsMedia reports whether the path has a recognized photo or video extension.
func IsMedia(path string) bool {
	if IsPhoto(path) {
		return true
	}
	_, ok := videoExts[strings.ToLower(filepath.Ext(path))]
	return ok
}
