// Package metadata extracts capture timestamps and filesystem times from
// media files.
package metadata

import (
	"fmt"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/rwcarlsen/goexif/exif"

	"photosift/media"
)

// exifTimeLayout is the fixed local-time format used by EXIF date tags.
const exifTimeLayout = "2006:01:02 15:04:05"

// CaptureTime returns the best-effort moment the file was captured. For
// photographic formats it tries the EXIF DateTimeOriginal and
// DateTimeDigitized tags, then falls back to the filesystem modification
// time. The fallback is unconditional: decode and parse failures never
// propagate.
func CaptureTime(path string, fallback time.Time) time.Time {
	if media.IsPhoto(path) {
		if t, err := exifCaptureTime(path); err == nil {
			return t
		}
	}
	if ts, err := times.Stat(path); err == nil {
		return ts.ModTime()
	}
	return fallback
}

func exifCaptureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := ParseExifTime(value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no capture time tag in %s", path)
}

// ParseExifTime parses an EXIF date value as local time.
func ParseExifTime(value string) (time.Time, error) {
	return time.ParseInLocation(exifTimeLayout, value, time.Local)
}

// FileTimes carries the extra filesystem timestamps included in scan
// reports. Fields are empty when the platform does not track them.
type FileTimes struct {
	CreationTime string `json:"creation_time,omitempty"`
	AccessTime   string `json:"access_time,omitempty"`
	ChangeTime   string `json:"change_time,omitempty"`
}

// GetFileTimes collects access, change, and birth times when available.
func GetFileTimes(path string) (FileTimes, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return FileTimes{}, err
	}
	result := FileTimes{
		AccessTime: ts.AccessTime().Format(time.RFC3339),
	}
	if ts.HasChangeTime() {
		result.ChangeTime = ts.ChangeTime().Format(time.RFC3339)
	}
	if ts.HasBirthTime() {
		result.CreationTime = ts.BirthTime().Format(time.RFC3339)
	}
	return result, nil
}
